package aggregating

import (
	"context"

	"github.com/gfvieira/metrics-dashboard-api/internal/domain"
)

// Aggregator orquestra cache, busca e fallback das métricas de cada produto.
// Toda operação retorna o bundle junto com a proveniência (fresco ou cache).
type Aggregator interface {
	GetAnalyticsBundle(ctx context.Context, product domain.ProductSlug, rng domain.DateRange) (*domain.AnalyticsBundle, domain.Provenance, error)
	GetULinkBusinessMetrics(ctx context.Context, rng domain.DateRange) (*domain.ULinkBusinessMetrics, domain.Provenance, error)
	GetULinkClientHealth(ctx context.Context, rng domain.DateRange) (*domain.ULinkClientHealth, domain.Provenance, error)
	GetULinkWebsiteMetrics(ctx context.Context, rng domain.DateRange) (*domain.AnalyticsBundle, domain.Provenance, error)
	GetULinkDashboardMetrics(ctx context.Context, rng domain.DateRange) (*domain.AnalyticsBundle, domain.Provenance, error)
	GetSomaraMetrics(ctx context.Context, rng domain.DateRange) (*domain.SomaraMetrics, domain.Provenance, error)
	GetPushFireMetrics(ctx context.Context, rng domain.DateRange) (*domain.PushFireMetrics, domain.Provenance, error)
}
