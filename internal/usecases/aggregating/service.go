// Package aggregating implementa o orquestrador de métricas do dashboard:
// consulta o cache, busca as facetas nos provedores quando necessário e
// recorre à entrada vencida quando a busca falha.
package aggregating

import (
	"context"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/gfvieira/metrics-dashboard-api/infrastructure/integrator/analytics"
	analyticsdomain "github.com/gfvieira/metrics-dashboard-api/infrastructure/integrator/analytics/domain"
	"github.com/gfvieira/metrics-dashboard-api/infrastructure/integrator/pushfire"
	pushfiredomain "github.com/gfvieira/metrics-dashboard-api/infrastructure/integrator/pushfire/domain"
	"github.com/gfvieira/metrics-dashboard-api/infrastructure/integrator/somara"
	somaradomain "github.com/gfvieira/metrics-dashboard-api/infrastructure/integrator/somara/domain"
	"github.com/gfvieira/metrics-dashboard-api/infrastructure/integrator/ulink"
	ulinkdomain "github.com/gfvieira/metrics-dashboard-api/infrastructure/integrator/ulink/domain"
	"github.com/gfvieira/metrics-dashboard-api/internal/config"
	"github.com/gfvieira/metrics-dashboard-api/internal/domain"
	"github.com/gfvieira/metrics-dashboard-api/internal/usecases/caching"
	"github.com/gfvieira/metrics-dashboard-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Tipos de métrica que compõem as chaves de cache
const (
	MetricTypeAnalytics      = "ga"
	MetricTypeULinkBusiness  = "ulink_business"
	MetricTypeULinkHealth    = "ulink_health"
	MetricTypeULinkWebsite   = "ulink_website"
	MetricTypeULinkDashboard = "ulink_dashboard_users"
	MetricTypeSomara         = "somara_platform"
	MetricTypePushFire       = "pushfire_platform"
)

// dashboardPathPrefix separa o tráfego do site público do tráfego do painel
// nas propriedades de analytics do ULink
const dashboardPathPrefix = "/dashboard"

const cacheWriteTimeout = 10 * time.Second

type Service struct {
	cfg              *config.Config
	store            caching.Store
	analyticsService analytics.AnalyticsIntegrator
	ulinkService     ulink.ULinkIntegrator
	somaraService    somara.SomaraIntegrator
	pushfireService  pushfire.PushFireIntegrator
	now              func() time.Time

	// writeWG acompanha as escritas assíncronas de cache em andamento
	writeWG sync.WaitGroup
}

func NewService(
	cfg *config.Config,
	store caching.Store,
	analyticsService analytics.AnalyticsIntegrator,
	ulinkService ulink.ULinkIntegrator,
	somaraService somara.SomaraIntegrator,
	pushfireService pushfire.PushFireIntegrator,
) *Service {
	return &Service{
		cfg:              cfg,
		store:            store,
		analyticsService: analyticsService,
		ulinkService:     ulinkService,
		somaraService:    somaraService,
		pushfireService:  pushfireService,
		now:              time.Now,
	}
}

// resolve executa a máquina de estados de uma requisição de métricas:
//
//	cache fresco            -> retorna a entrada com proveniência de cache
//	miss ou entrada vencida -> busca fresca + escrita assíncrona no cache
//	busca falhou            -> serve a entrada vencida, se houver
//	sem fallback            -> propaga o erro da busca
//
// Quando o próprio backend de cache está indisponível, a requisição segue
// direto para a busca, sem leitura nem escrita de cache.
func resolve[T any](ctx context.Context, s *Service, key caching.Key, fetch func() (*T, error)) (*T, domain.Provenance, error) {
	entry, cacheErr := s.store.Get(ctx, key)
	if cacheErr != nil {
		logrus.Warn("Cache indisponível, buscando direto no provedor", map[string]any{
			"key":   key.String(),
			"error": cacheErr.Error(),
		})

		fresh, err := fetch()
		if err != nil {
			return nil, domain.Provenance{}, err
		}

		return fresh, domain.Provenance{}, nil
	}

	if entry != nil && !entry.IsStale {
		if cached := decodeEntry[T](key, entry); cached != nil {
			return cached, domain.Provenance{Cached: true, CachedAt: &entry.FetchedAt}, nil
		}
		entry = nil
	}

	fresh, err := fetch()
	if err != nil {
		// Entrada vencida ainda é melhor do que nenhum dado
		if entry != nil {
			if stale := decodeEntry[T](key, entry); stale != nil {
				logrus.Warn("Busca falhou, servindo entrada vencida do cache", map[string]any{
					"key":   key.String(),
					"error": err.Error(),
				})

				return stale, domain.Provenance{Cached: true, CachedAt: &entry.FetchedAt}, nil
			}
		}

		return nil, domain.Provenance{}, err
	}

	s.storeAsync(key, fresh)

	return fresh, domain.Provenance{}, nil
}

// decodeEntry desserializa o payload da entrada; payload incompatível é
// tratado como miss
func decodeEntry[T any](key caching.Key, entry *caching.Entry) *T {
	var decoded T
	if err := json.Unmarshal(entry.Payload, &decoded); err != nil {
		logrus.Warn("Entrada de cache incompatível, tratando como miss", map[string]any{
			"key":   key.String(),
			"error": err.Error(),
		})

		return nil
	}

	return &decoded
}

// storeAsync grava a entrada sem bloquear a resposta. Falhas de escrita são
// registradas e descartadas.
func (s *Service) storeAsync(key caching.Key, value any) {
	payload, err := json.Marshal(value)
	if err != nil {
		logrus.Error("Erro ao serializar o payload para o cache", map[string]any{
			"key":   key.String(),
			"error": err.Error(),
		})

		return
	}

	s.writeWG.Add(1)
	go func() {
		defer s.writeWG.Done()

		ctx, cancel := context.WithTimeout(context.Background(), cacheWriteTimeout)
		defer cancel()

		if err := s.store.Set(ctx, key, payload); err != nil {
			logrus.Error("Erro ao gravar a entrada no cache", map[string]any{
				"key":   key.String(),
				"error": err.Error(),
			})
		}
	}()
}

func (s *Service) cacheKey(product domain.ProductSlug, metricType string, rng domain.DateRange) caching.Key {
	return caching.Key{
		Product:    string(product),
		MetricType: metricType,
		DateStart:  rng.Start,
		DateEnd:    rng.End,
	}
}

// GetAnalyticsBundle retorna o bundle de tráfego web do produto informado
func (s *Service) GetAnalyticsBundle(ctx context.Context, product domain.ProductSlug, rng domain.DateRange) (*domain.AnalyticsBundle, domain.Provenance, error) {
	productConfig := domain.GetProduct(s.cfg.Products(), string(product))
	if productConfig == nil {
		return nil, domain.Provenance{}, errors.Errorf("produto desconhecido: %s", product)
	}

	key := s.cacheKey(product, MetricTypeAnalytics, rng)

	return resolve(ctx, s, key, func() (*domain.AnalyticsBundle, error) {
		return s.fetchAnalyticsBundle(productConfig.AnalyticsProperty, rng, nil)
	})
}

// GetULinkWebsiteMetrics retorna o tráfego do site público do ULink,
// excluindo as páginas do painel
func (s *Service) GetULinkWebsiteMetrics(ctx context.Context, rng domain.DateRange) (*domain.AnalyticsBundle, domain.Provenance, error) {
	key := s.cacheKey(domain.ProductULink, MetricTypeULinkWebsite, rng)

	return resolve(ctx, s, key, func() (*domain.AnalyticsBundle, error) {
		return s.fetchAnalyticsBundle(
			s.cfg.Analytics.PropertyIDULink,
			rng,
			analytics.ExcludePathPrefixFilter(dashboardPathPrefix),
		)
	})
}

// GetULinkDashboardMetrics retorna o tráfego restrito às páginas do painel
// do ULink
func (s *Service) GetULinkDashboardMetrics(ctx context.Context, rng domain.DateRange) (*domain.AnalyticsBundle, domain.Provenance, error) {
	key := s.cacheKey(domain.ProductULink, MetricTypeULinkDashboard, rng)

	return resolve(ctx, s, key, func() (*domain.AnalyticsBundle, error) {
		return s.fetchAnalyticsBundle(
			s.cfg.Analytics.PropertyIDULink,
			rng,
			analytics.PathPrefixFilter(dashboardPathPrefix),
		)
	})
}

// fetchAnalyticsBundle busca as seis facetas de tráfego em paralelo. A falha
// de qualquer faceta invalida o bundle inteiro.
func (s *Service) fetchAnalyticsBundle(propertyID string, rng domain.DateRange, filter *analyticsdomain.FilterExpression) (*domain.AnalyticsBundle, error) {
	var (
		kpis      *analyticsdomain.RunReportResponse
		visitors  *analyticsdomain.RunReportResponse
		pages     *analyticsdomain.RunReportResponse
		referrers *analyticsdomain.RunReportResponse
		countries *analyticsdomain.RunReportResponse
		devices   *analyticsdomain.RunReportResponse
	)

	g := new(errgroup.Group)
	g.Go(func() (err error) {
		kpis, err = s.analyticsService.FetchKPIs(propertyID, rng, filter)
		return err
	})
	g.Go(func() (err error) {
		visitors, err = s.analyticsService.FetchVisitorsOverTime(propertyID, rng, filter)
		return err
	})
	g.Go(func() (err error) {
		pages, err = s.analyticsService.FetchTopPages(propertyID, rng, filter)
		return err
	})
	g.Go(func() (err error) {
		referrers, err = s.analyticsService.FetchReferrers(propertyID, rng, filter)
		return err
	})
	g.Go(func() (err error) {
		countries, err = s.analyticsService.FetchCountryBreakdown(propertyID, rng, filter)
		return err
	})
	g.Go(func() (err error) {
		devices, err = s.analyticsService.FetchDeviceBreakdown(propertyID, rng, filter)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "erro ao buscar o bundle de analytics")
	}

	return buildAnalyticsBundle(kpis, visitors, pages, referrers, countries, devices), nil
}

// GetULinkBusinessMetrics retorna os indicadores de negócio do ULink,
// combinando o banco da plataforma com os visitantes de analytics
func (s *Service) GetULinkBusinessMetrics(ctx context.Context, rng domain.DateRange) (*domain.ULinkBusinessMetrics, domain.Provenance, error) {
	key := s.cacheKey(domain.ProductULink, MetricTypeULinkBusiness, rng)

	return resolve(ctx, s, key, func() (*domain.ULinkBusinessMetrics, error) {
		return s.fetchULinkBusiness(rng)
	})
}

func (s *Service) fetchULinkBusiness(rng domain.DateRange) (*domain.ULinkBusinessMetrics, error) {
	start, end, err := utils.NormalizeDateRange(rng.Start, rng.End, s.now())
	if err != nil {
		return nil, err
	}

	var (
		signupsDaily   []ulinkdomain.SignupRow
		totalSignups   int
		subscriptions  []ulinkdomain.SubscriptionRow
		totalPaidUsers int
		mrrOverTime    []ulinkdomain.MRRRow
		activeProjects int
		gaKPIs         *analyticsdomain.RunReportResponse
	)

	g := new(errgroup.Group)
	g.Go(func() (err error) {
		signupsDaily, err = s.ulinkService.FetchDailySignups(start, end)
		return err
	})
	g.Go(func() (err error) {
		totalSignups, err = s.ulinkService.FetchSignupTotal(start, end)
		return err
	})
	g.Go(func() (err error) {
		subscriptions, totalPaidUsers, err = s.ulinkService.FetchActiveSubscriptions()
		return err
	})
	g.Go(func() (err error) {
		mrrOverTime, err = s.ulinkService.FetchMRROverTime(start, end)
		return err
	})
	g.Go(func() (err error) {
		activeProjects, err = s.ulinkService.FetchActiveProjects(start, end)
		return err
	})
	g.Go(func() (err error) {
		gaKPIs, err = s.analyticsService.FetchKPIs(s.cfg.Analytics.PropertyIDULink, rng, nil)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "erro ao buscar as métricas de negócio do ULink")
	}

	return buildULinkBusinessMetrics(ulinkBusinessInput{
		SignupsDaily:   signupsDaily,
		TotalSignups:   totalSignups,
		Subscriptions:  subscriptions,
		TotalPaidUsers: totalPaidUsers,
		MRROverTime:    mrrOverTime,
		ActiveProjects: activeProjects,
		AnalyticsUsers: transformAnalyticsKPIs(gaKPIs).TotalUsers,
		Start:          start,
		End:            end,
	}), nil
}

// GetULinkClientHealth retorna a saúde de onboarding e engajamento de todos
// os projetos clientes do ULink
func (s *Service) GetULinkClientHealth(ctx context.Context, rng domain.DateRange) (*domain.ULinkClientHealth, domain.Provenance, error) {
	key := s.cacheKey(domain.ProductULink, MetricTypeULinkHealth, rng)

	return resolve(ctx, s, key, func() (*domain.ULinkClientHealth, error) {
		start, end, err := utils.NormalizeDateRange(rng.Start, rng.End, s.now())
		if err != nil {
			return nil, err
		}

		rows, err := s.ulinkService.FetchProjectHealth(start, end)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao buscar a saúde dos clientes do ULink")
		}

		return buildULinkClientHealth(rows), nil
	})
}

// GetSomaraMetrics retorna todas as facetas de plataforma do Somara
func (s *Service) GetSomaraMetrics(ctx context.Context, rng domain.DateRange) (*domain.SomaraMetrics, domain.Provenance, error) {
	key := s.cacheKey(domain.ProductSomara, MetricTypeSomara, rng)

	return resolve(ctx, s, key, func() (*domain.SomaraMetrics, error) {
		return s.fetchSomaraMetrics(rng)
	})
}

func (s *Service) fetchSomaraMetrics(rng domain.DateRange) (*domain.SomaraMetrics, error) {
	start, end, err := utils.NormalizeDateRange(rng.Start, rng.End, s.now())
	if err != nil {
		return nil, err
	}

	var (
		kpis       somaradomain.KPIRow
		activity   []somaradomain.ActivityRow
		signups    []somaradomain.SignupRow
		tokens     []somaradomain.TokensRow
		orgBilling []somaradomain.OrgBillingRow
		topModels  []somaradomain.ModelUsageRow
		credits    []somaradomain.CreditsRow
	)

	g := new(errgroup.Group)
	g.Go(func() (err error) {
		kpis, err = s.somaraService.FetchKPIs(start, end)
		return err
	})
	g.Go(func() (err error) {
		activity, err = s.somaraService.FetchActivityOverTime(start, end)
		return err
	})
	g.Go(func() (err error) {
		signups, err = s.somaraService.FetchSignupsOverTime(start, end)
		return err
	})
	g.Go(func() (err error) {
		tokens, err = s.somaraService.FetchTokenUsageOverTime(start, end)
		return err
	})
	g.Go(func() (err error) {
		orgBilling, err = s.somaraService.FetchOrgBillingBreakdown()
		return err
	})
	g.Go(func() (err error) {
		topModels, err = s.somaraService.FetchTopModels()
		return err
	})
	g.Go(func() (err error) {
		credits, err = s.somaraService.FetchCreditsOverview()
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "erro ao buscar as métricas do Somara")
	}

	return buildSomaraMetrics(somaraInput{
		KPIs:       kpis,
		Activity:   activity,
		Signups:    signups,
		Tokens:     tokens,
		OrgBilling: orgBilling,
		TopModels:  topModels,
		Credits:    credits,
		Start:      start,
		End:        end,
	}), nil
}

// GetPushFireMetrics retorna todas as facetas de plataforma do PushFire
func (s *Service) GetPushFireMetrics(ctx context.Context, rng domain.DateRange) (*domain.PushFireMetrics, domain.Provenance, error) {
	key := s.cacheKey(domain.ProductPushFire, MetricTypePushFire, rng)

	return resolve(ctx, s, key, func() (*domain.PushFireMetrics, error) {
		return s.fetchPushFireMetrics(rng)
	})
}

func (s *Service) fetchPushFireMetrics(rng domain.DateRange) (*domain.PushFireMetrics, error) {
	start, end, err := utils.NormalizeDateRange(rng.Start, rng.End, s.now())
	if err != nil {
		return nil, err
	}

	var (
		platformKPIs  pushfiredomain.PlatformKPIRow
		businessKPIs  pushfiredomain.BusinessKPIRow
		subscribers   []pushfiredomain.SubscriberRow
		notifications []pushfiredomain.NotificationRow
		executions    []pushfiredomain.ExecutionRow
		devices       []pushfiredomain.DeviceOSRow
	)

	g := new(errgroup.Group)
	g.Go(func() (err error) {
		platformKPIs, err = s.pushfireService.FetchPlatformKPIs(start, end)
		return err
	})
	g.Go(func() (err error) {
		businessKPIs, err = s.pushfireService.FetchBusinessKPIs()
		return err
	})
	g.Go(func() (err error) {
		subscribers, err = s.pushfireService.FetchDailySubscribers(start, end)
		return err
	})
	g.Go(func() (err error) {
		notifications, err = s.pushfireService.FetchDailyNotifications(start, end)
		return err
	})
	g.Go(func() (err error) {
		executions, err = s.pushfireService.FetchDailyExecutions(start, end)
		return err
	})
	g.Go(func() (err error) {
		devices, err = s.pushfireService.FetchDeviceBreakdown()
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "erro ao buscar as métricas do PushFire")
	}

	return buildPushFireMetrics(pushfireInput{
		PlatformKPIs:  platformKPIs,
		BusinessKPIs:  businessKPIs,
		Subscribers:   subscribers,
		Notifications: notifications,
		Executions:    executions,
		Devices:       devices,
		Start:         start,
		End:           end,
	}), nil
}
