package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"

	"github.com/gfvieira/metrics-dashboard-api/infrastructure/database/postgres"
	"github.com/gfvieira/metrics-dashboard-api/internal/usecases/caching"
)

const metricsCacheTable = "metrics_cache mc"

// metricsCacheRepository implementa caching.Store sobre a tabela
// metrics_cache. O backend não tem expiração nativa por chave, então a
// validade é calculada na leitura comparando fetched_at com o TTL.
type metricsCacheRepository struct {
	conn postgres.Queryer
	ttl  time.Duration
	now  func() time.Time
}

func NewMetricsCacheRepository(conn postgres.Queryer, ttl time.Duration) caching.Store {
	return &metricsCacheRepository{
		conn: conn,
		ttl:  ttl,
		now:  time.Now,
	}
}

func (r *metricsCacheRepository) Get(ctx context.Context, key caching.Key) (*caching.Entry, error) {
	query, args, err := squirrel.
		Select("mc.payload, mc.fetched_at").
		From(metricsCacheTable).
		Where(squirrel.Eq{
			"mc.product":     key.Product,
			"mc.metric_type": key.MetricType,
			"mc.date_start":  key.DateStart,
			"mc.date_end":    key.DateEnd,
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var (
		payload   []byte
		fetchedAt time.Time
	)

	row := r.conn.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&payload, &fetchedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao ler entrada do cache de métricas: %w", err)
	}

	// Entrada malformada é tratada como miss, nunca como erro
	if !json.Valid(payload) {
		logrus.WithFields(logrus.Fields{
			"product":     key.Product,
			"metric_type": key.MetricType,
		}).Warn("Entrada malformada no cache de métricas, tratando como miss")
		return nil, nil
	}

	return &caching.Entry{
		Payload:   json.RawMessage(payload),
		FetchedAt: fetchedAt,
		IsStale:   caching.IsStaleAt(fetchedAt, r.now(), r.ttl),
	}, nil
}

func (r *metricsCacheRepository) Set(ctx context.Context, key caching.Key, payload json.RawMessage) error {
	query, args, err := squirrel.
		Insert("metrics_cache").
		Columns("product", "metric_type", "date_start", "date_end", "payload", "fetched_at").
		Values(key.Product, key.MetricType, key.DateStart, key.DateEnd, []byte(payload), r.now()).
		Suffix(`ON CONFLICT (product, metric_type, date_start, date_end)
			DO UPDATE SET payload = EXCLUDED.payload, fetched_at = EXCLUDED.fetched_at`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao gravar entrada do cache de métricas: %w", err)
	}

	return nil
}
