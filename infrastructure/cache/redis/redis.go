// Package redis implementa o cache de métricas sobre um key-value store com
// expiração nativa: chave presente implica entrada fresca.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/gfvieira/metrics-dashboard-api/internal/config"
	"github.com/gfvieira/metrics-dashboard-api/internal/usecases/caching"
)

type cacheEnvelope struct {
	Payload   json.RawMessage `json:"payload"`
	FetchedAt time.Time       `json:"fetchedAt"`
}

type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStore(cfg config.Cache) *Store {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	return &Store{
		client: client,
		ttl:    cfg.TTL,
	}
}

func (s *Store) Get(ctx context.Context, key caching.Key) (*caching.Entry, error) {
	raw, err := s.client.Get(ctx, key.String()).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao ler entrada do cache de métricas: %w", err)
	}

	var envelope cacheEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		// Entrada malformada é tratada como miss, nunca como erro
		logrus.WithFields(logrus.Fields{
			"product":     key.Product,
			"metric_type": key.MetricType,
		}).Warn("Entrada malformada no cache de métricas, tratando como miss")
		return nil, nil
	}

	// Com TTL nativo, a presença da chave garante que a entrada é fresca
	return &caching.Entry{
		Payload:   envelope.Payload,
		FetchedAt: envelope.FetchedAt,
		IsStale:   false,
	}, nil
}

func (s *Store) Set(ctx context.Context, key caching.Key, payload json.RawMessage) error {
	envelope := cacheEnvelope{
		Payload:   payload,
		FetchedAt: time.Now().UTC(),
	}

	raw, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("erro ao serializar entrada do cache: %w", err)
	}

	if err := s.client.Set(ctx, key.String(), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("erro ao gravar entrada do cache de métricas: %w", err)
	}

	return nil
}

func (s *Store) Close() error {
	return s.client.Close()
}
