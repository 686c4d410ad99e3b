package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	redisstore "github.com/gfvieira/metrics-dashboard-api/infrastructure/cache/redis"
	"github.com/gfvieira/metrics-dashboard-api/infrastructure/database/postgres"
	"github.com/gfvieira/metrics-dashboard-api/infrastructure/integrator/analytics"
	"github.com/gfvieira/metrics-dashboard-api/infrastructure/integrator/analytics/analyticsclient"
	"github.com/gfvieira/metrics-dashboard-api/infrastructure/integrator/pushfire"
	"github.com/gfvieira/metrics-dashboard-api/infrastructure/integrator/rpcclient"
	"github.com/gfvieira/metrics-dashboard-api/infrastructure/integrator/somara"
	"github.com/gfvieira/metrics-dashboard-api/infrastructure/integrator/ulink"
	"github.com/gfvieira/metrics-dashboard-api/infrastructure/repository"
	"github.com/gfvieira/metrics-dashboard-api/internal/api"
	"github.com/gfvieira/metrics-dashboard-api/internal/config"
	"github.com/gfvieira/metrics-dashboard-api/internal/scheduler"
	"github.com/gfvieira/metrics-dashboard-api/internal/usecases/aggregating"
	"github.com/gfvieira/metrics-dashboard-api/internal/usecases/caching"
	"github.com/gfvieira/metrics-dashboard-api/internal/usecases/sessioning"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Seleciona o backend de cache configurado
	var cacheStore caching.Store
	switch cfg.Cache.Backend {
	case "redis":
		redisStore := redisstore.NewStore(cfg.Cache)
		defer redisStore.Close()
		cacheStore = redisStore
		logrus.Info("Cache de métricas usando backend Redis")
	default:
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()
		cacheStore = repository.NewMetricsCacheRepository(pgConn, cfg.Cache.TTL)
		logrus.Info("Cache de métricas usando backend PostgreSQL")
	}

	analyticsClient := analyticsclient.NewClient(cfg)
	analyticsIntegrator := analytics.New(cfg, analyticsClient)

	ulinkIntegrator := ulink.NewULinkIntegrator(
		rpcclient.NewClient(cfg.ULink.URL, cfg.ULink.ServiceKey),
	)
	somaraIntegrator := somara.NewSomaraIntegrator(
		rpcclient.NewClient(cfg.Somara.URL, cfg.Somara.ServiceKey),
	)
	pushfireIntegrator := pushfire.NewPushFireIntegrator(
		rpcclient.NewClient(cfg.PushFire.URL, cfg.PushFire.ServiceKey),
	)

	aggregator := aggregating.NewService(
		cfg,
		cacheStore,
		analyticsIntegrator,
		ulinkIntegrator,
		somaraIntegrator,
		pushfireIntegrator,
	)

	verifier := sessioning.NewService(cfg)

	cacheWarmerService := scheduler.NewCacheWarmerService(aggregator, cfg)
	if err := cacheWarmerService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do aquecedor de cache")
	} else {
		logrus.Info("Agendador do aquecedor de cache iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		aggregator,
		verifier,
		cacheWarmerService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
