package aggregating

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	ulinkdomain "github.com/gfvieira/metrics-dashboard-api/infrastructure/integrator/ulink/domain"
	ulinkmocks "github.com/gfvieira/metrics-dashboard-api/infrastructure/integrator/ulink/mocks"
	"github.com/gfvieira/metrics-dashboard-api/internal/config"
	"github.com/gfvieira/metrics-dashboard-api/internal/domain"
	"github.com/gfvieira/metrics-dashboard-api/internal/usecases/caching"
	cachingmocks "github.com/gfvieira/metrics-dashboard-api/internal/usecases/caching/mocks"
)

func TestService_GetULinkClientHealth(t *testing.T) {
	// Data de referência fixa para a normalização dos tokens de data
	referenceNow := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	fetchedAt := referenceNow.Add(-5 * time.Minute)

	rng := domain.DateRange{Start: "2024-01-01", End: "2024-01-03"}
	expectedKey := caching.Key{
		Product:    "ulink",
		MetricType: MetricTypeULinkHealth,
		DateStart:  "2024-01-01",
		DateEnd:    "2024-01-03",
	}

	cachedHealth := &domain.ULinkClientHealth{
		TotalProjects: 2,
		HealthyCount:  1,
		AtRiskCount:   1,
		Projects:      []domain.ProjectHealthSummary{},
	}
	cachedPayload, err := json.Marshal(cachedHealth)
	assert.NoError(t, err)

	freshRows := []ulinkdomain.ProjectHealthRow{
		{ProjectID: "prj_1", ProjectName: "Loja Nova", LinksCreated: 0, RecentClicks: 0},
	}

	tests := []struct {
		name     string
		setup    func(store *cachingmocks.MockStore, ulinkService *ulinkmocks.MockULinkIntegrator)
		validate func(t *testing.T, result *domain.ULinkClientHealth, prov domain.Provenance, err error)
	}{
		{
			name: "Cache fresco deve ser servido sem consultar o provedor",
			setup: func(store *cachingmocks.MockStore, ulinkService *ulinkmocks.MockULinkIntegrator) {
				store.EXPECT().
					Get(gomock.Any(), expectedKey).
					Return(&caching.Entry{Payload: cachedPayload, FetchedAt: fetchedAt, IsStale: false}, nil)
			},
			validate: func(t *testing.T, result *domain.ULinkClientHealth, prov domain.Provenance, err error) {
				assert.NoError(t, err)
				assert.Equal(t, cachedHealth, result)
				assert.True(t, prov.Cached)
				assert.Equal(t, fetchedAt, *prov.CachedAt)
			},
		},
		{
			name: "Miss deve buscar no provedor e gravar no cache",
			setup: func(store *cachingmocks.MockStore, ulinkService *ulinkmocks.MockULinkIntegrator) {
				store.EXPECT().
					Get(gomock.Any(), expectedKey).
					Return(nil, nil)

				ulinkService.EXPECT().
					FetchProjectHealth(gomock.Any(), gomock.Any()).
					Return(freshRows, nil)

				store.EXPECT().
					Set(gomock.Any(), expectedKey, gomock.Any()).
					Return(nil)
			},
			validate: func(t *testing.T, result *domain.ULinkClientHealth, prov domain.Provenance, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 1, result.TotalProjects)
				assert.Equal(t, 1, result.InactiveCount)
				assert.False(t, prov.Cached)
				assert.Nil(t, prov.CachedAt)
			},
		},
		{
			name: "Falha na escrita do cache não afeta a resposta",
			setup: func(store *cachingmocks.MockStore, ulinkService *ulinkmocks.MockULinkIntegrator) {
				store.EXPECT().
					Get(gomock.Any(), expectedKey).
					Return(nil, nil)

				ulinkService.EXPECT().
					FetchProjectHealth(gomock.Any(), gomock.Any()).
					Return(freshRows, nil)

				store.EXPECT().
					Set(gomock.Any(), expectedKey, gomock.Any()).
					Return(errors.New("conexão recusada"))
			},
			validate: func(t *testing.T, result *domain.ULinkClientHealth, prov domain.Provenance, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 1, result.TotalProjects)
				assert.False(t, prov.Cached)
			},
		},
		{
			name: "Entrada vencida com busca bem sucedida deve ser renovada",
			setup: func(store *cachingmocks.MockStore, ulinkService *ulinkmocks.MockULinkIntegrator) {
				store.EXPECT().
					Get(gomock.Any(), expectedKey).
					Return(&caching.Entry{Payload: cachedPayload, FetchedAt: fetchedAt, IsStale: true}, nil)

				ulinkService.EXPECT().
					FetchProjectHealth(gomock.Any(), gomock.Any()).
					Return(freshRows, nil)

				store.EXPECT().
					Set(gomock.Any(), expectedKey, gomock.Any()).
					Return(nil)
			},
			validate: func(t *testing.T, result *domain.ULinkClientHealth, prov domain.Provenance, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 1, result.TotalProjects)
				assert.False(t, prov.Cached)
			},
		},
		{
			name: "Busca falhou com entrada vencida deve servir o cache vencido",
			setup: func(store *cachingmocks.MockStore, ulinkService *ulinkmocks.MockULinkIntegrator) {
				store.EXPECT().
					Get(gomock.Any(), expectedKey).
					Return(&caching.Entry{Payload: cachedPayload, FetchedAt: fetchedAt, IsStale: true}, nil)

				ulinkService.EXPECT().
					FetchProjectHealth(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("banco da plataforma indisponível"))
			},
			validate: func(t *testing.T, result *domain.ULinkClientHealth, prov domain.Provenance, err error) {
				assert.NoError(t, err)
				assert.Equal(t, cachedHealth, result)
				assert.True(t, prov.Cached)
				assert.Equal(t, fetchedAt, *prov.CachedAt)
			},
		},
		{
			name: "Busca falhou sem fallback deve propagar o erro",
			setup: func(store *cachingmocks.MockStore, ulinkService *ulinkmocks.MockULinkIntegrator) {
				store.EXPECT().
					Get(gomock.Any(), expectedKey).
					Return(nil, nil)

				ulinkService.EXPECT().
					FetchProjectHealth(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("banco da plataforma indisponível"))
			},
			validate: func(t *testing.T, result *domain.ULinkClientHealth, prov domain.Provenance, err error) {
				assert.Error(t, err)
				assert.Nil(t, result)
				assert.False(t, prov.Cached)
			},
		},
		{
			name: "Cache indisponível deve buscar direto sem gravar",
			setup: func(store *cachingmocks.MockStore, ulinkService *ulinkmocks.MockULinkIntegrator) {
				store.EXPECT().
					Get(gomock.Any(), expectedKey).
					Return(nil, errors.New("conexão recusada"))

				ulinkService.EXPECT().
					FetchProjectHealth(gomock.Any(), gomock.Any()).
					Return(freshRows, nil)

				// Nenhuma expectativa de Set: a requisição ignora o cache
			},
			validate: func(t *testing.T, result *domain.ULinkClientHealth, prov domain.Provenance, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 1, result.TotalProjects)
				assert.False(t, prov.Cached)
			},
		},
		{
			name: "Entrada corrompida deve ser tratada como miss",
			setup: func(store *cachingmocks.MockStore, ulinkService *ulinkmocks.MockULinkIntegrator) {
				store.EXPECT().
					Get(gomock.Any(), expectedKey).
					Return(&caching.Entry{Payload: []byte("{corrompido"), FetchedAt: fetchedAt, IsStale: false}, nil)

				ulinkService.EXPECT().
					FetchProjectHealth(gomock.Any(), gomock.Any()).
					Return(freshRows, nil)

				store.EXPECT().
					Set(gomock.Any(), expectedKey, gomock.Any()).
					Return(nil)
			},
			validate: func(t *testing.T, result *domain.ULinkClientHealth, prov domain.Provenance, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 1, result.TotalProjects)
				assert.False(t, prov.Cached)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := cachingmocks.NewMockStore(ctrl)
			ulinkService := ulinkmocks.NewMockULinkIntegrator(ctrl)

			tt.setup(store, ulinkService)

			service := &Service{
				cfg:          &config.Config{},
				store:        store,
				ulinkService: ulinkService,
				now:          func() time.Time { return referenceNow },
			}

			result, prov, err := service.GetULinkClientHealth(context.Background(), rng)

			// Aguarda as escritas assíncronas antes de validar as expectativas
			service.writeWG.Wait()

			tt.validate(t, result, prov, err)
		})
	}
}

func TestService_GetULinkClientHealthComTokenInvalido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := cachingmocks.NewMockStore(ctrl)
	ulinkService := ulinkmocks.NewMockULinkIntegrator(ctrl)

	store.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(nil, nil)

	service := &Service{
		cfg:          &config.Config{},
		store:        store,
		ulinkService: ulinkService,
		now:          time.Now,
	}

	result, _, err := service.GetULinkClientHealth(
		context.Background(),
		domain.DateRange{Start: "semana-passada", End: "today"},
	)

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestService_GetAnalyticsBundleProdutoDesconhecido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := cachingmocks.NewMockStore(ctrl)

	service := &Service{
		cfg:   &config.Config{},
		store: store,
		now:   time.Now,
	}

	result, _, err := service.GetAnalyticsBundle(
		context.Background(),
		domain.ProductSlug("produto-fantasma"),
		domain.DateRange{Start: "7daysAgo", End: "today"},
	)

	assert.Error(t, err)
	assert.Nil(t, result)
}
