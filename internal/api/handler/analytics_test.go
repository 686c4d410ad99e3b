package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/gfvieira/metrics-dashboard-api/internal/domain"
	aggregatingmocks "github.com/gfvieira/metrics-dashboard-api/internal/usecases/aggregating/mocks"
)

var testProducts = []domain.Product{
	{Slug: domain.ProductSomara, Name: "Somara", AnalyticsProperty: "100000001"},
	{Slug: domain.ProductULink, Name: "ULink", AnalyticsProperty: "100000002"},
	{Slug: domain.ProductPushFire, Name: "PushFire", AnalyticsProperty: "100000003"},
}

func decodeEnvelope(t *testing.T, recorder *httptest.ResponseRecorder) domain.APIResponse {
	t.Helper()

	var envelope domain.APIResponse
	err := json.Unmarshal(recorder.Body.Bytes(), &envelope)
	assert.NoError(t, err)

	return envelope
}

func TestGetAnalyticsMetrics(t *testing.T) {
	cachedAt := time.Date(2024, 3, 15, 11, 50, 0, 0, time.UTC)

	tests := []struct {
		name            string
		target          string
		setup           func(service *aggregatingmocks.MockAggregator)
		expectedStatus  int
		expectedError   string
		validateEnvelope func(t *testing.T, envelope domain.APIResponse)
	}{
		{
			name:   "Resposta fresca deve vir no envelope com cached false",
			target: "/v1/metrics/ga?product=somara&start=7daysAgo&end=today",
			setup: func(service *aggregatingmocks.MockAggregator) {
				service.EXPECT().
					GetAnalyticsBundle(gomock.Any(), domain.ProductSomara, domain.DateRange{Start: "7daysAgo", End: "today"}).
					Return(&domain.AnalyticsBundle{}, domain.Provenance{}, nil)
			},
			expectedStatus: http.StatusOK,
			validateEnvelope: func(t *testing.T, envelope domain.APIResponse) {
				assert.NotNil(t, envelope.Data)
				assert.Nil(t, envelope.Error)
				assert.False(t, envelope.Cached)
				assert.Nil(t, envelope.CachedAt)
			},
		},
		{
			name:   "Resposta do cache deve expor cached e cachedAt",
			target: "/v1/metrics/ga?product=ulink&start=30daysAgo&end=today",
			setup: func(service *aggregatingmocks.MockAggregator) {
				service.EXPECT().
					GetAnalyticsBundle(gomock.Any(), domain.ProductULink, gomock.Any()).
					Return(&domain.AnalyticsBundle{}, domain.Provenance{Cached: true, CachedAt: &cachedAt}, nil)
			},
			expectedStatus: http.StatusOK,
			validateEnvelope: func(t *testing.T, envelope domain.APIResponse) {
				assert.True(t, envelope.Cached)
				assert.NotNil(t, envelope.CachedAt)
				assert.True(t, cachedAt.Equal(*envelope.CachedAt))
			},
		},
		{
			name:           "Parâmetros ausentes devem retornar 400",
			target:         "/v1/metrics/ga?product=somara&start=7daysAgo",
			setup:          func(service *aggregatingmocks.MockAggregator) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Missing required params: product, start, end",
		},
		{
			name:           "Produto desconhecido deve retornar 400",
			target:         "/v1/metrics/ga?product=orkut&start=7daysAgo&end=today",
			setup:          func(service *aggregatingmocks.MockAggregator) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid product: orkut",
		},
		{
			name:           "Intervalo de datas inválido deve retornar 400",
			target:         "/v1/metrics/ga?product=somara&start=today&end=7daysAgo",
			setup:          func(service *aggregatingmocks.MockAggregator) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid date range: today, 7daysAgo",
		},
		{
			name:   "Falha do agregador deve retornar 502",
			target: "/v1/metrics/ga?product=pushfire&start=7daysAgo&end=today",
			setup: func(service *aggregatingmocks.MockAggregator) {
				service.EXPECT().
					GetAnalyticsBundle(gomock.Any(), domain.ProductPushFire, gomock.Any()).
					Return(nil, domain.Provenance{}, errors.New("provedor indisponível"))
			},
			expectedStatus: http.StatusBadGateway,
			expectedError:  "Failed to fetch analytics data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := aggregatingmocks.NewMockAggregator(ctrl)
			tt.setup(service)

			handler := GetAnalyticsMetrics(testProducts, service)

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.expectedStatus, recorder.Code)
			assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

			envelope := decodeEnvelope(t, recorder)

			if tt.expectedError != "" {
				assert.NotNil(t, envelope.Error)
				assert.Equal(t, tt.expectedError, *envelope.Error)
				assert.Nil(t, envelope.Data)
			}

			if tt.validateEnvelope != nil {
				tt.validateEnvelope(t, envelope)
			}
		})
	}
}
