package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/gfvieira/metrics-dashboard-api/internal/scheduler"
	"github.com/gfvieira/metrics-dashboard-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeCacheWarmer = "cache-warmer"
)

// CronJobServices contém os serviços de cron disponíveis para execução manual
type CronJobServices struct {
	CacheWarmerService *scheduler.CacheWarmerService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			respondError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado")
			return
		}

		switch cronType {
		case CronJobTypeCacheWarmer:
			if services.CacheWarmerService == nil {
				respondError(w, apiErrors.ErrInternalServer, "Serviço de aquecimento de cache não disponível")
				return
			}
			services.CacheWarmerService.TriggerManualRun()

		default:
			respondError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: cache-warmer")
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.WithError(err).Error("Erro ao serializar a resposta da cron job")
		}
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"cache-warmer": services.CacheWarmerService.GetStatus(),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logrus.WithError(err).Error("Erro ao serializar o status das cron jobs")
		}
	})
}
