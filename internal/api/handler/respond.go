package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/gfvieira/metrics-dashboard-api/internal/domain"
	"github.com/gfvieira/metrics-dashboard-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// respondData escreve o envelope de sucesso com a proveniência informada
func respondData(w http.ResponseWriter, data any, prov domain.Provenance) {
	writeEnvelope(w, http.StatusOK, domain.APIResponse{
		Data:     data,
		Cached:   prov.Cached,
		CachedAt: prov.CachedAt,
	})
}

// respondError escreve o envelope de erro com o status derivado do código
func respondError(w http.ResponseWriter, code string, message string) {
	writeEnvelope(w, apiErrors.StatusForCode(code), domain.APIResponse{
		Error: &message,
	})
}

func writeEnvelope(w http.ResponseWriter, status int, envelope domain.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(envelope); err != nil {
		logrus.WithError(err).Error("Erro ao serializar o envelope de resposta")
	}
}
