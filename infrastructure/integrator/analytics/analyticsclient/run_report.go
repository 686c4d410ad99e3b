package analyticsclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	analyticsdomain "github.com/gfvieira/metrics-dashboard-api/infrastructure/integrator/analytics/domain"
)

// RunReport executa um relatório na API de analytics para a propriedade
// informada. Resposta sem linhas não é erro; apenas falhas de transporte ou
// autenticação retornam erro.
func (c *AnalyticsClient) RunReport(propertyID string, request *analyticsdomain.RunReportRequest) (*analyticsdomain.RunReportResponse, error) {
	url := fmt.Sprintf("%s/properties/%s:runReport", c.config.Analytics.BaseURL, propertyID)

	body, err := json.Marshal(request)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar o relatório de analytics")
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição de analytics")
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.Analytics.AccessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao chamar a API de analytics")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler a resposta da API de analytics")
	}

	if resp.StatusCode != http.StatusOK {
		logrus.WithFields(logrus.Fields{
			"property_id": propertyID,
			"status":      resp.StatusCode,
		}).Error("API de analytics retornou status inesperado")

		return nil, errors.Errorf("API de analytics retornou status %d", resp.StatusCode)
	}

	var response analyticsdomain.RunReportResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a resposta da API de analytics")
	}

	return &response, nil
}
