// Package rpcclient implementa o transporte comum aos bancos de plataforma
// dos produtos, expostos via chamadas de procedimento remoto no padrão
// PostgREST (/rest/v1/rpc/<função>).
package rpcclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Client interface {
	Call(fn string, params any, result any) error
}

type RPCClient struct {
	httpClient *http.Client
	baseURL    string
	serviceKey string
}

func NewClient(baseURL, serviceKey string) Client {
	return &RPCClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:    baseURL,
		serviceKey: serviceKey,
	}
}

// Call executa a função remota com os parâmetros informados e decodifica as
// linhas pré-agregadas retornadas em result. Resultado vazio não é erro.
func (c *RPCClient) Call(fn string, params any, result any) error {
	url := fmt.Sprintf("%s/rest/v1/rpc/%s", c.baseURL, fn)

	body := []byte("{}")
	if params != nil {
		encoded, err := json.Marshal(params)
		if err != nil {
			return errors.Wrapf(err, "erro ao serializar parâmetros da função %s", fn)
		}
		body = encoded
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return errors.Wrapf(err, "erro ao criar a requisição da função %s", fn)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.serviceKey)
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "erro ao chamar a função remota %s", fn)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "erro ao ler a resposta da função %s", fn)
	}

	if resp.StatusCode != http.StatusOK {
		logrus.WithFields(logrus.Fields{
			"function": fn,
			"status":   resp.StatusCode,
		}).Error("Função remota retornou status inesperado")

		return errors.Errorf("função remota %s retornou status %d", fn, resp.StatusCode)
	}

	if result == nil || len(respBody) == 0 {
		return nil
	}

	if err := json.Unmarshal(respBody, result); err != nil {
		return errors.Wrapf(err, "erro ao decodificar a resposta da função %s", fn)
	}

	return nil
}
