package brasilapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/magnani/brtools/internal/config"
	"github.com/magnani/brtools/internal/ports"
)

// maxResponseSize limita o corpo lido de uma resposta
const maxResponseSize = 1 << 20

// Client implementa ports.AddressLookup e ports.CompanyLookup
type Client struct {
	viaCEPURL    string
	brasilAPIURL string
	httpClient   *http.Client
}

// NewClient cria um novo cliente de consultas
func NewClient(cfg *config.LookupConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		viaCEPURL:    strings.TrimRight(cfg.ViaCEPURL, "/"),
		brasilAPIURL: strings.TrimRight(cfg.BrasilAPIURL, "/"),
		httpClient:   &http.Client{Timeout: timeout},
	}
}

// doRequest executa um GET e devolve o corpo da resposta
func (c *Client) doRequest(ctx context.Context, baseURL, path string) ([]byte, error) {
	url := fmt.Sprintf("%s%s", baseURL, path)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar requisição")
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	// Executa
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro na requisição HTTP")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler resposta")
	}

	// Trata erros da API
	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode}
		if json.Unmarshal(respBody, apiErr) != nil || apiErr.Message == "" {
			apiErr.Message = fmt.Sprintf("erro da API: status %d", resp.StatusCode)
		}
		return nil, ClassifyError(apiErr)
	}

	return respBody, nil
}

// Garante que Client implementa as portas de consulta
var (
	_ ports.AddressLookup = (*Client)(nil)
	_ ports.CompanyLookup = (*Client)(nil)
)
