package brasilapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magnani/brtools/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(&config.LookupConfig{
		ViaCEPURL:    server.URL,
		BrasilAPIURL: server.URL + "/",
		Timeout:      2 * time.Second,
	})
}

func TestLookupCEP(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/ws/01001000/json/", r.URL.Path)
		assert.Equal(t, userAgent, r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"cep": "01001-000",
			"logradouro": "Praça da Sé",
			"complemento": "lado ímpar",
			"bairro": "Sé",
			"localidade": "São Paulo",
			"uf": "SP",
			"ibge": "3550308",
			"ddd": "11"
		}`))
	})

	addr, err := client.LookupCEP(context.Background(), "01001000")
	require.NoError(t, err)

	assert.Equal(t, "01001-000", addr.CEP)
	assert.Equal(t, "Praça da Sé", addr.Street)
	assert.Equal(t, "São Paulo", addr.City)
	assert.Equal(t, "SP", addr.State)
	assert.Equal(t, "3550308", addr.IBGECode)
	assert.Equal(t, SourceViaCEP, addr.Source)
}

func TestLookupCEP_NotFound(t *testing.T) {
	bodies := []string{`{"erro": true}`, `{"erro": "true"}`}

	for _, body := range bodies {
		t.Run(body, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			})

			_, err := client.LookupCEP(context.Background(), "99999999")
			require.Error(t, err)
			assert.True(t, IsNotFound(err))
		})
	}
}

func TestLookupCEP_BadRequest(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("<html>Http 400</html>"))
	})

	_, err := client.LookupCEP(context.Background(), "1234")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidRequest))
	assert.False(t, IsNotFound(err))
}

func TestLookupCNPJ(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/cnpj/v1/19131243000197", r.URL.Path)

		_, _ = w.Write([]byte(`{
			"cnpj": "19131243000197",
			"razao_social": "OPEN KNOWLEDGE BRASIL",
			"nome_fantasia": "REDE PELO CONHECIMENTO LIVRE",
			"descricao_situacao_cadastral": "ATIVA",
			"data_inicio_atividade": "2013-10-03",
			"cnae_fiscal": 9430800,
			"cnae_fiscal_descricao": "Atividades de associações de defesa de direitos sociais",
			"natureza_juridica": "Associação Privada",
			"descricao_tipo_de_logradouro": "AVENIDA",
			"logradouro": "PAULISTA 37",
			"numero": "37",
			"complemento": "ANDAR 4",
			"bairro": "BELA VISTA",
			"municipio": "SAO PAULO",
			"uf": "SP",
			"cep": "01311902",
			"codigo_municipio_ibge": 3550308,
			"ddd_telefone_1": "1123851939",
			"email": "Contato@OKBR.org",
			"capital_social": 1500.5,
			"qsa": [
				{"nome_socio": "NATALIA MAZOTTE CORTEZ", "qualificacao_socio": "Presidente", "data_entrada_sociedade": "2019-02-14"}
			]
		}`))
	})

	company, err := client.LookupCNPJ(context.Background(), "19131243000197")
	require.NoError(t, err)

	assert.Equal(t, "19.131.243/0001-97", company.CNPJ)
	assert.Equal(t, "OPEN KNOWLEDGE BRASIL", company.LegalName)
	assert.Equal(t, "ATIVA", company.Status)
	assert.Equal(t, 9430800, company.MainActivityCode)
	assert.Equal(t, "AVENIDA PAULISTA 37, 37", company.Address.Street)
	assert.Equal(t, "01311-902", company.Address.CEP)
	assert.Equal(t, "3550308", company.Address.IBGECode)
	assert.Equal(t, "contato@okbr.org", company.Email)
	assert.Equal(t, "1500.50", company.ShareCapital.String())
	require.Len(t, company.Partners, 1)
	assert.Equal(t, "Presidente", company.Partners[0].Qualification)
	assert.Equal(t, SourceBrasilAPI, company.Source)
}

func TestLookupCNPJ_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		check   func(error) bool
		message string
	}{
		{
			name:    "not found",
			status:  http.StatusNotFound,
			body:    `{"message":"CNPJ 11222333000181 não encontrado.","type":"not_found","name":"NotFoundError"}`,
			check:   IsNotFound,
			message: "não encontrado",
		},
		{
			name:   "rate limited",
			status: http.StatusTooManyRequests,
			body:   `{}`,
			check:  IsRateLimited,
		},
		{
			name:   "server error",
			status: http.StatusBadGateway,
			body:   `bad gateway`,
			check:  IsServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.LookupCNPJ(context.Background(), "11222333000181")
			require.Error(t, err)
			assert.True(t, tt.check(err))
			if tt.message != "" {
				assert.Contains(t, err.Error(), tt.message)
			}
		})
	}
}

func TestLookup_ContextCancelled(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.LookupCEP(ctx, "01001000")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "ErrNotFound sentinel", err: ErrNotFound, want: true},
		{name: "wrapped sentinel", err: errors.Wrap(ErrNotFound, "CEP"), want: true},
		{name: "API error with 404", err: &APIError{Status: 404, Message: "Not found"}, want: true},
		{name: "API error with 400", err: &APIError{Status: 400, Message: "Bad request"}, want: false},
		{name: "other error", err: ErrRateLimited, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNotFound(tt.err))
		})
	}
}

func TestClassifyError(t *testing.T) {
	assert.True(t, errors.Is(ClassifyError(&APIError{Status: 404}), ErrNotFound))
	assert.True(t, errors.Is(ClassifyError(&APIError{Status: 429}), ErrRateLimited))
	assert.True(t, errors.Is(ClassifyError(&APIError{Status: 503}), ErrServerError))

	forbidden := &APIError{Status: 403, Message: "forbidden"}
	assert.Equal(t, forbidden, ClassifyError(forbidden))

	plain := errors.New("plain")
	assert.Equal(t, plain, ClassifyError(plain))
}

func TestAPIError_Error(t *testing.T) {
	assert.Equal(t, "msg", (&APIError{Message: "msg", Name: "X"}).Error())
	assert.Equal(t, "NotFoundError", (&APIError{Name: "NotFoundError"}).Error())
	assert.Equal(t, "status 500", (&APIError{Status: 500}).Error())
}
