package brasilapi

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// ViaCEPResponse representa a resposta de GET /ws/{cep}/json/
type ViaCEPResponse struct {
	CEP         string   `json:"cep"`
	Logradouro  string   `json:"logradouro"`
	Complemento string   `json:"complemento"`
	Bairro      string   `json:"bairro"`
	Localidade  string   `json:"localidade"`
	UF          string   `json:"uf"`
	IBGE        string   `json:"ibge"`
	DDD         string   `json:"ddd"`
	Erro        jsonBool `json:"erro,omitempty"` // true quando o CEP não existe
}

// CNPJResponse representa a resposta de GET /api/cnpj/v1/{cnpj}
type CNPJResponse struct {
	CNPJ                       string          `json:"cnpj"`
	RazaoSocial                string          `json:"razao_social"`
	NomeFantasia               string          `json:"nome_fantasia"`
	DescricaoSituacaoCadastral string          `json:"descricao_situacao_cadastral"`
	DataInicioAtividade        string          `json:"data_inicio_atividade"`
	CNAEFiscal                 int             `json:"cnae_fiscal"`
	CNAEFiscalDescricao        string          `json:"cnae_fiscal_descricao"`
	NaturezaJuridica           string          `json:"natureza_juridica"`
	DescricaoTipoLogradouro    string          `json:"descricao_tipo_de_logradouro"`
	Logradouro                 string          `json:"logradouro"`
	Numero                     string          `json:"numero"`
	Complemento                string          `json:"complemento"`
	Bairro                     string          `json:"bairro"`
	Municipio                  string          `json:"municipio"`
	UF                         string          `json:"uf"`
	CEP                        string          `json:"cep"`
	CodigoMunicipioIBGE        int             `json:"codigo_municipio_ibge"`
	DDDTelefone1               string          `json:"ddd_telefone_1"`
	Email                      *string         `json:"email"`
	CapitalSocial              decimal.Decimal `json:"capital_social"`
	QSA                        []Socio         `json:"qsa"`
}

// Socio representa um integrante do quadro societário
type Socio struct {
	NomeSocio            string `json:"nome_socio"`
	QualificacaoSocio    string `json:"qualificacao_socio"`
	DataEntradaSociedade string `json:"data_entrada_sociedade"`
}

// APIError representa um erro retornado pelas APIs de consulta
type APIError struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
	Type    string `json:"type,omitempty"`
	Name    string `json:"name,omitempty"`
}

// Error implementa a interface error
func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Name != "" {
		return e.Name
	}
	return fmt.Sprintf("status %d", e.Status)
}

// jsonBool aceita true/false ou "true"/"false". O ViaCEP já respondeu
// das duas formas no campo "erro".
type jsonBool bool

func (b *jsonBool) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "null" {
		*b = false
		return nil
	}
	parsed, err := strconv.ParseBool(string(data))
	if err != nil {
		return fmt.Errorf("valor booleano inválido: %s", data)
	}
	*b = jsonBool(parsed)
	return nil
}
