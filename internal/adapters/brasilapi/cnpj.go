package brasilapi

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/magnani/brtools/internal/documents"
	"github.com/magnani/brtools/internal/domain"
	"github.com/magnani/brtools/internal/money"
)

// LookupCNPJ consulta os dados públicos de um CNPJ na BrasilAPI
func (c *Client) LookupCNPJ(ctx context.Context, cnpj string) (*domain.Company, error) {
	path := fmt.Sprintf("/api/cnpj/v1/%s", cnpj)

	respBody, err := c.doRequest(ctx, c.brasilAPIURL, path)
	if err != nil {
		return nil, WrapAPIError("CNPJ", err)
	}

	var cnpjResp CNPJResponse
	if err := json.Unmarshal(respBody, &cnpjResp); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar resposta")
	}

	return toCompany(&cnpjResp), nil
}

// toCompany converte a resposta da BrasilAPI para o domínio
func toCompany(r *CNPJResponse) *domain.Company {
	company := &domain.Company{
		CNPJ:             documents.FormatCNPJ(documents.OnlyDigits(r.CNPJ)),
		LegalName:        r.RazaoSocial,
		TradeName:        r.NomeFantasia,
		Status:           r.DescricaoSituacaoCadastral,
		OpeningDate:      r.DataInicioAtividade,
		MainActivity:     r.CNAEFiscalDescricao,
		MainActivityCode: r.CNAEFiscal,
		LegalNature:      r.NaturezaJuridica,
		Address: domain.Address{
			CEP:          r.CEP,
			Street:       joinNonEmpty(", ", joinNonEmpty(" ", r.DescricaoTipoLogradouro, r.Logradouro), r.Numero),
			Complement:   r.Complemento,
			Neighborhood: r.Bairro,
			City:         r.Municipio,
			State:        r.UF,
			Source:       SourceBrasilAPI,
		},
		Phone:        r.DDDTelefone1,
		ShareCapital: money.NewAmount(r.CapitalSocial),
		Source:       SourceBrasilAPI,
	}

	if check := documents.NormalizeCEP(r.CEP); check.Valid {
		company.Address.CEP = check.Formatted
	}
	if r.CodigoMunicipioIBGE != 0 {
		company.Address.IBGECode = fmt.Sprint(r.CodigoMunicipioIBGE)
	}
	if r.Email != nil {
		company.Email = strings.ToLower(*r.Email)
	}

	for _, s := range r.QSA {
		company.Partners = append(company.Partners, domain.CompanyPartner{
			Name:          s.NomeSocio,
			Qualification: s.QualificacaoSocio,
			Since:         s.DataEntradaSociedade,
		})
	}

	return company
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
