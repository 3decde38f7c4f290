package brasilapi

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"

	"github.com/magnani/brtools/internal/documents"
	"github.com/magnani/brtools/internal/domain"
)

// LookupCEP consulta o endereço de um CEP no ViaCEP.
// CEP inexistente retorna ErrNotFound.
func (c *Client) LookupCEP(ctx context.Context, cep string) (*domain.Address, error) {
	path := fmt.Sprintf("/ws/%s/json/", cep)

	respBody, err := c.doRequest(ctx, c.viaCEPURL, path)
	if err != nil {
		return nil, WrapAPIError("CEP", err)
	}

	var viaCEPResp ViaCEPResponse
	if err := json.Unmarshal(respBody, &viaCEPResp); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar resposta")
	}

	// O ViaCEP responde 200 com {"erro": true} para CEP inexistente
	if viaCEPResp.Erro {
		return nil, WrapAPIError("CEP", errors.Wrapf(ErrNotFound, "CEP %s", cep))
	}

	addrCEP := viaCEPResp.CEP
	if check := documents.NormalizeCEP(addrCEP); check.Valid {
		addrCEP = check.Formatted
	}

	return &domain.Address{
		CEP:          addrCEP,
		Street:       viaCEPResp.Logradouro,
		Complement:   viaCEPResp.Complemento,
		Neighborhood: viaCEPResp.Bairro,
		City:         viaCEPResp.Localidade,
		State:        viaCEPResp.UF,
		IBGECode:     viaCEPResp.IBGE,
		DDD:          viaCEPResp.DDD,
		Source:       SourceViaCEP,
	}, nil
}
