package brasilapi

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/magnani/brtools/internal/ports"
)

// Erros sentinela para condições comuns
var (
	// ErrNotFound indica que o CEP ou CNPJ não existe (é o mesmo erro da porta)
	ErrNotFound = ports.ErrNotFound

	// ErrInvalidRequest indica requisição recusada pela API (formato inválido)
	ErrInvalidRequest = errors.New("consulta: requisição inválida")

	// ErrRateLimited indica rate limiting da API pública
	ErrRateLimited = errors.New("consulta: rate limit atingido")

	// ErrServerError indica erro interno do servidor consultado
	ErrServerError = errors.New("consulta: erro do servidor")
)

// IsNotFound retorna true se o erro indica que o registro não foi encontrado
func IsNotFound(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusNotFound
	}
	return false
}

// IsRateLimited retorna true se o erro indica rate limiting
func IsRateLimited(err error) bool {
	if errors.Is(err, ErrRateLimited) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusTooManyRequests
	}
	return false
}

// IsServerError retorna true se o erro é do servidor (5xx)
func IsServerError(err error) bool {
	if errors.Is(err, ErrServerError) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status >= 500
	}
	return false
}

// ClassifyError converte um erro da API para um erro sentinela quando apropriado
func ClassifyError(err error) error {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	switch apiErr.Status {
	case http.StatusNotFound:
		return errors.Wrap(ErrNotFound, apiErr.Error())
	case http.StatusBadRequest:
		return errors.Wrap(ErrInvalidRequest, apiErr.Error())
	case http.StatusTooManyRequests:
		return errors.Wrap(ErrRateLimited, apiErr.Error())
	}

	if apiErr.Status >= 500 {
		return errors.Wrap(ErrServerError, apiErr.Error())
	}

	return err
}

// WrapAPIError envolve um erro com contexto adicional
func WrapAPIError(operation string, err error) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, "consulta %s", operation)
}
