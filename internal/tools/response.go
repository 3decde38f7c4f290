package tools

import (
	"encoding/json"
	"errors"

	"github.com/magnani/brtools/internal/domain"
)

// Failure é o envelope uniforme de erro: {error: true, kind, message}
type Failure struct {
	Error   bool        `json:"error"`
	Kind    domain.Kind `json:"kind"`
	Message string      `json:"message"`
	Field   string      `json:"field,omitempty"`
}

// Response é o resultado de uma chamada: Result ou Failure, nunca os dois
type Response struct {
	Tool    string
	Result  interface{}
	Failure *Failure
}

// IsError indica se a chamada falhou
func (r Response) IsError() bool {
	return r.Failure != nil
}

// Body devolve o que deve ser serializado para o chamador
func (r Response) Body() interface{} {
	if r.Failure != nil {
		return r.Failure
	}
	return r.Result
}

// MarshalJSON serializa apenas o corpo (resultado ou envelope)
func (r Response) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Body())
}

// NewFailure converte um erro no envelope. Erros fora da taxonomia viram Internal.
func NewFailure(err error) *Failure {
	failure := &Failure{
		Error:   true,
		Kind:    domain.KindOf(err),
		Message: err.Error(),
	}

	var domErr *domain.Error
	if errors.As(err, &domErr) {
		failure.Field = domErr.Field
	}
	return failure
}
