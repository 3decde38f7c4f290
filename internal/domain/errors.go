package domain

import (
	"errors"
	"fmt"
)

// Kind classifica uma falha. É o que chega ao chamador no envelope de erro.
type Kind string

const (
	KindLengthMismatch   Kind = "LengthMismatch"
	KindChecksumFailed   Kind = "ChecksumFailed"
	KindInvalidFormat    Kind = "InvalidFormat"
	KindOutOfRange       Kind = "OutOfRange"
	KindInvalidAmount    Kind = "InvalidAmount"
	KindUnknownEnumValue Kind = "UnknownEnumValue"

	// Usados apenas na camada de despacho
	KindUnknownTool  Kind = "UnknownTool"
	KindNotFound     Kind = "NotFound"
	KindLookupFailed Kind = "LookupFailed"
	KindInternal     Kind = "Internal"
)

// Error é uma falha de validação ou cálculo com o campo que a causou
type Error struct {
	Kind    Kind
	Field   string
	Message string
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// NewError cria um novo Error
func NewError(kind Kind, field, message string) *Error {
	return &Error{Kind: kind, Field: field, Message: message}
}

// Errorf cria um novo Error com mensagem formatada
func Errorf(kind Kind, field, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Field: field, Message: fmt.Sprintf(format, args...)}
}

// KindOf extrai o Kind de err, ou KindInternal se err não for um *Error
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var domErr *Error
	if errors.As(err, &domErr) {
		return domErr.Kind
	}
	return KindInternal
}

