package money

import (
	"bytes"

	"github.com/shopspring/decimal"
)

// Amount é um valor monetário já arredondado para 2 casas.
// Em JSON é sempre emitido como número com exatamente 2 casas (ex: 240.00).
type Amount struct {
	decimal.Decimal
}

// NewAmount arredonda d para 2 casas e o envolve como Amount
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: Round2(d)}
}

// String retorna o valor com 2 casas decimais
func (a Amount) String() string {
	return Format2(a.Decimal)
}

// MarshalJSON implementa json.Marshaler
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(Format2(a.Decimal)), nil
}

// UnmarshalJSON aceita número ou string
func (a *Amount) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	*a = NewAmount(d)
	return nil
}

// Rate é uma alíquota (ex: 0.075). Em JSON é emitida como número.
type Rate struct {
	decimal.Decimal
}

// NewRate envolve d como Rate
func NewRate(d decimal.Decimal) Rate {
	return Rate{Decimal: d}
}

// RateFromString é um atalho para testes e tabelas
func RateFromString(value string) Rate {
	return Rate{Decimal: MustParse(value)}
}

// MarshalJSON implementa json.Marshaler
func (r Rate) MarshalJSON() ([]byte, error) {
	return []byte(r.Decimal.String()), nil
}

// UnmarshalJSON aceita número ou string
func (r *Rate) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	r.Decimal = d
	return nil
}
