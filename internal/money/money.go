// Package money concentra a aritmética decimal usada em valores monetários e alíquotas.
//
// Nenhum cálculo de dinheiro passa por float64: tudo é feito com decimal.Decimal
// e arredondado para 2 casas apenas na saída.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Hundred é usado na conversão entre reais e centavos
var Hundred = decimal.NewFromInt(100)

// Parse converte uma string decimal ("1234.56" ou "1234,56") em decimal.Decimal
func Parse(value string) (decimal.Decimal, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.Zero, fmt.Errorf("valor vazio")
	}
	if strings.Contains(value, ",") && !strings.Contains(value, ".") {
		value = strings.Replace(value, ",", ".", 1)
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("valor decimal inválido %q: %w", value, err)
	}
	return d, nil
}

// MustParse é como Parse mas entra em pânico em caso de erro.
// Deve ser usado apenas com literais conhecidos.
func MustParse(value string) decimal.Decimal {
	d, err := Parse(value)
	if err != nil {
		panic(err)
	}
	return d
}

// Round2 arredonda para 2 casas decimais, metade para longe do zero
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Format2 formata com exatamente 2 casas decimais (ex: "10.00")
func Format2(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// Cents converte reais em centavos, arredondando metade para longe do zero.
// ok é false quando o resultado não cabe em int64.
func Cents(d decimal.Decimal) (cents int64, ok bool) {
	c := d.Mul(Hundred).Round(0)
	if !c.BigInt().IsInt64() {
		return 0, false
	}
	return c.IntPart(), true
}

// FromCents converte centavos em reais
func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// Min retorna o menor dos valores
func Min(first decimal.Decimal, rest ...decimal.Decimal) decimal.Decimal {
	return decimal.Min(first, rest...)
}

// Max retorna o maior dos valores
func Max(first decimal.Decimal, rest ...decimal.Decimal) decimal.Decimal {
	return decimal.Max(first, rest...)
}

// Sum soma todos os valores
func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

// NonNegative retorna zero se o valor for negativo
func NonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
