// Package payroll calcula encargos da folha de pagamento: IRPF, INSS, FGTS,
// férias e 13º salário.
//
// Os cálculos são feitos em decimal exato e arredondados para 2 casas apenas
// no resultado. As faixas e alíquotas vêm de uma RateTable versionada.
package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/magnani/brtools/internal/domain"
	"github.com/magnani/brtools/internal/money"
)

// Limites de férias e 13º
const (
	MaxVacationDays = 30
	MaxSellDays     = 10
	MaxMonthsWorked = 12
	daysPerMonth    = 30
)

var (
	three = decimal.NewFromInt(3)
	two   = decimal.NewFromInt(2)
)

// Calculator executa os cálculos com uma tabela fixa.
// É imutável e pode ser usado concorrentemente.
type Calculator struct {
	table *RateTable
}

// NewCalculator cria um Calculator com a tabela informada
func NewCalculator(table *RateTable) *Calculator {
	return &Calculator{table: table}
}

// NewDefaultCalculator cria um Calculator com as tabelas embutidas
func NewDefaultCalculator() (*Calculator, error) {
	table, err := DefaultTables()
	if err != nil {
		return nil, err
	}
	return NewCalculator(table), nil
}

func requireNonNegative(field string, value decimal.Decimal) error {
	if value.IsNegative() {
		return domain.NewError(domain.KindInvalidAmount, field, "valor não pode ser negativo")
	}
	return nil
}

func requireRange(field string, value, limit int) error {
	if value < 0 || value > limit {
		return domain.Errorf(domain.KindOutOfRange, field, "deve estar entre 0 e %d, recebido %d", limit, value)
	}
	return nil
}

// effectiveRate retorna part/whole com 4 casas, ou zero se whole for zero
func effectiveRate(part, whole decimal.Decimal) money.Rate {
	if whole.IsZero() {
		return money.NewRate(decimal.Zero)
	}
	return money.NewRate(part.DivRound(whole, 4))
}

func bracketInfo(b Bracket) domain.BracketInfo {
	info := domain.BracketInfo{
		Min:       money.NewAmount(b.Min),
		Rate:      money.NewRate(b.Rate),
		Deduction: money.NewAmount(b.Deduction),
	}
	if b.Max != nil {
		upper := money.NewAmount(*b.Max)
		info.Max = &upper
	}
	return info
}
