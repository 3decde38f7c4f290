package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/magnani/brtools/internal/domain"
	"github.com/magnani/brtools/internal/money"
)

// irpfCalc guarda os valores exatos antes do arredondamento
type irpfCalc struct {
	gross        decimal.Decimal
	dependents   int
	depDeduction decimal.Decimal
	taxable      decimal.Decimal
	tax          decimal.Decimal
	index        int
	bracket      Bracket
}

// IncomeTax calcula o IRPF mensal.
//
// A base é a renda menos 189,59 por dependente. O imposto usa a faixa única
// que contém a base (base * alíquota - parcela a deduzir), sem acumulação
// entre faixas. Um valor exatamente no limite fica na faixa inferior.
func (c *Calculator) IncomeTax(monthlyIncome decimal.Decimal, dependents int) (*domain.IRPFResult, error) {
	calc, err := c.irpf(monthlyIncome, dependents)
	if err != nil {
		return nil, err
	}
	return c.irpfResult(calc), nil
}

func (c *Calculator) irpf(income decimal.Decimal, dependents int) (irpfCalc, error) {
	if err := requireNonNegative("monthly_income", income); err != nil {
		return irpfCalc{}, err
	}
	if dependents < 0 {
		return irpfCalc{}, domain.NewError(domain.KindOutOfRange, "dependents", "número de dependentes não pode ser negativo")
	}

	t := c.table.IRPF
	depDeduction := t.DependentDeduction.Mul(decimal.NewFromInt(int64(dependents)))
	taxable := money.NonNegative(income.Sub(depDeduction))

	index := len(t.Brackets) - 1
	for i, b := range t.Brackets {
		if b.Contains(taxable) {
			index = i
			break
		}
	}
	bracket := t.Brackets[index]

	tax := money.NonNegative(taxable.Mul(bracket.Rate).Sub(bracket.Deduction))

	return irpfCalc{
		gross:        income,
		dependents:   dependents,
		depDeduction: depDeduction,
		taxable:      taxable,
		tax:          tax,
		index:        index,
		bracket:      bracket,
	}, nil
}

func (c *Calculator) irpfResult(calc irpfCalc) *domain.IRPFResult {
	return &domain.IRPFResult{
		GrossIncome:        money.NewAmount(calc.gross),
		Dependents:         calc.dependents,
		DependentDeduction: money.NewAmount(calc.depDeduction),
		TaxableIncome:      money.NewAmount(calc.taxable),
		Tax:                money.NewAmount(calc.tax),
		NetIncome:          money.NewAmount(calc.gross.Sub(calc.tax)),
		EffectiveRate:      effectiveRate(calc.tax, calc.gross),
		BracketIndex:       calc.index,
		Bracket:            bracketInfo(calc.bracket),
		TableVersion:       c.table.Version,
	}
}
