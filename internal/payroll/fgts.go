package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/magnani/brtools/internal/domain"
	"github.com/magnani/brtools/internal/money"
)

// FGTS calcula o depósito mensal do FGTS. É pago pelo empregador e não é
// descontado do salário; a multa rescisória é informativa.
func (c *Calculator) FGTS(salary decimal.Decimal) (*domain.FGTSResult, error) {
	if err := requireNonNegative("salary", salary); err != nil {
		return nil, err
	}

	t := c.table.FGTS
	deposit := salary.Mul(t.Rate)
	annual := deposit.Mul(decimal.NewFromInt(int64(t.MonthsPerYear)))
	fine := annual.Mul(t.DismissalFineRate)

	return &domain.FGTSResult{
		Salary:             money.NewAmount(salary),
		FGTSDeposit:        money.NewAmount(deposit),
		FGTSRate:           money.NewRate(t.Rate),
		AnnualDeposit:      money.NewAmount(annual),
		FineOnDismissal:    money.NewAmount(fine),
		FineRate:           money.NewRate(t.DismissalFineRate),
		PaidBy:             "employer",
		DeductedFromSalary: false,
		TableVersion:       c.table.Version,
	}, nil
}
