package payroll

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/magnani/brtools/internal/domain"
	"github.com/magnani/brtools/internal/money"
)

// ThirteenthSalary calcula o 13º proporcional aos meses trabalhados.
// A primeira parcela é paga sem descontos; INSS e IRPF sobre o valor
// integral saem todos da segunda parcela.
func (c *Calculator) ThirteenthSalary(salary decimal.Decimal, monthsWorked int) (*domain.ThirteenthSalaryResult, error) {
	if err := requireNonNegative("salary", salary); err != nil {
		return nil, err
	}
	if err := requireRange("months_worked", monthsWorked, MaxMonthsWorked); err != nil {
		return nil, err
	}

	proportional := salary.Mul(decimal.NewFromInt(int64(monthsWorked))).Div(decimal.NewFromInt(MaxMonthsWorked))
	first := proportional.Div(two)
	secondGross := proportional.Sub(first)

	inss, err := c.inss(proportional, domain.EmploymentEmployee)
	if err != nil {
		return nil, fmt.Errorf("INSS sobre 13º: %w", err)
	}
	irpf, err := c.irpf(proportional, 0)
	if err != nil {
		return nil, fmt.Errorf("IRPF sobre 13º: %w", err)
	}
	deductions := inss.contribution.Add(irpf.tax)

	return &domain.ThirteenthSalaryResult{
		Salary:                 money.NewAmount(salary),
		MonthsWorked:           monthsWorked,
		ProportionalAmount:     money.NewAmount(proportional),
		FirstInstallment:       money.NewAmount(first),
		SecondInstallmentGross: money.NewAmount(secondGross),
		INSSDeduction:          money.NewAmount(inss.contribution),
		IRPFDeduction:          money.NewAmount(irpf.tax),
		TotalDeductions:        money.NewAmount(deductions),
		SecondInstallmentNet:   money.NewAmount(secondGross.Sub(deductions)),
		NetTotal:               money.NewAmount(proportional.Sub(deductions)),
		INSS:                   *c.inssResult(inss),
		IRPF:                   *c.irpfResult(irpf),
		TableVersion:           c.table.Version,
	}, nil
}
