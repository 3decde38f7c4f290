package payroll

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/magnani/brtools/internal/domain"
	"github.com/magnani/brtools/internal/money"
)

// Vacation calcula férias com o terço constitucional e o abono pecuniário
// (dias vendidos, também com terço). INSS e IRPF incidem sobre o bruto das
// férias, não sobre o salário.
func (c *Calculator) Vacation(salary decimal.Decimal, days, sellDays int) (*domain.VacationResult, error) {
	if err := requireNonNegative("salary", salary); err != nil {
		return nil, err
	}
	if err := requireRange("days", days, MaxVacationDays); err != nil {
		return nil, err
	}
	if err := requireRange("sell_days", sellDays, MaxSellDays); err != nil {
		return nil, err
	}

	month := decimal.NewFromInt(daysPerMonth)
	daily := salary.Div(month)
	basePay := salary.Mul(decimal.NewFromInt(int64(days))).Div(month)
	bonus := basePay.Div(three)
	soldPay := salary.Mul(decimal.NewFromInt(int64(sellDays))).Div(month)
	soldBonus := soldPay.Div(three)
	gross := money.Sum(basePay, bonus, soldPay, soldBonus)

	inss, err := c.inss(gross, domain.EmploymentEmployee)
	if err != nil {
		return nil, fmt.Errorf("INSS sobre férias: %w", err)
	}
	irpf, err := c.irpf(gross, 0)
	if err != nil {
		return nil, fmt.Errorf("IRPF sobre férias: %w", err)
	}
	deductions := inss.contribution.Add(irpf.tax)

	return &domain.VacationResult{
		Salary:              money.NewAmount(salary),
		Days:                days,
		SellDays:            sellDays,
		DailyRate:           money.NewAmount(daily),
		BasePay:             money.NewAmount(basePay),
		ConstitutionalBonus: money.NewAmount(bonus),
		SoldDaysPay:         money.NewAmount(soldPay),
		SoldDaysBonus:       money.NewAmount(soldBonus),
		GrossTotal:          money.NewAmount(gross),
		INSSDeduction:       money.NewAmount(inss.contribution),
		IRPFDeduction:       money.NewAmount(irpf.tax),
		TotalDeductions:     money.NewAmount(deductions),
		NetTotal:            money.NewAmount(gross.Sub(deductions)),
		INSS:                *c.inssResult(inss),
		IRPF:                *c.irpfResult(irpf),
		TableVersion:        c.table.Version,
	}, nil
}
