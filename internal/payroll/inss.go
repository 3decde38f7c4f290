package payroll

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/magnani/brtools/internal/domain"
	"github.com/magnani/brtools/internal/money"
)

type inssPortion struct {
	bracket      Bracket
	base         decimal.Decimal
	contribution decimal.Decimal
}

type inssCalc struct {
	salary       decimal.Decimal
	kind         domain.EmploymentType
	base         decimal.Decimal
	contribution decimal.Decimal
	portions     []inssPortion
}

// INSS calcula a contribuição previdenciária.
//
// Para empregados cada faixa tributa apenas a parte do salário dentro dela,
// até o teto. Para contribuintes individuais a alíquota é única sobre o
// salário limitado ao teto. Tipo vazio é tratado como empregado.
func (c *Calculator) INSS(salary decimal.Decimal, employmentType domain.EmploymentType) (*domain.INSSResult, error) {
	calc, err := c.inss(salary, employmentType)
	if err != nil {
		return nil, err
	}
	return c.inssResult(calc), nil
}

func (c *Calculator) inss(salary decimal.Decimal, employmentType domain.EmploymentType) (inssCalc, error) {
	if err := requireNonNegative("salary", salary); err != nil {
		return inssCalc{}, err
	}

	employmentType = domain.EmploymentType(strings.ToLower(strings.TrimSpace(string(employmentType))))
	if employmentType == "" {
		employmentType = domain.EmploymentEmployee
	}
	if !employmentType.IsValid() {
		return inssCalc{}, domain.Errorf(domain.KindUnknownEnumValue, "type",
			"tipo de contribuinte desconhecido %q (use employee ou self-employed)", employmentType)
	}

	t := c.table.INSS
	base := money.Min(salary, t.Ceiling)
	calc := inssCalc{salary: salary, kind: employmentType, base: base}

	if employmentType == domain.EmploymentSelfEmployed {
		calc.contribution = base.Mul(t.SelfEmployedRate)
		return calc, nil
	}

	for _, b := range t.Brackets {
		if !base.GreaterThan(b.Min) {
			break
		}
		upper := base
		if b.Max != nil {
			upper = money.Min(base, *b.Max)
		}
		portion := upper.Sub(b.Min)
		contribution := portion.Mul(b.Rate)
		calc.portions = append(calc.portions, inssPortion{bracket: b, base: portion, contribution: contribution})
		calc.contribution = calc.contribution.Add(contribution)
	}
	return calc, nil
}

func (c *Calculator) inssResult(calc inssCalc) *domain.INSSResult {
	t := c.table.INSS
	result := &domain.INSSResult{
		Salary:           money.NewAmount(calc.salary),
		Type:             calc.kind,
		ContributionBase: money.NewAmount(calc.base),
		Contribution:     money.NewAmount(calc.contribution),
		NetSalary:        money.NewAmount(calc.salary.Sub(calc.contribution)),
		EffectiveRate:    effectiveRate(calc.contribution, calc.salary),
		Ceiling:          money.NewAmount(t.Ceiling),
		TableVersion:     c.table.Version,
	}

	if calc.kind == domain.EmploymentEmployee {
		employer := money.NewAmount(calc.salary.Mul(t.EmployerRate))
		rate := money.NewRate(t.EmployerRate)
		result.EmployerContribution = &employer
		result.EmployerRate = &rate

		for _, p := range calc.portions {
			result.Breakdown = append(result.Breakdown, domain.INSSPortion{
				Bracket:      bracketInfo(p.bracket),
				Base:         money.NewAmount(p.base),
				Contribution: money.NewAmount(p.contribution),
			})
		}
	}
	return result
}
