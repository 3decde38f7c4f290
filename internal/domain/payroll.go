package domain

import "github.com/magnani/brtools/internal/money"

// EmploymentType define o regime de contribuição ao INSS
type EmploymentType string

const (
	EmploymentEmployee     EmploymentType = "employee"
	EmploymentSelfEmployed EmploymentType = "self-employed"
)

// IsValid verifica se o regime é conhecido
func (t EmploymentType) IsValid() bool {
	return t == EmploymentEmployee || t == EmploymentSelfEmployed
}

// BracketInfo descreve a faixa de uma tabela usada no cálculo.
// Max nulo significa faixa sem limite superior.
type BracketInfo struct {
	Min       money.Amount  `json:"min"`
	Max       *money.Amount `json:"max,omitempty"`
	Rate      money.Rate    `json:"rate"`
	Deduction money.Amount  `json:"deduction"`
}

// IRPFResult é o resultado do cálculo do imposto de renda mensal
type IRPFResult struct {
	GrossIncome        money.Amount `json:"gross_income"`
	Dependents         int          `json:"dependents"`
	DependentDeduction money.Amount `json:"dependent_deduction"`
	TaxableIncome      money.Amount `json:"taxable_income"`
	Tax                money.Amount `json:"tax"`
	NetIncome          money.Amount `json:"net_income"`
	EffectiveRate      money.Rate   `json:"effective_rate"`
	BracketIndex       int          `json:"bracket_index"` // 0 = faixa isenta
	Bracket            BracketInfo  `json:"bracket"`
	TableVersion       string       `json:"table_version"`
}

// INSSPortion é a parcela do salário tributada dentro de uma faixa do INSS
type INSSPortion struct {
	Bracket      BracketInfo  `json:"bracket"`
	Base         money.Amount `json:"base"`
	Contribution money.Amount `json:"contribution"`
}

// INSSResult é o resultado do cálculo da contribuição ao INSS
type INSSResult struct {
	Salary               money.Amount   `json:"salary"`
	Type                 EmploymentType `json:"type"`
	ContributionBase     money.Amount   `json:"contribution_base"`
	Contribution         money.Amount   `json:"contribution"`
	NetSalary            money.Amount   `json:"net_salary"`
	EffectiveRate        money.Rate     `json:"effective_rate"`
	Ceiling              money.Amount   `json:"ceiling"`
	EmployerContribution *money.Amount  `json:"employer_contribution,omitempty"` // Informativo, não descontado
	EmployerRate         *money.Rate    `json:"employer_rate,omitempty"`
	Breakdown            []INSSPortion  `json:"breakdown,omitempty"`
	TableVersion         string         `json:"table_version"`
}

// FGTSResult é o resultado do cálculo do depósito de FGTS
type FGTSResult struct {
	Salary             money.Amount `json:"salary"`
	FGTSDeposit        money.Amount `json:"fgts_deposit"`
	FGTSRate           money.Rate   `json:"fgts_rate"`
	AnnualDeposit      money.Amount `json:"annual_deposit"`
	FineOnDismissal    money.Amount `json:"fine_on_dismissal"`
	FineRate           money.Rate   `json:"fine_rate"`
	PaidBy             string       `json:"paid_by"`
	DeductedFromSalary bool         `json:"deducted_from_salary"`
	TableVersion       string       `json:"table_version"`
}

// VacationResult é o resultado do cálculo de férias
type VacationResult struct {
	Salary              money.Amount `json:"salary"`
	Days                int          `json:"days"`
	SellDays            int          `json:"sell_days"`
	DailyRate           money.Amount `json:"daily_rate"`
	BasePay             money.Amount `json:"base_pay"`
	ConstitutionalBonus money.Amount `json:"constitutional_bonus"` // 1/3 constitucional
	SoldDaysPay         money.Amount `json:"sold_days_pay"`        // Abono pecuniário
	SoldDaysBonus       money.Amount `json:"sold_days_bonus"`
	GrossTotal          money.Amount `json:"gross_total"`
	INSSDeduction       money.Amount `json:"inss_deduction"`
	IRPFDeduction       money.Amount `json:"irpf_deduction"`
	TotalDeductions     money.Amount `json:"total_deductions"`
	NetTotal            money.Amount `json:"net_total"`
	INSS                INSSResult   `json:"inss"`
	IRPF                IRPFResult   `json:"irpf"`
	TableVersion        string       `json:"table_version"`
}

// ThirteenthSalaryResult é o resultado do cálculo do 13º salário
type ThirteenthSalaryResult struct {
	Salary                 money.Amount `json:"salary"`
	MonthsWorked           int          `json:"months_worked"`
	ProportionalAmount     money.Amount `json:"proportional_amount"`
	FirstInstallment       money.Amount `json:"first_installment"` // Sem descontos
	SecondInstallmentGross money.Amount `json:"second_installment_gross"`
	INSSDeduction          money.Amount `json:"inss_deduction"`
	IRPFDeduction          money.Amount `json:"irpf_deduction"`
	TotalDeductions        money.Amount `json:"total_deductions"`
	SecondInstallmentNet   money.Amount `json:"second_installment_net"`
	NetTotal               money.Amount `json:"net_total"`
	INSS                   INSSResult   `json:"inss"`
	IRPF                   IRPFResult   `json:"irpf"`
	TableVersion           string       `json:"table_version"`
}
