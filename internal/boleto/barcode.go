package boleto

import (
	"time"

	"github.com/magnani/brtools/internal/domain"
)

// Layout do código de barras (44 posições)
const (
	BarcodeLength = 44
	CurrencyReal  = "9"

	checkDigitPos = 4
	factorStart   = 5
	amountStart   = 9
	freeStart     = 19

	FreeFieldLength  = 25
	AmountFieldWidth = 10
)

// Fator de vencimento
const (
	factorRolloverDays = 10000
	factorMin          = 1000
	factorCycle        = 9000

	secondsPerDay = 24 * 60 * 60
)

// FactorBaseDate é a data base FEBRABAN do fator de vencimento
var FactorBaseDate = time.Date(1997, time.October, 7, 0, 0, 0, 0, time.UTC)

// CheckDigit calcula o dígito verificador geral (posição 5) sobre os outros
// 43 dígitos do código de barras, da direita para a esquerda com pesos 2 a 9.
// Restos que resultariam em 0, 10 ou 11 viram 1.
func CheckDigit(digits43 string) int {
	sum, weight := 0, 2
	for i := len(digits43) - 1; i >= 0; i-- {
		sum += int(digits43[i]-'0') * weight
		weight++
		if weight > 9 {
			weight = 2
		}
	}
	dv := 11 - sum%11
	if dv == 0 || dv == 10 || dv == 11 {
		return 1
	}
	return dv
}

// DueDateFactor retorna o fator de vencimento de uma data.
// A partir de 2025-02-22 o fator volta para 1000 e segue em ciclos de 9000 dias.
func DueDateFactor(due time.Time) (int, error) {
	days := daysSinceBase(due)
	if days < 0 {
		return 0, domain.Errorf(domain.KindOutOfRange, "due_date",
			"vencimento anterior à data base %s", FactorBaseDate.Format(dateLayout))
	}
	if days < factorRolloverDays {
		return days, nil
	}
	return (days-factorRolloverDays)%factorCycle + factorMin, nil
}

// DueDateFromFactor resolve o fator na data mais próxima de reference.
// Fator zero indica boleto sem vencimento e retorna ok=false.
func DueDateFromFactor(factor int, reference time.Time) (due time.Time, ok bool) {
	if factor <= 0 {
		return time.Time{}, false
	}
	if factor < factorMin {
		return FactorBaseDate.AddDate(0, 0, factor), true
	}

	refDays := daysSinceBase(reference)
	best := factor
	for days := factorRolloverDays + factor - factorMin; ; days += factorCycle {
		if abs(days-refDays) < abs(best-refDays) {
			best = days
		}
		if days > refDays {
			break
		}
	}
	return FactorBaseDate.AddDate(0, 0, best), true
}

// daysSinceBase conta em segundos Unix: time.Duration satura em ~292 anos
func daysSinceBase(t time.Time) int {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return int((day.Unix() - FactorBaseDate.Unix()) / secondsPerDay)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
