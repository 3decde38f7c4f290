package documents

import (
	"fmt"

	"github.com/magnani/brtools/internal/domain"
)

const pisLength = 11

var pisWeights = []int{3, 2, 9, 8, 7, 6, 5, 4, 3, 2}

// ValidatePIS valida um número PIS/PASEP/NIT (um único dígito verificador).
// Ao contrário de CPF e CNPJ, sequências repetidas seguem apenas o dígito.
func ValidatePIS(input string) domain.DocumentCheckResult {
	digits := OnlyDigits(input)
	if digits == "" {
		return domain.Invalid(domain.DocumentPIS, "", domain.KindInvalidFormat, "PIS é obrigatório")
	}
	if len(digits) != pisLength {
		return domain.Invalid(domain.DocumentPIS, digits, domain.KindLengthMismatch,
			fmt.Sprintf("PIS deve ter %d dígitos, recebido %d", pisLength, len(digits)))
	}

	if int(digits[10]-'0') != PISCheckDigit(digits[:10]) {
		return domain.Invalid(domain.DocumentPIS, digits, domain.KindChecksumFailed, "dígito verificador do PIS não confere")
	}

	return domain.DocumentCheckResult{
		Document:    domain.DocumentPIS,
		Valid:       true,
		Formatted:   FormatPIS(digits),
		Unformatted: digits,
	}
}

// PISCheckDigit calcula o dígito verificador a partir dos 10 primeiros dígitos
func PISCheckDigit(base string) int {
	return mod11Digit(weightedSum(toInts(base), pisWeights))
}

// FormatPIS formata 11 dígitos como XXX.XXXXX.XX-X
func FormatPIS(digits string) string {
	return mask(digits, "###.#####.##-#")
}
