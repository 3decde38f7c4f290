package documents

import (
	"fmt"

	"github.com/magnani/brtools/internal/domain"
)

const cnpjLength = 14

var (
	cnpjFirstWeights  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjSecondWeights = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// ValidateCNPJ valida um CNPJ numérico pelo algoritmo de dois dígitos verificadores
func ValidateCNPJ(input string) domain.DocumentCheckResult {
	digits := OnlyDigits(input)
	if digits == "" {
		return domain.Invalid(domain.DocumentCNPJ, "", domain.KindInvalidFormat, "CNPJ é obrigatório")
	}
	if len(digits) != cnpjLength {
		return domain.Invalid(domain.DocumentCNPJ, digits, domain.KindLengthMismatch,
			fmt.Sprintf("CNPJ deve ter %d dígitos, recebido %d", cnpjLength, len(digits)))
	}
	if allSameDigit(digits) {
		return domain.Invalid(domain.DocumentCNPJ, digits, domain.KindChecksumFailed, "CNPJ com todos os dígitos iguais")
	}

	d1, d2 := CNPJCheckDigits(digits[:12])
	if int(digits[12]-'0') != d1 || int(digits[13]-'0') != d2 {
		return domain.Invalid(domain.DocumentCNPJ, digits, domain.KindChecksumFailed, "dígitos verificadores do CNPJ não conferem")
	}

	return domain.DocumentCheckResult{
		Document:    domain.DocumentCNPJ,
		Valid:       true,
		Formatted:   FormatCNPJ(digits),
		Unformatted: digits,
	}
}

// CNPJCheckDigits calcula os dois dígitos verificadores a partir dos 12 primeiros dígitos
func CNPJCheckDigits(base string) (int, int) {
	d := toInts(base)
	first := mod11Digit(weightedSum(d, cnpjFirstWeights))
	d = append(d, first)
	second := mod11Digit(weightedSum(d, cnpjSecondWeights))
	return first, second
}

// FormatCNPJ formata 14 dígitos como XX.XXX.XXX/XXXX-XX
func FormatCNPJ(digits string) string {
	return mask(digits, "##.###.###/####-##")
}
