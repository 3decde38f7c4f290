package documents

import (
	"fmt"

	"github.com/magnani/brtools/internal/domain"
)

const cpfLength = 11

// ValidateCPF valida um CPF pelo algoritmo oficial de dois dígitos verificadores
func ValidateCPF(input string) domain.DocumentCheckResult {
	digits := OnlyDigits(input)
	if digits == "" {
		return domain.Invalid(domain.DocumentCPF, "", domain.KindInvalidFormat, "CPF é obrigatório")
	}
	if len(digits) != cpfLength {
		return domain.Invalid(domain.DocumentCPF, digits, domain.KindLengthMismatch,
			fmt.Sprintf("CPF deve ter %d dígitos, recebido %d", cpfLength, len(digits)))
	}
	if allSameDigit(digits) {
		return domain.Invalid(domain.DocumentCPF, digits, domain.KindChecksumFailed, "CPF com todos os dígitos iguais")
	}

	d1, d2 := CPFCheckDigits(digits[:9])
	if int(digits[9]-'0') != d1 || int(digits[10]-'0') != d2 {
		return domain.Invalid(domain.DocumentCPF, digits, domain.KindChecksumFailed, "dígitos verificadores do CPF não conferem")
	}

	return domain.DocumentCheckResult{
		Document:    domain.DocumentCPF,
		Valid:       true,
		Formatted:   FormatCPF(digits),
		Unformatted: digits,
	}
}

// CPFCheckDigits calcula os dois dígitos verificadores a partir dos 9 primeiros dígitos
func CPFCheckDigits(base string) (int, int) {
	d := toInts(base)

	// Primeiro dígito: pesos 10..2
	sum := 0
	for i := 0; i < 9; i++ {
		sum += d[i] * (10 - i)
	}
	first := mod11Digit(sum)

	// Segundo dígito: pesos 11..3 sobre a base e 2 sobre o primeiro dígito
	sum = 0
	for i := 0; i < 9; i++ {
		sum += d[i] * (11 - i)
	}
	sum += first * 2
	second := mod11Digit(sum)

	return first, second
}

// FormatCPF formata 11 dígitos como XXX.XXX.XXX-XX
func FormatCPF(digits string) string {
	return mask(digits, "###.###.###-##")
}
