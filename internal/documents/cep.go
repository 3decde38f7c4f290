package documents

import (
	"fmt"

	"github.com/magnani/brtools/internal/domain"
)

const cepLength = 8

// NormalizeCEP verifica o formato de um CEP (8 dígitos) e o formata como XXXXX-XXX.
// Não existe dígito verificador: só o endereço consultado confirma que o CEP existe.
func NormalizeCEP(input string) domain.DocumentCheckResult {
	digits := OnlyDigits(input)
	if digits == "" {
		return domain.Invalid(domain.DocumentCEP, "", domain.KindInvalidFormat, "CEP é obrigatório")
	}
	if len(digits) != cepLength {
		return domain.Invalid(domain.DocumentCEP, digits, domain.KindLengthMismatch,
			fmt.Sprintf("CEP deve ter %d dígitos, recebido %d", cepLength, len(digits)))
	}
	if digits == "00000000" {
		return domain.Invalid(domain.DocumentCEP, digits, domain.KindInvalidFormat, "CEP inexistente")
	}

	return domain.DocumentCheckResult{
		Document:    domain.DocumentCEP,
		Valid:       true,
		Formatted:   mask(digits, "#####-###"),
		Unformatted: digits,
	}
}
