package documents

import (
	"fmt"

	"github.com/magnani/brtools/internal/domain"
)

const (
	voterIDLength = 12
	unknownState  = "Unknown"
)

// voterStates mapeia o código da UF no título de eleitor para a sigla
var voterStates = map[string]string{
	"01": "SP", "02": "MG", "03": "RJ", "04": "RS", "05": "BA", "06": "PR",
	"07": "CE", "08": "PE", "09": "SC", "10": "GO", "11": "MA", "12": "PB",
	"13": "PA", "14": "ES", "15": "PI", "16": "RN", "17": "AL", "18": "MT",
	"19": "MS", "20": "DF", "21": "SE", "22": "AM", "23": "RO", "24": "AC",
	"25": "AP", "26": "RR", "27": "TO",
}

// VoterState retorna a sigla da UF para o código do título, ou "Unknown"
func VoterState(code string) string {
	if uf, ok := voterStates[code]; ok {
		return uf
	}
	return unknownState
}

// ValidateVoterID valida um título de eleitor (12 dígitos: sequencial, UF e dois verificadores).
// Um código de UF desconhecido não invalida o título; o estado é reportado como "Unknown".
func ValidateVoterID(input string) domain.DocumentCheckResult {
	digits := OnlyDigits(input)
	if digits == "" {
		return domain.Invalid(domain.DocumentVoterID, "", domain.KindInvalidFormat, "título de eleitor é obrigatório")
	}
	if len(digits) != voterIDLength {
		return domain.Invalid(domain.DocumentVoterID, digits, domain.KindLengthMismatch,
			fmt.Sprintf("título de eleitor deve ter %d dígitos, recebido %d", voterIDLength, len(digits)))
	}

	stateCode := digits[8:10]
	state := VoterState(stateCode)

	d1, d2 := VoterIDCheckDigits(digits[:8], stateCode)
	if int(digits[10]-'0') != d1 || int(digits[11]-'0') != d2 {
		result := domain.Invalid(domain.DocumentVoterID, digits, domain.KindChecksumFailed, "dígitos verificadores do título não conferem")
		result.State = state
		result.StateCode = stateCode
		return result
	}

	return domain.DocumentCheckResult{
		Document:    domain.DocumentVoterID,
		Valid:       true,
		Formatted:   FormatVoterID(digits),
		Unformatted: digits,
		State:       state,
		StateCode:   stateCode,
	}
}

// VoterIDCheckDigits calcula os dígitos verificadores do título.
// O primeiro usa pesos 2..9 sobre o sequencial; o segundo usa a UF (pesos 7 e 8)
// e o primeiro dígito (peso 9). Resto 10 vira 0; em SP e MG resto 0 vira 1.
func VoterIDCheckDigits(sequence, stateCode string) (int, int) {
	seq := toInts(sequence)
	uf := toInts(stateCode)
	spOrMG := stateCode == "01" || stateCode == "02"

	sum := 0
	for i := 0; i < 8; i++ {
		sum += seq[i] * (i + 2)
	}
	first := voterDigit(sum%11, spOrMG)

	sum = uf[0]*7 + uf[1]*8 + first*9
	second := voterDigit(sum%11, spOrMG)

	return first, second
}

func voterDigit(rest int, spOrMG bool) int {
	switch {
	case rest == 10:
		return 0
	case rest == 0 && spOrMG:
		return 1
	default:
		return rest
	}
}

// FormatVoterID formata 12 dígitos como XXXX XXXX XXXX
func FormatVoterID(digits string) string {
	return mask(digits, "#### #### ####")
}
