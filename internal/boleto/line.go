package boleto

import (
	"fmt"
	"strconv"
	"time"

	"github.com/magnani/brtools/internal/documents"
	"github.com/magnani/brtools/internal/domain"
	"github.com/magnani/brtools/internal/money"
)

// TypeableLineLength é a quantidade de dígitos da linha digitável
const TypeableLineLength = 47

// Mod10 calcula o dígito verificador de um campo da linha digitável:
// pesos 2 e 1 alternados a partir da direita, somando os algarismos de cada produto.
func Mod10(digits string) int {
	sum, weight := 0, 2
	for i := len(digits) - 1; i >= 0; i-- {
		p := int(digits[i]-'0') * weight
		sum += p/10 + p%10
		if weight == 2 {
			weight = 1
		} else {
			weight = 2
		}
	}
	return (10 - sum%10) % 10
}

// TypeableLine monta a linha digitável no formato
// AAABC.CCCCX DDDDD.DDDDDY EEEEE.EEEEEZ K UUUUVVVVVVVVVV
func TypeableLine(barcode string) string {
	free := barcode[freeStart:]

	field1 := barcode[:4] + free[:5]
	field2 := free[5:15]
	field3 := free[15:25]

	f1 := field1 + strconv.Itoa(Mod10(field1))
	f2 := field2 + strconv.Itoa(Mod10(field2))
	f3 := field3 + strconv.Itoa(Mod10(field3))

	return fmt.Sprintf("%s.%s %s.%s %s.%s %s %s",
		f1[:5], f1[5:],
		f2[:5], f2[5:],
		f3[:5], f3[5:],
		barcode[checkDigitPos:checkDigitPos+1],
		barcode[factorStart:freeStart],
	)
}

// ParseTypeableLine lê uma linha digitável (pontuada ou não), confere os
// quatro dígitos verificadores e reconstrói o código de barras.
// O vencimento é resolvido no ciclo de fator mais próximo da data atual.
func ParseTypeableLine(line string) (*domain.BoletoLine, error) {
	return ParseTypeableLineAt(line, time.Now())
}

// ParseTypeableLineAt é como ParseTypeableLine, usando reference para resolver o vencimento
func ParseTypeableLineAt(line string, reference time.Time) (*domain.BoletoLine, error) {
	digits := documents.OnlyDigits(line)
	if digits == "" {
		return nil, domain.NewError(domain.KindInvalidFormat, "line", "linha digitável é obrigatória")
	}
	if len(digits) != TypeableLineLength {
		return nil, domain.Errorf(domain.KindLengthMismatch, "line",
			"linha digitável deve ter %d dígitos, recebido %d", TypeableLineLength, len(digits))
	}

	fields := []struct {
		name string
		data string
		dv   byte
	}{
		{"field1", digits[0:9], digits[9]},
		{"field2", digits[10:20], digits[20]},
		{"field3", digits[21:31], digits[31]},
	}
	for _, f := range fields {
		if want := Mod10(f.data); int(f.dv-'0') != want {
			return nil, domain.Errorf(domain.KindChecksumFailed, "line",
				"dígito verificador do %s não confere: esperado %d", f.name, want)
		}
	}

	if digits[3:4] != CurrencyReal {
		return nil, domain.Errorf(domain.KindInvalidFormat, "line", "código de moeda não suportado: %s", digits[3:4])
	}

	barcode := digits[0:4] + digits[32:33] + digits[33:47] + digits[4:9] + digits[10:20] + digits[21:31]
	dv := CheckDigit(barcode[:checkDigitPos] + barcode[checkDigitPos+1:])
	if int(barcode[checkDigitPos]-'0') != dv {
		return nil, domain.Errorf(domain.KindChecksumFailed, "line",
			"dígito verificador geral não confere: esperado %d", dv)
	}

	factorStr := barcode[factorStart:amountStart]
	factor, _ := strconv.Atoi(factorStr)
	cents, _ := strconv.ParseInt(barcode[amountStart:freeStart], 10, 64)

	result := &domain.BoletoLine{
		Barcode:       barcode,
		TypeableLine:  TypeableLine(barcode),
		BankCode:      barcode[:3],
		BankName:      Banks.Name(barcode[:3]),
		DueDateFactor: factorStr,
		Amount:        money.NewAmount(money.FromCents(cents)),
		FreeField:     barcode[freeStart:],
	}
	if due, ok := DueDateFromFactor(factor, reference); ok {
		result.DueDate = due.Format(dateLayout)
	}
	return result, nil
}
