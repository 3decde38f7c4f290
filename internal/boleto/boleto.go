// Package boleto gera e lê códigos de barras e linhas digitáveis de boletos
// de cobrança no padrão FEBRABAN.
//
// O campo livre (posições 20 a 44) é montado a partir do número do documento
// e não segue o layout de carteira de nenhum banco. Os códigos gerados são
// estruturalmente válidos, mas não devem ser usados para cobrança real.
package boleto

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/magnani/brtools/internal/documents"
	"github.com/magnani/brtools/internal/domain"
	"github.com/magnani/brtools/internal/money"
)

const dateLayout = "2006-01-02"

var acceptedDateLayouts = []string{dateLayout, "02/01/2006"}

// maxCents é o maior valor que cabe nos 10 dígitos do campo valor
const maxCents = 9_999_999_999

// Request contém os dados para gerar um boleto
type Request struct {
	BankCode       string
	Amount         decimal.Decimal
	DueDate        string // YYYY-MM-DD ou DD/MM/YYYY
	DocumentNumber string
}

// Generate monta o código de barras e a linha digitável
func Generate(req Request) (*domain.Boleto, error) {
	bankCode := strings.TrimSpace(req.BankCode)
	if len(bankCode) != 3 || !isDigits(bankCode) {
		return nil, domain.NewError(domain.KindInvalidFormat, "bank_code", "código do banco deve ter exatamente 3 dígitos")
	}

	if !req.Amount.IsPositive() {
		return nil, domain.NewError(domain.KindInvalidAmount, "amount", "valor deve ser maior que zero")
	}
	cents, ok := money.Cents(req.Amount)
	if ok && cents <= 0 {
		return nil, domain.NewError(domain.KindInvalidAmount, "amount", "valor deve ser de pelo menos 0.01")
	}
	if !ok || cents > maxCents {
		return nil, domain.NewError(domain.KindInvalidAmount, "amount", "valor excede o limite de 10 dígitos do código de barras")
	}

	due, err := ParseDate(req.DueDate)
	if err != nil {
		return nil, err
	}
	factor, err := DueDateFactor(due)
	if err != nil {
		return nil, err
	}

	free, err := FreeField(req.DocumentNumber)
	if err != nil {
		return nil, err
	}

	factorStr := fmt.Sprintf("%04d", factor)
	amountStr := fmt.Sprintf("%0*d", AmountFieldWidth, cents)

	partial := bankCode + CurrencyReal + factorStr + amountStr + free
	dv := CheckDigit(partial)
	barcode := partial[:checkDigitPos] + fmt.Sprint(dv) + partial[checkDigitPos:]

	return &domain.Boleto{
		Barcode:       barcode,
		TypeableLine:  TypeableLine(barcode),
		BankCode:      bankCode,
		BankName:      Banks.Name(bankCode),
		CurrencyCode:  CurrencyReal,
		CheckDigit:    dv,
		DueDate:       due.Format(dateLayout),
		DueDateFactor: factorStr,
		Amount:        money.NewAmount(money.FromCents(cents)),
		FreeField:     free,
	}, nil
}

// FreeField extrai os dígitos do número do documento e completa com zeros à
// esquerda até 25 posições. Números maiores mantêm os 25 primeiros dígitos.
func FreeField(documentNumber string) (string, error) {
	digits := documents.OnlyDigits(documentNumber)
	if digits == "" {
		return "", domain.NewError(domain.KindInvalidFormat, "document_number", "número do documento deve conter ao menos um dígito")
	}
	if len(digits) > FreeFieldLength {
		return digits[:FreeFieldLength], nil
	}
	return strings.Repeat("0", FreeFieldLength-len(digits)) + digits, nil
}

// ParseDate aceita YYYY-MM-DD ou DD/MM/YYYY
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range acceptedDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, domain.Errorf(domain.KindInvalidFormat, "due_date",
		"data de vencimento inválida %q (use YYYY-MM-DD)", value)
}
