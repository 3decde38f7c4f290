package domain

import "github.com/magnani/brtools/internal/money"

// Boleto representa um boleto bancário gerado.
//
// O campo livre é derivado do número do documento e não segue o layout
// de nenhum banco real: serve para testes e simulações, não para compensação.
type Boleto struct {
	Barcode       string       `json:"barcode"`
	TypeableLine  string       `json:"typeable_line"`
	BankCode      string       `json:"bank_code"`
	BankName      string       `json:"bank_name"`
	CurrencyCode  string       `json:"currency_code"`
	CheckDigit    int          `json:"check_digit"`
	DueDate       string       `json:"due_date"` // YYYY-MM-DD
	DueDateFactor string       `json:"due_date_factor"`
	Amount        money.Amount `json:"amount"`
	FreeField     string       `json:"free_field"`
}

// BoletoLine é o resultado da leitura de uma linha digitável
type BoletoLine struct {
	Barcode       string       `json:"barcode"`
	TypeableLine  string       `json:"typeable_line"`
	BankCode      string       `json:"bank_code"`
	BankName      string       `json:"bank_name"`
	DueDateFactor string       `json:"due_date_factor"`
	DueDate       string       `json:"due_date,omitempty"`
	Amount        money.Amount `json:"amount"`
	FreeField     string       `json:"free_field"`
}
