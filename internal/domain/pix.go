package domain

import "github.com/magnani/brtools/internal/money"

// PixKeyType define o tipo da chave PIX
type PixKeyType string

const (
	PixKeyCPF    PixKeyType = "cpf"
	PixKeyCNPJ   PixKeyType = "cnpj"
	PixKeyEmail  PixKeyType = "email"
	PixKeyPhone  PixKeyType = "phone"
	PixKeyRandom PixKeyType = "random"
)

// ValidPixKeyTypes lista todos os tipos de chave aceitos
var ValidPixKeyTypes = []PixKeyType{
	PixKeyCPF,
	PixKeyCNPJ,
	PixKeyEmail,
	PixKeyPhone,
	PixKeyRandom,
}

// IsValid verifica se o tipo de chave é conhecido
func (t PixKeyType) IsValid() bool {
	for _, v := range ValidPixKeyTypes {
		if t == v {
			return true
		}
	}
	return false
}

// PixKeyResult é o resultado da validação de uma chave PIX
type PixKeyResult struct {
	Valid     bool       `json:"valid"`
	Key       string     `json:"key"`
	KeyType   PixKeyType `json:"key_type"`
	Formatted string     `json:"formatted,omitempty"` // Chave normalizada (ex: +5511999998888)
	ErrorKind Kind       `json:"error_kind,omitempty"`
	Message   string     `json:"message,omitempty"`
}

// PixField é um campo TLV do BR Code
type PixField struct {
	Tag   string     `json:"tag"`
	Name  string     `json:"name"`
	Value string     `json:"value,omitempty"`
	Sub   []PixField `json:"sub,omitempty"`
}

// PixPayload é um BR Code PIX já codificado
type PixPayload struct {
	Payload      string        `json:"payload"`
	CRC          string        `json:"crc"`
	Key          string        `json:"key"`
	Description  string        `json:"description,omitempty"`
	Amount       *money.Amount `json:"amount,omitempty"`
	MerchantName string        `json:"merchant_name"`
	MerchantCity string        `json:"merchant_city"`
	TxID         string        `json:"txid"`
	Fields       []PixField    `json:"fields"`

	// Preenchido pela camada de ferramentas (data URL PNG)
	QRCode string `json:"qr_code,omitempty"`
}
