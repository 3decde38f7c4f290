package pix

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/magnani/brtools/internal/domain"
	"github.com/magnani/brtools/internal/money"
)

// Tags do BR Code (EMV QRCPS-MPM)
const (
	TagPayloadFormat       = "00"
	TagMerchantAccount     = "26"
	TagMerchantCategory    = "52"
	TagTransactionCurrency = "53"
	TagTransactionAmount   = "54"
	TagCountryCode         = "58"
	TagMerchantName        = "59"
	TagMerchantCity        = "60"
	TagAdditionalData      = "62"
	TagCRC16               = "63"

	// Subcampos do campo 26
	TagGUI         = "00"
	TagKey         = "01"
	TagDescription = "02"

	// Subcampo do campo 62
	TagTxID = "05"
)

// Valores fixos do BR Code
const (
	PayloadFormatIndicator = "01"
	GUI                    = "br.gov.bcb.pix"
	MerchantCategoryCode   = "0000"
	CurrencyBRL            = "986"
	CountryCode            = "BR"
	DefaultTxID            = "***"

	MaxMerchantNameLength = 25
	MaxMerchantCityLength = 15
	MaxTxIDLength         = 25
	MaxAmountLength       = 13

	// crcMarker é o tag+tamanho do CRC, incluído no cálculo
	crcMarker = TagCRC16 + "04"
)

var fieldNames = map[string]string{
	TagPayloadFormat:       "payload_format_indicator",
	TagMerchantAccount:     "merchant_account_info",
	TagMerchantCategory:    "merchant_category_code",
	TagTransactionCurrency: "currency_code",
	TagTransactionAmount:   "amount",
	TagCountryCode:         "country_code",
	TagMerchantName:        "merchant_name",
	TagMerchantCity:        "merchant_city",
	TagAdditionalData:      "additional_data",
	TagCRC16:               "crc16",
}

// PayloadRequest contém os dados para montar um BR Code estático
type PayloadRequest struct {
	Key          string
	Amount       decimal.Decimal // Zero omite o campo 54
	ReceiverName string
	City         string
	Description  string // Opcional
	TxID         string // Opcional, "***" se vazio
}

// GeneratePayload monta o BR Code de uma cobrança com valor definido.
// O valor deve ser positivo.
func GeneratePayload(req PayloadRequest) (*domain.PixPayload, error) {
	if !money.Round2(req.Amount).IsPositive() {
		return nil, domain.NewError(domain.KindInvalidAmount, "amount", "valor deve ser maior que zero")
	}
	return Encode(req)
}

// Encode monta o BR Code sem exigir valor: com Amount zero o campo 54 é omitido
// e o pagador informa o valor no app.
func Encode(req PayloadRequest) (*domain.PixPayload, error) {
	key := strings.TrimSpace(req.Key)
	if key == "" {
		return nil, domain.NewError(domain.KindInvalidFormat, "key", "chave PIX é obrigatória")
	}
	if req.Amount.IsNegative() {
		return nil, domain.NewError(domain.KindInvalidAmount, "amount", "valor não pode ser negativo")
	}

	name := truncate(NormalizeText(req.ReceiverName), MaxMerchantNameLength)
	if name == "" {
		return nil, domain.NewError(domain.KindInvalidFormat, "receiver_name", "nome do recebedor é obrigatório")
	}
	city := truncate(NormalizeText(req.City), MaxMerchantCityLength)
	if city == "" {
		return nil, domain.NewError(domain.KindInvalidFormat, "city", "cidade é obrigatória")
	}

	txid := strings.TrimSpace(req.TxID)
	if txid == "" {
		txid = DefaultTxID
	} else if !validTxID(txid) {
		return nil, domain.Errorf(domain.KindInvalidFormat, "txid",
			"txid deve ter até %d caracteres alfanuméricos", MaxTxIDLength)
	}
	description := strings.TrimSpace(req.Description)

	// Campo 26: GUI -> chave -> descrição
	var account tlvWriter
	account.add(TagGUI, GUI)
	account.add(TagKey, key)
	if description != "" {
		account.add(TagDescription, description)
	}
	if account.err != nil {
		return nil, account.err
	}

	var additional tlvWriter
	additional.add(TagTxID, txid)

	var w tlvWriter
	w.add(TagPayloadFormat, PayloadFormatIndicator)
	w.add(TagMerchantAccount, account.String())
	w.add(TagMerchantCategory, MerchantCategoryCode)
	w.add(TagTransactionCurrency, CurrencyBRL)

	var amount *money.Amount
	if a := money.NewAmount(req.Amount); a.IsPositive() {
		if len(a.String()) > MaxAmountLength {
			return nil, domain.Errorf(domain.KindInvalidAmount, "amount",
				"valor excede %d caracteres do campo 54", MaxAmountLength)
		}
		amount = &a
		w.add(TagTransactionAmount, a.String())
	}

	w.add(TagCountryCode, CountryCode)
	w.add(TagMerchantName, name)
	w.add(TagMerchantCity, city)
	w.add(TagAdditionalData, additional.String())
	if w.err != nil {
		return nil, w.err
	}

	body := w.String() + crcMarker
	crc := CRC16(body)

	result := &domain.PixPayload{
		Payload:      body + crc,
		CRC:          crc,
		Key:          key,
		Description:  description,
		Amount:       amount,
		MerchantName: name,
		MerchantCity: city,
		TxID:         txid,
	}
	result.Fields = describeFields(result)
	return result, nil
}

// describeFields lista os campos na ordem em que foram codificados
func describeFields(p *domain.PixPayload) []domain.PixField {
	account := []domain.PixField{
		{Tag: TagGUI, Name: "gui", Value: GUI},
		{Tag: TagKey, Name: "key", Value: p.Key},
	}
	if p.Description != "" {
		account = append(account, domain.PixField{Tag: TagDescription, Name: "description", Value: p.Description})
	}

	fields := []domain.PixField{
		{Tag: TagPayloadFormat, Name: fieldNames[TagPayloadFormat], Value: PayloadFormatIndicator},
		{Tag: TagMerchantAccount, Name: fieldNames[TagMerchantAccount], Sub: account},
		{Tag: TagMerchantCategory, Name: fieldNames[TagMerchantCategory], Value: MerchantCategoryCode},
		{Tag: TagTransactionCurrency, Name: fieldNames[TagTransactionCurrency], Value: CurrencyBRL},
	}
	if p.Amount != nil {
		fields = append(fields, domain.PixField{Tag: TagTransactionAmount, Name: fieldNames[TagTransactionAmount], Value: p.Amount.String()})
	}
	return append(fields,
		domain.PixField{Tag: TagCountryCode, Name: fieldNames[TagCountryCode], Value: CountryCode},
		domain.PixField{Tag: TagMerchantName, Name: fieldNames[TagMerchantName], Value: p.MerchantName},
		domain.PixField{Tag: TagMerchantCity, Name: fieldNames[TagMerchantCity], Value: p.MerchantCity},
		domain.PixField{Tag: TagAdditionalData, Name: fieldNames[TagAdditionalData], Sub: []domain.PixField{
			{Tag: TagTxID, Name: "txid", Value: p.TxID},
		}},
		domain.PixField{Tag: TagCRC16, Name: fieldNames[TagCRC16], Value: p.CRC},
	)
}

func validTxID(txid string) bool {
	if len(txid) > MaxTxIDLength {
		return false
	}
	for _, r := range txid {
		isAlnum := (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		if !isAlnum {
			return false
		}
	}
	return true
}
