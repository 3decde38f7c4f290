package pix

import (
	"strings"

	"github.com/magnani/brtools/internal/domain"
	"github.com/magnani/brtools/internal/money"
)

// Decode lê um BR Code "copia e cola", confere o CRC e devolve os campos.
// Campos desconhecidos são preservados em Fields.
func Decode(payload string) (*domain.PixPayload, error) {
	payload = strings.TrimSpace(payload)
	if len(payload) < len(crcMarker)+4 {
		return nil, domain.NewError(domain.KindInvalidFormat, "payload", "payload muito curto")
	}

	markerPos := len(payload) - 8
	if payload[markerPos:markerPos+4] != crcMarker {
		return nil, domain.NewError(domain.KindInvalidFormat, "payload", "payload deve terminar com o campo CRC 6304")
	}
	crc := strings.ToUpper(payload[len(payload)-4:])
	if expected := CRC16(payload[:len(payload)-4]); expected != crc {
		return nil, domain.Errorf(domain.KindChecksumFailed, "crc16", "CRC não confere: esperado %s, recebido %s", expected, crc)
	}

	fields, err := parseTLV(payload)
	if err != nil {
		return nil, err
	}

	result := &domain.PixPayload{Payload: payload, CRC: crc}
	var sawGUI bool
	for _, f := range fields {
		field := domain.PixField{Tag: f.Tag, Name: fieldNames[f.Tag], Value: f.Value}

		switch f.Tag {
		case TagPayloadFormat:
			if f.Value != PayloadFormatIndicator {
				return nil, domain.Errorf(domain.KindInvalidFormat, "payload_format_indicator", "indicador de formato inesperado: %s", f.Value)
			}
		case TagMerchantAccount:
			subs, err := parseTLV(f.Value)
			if err != nil {
				return nil, err
			}
			field.Value = ""
			for _, sub := range subs {
				switch sub.Tag {
				case TagGUI:
					sawGUI = strings.EqualFold(sub.Value, GUI)
					field.Sub = append(field.Sub, domain.PixField{Tag: sub.Tag, Name: "gui", Value: sub.Value})
				case TagKey:
					result.Key = sub.Value
					field.Sub = append(field.Sub, domain.PixField{Tag: sub.Tag, Name: "key", Value: sub.Value})
				case TagDescription:
					result.Description = sub.Value
					field.Sub = append(field.Sub, domain.PixField{Tag: sub.Tag, Name: "description", Value: sub.Value})
				default:
					field.Sub = append(field.Sub, domain.PixField{Tag: sub.Tag, Value: sub.Value})
				}
			}
		case TagTransactionAmount:
			value, err := money.Parse(f.Value)
			if err != nil {
				return nil, domain.Errorf(domain.KindInvalidAmount, "amount", "valor inválido no payload: %s", f.Value)
			}
			amount := money.NewAmount(value)
			result.Amount = &amount
		case TagMerchantName:
			result.MerchantName = f.Value
		case TagMerchantCity:
			result.MerchantCity = f.Value
		case TagAdditionalData:
			subs, err := parseTLV(f.Value)
			if err != nil {
				return nil, err
			}
			field.Value = ""
			for _, sub := range subs {
				name := ""
				if sub.Tag == TagTxID {
					name = "txid"
					result.TxID = sub.Value
				}
				field.Sub = append(field.Sub, domain.PixField{Tag: sub.Tag, Name: name, Value: sub.Value})
			}
		}

		result.Fields = append(result.Fields, field)
	}

	if !sawGUI || result.Key == "" {
		return nil, domain.NewError(domain.KindInvalidFormat, "merchant_account_info", "payload não contém uma chave PIX (br.gov.bcb.pix)")
	}
	return result, nil
}
