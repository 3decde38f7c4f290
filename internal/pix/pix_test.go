package pix

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magnani/brtools/internal/domain"
)

func TestCRC16(t *testing.T) {
	assert.Equal(t, "29B1", CRC16("123456789"))
	assert.Equal(t, "FFFF", CRC16(""))
}

func TestGeneratePayload(t *testing.T) {
	tests := []struct {
		name    string
		req     PayloadRequest
		payload string
	}{
		{
			name: "cpf key with amount",
			req: PayloadRequest{
				Key:          "12345678909",
				Amount:       decimal.NewFromInt(10),
				ReceiverName: "Fulano de Tal",
				City:         "BRASILIA",
			},
			payload: "00020126330014br.gov.bcb.pix011112345678909520400005303986540510.005802BR5913Fulano de Tal6008BRASILIA62070503***630441F0",
		},
		{
			name: "email key with description and accented city",
			req: PayloadRequest{
				Key:          "pix@example.com",
				Amount:       decimal.RequireFromString("1.5"),
				ReceiverName: "João da Silva",
				City:         "São Paulo",
				Description:  "Pedido 42",
			},
			payload: "00020126500014br.gov.bcb.pix0115pix@example.com0209Pedido 4252040000530398654041.505802BR5913Joao da Silva6009Sao Paulo62070503***630492B2",
		},
		{
			name: "random key",
			req: PayloadRequest{
				Key:          "123e4567-e12b-12d1-a456-426655440000",
				Amount:       decimal.RequireFromString("0.50"),
				ReceiverName: "Loja",
				City:         "RIO",
			},
			payload: "00020126580014br.gov.bcb.pix0136123e4567-e12b-12d1-a456-42665544000052040000530398654040.505802BR5904Loja6003RIO62070503***63040574",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GeneratePayload(tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.payload, got.Payload)
			assert.Equal(t, tt.payload[len(tt.payload)-4:], got.CRC)
			assert.Equal(t, CRC16(tt.payload[:len(tt.payload)-4]), got.CRC)
			assert.Equal(t, DefaultTxID, got.TxID)
			require.NotNil(t, got.Amount)
		})
	}
}

func TestGeneratePayload_Deterministic(t *testing.T) {
	req := PayloadRequest{Key: "12345678909", Amount: decimal.NewFromInt(10), ReceiverName: "Fulano de Tal", City: "BRASILIA"}

	first, err := GeneratePayload(req)
	require.NoError(t, err)
	second, err := GeneratePayload(req)
	require.NoError(t, err)

	assert.Equal(t, first.Payload, second.Payload)
}

func TestGeneratePayload_InvalidAmount(t *testing.T) {
	amounts := []decimal.Decimal{
		decimal.Zero,
		decimal.NewFromInt(-1),
		decimal.RequireFromString("0.001"),
	}

	for _, amount := range amounts {
		t.Run(amount.String(), func(t *testing.T) {
			_, err := GeneratePayload(PayloadRequest{Key: "12345678909", Amount: amount, ReceiverName: "Fulano", City: "BRASILIA"})
			require.Error(t, err)
			assert.Equal(t, domain.KindInvalidAmount, domain.KindOf(err))
		})
	}
}

func TestEncode_OmitsZeroAmount(t *testing.T) {
	got, err := Encode(PayloadRequest{Key: "12345678909", ReceiverName: "Fulano de Tal", City: "BRASILIA"})
	require.NoError(t, err)

	assert.Equal(t,
		"00020126330014br.gov.bcb.pix0111123456789095204000053039865802BR5913Fulano de Tal6008BRASILIA62070503***6304DBC3",
		got.Payload)
	assert.Nil(t, got.Amount)
	assert.NotContains(t, got.Payload, "5405")
	for _, f := range got.Fields {
		assert.NotEqual(t, TagTransactionAmount, f.Tag)
	}
}

func TestEncode_Validation(t *testing.T) {
	base := PayloadRequest{Key: "12345678909", Amount: decimal.NewFromInt(1), ReceiverName: "Fulano", City: "BRASILIA"}

	tests := []struct {
		name   string
		modify func(r *PayloadRequest)
		kind   domain.Kind
	}{
		{name: "missing key", modify: func(r *PayloadRequest) { r.Key = " " }, kind: domain.KindInvalidFormat},
		{name: "missing name", modify: func(r *PayloadRequest) { r.ReceiverName = "" }, kind: domain.KindInvalidFormat},
		{name: "name without ascii", modify: func(r *PayloadRequest) { r.ReceiverName = "日本" }, kind: domain.KindInvalidFormat},
		{name: "missing city", modify: func(r *PayloadRequest) { r.City = "" }, kind: domain.KindInvalidFormat},
		{name: "txid with space", modify: func(r *PayloadRequest) { r.TxID = "ABC 123" }, kind: domain.KindInvalidFormat},
		{name: "txid too long", modify: func(r *PayloadRequest) { r.TxID = strings.Repeat("A", 26) }, kind: domain.KindInvalidFormat},
		{name: "description too long", modify: func(r *PayloadRequest) { r.Description = strings.Repeat("x", 100) }, kind: domain.KindInvalidFormat},
		{name: "merchant account over 99 bytes", modify: func(r *PayloadRequest) { r.Description = strings.Repeat("x", 70) }, kind: domain.KindInvalidFormat},
		{name: "negative amount", modify: func(r *PayloadRequest) { r.Amount = decimal.NewFromInt(-5) }, kind: domain.KindInvalidAmount},
		{name: "amount over 13 characters", modify: func(r *PayloadRequest) { r.Amount = decimal.NewFromInt(10_000_000_000) }, kind: domain.KindInvalidAmount},
		{name: "huge amount", modify: func(r *PayloadRequest) { r.Amount = decimal.New(1, 40) }, kind: domain.KindInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base
			tt.modify(&req)

			_, err := Encode(req)
			require.Error(t, err)
			assert.Equal(t, tt.kind, domain.KindOf(err))
		})
	}
}

func TestEncode_TruncatesNameAndCity(t *testing.T) {
	got, err := Encode(PayloadRequest{
		Key:          "12345678909",
		ReceiverName: "Empresa de Tecnologia Brasileira Ltda",
		City:         "Sao Jose dos Campos",
		TxID:         "PEDIDO123",
	})
	require.NoError(t, err)

	assert.Equal(t, "Empresa de Tecnologia Bra", got.MerchantName)
	assert.Equal(t, "Sao Jose dos Ca", got.MerchantCity)
	assert.Equal(t, "PEDIDO123", got.TxID)
	assert.Contains(t, got.Payload, "62130509PEDIDO123")
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "São Paulo", want: "Sao Paulo"},
		{input: "  Açaí   Ltda ", want: "Acai Ltda"},
		{input: "Goiânia", want: "Goiania"},
		{input: "BRASILIA", want: "BRASILIA"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeText(tt.input))
		})
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	encoded, err := GeneratePayload(PayloadRequest{
		Key:          "pix@example.com",
		Amount:       decimal.RequireFromString("1.50"),
		ReceiverName: "Joao da Silva",
		City:         "Sao Paulo",
		Description:  "Pedido 42",
		TxID:         "TX42",
	})
	require.NoError(t, err)

	decoded, err := Decode(encoded.Payload)
	require.NoError(t, err)

	assert.Equal(t, encoded.Key, decoded.Key)
	assert.Equal(t, encoded.Description, decoded.Description)
	assert.Equal(t, encoded.MerchantName, decoded.MerchantName)
	assert.Equal(t, encoded.MerchantCity, decoded.MerchantCity)
	assert.Equal(t, encoded.TxID, decoded.TxID)
	assert.Equal(t, encoded.CRC, decoded.CRC)
	require.NotNil(t, decoded.Amount)
	assert.Equal(t, "1.50", decoded.Amount.String())
	assert.Equal(t, encoded.Fields, decoded.Fields)
}

func TestDecode_WithoutAmount(t *testing.T) {
	decoded, err := Decode("00020126330014br.gov.bcb.pix0111123456789095204000053039865802BR5913Fulano de Tal6008BRASILIA62070503***6304DBC3")
	require.NoError(t, err)

	assert.Nil(t, decoded.Amount)
	assert.Equal(t, "12345678909", decoded.Key)
	assert.Equal(t, "***", decoded.TxID)
}

func TestDecode_Errors(t *testing.T) {
	valid := "00020126330014br.gov.bcb.pix011112345678909520400005303986540510.005802BR5913Fulano de Tal6008BRASILIA62070503***630441F0"

	tests := []struct {
		name    string
		payload string
		kind    domain.Kind
	}{
		{name: "tampered body", payload: strings.Replace(valid, "BRASILIA", "BRASILIX", 1), kind: domain.KindChecksumFailed},
		{name: "tampered crc", payload: valid[:len(valid)-4] + "0000", kind: domain.KindChecksumFailed},
		{name: "too short", payload: "6304", kind: domain.KindInvalidFormat},
		{name: "missing crc field", payload: valid[:len(valid)-8], kind: domain.KindInvalidFormat},
		{name: "empty", payload: "", kind: domain.KindInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.payload)
			require.Error(t, err)
			assert.Equal(t, tt.kind, domain.KindOf(err))
		})
	}
}

func TestDecode_RejectsNonDigitLength(t *testing.T) {
	valid := "00020126330014br.gov.bcb.pix011112345678909520400005303986540510.005802BR5913Fulano de Tal6008BRASILIA62070503***630441F0"

	for _, length := range []string{"+2", " 2", "-1", "2 "} {
		t.Run(length, func(t *testing.T) {
			body := "00" + length + valid[4:len(valid)-4]
			_, err := Decode(body + CRC16(body))
			require.Error(t, err)
			assert.Equal(t, domain.KindInvalidFormat, domain.KindOf(err))
		})
	}

	_, err := parseTLV("00+501")
	assert.Error(t, err)
}

func TestDecode_AcceptsLowercaseCRC(t *testing.T) {
	payload := "00020126330014br.gov.bcb.pix0111123456789095204000053039865802BR5913Fulano de Tal6008BRASILIA62070503***6304dbc3"

	decoded, err := Decode(payload)
	require.NoError(t, err)
	assert.Equal(t, "DBC3", decoded.CRC)
}

func TestValidateKey(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		keyType   domain.PixKeyType
		valid     bool
		formatted string
		kind      domain.Kind
	}{
		{name: "cpf formatted", key: "111.444.777-35", keyType: domain.PixKeyCPF, valid: true, formatted: "11144477735"},
		{name: "cpf bad checksum", key: "11144477736", keyType: domain.PixKeyCPF, kind: domain.KindChecksumFailed},
		{name: "cnpj", key: "11.222.333/0001-81", keyType: domain.PixKeyCNPJ, valid: true, formatted: "11222333000181"},
		{name: "cnpj short", key: "1122233300018", keyType: domain.PixKeyCNPJ, kind: domain.KindLengthMismatch},
		{name: "email", key: "Fulano@Example.com", keyType: domain.PixKeyEmail, valid: true, formatted: "fulano@example.com"},
		{name: "email without domain dot", key: "fulano@example", keyType: domain.PixKeyEmail, kind: domain.KindInvalidFormat},
		{name: "email with space", key: "ful ano@example.com", keyType: domain.PixKeyEmail, kind: domain.KindInvalidFormat},
		{name: "phone with country code", key: "+55 (11) 99999-8888", keyType: domain.PixKeyPhone, valid: true, formatted: "+5511999998888"},
		{name: "phone without country code", key: "11999998888", keyType: domain.PixKeyPhone, valid: true, formatted: "+5511999998888"},
		{name: "phone too short", key: "999998888", keyType: domain.PixKeyPhone, kind: domain.KindInvalidFormat},
		{name: "phone foreign prefix", key: "4411999998888", keyType: domain.PixKeyPhone, kind: domain.KindInvalidFormat},
		{name: "random v4", key: "123e4567-e89b-42d3-a456-426614174000", keyType: domain.PixKeyRandom, valid: true, formatted: "123e4567-e89b-42d3-a456-426614174000"},
		{name: "random uppercase", key: "123E4567-E89B-42D3-A456-426614174000", keyType: domain.PixKeyRandom, valid: true, formatted: "123e4567-e89b-42d3-a456-426614174000"},
		{name: "random v1", key: "123e4567-e89b-12d3-a456-426614174000", keyType: domain.PixKeyRandom, kind: domain.KindInvalidFormat},
		{name: "random without hyphens", key: "123e4567e89b42d3a456426614174000", keyType: domain.PixKeyRandom, kind: domain.KindInvalidFormat},
		{name: "random bad variant", key: "123e4567-e89b-42d3-c456-426614174000", keyType: domain.PixKeyRandom, kind: domain.KindInvalidFormat},
		{name: "empty key", key: "", keyType: domain.PixKeyEmail, kind: domain.KindInvalidFormat},
		{name: "key type case insensitive", key: "11144477735", keyType: "CPF", valid: true, formatted: "11144477735"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateKey(tt.key, tt.keyType)
			require.NoError(t, err)
			assert.Equal(t, tt.valid, got.Valid)
			assert.Equal(t, tt.formatted, got.Formatted)
			assert.Equal(t, tt.kind, got.ErrorKind)
			if !tt.valid {
				assert.NotEmpty(t, got.Message)
			}
		})
	}
}

func TestValidateKey_UnknownType(t *testing.T) {
	_, err := ValidateKey("abc", "evp")
	require.Error(t, err)
	assert.Equal(t, domain.KindUnknownEnumValue, domain.KindOf(err))
}

func TestQRCodePNG(t *testing.T) {
	dataURL, err := QRCodePNG("00020126330014br.gov.bcb.pix0111123456789095204000053039865802BR5913Fulano de Tal6008BRASILIA62070503***6304DBC3", 128)
	require.NoError(t, err)

	const prefix = "data:image/png;base64,"
	require.True(t, strings.HasPrefix(dataURL, prefix))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURL, prefix))
	require.NoError(t, err)
	assert.Equal(t, "\x89PNG", string(raw[:4]))
}
