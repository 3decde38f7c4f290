package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/magnani/brtools/internal/domain"
	"github.com/magnani/brtools/internal/mocks"
	"github.com/magnani/brtools/internal/ports"
)

func newTestDispatcher(t *testing.T, addresses ports.AddressLookup, companies ports.CompanyLookup) *Dispatcher {
	t.Helper()
	d, err := NewDispatcher(Options{Addresses: addresses, Companies: companies})
	require.NoError(t, err)
	return d
}

func callJSON(t *testing.T, d *Dispatcher, name, args string) (Response, string) {
	t.Helper()
	resp := d.Call(context.Background(), name, json.RawMessage(args))
	body, err := json.Marshal(resp)
	require.NoError(t, err)
	return resp, string(body)
}

func TestCall_Documents(t *testing.T) {
	d := newTestDispatcher(t, nil, nil)

	tests := []struct {
		tool      string
		args      string
		valid     bool
		formatted string
	}{
		{tool: ToolValidateCPF, args: `{"cpf": "111.444.777-35"}`, valid: true, formatted: "111.444.777-35"},
		{tool: ToolValidateCPF, args: `{"cpf": "111.444.777-36"}`, valid: false},
		{tool: ToolValidateCNPJ, args: `{"cnpj": "11222333000181"}`, valid: true, formatted: "11.222.333/0001-81"},
		{tool: ToolValidateCPF, args: `{}`, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.tool+" "+tt.args, func(t *testing.T) {
			resp, _ := callJSON(t, d, tt.tool, tt.args)
			require.False(t, resp.IsError())

			result, ok := resp.Result.(domain.DocumentCheckResult)
			require.True(t, ok)
			assert.Equal(t, tt.valid, result.Valid)
			assert.Equal(t, tt.formatted, result.Formatted)
		})
	}
}

func TestCall_GeneratePixQR(t *testing.T) {
	d := newTestDispatcher(t, nil, nil)

	resp, body := callJSON(t, d, ToolGeneratePixQR,
		`{"key": "12345678909", "amount": 10, "receiver_name": "Fulano de Tal", "city": "BRASILIA"}`)
	require.False(t, resp.IsError(), body)

	payload, ok := resp.Result.(*domain.PixPayload)
	require.True(t, ok)
	assert.Equal(t,
		"00020126330014br.gov.bcb.pix011112345678909520400005303986540510.005802BR5913Fulano de Tal6008BRASILIA62070503***630441F0",
		payload.Payload)
	assert.True(t, strings.HasPrefix(payload.QRCode, "data:image/png;base64,"))
	assert.Contains(t, body, `"amount":10.00`)

	decoded, decodedBody := callJSON(t, d, ToolDecodePixPayload, fmt.Sprintf(`{"payload": %q}`, payload.Payload))
	require.False(t, decoded.IsError(), decodedBody)
	assert.Equal(t, "41F0", decoded.Result.(*domain.PixPayload).CRC)
}

func TestCall_GeneratePixQR_AmountAsString(t *testing.T) {
	d := newTestDispatcher(t, nil, nil)

	resp, body := callJSON(t, d, ToolGeneratePixQR,
		`{"key": "12345678909", "amount": "10.00", "receiver_name": "Fulano de Tal", "city": "BRASILIA", "size": 128}`)
	require.False(t, resp.IsError(), body)
	assert.Equal(t, "41F0", resp.Result.(*domain.PixPayload).CRC)
}

func TestCall_Boleto(t *testing.T) {
	d := newTestDispatcher(t, nil, nil)

	resp, body := callJSON(t, d, ToolGenerateBoleto,
		`{"bank_code": "001", "amount": 100.50, "due_date": "2024-12-31", "document_number": "123456"}`)
	require.False(t, resp.IsError(), body)

	generated := resp.Result.(*domain.Boleto)
	assert.Equal(t, "00194994700000100500000000000000000000123456", generated.Barcode)

	parsed, parsedBody := callJSON(t, d, ToolParseBoletoLine, fmt.Sprintf(`{"typeable_line": %q}`, generated.TypeableLine))
	require.False(t, parsed.IsError(), parsedBody)

	line := parsed.Result.(*domain.BoletoLine)
	assert.Equal(t, generated.Barcode, line.Barcode)
	assert.Equal(t, "100.50", line.Amount.String())
}

func TestCall_Payroll(t *testing.T) {
	d := newTestDispatcher(t, nil, nil)

	tests := []struct {
		name     string
		tool     string
		args     string
		contains []string
	}{
		{
			name:     "fgts",
			tool:     ToolFGTS,
			args:     `{"salary": 3000}`,
			contains: []string{`"fgts_deposit":240.00`, `"fgts_rate":0.08`, `"fine_on_dismissal":1152.00`},
		},
		{
			name:     "inss employee",
			tool:     ToolINSS,
			args:     `{"salary": 3000}`,
			contains: []string{`"contribution":258.82`, `"type":"employee"`},
		},
		{
			name:     "inss self-employed",
			tool:     ToolINSS,
			args:     `{"salary": 3000, "type": "self-employed"}`,
			contains: []string{`"contribution":600.00`},
		},
		{
			name:     "income tax with dependents",
			tool:     ToolIncomeTax,
			args:     `{"monthly_income": 5000, "dependents": 2}`,
			contains: []string{`"tax":387.95`, `"net_income":4612.05`},
		},
		{
			name:     "vacation defaults to 30 days",
			tool:     ToolVacation,
			args:     `{"salary": 3000}`,
			contains: []string{`"days":30`, `"sell_days":0`, `"net_total":3372.91`},
		},
		{
			name:     "13th defaults to 12 months",
			tool:     ToolThirteenthSalary,
			args:     `{"salary": 3000}`,
			contains: []string{`"months_worked":12`, `"second_installment_net":1161.58`, `"net_total":2661.58`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := callJSON(t, d, tt.tool, tt.args)
			require.False(t, resp.IsError(), body)
			for _, want := range tt.contains {
				assert.Contains(t, body, want)
			}
		})
	}
}

func TestCall_Failures(t *testing.T) {
	d := newTestDispatcher(t, nil, nil)

	tests := []struct {
		name  string
		tool  string
		args  string
		kind  domain.Kind
		field string
	}{
		{name: "unknown tool", tool: "format_disk", args: `{}`, kind: domain.KindUnknownTool},
		{name: "malformed json", tool: ToolFGTS, args: `{"salary": `, kind: domain.KindInvalidFormat},
		{name: "wrong type", tool: ToolValidateCPF, args: `{"cpf": 123}`, kind: domain.KindInvalidFormat, field: "cpf"},
		{name: "not a number", tool: ToolFGTS, args: `{"salary": "abc"}`, kind: domain.KindInvalidFormat},
		{name: "array instead of object", tool: ToolFGTS, args: `[1, 2]`, kind: domain.KindInvalidFormat},
		{name: "missing salary", tool: ToolFGTS, args: `{}`, kind: domain.KindInvalidAmount, field: "salary"},
		{name: "null args", tool: ToolINSS, args: `null`, kind: domain.KindInvalidAmount, field: "salary"},
		{name: "negative salary", tool: ToolFGTS, args: `{"salary": -1}`, kind: domain.KindInvalidAmount},
		{name: "unknown inss type", tool: ToolINSS, args: `{"salary": 1000, "type": "intern"}`, kind: domain.KindUnknownEnumValue, field: "type"},
		{name: "vacation days", tool: ToolVacation, args: `{"salary": 3000, "days": 31}`, kind: domain.KindOutOfRange},
		{name: "sell days", tool: ToolVacation, args: `{"salary": 3000, "sell_days": 11}`, kind: domain.KindOutOfRange},
		{name: "months worked", tool: ToolThirteenthSalary, args: `{"salary": 3000, "months_worked": 13}`, kind: domain.KindOutOfRange},
		{name: "pix zero amount", tool: ToolGeneratePixQR, args: `{"key": "k", "amount": 0, "receiver_name": "A", "city": "B"}`, kind: domain.KindInvalidAmount},
		{name: "pix missing amount", tool: ToolGeneratePixQR, args: `{"key": "k", "receiver_name": "A", "city": "B"}`, kind: domain.KindInvalidAmount, field: "amount"},
		{name: "pix qr size", tool: ToolGeneratePixQR, args: `{"key": "k", "amount": 1, "receiver_name": "A", "city": "B", "size": 4096}`, kind: domain.KindOutOfRange, field: "size"},
		{name: "pix tampered payload", tool: ToolDecodePixPayload, args: `{"payload": "00020126330014br.gov.bcb.pix011112345678909520400005303986540510.005802BR5913Fulano de Tal6008BRASILIA62070503***630441F1"}`, kind: domain.KindChecksumFailed},
		{name: "pix unknown key type", tool: ToolValidatePixKey, args: `{"key": "a@b.co", "key_type": "evp"}`, kind: domain.KindUnknownEnumValue},
		{name: "boleto bank code", tool: ToolGenerateBoleto, args: `{"bank_code": "1", "amount": 10, "due_date": "2024-12-31", "document_number": "1"}`, kind: domain.KindInvalidFormat, field: "bank_code"},
		{name: "boleto bad date", tool: ToolGenerateBoleto, args: `{"bank_code": "001", "amount": 10, "due_date": "2024-02-30", "document_number": "1"}`, kind: domain.KindInvalidFormat},
		{name: "tiny exponent", tool: ToolFGTS, args: `{"salary": 1e-50000000}`, kind: domain.KindInvalidAmount, field: "salary"},
		{name: "huge exponent", tool: ToolIncomeTax, args: `{"monthly_income": 1e400}`, kind: domain.KindInvalidAmount, field: "monthly_income"},
		{name: "too many digits", tool: ToolINSS, args: `{"salary": "` + strings.Repeat("9", 40) + `"}`, kind: domain.KindInvalidAmount, field: "salary"},
		{name: "pix amount over 13 characters", tool: ToolGeneratePixQR, args: `{"key": "k", "amount": 1e12, "receiver_name": "A", "city": "B"}`, kind: domain.KindInvalidAmount, field: "amount"},
		{name: "pix amount scale", tool: ToolGeneratePixQR, args: `{"key": "k", "amount": 1e40, "receiver_name": "A", "city": "B"}`, kind: domain.KindInvalidAmount, field: "amount"},
		{name: "boleto amount overflows int64", tool: ToolGenerateBoleto, args: `{"bank_code": "001", "amount": "184467440737095526.66", "due_date": "2024-12-31", "document_number": "1"}`, kind: domain.KindInvalidAmount, field: "amount"},
		{name: "boleto line length", tool: ToolParseBoletoLine, args: `{"typeable_line": "123"}`, kind: domain.KindLengthMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := callJSON(t, d, tt.tool, tt.args)
			require.True(t, resp.IsError(), body)
			assert.Nil(t, resp.Result)
			assert.Equal(t, tt.kind, resp.Failure.Kind, resp.Failure.Message)
			if tt.field != "" {
				assert.Equal(t, tt.field, resp.Failure.Field)
			}
			assert.Contains(t, body, `"error":true`)
			assert.Contains(t, body, fmt.Sprintf(`"kind":%q`, tt.kind))
		})
	}
}

func TestCall_ValidatePixKey(t *testing.T) {
	d := newTestDispatcher(t, nil, nil)

	resp, body := callJSON(t, d, ToolValidatePixKey, `{"key": "(11) 99999-8888", "key_type": "phone"}`)
	require.False(t, resp.IsError(), body)

	result := resp.Result.(*domain.PixKeyResult)
	assert.True(t, result.Valid)
	assert.Equal(t, "+5511999998888", result.Formatted)
}

func TestCall_LookupCEP(t *testing.T) {
	ctrl := gomock.NewController(t)
	addresses := mocks.NewMockAddressLookup(ctrl)
	d := newTestDispatcher(t, addresses, nil)

	addresses.EXPECT().
		LookupCEP(gomock.Any(), "01001000").
		Return(&domain.Address{CEP: "01001-000", City: "São Paulo", State: "SP", Source: "viacep"}, nil)

	resp, body := callJSON(t, d, ToolLookupCEP, `{"cep": "01001-000"}`)
	require.False(t, resp.IsError(), body)
	assert.Equal(t, "São Paulo", resp.Result.(*domain.Address).City)
}

func TestCall_LookupErrors(t *testing.T) {
	tests := []struct {
		name  string
		args  string
		setup func(m *mocks.MockAddressLookup)
		kind  domain.Kind
	}{
		{
			name: "invalid cep is rejected before the lookup",
			args: `{"cep": "123"}`,
			kind: domain.KindLengthMismatch,
		},
		{
			name: "not found",
			args: `{"cep": "99999999"}`,
			setup: func(m *mocks.MockAddressLookup) {
				m.EXPECT().LookupCEP(gomock.Any(), "99999999").
					Return(nil, fmt.Errorf("consulta CEP: %w", ports.ErrNotFound))
			},
			kind: domain.KindNotFound,
		},
		{
			name: "upstream failure",
			args: `{"cep": "01001000"}`,
			setup: func(m *mocks.MockAddressLookup) {
				m.EXPECT().LookupCEP(gomock.Any(), "01001000").
					Return(nil, errors.New("connection refused"))
			},
			kind: domain.KindLookupFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			addresses := mocks.NewMockAddressLookup(ctrl)
			if tt.setup != nil {
				tt.setup(addresses)
			}
			d := newTestDispatcher(t, addresses, nil)

			resp, body := callJSON(t, d, ToolLookupCEP, tt.args)
			require.True(t, resp.IsError(), body)
			assert.Equal(t, tt.kind, resp.Failure.Kind)
		})
	}
}

func TestCall_LookupCNPJ(t *testing.T) {
	ctrl := gomock.NewController(t)
	companies := mocks.NewMockCompanyLookup(ctrl)
	d := newTestDispatcher(t, nil, companies)

	companies.EXPECT().
		LookupCNPJ(gomock.Any(), "11222333000181").
		Return(&domain.Company{CNPJ: "11.222.333/0001-81", LegalName: "EMPRESA TESTE LTDA"}, nil)

	resp, body := callJSON(t, d, ToolLookupCNPJ, `{"cnpj": "11.222.333/0001-81"}`)
	require.False(t, resp.IsError(), body)
	assert.Equal(t, "EMPRESA TESTE LTDA", resp.Result.(*domain.Company).LegalName)

	// Checksum inválido não chega ao adaptador
	resp, _ = callJSON(t, d, ToolLookupCNPJ, `{"cnpj": "11.222.333/0001-82"}`)
	require.True(t, resp.IsError())
	assert.Equal(t, domain.KindChecksumFailed, resp.Failure.Kind)
}

func TestCall_LookupNotConfigured(t *testing.T) {
	d := newTestDispatcher(t, nil, nil)

	resp, _ := callJSON(t, d, ToolLookupCNPJ, `{"cnpj": "11222333000181"}`)
	require.True(t, resp.IsError())
	assert.Equal(t, domain.KindLookupFailed, resp.Failure.Kind)
}

func TestCall_RecoversFromPanic(t *testing.T) {
	ctrl := gomock.NewController(t)
	addresses := mocks.NewMockAddressLookup(ctrl)
	d := newTestDispatcher(t, addresses, nil)

	addresses.EXPECT().
		LookupCEP(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, cep string) (*domain.Address, error) {
			panic("boom")
		})

	resp, body := callJSON(t, d, ToolLookupCEP, `{"cep": "01001000"}`)
	require.True(t, resp.IsError(), body)
	assert.Equal(t, domain.KindInternal, resp.Failure.Kind)
	assert.Contains(t, resp.Failure.Message, "boom")
}

func TestDefinitions(t *testing.T) {
	defs := Definitions()
	require.Len(t, defs, len(requestFactories))

	seen := map[string]bool{}
	for _, def := range defs {
		assert.False(t, seen[def.Name], "duplicated tool %s", def.Name)
		seen[def.Name] = true

		_, ok := requestFactories[def.Name]
		assert.True(t, ok, "tool %s has no request type", def.Name)
		assert.NotEmpty(t, def.Description)
		assert.Equal(t, "object", def.InputSchema["type"])

		// Todo campo obrigatório precisa estar nas propriedades
		properties := def.InputSchema["properties"].(map[string]interface{})
		for _, field := range def.InputSchema["required"].([]string) {
			assert.Contains(t, properties, field, "tool %s", def.Name)
		}
	}
}

func TestDecodeRequest_Variants(t *testing.T) {
	for name := range requestFactories {
		t.Run(name, func(t *testing.T) {
			req, err := DecodeRequest(name, json.RawMessage(`{"salary": 1, "monthly_income": 1, "amount": 1, "key": "k", "key_type": "cpf", "receiver_name": "a", "city": "b", "payload": "p", "bank_code": "001", "due_date": "2024-01-01", "document_number": "1", "typeable_line": "1"}`))
			require.NoError(t, err)
			assert.Equal(t, name, req.Tool())
		})
	}
}
