package tools

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/magnani/brtools/internal/domain"
)

// Request é a união fechada dos argumentos aceitos pelas ferramentas.
// Só este pacote implementa validate, então todo pedido que chega ao
// Dispatcher é uma das variantes abaixo.
type Request interface {
	Tool() string
	validate() error
}

// Limites do tamanho do QR Code em pixels
const (
	MinQRSize = 64
	MaxQRSize = 1024
)

// Limites de escala e precisão aceitos em valores monetários. Expoentes
// extremos como 1e-50000000 fariam o arredondamento percorrer milhões de dígitos.
const (
	minAmountExponent    = -10
	maxAmountExponent    = 15
	maxAmountCoefficient = 96 // bits, ~28 dígitos
)

// ──────────────────────────────────────────────
// Documentos
// ──────────────────────────────────────────────

// ValidateCPFRequest são os argumentos de validate_cpf
type ValidateCPFRequest struct {
	CPF string `json:"cpf"`
}

// ValidateCNPJRequest são os argumentos de validate_cnpj
type ValidateCNPJRequest struct {
	CNPJ string `json:"cnpj"`
}

// ValidatePISRequest são os argumentos de validate_pis
type ValidatePISRequest struct {
	PIS string `json:"pis"`
}

// ValidateVoterIDRequest são os argumentos de validate_voter_id
type ValidateVoterIDRequest struct {
	VoterID string `json:"voter_id"`
}

func (ValidateCPFRequest) Tool() string     { return ToolValidateCPF }
func (ValidateCNPJRequest) Tool() string    { return ToolValidateCNPJ }
func (ValidatePISRequest) Tool() string     { return ToolValidatePIS }
func (ValidateVoterIDRequest) Tool() string { return ToolValidateVoterID }

// Os validadores de documento devolvem valid=false para entrada vazia,
// então não há nada a rejeitar aqui.
func (ValidateCPFRequest) validate() error     { return nil }
func (ValidateCNPJRequest) validate() error    { return nil }
func (ValidatePISRequest) validate() error     { return nil }
func (ValidateVoterIDRequest) validate() error { return nil }

// ──────────────────────────────────────────────
// PIX
// ──────────────────────────────────────────────

// GeneratePixQRRequest são os argumentos de generate_pix_qr
type GeneratePixQRRequest struct {
	Key          string           `json:"key"`
	Amount       *decimal.Decimal `json:"amount"`
	ReceiverName string           `json:"receiver_name"`
	City         string           `json:"city"`
	Description  string           `json:"description,omitempty"`
	TxID         string           `json:"txid,omitempty"`
	Size         int              `json:"size,omitempty"` // pixels, padrão da configuração
}

func (GeneratePixQRRequest) Tool() string { return ToolGeneratePixQR }

func (r GeneratePixQRRequest) validate() error {
	if err := requireString("key", r.Key); err != nil {
		return err
	}
	if err := requireAmount("amount", r.Amount); err != nil {
		return err
	}
	if err := requireString("receiver_name", r.ReceiverName); err != nil {
		return err
	}
	if err := requireString("city", r.City); err != nil {
		return err
	}
	if r.Size != 0 && (r.Size < MinQRSize || r.Size > MaxQRSize) {
		return domain.Errorf(domain.KindOutOfRange, "size",
			"tamanho do QR Code deve estar entre %d e %d", MinQRSize, MaxQRSize)
	}
	return nil
}

// DecodePixPayloadRequest são os argumentos de decode_pix_payload
type DecodePixPayloadRequest struct {
	Payload string `json:"payload"`
}

func (DecodePixPayloadRequest) Tool() string { return ToolDecodePixPayload }

func (r DecodePixPayloadRequest) validate() error {
	return requireString("payload", r.Payload)
}

// ValidatePixKeyRequest são os argumentos de validate_pix_key
type ValidatePixKeyRequest struct {
	Key     string `json:"key"`
	KeyType string `json:"key_type"`
}

func (ValidatePixKeyRequest) Tool() string { return ToolValidatePixKey }

func (r ValidatePixKeyRequest) validate() error {
	return requireString("key_type", r.KeyType)
}

// ──────────────────────────────────────────────
// Boleto
// ──────────────────────────────────────────────

// GenerateBoletoRequest são os argumentos de generate_boleto
type GenerateBoletoRequest struct {
	BankCode       string           `json:"bank_code"`
	Amount         *decimal.Decimal `json:"amount"`
	DueDate        string           `json:"due_date"`
	DocumentNumber string           `json:"document_number"`
}

func (GenerateBoletoRequest) Tool() string { return ToolGenerateBoleto }

func (r GenerateBoletoRequest) validate() error {
	if err := requireString("bank_code", r.BankCode); err != nil {
		return err
	}
	if err := requireAmount("amount", r.Amount); err != nil {
		return err
	}
	if err := requireString("due_date", r.DueDate); err != nil {
		return err
	}
	return requireString("document_number", r.DocumentNumber)
}

// ParseBoletoLineRequest são os argumentos de parse_boleto_line
type ParseBoletoLineRequest struct {
	TypeableLine string `json:"typeable_line"`
}

func (ParseBoletoLineRequest) Tool() string { return ToolParseBoletoLine }

func (r ParseBoletoLineRequest) validate() error {
	return requireString("typeable_line", r.TypeableLine)
}

// ──────────────────────────────────────────────
// Folha de pagamento
// ──────────────────────────────────────────────

// IncomeTaxRequest são os argumentos de calculate_income_tax
type IncomeTaxRequest struct {
	MonthlyIncome *decimal.Decimal `json:"monthly_income"`
	Dependents    int              `json:"dependents,omitempty"`
}

// INSSRequest são os argumentos de calculate_inss
type INSSRequest struct {
	Salary *decimal.Decimal `json:"salary"`
	Type   string           `json:"type,omitempty"` // employee (padrão) ou self-employed
}

// FGTSRequest são os argumentos de calculate_fgts
type FGTSRequest struct {
	Salary *decimal.Decimal `json:"salary"`
}

// VacationRequest são os argumentos de calculate_vacation.
// Days assume 30 e SellDays assume 0 quando ausentes.
type VacationRequest struct {
	Salary   *decimal.Decimal `json:"salary"`
	Days     *int             `json:"days,omitempty"`
	SellDays *int             `json:"sell_days,omitempty"`
}

// ThirteenthSalaryRequest são os argumentos de calculate_13th_salary.
// MonthsWorked assume 12 quando ausente.
type ThirteenthSalaryRequest struct {
	Salary       *decimal.Decimal `json:"salary"`
	MonthsWorked *int             `json:"months_worked,omitempty"`
}

func (IncomeTaxRequest) Tool() string        { return ToolIncomeTax }
func (INSSRequest) Tool() string             { return ToolINSS }
func (FGTSRequest) Tool() string             { return ToolFGTS }
func (VacationRequest) Tool() string         { return ToolVacation }
func (ThirteenthSalaryRequest) Tool() string { return ToolThirteenthSalary }

func (r IncomeTaxRequest) validate() error        { return requireAmount("monthly_income", r.MonthlyIncome) }
func (r INSSRequest) validate() error             { return requireAmount("salary", r.Salary) }
func (r FGTSRequest) validate() error             { return requireAmount("salary", r.Salary) }
func (r VacationRequest) validate() error         { return requireAmount("salary", r.Salary) }
func (r ThirteenthSalaryRequest) validate() error { return requireAmount("salary", r.Salary) }

func (r VacationRequest) days() (int, int) {
	return intOr(r.Days, 30), intOr(r.SellDays, 0)
}

func (r ThirteenthSalaryRequest) monthsWorked() int {
	return intOr(r.MonthsWorked, 12)
}

// ──────────────────────────────────────────────
// Consultas externas
// ──────────────────────────────────────────────

// LookupCEPRequest são os argumentos de lookup_cep
type LookupCEPRequest struct {
	CEP string `json:"cep"`
}

// LookupCNPJRequest são os argumentos de lookup_cnpj
type LookupCNPJRequest struct {
	CNPJ string `json:"cnpj"`
}

func (LookupCEPRequest) Tool() string  { return ToolLookupCEP }
func (LookupCNPJRequest) Tool() string { return ToolLookupCNPJ }

// O formato é verificado pelo Dispatcher, que reaproveita os validadores
func (LookupCEPRequest) validate() error  { return nil }
func (LookupCNPJRequest) validate() error { return nil }

// ──────────────────────────────────────────────
// Decodificação
// ──────────────────────────────────────────────

var requestFactories = map[string]func() Request{
	ToolValidateCPF:      func() Request { return &ValidateCPFRequest{} },
	ToolValidateCNPJ:     func() Request { return &ValidateCNPJRequest{} },
	ToolValidatePIS:      func() Request { return &ValidatePISRequest{} },
	ToolValidateVoterID:  func() Request { return &ValidateVoterIDRequest{} },
	ToolGeneratePixQR:    func() Request { return &GeneratePixQRRequest{} },
	ToolDecodePixPayload: func() Request { return &DecodePixPayloadRequest{} },
	ToolValidatePixKey:   func() Request { return &ValidatePixKeyRequest{} },
	ToolGenerateBoleto:   func() Request { return &GenerateBoletoRequest{} },
	ToolParseBoletoLine:  func() Request { return &ParseBoletoLineRequest{} },
	ToolIncomeTax:        func() Request { return &IncomeTaxRequest{} },
	ToolINSS:             func() Request { return &INSSRequest{} },
	ToolFGTS:             func() Request { return &FGTSRequest{} },
	ToolVacation:         func() Request { return &VacationRequest{} },
	ToolThirteenthSalary: func() Request { return &ThirteenthSalaryRequest{} },
	ToolLookupCEP:        func() Request { return &LookupCEPRequest{} },
	ToolLookupCNPJ:       func() Request { return &LookupCNPJRequest{} },
}

// DecodeRequest converte o JSON de argumentos na variante da ferramenta e a valida.
// Argumentos vazios ou null equivalem a {}.
func DecodeRequest(name string, args json.RawMessage) (Request, error) {
	newRequest, ok := requestFactories[name]
	if !ok {
		return nil, domain.Errorf(domain.KindUnknownTool, "", "ferramenta desconhecida: %s", name)
	}

	args = bytes.TrimSpace(args)
	if len(args) == 0 || bytes.Equal(args, []byte("null")) {
		args = []byte("{}")
	}

	req := newRequest()
	if err := json.Unmarshal(args, req); err != nil {
		return nil, argumentError(err)
	}
	if err := req.validate(); err != nil {
		return nil, err
	}
	return req, nil
}

func argumentError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return domain.Errorf(domain.KindInvalidFormat, typeErr.Field,
			"tipo inválido: esperado %s, recebido %s", typeErr.Type, typeErr.Value)
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return domain.Errorf(domain.KindInvalidFormat, "", "JSON inválido na posição %d", syntaxErr.Offset)
	}
	return domain.NewError(domain.KindInvalidFormat, "", fmt.Sprintf("argumentos inválidos: %v", err))
}

func requireString(field, value string) error {
	if value == "" {
		return domain.Errorf(domain.KindInvalidFormat, field, "%s é obrigatório", field)
	}
	return nil
}

func requireAmount(field string, value *decimal.Decimal) error {
	if value == nil {
		return domain.Errorf(domain.KindInvalidAmount, field, "%s é obrigatório", field)
	}
	if exp := value.Exponent(); exp < minAmountExponent || exp > maxAmountExponent {
		return domain.Errorf(domain.KindInvalidAmount, field, "%s fora da escala aceita", field)
	}
	if value.Coefficient().BitLen() > maxAmountCoefficient {
		return domain.Errorf(domain.KindInvalidAmount, field, "%s com dígitos demais", field)
	}
	return nil
}

func intOr(value *int, fallback int) int {
	if value == nil {
		return fallback
	}
	return *value
}
