// Package tools expõe os validadores, codecs e calculadoras como ferramentas
// nomeadas com argumentos JSON. É a fronteira usada pelos transportes
// (MCP, HTTP e CLI): nenhum erro ou pânico escapa daqui.
package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/magnani/brtools/internal/boleto"
	"github.com/magnani/brtools/internal/documents"
	"github.com/magnani/brtools/internal/domain"
	"github.com/magnani/brtools/internal/payroll"
	"github.com/magnani/brtools/internal/pix"
	"github.com/magnani/brtools/internal/ports"
)

// Options reúne as dependências do Dispatcher
type Options struct {
	Calculator *payroll.Calculator // nil usa as tabelas embutidas
	Addresses  ports.AddressLookup // nil desabilita lookup_cep
	Companies  ports.CompanyLookup // nil desabilita lookup_cnpj
	QRSize     int                 // tamanho padrão do QR Code
	Logger     *zap.Logger
}

// Dispatcher encaminha chamadas de ferramentas para as funções do domínio.
// É imutável após a criação e seguro para uso concorrente.
type Dispatcher struct {
	calc      *payroll.Calculator
	addresses ports.AddressLookup
	companies ports.CompanyLookup
	qrSize    int
	log       *zap.Logger
}

// NewDispatcher cria um novo Dispatcher
func NewDispatcher(opts Options) (*Dispatcher, error) {
	calc := opts.Calculator
	if calc == nil {
		var err error
		if calc, err = payroll.NewDefaultCalculator(); err != nil {
			return nil, fmt.Errorf("erro ao carregar tabelas: %w", err)
		}
	}

	qrSize := opts.QRSize
	if qrSize <= 0 {
		qrSize = pix.DefaultQRSize
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Dispatcher{
		calc:      calc,
		addresses: opts.Addresses,
		companies: opts.Companies,
		qrSize:    qrSize,
		log:       log,
	}, nil
}

// Definitions lista as ferramentas disponíveis
func (d *Dispatcher) Definitions() []Definition {
	return Definitions()
}

// Call decodifica os argumentos e executa a ferramenta. Sempre devolve uma
// Response bem formada: o resultado ou o envelope de erro.
func (d *Dispatcher) Call(ctx context.Context, name string, args json.RawMessage) (resp Response) {
	start := time.Now()
	resp.Tool = name

	defer func() {
		if rec := recover(); rec != nil {
			d.log.Error("pânico ao executar ferramenta",
				zap.String("tool", name),
				zap.Any("panic", rec),
				zap.Stack("stack"),
			)
			resp.Result = nil
			resp.Failure = &Failure{
				Error:   true,
				Kind:    domain.KindInternal,
				Message: fmt.Sprintf("erro interno: %v", rec),
			}
		}
	}()

	req, err := DecodeRequest(name, args)
	if err == nil {
		resp.Result, err = d.Execute(ctx, req)
	}

	if err != nil {
		resp.Result = nil
		resp.Failure = NewFailure(err)
		d.log.Info("ferramenta falhou",
			zap.String("tool", name),
			zap.String("kind", string(resp.Failure.Kind)),
			zap.String("message", resp.Failure.Message),
			zap.Duration("duration", time.Since(start)),
		)
		return resp
	}

	d.log.Debug("ferramenta executada",
		zap.String("tool", name),
		zap.Duration("duration", time.Since(start)),
	)
	return resp
}

// Execute roda um pedido já decodificado
func (d *Dispatcher) Execute(ctx context.Context, req Request) (interface{}, error) {
	switch r := req.(type) {
	case *ValidateCPFRequest:
		return documents.ValidateCPF(r.CPF), nil
	case *ValidateCNPJRequest:
		return documents.ValidateCNPJ(r.CNPJ), nil
	case *ValidatePISRequest:
		return documents.ValidatePIS(r.PIS), nil
	case *ValidateVoterIDRequest:
		return documents.ValidateVoterID(r.VoterID), nil

	case *GeneratePixQRRequest:
		return d.generatePixQR(r)
	case *DecodePixPayloadRequest:
		return pix.Decode(r.Payload)
	case *ValidatePixKeyRequest:
		return pix.ValidateKey(r.Key, domain.PixKeyType(r.KeyType))

	case *GenerateBoletoRequest:
		return boleto.Generate(boleto.Request{
			BankCode:       r.BankCode,
			Amount:         *r.Amount,
			DueDate:        r.DueDate,
			DocumentNumber: r.DocumentNumber,
		})
	case *ParseBoletoLineRequest:
		return boleto.ParseTypeableLine(r.TypeableLine)

	case *IncomeTaxRequest:
		return d.calc.IncomeTax(*r.MonthlyIncome, r.Dependents)
	case *INSSRequest:
		return d.calc.INSS(*r.Salary, domain.EmploymentType(r.Type))
	case *FGTSRequest:
		return d.calc.FGTS(*r.Salary)
	case *VacationRequest:
		days, sellDays := r.days()
		return d.calc.Vacation(*r.Salary, days, sellDays)
	case *ThirteenthSalaryRequest:
		return d.calc.ThirteenthSalary(*r.Salary, r.monthsWorked())

	case *LookupCEPRequest:
		return d.lookupCEP(ctx, r)
	case *LookupCNPJRequest:
		return d.lookupCNPJ(ctx, r)
	}

	return nil, domain.Errorf(domain.KindUnknownTool, "", "ferramenta desconhecida: %s", req.Tool())
}

func (d *Dispatcher) generatePixQR(r *GeneratePixQRRequest) (*domain.PixPayload, error) {
	payload, err := pix.GeneratePayload(pix.PayloadRequest{
		Key:          r.Key,
		Amount:       *r.Amount,
		ReceiverName: r.ReceiverName,
		City:         r.City,
		Description:  r.Description,
		TxID:         r.TxID,
	})
	if err != nil {
		return nil, err
	}

	size := r.Size
	if size == 0 {
		size = d.qrSize
	}
	if payload.QRCode, err = pix.QRCodePNG(payload.Payload, size); err != nil {
		return nil, err
	}
	return payload, nil
}

func (d *Dispatcher) lookupCEP(ctx context.Context, r *LookupCEPRequest) (*domain.Address, error) {
	check := documents.NormalizeCEP(r.CEP)
	if !check.Valid {
		return nil, domain.NewError(check.ErrorKind, "cep", check.Message)
	}
	if d.addresses == nil {
		return nil, domain.NewError(domain.KindLookupFailed, "", "consulta de CEP não configurada")
	}

	addr, err := d.addresses.LookupCEP(ctx, check.Unformatted)
	if err != nil {
		return nil, d.lookupError(ToolLookupCEP, "CEP "+check.Formatted, err)
	}
	return addr, nil
}

func (d *Dispatcher) lookupCNPJ(ctx context.Context, r *LookupCNPJRequest) (*domain.Company, error) {
	check := documents.ValidateCNPJ(r.CNPJ)
	if !check.Valid {
		return nil, domain.NewError(check.ErrorKind, "cnpj", check.Message)
	}
	if d.companies == nil {
		return nil, domain.NewError(domain.KindLookupFailed, "", "consulta de CNPJ não configurada")
	}

	company, err := d.companies.LookupCNPJ(ctx, check.Unformatted)
	if err != nil {
		return nil, d.lookupError(ToolLookupCNPJ, "CNPJ "+check.Formatted, err)
	}
	return company, nil
}

// lookupError traduz a falha do adaptador para a taxonomia do domínio
func (d *Dispatcher) lookupError(tool, subject string, err error) error {
	if errors.Is(err, ports.ErrNotFound) {
		return domain.Errorf(domain.KindNotFound, "", "%s não encontrado", subject)
	}

	d.log.Warn("consulta externa falhou", zap.String("tool", tool), zap.Error(err))
	return domain.Errorf(domain.KindLookupFailed, "", "falha ao consultar %s: %v", subject, err)
}
