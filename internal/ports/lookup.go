// Package ports define as interfaces (portas) para adaptadores externos
// Seguindo o padrão Hexagonal Architecture / Ports & Adapters
package ports

import (
	"context"
	"errors"

	"github.com/magnani/brtools/internal/domain"
)

//go:generate mockgen -source=lookup.go -destination=../mocks/lookup_mock.go -package=mocks

// ──────────────────────────────────────────────
// Consultas externas
// ──────────────────────────────────────────────

// ErrNotFound indica que o CEP ou CNPJ consultado não existe.
// Adaptadores devem envolver este erro para que o chamador o reconheça com errors.Is.
var ErrNotFound = errors.New("registro não encontrado")

// AddressLookup consulta endereços por CEP
type AddressLookup interface {
	// LookupCEP busca o endereço de um CEP já normalizado (8 dígitos)
	LookupCEP(ctx context.Context, cep string) (*domain.Address, error)
}

// CompanyLookup consulta dados cadastrais de empresas
type CompanyLookup interface {
	// LookupCNPJ busca os dados públicos de um CNPJ já validado (14 dígitos)
	LookupCNPJ(ctx context.Context, cnpj string) (*domain.Company, error)
}
