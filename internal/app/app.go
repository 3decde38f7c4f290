// Package app monta o grafo de dependências compartilhado pela API HTTP,
// pelo servidor MCP e pela CLI.
package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/magnani/brtools/internal/adapters/brasilapi"
	"github.com/magnani/brtools/internal/config"
	"github.com/magnani/brtools/internal/payroll"
	"github.com/magnani/brtools/internal/tools"
)

// App reúne configuração, logger e o Dispatcher de ferramentas
type App struct {
	Config     *config.Config
	Logger     *zap.Logger
	Tables     *payroll.RateTable
	Dispatcher *tools.Dispatcher
}

// New carrega as tabelas da folha, cria o cliente de consultas e o Dispatcher
func New(cfg *config.Config, log *zap.Logger) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}

	tables, err := payroll.LoadTables(cfg.Payroll.TablesPath)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar tabelas da folha: %w", err)
	}
	log.Info("tabelas da folha carregadas",
		zap.String("version", tables.Version),
		zap.String("path", cfg.Payroll.TablesPath),
	)

	lookups := brasilapi.NewClient(&cfg.Lookup)

	dispatcher, err := tools.NewDispatcher(tools.Options{
		Calculator: payroll.NewCalculator(tables),
		Addresses:  lookups,
		Companies:  lookups,
		QRSize:     cfg.Pix.QRSize,
		Logger:     log,
	})
	if err != nil {
		return nil, err
	}

	return &App{
		Config:     cfg,
		Logger:     log,
		Tables:     tables,
		Dispatcher: dispatcher,
	}, nil
}
