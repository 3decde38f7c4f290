// Package commands define os comandos cobra da CLI brtools
package commands

import (
	"github.com/spf13/cobra"

	"github.com/magnani/brtools/internal/app"
	"github.com/magnani/brtools/internal/config"
	"github.com/magnani/brtools/internal/logger"
)

var (
	appCtx   *app.App
	logLevel string
)

// Execute monta a árvore de comandos e a executa
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "brtools",
		Short:         "Validadores de documentos, PIX, boleto e folha de pagamento",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}

			// stdout fica livre para resultados e para o protocolo MCP
			zlog, err := logger.New(logger.Options{Env: cfg.Env, Level: cfg.LogLevel, Stderr: true})
			if err != nil {
				return err
			}

			appCtx, err = app.New(cfg, zlog)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if appCtx != nil {
				_ = appCtx.Logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "nível de log (debug, info, warn, error)")

	root.AddCommand(mcpCmd(), callCmd(), toolsCmd())
	return root
}
