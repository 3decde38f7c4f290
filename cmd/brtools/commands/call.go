package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func callCmd() *cobra.Command {
	var fromStdin bool

	cmd := &cobra.Command{
		Use:   "call <ferramenta> [argumentos-json]",
		Short: "Executa uma ferramenta e imprime o resultado em JSON",
		Example: `  brtools call validate_cpf '{"cpf":"111.444.777-35"}'
  echo '{"salary":3000}' | brtools call calculate_fgts --stdin`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var raw []byte
			switch {
			case fromStdin:
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				raw = data
			case len(args) == 2:
				raw = []byte(args[1])
			}

			resp := appCtx.Dispatcher.Call(cmd.Context(), args[0], raw)

			out, err := json.MarshalIndent(resp, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))

			if resp.IsError() {
				return fmt.Errorf("%s: %s", resp.Failure.Kind, resp.Failure.Message)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "lê os argumentos JSON da entrada padrão")
	return cmd
}
