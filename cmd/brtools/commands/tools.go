package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func toolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "Lista as ferramentas disponíveis",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, def := range appCtx.Dispatcher.Definitions() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-24s %s\n", def.Name, def.Description)
			}
			return nil
		},
	}
}
