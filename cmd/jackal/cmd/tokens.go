package cmd

import (
	"fmt"
	"os"

	"github.com/mliezun/jackal/internal"
	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Print the token stream of one file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("cannot read %s: %w", args[0], err)
		}
		fmt.Fprint(cmd.OutOrStdout(), internal.TokenizeMarkup(string(source)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
