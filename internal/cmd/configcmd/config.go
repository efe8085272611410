// Package configcmd provides config management commands.
package configcmd

import (
	"github.com/spf13/cobra"
)

// NewCmdConfig creates the config command.
func NewCmdConfig() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage lex configuration",
		Long:  `Commands for viewing, testing, and clearing lex configuration.`,
	}

	cmd.AddCommand(NewCmdShow())
	cmd.AddCommand(NewCmdTest())
	cmd.AddCommand(NewCmdClear())

	return cmd
}

// envVars lists every environment variable that overrides the config file.
var envVars = []string{
	"LEX_DICTIONARY_KEY", "MW_DICTIONARY_KEY",
	"LEX_THESAURUS_KEY", "MW_THESAURUS_KEY",
	"LEX_BASE_URL", "LEX_CACHE_TTL", "LEX_OUTPUT",
}
