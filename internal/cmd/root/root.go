// Package root provides the root command for the lex CLI.
package root

import (
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/lexicon-cli/internal/cmd/completion"
	"github.com/open-cli-collective/lexicon-cli/internal/cmd/configcmd"
	"github.com/open-cli-collective/lexicon-cli/internal/cmd/define"
	initcmd "github.com/open-cli-collective/lexicon-cli/internal/cmd/init"
	"github.com/open-cli-collective/lexicon-cli/internal/cmd/synonyms"
	"github.com/open-cli-collective/lexicon-cli/internal/version"
)

// NewCmdRoot creates the root command for lex.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lex",
		Short: "A command-line dictionary and thesaurus",
		Long: `lex looks up words in the Merriam-Webster Collegiate Dictionary
and Thesaurus.

Definitions are rendered as a numbered sense outline in the terminal, or as
Markdown, HTML or JSON for use elsewhere. Synonyms can replace a word in a
file in place.

Get started by running: lex init`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
	}

	// Global flags
	cmd.PersistentFlags().StringP("config", "c", "", "config file (default: ~/.config/lex/config.yml)")
	cmd.PersistentFlags().StringP("output", "o", "", "output format: table, json, plain, markdown, html (default: table)")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "log API requests and skipped input to stderr")

	// Set version template
	cmd.SetVersionTemplate("lex version {{.Version}} (commit: " + version.Commit + ", built: " + version.Date + ")\n")

	// Subcommands
	cmd.AddCommand(initcmd.NewCmdInit())
	cmd.AddCommand(define.NewCmdDefine())
	cmd.AddCommand(synonyms.NewCmdSynonyms())
	cmd.AddCommand(configcmd.NewCmdConfig())
	cmd.AddCommand(completion.NewCmdCompletion())

	return cmd
}
