package configcmd

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/lexicon-cli/api"
	"github.com/open-cli-collective/lexicon-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/lexicon-cli/internal/config"
)

// NewCmdTest creates the config test command.
func NewCmdTest() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test the configured API keys",
		Long:  `Test that lex can reach Merriam-Webster with the current configuration.`,
		Example: `  # Test keys
  lex config test`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g := cmdutil.GlobalsFrom(cmd)
			cfg, err := cmdutil.LoadConfig(g.ConfigFile())
			if err != nil {
				return err
			}
			return runTest(cfg, g.NoColor, nil, cmd.OutOrStdout())
		},
	}

	return cmd
}

func runTest(cfg *config.Config, noColor bool, httpClient *http.Client, out io.Writer) error {
	if noColor {
		color.NoColor = true
	}

	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	dim := color.New(color.Faint)

	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	client := api.NewClient(cfg.BaseURL, cfg.DictionaryKey, cfg.ThesaurusKey,
		api.WithHTTPClient(httpClient), api.WithLogger(zerolog.Nop()))

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	fmt.Fprintln(out, "Testing Collegiate Dictionary key...")
	if _, err := client.Define(ctx, "test"); err != nil {
		_, _ = red.Fprintln(out, "✗ Dictionary lookup failed:", err)
		fmt.Fprintln(out, "\nCheck your keys with: lex config show")
		fmt.Fprintln(out, "Reconfigure with: lex init")
		return fmt.Errorf("dictionary check failed: %w", err)
	}
	_, _ = green.Fprintln(out, "✓ Dictionary key accepted")

	if cfg.ThesaurusKey == "" {
		_, _ = dim.Fprintln(out, "- No thesaurus key configured; synonyms are unavailable")
		return nil
	}

	fmt.Fprintln(out, "Testing Collegiate Thesaurus key...")
	if _, err := client.Synonyms(ctx, "test"); err != nil {
		_, _ = red.Fprintln(out, "✗ Thesaurus lookup failed:", err)
		return fmt.Errorf("thesaurus check failed: %w", err)
	}
	_, _ = green.Fprintln(out, "✓ Thesaurus key accepted")

	return nil
}
