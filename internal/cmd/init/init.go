// Package init provides the init command for lex.
package init

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/lexicon-cli/api"
	"github.com/open-cli-collective/lexicon-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/lexicon-cli/internal/config"
)

// NewCmdInit creates the init command.
func NewCmdInit() *cobra.Command {
	var (
		dictionaryKey string
		thesaurusKey  string
		noVerify      bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize lex configuration",
		Long: `Initialize lex with your Merriam-Webster API keys.

This command will guide you through entering the Collegiate Dictionary key
and, optionally, the Collegiate Thesaurus key. The configuration will be
saved to ~/.config/lex/config.yml.

To get API keys:
  1. Register at https://dictionaryapi.com/register/index
  2. Request the "Collegiate Dictionary" and "Collegiate Thesaurus" references
  3. Copy the keys from "Your Keys"`,
		Example: `  # Interactive setup
  lex init

  # Pre-populate the dictionary key
  lex init --dictionary-key 0123abcd-...`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g := cmdutil.GlobalsFrom(cmd)
			return runInit(g.ConfigFile(), dictionaryKey, thesaurusKey, noVerify)
		},
	}

	cmd.Flags().StringVar(&dictionaryKey, "dictionary-key", "", "Collegiate Dictionary API key")
	cmd.Flags().StringVar(&thesaurusKey, "thesaurus-key", "", "Collegiate Thesaurus API key")
	cmd.Flags().BoolVar(&noVerify, "no-verify", false, "Skip key verification")

	return cmd
}

func runInit(configPath, prefillDictionary, prefillThesaurus string, noVerify bool) error {
	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		var overwrite bool
		err := huh.NewConfirm().
			Title("Configuration already exists").
			Description(fmt.Sprintf("Overwrite %s?", configPath)).
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Println("Initialization cancelled.")
			return nil
		}
	}

	cfg := &config.Config{
		DictionaryKey: prefillDictionary,
		ThesaurusKey:  prefillThesaurus,
	}

	// Build the form
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Dictionary API key").
				Description("Key for the Collegiate Dictionary reference").
				EchoMode(huh.EchoModePassword).
				Value(&cfg.DictionaryKey).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("dictionary key is required")
					}
					return nil
				}),

			huh.NewInput().
				Title("Thesaurus API key (optional)").
				Description("Key for the Collegiate Thesaurus reference; needed for synonyms").
				EchoMode(huh.EchoModePassword).
				Value(&cfg.ThesaurusKey),

			huh.NewSelect[string]().
				Title("Default output format").
				Options(
					huh.NewOption("Terminal (table)", "table"),
					huh.NewOption("Plain text", "plain"),
					huh.NewOption("Markdown", "markdown"),
					huh.NewOption("HTML", "html"),
					huh.NewOption("JSON", "json"),
				).
				Value(&cfg.OutputFormat),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}
	if cfg.OutputFormat == "table" {
		cfg.OutputFormat = ""
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Verify keys unless skipped
	if !noVerify {
		fmt.Print("Verifying keys... ")
		if err := verifyKeys(cfg, nil); err != nil {
			fmt.Println("failed!")
			return fmt.Errorf("key verification failed: %w", err)
		}
		fmt.Println("success!")
	}

	// Save configuration
	if err := cfg.Save(configPath); err != nil {
		return err
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	fmt.Println("\nYou're all set! Try running:")
	fmt.Println("  lex define serendipity")
	if cfg.ThesaurusKey != "" {
		fmt.Println("  lex synonyms happy")
	}

	return nil
}

// verifyKeys looks up a known word with each configured key.
func verifyKeys(cfg *config.Config, httpClient *http.Client) error {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	client := api.NewClient(cfg.BaseURL, cfg.DictionaryKey, cfg.ThesaurusKey,
		api.WithHTTPClient(httpClient), api.WithLogger(zerolog.Nop()))

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if _, err := client.Define(ctx, "test"); err != nil {
		return describe(api.Collegiate, err)
	}
	if cfg.ThesaurusKey != "" {
		if _, err := client.Synonyms(ctx, "test"); err != nil {
			return describe(api.Thesaurus, err)
		}
	}
	return nil
}

func describe(ref api.Reference, err error) error {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%s key rejected - check that the key is subscribed to this reference: %w", ref, err)
	}
	return err
}
