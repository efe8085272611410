// Package define provides the define command.
package define

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os/exec"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/lexicon-cli/api"
	"github.com/open-cli-collective/lexicon-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/lexicon-cli/internal/lookup"
	"github.com/open-cli-collective/lexicon-cli/internal/view"
	"github.com/open-cli-collective/lexicon-cli/pkg/mw"
)

type defineOptions struct {
	synonyms bool
	web      bool
	width    int
	output   string
	noColor  bool
	out      io.Writer
	logger   zerolog.Logger
}

// NewCmdDefine creates the define command.
func NewCmdDefine() *cobra.Command {
	opts := &defineOptions{}

	cmd := &cobra.Command{
		Use:     "define <word>",
		Aliases: []string{"def", "d"},
		Short:   "Look up a word in the dictionary",
		Long: `Look up a word in the Merriam-Webster Collegiate Dictionary.

Senses are shown as a numbered outline with their labels, illustrations
and usage quotes. Unknown words produce spelling suggestions.`,
		Example: `  # Define a word
  lex define fox

  # Include thesaurus synonyms
  lex define happy --synonyms

  # Render as Markdown or HTML
  lex define fox -o markdown
  lex define fox -o html > fox.html

  # Open the entry on merriam-webster.com
  lex define fox --web`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g := cmdutil.GlobalsFrom(cmd)
			opts.output = g.Output
			opts.noColor = g.NoColor
			opts.out = cmd.OutOrStdout()
			opts.logger = g.Logger()

			if opts.web {
				return openBrowser(mw.EntryURL + url.PathEscape(args[0]))
			}

			cfg, err := cmdutil.LoadConfig(g.ConfigFile())
			if err != nil {
				return err
			}
			if opts.output == "" {
				opts.output = cfg.OutputFormat
			}
			return runDefine(cmd.Context(), args[0], opts, cmdutil.NewClient(cfg, opts.logger))
		},
	}

	cmd.Flags().BoolVarP(&opts.synonyms, "synonyms", "s", false, "Also list thesaurus synonyms")
	cmd.Flags().BoolVarP(&opts.web, "web", "w", false, "Open in browser instead of displaying")
	cmd.Flags().IntVar(&opts.width, "width", 0, "Wrap text at this column (0 disables wrapping)")

	return cmd
}

func runDefine(ctx context.Context, word string, opts *defineOptions, client lookup.Source) error {
	format, err := cmdutil.ResolveFormat(opts.output, nil)
	if err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	svc := lookup.NewService(client, opts.logger)
	result, err := svc.Lookup(ctx, word, lookup.Options{Definitions: true, Synonyms: opts.synonyms})
	if errors.Is(err, api.ErrNoResults) {
		return fmt.Errorf("%w for %q", err, word)
	}
	if err != nil {
		return fmt.Errorf("failed to look up %q: %w", word, err)
	}

	renderer := cmdutil.NewRenderer(format, opts.noColor, opts.out)
	renderer.SetWidth(opts.width)

	if result.IsSuggestion() {
		return renderer.RenderSuggestions(result.Word, result.Suggestions)
	}
	if format == view.FormatJSON {
		return renderer.RenderJSON(result)
	}

	if err := renderer.RenderEntries(result.Entries); err != nil {
		return err
	}
	if opts.synonyms && len(result.Synonyms) > 0 {
		renderer.RenderText("")
		return renderer.RenderSynonyms(result.Synonyms)
	}
	return nil
}

func openBrowser(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("unsupported platform")
	}

	return cmd.Start()
}
