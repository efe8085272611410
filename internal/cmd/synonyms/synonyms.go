// Package synonyms provides the synonyms command for thesaurus lookups.
package synonyms

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/lexicon-cli/api"
	"github.com/open-cli-collective/lexicon-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/lexicon-cli/internal/editor"
	"github.com/open-cli-collective/lexicon-cli/internal/lookup"
	"github.com/open-cli-collective/lexicon-cli/internal/view"
	"github.com/open-cli-collective/lexicon-cli/pkg/mw"
)

type synonymsOptions struct {
	// Replacement
	file string
	at   string
	pick string
	copy bool

	// Output
	output  string
	noColor bool
	out     io.Writer
	logger  zerolog.Logger

	// Injected for tests
	choose    func(word string, groups []mw.SynonymGroup) (string, error)
	clipboard func(text string) error
}

// NewCmdSynonyms creates the synonyms command.
func NewCmdSynonyms() *cobra.Command {
	opts := &synonymsOptions{
		choose:    chooseSynonym,
		clipboard: clipboard.WriteAll,
	}

	cmd := &cobra.Command{
		Use:     "synonyms [word]",
		Aliases: []string{"syn", "thesaurus"},
		Short:   "Look up synonyms in the thesaurus",
		Long: `List synonyms and antonyms from the Merriam-Webster Collegiate Thesaurus,
grouped by meaning.

With --file and --at, the selected byte range of a file is replaced with a
synonym chosen interactively or given with --pick. When no word is given,
the selected text is looked up.`,
		Example: `  # List synonyms
  lex synonyms happy

  # One word per line for scripting
  lex synonyms happy -o plain

  # Replace bytes 120-125 of draft.md with a synonym, chosen interactively
  lex synonyms --file draft.md --at 120:125

  # Replace without prompting
  lex synonyms happy --file draft.md --at 120:125 --pick cheerful

  # Copy a chosen synonym to the clipboard
  lex synonyms happy --copy`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var word string
			if len(args) > 0 {
				word = args[0]
			}
			g := cmdutil.GlobalsFrom(cmd)
			opts.output = g.Output
			opts.noColor = g.NoColor
			opts.out = cmd.OutOrStdout()
			opts.logger = g.Logger()

			cfg, err := cmdutil.LoadConfig(g.ConfigFile())
			if err != nil {
				return err
			}
			if opts.output == "" {
				opts.output = cfg.OutputFormat
			}
			return runSynonyms(cmd.Context(), word, opts, cmdutil.NewClient(cfg, opts.logger))
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "File containing the text to replace")
	cmd.Flags().StringVar(&opts.at, "at", "", "Byte range START:END of the selection in --file")
	cmd.Flags().StringVarP(&opts.pick, "pick", "p", "", "Synonym to use without prompting")
	cmd.Flags().BoolVarP(&opts.copy, "copy", "c", false, "Copy the chosen synonym to the clipboard")

	return cmd
}

func runSynonyms(ctx context.Context, word string, opts *synonymsOptions, client lookup.Source) error {
	format, err := cmdutil.ResolveFormat(opts.output, nil)
	if err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	// Validate replacement flags
	if opts.at != "" && opts.file == "" {
		return fmt.Errorf("--at requires --file")
	}
	if opts.file != "" && opts.at == "" {
		return fmt.Errorf("--file requires --at START:END")
	}
	if opts.pick != "" && opts.file == "" && !opts.copy {
		return fmt.Errorf("--pick requires --file or --copy")
	}

	var surface editor.Surface
	if opts.file != "" {
		sel, err := editor.ParseRange(opts.at)
		if err != nil {
			return err
		}
		fs, err := editor.OpenFile(opts.file, sel)
		if err != nil {
			return err
		}
		surface = fs
	}

	if word == "" && surface != nil {
		selected := surface.Selection()
		if !editor.IsSingleWord(selected) {
			return fmt.Errorf("selection %q is not a single word; pass the word to look up", selected)
		}
		word = strings.TrimSpace(selected)
	}
	if strings.TrimSpace(word) == "" {
		return fmt.Errorf("a word is required (or select one with --file and --at)")
	}

	svc := lookup.NewService(client, opts.logger)
	result, err := svc.Lookup(ctx, word, lookup.Options{Synonyms: true})
	if errors.Is(err, api.ErrNoResults) {
		return fmt.Errorf("%w for %q", err, word)
	}
	if err != nil {
		return fmt.Errorf("failed to look up %q: %w", word, err)
	}

	renderer := cmdutil.NewRenderer(format, opts.noColor, opts.out)

	if result.IsSuggestion() {
		return renderer.RenderSuggestions(result.Word, result.Suggestions)
	}
	if len(result.Synonyms) == 0 {
		return fmt.Errorf("%w: no synonyms listed for %q", api.ErrNoResults, word)
	}

	if surface == nil && !opts.copy {
		return renderer.RenderSynonyms(result.Synonyms)
	}

	choice, err := pickSynonym(result.Word, result.Synonyms, opts)
	if err != nil {
		return err
	}

	if surface != nil {
		selected := surface.Selection()
		if err := surface.Replace(choice); err != nil {
			return err
		}
		renderer.Success(fmt.Sprintf("Replaced %q with %q in %s", selected, choice, opts.file))
	}
	if opts.copy {
		if err := opts.clipboard(choice); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		renderer.Success(fmt.Sprintf("Copied %q to clipboard", choice))
	}
	return nil
}

// pickSynonym returns --pick when it names one of the synonyms, otherwise prompts.
func pickSynonym(word string, groups []mw.SynonymGroup, opts *synonymsOptions) (string, error) {
	if opts.pick == "" {
		return opts.choose(word, groups)
	}
	for _, w := range mw.UniqueWords(groups) {
		if strings.EqualFold(w, opts.pick) {
			return w, nil
		}
	}
	return "", fmt.Errorf("%q is not a listed synonym of %q", opts.pick, word)
}

// chooseSynonym prompts for one synonym, labelling each with the meaning it belongs to.
func chooseSynonym(word string, groups []mw.SynonymGroup) (string, error) {
	seen := make(map[string]bool)
	var options []huh.Option[string]
	for _, g := range groups {
		for _, w := range g.Synonyms {
			if seen[w.Word] {
				continue
			}
			seen[w.Word] = true
			options = append(options, huh.NewOption(pickerLabel(w.Display(), g.AsIn), w.Word))
		}
	}

	var choice string
	err := huh.NewSelect[string]().
		Title(fmt.Sprintf("Replace %q with", word)).
		Options(options...).
		Value(&choice).
		Run()
	if err != nil {
		return "", err
	}
	return choice, nil
}

// maxPickerLabel bounds a picker option so long meanings stay on one line.
const maxPickerLabel = 72

func pickerLabel(synonym, asIn string) string {
	return view.Truncate(fmt.Sprintf("%s  (as in: %s)", synonym, asIn), maxPickerLabel)
}
