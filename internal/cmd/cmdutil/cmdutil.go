// Package cmdutil holds helpers shared by lex commands.
package cmdutil

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/lexicon-cli/api"
	"github.com/open-cli-collective/lexicon-cli/internal/config"
	"github.com/open-cli-collective/lexicon-cli/internal/logging"
	"github.com/open-cli-collective/lexicon-cli/internal/view"
)

// Globals holds the values of the root command's persistent flags.
type Globals struct {
	ConfigPath string
	Output     string
	NoColor    bool
	Verbose    bool
}

// GlobalsFrom reads the persistent flags from cmd.
func GlobalsFrom(cmd *cobra.Command) Globals {
	var g Globals
	g.ConfigPath, _ = cmd.Flags().GetString("config")
	g.Output, _ = cmd.Flags().GetString("output")
	g.NoColor, _ = cmd.Flags().GetBool("no-color")
	g.Verbose, _ = cmd.Flags().GetBool("verbose")
	return g
}

// ConfigFile returns the --config path or the default location.
func (g Globals) ConfigFile() string {
	if g.ConfigPath != "" {
		return g.ConfigPath
	}
	return config.DefaultConfigPath()
}

// Logger builds the diagnostic logger on stderr.
func (g Globals) Logger() zerolog.Logger {
	return logging.New(logging.Options{
		Out:     os.Stderr,
		Verbose: g.Verbose,
		NoColor: g.NoColor,
	})
}

// LoadConfig loads and validates the configuration at path, applying env overrides.
func LoadConfig(path string) (*config.Config, error) {
	cfg, err := config.LoadWithEnv(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w (run 'lex init' to configure)", err)
	}
	cfg.NormalizeURL()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w (run 'lex init' to configure)", err)
	}
	return cfg, nil
}

// NewClient creates an API client from cfg.
func NewClient(cfg *config.Config, logger zerolog.Logger) *api.Client {
	opts := []api.Option{api.WithLogger(logger)}
	if cfg.CacheEnabled() {
		opts = append(opts, api.WithCache(api.NewResponseCache(cfg.CacheDuration())))
	}
	return api.NewClient(cfg.BaseURL, cfg.DictionaryKey, cfg.ThesaurusKey, opts...)
}

// ResolveFormat picks the output format: the flag wins, then the config file, then table.
func ResolveFormat(flag string, cfg *config.Config) (view.Format, error) {
	format := flag
	if format == "" && cfg != nil {
		format = cfg.OutputFormat
	}
	if err := view.ValidateFormat(format); err != nil {
		return "", err
	}
	if format == "" {
		return view.FormatTable, nil
	}
	return view.Format(format), nil
}

// NewRenderer creates a renderer writing to out, or stdout when out is nil.
func NewRenderer(format view.Format, noColor bool, out io.Writer) *view.Renderer {
	r := view.NewRenderer(format, noColor)
	if out != nil {
		r.SetWriter(out)
	}
	return r
}
