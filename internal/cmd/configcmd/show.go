package configcmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/lexicon-cli/api"
	"github.com/open-cli-collective/lexicon-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/lexicon-cli/internal/config"
	"github.com/open-cli-collective/lexicon-cli/internal/view"
)

// NewCmdShow creates the config show command.
func NewCmdShow() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long:  `Display the current lex configuration with value source indicators.`,
		Example: `  # Show current config
  lex config show`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g := cmdutil.GlobalsFrom(cmd)
			return runShow(g.ConfigFile(), g.Output, g.NoColor, cmd.OutOrStdout())
		},
	}

	return cmd
}

// setting is one row of config show.
type setting struct {
	label     string
	value     string
	fileValue string
	secret    bool
	envVars   []string
}

func runShow(configPath, output string, noColor bool, out io.Writer) error {
	format, err := cmdutil.ResolveFormat(output, nil)
	if err != nil {
		return err
	}
	renderer := cmdutil.NewRenderer(format, noColor, out)

	// Load file config (may not exist)
	fileCfg, fileErr := config.Load(configPath)
	if fileErr != nil {
		fileCfg = &config.Config{}
	}

	// Load full config with env overrides
	cfg, _ := config.LoadWithEnv(configPath)

	settings := []setting{
		{"Dictionary key", cfg.DictionaryKey, fileCfg.DictionaryKey, true, []string{"LEX_DICTIONARY_KEY", "MW_DICTIONARY_KEY"}},
		{"Thesaurus key", cfg.ThesaurusKey, fileCfg.ThesaurusKey, true, []string{"LEX_THESAURUS_KEY", "MW_THESAURUS_KEY"}},
		{"Base URL", cfg.BaseURL, fileCfg.BaseURL, false, []string{"LEX_BASE_URL"}},
		{"Cache TTL", ttlString(cfg.CacheTTL), ttlString(fileCfg.CacheTTL), false, []string{"LEX_CACHE_TTL"}},
		{"Output", cfg.OutputFormat, fileCfg.OutputFormat, false, []string{"LEX_OUTPUT"}},
	}

	rows := make([][]string, len(settings))
	for i, st := range settings {
		rows[i] = st.row(fileErr == nil)
	}
	renderer.RenderTable([]string{"SETTING", "VALUE", "SOURCE"}, rows)

	if format == view.FormatJSON || format == view.FormatPlain {
		return nil
	}

	dim := color.New(color.Faint)
	fmt.Fprintln(out)
	if cfg.BaseURL == "" {
		_, _ = dim.Fprintf(out, "Base URL defaults to %s\n", api.DefaultBaseURL)
	}
	if !cfg.CacheEnabled() {
		_, _ = dim.Fprintln(out, "Response caching is disabled")
	} else if cfg.CacheTTL == 0 {
		_, _ = dim.Fprintf(out, "Responses are cached for %s\n", cfg.CacheDuration())
	}
	renderer.RenderKeyValue("Config file", configPath)
	if fileErr != nil {
		_, _ = dim.Fprintln(out, "(file not found)")
	}

	return nil
}

// row returns the setting's label, displayed value and source. Keys are masked.
func (st setting) row(haveFile bool) []string {
	if st.value == "" {
		return []string{st.label, "-", "-"}
	}

	display := st.value
	if st.secret {
		display = mask(st.value)
	}

	source := "config"
	if !haveFile {
		source = "-"
	}
	for _, envVar := range st.envVars {
		if v := os.Getenv(envVar); v != "" && v == st.value {
			source = envVar
			break
		}
	}
	if st.fileValue != st.value && source == "config" {
		source = "-"
	}
	return []string{st.label, display, source}
}

// mask hides all but the first and last four characters of a key.
func mask(value string) string {
	if len(value) <= 8 {
		return strings.Repeat("*", len(value))
	}
	return value[:4] + strings.Repeat("*", len(value)-8) + value[len(value)-4:]
}

func ttlString(ttl int) string {
	if ttl == 0 {
		return ""
	}
	return strconv.Itoa(ttl)
}
