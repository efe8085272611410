// Package completion provides shell completion generation commands.
package completion

import (
	"io"

	"github.com/spf13/cobra"
)

type shell struct {
	name    string
	install string
	example string
	gen     func(root *cobra.Command, w io.Writer) error
}

var shells = []shell{
	{
		name: "bash",
		install: `To load completions in your current shell session:

  source <(lex completion bash)

To load completions for every new session:

  # Linux
  lex completion bash > /etc/bash_completion.d/lex

  # macOS (requires bash-completion)
  lex completion bash > $(brew --prefix)/etc/bash_completion.d/lex`,
		example: `  # Load in current session
  source <(lex completion bash)

  # Install permanently (Linux)
  lex completion bash | sudo tee /etc/bash_completion.d/lex > /dev/null`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenBashCompletionV2(w, true)
		},
	},
	{
		name: "zsh",
		install: `To load completions in your current shell session:

  source <(lex completion zsh)

To load completions for every new session, ensure completion is enabled
(autoload -Uz compinit && compinit in ~/.zshrc), then run:

  lex completion zsh > "${fpath[1]}/_lex"`,
		example: `  # Install permanently
  mkdir -p ~/.zsh/completions
  lex completion zsh > ~/.zsh/completions/_lex`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenZshCompletion(w)
		},
	},
	{
		name: "fish",
		install: `To load completions in your current shell session:

  lex completion fish | source

To load completions for every new session:

  lex completion fish > ~/.config/fish/completions/lex.fish`,
		example: `  lex completion fish > ~/.config/fish/completions/lex.fish`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenFishCompletion(w, true)
		},
	},
	{
		name: "powershell",
		install: `To load completions in your current shell session:

  lex completion powershell | Out-String | Invoke-Expression

To load completions for every new session, add the output to your
PowerShell profile ($PROFILE).`,
		example: `  lex completion powershell >> $PROFILE`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenPowerShellCompletionWithDesc(w)
		},
	},
}

// NewCmdCompletion creates the completion command.
func NewCmdCompletion() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for lex.

These scripts enable tab-completion for commands, flags, and arguments.
See each sub-command's help for installation instructions.`,
	}

	for _, s := range shells {
		cmd.AddCommand(newShellCmd(s))
	}

	return cmd
}

func newShellCmd(s shell) *cobra.Command {
	return &cobra.Command{
		Use:                   s.name,
		Short:                 "Generate " + s.name + " completion script",
		Long:                  "Generate " + s.name + " completion script for lex.\n\n" + s.install,
		Example:               s.example,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return s.gen(cmd.Root(), cmd.OutOrStdout())
		},
	}
}
