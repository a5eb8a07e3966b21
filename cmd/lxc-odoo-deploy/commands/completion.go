package commands

import (
	"os"

	"github.com/spf13/cobra"
)

// Completion returns the completion command for shell autocompletion.
func Completion() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for lxc-odoo-deploy.

To load completions:

Bash:
  $ source <(lxc-odoo-deploy completion bash)
  # To load completions for each session, execute once:
  $ lxc-odoo-deploy completion bash > /etc/bash_completion.d/lxc-odoo-deploy

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. Execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc
  # To load completions for each session, execute once:
  $ lxc-odoo-deploy completion zsh > "${fpath[1]}/_lxc-odoo-deploy"
  # You will need to start a new shell for this setup to take effect.

Fish:
  $ lxc-odoo-deploy completion fish | source
  # To load completions for each session, execute once:
  $ lxc-odoo-deploy completion fish > ~/.config/fish/completions/lxc-odoo-deploy.fish

PowerShell:
  PS> lxc-odoo-deploy completion powershell | Out-String | Invoke-Expression
  # To load completions for every new session, run:
  PS> lxc-odoo-deploy completion powershell > lxc-odoo-deploy.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
	return cmd
}
