package commands

import (
	"github.com/spf13/cobra"

	"github.com/C3i-Servicios-Informaticos/c3i-lxc-odoo-deploy/cmd/lxc-odoo-deploy/handlers"
	"github.com/C3i-Servicios-Informaticos/c3i-lxc-odoo-deploy/internal/modules"
)

// Create returns the command that provisions the container and installs
// Odoo inside it.
//
// Without flags it runs fully interactively: prerequisites are checked, a
// storage backend is selected, and the container parameters are collected
// by a wizard. With --config the answers file replaces the wizard.
//
// Flags:
//
//	--config, -c: Path to an answers file written by `init`
//	--modules-dir: Directory holding custom Odoo addons to install
//	--yes, -y: Skip confirmation prompts (requires --config)
func Create() *cobra.Command {
	var (
		configPath string
		modulesDir string
		yes        bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create the container and install Odoo",
		Long: `Create an LXC container on this Proxmox VE host and install Odoo in it.

The command checks host prerequisites, lets you pick a storage backend,
collects the container and network parameters (interactively or from an
answers file), creates the container, waits for connectivity, transfers
any custom addons, and runs the Odoo installer inside the container.

Examples:
  # Fully interactive run
  lxc-odoo-deploy create

  # Non-interactive run from a saved answers file
  lxc-odoo-deploy create --config odoo-lxc.yaml --yes

  # Install custom addons from a local directory
  lxc-odoo-deploy create --modules-dir ./modules`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Create(cmd.Context(), handlers.CreateOptions{
				ConfigPath: configPath,
				ModulesDir: modulesDir,
				Yes:        yes,
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to an answers file (skips the wizard)")
	cmd.Flags().StringVar(&modulesDir, "modules-dir", modules.DefaultDir, "Directory holding custom Odoo addons")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation prompts")

	return cmd
}
