package commands

import (
	"github.com/spf13/cobra"

	"github.com/C3i-Servicios-Informaticos/c3i-lxc-odoo-deploy/cmd/lxc-odoo-deploy/handlers"
)

// Init returns the command for interactively creating an answers file.
//
// The same wizard that drives `create` collects the container, network and
// Odoo parameters, but instead of provisioning anything the answers are
// saved to a YAML file that `create --config` replays later.
//
// Flags:
//
//	--output, -o: Path to output file (default "odoo-lxc.yaml")
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create an answers file",
		Long: `Interactively create an answers file for later non-interactive runs.

The wizard asks about:

  - Container identity and sizing (id, hostname, memory, disk, cores)
  - Network mode (local bridge or routed public IP)
  - Odoo database credentials

The resulting YAML contains credentials and is written with mode 0600.
Replay it with:

  lxc-odoo-deploy create --config <file> --yes`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "odoo-lxc.yaml", "Output file path")

	return cmd
}
