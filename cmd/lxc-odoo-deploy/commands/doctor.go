package commands

import (
	"github.com/spf13/cobra"

	"github.com/C3i-Servicios-Informaticos/c3i-lxc-odoo-deploy/cmd/lxc-odoo-deploy/handlers"
)

// Doctor returns the command for diagnosing the host environment.
//
// It checks that the Proxmox tooling is installed, that the command runs
// with sufficient privileges, and which storage backends can hold
// containers and templates.
//
// Flags:
//
//	--json: Output in JSON format
func Doctor() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose the Proxmox host environment",
		Long: `Diagnose whether this host can run a deployment.

Checks:
  - Required tools (pvesh, pct, curl) and optional tools (pveam)
  - Root privileges
  - Storage backends and their container/template support

Examples:
  # Human-readable report
  lxc-odoo-deploy doctor

  # Machine-readable report
  lxc-odoo-deploy doctor --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Doctor(cmd.Context(), jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}
