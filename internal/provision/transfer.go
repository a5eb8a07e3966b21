package provision

import (
	"fmt"
	"path/filepath"

	"github.com/C3i-Servicios-Informaticos/c3i-lxc-odoo-deploy/internal/modules"
	"github.com/C3i-Servicios-Informaticos/c3i-lxc-odoo-deploy/internal/ui"
)

// containerModulesDir is where addon archives are unpacked for the
// installer to pick up.
const containerModulesDir = "/tmp/custom_modules"

// TransferPhase ships each custom addon into the container as a tar.gz
// and unpacks it. A no-op when no addons were discovered.
type TransferPhase struct{}

// Name implements Phase.
func (p *TransferPhase) Name() string { return "Transfer custom addons" }

// Run implements Phase.
func (p *TransferPhase) Run(ctx *Context) error {
	if len(ctx.Modules) == 0 {
		ui.Dimf("No custom addons to transfer")
		return nil
	}

	vmid := ctx.Config.VMID
	if _, err := ctx.Client.Exec(ctx, vmid, "mkdir", "-p", containerModulesDir); err != nil {
		return err
	}

	for _, name := range ctx.Modules {
		archive := filepath.Join(ctx.WorkDir, name+".tar.gz")
		if err := modules.Archive(ctx.ModulesDir, name, archive); err != nil {
			return fmt.Errorf("failed to pack addon %q: %w", name, err)
		}

		remote := containerModulesDir + "/" + name + ".tar.gz"
		if err := ctx.Client.Push(ctx, vmid, archive, remote); err != nil {
			return err
		}
		if _, err := ctx.Client.Exec(ctx, vmid, "tar", "-xzf", remote, "-C", containerModulesDir); err != nil {
			return fmt.Errorf("failed to unpack addon %q: %w", name, err)
		}
		if _, err := ctx.Client.Exec(ctx, vmid, "rm", "-f", remote); err != nil {
			return err
		}

		ui.Successf("Addon %s transferred", name)
	}

	return nil
}
