package provision

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/C3i-Servicios-Informaticos/c3i-lxc-odoo-deploy/internal/installer"
	"github.com/C3i-Servicios-Informaticos/c3i-lxc-odoo-deploy/internal/netutil"
	"github.com/C3i-Servicios-Informaticos/c3i-lxc-odoo-deploy/internal/ui"
)

const remoteScriptPath = "/root/odoo_install.sh"

// InstallPhase renders the installer script, pushes it into the container
// and streams its output, echoing tagged lines through the ui package.
type InstallPhase struct{}

// Name implements Phase.
func (p *InstallPhase) Name() string { return "Install Odoo" }

// Run implements Phase.
func (p *InstallPhase) Run(ctx *Context) error {
	cfg := ctx.Config

	script := installer.Script{
		Version:    cfg.Odoo.Version,
		DBUser:     cfg.Odoo.DBUser,
		DBPassword: cfg.Odoo.DBPassword,
		Modules:    ctx.Modules,
	}
	rendered, err := script.Render()
	if err != nil {
		return err
	}

	local := filepath.Join(ctx.WorkDir, "odoo_install.sh")
	if err := os.WriteFile(local, []byte(rendered), 0o755); err != nil {
		return fmt.Errorf("failed to write installer script: %w", err)
	}

	vmid := cfg.VMID
	if err := ctx.Client.Push(ctx, vmid, local, remoteScriptPath); err != nil {
		return err
	}
	if _, err := ctx.Client.Exec(ctx, vmid, "chmod", "+x", remoteScriptPath); err != nil {
		return err
	}

	ui.Infof("Running installer inside container %d, this takes a while...", vmid)
	err = ctx.Client.ExecStream(ctx, vmid, echoLine, "bash", remoteScriptPath)
	if err != nil {
		// The container is up with the script in place, so leave recovery
		// to the operator instead of tearing anything down.
		ui.Warningf("Installer exited with an error: %v", err)
		ui.Warningf("Inspect it with: pct exec %d -- bash %s", vmid, remoteScriptPath)
		return nil
	}

	ui.Successf("Odoo installation finished")

	if err := netutil.WaitForPort(ctx, cfg.Network.Address, netutil.OdooPort, ctx.WebWaitTimeout); err != nil {
		ui.Warningf("Odoo web port not reachable yet: %v", err)
	} else {
		ui.Successf("Odoo is answering on port %d", netutil.OdooPort)
	}
	return nil
}

func echoLine(line string) {
	level, text := installer.Classify(line)
	switch level {
	case installer.LevelInfo:
		ui.Infof("%s", text)
	case installer.LevelSuccess:
		ui.Successf("%s", text)
	case installer.LevelWarning:
		ui.Warningf("%s", text)
	case installer.LevelError:
		ui.Errorf("%s", text)
	case installer.LevelProgress:
		ui.Progressf("%s", text)
	default:
		ui.Dimf("%s", text)
	}
}
