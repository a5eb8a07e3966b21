package provision

import (
	"context"

	"github.com/C3i-Servicios-Informaticos/c3i-lxc-odoo-deploy/internal/ui"
	"github.com/C3i-Servicios-Informaticos/c3i-lxc-odoo-deploy/internal/ui/wait"
)

// WaitPhase polls until the container is running and has outbound
// connectivity. Exhausting the attempts is reported as a warning, not a
// failure, so the install can still be attempted.
type WaitPhase struct{}

// Name implements Phase.
func (p *WaitPhase) Name() string { return "Wait for container" }

// Run implements Phase.
func (p *WaitPhase) Run(ctx *Context) error {
	vmid := ctx.Config.VMID

	ready, err := wait.Run(ctx, "Waiting for container and network", ctx.PollAttempts, ctx.PollInterval,
		func(probeCtx context.Context, _ int) bool {
			status, err := ctx.Client.Status(probeCtx, vmid)
			if err != nil || status != "running" {
				return false
			}
			return ctx.Client.Ping(probeCtx, vmid, PingTarget)
		})
	if err != nil {
		return err
	}

	if !ready {
		ui.Warningf("Container did not confirm connectivity in time, continuing anyway")
		return nil
	}

	ui.Successf("Container is running and reachable")
	return nil
}
