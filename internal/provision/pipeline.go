package provision

import (
	"fmt"
	"time"

	"github.com/C3i-Servicios-Informaticos/c3i-lxc-odoo-deploy/internal/ui"
)

// Phase is one step of the deployment.
type Phase interface {
	// Name returns the human-readable name of this phase.
	Name() string

	// Run executes the phase against the shared context.
	Run(ctx *Context) error
}

// Phases returns the standard deployment sequence.
func Phases() []Phase {
	return []Phase{
		&CreatePhase{},
		&WaitPhase{},
		&TransferPhase{},
		&InstallPhase{},
	}
}

// RunPhases executes the phases sequentially, stopping at the first failure.
func RunPhases(ctx *Context, phases []Phase) error {
	start := time.Now()

	for i, phase := range phases {
		phaseStart := time.Now()
		ui.Infof("[%d/%d] %s", i+1, len(phases), phase.Name())

		if err := phase.Run(ctx); err != nil {
			return fmt.Errorf("%s: %w", phase.Name(), err)
		}

		ui.Dimf("%s done in %v", phase.Name(), time.Since(phaseStart).Round(time.Second))
	}

	ui.Successf("Deployment finished in %v", time.Since(start).Round(time.Second))
	return nil
}
