package wait

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/C3i-Servicios-Informaticos/c3i-lxc-odoo-deploy/internal/ui"
	"github.com/C3i-Servicios-Informaticos/c3i-lxc-odoo-deploy/internal/util/retry"
)

// Probe checks once whether the awaited condition holds. Attempts start at 1.
type Probe func(ctx context.Context, attempt int) bool

// Run polls probe under a live progress line until it reports ready, the
// attempts run out, or ctx is cancelled. It returns whether the condition
// was met; exhausting the attempts is not an error.
func Run(ctx context.Context, title string, maxAttempts int, interval time.Duration, probe Probe) (bool, error) {
	if !ui.IsTerminal() {
		return runPlain(ctx, title, maxAttempts, interval, probe)
	}

	p := tea.NewProgram(newModel(title, maxAttempts))

	go func() {
		ready, err := retry.Poll(ctx, func(attempt int) bool {
			ok := probe(ctx, attempt)
			p.Send(ProbeMsg{Attempt: attempt, Ready: ok})
			return ok
		}, retry.WithMaxAttempts(maxAttempts), retry.WithInterval(interval))
		if err != nil {
			p.Send(ErrMsg{Err: err})
			return
		}
		p.Send(DoneMsg{Ready: ready})
	}()

	finalModel, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("progress display: %w", err)
	}

	fm := finalModel.(Model)
	if fm.Err != nil {
		return false, fm.Err
	}
	return fm.Ready, nil
}

// runPlain prints one dot per attempt, for logs and non-interactive runs.
func runPlain(ctx context.Context, title string, maxAttempts int, interval time.Duration, probe Probe) (bool, error) {
	ui.Progressf("%s", title)
	ready, err := retry.Poll(ctx, func(attempt int) bool {
		fmt.Print(".")
		return probe(ctx, attempt)
	}, retry.WithMaxAttempts(maxAttempts), retry.WithInterval(interval))
	fmt.Println()
	return ready, err
}
