// Package wait renders a live progress line while polling for container
// readiness, falling back to plain output when stdout is not a terminal.
package wait

// ProbeMsg reports the outcome of one readiness probe.
type ProbeMsg struct {
	Attempt int
	Ready   bool
}

// TickMsg is sent periodically to advance the spinner.
type TickMsg struct{}

// DoneMsg signals that polling finished, ready or not.
type DoneMsg struct{ Ready bool }

// ErrMsg carries an error that aborted polling.
type ErrMsg struct{ Err error }
