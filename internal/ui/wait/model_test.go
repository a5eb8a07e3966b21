package wait

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0s"},
		{5 * time.Second, "5s"},
		{65 * time.Second, "1m05s"},
		{150 * time.Second, "2m30s"},
	}
	for _, tt := range tests {
		got := formatDuration(tt.d)
		if got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestCurrentSpinnerWraps(t *testing.T) {
	for i := 0; i < 2*len(spinnerFrames); i++ {
		if currentSpinner(i) != spinnerFrames[i%len(spinnerFrames)] {
			t.Errorf("frame %d out of sequence", i)
		}
	}
	if currentSpinner(-1) != spinnerFrames[1] {
		t.Errorf("negative frame not normalized")
	}
}

func TestModelUpdateProbe(t *testing.T) {
	m := newModel("waiting for container", 30)

	next, _ := m.Update(ProbeMsg{Attempt: 3})
	m = next.(Model)
	if m.Attempt != 3 || m.Done {
		t.Errorf("probe update: attempt=%d done=%v", m.Attempt, m.Done)
	}
}

func TestModelUpdateDone(t *testing.T) {
	m := newModel("waiting for container", 30)

	next, cmd := m.Update(DoneMsg{Ready: true})
	m = next.(Model)
	if !m.Done || !m.Ready {
		t.Errorf("done update: done=%v ready=%v", m.Done, m.Ready)
	}
	if cmd == nil {
		t.Error("expected quit command")
	}
}

func TestModelUpdateTickAdvancesSpinner(t *testing.T) {
	m := newModel("waiting", 30)
	next, cmd := m.Update(TickMsg{})
	m = next.(Model)
	if m.SpinnerFrame != 1 {
		t.Errorf("spinner frame = %d, want 1", m.SpinnerFrame)
	}
	if cmd == nil {
		t.Error("expected reschedule command")
	}
}

func TestModelUpdateInterrupt(t *testing.T) {
	m := newModel("waiting", 30)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = next.(Model)
	if m.Err == nil {
		t.Error("expected interrupt error")
	}
	if cmd == nil {
		t.Error("expected quit command")
	}
}

func TestViewStates(t *testing.T) {
	m := newModel("waiting for network", 30)
	m.Attempt = 4

	if v := m.View(); !strings.Contains(v, "attempt 4/30") {
		t.Errorf("running view missing attempt counter: %q", v)
	}

	m.Done = true
	m.Ready = true
	if v := m.View(); !strings.Contains(v, "[OK]") {
		t.Errorf("ready view missing mark: %q", v)
	}

	m.Ready = false
	if v := m.View(); !strings.Contains(v, "timed out") {
		t.Errorf("timeout view missing note: %q", v)
	}
}
