package wait

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var spinnerFrames = []string{"|", "/", "-", "\\"}

var (
	activeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#3b82f6"))
	readyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e"))
	failedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#eab308"))
	elapsedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
)

// Model is the Bubble Tea model behind the wait spinner.
type Model struct {
	Title       string
	Attempt     int
	MaxAttempts int
	StartTime   time.Time

	SpinnerFrame int

	Ready bool
	Done  bool
	Err   error
}

func newModel(title string, maxAttempts int) Model {
	return Model{
		Title:       title,
		MaxAttempts: maxAttempts,
		StartTime:   time.Now(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.Err = fmt.Errorf("interrupted")
			return m, tea.Quit
		}

	case TickMsg:
		m.SpinnerFrame++
		return m, tickCmd()

	case ProbeMsg:
		m.Attempt = msg.Attempt
		m.Ready = msg.Ready

	case DoneMsg:
		m.Done = true
		m.Ready = msg.Ready
		return m, tea.Quit

	case ErrMsg:
		m.Err = msg.Err
		return m, tea.Quit
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	elapsed := elapsedStyle.Render(fmt.Sprintf("(%s)", formatDuration(time.Since(m.StartTime))))

	if m.Done {
		if m.Ready {
			return readyStyle.Render("[OK] "+m.Title) + " " + elapsed + "\n"
		}
		return failedStyle.Render("[??] "+m.Title+" timed out") + " " + elapsed + "\n"
	}

	frame := currentSpinner(m.SpinnerFrame)
	return activeStyle.Render(fmt.Sprintf("[%s] %s", frame, m.Title)) +
		fmt.Sprintf(" attempt %d/%d ", m.Attempt, m.MaxAttempts) + elapsed + "\n"
}

func currentSpinner(frame int) string {
	if frame < 0 {
		frame = -frame
	}
	return spinnerFrames[frame%len(spinnerFrames)]
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	if d >= time.Minute {
		return fmt.Sprintf("%dm%02ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%ds", int(d.Seconds()))
}

func tickCmd() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}
