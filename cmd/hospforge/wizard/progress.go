package wizard

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mrsinham/hospforge/cmd/hospforge/wizard/components"
	"github.com/mrsinham/hospforge/internal/hospital"
)

// completionMsg is sent when generation completes successfully.
type completionMsg struct {
	result   hospital.Result
	duration time.Duration
}

// errorMsg is sent when an error occurs during generation.
type errorMsg struct {
	err error
}

// progressScreen displays a spinner while the artifact is generated.
// Generation is a single fast batch, so there is no per-command bar.
type progressScreen struct {
	spinner   spinner.Model
	startTime time.Time
	cancelled bool
}

func newProgressScreen() *progressScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
	return &progressScreen{
		spinner:   sp,
		startTime: time.Now(),
	}
}

// Init implements tea.Model.
func (s *progressScreen) Init() tea.Cmd {
	return s.spinner.Tick
}

// Update implements tea.Model.
func (s *progressScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			s.cancelled = true
			return s, tea.Quit
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd
	}
	return s, nil
}

// View implements tea.Model.
func (s *progressScreen) View() string {
	if s.cancelled {
		return "Cancelled.\n"
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		components.TitleStyle.Render("Generating commands..."),
		s.spinner.View()+" composing scenario",
		"",
		components.HintStyle.Render("Press ctrl+c to cancel"),
	)
}
