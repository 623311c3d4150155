package wizard

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/mrsinham/hospforge/cmd/hospforge/wizard/components"
	"github.com/mrsinham/hospforge/internal/hospital"
	"github.com/mrsinham/hospforge/internal/hospital/scenario"
	"github.com/mrsinham/hospforge/internal/hospital/synth"
)

// Phase represents the current phase/screen of the wizard.
type Phase int

const (
	PhaseForm Phase = iota
	PhaseSummary
	PhaseSaveConfig
	PhaseProgress
	PhaseComplete
	PhaseError
)

// Wizard is the main orchestrator for the wizard interface.
type Wizard struct {
	state *State

	phase Phase

	form           *huh.Form
	summaryForm    *huh.Form
	saveConfigForm *huh.Form
	progressScreen *progressScreen

	// String versions for form binding (huh binds to strings)
	numCommandsStr string
	seedStr        string
	chaosStr       string
	overlapStr     string
	emergencyStr   string

	confirmed  bool
	saveConfig bool
	configPath string

	result hospital.Result

	width  int
	height int

	cancelled bool
	err       error
}

// NewWizard creates a new wizard with default or loaded state.
func NewWizard(state *State) *Wizard {
	if state == nil {
		state = &State{
			Scenario:  string(scenario.Triage),
			Mode:      string(synth.Mixed),
			OutputDir: ".",
		}
	}
	if state.Scenario == "" {
		state.Scenario = string(scenario.Triage)
	}
	if state.Mode == "" {
		state.Mode = string(synth.Mixed)
	}
	if state.OutputDir == "" {
		state.OutputDir = "."
	}

	w := &Wizard{
		state:          state,
		phase:          PhaseForm,
		numCommandsStr: formatInt(state.NumCommands),
		seedStr:        formatInt64(state.Seed),
		chaosStr:       formatFloat(state.Chaos),
		overlapStr:     formatFloat(state.OverlapRatio),
		emergencyStr:   formatFloat(state.EmergencyRatio),
	}
	w.form = w.buildForm()
	return w
}

func (w *Wizard) buildForm() *huh.Form {
	scenarioOptions := make([]huh.Option[string], 0, len(scenario.AllScenarios()))
	for _, s := range scenario.AllScenarios() {
		scenarioOptions = append(scenarioOptions, huh.NewOption(string(s), string(s)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("scenario").
				Title("Scenario").
				Options(scenarioOptions...).
				Value(&w.state.Scenario),

			huh.NewSelect[string]().
				Key("mode").
				Title("Validity Mode").
				Options(
					huh.NewOption("mixed - probabilistic corruption", string(synth.Mixed)),
					huh.NewOption("strict - only valid commands", string(synth.Strict)),
				).
				Value(&w.state.Mode),

			huh.NewInput().
				Key("num_commands").
				Title("Number of Commands").
				Placeholder("0 = scenario default").
				Value(&w.numCommandsStr).
				Validate(validateNonNegativeInt),

			huh.NewInput().
				Key("seed").
				Title("Seed").
				Placeholder("0 = auto-generate").
				Value(&w.seedStr).
				Validate(validateInt64),

			huh.NewInput().
				Key("output_dir").
				Title("Output Directory").
				Value(&w.state.OutputDir).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("output directory is required")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewInput().
				Key("chaos").
				Title("Chaos").
				Placeholder("0.0 - 1.0").
				Value(&w.chaosStr).
				Validate(validateRatio),

			huh.NewInput().
				Key("overlap_ratio").
				Title("Overlap Ratio").
				Placeholder("0 = default 0.4").
				Value(&w.overlapStr).
				Validate(validateRatio),

			huh.NewInput().
				Key("emergency_ratio").
				Title("Emergency Ratio").
				Placeholder("0 = default 0.65").
				Value(&w.emergencyStr).
				Validate(validateRatio),
		),
	)
}

func (w *Wizard) buildSummaryForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("confirm").
				Title("Generate with these settings?").
				Affirmative("Generate").
				Negative("Back").
				Value(&w.confirmed),
		),
	)
}

func (w *Wizard) buildSaveConfigForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("save").
				Title("Save this configuration as YAML?").
				Value(&w.saveConfig),
			huh.NewInput().
				Key("config_path").
				Title("Config Path").
				Placeholder("hospforge.yaml").
				Value(&w.configPath),
		),
	)
}

// Init implements tea.Model.
func (w *Wizard) Init() tea.Cmd {
	return w.form.Init()
}

// Update implements tea.Model.
func (w *Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		w.width = wsm.Width
		w.height = wsm.Height
	}

	switch w.phase {
	case PhaseForm:
		return w.updateForm(msg)
	case PhaseSummary:
		return w.updateSummary(msg)
	case PhaseSaveConfig:
		return w.updateSaveConfig(msg)
	case PhaseProgress:
		return w.updateProgress(msg)
	case PhaseComplete, PhaseError:
		if key, ok := msg.(tea.KeyMsg); ok {
			switch key.String() {
			case "q", "enter", "esc", "ctrl+c":
				return w, tea.Quit
			}
		}
	}
	return w, nil
}

// View implements tea.Model.
func (w *Wizard) View() string {
	switch w.phase {
	case PhaseForm:
		return lipgloss.JoinVertical(lipgloss.Left,
			components.TitleStyle.Render("hospforge wizard"),
			components.SubtitleStyle.Render("Configure the command stream"),
			w.form.View(),
		)
	case PhaseSummary:
		return lipgloss.JoinVertical(lipgloss.Left,
			components.TitleStyle.Render("Summary"),
			w.renderSummary(),
			w.summaryForm.View(),
		)
	case PhaseSaveConfig:
		return lipgloss.JoinVertical(lipgloss.Left,
			components.TitleStyle.Render("Save Configuration"),
			w.saveConfigForm.View(),
		)
	case PhaseProgress:
		return w.progressScreen.View()
	case PhaseComplete:
		return lipgloss.JoinVertical(lipgloss.Left,
			components.SuccessStyle.Render("✓ Generation complete!"),
			"",
			components.LabelStyle.Render("Artifact:  ")+components.ValueStyle.Render(w.result.Path),
			components.LabelStyle.Render("Commands:  ")+components.ValueStyle.Render(strconv.Itoa(w.result.NumCommands)),
			components.LabelStyle.Render("Seed:      ")+components.ValueStyle.Render(strconv.FormatInt(w.result.Seed, 10)),
			"",
			components.HintStyle.Render("Press enter to exit"),
		)
	case PhaseError:
		return lipgloss.JoinVertical(lipgloss.Left,
			components.ErrorStyle.Render("✗ Generation failed"),
			"",
			w.err.Error(),
			"",
			components.HintStyle.Render("Press enter to exit"),
		)
	}
	return ""
}

func (w *Wizard) renderSummary() string {
	rows := []struct {
		label string
		value string
	}{
		{"Scenario", w.state.Scenario},
		{"Mode", w.state.Mode},
		{"Commands", orDefault(w.numCommandsStr)},
		{"Seed", orDefault(w.seedStr)},
		{"Output", w.state.OutputDir},
		{"Chaos", orDefault(w.chaosStr)},
		{"Overlap ratio", orDefault(w.overlapStr)},
		{"Emergency ratio", orDefault(w.emergencyStr)},
	}

	var sb strings.Builder
	for _, row := range rows {
		sb.WriteString(components.LabelStyle.Render(fmt.Sprintf("%-16s", row.label)))
		sb.WriteString(components.ValueStyle.Render(row.value))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (w *Wizard) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.form.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		w.form = form
	}

	if w.form.State == huh.StateAborted {
		w.cancelled = true
		return w, tea.Quit
	}

	if w.form.State == huh.StateCompleted {
		if err := w.bindFormValues(); err != nil {
			w.err = err
			w.phase = PhaseError
			return w, nil
		}
		w.phase = PhaseSummary
		w.summaryForm = w.buildSummaryForm()
		return w, w.summaryForm.Init()
	}

	return w, cmd
}

func (w *Wizard) updateSummary(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.summaryForm.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		w.summaryForm = form
	}

	if w.summaryForm.State == huh.StateAborted {
		w.cancelled = true
		return w, tea.Quit
	}

	if w.summaryForm.State == huh.StateCompleted {
		if !w.confirmed {
			// Back to the form for another pass.
			w.phase = PhaseForm
			w.form = w.buildForm()
			return w, w.form.Init()
		}
		w.phase = PhaseSaveConfig
		w.saveConfigForm = w.buildSaveConfigForm()
		return w, w.saveConfigForm.Init()
	}

	return w, cmd
}

func (w *Wizard) updateSaveConfig(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.saveConfigForm.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		w.saveConfigForm = form
	}

	if w.saveConfigForm.State == huh.StateAborted {
		w.cancelled = true
		return w, tea.Quit
	}

	if w.saveConfigForm.State == huh.StateCompleted {
		if w.saveConfig {
			path := w.configPath
			if path == "" {
				path = "hospforge.yaml"
			}
			if err := SaveToYAML(w.state, path); err != nil {
				w.err = err
				w.phase = PhaseError
				return w, nil
			}
		}
		return w.startGeneration()
	}

	return w, cmd
}

func (w *Wizard) startGeneration() (tea.Model, tea.Cmd) {
	opts, err := ToOptions(w.state)
	if err != nil {
		w.err = err
		w.phase = PhaseError
		return w, nil
	}

	w.phase = PhaseProgress
	w.progressScreen = newProgressScreen()

	generate := func() tea.Msg {
		start := time.Now()
		res, err := hospital.Generate(opts)
		if err != nil {
			return errorMsg{err: err}
		}
		return completionMsg{result: res, duration: time.Since(start)}
	}

	return w, tea.Batch(w.progressScreen.Init(), generate)
}

func (w *Wizard) updateProgress(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case completionMsg:
		w.result = msg.result
		w.phase = PhaseComplete
		return w, nil
	case errorMsg:
		w.err = msg.err
		w.phase = PhaseError
		return w, nil
	}

	model, cmd := w.progressScreen.Update(msg)
	if ps, ok := model.(*progressScreen); ok {
		w.progressScreen = ps
	}
	if w.progressScreen.cancelled {
		w.cancelled = true
		return w, tea.Quit
	}
	return w, cmd
}

func (w *Wizard) bindFormValues() error {
	var err error
	if w.state.NumCommands, err = parseIntOrZero(w.numCommandsStr); err != nil {
		return fmt.Errorf("number of commands: %w", err)
	}
	if w.state.Seed, err = parseInt64OrZero(w.seedStr); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if w.state.Chaos, err = parseFloatOrZero(w.chaosStr); err != nil {
		return fmt.Errorf("chaos: %w", err)
	}
	if w.state.OverlapRatio, err = parseFloatOrZero(w.overlapStr); err != nil {
		return fmt.Errorf("overlap ratio: %w", err)
	}
	if w.state.EmergencyRatio, err = parseFloatOrZero(w.emergencyStr); err != nil {
		return fmt.Errorf("emergency ratio: %w", err)
	}
	return nil
}

// Run launches the interactive wizard, optionally pre-filled from a YAML
// config file.
func Run(fromConfig string) error {
	var state *State

	// Load config if provided
	if fromConfig != "" {
		absPath, err := filepath.Abs(fromConfig)
		if err != nil {
			return fmt.Errorf("resolving config path: %w", err)
		}

		loaded, err := LoadFromYAML(absPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		state = loaded
	}

	wizard := NewWizard(state)
	p := tea.NewProgram(wizard, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("running wizard: %w", err)
	}

	if w, ok := finalModel.(*Wizard); ok {
		if w.cancelled {
			return nil // User cancelled, not an error
		}
		if w.err != nil {
			return w.err
		}
	}

	return nil
}

func validateNonNegativeInt(s string) error {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if n < 0 {
		return fmt.Errorf("must be >= 0")
	}
	return nil
}

func validateInt64(s string) error {
	if s == "" {
		return nil
	}
	if _, err := strconv.ParseInt(s, 10, 64); err != nil {
		return fmt.Errorf("must be a number")
	}
	return nil
}

func validateRatio(s string) error {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if f < 0 || f > 1 {
		return fmt.Errorf("must be in [0,1]")
	}
	return nil
}

func parseIntOrZero(s string) (int, error) {
	if s == "" || s == "0" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

func parseInt64OrZero(s string) (int64, error) {
	if s == "" || s == "0" {
		return 0, nil
	}
	return strconv.ParseInt(s, 10, 64)
}

func parseFloatOrZero(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

func formatInt(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func formatInt64(n int64) string {
	if n == 0 {
		return ""
	}
	return strconv.FormatInt(n, 10)
}

func formatFloat(f float64) string {
	if f == 0 {
		return ""
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func orDefault(s string) string {
	if s == "" {
		return "(default)"
	}
	return s
}
