package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// difficultyOption is one row of the difficulty picker.
type difficultyOption struct {
	Preset config.DifficultyPreset
	Label  string
}

var difficultyOptions = []difficultyOption{
	{"", "Standard (config file)"},
	{config.DifficultyEasy, "Easy - slow start, long lock delay"},
	{config.DifficultyNormal, "Normal - speeds up with score"},
	{config.DifficultyHard, "Hard - fast start, short lock delay"},
	{config.DifficultyFixed, "Fixed - constant gravity"},
}

// DifficultyModel lets users choose a difficulty preset before a game starts.
type DifficultyModel struct {
	title    string
	cursor   int
	width    int
	height   int
	selected *config.DifficultyPreset
	quitting bool
	back     bool
}

// NewDifficultyModel creates a difficulty picker for the named game.
func NewDifficultyModel(title string, width, height int) DifficultyModel {
	return DifficultyModel{
		title:  title,
		width:  width,
		height: height,
	}
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m DifficultyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(difficultyOptions)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		preset := difficultyOptions[m.cursor].Preset
		m.selected = &preset
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the preset list.
func (m DifficultyModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(strings.ToUpper(m.title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, opt := range difficultyOptions {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%-36s", cursor, opt.Label), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the chosen preset, or nil if still choosing.
func (m DifficultyModel) Selected() *config.DifficultyPreset {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m DifficultyModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m DifficultyModel) WantsBack() bool {
	return m.back
}

// RunDifficultySelector runs the picker and returns the chosen preset.
// ok is false when the user backed out or quit.
func RunDifficultySelector(title string, cfg core.RuntimeConfig) (preset config.DifficultyPreset, ok bool, err error) {
	p := tea.NewProgram(
		NewDifficultyModel(title, cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", false, err
	}

	m, isModel := finalModel.(DifficultyModel)
	if !isModel || m.Selected() == nil {
		return "", false, nil
	}
	return *m.Selected(), true, nil
}
