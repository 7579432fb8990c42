package shell

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true)
	inputStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	outputStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	modeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
)

// maxHistory bounds the number of exchanges kept on screen.
const maxHistory = 50

type exchange struct {
	input    string
	response string
}

// Model is the bubbletea model of the shell.
type Model struct {
	state    *State
	input    textinput.Model
	renderer *glamour.TermRenderer
	history  []exchange
}

// NewModel returns a shell model over state.
func NewModel(state *State) Model {
	ti := textinput.New()
	ti.Placeholder = "Enter a sentence or formula (!help for commands, Ctrl+C to exit)"
	ti.Focus()
	ti.Prompt = ">>> "
	ti.CharLimit = 1024
	ti.Width = 80
	ti.PromptStyle = promptStyle
	ti.TextStyle = inputStyle

	renderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)

	return Model{state: state, input: ti, renderer: renderer}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			line := m.input.Value()
			m.input.Reset()
			if strings.TrimSpace(line) == "" {
				return m, nil
			}
			m.history = append(m.history, exchange{input: line, response: Execute(line, m.state)})
			if len(m.history) > maxHistory {
				m.history = m.history[len(m.history)-maxHistory:]
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.input.Width = max(msg.Width-len(m.input.Prompt)-1, 10)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	var sb strings.Builder
	for _, ex := range m.history {
		sb.WriteString(promptStyle.Render(m.input.Prompt) + inputStyle.Render(ex.input) + "\n")
		sb.WriteString(m.render(ex) + "\n")
	}
	sb.WriteString(mutedStyle.Render("mode: ") + modeStyle.Render(m.state.Mode) + "\n")
	sb.WriteString(m.input.View())
	return sb.String()
}

func (m Model) render(ex exchange) string {
	switch {
	case strings.HasPrefix(ex.response, "Error: "):
		return errorStyle.Render(ex.response)
	case strings.HasPrefix(strings.TrimSpace(ex.input), "!help") && m.renderer != nil:
		if rendered, err := m.renderer.Render(ex.response); err == nil {
			return strings.TrimRight(rendered, "\n")
		}
	}
	return outputStyle.Render(ex.response)
}

// Run starts the shell on the terminal and blocks until the user quits.
func Run(state *State) error {
	_, err := tea.NewProgram(NewModel(state)).Run()
	return err
}
