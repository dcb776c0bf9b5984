package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/guess-arcade/internal/core"
	"github.com/vovakirdan/guess-arcade/internal/players"
)

// PromptModel is the Bubble Tea model for a single line of human input.
// The program quits as soon as the line is submitted or abandoned.
type PromptModel struct {
	prompt    players.Prompt
	input     textinput.Model
	help      help.Model
	keys      PromptKeyMap
	submitted bool
	quitting  bool
}

// NewPromptModel creates a focused prompt.
func NewPromptModel(p players.Prompt) PromptModel {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = placeholderFor(p.Message)
	input.CharLimit = 64
	input.Width = 32
	input.Focus()

	return PromptModel{
		prompt: p,
		input:  input,
		help:   help.New(),
		keys:   DefaultPromptKeyMap(),
	}
}

// Init starts the cursor blinking.
func (m PromptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the prompt.
func (m PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			m.submitted = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt. Once finished only the answered line remains,
// so the transcript above stays readable.
func (m PromptModel) View() string {
	label := m.prompt.Message
	if m.prompt.PlayerID != "" {
		label = fmt.Sprintf("[%s] %s", m.prompt.PlayerID, label)
	}

	if m.submitted {
		return fmt.Sprintf("%s: %s\n", label, m.input.Value())
	}
	if m.quitting {
		return ""
	}

	var b strings.Builder
	if m.prompt.Problem != "" {
		b.WriteString(problemStyle.Render("Invalid input: " + m.prompt.Problem))
		b.WriteString("\n")
	}
	b.WriteString(label)
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	b.WriteString("\n")
	return b.String()
}

// Value returns the text typed so far.
func (m PromptModel) Value() string {
	return m.input.Value()
}

// Submitted reports whether the line was confirmed with enter.
func (m PromptModel) Submitted() bool {
	return m.submitted
}

// IsQuitting returns true if the user abandoned the prompt.
func (m PromptModel) IsQuitting() bool {
	return m.quitting
}

// RunPrompt runs one prompt program and returns the submitted line.
// Quitting the prompt is reported as core.ErrInputClosed.
func RunPrompt(ctx context.Context, in io.Reader, out io.Writer, p players.Prompt) (string, error) {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if in != nil {
		opts = append(opts, tea.WithInput(in))
	}
	if out != nil {
		opts = append(opts, tea.WithOutput(out))
	}

	finalModel, err := tea.NewProgram(NewPromptModel(p), opts...).Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", fmt.Errorf("tui: prompt: %w", err)
	}

	m, ok := finalModel.(PromptModel)
	if !ok || !m.Submitted() {
		return "", fmt.Errorf("tui: prompt abandoned: %w", core.ErrInputClosed)
	}
	return m.Value(), nil
}

// placeholderFor hints the expected input shape.
func placeholderFor(message string) string {
	switch {
	case strings.Contains(message, "letter"):
		return "e"
	case strings.Contains(message, "colors"):
		return "RGBY"
	case strings.Contains(message, "yes/no"):
		return "yes"
	default:
		return ""
	}
}
