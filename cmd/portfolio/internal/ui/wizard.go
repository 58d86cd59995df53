// Package ui implements the interactive new-post wizard.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Answers holds everything the wizard collects for a new post.
type Answers struct {
	Title       string
	Description string
	Tags        []string
	Draft       bool
}

// step identifies the current wizard question.
type step int

const (
	stepTitle step = iota
	stepDescription
	stepTags
	stepDraft
	stepDone
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	questionStyle = lipgloss.NewStyle().Bold(true)
	answerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	helpStyle     = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// Model is the bubbletea model for the wizard.
type Model struct {
	step    step
	input   textinput.Model
	answers Answers
	aborted bool
	invalid string
}

// NewModel creates the wizard, optionally pre-filling the title.
func NewModel(title string) Model {
	input := textinput.New()
	input.Placeholder = "My next post"
	input.CharLimit = 120
	input.Width = 48
	input.SetValue(title)
	input.Focus()

	return Model{
		step:  stepTitle,
		input: input,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit

		case tea.KeyEnter:
			return m.advance()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// advance records the current answer and moves to the next question.
func (m Model) advance() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())
	m.invalid = ""

	switch m.step {
	case stepTitle:
		if value == "" {
			m.invalid = "A post needs a title."
			return m, nil
		}
		m.answers.Title = value
		m.input.Placeholder = "One or two sentences for the post list"

	case stepDescription:
		m.answers.Description = value
		m.input.Placeholder = "go, i18n, webdev"

	case stepTags:
		for _, tag := range strings.Split(value, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				m.answers.Tags = append(m.answers.Tags, tag)
			}
		}
		m.input.Placeholder = "y/N"

	case stepDraft:
		m.answers.Draft = strings.EqualFold(value, "y") || strings.EqualFold(value, "yes")
	}

	m.step++
	m.input.SetValue("")

	if m.step == stepDone {
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) View() string {
	if m.step == stepDone || m.aborted {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("📝 New post"))
	sb.WriteString("\n\n")

	if m.answers.Title != "" {
		fmt.Fprintf(&sb, "%s %s\n", questionStyle.Render("Title:"), answerStyle.Render(m.answers.Title))
	}
	if m.step > stepDescription && m.answers.Description != "" {
		fmt.Fprintf(&sb, "%s %s\n", questionStyle.Render("Description:"), answerStyle.Render(m.answers.Description))
	}
	if m.step > stepTags && len(m.answers.Tags) > 0 {
		fmt.Fprintf(&sb, "%s %s\n", questionStyle.Render("Tags:"), answerStyle.Render(strings.Join(m.answers.Tags, ", ")))
	}

	sb.WriteString("\n")
	sb.WriteString(questionStyle.Render(m.question()))
	sb.WriteString("\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n")

	if m.invalid != "" {
		sb.WriteString(errorStyle.Render(m.invalid))
		sb.WriteString("\n")
	}

	sb.WriteString(helpStyle.Render("enter: confirm · esc: abort"))
	return sb.String()
}

func (m Model) question() string {
	switch m.step {
	case stepTitle:
		return "What is the post called?"
	case stepDescription:
		return "How would you describe it? (optional)"
	case stepTags:
		return "Any tags? (comma-separated, optional)"
	case stepDraft:
		return "Start as a draft? (y/N)"
	}
	return ""
}

// Run starts the wizard and blocks until it finishes. The second return
// value is false when the user aborted.
func Run(title string) (Answers, bool, error) {
	program := tea.NewProgram(NewModel(title))

	final, err := program.Run()
	if err != nil {
		return Answers{}, false, err
	}

	m, ok := final.(Model)
	if !ok || m.aborted {
		return Answers{}, false, nil
	}
	return m.answers, true, nil
}
