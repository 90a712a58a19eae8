package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/roommapper/internal/matching"
)

type NormalizeModel struct {
	CommonModel
	normalizer matching.Normalizer

	form  *huh.Form
	input *string

	names   []string
	results []string
	err     error
}

func NewNormalizeModel(normalizer matching.Normalizer) NormalizeModel {
	m := NormalizeModel{normalizer: normalizer}
	m.resetForm()

	return m
}

func (m NormalizeModel) Title() string { return "Normalize Room Names" }

func (m NormalizeModel) ShortHelp() string {
	if m.form.State == huh.StateCompleted {
		return "n: new names | Esc: back"
	}

	return "One name per line | Esc: back"
}

func (m NormalizeModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m NormalizeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			return m, Back
		}

		if m.form.State == huh.StateCompleted && keyMsg.String() == "n" {
			m.resetForm()
			return m, m.form.Init()
		}
	}

	if m.form.State == huh.StateCompleted {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.names = splitNames(*m.input)
	m.results, m.err = m.normalizer.NormalizeAll(m.names)

	return m, nil
}

func (m NormalizeModel) View() string {
	style := lipgloss.NewStyle().Padding(1)

	if m.form.State != huh.StateCompleted {
		return style.Render(m.form.View())
	}

	if m.err != nil {
		return style.Render(
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(fmt.Sprintf("Error: %v", m.err)) +
				"\n\n" + m.ShortHelp(),
		)
	}

	var b strings.Builder

	width := 0
	for _, name := range m.names {
		width = max(width, len(name))
	}

	for i, name := range m.names {
		fmt.Fprintf(&b, "%-*s  →  %s\n", width, name, activeStyle(m.results[i]))
	}

	return style.Render(b.String() + "\n" + m.ShortHelp())
}

func (m *NormalizeModel) resetForm() {
	m.input = new(string)
	m.names, m.results, m.err = nil, nil, nil
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Room names").
				Description("One per line").
				Value(m.input).
				Validate(func(s string) error {
					if len(splitNames(s)) == 0 {
						return fmt.Errorf("enter at least one name")
					}

					return nil
				}),
		),
	)
}

func splitNames(s string) []string {
	var names []string

	for line := range strings.Lines(s) {
		if line = strings.TrimRight(line, "\r\n"); strings.TrimSpace(line) != "" {
			names = append(names, line)
		}
	}

	return names
}

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Render(s)
}
