package view

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	httpmatching "github.com/MrJamesThe3rd/roommapper/internal/http/matching"
	"github.com/MrJamesThe3rd/roommapper/internal/matching"
)

type MatchMode int

const (
	MatchCatalog MatchMode = iota
	MatchProperty
)

type matchState int

const (
	matchStateFilePick matchState = iota
	matchStateMatching
	matchStateResult
)

type MatchModel struct {
	CommonModel
	svc  *matching.Service
	mode MatchMode

	state      matchState
	filePicker filepicker.Model
	spinner    spinner.Model
	table      table.Model

	summary string
	err     error
}

func NewMatchModel(svc *matching.Service, mode MatchMode) MatchModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.AllowedTypes = []string{".json"}
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.SetHeight(15)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	t := table.New(
		table.WithColumns(resultColumns()),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	st.Selected = st.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(st)

	return MatchModel{
		svc:        svc,
		mode:       mode,
		filePicker: fp,
		spinner:    s,
		table:      t,
	}
}

func (m MatchModel) Title() string {
	if m.mode == MatchProperty {
		return "Match Against Reference Table"
	}

	return "Match Catalog File"
}

func (m MatchModel) ShortHelp() string {
	if m.state == matchStateResult {
		return "Esc: pick another file | ↑/↓: scroll"
	}

	return "Esc: back | Enter: select"
}

func (m MatchModel) Init() tea.Cmd {
	return m.filePicker.Init()
}

func (m MatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			if m.state == matchStateResult {
				m.state = matchStateFilePick
				m.err = nil

				return m, m.filePicker.Init()
			}

			return m, Back
		}

	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.table.SetHeight(max(msg.Height-10, 5))

	case matchResultMsg:
		m.state = matchStateResult
		m.err = msg.err
		m.summary = msg.summary
		m.table.SetRows(msg.rows)
		m.table.GotoTop()

		return m, nil
	}

	var cmd tea.Cmd

	switch m.state {
	case matchStateFilePick:
		m.filePicker, cmd = m.filePicker.Update(msg)

		if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
			m.state = matchStateMatching
			m.summary = fmt.Sprintf("Matching %s...", path)

			return m, tea.Batch(m.spinner.Tick, m.matchCmd(path))
		}
	case matchStateMatching:
		m.spinner, cmd = m.spinner.Update(msg)
	case matchStateResult:
		m.table, cmd = m.table.Update(msg)
	}

	return m, cmd
}

func (m MatchModel) View() string {
	switch m.state {
	case matchStateFilePick:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("%s\n\nSelect a request file:\n\n%s", m.Title(), m.filePicker.View()),
		)
	case matchStateMatching:
		return lipgloss.NewStyle().Padding(2).Render(m.spinner.View() + " " + m.summary)
	case matchStateResult:
		return m.viewResult()
	}

	return ""
}

func (m MatchModel) viewResult() string {
	style := lipgloss.NewStyle().Padding(1)

	if m.err != nil {
		return style.Render(
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(fmt.Sprintf("Error: %v", m.err)) +
				"\n\n(Esc to go back)",
		)
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	return style.Render(lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Render(m.summary),
		tableView,
		m.ShortHelp(),
	))
}

type matchResultMsg struct {
	rows    []table.Row
	summary string
	err     error
}

func (m MatchModel) matchCmd(path string) tea.Cmd {
	svc, mode := m.svc, m.mode

	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return matchResultMsg{err: err}
		}
		defer f.Close()

		data, err := httpmatching.DecodeRoomData(f)
		if err != nil {
			return matchResultMsg{err: err}
		}

		ctx, cancel := matchCtx()
		defer cancel()

		if mode == MatchProperty {
			res, err := svc.MatchForProperty(ctx, data.Reference.PropertyID, data.Suppliers)
			if err != nil {
				return matchResultMsg{err: err}
			}

			return matchResultMsg{rows: PropertyRows(res), summary: PropertySummary(res)}
		}

		res, err := svc.MatchFullCatalog(ctx, data)
		if err != nil {
			return matchResultMsg{err: err}
		}

		return matchResultMsg{rows: CatalogRows(res), summary: CatalogSummary(res)}
	}
}
