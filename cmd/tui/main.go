package main

import (
	"context"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/roommapper/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/roommapper/internal/config"
	"github.com/MrJamesThe3rd/roommapper/internal/fuzzy"
	"github.com/MrJamesThe3rd/roommapper/internal/matching"
	"github.com/MrJamesThe3rd/roommapper/internal/normalize"
	"github.com/MrJamesThe3rd/roommapper/internal/reference"
)

type model struct {
	matchingService *matching.Service
	normalizer      *normalize.Normalizer
	referenceErr    error

	currentView View

	catalogView   view.MatchModel
	propertyView  view.MatchModel
	normalizeView view.NormalizeModel
}

type View int

const (
	ViewMenu      View = 0
	ViewCatalog   View = 1
	ViewProperty  View = 2
	ViewNormalize View = 3
)

// emptyReference stands in when the reference table failed to load, so
// catalog matching and normalization stay usable.
type emptyReference struct{}

func (emptyReference) RoomsForProperty(context.Context, string) ([]matching.PropertyRoom, error) {
	return nil, matching.ErrNotFound
}

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	scorer, err := fuzzy.ScorerByName(cfg.Match.Scorer)
	if err != nil {
		slog.Error("failed to resolve scorer", "error", err)
		os.Exit(1)
	}

	n, err := normalize.Default()
	if err != nil {
		slog.Error("failed to build normalizer", "error", err)
		os.Exit(1)
	}

	src := reference.Source{Driver: cfg.Reference.Driver, Path: cfg.Reference.Path, Table: cfg.Reference.Table}
	if src.Driver == reference.DriverPostgres {
		src.DSN = cfg.ConnectionString()
	}

	var repo matching.ReferenceRepository = emptyReference{}

	table, refErr := reference.Load(context.Background(), src, n)
	if refErr == nil {
		repo = table
	}

	svc := matching.NewService(repo, n, matching.Config{
		Threshold:       cfg.Match.Threshold,
		Scorer:          scorer,
		BulkConcurrency: cfg.Match.BulkConcurrency,
	})

	return model{
		matchingService: svc,
		normalizer:      n,
		referenceErr:    refErr,
		currentView:     ViewMenu,
		catalogView:     view.NewMatchModel(svc, view.MatchCatalog),
		propertyView:    view.NewMatchModel(svc, view.MatchProperty),
		normalizeView:   view.NewNormalizeModel(n),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewCatalog
				m.catalogView = view.NewMatchModel(m.matchingService, view.MatchCatalog)

				return m, m.catalogView.Init()
			case "2":
				if m.referenceErr != nil {
					return m, nil
				}

				m.currentView = ViewProperty
				m.propertyView = view.NewMatchModel(m.matchingService, view.MatchProperty)

				return m, m.propertyView.Init()
			case "3":
				m.currentView = ViewNormalize
				m.normalizeView = view.NewNormalizeModel(m.normalizer)

				return m, m.normalizeView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewCatalog:
		var newModel tea.Model
		newModel, cmd = m.catalogView.Update(msg)
		m.catalogView = newModel.(view.MatchModel)
	case ViewProperty:
		var newModel tea.Model
		newModel, cmd = m.propertyView.Update(msg)
		m.propertyView = newModel.(view.MatchModel)
	case ViewNormalize:
		var newModel tea.Model
		newModel, cmd = m.normalizeView.Update(msg)
		m.normalizeView = newModel.(view.NormalizeModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		property := "2. Match Against Reference Table\n"
		if m.referenceErr != nil {
			property = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).
				Render("2. Match Against Reference Table (unavailable: "+m.referenceErr.Error()+")") + "\n"
		}

		return lipgloss.NewStyle().Padding(2).Render(
			"Roommapper TUI\n\n" +
				"1. Match Catalog File\n" +
				property +
				"3. Normalize Room Names\n\n" +
				"q. Quit",
		)
	case ViewCatalog:
		return m.catalogView.View()
	case ViewProperty:
		return m.propertyView.View()
	case ViewNormalize:
		return m.normalizeView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
