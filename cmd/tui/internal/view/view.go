package view

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const matchTimeout = 30 * time.Second

// View is the interface that all TUI screens implement.
type View interface {
	tea.Model
	Title() string
	ShortHelp() string
}

// CommonModel is embedded by all views.
type CommonModel struct {
	Width  int
	Height int
}

type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}

func matchCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), matchTimeout)
}
