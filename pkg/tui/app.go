package tui

import (
	"fmt"
	"time"

	"github.com/brb-sh/brb/pkg/config"
	"github.com/brb-sh/brb/pkg/logger"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// StartApp runs the overlay until the quit key or an interrupt. total is
// the configured countdown duration; zero means no countdown.
func StartApp(cfg *config.Config, accent lipgloss.Color, total time.Duration) error {
	model := NewModel(cfg, accent, total)
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen())

	logger.Info("starting overlay: countdown=%s chat=%v channel=%q", total, cfg.Chat, cfg.Channel)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed running UI: %w", err)
	}

	return nil
}
