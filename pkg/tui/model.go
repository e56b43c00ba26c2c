package tui

import (
	"context"
	"time"

	"github.com/brb-sh/brb/pkg/config"
	"github.com/brb-sh/brb/pkg/countdown"
	"github.com/brb-sh/brb/pkg/hooks"
	"github.com/brb-sh/brb/pkg/song"
	"github.com/brb-sh/brb/pkg/tui/theme"
	"github.com/brb-sh/brb/pkg/twitch"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// keyMap defines the keybindings for the overlay. Quit is the only
// interactive command; every other key is ignored.
type keyMap struct {
	Quit key.Binding
}

var defaultKeyMap = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Model is the single owner of all presentation state. Every input
// source (ticker, chat, keys, interrupt) funnels into Update, so a
// frame is only ever rendered from fully applied transitions.
type Model struct {
	cfg    *config.Config
	styles *theme.Styles
	accent lipgloss.Color
	keys   keyMap

	phase     Phase
	countdown *countdown.Countdown // nil when no countdown was configured
	text      string
	padding   int

	buffer    *messageBuffer
	connector *twitch.Connector
	events    chan twitch.Event
	connErr   error

	songPoller *song.Poller
	songText   string

	hooksRunner *hooks.Runner

	progress progress.Model

	// ctx lives for the run and is cancelled on termination so the chat
	// connector and song poller never block shutdown.
	ctx    context.Context
	cancel context.CancelFunc

	width  int
	height int
}

// NewModel builds the initial model from the merged configuration.
// total is the configured countdown; zero means no countdown.
func NewModel(cfg *config.Config, accent lipgloss.Color, total time.Duration) Model {
	ctx, cancel := context.WithCancel(context.Background())

	m := Model{
		cfg:         cfg,
		styles:      theme.NewStyles(accent),
		accent:      accent,
		keys:        defaultKeyMap,
		phase:       PhaseInitializing,
		text:        cfg.Text,
		padding:     cfg.Padding,
		buffer:      newMessageBuffer(cfg.ChatLimit),
		hooksRunner: hooks.NewRunner(time.Duration(cfg.Hooks.TimeoutSeconds) * time.Second),
		progress: progress.New(
			progress.WithSolidFill(string(accent)),
			progress.WithoutPercentage(),
		),
		ctx:    ctx,
		cancel: cancel,
	}

	if total > 0 {
		m.countdown = countdown.New(total)
	}

	if cfg.Chat && cfg.Channel != "" {
		m.connector = twitch.New(cfg.Channel)
		m.events = make(chan twitch.Event, 64)
	}

	if cfg.SongDisplay {
		m.songPoller = song.NewPoller(cfg.SongCommand, 2*time.Second)
		m.songText = "Getting current song ..."
	}

	return m
}

// Init starts the run: the start hooks complete before anything else
// happens, then hooksDoneMsg moves the overlay into PhaseRunning.
func (m Model) Init() tea.Cmd {
	return m.runHooksCmd(hooks.PhaseStart, m.cfg.Hooks.Start)
}

// Phase returns the current lifecycle phase.
func (m Model) Phase() Phase {
	return m.phase
}

func (m Model) runHooksCmd(phase hooks.Phase, commands []string) tea.Cmd {
	return func() tea.Msg {
		// Hooks deliberately run on a background context: exit hooks
		// must still complete after m.ctx is cancelled. The runner's
		// per-command timeout keeps the phase bounded.
		failed := m.hooksRunner.RunPhase(context.Background(), phase, commands)
		return hooksDoneMsg{phase: phase, failed: failed}
	}
}

// tickCmd schedules the next countdown tick.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// waitForChatEvent blocks until the connector produces the next event.
func waitForChatEvent(events <-chan twitch.Event) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return nil
		}
		return chatEventMsg(event)
	}
}

// pollSongCmd re-polls the external player on the tick cadence.
func (m Model) pollSongCmd() tea.Cmd {
	poller, ctx := m.songPoller, m.ctx
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		text, err := poller.Poll(ctx)
		return songMsg{text: text, err: err}
	})
}
