package tui

import (
	"time"

	"github.com/brb-sh/brb/pkg/hooks"
	"github.com/brb-sh/brb/pkg/logger"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m.terminate()
		}
		// No other interactive commands
		return m, nil

	case tea.InterruptMsg:
		return m.terminate()

	case hooksDoneMsg:
		return m.handleHooksDone(msg)

	case tickMsg:
		return m.handleTick()

	case chatEventMsg:
		return m.handleChatEvent(msg)

	case songMsg:
		return m.handleSong(msg)
	}

	return m, nil
}

func (m Model) handleHooksDone(msg hooksDoneMsg) (tea.Model, tea.Cmd) {
	if msg.failed > 0 {
		logger.Warn("%d %s hook(s) failed", msg.failed, msg.phase)
	}

	switch msg.phase {
	case hooks.PhaseStart:
		if m.phase != PhaseInitializing {
			// Quit was requested while the start hooks were running;
			// the exit path is already in flight.
			return m, nil
		}
		m.phase = PhaseRunning

		var cmds []tea.Cmd
		if m.connector != nil {
			m.connector.Start(m.ctx, m.events)
			cmds = append(cmds, waitForChatEvent(m.events))
		}
		if m.countdown != nil && !m.countdown.Done() {
			cmds = append(cmds, tickCmd())
		}
		if m.songPoller != nil {
			cmds = append(cmds, m.pollSongCmd())
		}
		return m, tea.Batch(cmds...)

	case hooks.PhaseExit:
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.phase != PhaseRunning || m.countdown == nil || m.countdown.Done() {
		// Ticker idles once the countdown is over or the run is ending
		return m, nil
	}

	m.countdown.Tick(time.Second)

	if m.countdown.Done() {
		if m.cfg.HideTimer {
			// One-way transition: the timer stays hidden from here on
			m.phase = PhaseFinishing
		}
		return m, nil
	}

	return m, tickCmd()
}

func (m Model) handleChatEvent(msg chatEventMsg) (tea.Model, tea.Cmd) {
	if !m.phase.Active() {
		return m, nil
	}

	if msg.Err != nil {
		// Terminal for the chat pane only; ticks and keys go on
		logger.Error("chat connection: %v", msg.Err)
		m.connErr = msg.Err
		return m, nil
	}

	m.buffer.Append(*msg.Message)
	return m, waitForChatEvent(m.events)
}

func (m Model) handleSong(msg songMsg) (tea.Model, tea.Cmd) {
	if !m.phase.Active() {
		return m, nil
	}

	if msg.err != nil {
		logger.Warn("song poll: %v", msg.err)
		m.songText = "Song unavailable"
	} else {
		m.songText = msg.text
	}

	return m, m.pollSongCmd()
}

// terminate moves to PhaseTerminated, cancels the event sources and runs
// the exit hooks. tea.Quit follows once the exit phase reports done.
func (m Model) terminate() (tea.Model, tea.Cmd) {
	if m.phase == PhaseTerminated {
		return m, nil
	}

	m.phase = PhaseTerminated
	m.cancel()

	return m, m.runHooksCmd(hooks.PhaseExit, m.cfg.Hooks.Exit)
}
