package tui

import (
	"time"

	"github.com/brb-sh/brb/pkg/hooks"
	"github.com/brb-sh/brb/pkg/twitch"
)

// tickMsg fires once per second while the countdown is live
type tickMsg time.Time

// chatEventMsg wraps one event from the chat connector
type chatEventMsg twitch.Event

// songMsg carries the result of one now-playing poll
type songMsg struct {
	text string
	err  error
}

// hooksDoneMsg signals that every command of a hook phase has finished
type hooksDoneMsg struct {
	phase  hooks.Phase
	failed int
}
