package tui

import (
	"hash/fnv"

	"github.com/brb-sh/brb/pkg/tui/theme"
	"github.com/brb-sh/brb/pkg/twitch"
	"github.com/charmbracelet/lipgloss"
)

// chatEntry is one buffered chat line with its resolved display color.
type chatEntry struct {
	message twitch.Message
	color   lipgloss.Color
}

// messageBuffer keeps the most recent chat messages in arrival order.
// When full, appending evicts the oldest entry.
type messageBuffer struct {
	limit   int
	entries []chatEntry
}

func newMessageBuffer(limit int) *messageBuffer {
	if limit <= 0 {
		limit = 100
	}
	return &messageBuffer{limit: limit}
}

// Append adds a message, resolving its display color. The provider color
// wins when present; otherwise the sender name is hashed into the fixed
// palette so the same sender keeps the same color for the whole run.
func (b *messageBuffer) Append(message twitch.Message) {
	color := lipgloss.Color(message.Color)
	if message.Color == "" {
		color = senderColor(message.Sender)
	}

	b.entries = append(b.entries, chatEntry{message: message, color: color})
	if len(b.entries) > b.limit {
		b.entries = b.entries[len(b.entries)-b.limit:]
	}
}

// Entries returns the buffered messages, oldest first.
func (b *messageBuffer) Entries() []chatEntry {
	out := make([]chatEntry, len(b.entries))
	copy(out, b.entries)
	return out
}

// Len returns the number of buffered messages.
func (b *messageBuffer) Len() int {
	return len(b.entries)
}

func senderColor(sender string) lipgloss.Color {
	h := fnv.New32a()
	h.Write([]byte(sender))
	return theme.SenderPalette[h.Sum32()%uint32(len(theme.SenderPalette))]
}
