package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	switch m.phase {
	case PhaseInitializing:
		return m.centered(m.styles.Dim.Render("Running start hooks ..."))
	case PhaseTerminated:
		return m.centered(m.styles.Dim.Render("Running exit hooks ..."))
	}

	innerWidth := max(m.width-2*m.padding, 10)
	innerHeight := max(m.height-2*m.padding, 3)

	chatWidth := 0
	if m.connector != nil {
		chatWidth = innerWidth / 3
	}
	mainWidth := innerWidth - chatWidth

	main := lipgloss.Place(
		mainWidth, innerHeight,
		lipgloss.Center, lipgloss.Center,
		m.renderMain(mainWidth),
	)

	row := main
	if chatWidth > 0 {
		row = lipgloss.JoinHorizontal(lipgloss.Top, main, m.renderChat(chatWidth, innerHeight))
	}

	return lipgloss.NewStyle().Padding(m.padding).Render(row)
}

// renderMain builds the centered column: song line, countdown, status
// text and progress bar.
func (m Model) renderMain(width int) string {
	var sections []string

	if m.songPoller != nil && m.songText != "" {
		sections = append(sections, m.styles.Song.Render(truncate(m.songText, width)))
	}

	timerVisible := m.countdown != nil && m.phase != PhaseFinishing
	if timerVisible {
		sections = append(sections, m.styles.Timer.Render(m.countdown.Format()))
	}

	for _, line := range strings.Split(m.text, "\n") {
		sections = append(sections, m.styles.Text.Render(line))
	}

	if timerVisible && m.cfg.ProgressBar {
		bar := m.progress
		bar.Width = max(width-4, 10)
		sections = append(sections, bar.ViewAs(m.countdown.Percent()))
	}

	centered := make([]string, len(sections))
	for i, section := range sections {
		centered[i] = lipgloss.PlaceHorizontal(width, lipgloss.Center, section)
	}

	return strings.Join(centered, "\n\n")
}

// renderChat builds the bordered chat pane with the newest messages at
// the bottom.
func (m Model) renderChat(width, height int) string {
	contentWidth := max(width-4, 8)
	contentHeight := max(height-3, 1)

	title := lipgloss.PlaceHorizontal(contentWidth, lipgloss.Center,
		m.styles.ChatTitle.Render(" "+m.connector.Channel()+" "))

	var lines []string
	if m.connErr != nil {
		lines = strings.Split(
			lipgloss.NewStyle().Width(contentWidth).Render(m.styles.Error.Render("chat unavailable")), "\n")
	} else {
		for _, entry := range m.buffer.Entries() {
			sender := lipgloss.NewStyle().Foreground(entry.color).Render(entry.message.Sender)
			wrapped := lipgloss.NewStyle().Width(contentWidth).Render(sender + ": " + entry.message.Text)
			lines = append(lines, strings.Split(wrapped, "\n")...)
		}
	}

	if len(lines) > contentHeight {
		lines = lines[len(lines)-contentHeight:]
	}

	body := strings.Join(lines, "\n")
	content := lipgloss.JoinVertical(lipgloss.Left, title,
		lipgloss.PlaceVertical(contentHeight, lipgloss.Bottom, body))

	return m.styles.ChatBorder.
		Width(width - 2).
		Height(height - 2).
		Render(content)
}

func (m Model) centered(s string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, s)
}

func truncate(s string, width int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	runes := []rune(s)
	if width > 1 && len(runes) > width {
		return string(runes[:width-1]) + "…"
	}
	return s
}
