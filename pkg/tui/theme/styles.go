package theme

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Named accent colors selectable from config or the --color flag
var namedColors = map[string]lipgloss.Color{
	"black":   lipgloss.Color("0"),
	"red":     lipgloss.Color("1"),
	"green":   lipgloss.Color("2"),
	"yellow":  lipgloss.Color("3"),
	"blue":    lipgloss.Color("4"),
	"magenta": lipgloss.Color("5"),
	"cyan":    lipgloss.Color("6"),
	"white":   lipgloss.Color("7"),
}

// SenderPalette is the fixed palette chat sender names are hashed into
// when Twitch supplies no color. Order matters: the hash indexes it.
var SenderPalette = []lipgloss.Color{
	lipgloss.Color("#d95f5f"), // red
	lipgloss.Color("#eb8755"), // orange
	lipgloss.Color("#f5b761"), // yellow
	lipgloss.Color("#93b56b"), // green
	lipgloss.Color("#61afaf"), // cyan
	lipgloss.Color("#6b93b5"), // blue
	lipgloss.Color("#976bb5"), // purple
	lipgloss.Color("#d33682"), // magenta
}

// Styles defines the lipgloss styles for the overlay
type Styles struct {
	Timer      lipgloss.Style
	Text       lipgloss.Style
	Song       lipgloss.Style
	ChatBorder lipgloss.Style
	ChatTitle  lipgloss.Style
	ChatText   lipgloss.Style
	Dim        lipgloss.Style
	Error      lipgloss.Style
}

// NewStyles builds the style set around the configured accent color.
func NewStyles(accent lipgloss.Color) *Styles {
	return &Styles{
		Timer:      lipgloss.NewStyle().Foreground(accent).Bold(true),
		Text:       lipgloss.NewStyle().Bold(true),
		Song:       lipgloss.NewStyle().Faint(true),
		ChatBorder: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(0, 1),
		ChatTitle:  lipgloss.NewStyle().Foreground(accent).Bold(true).Italic(true),
		ChatText:   lipgloss.NewStyle(),
		Dim:        lipgloss.NewStyle().Faint(true),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("#d95f5f")),
	}
}

// ParseColor turns a color name ("red") or an "R,G,B" triple into a
// lipgloss color.
func ParseColor(value string) (lipgloss.Color, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return namedColors["white"], nil
	}

	if c, ok := namedColors[strings.ToLower(value)]; ok {
		return c, nil
	}

	if !strings.Contains(value, ",") {
		return "", fmt.Errorf("unknown color name %q", value)
	}

	parts := strings.Split(value, ",")
	if len(parts) != 3 {
		return "", fmt.Errorf("invalid RGB color %q: want exactly three values 'R,G,B'", value)
	}

	rgb := make([]uint8, 3)
	for i, part := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
		if err != nil {
			return "", fmt.Errorf("invalid RGB component %q: must be a number between 0 and 255", part)
		}
		rgb[i] = uint8(n)
	}

	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", rgb[0], rgb[1], rgb[2])), nil
}
