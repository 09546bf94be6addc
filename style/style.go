package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/geniuskouta/nakano-yt-2000/color"
)

// New returns an empty lipgloss.Style used as a foundation for visual composition.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Colored initializes a new style with the specified foreground and background colors.
func Colored(fg, bg lipgloss.Color) lipgloss.Style {
	return New().Foreground(fg).Background(bg)
}

// Fg returns a rendering function that applies the foreground color to a string.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(c, "").Render(s) }
}

// Truncate returns a rendering function that constrains the output to a maximum width.
func Truncate(max int) func(string) string {
	return func(s string) string { return New().Width(max).MaxWidth(max).Render(s) }
}

var (
	Faint = func(s string) string { return New().Faint(true).Render(s) }
	Bold  = func(s string) string { return New().Bold(true).Render(s) }
)

// Title renders a padded banner.
var Title = func(s string) string {
	return Colored(color.New("230"), color.New("62")).Padding(0, 1).Render(s)
}

// ErrorTitle renders a banner using the error colors.
var ErrorTitle = func(s string) string {
	return Colored(color.New("230"), color.Red).Padding(0, 1).Render(s)
}

// Tag returns a rendering function that wraps a string in a colored, padded block.
func Tag(fg, bg lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(fg, bg).Padding(0, 1).Render(s) }
}

// DeckColor picks the title color of the i-th deck.
func DeckColor(i int) lipgloss.Color {
	return DeckColors[i%len(DeckColors)]
}

// Pad renders an idle sampler pad.
var Pad = func(s string) string {
	return New().Foreground(Text).Background(Surface).Padding(0, 1).Render(s)
}

// ActivePad renders a pad whose key is currently held.
var ActivePad = func(s string) string {
	return New().Foreground(Base).Background(AccentColor).Bold(true).Padding(0, 1).Render(s)
}

// TouchedPad renders the pad bound to the slider.
var TouchedPad = func(s string) string {
	return New().Foreground(Base).Background(Yellow).Padding(0, 1).Render(s)
}

// Deck returns the frame of a deck column, highlighted for the last touched deck.
func Deck(width int, touched bool) lipgloss.Style {
	border := BorderColor
	if touched {
		border = ActiveBorderColor
	}
	return New().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(width)
}
