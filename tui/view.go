package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/geniuskouta/nakano-yt-2000/color"
	"github.com/geniuskouta/nakano-yt-2000/icon"
	"github.com/geniuskouta/nakano-yt-2000/player"
	"github.com/geniuskouta/nakano-yt-2000/sampler"
	"github.com/geniuskouta/nakano-yt-2000/style"
	"github.com/geniuskouta/nakano-yt-2000/util"
	"github.com/muesli/reflow/wrap"
)

const minDeckWidth = 18

// Screen geometry of the decks view, used to find the pad under the mouse.
const (
	// left padding of the whole view
	decksLeft = 2
	// border and padding between a deck frame and its text
	deckInset = 2
	// view padding, banner, blank line, top border, deck title, video and blank line
	padsTop = 7
)

var paddingStyle = lipgloss.NewStyle().Padding(1, 2)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case decksState:
		output = b.viewDecks()
	case promptState:
		output = b.viewPrompt()
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) deckWidth() int {
	if len(b.decks) == 0 {
		return minDeckWidth
	}
	// border and padding of every column
	return max(b.width/len(b.decks)-4, minDeckWidth)
}

func (b *statefulBubble) viewDecks() string {
	columns := b.deckColumns()

	return b.renderLines(true, []string{
		style.Title("nakano"),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, columns...),
		"",
		b.viewSlider(),
	})
}

// deckColumns renders every deck inside its frame.
func (b *statefulBubble) deckColumns() []string {
	touched, _, _ := b.engine.Touched()
	width := b.deckWidth()

	columns := make([]string, len(b.decks))
	for i, d := range b.decks {
		// text width inside the horizontal padding of the frame
		columns[i] = style.Deck(width, d.slot == touched).Render(b.viewDeck(d, width-2))
	}
	return columns
}

// padAt finds the pad drawn at the screen cell x, y.
func (b *statefulBubble) padAt(x, y int) (padRef, bool) {
	left := decksLeft
	for i, column := range b.deckColumns() {
		right := left + lipgloss.Width(column)
		if x < left || x >= right {
			left = right
			continue
		}

		d := b.decks[i]
		if d.err != nil {
			return padRef{}, false
		}
		_, cells := b.layoutPads(d, b.deckWidth()-2)
		for _, cell := range cells {
			if y == padsTop+cell.row && x >= left+deckInset+cell.from && x < left+deckInset+cell.to {
				return padRef{slot: d.slot, label: cell.key}, true
			}
		}
		return padRef{}, false
	}
	return padRef{}, false
}

func (b *statefulBubble) viewDeck(d *deck, width int) string {
	title := style.Tag(style.Base, style.DeckColor(d.index))(string(d.slot))

	video := "empty"
	if d.videoID != "" {
		video = d.videoID
	}

	lines := []string{
		title + " " + b.deckStatus(d),
		style.Faint(video),
		"",
	}

	if d.err != nil {
		lines = append(lines, style.Fg(style.ErrorColor)(wrap.String(d.err.Error(), width)))
		return strings.Join(lines, "\n")
	}

	return strings.Join(append(lines, b.viewPads(d, width)...), "\n")
}

func (b *statefulBubble) deckStatus(d *deck) string {
	switch {
	case d.err != nil:
		return icon.Get(icon.Fail) + " failed"
	case d.launching:
		return b.spinnerC.View() + " starting"
	case d.player == nil:
		return style.Faint("ctrl+o to load")
	}

	switch b.engine.Status(d.slot) {
	case sampler.Pending:
		return b.spinnerC.View() + " loading"
	case sampler.Exhausted:
		return icon.Get(icon.Warn) + " stalled"
	case sampler.Ready:
		if d.state == player.Paused {
			return icon.Get(icon.Paused) + " paused"
		}
		return icon.Get(icon.Playing) + " ready"
	default:
		return ""
	}
}

// padCell is where a pad sits inside its deck: a row and a half-open column range.
type padCell struct {
	key      string
	row      int
	from, to int
}

func (b *statefulBubble) viewPads(d *deck, width int) []string {
	rows, _ := b.layoutPads(d, width)
	return rows
}

// layoutPads lays the pads of d out in rows no wider than width.
func (b *statefulBubble) layoutPads(d *deck, width int) ([]string, []padCell) {
	touchedSlot, touchedKey, _ := b.engine.Touched()

	var (
		rows  []string
		row   []string
		cells []padCell
		used  int
	)

	for _, point := range b.engine.Pads(d.slot) {
		text := fmt.Sprintf("%s %s", point.Key, util.Timestamp(point.Time))

		var pad string
		switch {
		case b.held[padRef{slot: d.slot, label: point.Key}] != 0:
			pad = style.ActivePad(text)
		case touchedSlot == d.slot && touchedKey == point.Key:
			pad = style.TouchedPad(text)
		default:
			pad = style.Pad(text)
		}

		w := lipgloss.Width(pad)
		if used+w > width && len(row) > 0 {
			rows = append(rows, strings.Join(row, " "))
			row, used = nil, 0
		}
		cells = append(cells, padCell{key: point.Key, row: len(rows), from: used, to: used + w})
		row = append(row, pad)
		used += w + 1
	}

	if len(row) > 0 {
		rows = append(rows, strings.Join(row, " "))
	}
	return rows, cells
}

func (b *statefulBubble) viewSlider() string {
	slider := b.engine.Slider()
	if !slider.Bound() {
		return style.Faint("press a pad to bind the point slider")
	}

	slot, label, _ := b.engine.Touched()
	caption := fmt.Sprintf(
		"%s on %s  %s / %s",
		style.Fg(color.Orange)(label),
		style.Bold(string(slot)),
		util.Timestamp(slider.Value()),
		util.Timestamp(slider.Max()),
	)

	return b.progressC.ViewAs(slider.Meter()) + "  " + caption
}

func (b *statefulBubble) viewPrompt() string {
	targets := make([]string, len(b.decks))
	for i, d := range b.decks {
		if i == b.promptSlot {
			targets[i] = style.Tag(style.Base, style.DeckColor(i))(string(d.slot))
		} else {
			targets[i] = style.Faint(string(d.slot))
		}
	}

	return b.renderLines(true, []string{
		style.Title("Load video"),
		"",
		"Deck: " + strings.Join(targets, " "),
		"",
		b.inputC.View(),
	})
}

func (b *statefulBubble) viewError() string {
	errorStyle := lipgloss.NewStyle().Foreground(color.HiRed).Bold(true)
	errorMsg := wrap.String(errorStyle.Render(b.lastError.Error()), b.width)
	return b.renderLines(
		true,
		[]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " An error occurred:",
			"",
			errorMsg,
		},
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	l := strings.Join(lines, "\n")
	if addHelp {
		if h := lipgloss.Height(l); b.height > h+1 {
			l += strings.Repeat("\n", b.height-h-1)
		}
		l += "\n" + b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
