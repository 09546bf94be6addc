package tui

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/geniuskouta/nakano-yt-2000/internal/ui"
	"github.com/samber/lo"
)

// Init starts the queued decks and reports keys that more than one deck claims.
func (b *statefulBubble) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, b.spinnerC.Tick}

	for _, queued := range b.queue {
		if d, ok := b.deck(queued.slot); ok {
			cmds = append(cmds, b.launch(d, queued.videoID))
		}
	}
	b.queue = nil

	overlaps := b.engine.Slots().Overlaps()
	if len(overlaps) > 0 {
		labels := lo.Keys(overlaps)
		sort.Strings(labels)
		cmds = append(cmds, ui.Notify(ui.Warning, fmt.Sprintf("shared keys %q react on the first deck only", labels)))
	}

	return tea.Batch(cmds...)
}
