package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/geniuskouta/nakano-yt-2000/color"
	"github.com/geniuskouta/nakano-yt-2000/constant"
	"github.com/geniuskouta/nakano-yt-2000/sampler"
	"github.com/geniuskouta/nakano-yt-2000/style"
	"github.com/samber/lo"
)

// statefulKeymap defines the keyboard interactions available within each view.
// Any key not bound here is a pad key and goes straight to the engine.
type statefulKeymap struct {
	state state

	forceQuit,
	openPrompt, share, nextSlot, confirm, back,
	nudgeBack, nudgeForward, coarseBack, coarseForward, commit,
	toggle, pads key.Binding
}

// setState updates the active keymap configuration to match the specified view.
func (k *statefulKeymap) setState(newState state) {
	k.state = newState
}

func newStatefulKeymap(layout sampler.Layout) *statefulKeymap {
	labels := lo.Uniq(lo.FlatMap(layout, func(s sampler.Slot, _ int) []string {
		return s.Keys
	}))

	return &statefulKeymap{
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		openPrompt: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "load video"),
		),
		share: key.NewBinding(
			key.WithKeys("ctrl+w"),
			key.WithHelp("ctrl+w", "open point in browser"),
		),
		nextSlot: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next deck"),
		),
		confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "load"),
		),
		back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		nudgeBack: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←/→", "nudge point"),
		),
		nudgeForward: key.NewBinding(
			key.WithKeys("right"),
		),
		coarseBack: key.NewBinding(
			key.WithKeys("shift+left", "down"),
			key.WithHelp("shift+←/→", "coarse"),
		),
		coarseForward: key.NewBinding(
			key.WithKeys("shift+right", "up"),
		),
		commit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp(style.Fg(color.Orange)("enter"), style.Fg(color.Orange)("audition")),
		),
		toggle: key.NewBinding(
			key.WithKeys(constant.ToggleKey),
			key.WithHelp("space", "play/pause"),
		),
		pads: key.NewBinding(
			key.WithKeys(labels...),
			key.WithHelp("pads", "seek"),
		),
	}
}

func (k *statefulKeymap) help() ([]key.Binding, []key.Binding) {
	h := func(bindings ...key.Binding) []key.Binding {
		return bindings
	}

	to2 := func(a []key.Binding) ([]key.Binding, []key.Binding) {
		return a, a
	}

	switch k.state {
	case decksState:
		return h(k.pads, k.toggle, k.nudgeBack, k.commit, k.openPrompt, k.forceQuit),
			h(k.pads, k.toggle, k.nudgeBack, k.coarseBack, k.commit, k.openPrompt, k.share, k.forceQuit)
	case promptState:
		return to2(h(k.nextSlot, k.confirm, k.back))
	case errorState:
		return to2(h(k.back, k.forceQuit))
	default:
		return to2(h())
	}
}

func (k *statefulKeymap) ShortHelp() []key.Binding {
	short, _ := k.help()
	return short
}

func (k *statefulKeymap) FullHelp() [][]key.Binding {
	_, full := k.help()
	return [][]key.Binding{full}
}
