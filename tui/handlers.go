package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/geniuskouta/nakano-yt-2000/constant"
	"github.com/geniuskouta/nakano-yt-2000/internal/ui"
	"github.com/geniuskouta/nakano-yt-2000/log"
	"github.com/geniuskouta/nakano-yt-2000/player"
	"github.com/geniuskouta/nakano-yt-2000/sampler"
	"github.com/geniuskouta/nakano-yt-2000/session"
	"github.com/geniuskouta/nakano-yt-2000/youtube"
)

var errPlayerExited = errors.New("player exited")

// assign queues the videos to open at startup: the previous session first,
// then the given URLs deck by deck.
func (b *statefulBubble) assign() error {
	videos := make(map[sampler.SlotID]string)

	if b.options.Continue {
		recalled, err := session.Recall()
		if err != nil {
			return fmt.Errorf("recall session: %w", err)
		}
		for slot, id := range recalled {
			videos[sampler.SlotID(slot)] = id
		}
	}

	next := 0
	for _, raw := range b.options.URLs {
		id, ok := youtube.ParseVideoID(raw).Get()
		if !ok {
			log.Warnf("skipping %q: not a youtube video", raw)
			continue
		}
		if next >= len(b.decks) {
			log.Warnf("skipping %q: every deck is taken", raw)
			continue
		}
		videos[b.decks[next].slot] = id
		next++
	}

	for _, d := range b.decks {
		if id, ok := videos[d.slot]; ok {
			b.queue = append(b.queue, launchedMsg{slot: d.slot, videoID: id})
		}
	}
	return nil
}

// launch starts a player for d in the background.
func (b *statefulBubble) launch(d *deck, videoID string) tea.Cmd {
	d.launching = true
	d.videoID = videoID
	d.err = nil

	start, slot := b.start, d.slot
	return func() tea.Msg {
		p, err := start(string(slot), videoID)
		return launchedMsg{slot: slot, videoID: videoID, player: p, err: err}
	}
}

// load puts videoID on d, reusing its player when it has one.
func (b *statefulBubble) load(d *deck, videoID string) tea.Cmd {
	if d.player == nil {
		if d.launching {
			return ui.Notify(ui.Info, fmt.Sprintf("deck %s is still starting", d.slot))
		}
		return b.launch(d, videoID)
	}

	gen, outcome, err := b.engine.Swap(d.slot, videoID)
	if err != nil {
		log.WithField("slot", d.slot).Error(err)
		return ui.Notify(ui.Failure, err.Error())
	}

	d.videoID = videoID
	d.state = player.Playing
	b.remember(d)
	return b.follow(d.slot, gen, outcome)
}

func (b *statefulBubble) onLaunched(msg launchedMsg) tea.Cmd {
	d, ok := b.deck(msg.slot)
	if !ok {
		return nil
	}
	d.launching = false

	if msg.err != nil {
		d.err = msg.err
		log.WithField("slot", msg.slot).Errorf("launch: %v", msg.err)
		return ui.Notify(ui.Failure, fmt.Sprintf("deck %s failed to start", msg.slot))
	}

	if d.player != nil && d.player != msg.player {
		_ = d.player.Close()
	}
	d.err = nil
	d.player = msg.player
	d.videoID = msg.videoID
	d.state = player.Playing

	gen, outcome, err := b.engine.Ready(msg.slot, msg.player)
	if err != nil {
		d.err = err
		return ui.Notify(ui.Failure, err.Error())
	}

	b.remember(d)
	return tea.Batch(b.follow(msg.slot, gen, outcome), b.waitExit(msg.slot, msg.player))
}

// follow schedules the next readiness check while a deck is still loading.
func (b *statefulBubble) follow(slot sampler.SlotID, gen sampler.Generation, outcome sampler.Outcome) tea.Cmd {
	switch outcome {
	case sampler.Pending:
		return tea.Tick(b.pollInterval, func(time.Time) tea.Msg {
			return pollMsg{slot: slot, gen: gen}
		})
	case sampler.Exhausted:
		return ui.Notify(ui.Warning, fmt.Sprintf("deck %s never reported a duration", slot))
	default:
		return nil
	}
}

func (b *statefulBubble) onPoll(msg pollMsg) tea.Cmd {
	return b.follow(msg.slot, msg.gen, b.engine.Poll(msg.slot, msg.gen))
}

func (b *statefulBubble) waitExit(slot sampler.SlotID, p deckPlayer) tea.Cmd {
	return func() tea.Msg {
		<-p.Wait()
		return exitedMsg{slot: slot, player: p}
	}
}

func (b *statefulBubble) onExited(msg exitedMsg) tea.Cmd {
	d, ok := b.deck(msg.slot)
	if !ok || d.player != msg.player {
		return nil
	}
	d.player = nil
	d.err = errPlayerExited
	b.engine.Drop(msg.slot)
	log.WithField("slot", msg.slot).Warn("player window closed")
	return ui.Notify(ui.Warning, fmt.Sprintf("deck %s closed, ctrl+o to reopen", msg.slot))
}

func (b *statefulBubble) remember(d *deck) {
	if err := session.Remember(string(d.slot), d.videoID); err != nil {
		log.WithField("slot", d.slot).Warnf("remember: %v", err)
	}
}

// padLabel extracts the label of a plain, single character key press.
func padLabel(msg tea.KeyMsg) (string, bool) {
	switch {
	case msg.Type == tea.KeySpace:
		return constant.ToggleKey, true
	case msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && !msg.Alt:
		return string(msg.Runes), true
	default:
		return "", false
	}
}

// press hands a key to the engine.
func (b *statefulBubble) press(msg tea.KeyMsg) tea.Cmd {
	label, ok := padLabel(msg)
	if !ok {
		return nil
	}
	return b.react(b.engine.KeyDown(label))
}

// click fires the pad under a left click on its own deck, even when another deck
// claims the same key.
func (b *statefulBubble) click(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	pad, ok := b.padAt(msg.X, msg.Y)
	if !ok {
		return nil
	}
	return b.react(b.engine.Trigger(pad.slot, pad.label))
}

// react reflects a dispatch on the decks and flashes the pad it fired.
func (b *statefulBubble) react(d sampler.Dispatch) tea.Cmd {
	switch d.Action {
	case sampler.Seeked:
		if dk, found := b.deck(d.Slot); found {
			dk.state = d.State
		}
		return b.flashPad(padRef{slot: d.Slot, label: d.Key})
	case sampler.Toggled:
		if dk, found := b.deck(d.Slot); found {
			dk.state = d.State
		}
	case sampler.Ignored:
		if d.Err != nil {
			return ui.Notify(ui.Warning, fmt.Sprintf("deck %s: %v", d.Slot, d.Err))
		}
	}
	return nil
}

// flashPad lights a pad and schedules its release.
func (b *statefulBubble) flashPad(pad padRef) tea.Cmd {
	b.flashSeq++
	seq := b.flashSeq
	b.held[pad] = seq

	return tea.Tick(b.flash, func(time.Time) tea.Msg {
		return keyUpMsg{pad: pad, seq: seq}
	})
}

func (b *statefulBubble) onKeyUp(msg keyUpMsg) {
	if b.held[msg.pad] == msg.seq {
		delete(b.held, msg.pad)
	}
	b.engine.KeyUp(msg.pad.label)
}

func (b *statefulBubble) nudge(delta float64) {
	b.engine.Slider().Nudge(delta)
}

// commit auditions the slider position on the bound deck.
func (b *statefulBubble) commit() tea.Cmd {
	slider := b.engine.Slider()
	ok, err := slider.Commit(slider.Value())
	if err != nil {
		return ui.Notify(ui.Warning, err.Error())
	}
	if !ok {
		return nil
	}

	slot, label, _ := b.engine.Touched()
	if d, found := b.deck(slot); found {
		d.state = player.Playing
	}
	return b.flashPad(padRef{slot: slot, label: label})
}

// shareLink is the browser link of the point the slider is bound to.
func (b *statefulBubble) shareLink() (string, bool) {
	slot, _, ok := b.engine.Touched()
	if !ok || !b.engine.Slider().Bound() {
		return "", false
	}
	d, found := b.deck(slot)
	if !found || d.videoID == "" {
		return "", false
	}
	return youtube.ShareURL(d.videoID, b.engine.Slider().Value()), true
}

// share opens the bound point in the browser.
func (b *statefulBubble) share() tea.Cmd {
	link, ok := b.shareLink()
	if !ok {
		return nil
	}
	if err := b.browse(link); err != nil {
		log.Warnf("open %s: %v", link, err)
		return ui.Notify(ui.Warning, "could not open the browser")
	}
	return ui.Notify(ui.Info, link)
}

func (b *statefulBubble) openPrompt() tea.Cmd {
	b.promptSlot = b.touchedIndex()
	b.inputC.SetValue("")
	b.setState(promptState)
	return tea.Batch(b.inputC.Focus(), textinput.Blink)
}

func (b *statefulBubble) closePrompt() {
	b.inputC.Blur()
	b.setState(decksState)
}

// submitPrompt loads the typed URL into the selected deck. Anything that is not a
// youtube video is dropped.
func (b *statefulBubble) submitPrompt() tea.Cmd {
	raw := b.inputC.Value()
	b.closePrompt()

	if len(b.decks) == 0 {
		return nil
	}

	id, ok := youtube.ParseVideoID(raw).Get()
	if !ok {
		log.Infof("ignoring %q: not a youtube video", raw)
		return nil
	}

	return b.load(b.decks[b.promptSlot], id)
}
