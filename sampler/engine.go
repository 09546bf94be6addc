package sampler

import (
	"fmt"

	"github.com/geniuskouta/nakano-yt-2000/log"
	"github.com/geniuskouta/nakano-yt-2000/player"
)

// Engine wires the registry, poller, tracker and slider of one set of decks.
type Engine struct {
	layout   Layout
	registry *Registry
	poller   *Poller
	tracker  *Tracker
	slider   *Adjuster
	handles  map[SlotID]player.Handle
}

// Option configures an Engine.
type Option func(*Engine)

// WithMaxAttempts caps readiness polling per load; 0 polls forever.
func WithMaxAttempts(n int) Option {
	return func(e *Engine) {
		e.poller = NewPoller(n)
	}
}

// New returns an Engine for layout with no players attached yet.
func New(layout Layout, opts ...Option) *Engine {
	registry := NewRegistry()
	tracker := &Tracker{}

	e := &Engine{
		layout:   layout,
		registry: registry,
		poller:   NewPoller(0),
		tracker:  tracker,
		slider:   &Adjuster{registry: registry, tracker: tracker},
		handles:  make(map[SlotID]player.Handle),
	}

	for _, opt := range opts {
		opt(e)
	}

	for label, slots := range layout.Overlaps() {
		log.Warnf("key %q is bound to %v; only %s will react to it", label, slots, slots[0])
	}

	return e
}

// Ready is the player-ready callback of slot. It enters Pending and checks the
// duration right away; on Pending the caller schedules Poll with the returned generation.
func (e *Engine) Ready(slot SlotID, handle player.Handle) (Generation, Outcome, error) {
	if !e.layout.Has(slot) {
		return 0, Stale, fmt.Errorf("%w: %s", ErrUnknownSlot, slot)
	}

	e.handles[slot] = handle
	gen := e.poller.Begin(slot, handle)
	return gen, e.Poll(slot, gen), nil
}

// Swap loads videoID into the player already attached to slot and re-enters Pending.
// The previous seek points stay live until the new video reports its duration.
func (e *Engine) Swap(slot SlotID, videoID string) (Generation, Outcome, error) {
	handle, ok := e.handles[slot]
	if !ok {
		return 0, Stale, fmt.Errorf("%w: %s", ErrNoPlayer, slot)
	}

	if err := handle.LoadVideoByID(videoID); err != nil {
		return 0, Stale, fmt.Errorf("swap %s: %w", slot, err)
	}

	gen := e.poller.Begin(slot, handle)
	return gen, e.Poll(slot, gen), nil
}

// Poll handles one readiness tick. On Ready the seek points are built and published
// and the deck becomes the last touched player.
func (e *Engine) Poll(slot SlotID, gen Generation) Outcome {
	duration, outcome := e.poller.Check(slot, gen)
	logger := log.WithField("slot", slot)

	switch outcome {
	case Ready:
		keys, _ := e.layout.Keys(slot)
		handle := e.handles[slot]
		e.registry.Upsert(slot, handle, Build(keys, duration))
		e.tracker.TouchPlayer(handle)
		logger.Infof("ready: %.0fs over %d pads", duration, len(keys))
	case Exhausted:
		logger.Warnf("no duration after %d checks, giving up", e.poller.Attempts(slot))
	case Stale:
		logger.Debugf("dropping stale poll of generation %d", gen)
	}

	return outcome
}

// Drop detaches the player of slot after it went away. Its pending load is
// abandoned, its pads stop reacting and the toggle and slider let go of it.
func (e *Engine) Drop(slot SlotID) {
	handle, ok := e.handles[slot]
	if !ok {
		return
	}
	delete(e.handles, slot)
	e.poller.Drop(slot)
	e.registry.Delete(slot)
	e.tracker.Forget(handle)
	log.WithField("slot", slot).Info("player dropped")
}

// Slots returns the deck layout.
func (e *Engine) Slots() Layout {
	return e.layout
}

// Status is the readiness of slot: Stale before anything was loaded into it.
func (e *Engine) Status(slot SlotID) Outcome {
	phase, _ := e.poller.Phase(slot)
	return phase
}

// Pads lists the seek points of slot for rendering; empty until the deck is ready.
func (e *Engine) Pads(slot SlotID) []Point {
	entry, ok := e.registry.Get(slot)
	if !ok {
		return nil
	}
	return entry.Table.Points()
}

// Touched returns the deck and key the toggle and the slider currently act on.
func (e *Engine) Touched() (SlotID, string, bool) {
	handle, ok := e.tracker.Player()
	if !ok {
		return "", "", false
	}
	slot, ok := e.registry.SlotOf(handle)
	key, _ := e.tracker.Key()
	return slot, key, ok
}

// Slider returns the point-adjustment slider.
func (e *Engine) Slider() *Adjuster {
	return e.slider
}
