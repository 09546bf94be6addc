package sampler

import "github.com/geniuskouta/nakano-yt-2000/util"

// Adjuster is the point slider. It edits the seek point of the last triggered key on
// the last touched player: Input retimes it silently, Commit auditions it.
type Adjuster struct {
	registry *Registry
	tracker  *Tracker

	seen  uint64
	max   float64
	value float64
}

// sync rescales the slider whenever the tracker moved to another player or key.
// The range comes from the published table, so a deck still loading its next video
// keeps the range of the points it is playing.
func (a *Adjuster) sync() {
	if a.tracker.Version() == a.seen {
		return
	}
	a.seen = a.tracker.Version()
	a.max, a.value = 0, 0

	handle, ok := a.tracker.Player()
	if !ok {
		return
	}
	slot, ok := a.registry.SlotOf(handle)
	if !ok {
		return
	}
	entry, _ := a.registry.Get(slot)
	a.max = entry.Table.Duration()

	if key, ok := a.tracker.Key(); ok {
		a.value, _ = entry.Table.Get(key)
	}
}

// target resolves the registry slot and key the slider is bound to.
func (a *Adjuster) target() (SlotID, string, bool) {
	handle, ok := a.tracker.Player()
	if !ok {
		return "", "", false
	}
	key, ok := a.tracker.Key()
	if !ok {
		return "", "", false
	}
	slot, ok := a.registry.SlotOf(handle)
	if !ok {
		return "", "", false
	}
	return slot, key, true
}

// Max is the duration of the last touched player, or 0 when it has no points yet.
func (a *Adjuster) Max() float64 {
	a.sync()
	return a.max
}

// Value is the current slider position in seconds.
func (a *Adjuster) Value() float64 {
	a.sync()
	return a.value
}

// Meter is Value as a fraction of Max.
func (a *Adjuster) Meter() float64 {
	a.sync()
	if a.max <= 0 {
		return 0
	}
	return util.Clamp(a.value/a.max, 0, 1)
}

// Bound reports whether the slider currently has a player and key to act on.
func (a *Adjuster) Bound() bool {
	a.sync()
	slot, key, ok := a.target()
	if !ok {
		return false
	}
	entry, found := a.registry.Get(slot)
	return found && entry.Table.Has(key)
}

// Input moves the slider to seconds and writes it into the bound seek point. No seek happens.
func (a *Adjuster) Input(seconds float64) bool {
	a.sync()
	slot, key, ok := a.target()
	if !ok {
		return false
	}

	seconds = util.Clamp(seconds, 0, a.max)
	if !a.registry.UpdatePoint(slot, key, seconds) {
		return false
	}
	a.value = seconds
	return true
}

// Nudge moves the slider by delta seconds.
func (a *Adjuster) Nudge(delta float64) bool {
	return a.Input(a.Value() + delta)
}

// Commit settles the slider on seconds and seeks the bound player there.
func (a *Adjuster) Commit(seconds float64) (bool, error) {
	if !a.Input(seconds) {
		return false, nil
	}

	handle, _ := a.tracker.Player()
	if err := Seek(handle, a.value); err != nil {
		return false, err
	}
	return true, nil
}
