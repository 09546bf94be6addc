package sampler

import (
	"github.com/geniuskouta/nakano-yt-2000/constant"
	"github.com/geniuskouta/nakano-yt-2000/log"
	"github.com/geniuskouta/nakano-yt-2000/player"
)

// Action is what a key event ended up doing.
type Action int

const (
	Ignored Action = iota
	Seeked
	Toggled
	Released
)

func (a Action) String() string {
	switch a {
	case Ignored:
		return "ignored"
	case Seeked:
		return "seeked"
	case Toggled:
		return "toggled"
	case Released:
		return "released"
	default:
		return "unknown"
	}
}

// Dispatch describes the outcome of one key event.
type Dispatch struct {
	Action Action
	Slot   SlotID
	Key    string
	Time   float64
	State  player.State
	Err    error
}

// KeyDown routes a key press. Space toggles the last touched player; any other label
// seeks the first deck binding it. At most one player reacts.
func (e *Engine) KeyDown(label string) Dispatch {
	if label == constant.ToggleKey {
		return e.toggle()
	}

	slot, entry, ok := e.registry.Lookup(label)
	if !ok {
		return Dispatch{Action: Ignored, Key: label}
	}
	return e.fire(slot, entry, label)
}

// KeyUp routes a key release. It never changes engine state.
func (e *Engine) KeyUp(label string) Dispatch {
	return Dispatch{Action: Released, Key: label}
}

// Trigger fires key on a specific deck, as when its pad is activated directly.
func (e *Engine) Trigger(slot SlotID, key string) Dispatch {
	entry, ok := e.registry.Get(slot)
	if !ok || !entry.Table.Has(key) {
		return Dispatch{Action: Ignored, Slot: slot, Key: key}
	}
	return e.fire(slot, entry, key)
}

func (e *Engine) fire(slot SlotID, entry *Entry, key string) Dispatch {
	seconds, _ := entry.Table.Get(key)
	d := Dispatch{Action: Seeked, Slot: slot, Key: key, Time: seconds, State: player.Playing}

	if err := Seek(entry.Handle, seconds); err != nil {
		log.WithField("slot", slot).Warnf("pad %q: %v", key, err)
		d.Action, d.Err = Ignored, err
		return d
	}

	e.tracker.Touch(entry.Handle, key)
	log.WithField("slot", slot).Debugf("pad %q -> %.0fs", key, seconds)
	return d
}

func (e *Engine) toggle() Dispatch {
	handle, ok := e.tracker.Player()
	if !ok {
		return Dispatch{Action: Ignored, Key: constant.ToggleKey}
	}

	slot, _ := e.registry.SlotOf(handle)
	state, err := Toggle(handle)
	if err != nil {
		log.WithField("slot", slot).Warnf("toggle: %v", err)
		return Dispatch{Action: Ignored, Slot: slot, Key: constant.ToggleKey, Err: err}
	}

	return Dispatch{Action: Toggled, Slot: slot, Key: constant.ToggleKey, State: state}
}
