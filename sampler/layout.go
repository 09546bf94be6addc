// Package sampler turns video players into keyboard sampler decks.
//
// Every deck (slot) owns a key alphabet. Once its player reports a duration the keys
// are spread evenly over the video, and pressing a key seeks that deck to its point.
// An Engine is not safe for concurrent use: it is meant to be driven from a single
// event loop, which is what keeps the registry and the last-touched state consistent
// without locks.
package sampler

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/geniuskouta/nakano-yt-2000/constant"
	"github.com/samber/lo"
)

// SlotID identifies a deck. It stays the same when the deck swaps videos.
type SlotID string

// Alphabet is the ordered list of key labels bound to one deck.
type Alphabet []string

var (
	ErrDuplicateKey  = errors.New("duplicate key in alphabet")
	ErrReservedKey   = errors.New("key is reserved for play/pause")
	ErrDuplicateSlot = errors.New("duplicate slot")
	ErrLayoutSize    = errors.New("every slot needs exactly one key alphabet")
	ErrUnknownSlot   = errors.New("unknown slot")
	ErrNoPlayer      = errors.New("slot has no player")
)

// NewAlphabet splits keys into single-character labels.
func NewAlphabet(keys string) (Alphabet, error) {
	alphabet := make(Alphabet, 0, utf8.RuneCountInString(keys))
	seen := make(map[string]struct{}, len(keys))

	for _, r := range keys {
		label := string(r)
		if label == constant.ToggleKey {
			return nil, fmt.Errorf("%w: %q", ErrReservedKey, label)
		}
		if _, ok := seen[label]; ok {
			return nil, fmt.Errorf("%w: %q in %q", ErrDuplicateKey, label, keys)
		}
		seen[label] = struct{}{}
		alphabet = append(alphabet, label)
	}

	return alphabet, nil
}

// String joins the labels back together.
func (a Alphabet) String() string {
	return strings.Join(a, "")
}

// Slot pairs a deck with its alphabet.
type Slot struct {
	ID   SlotID
	Keys Alphabet
}

// Layout is the ordered set of decks. Order decides which deck wins a shared key.
type Layout []Slot

// NewLayout pairs slot names with alphabets, position by position.
func NewLayout(names, keys []string) (Layout, error) {
	if len(names) != len(keys) {
		return nil, fmt.Errorf("%w: %d slots, %d alphabets", ErrLayoutSize, len(names), len(keys))
	}

	if dup := lo.FindDuplicates(names); len(dup) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrDuplicateSlot, dup)
	}

	layout := make(Layout, 0, len(names))
	for i, name := range names {
		alphabet, err := NewAlphabet(keys[i])
		if err != nil {
			return nil, fmt.Errorf("slot %s: %w", name, err)
		}
		layout = append(layout, Slot{ID: SlotID(name), Keys: alphabet})
	}

	return layout, nil
}

// Keys returns the alphabet of a slot.
func (l Layout) Keys(id SlotID) (Alphabet, bool) {
	slot, ok := lo.Find(l, func(s Slot) bool { return s.ID == id })
	return slot.Keys, ok
}

// Has reports whether id is part of the layout.
func (l Layout) Has(id SlotID) bool {
	_, ok := l.Keys(id)
	return ok
}

// IDs lists the slots in layout order.
func (l Layout) IDs() []SlotID {
	return lo.Map(l, func(s Slot, _ int) SlotID { return s.ID })
}

// Overlaps reports every label claimed by more than one slot, with the claimants in order.
// Only the first claimant ever reacts to such a key.
func (l Layout) Overlaps() map[string][]SlotID {
	owners := make(map[string][]SlotID)
	for _, slot := range l {
		for _, label := range slot.Keys {
			owners[label] = append(owners[label], slot.ID)
		}
	}
	return lo.PickBy(owners, func(_ string, ids []SlotID) bool { return len(ids) > 1 })
}
