package sampler

import (
	"github.com/geniuskouta/nakano-yt-2000/player"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Entry is what a ready deck can play.
type Entry struct {
	Handle player.Handle
	Table  *Table
}

// SlotEntry is an Entry together with its slot, as returned by All.
type SlotEntry struct {
	Slot SlotID
	*Entry
}

// Registry maps slots to their player and seek points, in slot creation order.
type Registry struct {
	entries *orderedmap.OrderedMap[SlotID, *Entry]
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: orderedmap.New[SlotID, *Entry]()}
}

// Upsert replaces the entry of slot wholesale. A slot keeps its original position.
func (r *Registry) Upsert(slot SlotID, handle player.Handle, table *Table) {
	r.entries.Set(slot, &Entry{Handle: handle, Table: table})
}

// Get returns the entry of slot.
func (r *Registry) Get(slot SlotID) (*Entry, bool) {
	return r.entries.Get(slot)
}

// All lists the entries in slot creation order.
func (r *Registry) All() []SlotEntry {
	all := make([]SlotEntry, 0, r.entries.Len())
	for pair := r.entries.Oldest(); pair != nil; pair = pair.Next() {
		all = append(all, SlotEntry{Slot: pair.Key, Entry: pair.Value})
	}
	return all
}

// Delete removes slot.
func (r *Registry) Delete(slot SlotID) {
	r.entries.Delete(slot)
}

// Len returns the number of registered slots.
func (r *Registry) Len() int {
	return r.entries.Len()
}

// UpdatePoint retimes key on slot. Unknown slots and keys are ignored.
func (r *Registry) UpdatePoint(slot SlotID, key string, seconds float64) bool {
	entry, ok := r.entries.Get(slot)
	if !ok {
		return false
	}
	return entry.Table.Set(key, seconds)
}

// Lookup returns the first entry, in creation order, whose table binds label.
func (r *Registry) Lookup(label string) (SlotID, *Entry, bool) {
	for pair := r.entries.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value.Table.Has(label) {
			return pair.Key, pair.Value, true
		}
	}
	return "", nil, false
}

// SlotOf returns the slot currently holding handle.
func (r *Registry) SlotOf(handle player.Handle) (SlotID, bool) {
	if handle == nil {
		return "", false
	}
	for pair := r.entries.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value.Handle == handle {
			return pair.Key, true
		}
	}
	return "", false
}
