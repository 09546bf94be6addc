package sampler

import "github.com/geniuskouta/nakano-yt-2000/player"

// Tracker remembers the most recently touched player and the key that triggered it.
// The play/pause toggle and the point slider act on whatever it holds.
type Tracker struct {
	handle  player.Handle
	key     string
	version uint64
}

// Touch records a seek on handle triggered by key.
func (t *Tracker) Touch(handle player.Handle, key string) {
	t.handle = handle
	t.key = key
	t.version++
}

// TouchPlayer records handle without changing the key, as when a deck becomes ready.
func (t *Tracker) TouchPlayer(handle player.Handle) {
	t.handle = handle
	t.version++
}

// Forget clears the tracker if it holds handle.
func (t *Tracker) Forget(handle player.Handle) {
	if t.handle == nil || t.handle != handle {
		return
	}
	t.handle = nil
	t.key = ""
	t.version++
}

// Player returns the last touched player, if any.
func (t *Tracker) Player() (player.Handle, bool) {
	return t.handle, t.handle != nil
}

// Key returns the last triggered key, if any.
func (t *Tracker) Key() (string, bool) {
	return t.key, t.key != ""
}

// Version changes every time the tracker is touched.
func (t *Tracker) Version() uint64 {
	return t.version
}
