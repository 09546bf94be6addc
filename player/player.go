// Package player drives external video players on behalf of the sampler decks.
//
// The decks only need a narrow capability set, modelled on embeddable web players:
// load a video, seek, play, pause and query duration and state. MPV implements it
// over mpv's JSON-IPC socket.
package player

// State is the coarse playback state reported by a Handle.
// Values follow the embed-player numbering.
type State int

const (
	Unstarted State = -1
	Ended     State = 0
	Playing   State = 1
	Paused    State = 2
	Buffering State = 3
)

func (s State) String() string {
	switch s {
	case Unstarted:
		return "unstarted"
	case Ended:
		return "ended"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case Buffering:
		return "buffering"
	default:
		return "unknown"
	}
}

// Handle is the capability set a deck needs from a player.
type Handle interface {
	// LoadVideoByID replaces the current video. The duration reads 0 until the new one is ready.
	LoadVideoByID(id string) error

	// SeekTo jumps to an absolute position in seconds. With allowSeekAhead false the
	// target is kept inside the already buffered range.
	SeekTo(seconds float64, allowSeekAhead bool) error

	PlayVideo() error
	PauseVideo() error

	// GetDuration returns the length of the loaded video in seconds, or 0 while it is still loading.
	GetDuration() (float64, error)

	GetPlayerState() (State, error)
}
