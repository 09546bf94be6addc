package sampler

import (
	"fmt"

	"github.com/geniuskouta/nakano-yt-2000/player"
)

// Seek jumps handle to seconds and makes sure it is audible afterwards.
func Seek(handle player.Handle, seconds float64) error {
	if err := handle.SeekTo(seconds, true); err != nil {
		return fmt.Errorf("seek to %.0fs: %w", seconds, err)
	}

	state, err := handle.GetPlayerState()
	if err == nil && state == player.Playing {
		return nil
	}

	if err := handle.PlayVideo(); err != nil {
		return fmt.Errorf("play after seek: %w", err)
	}
	return nil
}

// Toggle pauses a playing handle and plays anything else. It returns the state asked for.
func Toggle(handle player.Handle) (player.State, error) {
	state, err := handle.GetPlayerState()
	if err != nil {
		return state, fmt.Errorf("toggle: %w", err)
	}

	if state == player.Playing {
		return player.Paused, handle.PauseVideo()
	}
	return player.Playing, handle.PlayVideo()
}
