package sampler

import (
	"errors"

	"github.com/geniuskouta/nakano-yt-2000/player"
)

// fakeHandle plays back a scripted sequence of durations and records every command.
type fakeHandle struct {
	durations []float64
	checks    int
	state     player.State
	seeks     []float64
	plays     int
	pauses    int
	loaded    []string
	seekErr   error
}

func newFakeHandle(durations ...float64) *fakeHandle {
	return &fakeHandle{durations: durations, state: player.Paused}
}

func (f *fakeHandle) LoadVideoByID(id string) error {
	f.loaded = append(f.loaded, id)
	return nil
}

func (f *fakeHandle) SeekTo(seconds float64, allowSeekAhead bool) error {
	if f.seekErr != nil {
		return f.seekErr
	}
	if !allowSeekAhead {
		return errors.New("seek-ahead must be allowed")
	}
	f.seeks = append(f.seeks, seconds)
	return nil
}

func (f *fakeHandle) PlayVideo() error {
	f.plays++
	f.state = player.Playing
	return nil
}

func (f *fakeHandle) PauseVideo() error {
	f.pauses++
	f.state = player.Paused
	return nil
}

// GetDuration walks the script; the last value repeats once it runs out.
func (f *fakeHandle) GetDuration() (float64, error) {
	if len(f.durations) == 0 {
		return 0, nil
	}
	i := f.checks
	if i >= len(f.durations) {
		i = len(f.durations) - 1
	}
	f.checks++
	return f.durations[i], nil
}

func (f *fakeHandle) GetPlayerState() (player.State, error) {
	return f.state, nil
}

func (f *fakeHandle) lastSeek() float64 {
	if len(f.seeks) == 0 {
		return -1
	}
	return f.seeks[len(f.seeks)-1]
}
