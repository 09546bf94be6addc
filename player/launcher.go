package player

import (
	"fmt"

	"github.com/geniuskouta/nakano-yt-2000/constant"
	"github.com/geniuskouta/nakano-yt-2000/log"
)

// Launcher creates one mpv process per deck.
type Launcher struct {
	Options Options
}

// NewLauncher returns a Launcher spawning processes with opts.
func NewLauncher(opts Options) *Launcher {
	return &Launcher{Options: opts}
}

// Launch starts a player for slot and begins loading videoID.
// It returns once the player accepts commands; the video itself may still be loading.
func (l *Launcher) Launch(slot, videoID string) (*MPV, error) {
	m, err := Start(l.Options, fmt.Sprintf("%s [%s]", constant.Nakano, slot))
	if err != nil {
		return nil, err
	}

	if err := m.LoadVideoByID(videoID); err != nil {
		_ = m.Close()
		return nil, err
	}

	log.WithField("slot", slot).Infof("mpv started on %s with %s", m.Socket(), videoID)
	return m, nil
}
