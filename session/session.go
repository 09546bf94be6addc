// Package session remembers which video every deck had loaded, so the last set of
// decks can be reopened. Seek point edits are never stored.
package session

import (
	"sync"

	"github.com/geniuskouta/nakano-yt-2000/filesystem"
	"github.com/geniuskouta/nakano-yt-2000/key"
	"github.com/geniuskouta/nakano-yt-2000/where"
	"github.com/metafates/gache"
	"github.com/spf13/viper"
)

// Decks maps a slot name to the id of the video it played.
type Decks = map[string]string

var cacher = sync.OnceValue(func() *gache.Cache[Decks] {
	return gache.New[Decks](
		&gache.Options{
			Path:       where.Session(),
			FileSystem: &filesystem.GacheFs{},
		},
	)
})

func enabled() bool {
	return viper.GetBool(key.SessionRemember)
}

// Recall returns the decks of the previous run. It is empty when nothing was saved
// or remembering is turned off.
func Recall() (Decks, error) {
	if !enabled() {
		return make(Decks), nil
	}

	cached, expired, err := cacher().Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(Decks), nil
	}
	return cached, nil
}

// Remember records videoID as the video of slot.
func Remember(slot, videoID string) error {
	if !enabled() {
		return nil
	}

	decks, err := Recall()
	if err != nil {
		return err
	}

	if decks[slot] == videoID {
		return nil
	}

	decks[slot] = videoID
	return cacher().Set(decks)
}

// Forget drops every remembered deck.
func Forget() error {
	return cacher().Set(make(Decks))
}
