package tui

import (
	"github.com/geniuskouta/nakano-yt-2000/player"
	"github.com/geniuskouta/nakano-yt-2000/sampler"
)

// deckPlayer is a player the decks can drive and shut down.
type deckPlayer interface {
	player.Handle
	Close() error
	Wait() <-chan struct{}
}

// padRef names one pad of one deck.
type padRef struct {
	slot  sampler.SlotID
	label string
}

type launchedMsg struct {
	slot    sampler.SlotID
	videoID string
	player  deckPlayer
	err     error
}

type pollMsg struct {
	slot sampler.SlotID
	gen  sampler.Generation
}

// keyUpMsg is the release synthesised after a pad flash.
type keyUpMsg struct {
	pad padRef
	seq int
}

type exitedMsg struct {
	slot   sampler.SlotID
	player deckPlayer
}
