package sampler

import (
	"github.com/geniuskouta/nakano-yt-2000/log"
	"github.com/geniuskouta/nakano-yt-2000/player"
)

// Generation tags one load of a slot. A swap starts a new generation and every
// check carrying an older one is dropped.
type Generation uint64

// Outcome is the result of a readiness check.
type Outcome int

const (
	// Stale means the check belongs to a superseded or finished load and must be dropped.
	Stale Outcome = iota
	// Pending means the duration is still unknown; check again after the poll interval.
	Pending
	// Ready means a positive duration was observed.
	Ready
	// Exhausted means the attempt cap was hit before the video reported a duration.
	Exhausted
)

func (o Outcome) String() string {
	switch o {
	case Stale:
		return "stale"
	case Pending:
		return "pending"
	case Ready:
		return "ready"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

type episode struct {
	gen      Generation
	handle   player.Handle
	attempts int
	phase    Outcome
}

// Poller runs the Pending -> Ready state machine of every slot.
// It owns no timers: whoever drives it schedules the next Check.
type Poller struct {
	episodes    map[SlotID]*episode
	last        Generation
	maxAttempts int
}

// NewPoller returns a Poller giving up after maxAttempts checks; 0 never gives up.
func NewPoller(maxAttempts int) *Poller {
	return &Poller{
		episodes:    make(map[SlotID]*episode),
		maxAttempts: maxAttempts,
	}
}

// Begin enters Pending for slot, superseding whatever load was in flight there.
func (p *Poller) Begin(slot SlotID, handle player.Handle) Generation {
	p.last++
	p.episodes[slot] = &episode{gen: p.last, handle: handle, phase: Pending}
	return p.last
}

// Check queries the duration of the load tagged gen.
func (p *Poller) Check(slot SlotID, gen Generation) (float64, Outcome) {
	ep, ok := p.episodes[slot]
	if !ok || ep.gen != gen || ep.phase != Pending {
		return 0, Stale
	}

	ep.attempts++
	duration, err := ep.handle.GetDuration()
	if err != nil {
		log.WithField("slot", slot).Debugf("duration check %d failed: %v", ep.attempts, err)
		duration = 0
	}

	if duration > 0 {
		ep.phase = Ready
		return duration, Ready
	}

	if p.maxAttempts > 0 && ep.attempts >= p.maxAttempts {
		ep.phase = Exhausted
		return 0, Exhausted
	}

	return 0, Pending
}

// Drop forgets the latest load of slot; checks still in flight turn Stale.
func (p *Poller) Drop(slot SlotID) {
	delete(p.episodes, slot)
}

// Phase reports the state of the latest load of slot.
func (p *Poller) Phase(slot SlotID) (Outcome, bool) {
	ep, ok := p.episodes[slot]
	if !ok {
		return Stale, false
	}
	return ep.phase, true
}

// Attempts reports how many checks the latest load of slot has taken.
func (p *Poller) Attempts(slot SlotID) int {
	if ep, ok := p.episodes[slot]; ok {
		return ep.attempts
	}
	return 0
}
