package sampler

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

type flakyHandle struct {
	*fakeHandle
	failures int
}

func (f *flakyHandle) GetDuration() (float64, error) {
	if f.failures > 0 {
		f.failures--
		return 0, errors.New("ipc timeout")
	}
	return f.fakeHandle.GetDuration()
}

func TestPoller(t *testing.T) {
	Convey("Given a video reporting 0, 0 and then 5s", t, func() {
		p := NewPoller(0)
		handle := newFakeHandle(0, 0, 5.0)
		gen := p.Begin("a", handle)

		Convey("It stays pending until the third tick", func() {
			_, outcome := p.Check("a", gen)
			So(outcome, ShouldEqual, Pending)
			_, outcome = p.Check("a", gen)
			So(outcome, ShouldEqual, Pending)

			duration, outcome := p.Check("a", gen)
			So(outcome, ShouldEqual, Ready)
			So(duration, ShouldEqual, 5.0)
			So(p.Attempts("a"), ShouldEqual, 3)
		})

		Convey("Ticks after Ready are stale", func() {
			for i := 0; i < 3; i++ {
				p.Check("a", gen)
			}
			_, outcome := p.Check("a", gen)
			So(outcome, ShouldEqual, Stale)

			phase, ok := p.Phase("a")
			So(ok, ShouldBeTrue)
			So(phase, ShouldEqual, Ready)
		})

		Convey("A new load supersedes the old generation", func() {
			next := p.Begin("a", newFakeHandle(30))
			So(next, ShouldBeGreaterThan, gen)

			_, outcome := p.Check("a", gen)
			So(outcome, ShouldEqual, Stale)

			duration, outcome := p.Check("a", next)
			So(outcome, ShouldEqual, Ready)
			So(duration, ShouldEqual, 30)
		})

		Convey("Other slots are independent", func() {
			other := p.Begin("b", newFakeHandle(12))
			_, outcome := p.Check("b", other)
			So(outcome, ShouldEqual, Ready)

			_, outcome = p.Check("a", gen)
			So(outcome, ShouldEqual, Pending)
		})
	})

	Convey("Given an attempt cap", t, func() {
		p := NewPoller(2)
		gen := p.Begin("a", newFakeHandle(0))

		Convey("It gives up once the cap is reached", func() {
			_, outcome := p.Check("a", gen)
			So(outcome, ShouldEqual, Pending)
			_, outcome = p.Check("a", gen)
			So(outcome, ShouldEqual, Exhausted)
			_, outcome = p.Check("a", gen)
			So(outcome, ShouldEqual, Stale)
		})
	})

	Convey("Given a player whose duration query fails", t, func() {
		p := NewPoller(0)
		gen := p.Begin("a", &flakyHandle{fakeHandle: newFakeHandle(8), failures: 1})

		Convey("The failure counts as not ready yet", func() {
			_, outcome := p.Check("a", gen)
			So(outcome, ShouldEqual, Pending)
			_, outcome = p.Check("a", gen)
			So(outcome, ShouldEqual, Ready)
		})
	})

	Convey("Unknown slots are stale", t, func() {
		_, outcome := NewPoller(0).Check("ghost", 1)
		So(outcome, ShouldEqual, Stale)
		So(Outcome(99).String(), ShouldEqual, "unknown")
	})
}
