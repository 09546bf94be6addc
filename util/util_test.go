package util

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "deck", "decks"), ShouldEqual, "1 deck")
		So(Quantify(3, "deck", "decks"), ShouldEqual, "3 decks")
	})
}

func TestClamp(t *testing.T) {
	Convey("Clamp", t, func() {
		So(Clamp(5.0, 0, 10), ShouldEqual, 5.0)
		So(Clamp(-1.0, 0, 10), ShouldEqual, 0.0)
		So(Clamp(12, 0, 10), ShouldEqual, 10)

		Convey("An inverted range collapses to the lower bound", func() {
			So(Clamp(3, 0, -1), ShouldEqual, 0)
		})
	})
}

func TestTimestamp(t *testing.T) {
	Convey("Timestamp", t, func() {
		So(Timestamp(0), ShouldEqual, "0:00")
		So(Timestamp(65.9), ShouldEqual, "1:05")
		So(Timestamp(3723), ShouldEqual, "1:02:03")
		So(Timestamp(-4), ShouldEqual, "0:00")
	})
}
