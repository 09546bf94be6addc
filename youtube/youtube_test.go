package youtube

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParseVideoID(t *testing.T) {
	Convey("ParseVideoID", t, func() {
		Convey("Accepts watch links on both hosts", func() {
			So(ParseVideoID("https://www.youtube.com/watch?v=dQw4w9WgXcQ").MustGet(), ShouldEqual, "dQw4w9WgXcQ")
			So(ParseVideoID("https://youtube.com/watch?v=dQw4w9WgXcQ&t=42").MustGet(), ShouldEqual, "dQw4w9WgXcQ")
		})

		Convey("Accepts short links", func() {
			So(ParseVideoID("https://youtu.be/dQw4w9WgXcQ").MustGet(), ShouldEqual, "dQw4w9WgXcQ")
		})

		Convey("Accepts a bare id", func() {
			So(ParseVideoID("  dQw4w9WgXcQ ").MustGet(), ShouldEqual, "dQw4w9WgXcQ")
		})

		Convey("Rejects everything else", func() {
			for _, raw := range []string{
				"",
				"not a url",
				"https://vimeo.com/watch?v=dQw4w9WgXcQ",
				"https://www.youtube.com/embed/dQw4w9WgXcQ",
				"https://www.youtube.com/watch?v=short",
				"https://youtu.be/dQw4w9WgXcQ/extra",
				"https://www.youtube.com/watch?v=dQw4w9WgXc!",
			} {
				So(ParseVideoID(raw).IsAbsent(), ShouldBeTrue)
			}
		})
	})
}

func TestWatchURL(t *testing.T) {
	Convey("WatchURL round-trips through ParseVideoID", t, func() {
		So(ParseVideoID(WatchURL("dQw4w9WgXcQ")).MustGet(), ShouldEqual, "dQw4w9WgXcQ")
	})
}

func TestShareURL(t *testing.T) {
	Convey("ShareURL starts at whole seconds and still parses", t, func() {
		link := ShareURL("dQw4w9WgXcQ", 42.9)
		So(link, ShouldEqual, "https://youtu.be/dQw4w9WgXcQ?t=42")
		So(ParseVideoID(link).MustGet(), ShouldEqual, "dQw4w9WgXcQ")
	})
}
