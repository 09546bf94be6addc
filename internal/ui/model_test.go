package ui

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNotifier(t *testing.T) {
	Convey("Given an empty notifier", t, func() {
		m := &Model{}

		Convey("The view is left alone", func() {
			So(m.View("decks"), ShouldEqual, "decks")
		})

		Convey("When a notice arrives", func() {
			cmd := m.Update(NoticeMsg{Text: "deck b failed to start", Level: Failure})
			So(cmd, ShouldNotBeNil)
			So(m.Current(), ShouldEqual, "deck b failed to start")

			Convey("It is appended to the last line", func() {
				view := m.View("top\nbottom")
				So(strings.HasPrefix(view, "top\nbottom  "), ShouldBeTrue)
				So(view, ShouldContainSubstring, "deck b failed to start")
			})

			Convey("Its own clear removes it", func() {
				m.Update(ClearNotificationMsg{seq: m.seq})
				So(m.Current(), ShouldBeEmpty)
			})

			Convey("A clear scheduled for an older notice is ignored", func() {
				old := m.seq
				m.Update(NoticeMsg{Text: "key x is shared"})
				m.Update(ClearNotificationMsg{seq: old})
				So(m.Current(), ShouldEqual, "key x is shared")
			})
		})
	})

	Convey("Notify wraps the text in a message", t, func() {
		msg := Notify(Warning, "stalled")()
		So(msg, ShouldResemble, NoticeMsg{Text: "stalled", Level: Warning})
	})
}
