package session

import (
	"testing"

	"github.com/geniuskouta/nakano-yt-2000/filesystem"
	"github.com/geniuskouta/nakano-yt-2000/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSession(t *testing.T) {
	Convey("Given remembering is on", t, func() {
		viper.Set(key.SessionRemember, true)
		So(Forget(), ShouldBeNil)

		Convey("When two decks are remembered", func() {
			So(Remember("a", "dQw4w9WgXcQ"), ShouldBeNil)
			So(Remember("b", "9bZkp7q19f0"), ShouldBeNil)

			Convey("Then both come back", func() {
				decks, err := Recall()
				So(err, ShouldBeNil)
				So(decks, ShouldResemble, Decks{"a": "dQw4w9WgXcQ", "b": "9bZkp7q19f0"})
			})

			Convey("And a later load of the same slot replaces it", func() {
				So(Remember("a", "kJQP7kiw5Fk"), ShouldBeNil)
				decks, _ := Recall()
				So(decks["a"], ShouldEqual, "kJQP7kiw5Fk")
				So(decks, ShouldHaveLength, 2)
			})

			Convey("And forgetting clears them", func() {
				So(Forget(), ShouldBeNil)
				decks, err := Recall()
				So(err, ShouldBeNil)
				So(decks, ShouldBeEmpty)
			})
		})
	})

	Convey("Given remembering is off", t, func() {
		So(Forget(), ShouldBeNil)
		viper.Set(key.SessionRemember, false)
		Reset(func() { viper.Set(key.SessionRemember, true) })

		Convey("Nothing is stored", func() {
			So(Remember("a", "dQw4w9WgXcQ"), ShouldBeNil)
			viper.Set(key.SessionRemember, true)
			decks, err := Recall()
			So(err, ShouldBeNil)
			So(decks, ShouldBeEmpty)
		})
	})
}
