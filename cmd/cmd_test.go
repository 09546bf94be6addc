package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/geniuskouta/nakano-yt-2000/filesystem"
	"github.com/geniuskouta/nakano-yt-2000/key"
	"github.com/geniuskouta/nakano-yt-2000/sampler"
	"github.com/geniuskouta/nakano-yt-2000/where"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestParseValue(t *testing.T) {
	Convey("Values follow the type of their default", t, func() {
		v, err := parseValue(200, []string{"50"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, 50)

		v, err = parseValue(true, []string{"false"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, false)

		v, err = parseValue("mpv", []string{"/usr/local/bin/mpv"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, "/usr/local/bin/mpv")

		v, err = parseValue([]string{}, []string{"--mute=yes", "--volume=50"})
		So(err, ShouldBeNil)
		So(v, ShouldResemble, []string{"--mute=yes", "--volume=50"})

		_, err = parseValue(200, []string{"fast"})
		So(err, ShouldNotBeNil)
	})
}

func TestUnknownKey(t *testing.T) {
	Convey("A mistyped key suggests the closest one", t, func() {
		err := errUnknownKey("poll.interval")
		So(err.Error(), ShouldContainSubstring, "poll.interval_ms")
	})
}

func TestPoints(t *testing.T) {
	Convey("Given the configured decks", t, func() {
		viper.Set(key.SlotsNames, []string{"a", "b"})
		viper.Set(key.SlotsKeys, []string{"123", "qwer"})

		Convey("Explicit keys win", func() {
			alphabet, err := resolveAlphabet("xyz", "")
			So(err, ShouldBeNil)
			So(alphabet, ShouldResemble, sampler.Alphabet{"x", "y", "z"})
		})

		Convey("A slot name picks its alphabet", func() {
			alphabet, err := resolveAlphabet("", "b")
			So(err, ShouldBeNil)
			So(alphabet.String(), ShouldEqual, "qwer")
		})

		Convey("Without either the first deck is used", func() {
			alphabet, err := resolveAlphabet("", "")
			So(err, ShouldBeNil)
			So(alphabet.String(), ShouldEqual, "123")
		})

		Convey("Unknown slots are reported", func() {
			_, err := resolveAlphabet("", "z")
			So(errors.Is(err, sampler.ErrUnknownSlot), ShouldBeTrue)
		})

		Convey("The table lists every point", func() {
			alphabet, _ := resolveAlphabet("abc", "")
			var out bytes.Buffer
			printPoints(&out, sampler.Build(alphabet, 9))
			So(out.String(), ShouldContainSubstring, "0:03")
			So(out.String(), ShouldContainSubstring, "0:06")
			So(out.String(), ShouldContainSubstring, "3 points")
		})
	})
}

func TestEnv(t *testing.T) {
	Convey("Given a variable set in the shell", t, func() {
		t.Setenv("NAKANO_SLIDER_STEP", "3")
		t.Setenv("NAKANO_TUI_FLASH_MS", "")
		vars := collectEnv()

		Convey("Every setting and the config override are listed", func() {
			names := lo.Map(vars, func(v envVar, _ int) string { return v.name })
			So(names, ShouldContain, "NAKANO_SLIDER_STEP")
			So(names, ShouldContain, where.EnvConfigPath)
			So(names, ShouldContain, "NAKANO_POLL_MAX_ATTEMPTS")
		})

		Convey("Values carry where they came from", func() {
			step, _ := lo.Find(vars, func(v envVar) bool { return v.name == "NAKANO_SLIDER_STEP" })
			So(step.value, ShouldEqual, "3")
			So(step.source, ShouldEqual, "shell")

			flash, _ := lo.Find(vars, func(v envVar) bool { return v.name == "NAKANO_TUI_FLASH_MS" })
			So(flash.set(), ShouldBeFalse)

			var out bytes.Buffer
			printEnv(&out, []envVar{step, flash})
			So(out.String(), ShouldContainSubstring, "# shell")
			So(out.String(), ShouldContainSubstring, "unset")
		})
	})
}

func TestWhere(t *testing.T) {
	Convey("Given a fresh config dir", t, func() {
		t.Setenv(where.EnvConfigPath, "/tmp/nakano-cmd-test")

		var out bytes.Buffer
		printWhere(&out, wherePaths)

		Convey("Visible paths are listed and missing files are marked", func() {
			So(out.String(), ShouldContainSubstring, "/tmp/nakano-cmd-test")
			So(out.String(), ShouldContainSubstring, where.EnvFile())
			So(out.String(), ShouldContainSubstring, "(not created yet)")
			So(out.String(), ShouldContainSubstring, "--session")
			So(out.String(), ShouldNotContainSubstring, "--sockets")
		})
	})
}

func TestPlayerVersion(t *testing.T) {
	Convey("A player that cannot run is reported by name", t, func() {
		viper.Set(key.PlayerBinary, "nakano-no-such-player")
		So(playerVersion(), ShouldEqual, "nakano-no-such-player (not runnable)")
	})
}
