package config

import (
	"os"
	"testing"

	"github.com/geniuskouta/nakano-yt-2000/filesystem"
	"github.com/geniuskouta/nakano-yt-2000/key"
	"github.com/geniuskouta/nakano-yt-2000/where"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		t.Setenv(where.EnvConfigPath, "/tmp/nakano-config-test")

		Convey("Should initialize without a config file", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should populate every default", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
			So(viper.GetInt(key.PollIntervalMs), ShouldEqual, 200)
			So(viper.GetStringSlice(key.SlotsKeys), ShouldHaveLength, len(viper.GetStringSlice(key.SlotsNames)))
		})

		Convey("Should read values from the TOML file", func() {
			err := filesystem.API().WriteFile(
				"/tmp/nakano-config-test/nakano.toml",
				[]byte("[poll]\ninterval_ms = 50\n"),
				0o644,
			)
			So(err, ShouldBeNil)
			So(Setup(), ShouldBeNil)
			So(viper.GetInt(key.PollIntervalMs), ShouldEqual, 50)
			So(filesystem.API().Remove("/tmp/nakano-config-test/nakano.toml"), ShouldBeNil)
		})

		Convey("Should export variables from the dotenv file", func() {
			t.Setenv("NAKANO_TUI_FLASH_MS", "")
			So(os.Unsetenv("NAKANO_TUI_FLASH_MS"), ShouldBeNil)

			err := filesystem.API().WriteFile(
				where.EnvFile(),
				[]byte("NAKANO_TUI_FLASH_MS=90\n"),
				0o644,
			)
			So(err, ShouldBeNil)
			So(Setup(), ShouldBeNil)
			So(viper.GetInt(key.TUIFlashMs), ShouldEqual, 90)
			So(FromEnvFile("NAKANO_TUI_FLASH_MS"), ShouldBeTrue)
			So(FromEnvFile("NAKANO_POLL_INTERVAL_MS"), ShouldBeFalse)
			So(filesystem.API().Remove(where.EnvFile()), ShouldBeNil)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("poll.interval_ms"), ShouldEqual, "poll_interval_ms")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given a registered field", t, func() {
		field := Default[key.PollMaxAttempts]

		Convey("Env is prefixed with the application name", func() {
			So(field.Env(), ShouldEqual, "NAKANO_POLL_MAX_ATTEMPTS")
		})

		Convey("JSON carries the type and default", func() {
			data, err := field.MarshalJSON()
			So(err, ShouldBeNil)
			So(string(data), ShouldContainSubstring, `"type":"int"`)
			So(string(data), ShouldContainSubstring, `"default":0`)
		})
	})
}

func TestValidate(t *testing.T) {
	Convey("Given the defaults", t, func() {
		t.Setenv(where.EnvConfigPath, "/tmp/nakano-config-test")
		So(Setup(), ShouldBeNil)

		Convey("They are valid", func() {
			So(Validate(), ShouldBeNil)
		})

		Convey("Out of range values are reported by key", func() {
			viper.Set(key.PollIntervalMs, 1)
			viper.Set(key.IconsVariant, "ascii")
			Reset(func() {
				viper.Set(key.PollIntervalMs, 200)
				viper.Set(key.IconsVariant, "plain")
			})

			err := Validate()
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "poll.interval_ms must be at least 10")
			So(err.Error(), ShouldContainSubstring, "icons.variant must be one of")
		})
	})
}
