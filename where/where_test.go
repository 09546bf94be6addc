package where

import (
	"path/filepath"
	"testing"

	"github.com/geniuskouta/nakano-yt-2000/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config() honours the override variable", func() {
			t.Setenv(EnvConfigPath, "/tmp/nakano-test-config")
			path := Config()
			So(path, ShouldEqual, "/tmp/nakano-test-config")
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Logs() lives under the config dir", func() {
			t.Setenv(EnvConfigPath, "/tmp/nakano-test-config")
			So(Logs(), ShouldEqual, filepath.Join("/tmp/nakano-test-config", "logs"))
			So(lo.Must(filesystem.API().IsDir(Logs())), ShouldBeTrue)
		})

		Convey("EnvFile() lives next to the config file", func() {
			t.Setenv(EnvConfigPath, "/tmp/nakano-test-config")
			So(EnvFile(), ShouldEqual, filepath.Join("/tmp/nakano-test-config", "nakano.env"))
		})

		Convey("Session() is a file inside the cache dir", func() {
			So(filepath.Dir(Session()), ShouldEqual, Cache())
		})

		Convey("Sockets() is created", func() {
			So(lo.Must(filesystem.API().IsDir(Sockets())), ShouldBeTrue)
		})
	})
}
