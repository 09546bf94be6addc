package open

import (
	"testing"

	"github.com/geniuskouta/nakano-yt-2000/constant"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCommand(t *testing.T) {
	Convey("Each platform uses its own opener", t, func() {
		cmd, ok := command(constant.Linux, "https://youtu.be/dQw4w9WgXcQ")
		So(ok, ShouldBeTrue)
		So(cmd.Args, ShouldResemble, []string{"xdg-open", "https://youtu.be/dQw4w9WgXcQ"})

		cmd, ok = command(constant.Darwin, "https://youtu.be/dQw4w9WgXcQ")
		So(ok, ShouldBeTrue)
		So(cmd.Args[0], ShouldEqual, "open")
	})

	Convey("Unknown platforms are rejected", t, func() {
		_, ok := command("plan9", "https://youtu.be/dQw4w9WgXcQ")
		So(ok, ShouldBeFalse)
	})
}
