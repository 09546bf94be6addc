package cmd

import (
	"fmt"

	"github.com/geniuskouta/nakano-yt-2000/filesystem"
	"github.com/geniuskouta/nakano-yt-2000/icon"
	"github.com/geniuskouta/nakano-yt-2000/session"
	"github.com/geniuskouta/nakano-yt-2000/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

// clearTarget defines an application artifact that can be removed.
type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	clear    func() error
}

// clearTargets registry of all application artifacts that can be selectively cleared.
var clearTargets = []clearTarget{
	{"session", "session", mo.Some("s"), session.Forget},
	{"player sockets", "sockets", mo.None[string](), func() error {
		return filesystem.API().RemoveAll(where.Sockets())
	}},
	{"logs", "logs", mo.Some("l"), func() error {
		return filesystem.API().RemoveAll(where.Logs())
	}},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if target.argShort.IsPresent() {
			clearCmd.Flags().BoolP(target.argLong, target.argShort.MustGet(), false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}
}

// clearCmd removes remembered sessions and other leftovers.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the remembered session and other leftovers",
	Run: func(cmd *cobra.Command, args []string) {
		var anyCleared bool

		for _, target := range clearTargets {
			if lo.Must(cmd.Flags().GetBool(target.argLong)) {
				anyCleared = true
				handleErr(target.clear())
				fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), target.name)
			}
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}
