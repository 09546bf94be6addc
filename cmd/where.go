package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/geniuskouta/nakano-yt-2000/color"
	"github.com/geniuskouta/nakano-yt-2000/filesystem"
	"github.com/geniuskouta/nakano-yt-2000/style"
	"github.com/geniuskouta/nakano-yt-2000/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// whereTarget is a path the application reads or writes, and the flag printing it.
type whereTarget struct {
	name     string
	where    func() string
	argLong  string
	argShort mo.Option[string]
	hidden   bool
}

var wherePaths = []*whereTarget{
	{"Config", where.Config, "config", mo.Some("c"), false},
	{"Env file", where.EnvFile, "env", mo.Some("e"), false},
	{"Logs", where.Logs, "logs", mo.Some("l"), false},
	{"Session", where.Session, "session", mo.Some("s"), false},
	{"Cache", where.Cache, "cache", mo.None[string](), true},
	{"Sockets", where.Sockets, "sockets", mo.None[string](), true},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, n := range wherePaths {
		help := n.name + " path"
		if n.argShort.IsPresent() {
			whereCmd.Flags().BoolP(n.argLong, n.argShort.MustGet(), false, help)
		} else {
			whereCmd.Flags().Bool(n.argLong, false, help)
		}

		if n.hidden {
			lo.Must0(whereCmd.Flags().MarkHidden(n.argLong))
		}
	}

	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(wherePaths, func(t *whereTarget, _ int) string {
		return t.argLong
	})...)

	whereCmd.SetOut(os.Stdout)
}

// printWhere lists the visible targets; paths nothing has written yet are marked.
func printWhere(w io.Writer, targets []*whereTarget) {
	headerStyle := style.New().Bold(true).Foreground(color.HiPurple).Render
	visible := lo.Reject(targets, func(t *whereTarget, _ int) bool { return t.hidden })

	for i, n := range visible {
		path := n.where()
		fmt.Fprintf(w, "%s %s\n", headerStyle(n.name+"?"), style.Fg(color.Yellow)("--"+n.argLong))

		if exists, _ := afero.Exists(filesystem.API(), path); exists {
			fmt.Fprintln(w, path)
		} else {
			fmt.Fprintln(w, path, style.Faint("(not created yet)"))
		}

		if i < len(visible)-1 {
			fmt.Fprintln(w)
		}
	}
}

// whereCmd displays the filesystem paths used by nakano.
var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Display the filesystem paths nakano reads and writes",
	Run: func(cmd *cobra.Command, args []string) {
		for _, n := range wherePaths {
			if lo.Must(cmd.Flags().GetBool(n.argLong)) {
				cmd.Println(n.where())
				return
			}
		}

		printWhere(cmd.OutOrStdout(), wherePaths)
	},
}
