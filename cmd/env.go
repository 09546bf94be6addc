package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/geniuskouta/nakano-yt-2000/color"
	"github.com/geniuskouta/nakano-yt-2000/config"
	"github.com/geniuskouta/nakano-yt-2000/style"
	"github.com/geniuskouta/nakano-yt-2000/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Display only environment variables that are currently defined")
	envCmd.Flags().BoolP("unset-only", "u", false, "Display only environment variables that are currently undefined")

	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
}

// envVar is a supported environment variable and where its value came from.
type envVar struct {
	name   string
	value  string
	source string
}

func (e envVar) set() bool {
	return e.value != ""
}

// collectEnv lists every supported variable by name.
func collectEnv() []envVar {
	names := lo.MapToSlice(config.Default, func(_ string, field config.Field) string {
		return field.Env()
	})
	names = append(names, where.EnvConfigPath)
	slices.Sort(names)

	return lo.Map(names, func(name string, _ int) envVar {
		v := envVar{name: name, value: os.Getenv(name)}
		switch {
		case !v.set():
		case config.FromEnvFile(name):
			v.source = "nakano.env"
		default:
			v.source = "shell"
		}
		return v
	})
}

func printEnv(w io.Writer, vars []envVar) {
	for _, v := range vars {
		name := style.New().Bold(true).Foreground(color.Purple).Render(v.name)
		if !v.set() {
			fmt.Fprintf(w, "%s=%s\n", name, style.Fg(color.Red)("unset"))
			continue
		}
		fmt.Fprintf(w, "%s=%s %s\n", name, style.Fg(color.Green)(v.value), style.Faint("# "+v.source))
	}
}

// envCmd displays the current process values for all supported environment variables.
var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Display the collection of supported environment variables",
	Long: `Display the collection of supported environment variables and their current process values.
Values exported from nakano.env in the config directory are marked as such.`,
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))

		vars := lo.Filter(collectEnv(), func(v envVar, _ int) bool {
			return !(setOnly && !v.set()) && !(unsetOnly && v.set())
		})
		printEnv(cmd.OutOrStdout(), vars)
	},
}
