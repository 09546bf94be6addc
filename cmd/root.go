// Package cmd implements the command-line interface of nakano.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/geniuskouta/nakano-yt-2000/color"
	"github.com/geniuskouta/nakano-yt-2000/config"
	"github.com/geniuskouta/nakano-yt-2000/constant"
	"github.com/geniuskouta/nakano-yt-2000/icon"
	"github.com/geniuskouta/nakano-yt-2000/key"
	"github.com/geniuskouta/nakano-yt-2000/log"
	"github.com/geniuskouta/nakano-yt-2000/style"
	"github.com/geniuskouta/nakano-yt-2000/tui"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.Flags().StringP("player", "p", "", "Media player executable to drive")
	lo.Must0(viper.BindPFlag(key.PlayerBinary, rootCmd.Flags().Lookup("player")))

	rootCmd.Flags().BoolP("continue", "c", false, "Reopen the videos of the previous session")
}

// rootCmd defines the entry point for the nakano application.
var rootCmd = &cobra.Command{
	Use:   constant.Nakano + " [url...]",
	Short: "Keyboard sampler decks for youtube videos",
	Long: style.Bold(constant.Nakano) + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Play youtube videos like a sampler: every key jumps to a point of a deck"),
	Example: strings.Join([]string{
		"  " + constant.Nakano + " https://youtu.be/dQw4w9WgXcQ https://youtu.be/9bZkp7q19f0",
		"  " + constant.Nakano + " --continue",
	}, "\n"),
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(config.Validate())
		CheckDependencies()

		options := tui.Options{
			URLs:     args,
			Continue: lo.Must(cmd.Flags().GetBool("continue")),
		}
		handleErr(tui.Run(&options))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
