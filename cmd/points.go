package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/geniuskouta/nakano-yt-2000/color"
	"github.com/geniuskouta/nakano-yt-2000/key"
	"github.com/geniuskouta/nakano-yt-2000/sampler"
	"github.com/geniuskouta/nakano-yt-2000/style"
	"github.com/geniuskouta/nakano-yt-2000/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(pointsCmd)
	pointsCmd.Flags().StringP("keys", "k", "", "Key alphabet to spread; defaults to the alphabet of --slot")
	pointsCmd.Flags().StringP("slot", "s", "", "Take the alphabet of this configured deck")
	pointsCmd.Flags().Float64P("duration", "d", 0, "Video duration in seconds")
	pointsCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON object")
	lo.Must0(pointsCmd.MarkFlagRequired("duration"))
	pointsCmd.MarkFlagsMutuallyExclusive("keys", "slot")
}

// pointsCmd prints the seek points a deck would get for a video.
var pointsCmd = &cobra.Command{
	Use:   "points",
	Short: "Print the seek points of a key alphabet for a given duration",
	Example: "  nakano points --keys asdfghjkl --duration 212\n" +
		"  nakano points --slot b --duration 95 --json",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			keys     = lo.Must(cmd.Flags().GetString("keys"))
			slot     = lo.Must(cmd.Flags().GetString("slot"))
			duration = lo.Must(cmd.Flags().GetFloat64("duration"))
			asJson   = lo.Must(cmd.Flags().GetBool("json"))
		)

		alphabet, err := resolveAlphabet(keys, slot)
		handleErr(err)

		if duration <= 0 {
			handleErr(errors.New("duration must be positive"))
		}

		table := sampler.Build(alphabet, duration)
		if asJson {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(table))
			return
		}

		printPoints(cmd.OutOrStdout(), table)
	},
}

// resolveAlphabet picks the explicit keys, the alphabet of slot, or the first configured deck.
func resolveAlphabet(keys, slot string) (sampler.Alphabet, error) {
	if keys != "" {
		return sampler.NewAlphabet(keys)
	}

	layout, err := sampler.NewLayout(
		viper.GetStringSlice(key.SlotsNames),
		viper.GetStringSlice(key.SlotsKeys),
	)
	if err != nil {
		return nil, err
	}

	if slot == "" {
		if len(layout) == 0 {
			return nil, sampler.ErrUnknownSlot
		}
		return layout[0].Keys, nil
	}

	alphabet, ok := layout.Keys(sampler.SlotID(slot))
	if !ok {
		return nil, fmt.Errorf("%w: %s", sampler.ErrUnknownSlot, slot)
	}
	return alphabet, nil
}

func printPoints(w io.Writer, table *sampler.Table) {
	points := table.Points()
	for _, p := range points {
		_, _ = fmt.Fprintf(
			w,
			"%s  %s  %s\n",
			style.Fg(color.Purple)(p.Key),
			style.Bold(util.Timestamp(p.Time)),
			style.Faint(fmt.Sprintf("%.0fs", p.Time)),
		)
	}
	_, _ = fmt.Fprintln(w, style.Faint(util.Quantify(len(points), "point", "points")))
}
