package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/geniuskouta/nakano-yt-2000/internal/ui"
	"github.com/geniuskouta/nakano-yt-2000/key"
	"github.com/geniuskouta/nakano-yt-2000/log"
	"github.com/geniuskouta/nakano-yt-2000/open"
	"github.com/geniuskouta/nakano-yt-2000/player"
	"github.com/geniuskouta/nakano-yt-2000/sampler"
	"github.com/geniuskouta/nakano-yt-2000/style"
	"github.com/geniuskouta/nakano-yt-2000/util"
	"github.com/geniuskouta/nakano-yt-2000/where"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// deck is the UI side of one slot.
type deck struct {
	slot      sampler.SlotID
	index     int
	videoID   string
	player    deckPlayer
	launching bool
	state     player.State
	err       error
}

// statefulBubble holds the application state: the engine, the decks and the component models.
type statefulBubble struct {
	state  state
	keymap *statefulKeymap

	engine *sampler.Engine
	decks  []*deck
	start  func(slot, videoID string) (deckPlayer, error)
	browse func(url string) error
	queue  []launchedMsg

	held     map[padRef]int
	flashSeq int

	pollInterval time.Duration
	flash        time.Duration
	step, coarse float64

	// components
	spinnerC  spinner.Model
	inputC    textinput.Model
	progressC progress.Model
	helpC     help.Model

	promptSlot int
	lastError  error

	width, height int
	notifier      *ui.Model

	options *Options
}

// raiseError shows err on the error view.
func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.setState(errorState)
}

// setState switches both the view and its keymap.
func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// deck returns the deck of slot.
func (b *statefulBubble) deck(slot sampler.SlotID) (*deck, bool) {
	return lo.Find(b.decks, func(d *deck) bool {
		return d.slot == slot
	})
}

// touchedIndex is the column of the last touched deck, or 0.
func (b *statefulBubble) touchedIndex() int {
	slot, _, ok := b.engine.Touched()
	if !ok {
		return 0
	}
	if d, found := b.deck(slot); found {
		return d.index
	}
	return 0
}

// resize propagates terminal dimension changes to the child component models.
func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()

	b.width = width - x
	b.height = height - y

	b.helpC.Width = b.width
	b.inputC.Width = b.width - lipgloss.Width(b.inputC.Prompt) - 1
	b.progressC.Width = util.Clamp(b.width/2, 10, 60)
}

func (b *statefulBubble) closeAll() {
	for _, d := range b.decks {
		if d.player == nil {
			continue
		}
		if err := d.player.Close(); err != nil {
			log.WithField("slot", d.slot).Warnf("close player: %v", err)
		}
		d.player = nil
	}
}

func millis(k string, fallback time.Duration) time.Duration {
	if ms := viper.GetInt(k); ms > 0 {
		return time.Duration(ms) * time.Millisecond
	}
	return fallback
}

// newBubble builds the engine from the configured deck layout and initializes the UI models.
func newBubble(options *Options) (*statefulBubble, error) {
	layout, err := sampler.NewLayout(
		viper.GetStringSlice(key.SlotsNames),
		viper.GetStringSlice(key.SlotsKeys),
	)
	if err != nil {
		return nil, fmt.Errorf("deck layout: %w", err)
	}

	launcher := player.NewLauncher(player.Options{
		Binary:     viper.GetString(key.PlayerBinary),
		YtdlFormat: viper.GetString(key.PlayerYtdlFormat),
		ExtraArgs:  viper.GetStringSlice(key.PlayerExtraArgs),
		SocketDir:  where.Sockets(),
	})

	bubble := statefulBubble{
		keymap: newStatefulKeymap(layout),
		engine: sampler.New(layout, sampler.WithMaxAttempts(viper.GetInt(key.PollMaxAttempts))),
		start: func(slot, videoID string) (deckPlayer, error) {
			m, err := launcher.Launch(slot, videoID)
			if err != nil {
				return nil, err
			}
			return m, nil
		},

		browse: open.Start,

		held: make(map[padRef]int),

		pollInterval: millis(key.PollIntervalMs, 200*time.Millisecond),
		flash:        millis(key.TUIFlashMs, 150*time.Millisecond),
		step:         viper.GetFloat64(key.SliderStep),
		coarse:       viper.GetFloat64(key.SliderCoarseStep),

		notifier: &ui.Model{},
		options:  options,
	}

	for i, slot := range layout {
		bubble.decks = append(bubble.decks, &deck{
			slot:  slot.ID,
			index: i,
			state: player.Unstarted,
		})
	}

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(style.AccentColor)

	bubble.inputC = textinput.New()
	bubble.inputC.Placeholder = "https://www.youtube.com/watch?v=..."
	bubble.inputC.CharLimit = 200
	bubble.inputC.Prompt = "URL: "

	bubble.progressC = progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	return &bubble, nil
}
