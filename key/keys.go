// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Deck Layout - these keys define which slots exist and the key alphabet bound to each.
const (
	SlotsNames = "slots.names"
	SlotsKeys  = "slots.keys"
)

// Readiness Polling - these keys govern how a freshly loaded video is polled for its duration.
const (
	PollIntervalMs  = "poll.interval_ms"
	PollMaxAttempts = "poll.max_attempts"
)

// Media Playback - these keys configure the external mpv processes driven by each deck.
const (
	PlayerBinary     = "player.binary"
	PlayerYtdlFormat = "player.ytdl_format"
	PlayerExtraArgs  = "player.extra_args"
)

// Point Adjustment - these keys tune the slider that retimes the last triggered pad.
const (
	SliderStep       = "slider.step"
	SliderCoarseStep = "slider.coarse_step"
)

// Terminal User Interface (TUI) - these keys define the interactive environment's behavior.
const (
	TUIFlashMs = "tui.flash_ms"
)

// Session Memory - these keys control whether the videos loaded per deck are remembered.
const (
	SessionRemember = "session.remember"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern the non-TUI application behavior.
const (
	CliColored = "cli.colored"
)
