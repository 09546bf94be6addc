// Package icon renders UI symbols in the variant chosen by the icons.variant setting.
package icon

import (
	"github.com/geniuskouta/nakano-yt-2000/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	squares = "squares"
)

// AvailableVariants returns every supported icon style identifier.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, squares}
}

// Icon identifies a symbol in the registry.
type Icon int

const (
	Fail Icon = iota
	Success
	Playing
	Paused
	Loading
	Warn
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	squares string
}

func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case squares:
		return d.squares
	default:
		return ""
	}
}

var icons = map[Icon]*iconDef{
	Fail:    {emoji: "💥", nerd: "\uf00d", plain: "X", squares: "🟥"},
	Success: {emoji: "🎉", nerd: "\uf00c", plain: "+", squares: "🟩"},
	Playing: {emoji: "▶️", nerd: "\uf04b", plain: ">", squares: "🟦"},
	Paused:  {emoji: "⏸️", nerd: "\uf04c", plain: "=", squares: "🟨"},
	Loading: {emoji: "⏳", nerd: "\uf252", plain: "~", squares: "⬜"},
	Warn:    {emoji: "⚠️", nerd: "\uf071", plain: "!", squares: "🟧"},
}

// Get returns the rendered string for an Icon in the configured variant.
func Get(i Icon) string {
	return icons[i].Get()
}
