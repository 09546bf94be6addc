// Package tui provides the sampler decks terminal user interface.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Options encapsulates the runtime configuration for the terminal user interface.
type Options struct {
	// URLs are loaded into the decks in order.
	URLs []string
	// Continue reopens the videos of the previous session first.
	Continue bool
}

// Run initializes and executes the Bubble Tea application loop.
// Every player started during the run is closed before it returns.
func Run(options *Options) error {
	bubble, err := newBubble(options)
	if err != nil {
		return err
	}
	defer bubble.closeAll()

	if err := bubble.assign(); err != nil {
		return err
	}

	_, err = tea.NewProgram(bubble, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}
