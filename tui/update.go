package tui

import (
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// Notices and their delayed clears
	if uiCmd := b.notifier.Update(msg); uiCmd != nil {
		cmd = uiCmd
	}

	switch msg := msg.(type) {
	case error:
		b.raiseError(msg)
		return b, cmd
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		return b, cmd
	case spinner.TickMsg:
		var tick tea.Cmd
		b.spinnerC, tick = b.spinnerC.Update(msg)
		return b, tea.Batch(cmd, tick)
	case launchedMsg:
		return b, tea.Batch(cmd, b.onLaunched(msg))
	case pollMsg:
		return b, tea.Batch(cmd, b.onPoll(msg))
	case exitedMsg:
		return b, tea.Batch(cmd, b.onExited(msg))
	case keyUpMsg:
		b.onKeyUp(msg)
		return b, cmd
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			b.closeAll()
			return b, tea.Quit
		}
	}

	var next tea.Cmd
	switch b.state {
	case decksState:
		next = b.updateDecks(msg)
	case promptState:
		next = b.updatePrompt(msg)
	case errorState:
		next = b.updateError(msg)
	}

	return b, tea.Batch(cmd, next)
}

func (b *statefulBubble) updateDecks(msg tea.Msg) tea.Cmd {
	if mouse, ok := msg.(tea.MouseMsg); ok {
		return b.click(mouse)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch {
	case bubblesKey.Matches(keyMsg, b.keymap.openPrompt):
		return b.openPrompt()
	case bubblesKey.Matches(keyMsg, b.keymap.share):
		return b.share()
	case bubblesKey.Matches(keyMsg, b.keymap.nudgeBack):
		b.nudge(-b.step)
	case bubblesKey.Matches(keyMsg, b.keymap.nudgeForward):
		b.nudge(b.step)
	case bubblesKey.Matches(keyMsg, b.keymap.coarseBack):
		b.nudge(-b.coarse)
	case bubblesKey.Matches(keyMsg, b.keymap.coarseForward):
		b.nudge(b.coarse)
	case bubblesKey.Matches(keyMsg, b.keymap.commit):
		return b.commit()
	default:
		return b.press(keyMsg)
	}

	return nil
}

func (b *statefulBubble) updatePrompt(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.back):
			b.closePrompt()
			return nil
		case bubblesKey.Matches(msg, b.keymap.nextSlot):
			if len(b.decks) > 0 {
				b.promptSlot = (b.promptSlot + 1) % len(b.decks)
			}
			return nil
		case bubblesKey.Matches(msg, b.keymap.confirm):
			return b.submitPrompt()
		}
	}

	var cmd tea.Cmd
	b.inputC, cmd = b.inputC.Update(msg)
	return cmd
}

func (b *statefulBubble) updateError(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && bubblesKey.Matches(msg, b.keymap.back) {
		b.lastError = nil
		b.setState(decksState)
	}
	return nil
}
