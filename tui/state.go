package tui

type state int

const (
	decksState state = iota
	promptState
	errorState
)
