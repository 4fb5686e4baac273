package ui

import tea "github.com/charmbracelet/bubbletea"

// keyAction is a normalized key event, so views switch on actions instead of
// raw key strings.
type keyAction int

const (
	keyNone keyAction = iota
	keyQuit
	keyUp
	keyDown
	keyPageUp
	keyPageDown
	keyHome
	keyEnd
	keyEnter
	keyEsc
	keyHelp
	keyPause
	keySearch
	keySortNext
	keyResetWindows
	keyIntervalUp
	keyIntervalDown
)

func matchKey(msg tea.KeyMsg) keyAction {
	switch msg.String() {
	case "q", "ctrl+c":
		return keyQuit
	case "up", "k":
		return keyUp
	case "down", "j":
		return keyDown
	case "pgup":
		return keyPageUp
	case "pgdown":
		return keyPageDown
	case "home", "g":
		return keyHome
	case "end", "G":
		return keyEnd
	case "enter":
		return keyEnter
	case "esc":
		return keyEsc
	case "?":
		return keyHelp
	case "p":
		return keyPause
	case "/":
		return keySearch
	case "s":
		return keySortNext
	case "r":
		return keyResetWindows
	case "+", "=":
		return keyIntervalUp
	case "-", "_":
		return keyIntervalDown
	}
	return keyNone
}
