package termview

import "github.com/gdamore/tcell/v2"

// Command is a user action decoded from a terminal event.
type Command int

const (
	CmdNone Command = iota
	CmdMoreStreams
	CmdFewerStreams
	CmdToggleStar
	CmdToggleSparks
	CmdToggleOrtho
	CmdTogglePause
	CmdResize
	CmdQuit
)

// Translate maps a tcell event to a command.
func Translate(ev tcell.Event) Command {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return CmdQuit
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return CmdQuit
			case '+', '=':
				return CmdMoreStreams
			case '-', '_':
				return CmdFewerStreams
			case 's', 'S':
				return CmdToggleStar
			case 'p', 'P':
				return CmdToggleSparks
			case 'o', 'O':
				return CmdToggleOrtho
			case ' ':
				return CmdTogglePause
			}
		}
	case *tcell.EventResize:
		return CmdResize
	}
	return CmdNone
}

// PollEvents forwards screen events to out until the screen is finalised.
// Run it on its own goroutine; the frame loop consumes out.
func PollEvents(screen tcell.Screen, out chan<- tcell.Event) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		out <- ev
	}
}
