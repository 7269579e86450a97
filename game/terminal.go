package game

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/flurry/termview"
	"github.com/pthm-cable/flurry/ui"
)

// RunTerminal drives the simulation on a terminal screen at fps frames per second
// until the user quits or maxFrames frames have run (0 = no limit). The screen must
// be initialised; the caller finalises it.
func (g *Game) RunTerminal(screen tcell.Screen, fps, maxFrames int) error {
	if fps <= 0 {
		return fmt.Errorf("terminal fps must be positive, got %d", fps)
	}

	view := termview.NewView(screen, g.cfg.Camera)
	view.Camera().SetOrtho(g.toggles.IsEnabled(ui.ToggleOrtho))

	events := make(chan tcell.Event, 64)
	go termview.PollEvents(screen, events)

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev := <-events:
			switch termview.Translate(ev) {
			case termview.CmdQuit:
				return nil
			case termview.CmdMoreStreams:
				g.SetStreams(g.Streams() + 1)
			case termview.CmdFewerStreams:
				g.SetStreams(g.Streams() - 1)
			case termview.CmdToggleStar:
				g.toggles.Toggle(ui.ToggleStar)
			case termview.CmdToggleSparks:
				g.toggles.Toggle(ui.ToggleSparks)
			case termview.CmdToggleOrtho:
				view.Camera().SetOrtho(g.toggles.Toggle(ui.ToggleOrtho))
			case termview.CmdTogglePause:
				g.paused = !g.paused
			case termview.CmdResize:
				screen.Sync()
				view.Resize()
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			g.runFrame(dt, func() {
				view.Draw(g.Snapshot(), g.VisibleBodies(), g.statusLine())
			})
			if maxFrames > 0 && g.frame >= maxFrames {
				return nil
			}
		}
	}
}

// statusLine summarises the scene for the terminal's bottom row.
func (g *Game) statusLine() string {
	s := fmt.Sprintf(" flurry  t=%.1fs  particles=%d  streams=%d  [+/-] streams [s]tar s[p]arks [o]rtho [space] pause [q]uit",
		g.simTime, g.smoke.LiveCount(), g.smoke.NumStreams())
	if g.paused {
		s = " PAUSED" + s
	}
	return s
}
