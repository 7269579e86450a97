package termview

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/flurry/components"
	"github.com/pthm-cable/flurry/config"
)

func TestCanvasSplatAdditive(t *testing.T) {
	c := NewCanvas(4, 3)
	red := components.Color{R: 1, A: 0.5}

	c.Splat(1, 2, red, 1)
	c.Splat(1, 2, red, 1)
	c.Splat(-1, 0, red, 1) // outside
	c.Splat(4, 0, red, 1)  // outside

	if got := c.Light(1, 2).R; got != 1 {
		t.Errorf("accumulated red = %v, want 1", got)
	}
	if got := c.Light(0, 0).R; got != 0 {
		t.Errorf("untouched cell red = %v, want 0", got)
	}

	c.Clear()
	if got := c.Light(1, 2).R; got != 0 {
		t.Errorf("red after clear = %v", got)
	}
}

func TestCanvasGlyphRamp(t *testing.T) {
	c := NewCanvas(3, 1)
	c.Splat(1, 0, components.White, 0.05)
	c.Splat(2, 0, components.White, 50)

	tests := []struct {
		name string
		x    int
		want rune
	}{
		{"dark", 0, ' '},
		{"dim", 1, '.'},
		{"bright", 2, '@'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if r, _ := c.Glyph(tt.x, 0); r != tt.want {
				t.Errorf("Glyph(%d) = %q, want %q", tt.x, r, tt.want)
			}
		})
	}
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		ev   tcell.Event
		want Command
	}{
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), CmdQuit},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), CmdQuit},
		{"plus", tcell.NewEventKey(tcell.KeyRune, '+', tcell.ModNone), CmdMoreStreams},
		{"minus", tcell.NewEventKey(tcell.KeyRune, '-', tcell.ModNone), CmdFewerStreams},
		{"star", tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), CmdToggleStar},
		{"sparks", tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), CmdToggleSparks},
		{"ortho", tcell.NewEventKey(tcell.KeyRune, 'o', tcell.ModNone), CmdToggleOrtho},
		{"pause", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), CmdTogglePause},
		{"other", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), CmdNone},
		{"resize", tcell.NewEventResize(100, 40), CmdResize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Translate(tt.ev); got != tt.want {
				t.Errorf("Translate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestViewDrawsProjectedParticle(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(80, 24)

	v := NewView(screen, config.CameraConfig{EyeZ: 1000, Fovy: 45, Near: 0.1, Far: 10000, OrthoHeight: 1000})

	// The origin projects onto the centre of the screen.
	particles := []components.ParticleView{
		{Position: r3.Vec{}, Color: components.White},
		{Position: r3.Vec{Z: 5000}, Color: components.White}, // behind the camera
	}
	v.Draw(particles, nil, "status")

	if got := v.Canvas().Light(40, 12).R; got <= 0 {
		t.Errorf("centre cell light = %v, want > 0", got)
	}

	lit := 0
	for y := range v.Canvas().H {
		for x := range v.Canvas().W {
			if v.Canvas().Light(x, y).R > 0 {
				lit++
			}
		}
	}
	if lit != 1 {
		t.Errorf("lit cells = %d, want 1", lit)
	}

	r, _, _, _ := screen.GetContent(0, 23)
	if r != 's' {
		t.Errorf("status line starts with %q, want 's'", r)
	}
}
