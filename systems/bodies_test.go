package systems

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/flurry/components"
	"github.com/pthm-cable/flurry/config"
	"github.com/pthm-cable/flurry/motion"
)

// Bodies must satisfy both the scene interface and the smoke engine's view.
var (
	_ components.Body = (*Star)(nil)
	_ components.Body = (*Spark)(nil)
	_ Attractor       = (*Star)(nil)
)

func TestSparkMysteriesEvenlySpaced(t *testing.T) {
	m := SparkMysteries(12)
	if len(m) != 12 {
		t.Fatalf("got %d mysteries, want 12", len(m))
	}

	step := 1800.0 / 13
	for i, v := range m {
		want := 1800 * float64(i+1) / 13
		if math.Abs(v-want) > 1e-9 {
			t.Errorf("mystery[%d] = %v, want %v", i, v, want)
		}
		if i > 0 {
			if v <= m[i-1] {
				t.Errorf("mystery[%d] = %v not above %v", i, v, m[i-1])
			}
			if math.Abs(v-m[i-1]-step) > 1e-9 {
				t.Errorf("gap %d = %v, want %v", i, v-m[i-1], step)
			}
		}
	}
	if m[0] <= 0 || m[11] >= motion.BigMystery {
		t.Errorf("mysteries %v should lie strictly inside (0, %v)", m, motion.BigMystery)
	}
}

func TestStarGoldenTrajectory(t *testing.T) {
	cfg := config.Cfg()
	star := NewStarWith(5.0, 0.65, cfg.Star, PaletteFor(cfg))

	want := []r3.Vec{
		{X: 278.7621417194, Y: 134.9278903075, Z: 235.3006463821},
		{X: 260.7290367640, Y: 179.4366290418, Z: 90.5662877065},
		{X: 240.6223087277, Y: 222.2862456554, Z: -108.3698942457},
	}
	for i, w := range want {
		star.Update(1, float64(i))
		if d := r3.Norm(r3.Sub(star.Position(), w)); d > 1e-4 {
			t.Errorf("t=%d: star at %v, want %v", i, star.Position(), w)
		}
	}
}

func TestNewStarDrawsIdentity(t *testing.T) {
	cfg := config.Cfg()
	ctx := NewContext(99)
	for range 100 {
		s := NewStar(ctx, cfg.Star, PaletteFor(cfg))
		if s.RotSpeed() < 0.4 || s.RotSpeed() >= 0.9 {
			t.Fatalf("rot speed %v outside [0.4, 0.9)", s.RotSpeed())
		}
		if s.Mystery() < 0 || s.Mystery() >= 10 {
			t.Fatalf("mystery %v outside [0, 10)", s.Mystery())
		}
	}
}

func TestStarUpdateTouchesOnlyItself(t *testing.T) {
	cfg := config.Cfg()
	ctx := NewContext(3)
	star := NewStar(ctx, cfg.Star, PaletteFor(cfg))
	sparks := NewSparks(ctx, 4, cfg.Spark, PaletteFor(cfg))

	before := make([]r3.Vec, len(sparks))
	for i, s := range sparks {
		before[i] = s.Position()
	}
	star.Update(0.1, 12)
	for i, s := range sparks {
		if s.Position() != before[i] {
			t.Errorf("spark %d moved when the star updated", i)
		}
	}
}

func TestSparkVelocityFiniteDifference(t *testing.T) {
	cfg := config.Cfg()
	s := NewSpark(NewContext(1), 900, cfg.Spark, PaletteFor(cfg))

	s.Update(0.1, 1.0)
	if s.Velocity() != (r3.Vec{}) {
		t.Errorf("first update velocity = %v, want zero", s.Velocity())
	}
	p0 := s.Position()

	s.Update(0.1, 1.1)
	want := r3.Scale(10, r3.Sub(s.Position(), p0))
	if d := r3.Norm(r3.Sub(s.Velocity(), want)); d > 1e-9 {
		t.Errorf("velocity = %v, want %v", s.Velocity(), want)
	}

	s.Update(0, 1.1)
	if s.Velocity() != (r3.Vec{}) {
		t.Errorf("zero-dt velocity = %v, want zero", s.Velocity())
	}
}

func TestSparkFollowsGenerator(t *testing.T) {
	cfg := config.Cfg()
	pal := PaletteFor(cfg)
	s := NewSpark(NewContext(1), 500, cfg.Spark, pal)
	s.Update(0.1, 7.5)

	orbit := motion.Orbit{
		AngularSpeed: motion.AngularSpeed(cfg.Spark.FieldSpeed, 1),
		Radius:       cfg.Spark.Radius,
		Bias:         cfg.Spark.Bias,
		Depth:        cfg.Spark.Depth,
		Chain:        motion.ChainMatrix,
	}
	if got, want := s.Position(), motion.Position(7.5, 500, orbit); got != want {
		t.Errorf("position = %v, want %v", got, want)
	}
	if got, want := s.Color(), motion.Color(7.5, 500, orbit, pal); got != want {
		t.Errorf("color = %v, want %v", got, want)
	}
}

func TestContextBellRange(t *testing.T) {
	ctx := NewContext(5)
	var sum float64
	const n = 20000
	for range n {
		v := ctx.Bell(0.5)
		if v < -0.5 || v > 0.5 {
			t.Fatalf("Bell(0.5) = %v outside [-0.5, 0.5]", v)
		}
		sum += v
	}
	if mean := sum / n; math.Abs(mean) > 0.01 {
		t.Errorf("Bell mean = %v, want ~0", mean)
	}
}
