package sim

import (
	"strings"
	"testing"
)

func headOnConfig() Config {
	return Config{
		ArenaWidth:    800,
		ArenaHeight:   400,
		LeftSize:      60,
		LeftMaterial:  Elastic,
		RightSize:     60,
		RightMaterial: Elastic,
		Tuning:        DefaultTuning(),
	}
}

func TestNewWorldRejectsInvalidConfig(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"zero_left_size", func(c *Config) { c.LeftSize = 0 }, "size must be positive"},
		{"negative_right_size", func(c *Config) { c.RightSize = -10 }, "size must be positive"},
		{"unknown_material", func(c *Config) { c.RightMaterial = Material(42) }, "unknown material"},
		{"arena_smaller_than_body", func(c *Config) { c.ArenaWidth = 50 }, "cannot contain"},
		{"arena_height_smaller_than_body", func(c *Config) { c.ArenaHeight = 60 }, "cannot contain"},
		{"zero_arena", func(c *Config) { c.ArenaWidth = 0 }, "invalid arena"},
		{"bad_mass_scale", func(c *Config) { c.Tuning.MassScale = 0 }, "invalid tuning"},
		{"spawn_overlap", func(c *Config) { c.ArenaWidth = 110; c.Tuning.SpawnInset = 10 }, "overlap at spawn"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := headOnConfig()
			c.mutate(&cfg)
			_, err := NewWorld(cfg)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), c.wantErr) {
				t.Fatalf("error %q does not mention %q", err, c.wantErr)
			}
		})
	}
}

func TestNewWorldSpawnsInsideArena(t *testing.T) {
	w, err := NewWorld(headOnConfig())
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}

	width, height := w.Bounds()
	for _, b := range []*Body{w.Left(), w.Right()} {
		bb := b.BB()
		if bb.L < 0 || bb.R > width || bb.B < 0 || bb.T > height {
			t.Fatalf("body %s spawned outside arena: %v", b.Name, bb)
		}
		if b.Vel.Y != 0 {
			t.Fatalf("body %s has vertical launch velocity", b.Name)
		}
	}
	if w.Left().Vel.X != -w.Right().Vel.X {
		t.Fatalf("launch speeds not equal and opposite: %v vs %v", w.Left().Vel.X, w.Right().Vel.X)
	}
}

// Two equal Elastic size-60 bodies launched at ±25 in an 800×400 arena must
// exchange velocities scaled by e = 0.9, both squish for the configured
// duration, then return to Normal at the original size.
func TestHeadOnElasticScenario(t *testing.T) {
	cfg := headOnConfig()
	// Short squish so it reverts before either body reaches a wall and
	// squishes again.
	cfg.Tuning.SquishTicks = 10

	w, err := NewWorld(cfg)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}

	collided := -1
	for i := 0; i < 100; i++ {
		w.Step()
		if w.Left().Vel.X < 0 {
			collided = i
			break
		}
	}
	if collided < 0 {
		t.Fatalf("bodies never collided")
	}

	if !approxEqual(w.Left().Vel.X, -22.5) || !approxEqual(w.Right().Vel.X, 22.5) {
		t.Fatalf("post-collision velocities = %v, %v, want -22.5, 22.5",
			w.Left().Vel.X, w.Right().Vel.X)
	}
	leftSpeed, rightSpeed := w.Speeds()
	if !approxEqual(leftSpeed, 22.5) || !approxEqual(rightSpeed, 22.5) {
		t.Fatalf("telemetry = %v, %v, want 22.5, 22.5", leftSpeed, rightSpeed)
	}

	if w.Left().Deform() != Squished || w.Right().Deform() != Squished {
		t.Fatalf("elastic bodies should be squished right after the collision")
	}

	for i := 0; i < cfg.Tuning.SquishTicks; i++ {
		w.Step()
	}
	if w.Left().Deform() != Normal || w.Right().Deform() != Normal {
		t.Fatalf("squish did not revert")
	}
	if lw, lh := w.Left().RenderSize(); lw != 60 || lh != 60 {
		t.Fatalf("left body render size after revert = %vx%v, want 60x60", lw, lh)
	}
}

// A size-150 Metal body against a size-30 Wood body must resolve with the
// minimum restitution of the pair, not an average.
func TestMetalVsWoodUsesMinimumRestitution(t *testing.T) {
	cfg := headOnConfig()
	cfg.LeftSize = 150
	cfg.LeftMaterial = Metal
	cfg.RightSize = 30
	cfg.RightMaterial = Wood
	cfg.ArenaHeight = 400

	w, err := NewWorld(cfg)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}

	var approach float64
	collided := false
	for i := 0; i < 100; i++ {
		approach = w.Left().Vel.X - w.Right().Vel.X
		w.Step()
		if w.Right().Vel.X > 0 {
			collided = true
			break
		}
	}
	if !collided {
		t.Fatalf("bodies never collided")
	}

	separation := w.Right().Vel.X - w.Left().Vel.X
	want := Metal.Restitution() * approach
	if !approxEqual(separation, want) {
		t.Fatalf("separation speed = %v, want e_min*approach = %v", separation, want)
	}

	m1, m2 := w.Left().Mass, w.Right().Mass
	momentum := m1*w.Left().Vel.X + m2*w.Right().Vel.X
	if !approxEqual(momentum, m1*25+m2*(-25)) {
		t.Fatalf("momentum not conserved: %v", momentum)
	}

	if w.Left().Deform() != Normal || w.Right().Deform() != Normal {
		t.Fatalf("non-elastic bodies must not squish")
	}
}

func TestStopFreezesWorld(t *testing.T) {
	w, err := NewWorld(headOnConfig())
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}

	// Run until the collision so both bodies carry an active squish timer.
	for i := 0; i < 100 && w.Left().Deform() != Squished; i++ {
		w.Step()
	}
	if w.Left().Deform() != Squished {
		t.Fatalf("no squish to interrupt")
	}

	w.Stop()
	if !w.Stopped() {
		t.Fatalf("Stopped() = false after Stop")
	}

	leftMut := w.Left().Mutations()
	rightMut := w.Right().Mutations()
	pos := w.Left().Pos

	// The pending squish reversal is a deadline inside Step; once stopped it
	// must never fire, no matter how often the loop keeps calling Step.
	for i := 0; i < 200; i++ {
		w.Step()
	}

	if w.Left().Mutations() != leftMut || w.Right().Mutations() != rightMut {
		t.Fatalf("stopped world mutated a body")
	}
	if w.Left().Deform() != Squished {
		t.Fatalf("squish reverted after stop")
	}
	if w.Left().Pos != pos {
		t.Fatalf("body moved after stop")
	}

	w.Stop() // idempotent
}

func TestStepKeepsBodiesInsideArena(t *testing.T) {
	cfg := headOnConfig()
	cfg.LeftMaterial = Metal
	cfg.RightMaterial = Wood

	w, err := NewWorld(cfg)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}

	width, height := w.Bounds()
	for i := 0; i < 2000; i++ {
		w.Step()
		for _, b := range []*Body{w.Left(), w.Right()} {
			bb := b.BB()
			if bb.R < 0 || bb.L > width || bb.T < 0 || bb.B > height {
				t.Fatalf("tick %d: body %s escaped the arena: %v", i, b.Name, bb)
			}
		}
	}
	if w.Tick() != 2000 {
		t.Fatalf("tick counter = %d, want 2000", w.Tick())
	}
}
