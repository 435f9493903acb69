package sim

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestResolveDynamicMomentumAndRestitution(t *testing.T) {
	cases := []struct {
		name     string
		sizeA    float64
		matA     Material
		v1       float64
		sizeB    float64
		matB     Material
		v2       float64
		wantEeff float64
	}{
		{"equal_elastic_head_on", 60, Elastic, 25, 60, Elastic, -25, 0.9},
		{"metal_vs_wood_min_pairing", 150, Metal, 25, 30, Wood, -25, 0.2},
		{"wood_vs_plastic", 80, Wood, 10, 40, Plastic, -30, 0.5},
		{"overtaking_same_direction", 60, Elastic, 30, 90, Metal, 5, 0.2},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := dynBody(t, "a", c.sizeA, 100, 200)
			b := dynBody(t, "b", c.sizeB, 100+c.sizeA/2+c.sizeB/2-5, 200)
			a.Material = c.matA
			b.Material = c.matB
			a.Vel = cp.Vector{X: c.v1}
			b.Vel = cp.Vector{X: c.v2}

			contact, ok := overlap(a, b)
			if !ok {
				t.Fatalf("bodies should overlap")
			}

			m1, m2 := a.Mass, b.Mass
			momentumBefore := m1*c.v1 + m2*c.v2
			approach := c.v1 - c.v2

			var events EventQueue
			resolveContact(contact, &events)

			momentumAfter := m1*a.Vel.X + m2*b.Vel.X
			if !approxEqual(momentumBefore, momentumAfter) {
				t.Fatalf("momentum not conserved: %v -> %v", momentumBefore, momentumAfter)
			}

			separation := b.Vel.X - a.Vel.X
			if !approxEqual(separation, c.wantEeff*approach) {
				t.Fatalf("separation speed = %v, want e*approach = %v", separation, c.wantEeff*approach)
			}

			evts := events.Drain()
			if len(evts) != 2 {
				t.Fatalf("expected a collision event per dynamic body, got %d", len(evts))
			}
		})
	}
}

func TestResolveDynamicEqualMassVelocityExchange(t *testing.T) {
	a := dynBody(t, "a", 60, 100, 200)
	b := dynBody(t, "b", 60, 150, 200)
	a.Material = Elastic
	b.Material = Elastic
	a.Vel = cp.Vector{X: 25}
	b.Vel = cp.Vector{X: -25}

	contact, ok := overlap(a, b)
	if !ok {
		t.Fatalf("bodies should overlap")
	}

	var events EventQueue
	resolveContact(contact, &events)

	if !approxEqual(a.Vel.X, -22.5) || !approxEqual(b.Vel.X, 22.5) {
		t.Fatalf("velocities = %v, %v, want -22.5, 22.5", a.Vel.X, b.Vel.X)
	}
	if a.Vel.Y != 0 || b.Vel.Y != 0 {
		t.Fatalf("vertical components must be untouched")
	}
}

// A fast closing pair can be deeply penetrated by the time the overlap is
// seen, with the small body's vertical span fully inside the big one's. The
// contact must still resolve along the horizontal axis instead of reporting
// the pair as separating and letting it pass through.
func TestResolveDeeplyOverlappingUnequalPair(t *testing.T) {
	a := dynBody(t, "a", 150, 100, 200)
	b := dynBody(t, "b", 30, 150, 200)
	a.Material = Metal
	b.Material = Wood
	a.Vel = cp.Vector{X: 25}
	b.Vel = cp.Vector{X: -25}

	contact, ok := overlap(a, b)
	if !ok {
		t.Fatalf("bodies should overlap")
	}

	var events EventQueue
	resolveContact(contact, &events)

	if a.Vel.X == 25 || b.Vel.X == -25 {
		t.Fatalf("velocities untouched: %v, %v", a.Vel.X, b.Vel.X)
	}
	separation := b.Vel.X - a.Vel.X
	if !approxEqual(separation, Metal.Restitution()*50) {
		t.Fatalf("separation speed = %v, want %v", separation, Metal.Restitution()*50)
	}
	if len(events.Drain()) != 2 {
		t.Fatalf("expected a collision event per body")
	}
}

func TestResolveWallReflection(t *testing.T) {
	walls := buildArena(800, 400, 50)

	cases := []struct {
		name   string
		pos    cp.Vector
		vel    cp.Vector
		want   cp.Vector
		wallIx int // index into buildArena result
	}{
		{"right_wall_flips_vx", cp.Vector{X: 790, Y: 200}, cp.Vector{X: 25, Y: 3}, cp.Vector{X: -25, Y: 3}, 3},
		{"left_wall_flips_vx", cp.Vector{X: 10, Y: 200}, cp.Vector{X: -25, Y: -3}, cp.Vector{X: 25, Y: -3}, 2},
		{"ground_flips_vy", cp.Vector{X: 400, Y: 390}, cp.Vector{X: 4, Y: 25}, cp.Vector{X: 4, Y: -25}, 0},
		{"ceiling_flips_vy", cp.Vector{X: 400, Y: 10}, cp.Vector{X: 4, Y: -25}, cp.Vector{X: 4, Y: 25}, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := dynBody(t, "b", 60, c.pos.X, c.pos.Y)
			b.Material = Metal // wall bounce must ignore the body's material
			b.Vel = c.vel

			contact, ok := overlap(b, walls[c.wallIx])
			if !ok {
				t.Fatalf("body should overlap wall %s", walls[c.wallIx].Name)
			}

			var events EventQueue
			resolveContact(contact, &events)

			if !approxEqual(b.Vel.X, c.want.X) || !approxEqual(b.Vel.Y, c.want.Y) {
				t.Fatalf("velocity = %v, want %v", b.Vel, c.want)
			}
			if !approxEqual(b.Vel.Length(), c.vel.Length()) {
				t.Fatalf("speed changed on a restitution-1.0 wall: %v -> %v", c.vel.Length(), b.Vel.Length())
			}

			evts := events.Drain()
			if len(evts) != 1 {
				t.Fatalf("expected one collision event, got %d", len(evts))
			}
			if evts[0].Body != b {
				t.Fatalf("event should name the dynamic body")
			}
		})
	}
}

func TestResolveSeparatesBodies(t *testing.T) {
	t.Run("dynamic_pair", func(t *testing.T) {
		a := dynBody(t, "a", 60, 100, 200)
		b := dynBody(t, "b", 60, 150, 200)
		a.Vel = cp.Vector{X: 25}
		b.Vel = cp.Vector{X: -25}

		contact, ok := overlap(a, b)
		if !ok {
			t.Fatalf("bodies should overlap")
		}
		var events EventQueue
		resolveContact(contact, &events)

		if c, ok := overlap(a, b); ok && c.Depth > 0 {
			t.Fatalf("overlap persisted after resolution, depth %v", c.Depth)
		}
	})

	t.Run("against_wall", func(t *testing.T) {
		walls := buildArena(800, 400, 50)
		b := dynBody(t, "b", 60, 790, 200)
		b.Vel = cp.Vector{X: 25}

		contact, ok := overlap(b, walls[3])
		if !ok {
			t.Fatalf("body should overlap right wall")
		}
		var events EventQueue
		resolveContact(contact, &events)

		if b.Pos.X > 800-30 {
			t.Fatalf("body not pushed back inside the arena, x=%v", b.Pos.X)
		}
	})
}

func TestResolveSkipsSeparatingPair(t *testing.T) {
	a := dynBody(t, "a", 60, 100, 200)
	b := dynBody(t, "b", 60, 150, 200)
	a.Vel = cp.Vector{X: -5}
	b.Vel = cp.Vector{X: 5}

	contact, ok := overlap(a, b)
	if !ok {
		t.Fatalf("bodies should overlap")
	}
	var events EventQueue
	resolveContact(contact, &events)

	if a.Vel.X != -5 || b.Vel.X != 5 {
		t.Fatalf("separating pair must not be re-resolved")
	}
	if events.Drain() != nil {
		t.Fatalf("separating pair must not emit events")
	}
}
