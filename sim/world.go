package sim

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
)

// Tuning holds the arbitrary constants the original demo was tuned with.
// They are configuration, not physics: see prefabs/world.yaml.
type Tuning struct {
	// MassScale divides size² to derive a body's mass.
	MassScale float64
	// LaunchSpeed is the initial horizontal speed of both bodies, units/tick.
	LaunchSpeed float64
	// WallThickness must exceed the fastest body's per-tick travel so a body
	// cannot fully cross a wall between two collision checks.
	WallThickness float64
	// SpawnInset is the preferred distance from a side wall to a body's
	// center at spawn. It is widened as needed to keep the body inside.
	SpawnInset float64

	SquishTicks  int
	SquishScaleX float64
	SquishScaleY float64
}

// DefaultTuning mirrors the constants of the original demo.
func DefaultTuning() Tuning {
	return Tuning{
		MassScale:     100,
		LaunchSpeed:   25,
		WallThickness: 50,
		SpawnInset:    100,
		SquishTicks:   30,
		SquishScaleX:  1.3,
		SquishScaleY:  0.7,
	}
}

// Config is everything a World needs at construction. It is read once; a
// running World never consults it again.
type Config struct {
	ArenaWidth  float64
	ArenaHeight float64

	LeftSize      float64
	LeftMaterial  Material
	RightSize     float64
	RightMaterial Material

	Tuning Tuning
}

// World owns the two dynamic bodies and the arena for one run. It is built by
// NewWorld, advanced by Step, and permanently frozen by Stop.
type World struct {
	left, right *Body
	walls       [4]*Body

	width, height float64

	events EventQueue
	deform deformController

	tick    int
	stopped bool
}

// NewWorld validates the configuration and builds a world with both bodies
// spawned at symmetric insets, launched toward each other. Invalid sizes,
// materials, or an arena too small to hold the bodies are configuration
// errors, reported rather than clamped.
func NewWorld(cfg Config) (*World, error) {
	t := cfg.Tuning
	if t.MassScale <= 0 || t.LaunchSpeed < 0 || t.WallThickness <= 0 {
		return nil, fmt.Errorf("sim: invalid tuning: mass_scale=%v launch_speed=%v wall_thickness=%v",
			t.MassScale, t.LaunchSpeed, t.WallThickness)
	}
	if cfg.ArenaWidth <= 0 || cfg.ArenaHeight <= 0 {
		return nil, fmt.Errorf("sim: invalid arena %vx%v", cfg.ArenaWidth, cfg.ArenaHeight)
	}

	left, err := newDynamicBody("left", cfg.LeftSize, cfg.LeftMaterial, t.MassScale)
	if err != nil {
		return nil, err
	}
	right, err := newDynamicBody("right", cfg.RightSize, cfg.RightMaterial, t.MassScale)
	if err != nil {
		return nil, err
	}

	for _, b := range []*Body{left, right} {
		if cfg.ArenaWidth <= b.Size() || cfg.ArenaHeight <= b.Size() {
			return nil, fmt.Errorf("sim: arena %vx%v cannot contain body %s of size %v",
				cfg.ArenaWidth, cfg.ArenaHeight, b.Name, b.Size())
		}
	}

	// Spawn inset by at least half the body size from every wall.
	leftX := math.Max(t.SpawnInset, left.Size()/2)
	rightX := cfg.ArenaWidth - math.Max(t.SpawnInset, right.Size()/2)
	midY := cfg.ArenaHeight / 2

	left.Pos = cp.Vector{X: leftX, Y: midY}
	right.Pos = cp.Vector{X: rightX, Y: midY}
	left.Vel = cp.Vector{X: t.LaunchSpeed}
	right.Vel = cp.Vector{X: -t.LaunchSpeed}

	if left.BB().Intersects(right.BB()) {
		return nil, fmt.Errorf("sim: arena %vx%v too small: bodies overlap at spawn", cfg.ArenaWidth, cfg.ArenaHeight)
	}

	return &World{
		left:   left,
		right:  right,
		walls:  buildArena(cfg.ArenaWidth, cfg.ArenaHeight, t.WallThickness),
		width:  cfg.ArenaWidth,
		height: cfg.ArenaHeight,
		deform: deformController{
			durationTicks: t.SquishTicks,
			scaleX:        t.SquishScaleX,
			scaleY:        t.SquishScaleY,
		},
	}, nil
}

// Step advances the simulation one tick: integrate, detect, resolve, then
// run the deformation timers. Everything happens synchronously on the
// caller's goroutine; after Stop it is a no-op, so no deferred squish
// reversal can ever touch a torn-down world.
func (w *World) Step() {
	if w == nil || w.stopped {
		return
	}

	for _, b := range []*Body{w.left, w.right} {
		b.Pos = b.Pos.Add(b.Vel)
		b.touch()
	}

	for _, c := range detectContacts(w.left, w.right, w.walls) {
		resolveContact(c, &w.events)
	}

	w.deform.apply(w.events.Drain(), []*Body{w.left, w.right})
	w.tick++
}

// Stop freezes the world. Idempotent; safe on nil.
func (w *World) Stop() {
	if w == nil {
		return
	}
	w.stopped = true
	w.events.flush()
}

// Stopped reports whether Stop has been called.
func (w *World) Stopped() bool {
	return w != nil && w.stopped
}

// Speeds returns the tick's telemetry: absolute horizontal speed of each
// dynamic body.
func (w *World) Speeds() (left, right float64) {
	return math.Abs(w.left.Vel.X), math.Abs(w.right.Vel.X)
}

// Left returns the left dynamic body.
func (w *World) Left() *Body { return w.left }

// Right returns the right dynamic body.
func (w *World) Right() *Body { return w.right }

// Walls returns the four arena walls.
func (w *World) Walls() [4]*Body { return w.walls }

// Bounds returns the arena interior dimensions.
func (w *World) Bounds() (width, height float64) {
	return w.width, w.height
}

// Tick returns how many steps have run.
func (w *World) Tick() int {
	if w == nil {
		return 0
	}
	return w.tick
}
