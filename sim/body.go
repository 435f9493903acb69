package sim

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

// DeformState tracks the transient squish applied to elastic bodies after a
// collision. It only affects rendered geometry, never the physics extents.
type DeformState int

const (
	Normal DeformState = iota
	Squished
)

func (d DeformState) String() string {
	if d == Squished {
		return "squished"
	}
	return "normal"
}

// Body is one simulation entity: either one of the two dynamic squares or a
// static arena wall.
type Body struct {
	Name string

	Pos cp.Vector // center
	Vel cp.Vector

	// W and H are the physics extents. Dynamic bodies are squares (W == H ==
	// configured size); walls are rectangles built by the arena.
	W, H float64

	Mass     float64
	Material Material
	Static   bool

	// wallRestitution is only meaningful for static bodies.
	wallRestitution float64

	deform       DeformState
	deformTicks  int // remaining ticks while Squished
	deformScaleX float64
	deformScaleY float64

	// mutations counts every write to this body made by the simulation.
	// It exists so callers can observe that a stopped world really is inert.
	mutations int
}

// newDynamicBody builds a square dynamic body. Mass derives from size; it is
// not independently settable.
func newDynamicBody(name string, size float64, mat Material, massScale float64) (*Body, error) {
	if size <= 0 {
		return nil, fmt.Errorf("sim: body %s: size must be positive, got %v", name, size)
	}
	if !mat.Valid() {
		return nil, fmt.Errorf("sim: body %s: unknown material %d", name, int(mat))
	}
	mass := MassOf(size, massScale)
	if mass <= 0 {
		panic(fmt.Sprintf("sim: body %s: derived mass %v is not positive", name, mass))
	}
	return &Body{
		Name:         name,
		W:            size,
		H:            size,
		Mass:         mass,
		Material:     mat,
		deformScaleX: 1,
		deformScaleY: 1,
	}, nil
}

func newWall(name string, x, y, w, h float64) *Body {
	return &Body{
		Name:            name,
		Pos:             cp.Vector{X: x, Y: y},
		W:               w,
		H:               h,
		Static:          true,
		wallRestitution: 1.0,
		deformScaleX:    1,
		deformScaleY:    1,
	}
}

// MassOf derives mass from edge length. The divisor is a tuning constant
// carried over from the original demo, not a physical law.
func MassOf(size, massScale float64) float64 {
	return size * size / massScale
}

// Size returns the physics edge length of a dynamic body.
func (b *Body) Size() float64 {
	return b.W
}

// Restitution returns the coefficient used when this body collides. Walls
// carry a fixed coefficient independent of any material.
func (b *Body) Restitution() float64 {
	if b.Static {
		return b.wallRestitution
	}
	return b.Material.Restitution()
}

// BB returns the axis-aligned bounding box from the current center and the
// physics extents. Deformation never changes this box.
func (b *Body) BB() cp.BB {
	return cp.BB{
		L: b.Pos.X - b.W/2,
		B: b.Pos.Y - b.H/2,
		R: b.Pos.X + b.W/2,
		T: b.Pos.Y + b.H/2,
	}
}

// Deform returns the current deformation state.
func (b *Body) Deform() DeformState {
	return b.deform
}

// RenderSize returns the width and height to draw this body at. While
// squished the physics extents are scaled by the configured factors; once the
// squish expires the original extents come back exactly, because the scale is
// applied here on the fly rather than written into W and H.
func (b *Body) RenderSize() (w, h float64) {
	if b.deform == Squished {
		return b.W * b.deformScaleX, b.H * b.deformScaleY
	}
	return b.W, b.H
}

// Mutations returns how many times the simulation has written to this body.
func (b *Body) Mutations() int {
	return b.mutations
}

func (b *Body) touch() {
	b.mutations++
}
