package sim

// separationSlop is the extra distance bodies are pushed apart beyond the
// measured overlap, so a resolved pair is not overlapping again next tick.
const separationSlop = 0.01

// resolveContact updates velocities for one contact and pushes the bodies
// apart. It emits a collision event for every dynamic body involved so the
// deformation controller can react.
func resolveContact(c Contact, events *EventQueue) {
	// Relative velocity of A with respect to B along the contact normal.
	// Positive means approaching; a pair already separating (typically a
	// touching pair left over from last tick's correction) is not re-resolved.
	rel := c.A.Vel.Sub(c.B.Vel)
	approach := rel.Dot(c.Normal)
	if approach <= 0 {
		return
	}

	if c.B.Static {
		resolveWall(c)
	} else {
		resolveDynamic(c)
	}
	separate(c)

	events.Push(CollisionEvent{Body: c.A, Other: c.B})
	if !c.B.Static {
		events.Push(CollisionEvent{Body: c.B, Other: c.A})
	}
}

// resolveWall reflects A's velocity component along the normal. The wall's
// restitution is fixed at 1.0 and is not blended with A's material, so the
// speed magnitude is preserved.
func resolveWall(c Contact) {
	e := c.B.Restitution()
	vn := c.A.Vel.Dot(c.Normal)
	c.A.Vel = c.A.Vel.Add(c.Normal.Mult(-(1 + e) * vn))
	c.A.touch()
}

// resolveDynamic applies the standard two-body momentum/restitution solution
// along the contact axis. Components orthogonal to the axis are untouched.
func resolveDynamic(c Contact) {
	a, b := c.A, c.B
	if a.Mass <= 0 || b.Mass <= 0 {
		panic("sim: dynamic body with non-positive mass in collision")
	}

	e := min(a.Restitution(), b.Restitution())
	m1, m2 := a.Mass, b.Mass
	v1 := a.Vel.Dot(c.Normal)
	v2 := b.Vel.Dot(c.Normal)

	v1p := ((m1-e*m2)*v1 + (1+e)*m2*v2) / (m1 + m2)
	v2p := ((m2-e*m1)*v2 + (1+e)*m1*v1) / (m1 + m2)

	a.Vel = a.Vel.Add(c.Normal.Mult(v1p - v1))
	b.Vel = b.Vel.Add(c.Normal.Mult(v2p - v2))
	a.touch()
	b.touch()
}

// separate nudges the bodies apart along the normal so the overlap does not
// persist into the next tick and retrigger the same contact. Walls never
// move; a dynamic pair splits the correction evenly.
func separate(c Contact) {
	push := c.Depth + separationSlop
	if c.B.Static {
		c.A.Pos = c.A.Pos.Add(c.Normal.Mult(-push))
		c.A.touch()
		return
	}
	c.A.Pos = c.A.Pos.Add(c.Normal.Mult(-push / 2))
	c.B.Pos = c.B.Pos.Add(c.Normal.Mult(push / 2))
	c.A.touch()
	c.B.touch()
}
