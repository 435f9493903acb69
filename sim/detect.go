package sim

import "github.com/jakecoffman/cp"

// Contact is one overlapping pair found during a tick. A is always dynamic;
// B is the other body (dynamic or wall). Normal points from A toward B:
// horizontal for the dynamic pair, along the axis of least penetration for
// wall contacts. Depth is the overlap along that axis.
type Contact struct {
	A, B   *Body
	Normal cp.Vector
	Depth  float64
}

// detectContacts tests every candidate pair once: the dynamic pair itself,
// then each dynamic body against each wall. Enumerating unordered pairs
// directly is what keeps a colliding pair from being counted twice in a tick.
func detectContacts(left, right *Body, walls [4]*Body) []Contact {
	var contacts []Contact
	if c, ok := overlap(left, right); ok {
		contacts = append(contacts, c)
	}
	for _, wall := range walls {
		if c, ok := overlap(left, wall); ok {
			contacts = append(contacts, c)
		}
		if c, ok := overlap(right, wall); ok {
			contacts = append(contacts, c)
		}
	}
	return contacts
}

func overlap(a, b *Body) (Contact, bool) {
	abb, bbb := a.BB(), b.BB()
	if !abb.Intersects(bbb) {
		return Contact{}, false
	}

	ox := min(abb.R, bbb.R) - max(abb.L, bbb.L)
	oy := min(abb.T, bbb.T) - max(abb.B, bbb.B)

	// The two dynamic bodies move along the horizontal axis, so their
	// contact axis is horizontal. Least penetration would report a vertical
	// normal once the smaller body's vertical span sits inside the larger
	// one's (oy stays pinned at the smaller extent), and there is no
	// approach velocity along that normal.
	if !b.Static {
		normal := cp.Vector{X: 1}
		if a.Pos.X >= b.Pos.X {
			normal = cp.Vector{X: -1}
		}
		return Contact{A: a, B: b, Normal: normal, Depth: ox}, true
	}

	var normal cp.Vector
	var depth float64
	if ox < oy {
		depth = ox
		if a.Pos.X < b.Pos.X {
			normal = cp.Vector{X: 1}
		} else {
			normal = cp.Vector{X: -1}
		}
	} else {
		depth = oy
		if a.Pos.Y < b.Pos.Y {
			normal = cp.Vector{Y: 1}
		} else {
			normal = cp.Vector{Y: -1}
		}
	}

	return Contact{A: a, B: b, Normal: normal, Depth: depth}, true
}
