package sim

// deformController runs the per-body squish state machine. It is driven
// entirely from within Step, so a squish can never revert after the world has
// been stopped; there is no free-running timer to cancel.
type deformController struct {
	durationTicks int
	scaleX        float64
	scaleY        float64
}

// apply consumes this tick's collision events, then counts down active
// squishes. Only Elastic bodies squish. A collision while already squished
// restarts the timer; the scale factors are fixed, so repeated restarts never
// compound the distortion.
func (d *deformController) apply(events []CollisionEvent, bodies []*Body) {
	for _, evt := range events {
		b := evt.Body
		if b == nil || b.Static || b.Material != Elastic {
			continue
		}
		b.deform = Squished
		b.deformTicks = d.durationTicks
		b.deformScaleX = d.scaleX
		b.deformScaleY = d.scaleY
		b.touch()
	}

	for _, b := range bodies {
		if b.deform != Squished {
			continue
		}
		b.deformTicks--
		if b.deformTicks <= 0 {
			b.deform = Normal
			b.deformTicks = 0
			b.deformScaleX = 1
			b.deformScaleY = 1
		}
		b.touch()
	}
}
