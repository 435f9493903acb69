package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/collider/prefabs"
	"github.com/milk9111/collider/sim"
)

var (
	arenaColor = color.NRGBA{R: 0x12, G: 0x14, B: 0x1a, A: 0xff}
	wallColor  = color.NRGBA{R: 0x3a, G: 0x3f, B: 0x4d, A: 0xff}
	bodyColor  = color.NRGBA{R: 0xd0, G: 0xd0, B: 0xd0, A: 0xff}
)

// arenaOffset centers the arena interior in the window.
func (g *Game) arenaOffset() (float32, float32) {
	return float32(baseWidth-g.spec.ArenaWidth) / 2, float32(baseHeight-g.spec.ArenaHeight) / 2
}

func (g *Game) drawArena(screen *ebiten.Image) {
	ox, oy := g.arenaOffset()
	aw, ah := float32(g.spec.ArenaWidth), float32(g.spec.ArenaHeight)

	vector.FillRect(screen, ox, oy, aw, ah, arenaColor, false)
	vector.StrokeRect(screen, ox, oy, aw, ah, 2, wallColor, false)

	if g.world == nil {
		return
	}

	for _, w := range g.world.Walls() {
		bb := w.BB()
		vector.FillRect(screen, ox+float32(bb.L), oy+float32(bb.B),
			float32(bb.R-bb.L), float32(bb.T-bb.B), wallColor, false)
	}

	g.drawBody(screen, g.world.Left(), g.leftSpec)
	g.drawBody(screen, g.world.Right(), g.rightSpec)
}

// drawBody draws a dynamic body at its render size, which differs from the
// physics size only while the body is squished.
func (g *Game) drawBody(screen *ebiten.Image, b *sim.Body, spec *prefabs.BodySpec) {
	ox, oy := g.arenaOffset()

	var c color.Color = bodyColor
	if spec != nil && spec.Color != nil && spec.Color.Color != nil {
		c = spec.Color.Color
	}

	w, h := b.RenderSize()
	x := ox + float32(b.Pos.X-w/2)
	y := oy + float32(b.Pos.Y-h/2)
	vector.FillRect(screen, x, y, float32(w), float32(h), c, false)

	if g.debug {
		bb := b.BB()
		vector.StrokeRect(screen, ox+float32(bb.L), oy+float32(bb.B),
			float32(bb.R-bb.L), float32(bb.T-bb.B), 1, color.NRGBA{R: 0xff, A: 0xc8}, false)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	if g.world == nil {
		ebitenutil.DebugPrintAt(screen, "space: launch    tab: panel", 8, baseHeight-20)
		return
	}

	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("left speed: %6.2f    right speed: %6.2f", g.leftReadout, g.rightReadout), 8, 8)
	ebitenutil.DebugPrintAt(screen,
		"space: relaunch    r: reset    c: copy telemetry    tab: panel", 8, baseHeight-20)

	if g.debug {
		g.drawDebug(screen)
	}
}

func (g *Game) drawDebug(screen *ebiten.Image) {
	y := 28
	for _, b := range []*sim.Body{g.world.Left(), g.world.Right()} {
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("%-5s pos=(%7.1f,%7.1f) vel=(%6.2f,%6.2f) mass=%.1f %s deform=%s",
				b.Name, b.Pos.X, b.Pos.Y, b.Vel.X, b.Vel.Y, b.Mass, b.Material, b.Deform()),
			8, y)
		y += 16
	}
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("tick=%d  tps=%.1f", g.world.Tick(), ebiten.ActualTPS()), 8, y)
}
