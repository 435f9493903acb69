package main

import (
	"fmt"
	"log"
	"sync"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.design/x/clipboard"

	"github.com/milk9111/collider/common"
	"github.com/milk9111/collider/prefabs"
	"github.com/milk9111/collider/sim"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

// launchConfig is what the panel edits between runs. It is read once at
// launch; a running world never sees later edits.
type launchConfig struct {
	leftSize      float64
	leftMaterial  sim.Material
	rightSize     float64
	rightMaterial sim.Material
}

type Game struct {
	debug bool

	spec      *prefabs.WorldSpec
	leftSpec  *prefabs.BodySpec
	rightSpec *prefabs.BodySpec

	launch launchConfig
	world  *sim.World

	ui      *ebitenui.UI
	panel   *panelUI
	watcher *prefabs.Watcher

	// Smoothed speeds for the telemetry readout only; the raw values stay
	// authoritative.
	leftReadout  float64
	rightReadout float64

	clipboardInit sync.Once
	clipboardOK   bool
}

func NewGame(debug bool) (*Game, error) {
	spec, err := prefabs.LoadWorldSpec()
	if err != nil {
		return nil, fmt.Errorf("game: load world spec: %w", err)
	}

	leftSpec, err := prefabs.LoadBodySpec("left.yaml")
	if err != nil {
		return nil, fmt.Errorf("game: load left body spec: %w", err)
	}
	rightSpec, err := prefabs.LoadBodySpec("right.yaml")
	if err != nil {
		return nil, fmt.Errorf("game: load right body spec: %w", err)
	}

	g := &Game{
		debug:     debug,
		spec:      spec,
		leftSpec:  leftSpec,
		rightSpec: rightSpec,
	}
	g.launch, err = launchFromSpecs(leftSpec, rightSpec)
	if err != nil {
		return nil, err
	}

	g.panel = newPanelUI(g)
	g.ui = g.panel.ui

	if watcher, err := prefabs.NewWatcher("prefabs", "prefabs/scripts"); err != nil {
		log.Printf("game: prefab watcher disabled: %v", err)
	} else {
		g.watcher = watcher
	}

	return g, nil
}

func launchFromSpecs(left, right *prefabs.BodySpec) (launchConfig, error) {
	leftMat, err := sim.ParseMaterial(left.Material)
	if err != nil {
		return launchConfig{}, fmt.Errorf("game: left body spec: %w", err)
	}
	rightMat, err := sim.ParseMaterial(right.Material)
	if err != nil {
		return launchConfig{}, fmt.Errorf("game: right body spec: %w", err)
	}
	return launchConfig{
		leftSize:      left.Size,
		leftMaterial:  leftMat,
		rightSize:     right.Size,
		rightMaterial: rightMat,
	}, nil
}

// Launch tears down any running world, then builds a fresh one from the
// panel's current configuration. Old worlds never overlap new ones.
func (g *Game) Launch() {
	g.Reset()

	world, err := sim.NewWorld(sim.Config{
		ArenaWidth:    g.spec.ArenaWidth,
		ArenaHeight:   g.spec.ArenaHeight,
		LeftSize:      g.launch.leftSize,
		LeftMaterial:  g.launch.leftMaterial,
		RightSize:     g.launch.rightSize,
		RightMaterial: g.launch.rightMaterial,
		Tuning:        g.spec.Tuning(),
	})
	if err != nil {
		log.Printf("game: launch rejected: %v", err)
		return
	}
	g.world = world
	g.leftReadout = 0
	g.rightReadout = 0
}

// Reset stops and discards the running world. Safe to call when none exists.
func (g *Game) Reset() {
	if g.world == nil {
		return
	}
	g.world.Stop()
	g.world = nil
}

func (g *Game) Update() error {
	g.drainWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.panel.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.Launch()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copyTelemetry()
	}

	g.ui.Update()

	if g.world != nil {
		g.world.Step()

		left, right := g.world.Speeds()
		g.leftReadout = float64(common.Lerp(float32(g.leftReadout), float32(left), 0.5))
		g.rightReadout = float64(common.Lerp(float32(g.rightReadout), float32(right), 0.5))
	}

	return nil
}

// drainWatcher applies prefab edits to the launch defaults. A running world
// is immutable; edits show up on the next launch.
func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	reload := false
	done := false
	for !done {
		select {
		case _, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				done = true
				continue
			}
			reload = true
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				done = true
				continue
			}
			// A watcher error must not drop a pending reload.
			log.Printf("game: prefab watcher: %v", err)
		default:
			done = true
		}
	}
	if reload {
		g.reloadSpecs()
	}
}

func (g *Game) reloadSpecs() {
	spec, err := prefabs.LoadWorldSpec()
	if err != nil {
		log.Printf("game: reload world spec: %v", err)
		return
	}
	leftSpec, err := prefabs.LoadBodySpec("left.yaml")
	if err != nil {
		log.Printf("game: reload left body spec: %v", err)
		return
	}
	rightSpec, err := prefabs.LoadBodySpec("right.yaml")
	if err != nil {
		log.Printf("game: reload right body spec: %v", err)
		return
	}

	launch, err := launchFromSpecs(leftSpec, rightSpec)
	if err != nil {
		log.Printf("game: reload: %v", err)
		return
	}

	g.spec = spec
	g.leftSpec = leftSpec
	g.rightSpec = rightSpec
	g.launch = launch
	g.panel.Refresh()
	log.Printf("game: prefabs reloaded")
}

func (g *Game) copyTelemetry() {
	g.clipboardInit.Do(func() {
		if err := clipboard.Init(); err != nil {
			log.Printf("game: clipboard unavailable: %v", err)
			return
		}
		g.clipboardOK = true
	})
	if !g.clipboardOK || g.world == nil {
		return
	}
	left, right := g.world.Speeds()
	line := fmt.Sprintf("tick=%d left=%.2f right=%.2f", g.world.Tick(), left, right)
	clipboard.Write(clipboard.FmtText, []byte(line))
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawArena(screen)
	g.drawHUD(screen)
	g.ui.Draw(screen)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
