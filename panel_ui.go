package main

import (
	"fmt"
	"image/color"

	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/milk9111/collider/sim"
)

const (
	minBodySize  = 10
	maxBodySize  = 200
	bodySizeStep = 10
)

// panelUI is the launch configuration panel: per-body size and material plus
// Launch/Reset. It edits the game's launch config; nothing here touches a
// running world.
type panelUI struct {
	game *Game
	ui   *ebitenui.UI
	root *widget.Container

	visible bool

	leftSizeLabel  *widget.Text
	leftMatBtn     *widget.Button
	rightSizeLabel *widget.Text
	rightMatBtn    *widget.Button
}

func newPanelUI(g *Game) *panelUI {
	p := &panelUI{game: g, visible: true}

	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	btnTextColor := &widget.ButtonTextColor{Idle: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 16, Bottom: 16, Left: 20, Right: 20}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	title := widget.NewText(
		widget.TextOpts.Text("collider", &face, white),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	panel.AddChild(title)

	p.leftSizeLabel, p.leftMatBtn = addBodySection(panel, &face, btnImg, btnTextColor, white, "Left",
		func(delta float64) {
			g.launch.leftSize = clampSize(g.launch.leftSize + delta)
			p.Refresh()
		},
		func() {
			g.launch.leftMaterial = nextMaterial(g.launch.leftMaterial)
			p.Refresh()
		})

	p.rightSizeLabel, p.rightMatBtn = addBodySection(panel, &face, btnImg, btnTextColor, white, "Right",
		func(delta float64) {
			g.launch.rightSize = clampSize(g.launch.rightSize + delta)
			p.Refresh()
		},
		func() {
			g.launch.rightMaterial = nextMaterial(g.launch.rightMaterial)
			p.Refresh()
		})

	launchBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text("Launch", &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			g.Launch()
		}),
	)
	panel.AddChild(launchBtn)

	resetBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text("Reset", &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			g.Reset()
		}),
	)
	panel.AddChild(resetBtn)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	p.root = panel
	p.ui = &ebitenui.UI{Container: root}
	p.Refresh()
	return p
}

// addBodySection adds one body's size stepper and material cycle button.
func addBodySection(
	panel *widget.Container,
	face *ebtext.Face,
	btnImg *imageui.NineSlice,
	btnTextColor *widget.ButtonTextColor,
	textColor color.Color,
	label string,
	onSizeDelta func(delta float64),
	onCycleMaterial func(),
) (*widget.Text, *widget.Button) {
	panel.AddChild(widget.NewText(
		widget.TextOpts.Text(label, face, textColor),
	))

	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	smaller := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text(" - ", face, btnTextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onSizeDelta(-bodySizeStep)
		}),
	)
	row.AddChild(smaller)

	sizeLabel := widget.NewText(
		widget.TextOpts.Text("size 60", face, textColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	row.AddChild(sizeLabel)

	bigger := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text(" + ", face, btnTextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onSizeDelta(bodySizeStep)
		}),
	)
	row.AddChild(bigger)
	panel.AddChild(row)

	matBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text("material: elastic", face, btnTextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onCycleMaterial()
		}),
	)
	panel.AddChild(matBtn)

	return sizeLabel, matBtn
}

// Toggle shows or hides the panel.
func (p *panelUI) Toggle() {
	p.visible = !p.visible
	if p.visible {
		p.root.GetWidget().Visibility = widget.Visibility_Show
	} else {
		p.root.GetWidget().Visibility = widget.Visibility_Hide
	}
	p.root.RequestRelayout()
}

// Refresh syncs the labels with the game's launch configuration.
func (p *panelUI) Refresh() {
	g := p.game
	p.leftSizeLabel.Label = fmt.Sprintf("size %.0f", g.launch.leftSize)
	p.rightSizeLabel.Label = fmt.Sprintf("size %.0f", g.launch.rightSize)
	if text := p.leftMatBtn.Text(); text != nil {
		text.Label = "material: " + g.launch.leftMaterial.String()
	}
	if text := p.rightMatBtn.Text(); text != nil {
		text.Label = "material: " + g.launch.rightMaterial.String()
	}
}

func clampSize(size float64) float64 {
	if size < minBodySize {
		return minBodySize
	}
	if size > maxBodySize {
		return maxBodySize
	}
	return size
}

func nextMaterial(m sim.Material) sim.Material {
	mats := sim.Materials()
	for i, cand := range mats {
		if cand == m {
			return mats[(i+1)%len(mats)]
		}
	}
	return mats[0]
}
