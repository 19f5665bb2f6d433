package rhomb3d

import (
	"fmt"
	"image/color"
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	ScreenWidth  = 640
	ScreenHeight = 480

	modelScale    = 120.0
	modelDistance = 520.0

	spinRateX = 0.005
	spinRateY = 0.009

	// a press that moves less than this is a click, not a drag
	clickSlopPixels = 3
)

// DefaultFaceColors is the palette used when the caller does not supply
// one, one entry per rhombus face.
var DefaultFaceColors = []color.RGBA{
	{R: 214, G: 72, B: 54, A: 255},
	{R: 236, G: 155, B: 47, A: 255},
	{R: 238, G: 210, B: 68, A: 255},
	{R: 84, G: 158, B: 87, A: 255},
	{R: 70, G: 120, B: 190, A: 255},
	{R: 132, G: 83, B: 160, A: 255},
}

// Game owns the viewer state the pure generator must not: the current
// variant, the accumulated spin angles and the input bookkeeping. Every
// frame it feeds that state into the stateless geometry pipeline.
type Game struct {
	world   *World
	variant Variant
	descs   []MeshDescriptor

	spinX, spinY float64

	dragging       bool
	pressX, pressY int
	lastX, lastY   int
	moved          int
}

func NewGame() (*Game, error) {
	g := &Game{
		world:   NewWorld(),
		variant: Acute,
	}
	g.world.AddCamera(NewCamera(0, 0, 0))

	model, err := g.buildModel()
	if err != nil {
		return nil, err
	}
	g.world.AddModel(model, 0, 0, modelDistance)

	log.Printf("viewer ready, %s rhombohedron", g.variant)
	return g, nil
}

func (g *Game) buildModel() (*Model, error) {
	descs, err := GenerateRhombohedron(g.variant, modelScale, mgl64.Vec3{}, DefaultFaceColors)
	if err != nil {
		return nil, fmt.Errorf("generating %s rhombohedron: %w", g.variant, err)
	}
	model, err := NewModel(descs)
	if err != nil {
		return nil, err
	}
	g.descs = descs
	return model, nil
}

// toggleVariant regenerates the solid as the other variant.
func (g *Game) toggleVariant() {
	g.variant = g.variant.Toggle()
	model, err := g.buildModel()
	if err != nil {
		// Both variants are closed-form; reaching this means a programming
		// error, not bad input.
		log.Printf("regenerate failed: %v", err)
		return
	}
	g.world.ReplaceModel(0, model)
	log.Printf("switched to %s rhombohedron", g.variant)
}

func (g *Game) Update() error {
	g.spinX += spinRateX
	g.spinY += spinRateY

	model := g.world.Model(0)
	pose := RotationMatrix(RotY, g.spinY).Mul4(RotationMatrix(RotX, g.spinX))
	model.SetPose(pose)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.dragging = true
		g.moved = 0
		g.pressX, g.pressY = ebiten.CursorPosition()
		g.lastX, g.lastY = g.pressX, g.pressY
	}
	if g.dragging {
		x, y := ebiten.CursorPosition()
		dx, dy := x-g.lastX, y-g.lastY
		g.moved += abs(dx) + abs(dy)
		if g.moved > clickSlopPixels {
			g.world.Camera().AddAngle(float64(dy)/200, float64(dx)/200, 0)
		}
		g.lastX, g.lastY = x, y
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.dragging = false
		if g.moved <= clickSlopPixels {
			g.toggleVariant()
		}
	}

	// Hover uses the camera-space buffers of the previous Draw; one frame
	// of lag is invisible at 60 ticks.
	cx, cy := ebiten.CursorPosition()
	model = g.world.Model(0)
	model.SetHovered(model.PickFaceAt(float64(cx), float64(cy), ScreenWidth, ScreenHeight))

	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		name := fmt.Sprintf("rhombohedron-%s.ply", g.variant)
		if err := SavePLY(name, g.descs); err != nil {
			log.Printf("export failed: %v", err)
		} else {
			log.Printf("exported %s", name)
		}
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.world.PaintModels(screen, ScreenWidth, ScreenHeight)
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"%s rhombohedron  (click: toggle, drag: orbit, E: export)\nFPS: %0.2f",
		g.variant, ebiten.ActualFPS()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
