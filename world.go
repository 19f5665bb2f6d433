package rhomb3d

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// World holds the renderable models, their placements and the camera.
type World struct {
	models    []*Model
	positions []mgl64.Vec3
	camera    *Camera
}

func NewWorld() *World {
	return &World{}
}

func (w *World) AddModel(m *Model, x, y, z float64) {
	w.models = append(w.models, m)
	w.positions = append(w.positions, mgl64.Vec3{x, y, z})
}

// ReplaceModel swaps the model at slot i, keeping its placement. Used when
// an interaction regenerates the mesh.
func (w *World) ReplaceModel(i int, m *Model) {
	w.models[i] = m
}

func (w *World) Model(i int) *Model {
	return w.models[i]
}

func (w *World) AddCamera(c *Camera) {
	w.camera = c
}

func (w *World) Camera() *Camera {
	return w.camera
}

// PaintModels transforms every model into camera space and paints far to
// near.
func (w *World) PaintModels(screen *ebiten.Image, xsize, ysize int) {
	if w.camera == nil {
		return
	}

	order := make([]int, len(w.models))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return w.positions[order[i]].Len() > w.positions[order[j]].Len()
	})

	for _, i := range order {
		pos := w.positions[i]
		objToCam := w.camera.Matrix().Mul4(TransMatrix(pos.X(), pos.Y(), pos.Z()))
		w.models[i].Transform(objToCam)
		w.models[i].Paint(screen, xsize/2, ysize/2, true)
	}
}
