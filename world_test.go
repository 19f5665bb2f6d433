package rhomb3d

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorldModels(t *testing.T) {
	w := NewWorld()
	cam := NewCamera(0, 0, 0)
	w.AddCamera(cam)
	assert.Same(t, cam, w.Camera())

	a := buildTestModel(t, Acute, mgl64.Vec3{})
	w.AddModel(a, 0, 0, 520)
	assert.Same(t, a, w.Model(0))

	b := buildTestModel(t, Obtuse, mgl64.Vec3{})
	w.ReplaceModel(0, b)
	assert.Same(t, b, w.Model(0))
	assert.Equal(t, mgl64.Vec3{0, 0, 520}, w.positions[0])
}

func TestGameInitialState(t *testing.T) {
	g, err := NewGame()
	require.NoError(t, err)

	assert.Equal(t, Acute, g.variant)
	require.NotNil(t, g.world.Camera())
	assert.Equal(t, SolidFaces, g.world.Model(0).FaceCount())
	assert.Len(t, g.descs, SolidFaces)

	w, h := g.Layout(1024, 768)
	assert.Equal(t, ScreenWidth, w)
	assert.Equal(t, ScreenHeight, h)
}

func TestGameToggleVariant(t *testing.T) {
	g, err := NewGame()
	require.NoError(t, err)

	g.toggleVariant()
	assert.Equal(t, Obtuse, g.variant)
	assert.Equal(t, SolidFaces, g.world.Model(0).FaceCount())
	g.toggleVariant()
	assert.Equal(t, Acute, g.variant)
}
