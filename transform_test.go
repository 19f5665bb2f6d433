package rhomb3d

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func assertVec3InDelta(t *testing.T, want, got mgl64.Vec3, delta float64) {
	t.Helper()
	assert.InDelta(t, want.X(), got.X(), delta)
	assert.InDelta(t, want.Y(), got.Y(), delta)
	assert.InDelta(t, want.Z(), got.Z(), delta)
}

func TestRotationMatrix(t *testing.T) {
	tests := []struct {
		name  string
		axis  int
		theta float64
		in    mgl64.Vec3
		want  mgl64.Vec3
	}{
		{"quarter turn about x", RotX, math.Pi / 2, mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0, 0, 1}},
		{"quarter turn about y", RotY, math.Pi / 2, mgl64.Vec3{0, 0, 1}, mgl64.Vec3{1, 0, 0}},
		{"quarter turn about z", RotZ, math.Pi / 2, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0}},
		{"half turn about z", RotZ, math.Pi, mgl64.Vec3{1, 2, 0}, mgl64.Vec3{-1, -2, 0}},
		{"zero angle", RotY, 0, mgl64.Vec3{3, 4, 5}, mgl64.Vec3{3, 4, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := RotationMatrix(tt.axis, tt.theta)
			got := mgl64.TransformCoordinate(tt.in, m)
			assertVec3InDelta(t, tt.want, got, geomTolerance)
		})
	}
}

func TestRotationRoundTrip(t *testing.T) {
	p := mgl64.Vec3{0.3, -1.7, 2.2}
	for _, axis := range []int{RotX, RotY, RotZ} {
		fwd := RotationMatrix(axis, 0.83)
		back := RotationMatrix(axis, -0.83)
		got := mgl64.TransformCoordinate(mgl64.TransformCoordinate(p, fwd), back)
		assertVec3InDelta(t, p, got, geomTolerance)
	}
}

func TestTransformPoints(t *testing.T) {
	src := []mgl64.Vec3{{0, 0, 0}, {1, 1, 1}, {-2, 3, 0.5}}
	dst := make([]mgl64.Vec3, len(src))

	TransformPoints(TransMatrix(10, -20, 30), src, dst)
	for i, p := range src {
		assertVec3InDelta(t, p.Add(mgl64.Vec3{10, -20, 30}), dst[i], geomTolerance)
	}
}

func TestTransformNormalsIgnoresTranslation(t *testing.T) {
	src := []mgl64.Vec3{{0, 0, 1}, {1, 0, 0}}
	dst := make([]mgl64.Vec3, len(src))

	m := TransMatrix(100, 200, 300).Mul4(RotationMatrix(RotX, math.Pi/2))
	TransformNormals(m, src, dst)

	assertVec3InDelta(t, mgl64.Vec3{0, -1, 0}, dst[0], geomTolerance)
	assertVec3InDelta(t, mgl64.Vec3{1, 0, 0}, dst[1], geomTolerance)
}

func TestCameraMatrix(t *testing.T) {
	// An unrotated camera leaves world coordinates alone.
	ident := NewCamera(0, 0, 0)
	got := mgl64.TransformCoordinate(mgl64.Vec3{1, 2, 3}, ident.Matrix())
	assertVec3InDelta(t, mgl64.Vec3{1, 2, 3}, got, geomTolerance)

	// Orbiting the camera by +theta about y moves world points by -theta.
	cam := NewCamera(0, math.Pi/2, 0)
	got = mgl64.TransformCoordinate(mgl64.Vec3{1, 0, 0}, cam.Matrix())
	assertVec3InDelta(t, mgl64.Vec3{0, 0, 1}, got, geomTolerance)
}

func TestCameraAddAngleAccumulates(t *testing.T) {
	a := NewCamera(0.1, 0.2, 0.3)
	b := NewCamera(0, 0, 0)
	b.AddAngle(0.1, 0, 0)
	b.AddAngle(0, 0.2, 0.3)
	assert.Equal(t, a.Matrix(), b.Matrix())
}
