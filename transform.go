package rhomb3d

import "github.com/go-gl/mathgl/mgl64"

// Rotation axis selectors.
const (
	RotX = iota
	RotY
	RotZ
)

// RotationMatrix returns a rotation about a coordinate axis.
func RotationMatrix(axis int, theta float64) mgl64.Mat4 {
	switch axis {
	case RotX:
		return mgl64.HomogRotate3DX(theta)
	case RotY:
		return mgl64.HomogRotate3DY(theta)
	default:
		return mgl64.HomogRotate3DZ(theta)
	}
}

// TransMatrix returns a translation.
func TransMatrix(x, y, z float64) mgl64.Mat4 {
	return mgl64.Translate3D(x, y, z)
}

// TransformPoints applies m to every point of src, writing the results into
// dst. dst must be at least as long as src; keeping both buffers alive lets
// a caller retransform every frame without allocating.
func TransformPoints(m mgl64.Mat4, src, dst []mgl64.Vec3) {
	for i, p := range src {
		dst[i] = mgl64.TransformCoordinate(p, m)
	}
}

// TransformNormals applies only the rotation part of m, which is what
// direction vectors need; translating a normal would shear the lighting.
func TransformNormals(m mgl64.Mat4, src, dst []mgl64.Vec3) {
	for i, n := range src {
		dst[i] = mgl64.TransformNormal(n, m)
	}
}
