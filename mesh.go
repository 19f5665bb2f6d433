package rhomb3d

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// MeshDescriptor is the renderer-facing unit for one face: triangulated
// coordinates already scaled to world units, a fill color and the placement
// of the solid. Descriptors are produced fresh per configuration and never
// mutated afterwards.
type MeshDescriptor struct {
	Coords   [FaceCoords]float64
	Color    color.RGBA
	Position mgl64.Vec3
}

// AssembleFace scales a raw face buffer and tags it with placement and
// color. Scale must be positive; a zero or negative scale would collapse or
// invert the mesh.
func AssembleFace(coords [FaceCoords]float64, scale float64, position mgl64.Vec3, col color.RGBA) (MeshDescriptor, error) {
	if scale <= 0 {
		return MeshDescriptor{}, fmt.Errorf("mesh scale must be positive, got %v", scale)
	}

	d := MeshDescriptor{Color: col, Position: position}
	for i, c := range coords {
		d.Coords[i] = c * scale
	}
	return d, nil
}

// GenerateRhombohedron builds the six renderable face meshes of a golden
// rhombohedron. Exactly one color per face must be supplied; anything else
// is treated as a caller mistake rather than wrapped or reused silently.
func GenerateRhombohedron(v Variant, scale float64, position mgl64.Vec3, colors []color.RGBA) ([]MeshDescriptor, error) {
	if len(colors) != SolidFaces {
		return nil, fmt.Errorf("need %d face colors, got %d", SolidFaces, len(colors))
	}

	faces, err := Faces(v)
	if err != nil {
		return nil, err
	}

	descs := make([]MeshDescriptor, 0, SolidFaces)
	for i, f := range faces {
		d, err := AssembleFace(f, scale, position, colors[i])
		if err != nil {
			return nil, fmt.Errorf("face %d: %w", i, err)
		}
		descs = append(descs, d)
	}
	return descs, nil
}
