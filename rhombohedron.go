package rhomb3d

import "github.com/go-gl/mathgl/mgl64"

const (
	// SolidVertices is the number of corners of a parallelepiped.
	SolidVertices = 8
	// SolidFaces is the number of rhombus faces.
	SolidFaces = 6
	// FaceCoords is the length of one triangulated face buffer:
	// 2 triangles x 3 vertices x 3 coordinates.
	FaceCoords = 18
)

// Winding tables, one row per face, two index triples per row. The indices
// refer to the emission order of Vertices. Triples are ordered so that every
// triangle normal points away from the solid's centre (right-hand rule);
// reversing any triple is a shading defect. Each vertex index appears in
// exactly three rows, one row per rhombus meeting at that corner.
var acuteFaceTable = [SolidFaces][6]int{
	{1, 0, 2, 3, 2, 0},
	{1, 2, 5, 6, 5, 2},
	{1, 5, 0, 4, 0, 5},
	{7, 3, 4, 0, 4, 3},
	{7, 6, 3, 2, 3, 6},
	{7, 4, 6, 5, 6, 4},
}

var obtuseFaceTable = [SolidFaces][6]int{
	{2, 1, 0, 2, 0, 3},
	{2, 5, 1, 2, 6, 5},
	{3, 7, 2, 6, 2, 7},
	{4, 3, 0, 4, 7, 3},
	{4, 1, 5, 4, 0, 1},
	{4, 5, 6, 4, 6, 7},
}

// Vertices returns the eight corners of the unit-edge solid for the given
// variant. The first four lie in the z = -h/2 plane, the last four in the
// z = +h/2 plane; the face tables index into this exact order, so callers
// must not reorder the result.
func Vertices(v Variant) ([SolidVertices]mgl64.Vec3, error) {
	h, q, err := v.layout()
	if err != nil {
		return [SolidVertices]mgl64.Vec3{}, err
	}

	x, y := DiagX, DiagY
	if v == Acute {
		return [SolidVertices]mgl64.Vec3{
			{x, q, -h / 2}, {0, q + y, -h / 2}, {-x, q, -h / 2}, {0, q - y, -h / 2},
			{x, -q, h / 2}, {0, -q + y, h / 2}, {-x, -q, h / 2}, {0, -q - y, h / 2},
		}, nil
	}
	return [SolidVertices]mgl64.Vec3{
		{q + x, 0, -h / 2}, {q, y, -h / 2}, {q - x, 0, -h / 2}, {q, -y, -h / 2},
		{-q + x, 0, h / 2}, {-q, y, h / 2}, {-q - x, 0, h / 2}, {-q, -y, h / 2},
	}, nil
}

// FaceTable returns the vertex-index table for the variant.
func FaceTable(v Variant) ([SolidFaces][6]int, error) {
	switch v {
	case Acute:
		return acuteFaceTable, nil
	case Obtuse:
		return obtuseFaceTable, nil
	}
	var zero [SolidFaces][6]int
	_, _, err := v.layout()
	return zero, err
}

// Faces triangulates the six rhombus faces of the solid. Each face comes
// back as a flat buffer of 18 reals: two triangles of three xyz vertices,
// wound outward.
func Faces(v Variant) ([SolidFaces][FaceCoords]float64, error) {
	var faces [SolidFaces][FaceCoords]float64

	verts, err := Vertices(v)
	if err != nil {
		return faces, err
	}
	table, err := FaceTable(v)
	if err != nil {
		return faces, err
	}

	for fi, row := range table {
		for vi, pointIndex := range row {
			p := verts[pointIndex]
			faces[fi][vi*3+0] = p.X()
			faces[fi][vi*3+1] = p.Y()
			faces[fi][vi*3+2] = p.Z()
		}
	}
	return faces, nil
}
