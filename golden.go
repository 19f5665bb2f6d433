package rhomb3d

import (
	"fmt"
	"math"
	"strings"
)

// A golden rhombus has its diagonals in ratio Phi. With unit side length
// the half-diagonals are cos(Theta) and sin(Theta), where tan(Theta) = Phi.
// Both rhombohedron variants are built from this one rhombus.
var (
	Phi   = (1 + math.Sqrt(5)) / 2
	Theta = math.Atan(Phi)
	Gamma = math.Pi/2 - Theta
	Alpha = 2 * Gamma // acute corner angle of the rhombus

	DiagX    = math.Cos(Theta) // half of the short diagonal
	DiagY    = math.Sin(Theta) // half of the long diagonal
	CosAlpha = math.Cos(Alpha)
)

// Variant selects one of the two ways six golden rhombi close up into a
// parallelepiped.
type Variant int

const (
	Acute Variant = iota
	Obtuse
)

func (v Variant) String() string {
	switch v {
	case Acute:
		return "acute"
	case Obtuse:
		return "obtuse"
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// ParseVariant maps a name to its Variant. Unknown names are an error,
// never a silent default.
func ParseVariant(name string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "acute":
		return Acute, nil
	case "obtuse":
		return Obtuse, nil
	}
	return 0, fmt.Errorf("unknown rhombohedron variant %q", name)
}

// Toggle returns the other variant.
func (v Variant) Toggle() Variant {
	if v == Acute {
		return Obtuse
	}
	return Acute
}

// layout derives the solid height h and the centering offset q for the
// variant. The top and bottom rhombi sit in the z = +-h/2 planes and q
// shifts them so the solid is centred on the origin.
func (v Variant) layout() (h, q float64, err error) {
	switch v {
	case Acute:
		bt := CosAlpha / math.Cos(Gamma)
		return math.Sqrt(1 - bt*bt), bt / 2, nil
	case Obtuse:
		at := CosAlpha / DiagY
		return math.Sqrt(1 - at*at), DiagX - at/2, nil
	}
	return 0, 0, fmt.Errorf("unknown rhombohedron variant %d", int(v))
}

// Height returns the distance between the two z-parallel faces of the unit
// solid.
func (v Variant) Height() (float64, error) {
	h, _, err := v.layout()
	return h, err
}

// Offset returns the centering offset of the z-parallel faces.
func (v Variant) Offset() (float64, error) {
	_, q, err := v.layout()
	return q, err
}
