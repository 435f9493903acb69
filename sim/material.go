package sim

import "fmt"

// Material identifies what a dynamic body is made of. The set is closed;
// every material has a restitution entry.
type Material int

const (
	Elastic Material = iota
	Metal
	Wood
	Plastic
)

// Restitution returns the fraction of relative approach speed preserved as
// separation speed when this material collides.
func (m Material) Restitution() float64 {
	switch m {
	case Elastic:
		return 0.9
	case Metal:
		return 0.2
	case Wood:
		return 0.5
	case Plastic:
		return 0.7
	}
	panic(fmt.Sprintf("sim: unknown material %d", int(m)))
}

func (m Material) String() string {
	switch m {
	case Elastic:
		return "elastic"
	case Metal:
		return "metal"
	case Wood:
		return "wood"
	case Plastic:
		return "plastic"
	}
	return fmt.Sprintf("material(%d)", int(m))
}

// Valid reports whether m is one of the four defined materials.
func (m Material) Valid() bool {
	return m >= Elastic && m <= Plastic
}

// ParseMaterial maps a label from the UI or a scenario script to a Material.
func ParseMaterial(s string) (Material, error) {
	switch s {
	case "elastic":
		return Elastic, nil
	case "metal":
		return Metal, nil
	case "wood":
		return Wood, nil
	case "plastic":
		return Plastic, nil
	}
	return 0, fmt.Errorf("sim: unknown material %q", s)
}

// Materials lists every material in declaration order, for UI cycling.
func Materials() []Material {
	return []Material{Elastic, Metal, Wood, Plastic}
}
