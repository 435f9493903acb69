package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/collider/sim"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// WorldSpec holds the arena dimensions and the tuning constants of the
// simulation. The defaults were carried over from the original demo; they
// were tuned for visual feel, not physical correctness.
type WorldSpec struct {
	ArenaWidth  float64 `yaml:"arena_width"`
	ArenaHeight float64 `yaml:"arena_height"`

	MassScale     float64 `yaml:"mass_scale"`
	LaunchSpeed   float64 `yaml:"launch_speed"`
	WallThickness float64 `yaml:"wall_thickness"`
	SpawnInset    float64 `yaml:"spawn_inset"`

	SquishTicks  int     `yaml:"squish_ticks"`
	SquishScaleX float64 `yaml:"squish_scale_x"`
	SquishScaleY float64 `yaml:"squish_scale_y"`
}

// Tuning converts the spec to simulation tuning, falling back to the
// defaults for any value the yaml leaves unset.
func (s *WorldSpec) Tuning() sim.Tuning {
	t := sim.DefaultTuning()
	if s == nil {
		return t
	}
	if s.MassScale > 0 {
		t.MassScale = s.MassScale
	}
	if s.LaunchSpeed > 0 {
		t.LaunchSpeed = s.LaunchSpeed
	}
	if s.WallThickness > 0 {
		t.WallThickness = s.WallThickness
	}
	if s.SpawnInset > 0 {
		t.SpawnInset = s.SpawnInset
	}
	if s.SquishTicks > 0 {
		t.SquishTicks = s.SquishTicks
	}
	if s.SquishScaleX > 0 {
		t.SquishScaleX = s.SquishScaleX
	}
	if s.SquishScaleY > 0 {
		t.SquishScaleY = s.SquishScaleY
	}
	return t
}

func LoadWorldSpec() (*WorldSpec, error) {
	spec, err := LoadSpec[WorldSpec]("world.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// BodySpec is the launch configuration of one dynamic body.
type BodySpec struct {
	Name     string     `yaml:"name"`
	Size     float64    `yaml:"size"`
	Material string     `yaml:"material"`
	Color    *YAMLColor `yaml:"color"`
}

func LoadBodySpec(filename string) (*BodySpec, error) {
	spec, err := LoadSpec[BodySpec](filename)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
