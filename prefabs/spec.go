package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
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

// EntityBuildSpec is a prefab: a named bag of component specs keyed by the
// component's registry name.
type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

// DecodeComponentSpec re-decodes one loosely typed component entry into T.
func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type PlayerComponentSpec struct {
	Active      *bool   `yaml:"active"`
	MoveSpeed   float64 `yaml:"move_speed"`
	RotateSpeed float64 `yaml:"rotate_speed"`
}

type TransformComponentSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Z        float64 `yaml:"z"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}

// GridMovementComponentSpec values are decimals in the file and stored as
// hundredths fixed point.
type GridMovementComponentSpec struct {
	Cost     float64 `yaml:"cost"`
	Speed    float64 `yaml:"speed"`
	Distance float64 `yaml:"distance"`
}

type ProjectionComponentSpec struct {
	Scale float64 `yaml:"scale"`
}

type ScopeComponentSpec struct {
	Mode string `yaml:"mode"`
}

type DebugShapeComponentSpec struct {
	Radius float64   `yaml:"radius"`
	Color  YAMLColor `yaml:"color"`
}

// CameraSettings are the zoom levels per mode, read from the top level of
// camera.yaml next to its components.
type CameraSettings struct {
	Zoom ZoomSpec `yaml:"zoom"`
}

type ZoomSpec struct {
	Explore  float64       `yaml:"explore"`
	Event    float64       `yaml:"event"`
	Duration time.Duration `yaml:"duration"`
}

const (
	DefaultExploreZoom  = 1.8
	DefaultEventZoom    = 1.0
	DefaultZoomDuration = time.Second
)

// LoadCameraSettings loads camera.yaml and fills unset zoom values with the
// defaults.
func LoadCameraSettings() (CameraSettings, error) {
	settings, err := LoadSpec[CameraSettings]("camera.yaml")
	if err != nil {
		return CameraSettings{}, err
	}
	settings.Zoom = settings.Zoom.withDefaults()
	return settings, nil
}

func (z ZoomSpec) withDefaults() ZoomSpec {
	if z.Explore <= 0 {
		z.Explore = DefaultExploreZoom
	}
	if z.Event <= 0 {
		z.Event = DefaultEventZoom
	}
	if z.Duration <= 0 {
		z.Duration = DefaultZoomDuration
	}
	return z
}

// ModesSpec maps a mode name to its optional lifecycle script.
type ModesSpec map[string]ModeSpec

type ModeSpec struct {
	Script string `yaml:"script"`
}

func LoadModesSpec() (ModesSpec, error) {
	return LoadSpec[ModesSpec]("modes.yaml")
}

// Script returns the script configured for the named mode, or "".
func (m ModesSpec) Script(name string) string {
	return m[strings.ToLower(name)].Script
}

// YAMLColor accepts "#rrggbb", "#rrggbbaa" or a CSS color name.
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	if named, ok := colornames.Map[strings.ToLower(value.Value)]; ok {
		c.Color = named
		return nil
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
