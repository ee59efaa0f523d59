package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// EntityBuildSpec is one prefab: a name plus raw component specs keyed by
// component name.
type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

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

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

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

type TransformComponentSpec struct {
	Position []float32 `yaml:"position"`
	Scale    []float32 `yaml:"scale"`
	LookAt   []float32 `yaml:"look_at"`
	Up       []float32 `yaml:"up"`
}

// Tuning fields are pointers so an explicit 0 is kept rather than
// replaced by the default.
type LocomotionComponentSpec struct {
	MaxSpeed    *float32 `yaml:"max_speed"`
	FloatHeight *float32 `yaml:"float_height"`
	JumpHeight  *float32 `yaml:"jump_height"`
}

type PhysicsBodyComponentSpec struct {
	Radius     float32 `yaml:"radius"`
	HalfHeight float32 `yaml:"half_height"`
	Mass       float32 `yaml:"mass"`
}

type StaticColliderComponentSpec struct {
	Size []float32 `yaml:"size"`
}

type CameraFollowComponentSpec struct {
	Offset       []float32 `yaml:"offset"`
	LookAtOffset []float32 `yaml:"look_at_offset"`
	Smoothness   *float32  `yaml:"smoothness"`
	ClampBlend   *bool     `yaml:"clamp_blend"`
}

type CameraFollowStateComponentSpec struct {
	Position []float32 `yaml:"position"`
}

type ProjectionComponentSpec struct {
	FovY float32 `yaml:"fov_y"`
	Near float32 `yaml:"near"`
	Far  float32 `yaml:"far"`
}

type AnimationGraphComponentSpec struct {
	Asset        string   `yaml:"asset"`
	ClipCount    int      `yaml:"clip_count"`
	Clips        []string `yaml:"clips"`
	ClipDuration float32  `yaml:"clip_duration"`
	JumpClip     int      `yaml:"jump_clip"`
	InitialClip  int      `yaml:"initial_clip"`
}

type LightComponentSpec struct {
	Kind        string  `yaml:"kind"`
	Color       string  `yaml:"color"`
	Illuminance float32 `yaml:"illuminance"`
	Shadows     bool    `yaml:"shadows"`
}
