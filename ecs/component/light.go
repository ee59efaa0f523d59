package component

import "image/color"

type LightKind int

const (
	PointLight LightKind = iota
	DirectionalLight
)

type Light struct {
	Kind        LightKind
	Color       color.NRGBA
	Illuminance float32
	Shadows     bool
}

var LightComponent = NewComponent[Light]()
