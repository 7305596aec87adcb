package render

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Viewport dimensions. The resolution uniform always carries these values.
const (
	ScreenWidth  = 1280
	ScreenHeight = 960
)

// WindowTitle is the title of the viewer window.
const WindowTitle = "Raymarch Viewer"

// Per-frame step sizes
const (
	// Camera translation in world units per frame
	MoveStep float32 = 0.05
	// Camera yaw in radians per frame
	RotateStep float32 = 0.05
	// Frame clock increment per frame
	TimeStep = 0.01
)

// Uniform names expected in the fragment shader
const (
	UniformResolution = "u_resolution"
	UniformTime       = "u_time"
	UniformCameraPos  = "u_cameraPos"
	UniformCameraDir  = "u_cameraDir"
)

// Initial camera placement
var (
	InitialPosition = mgl32.Vec3{3, 1, 5}
	InitialForward  = mgl32.Vec3{0, 0, -1}
)

// Config holds the values the renderer runs with.
type Config struct {
	// Viewport dims.
	Width  int
	Height int

	// Per-frame steps.
	MoveStep   float32
	RotateStep float32
	TimeStep   float64

	// Frame clock accumulator.
	Precision Precision

	// Camera placement at startup.
	InitialPosition mgl32.Vec3
	InitialForward  mgl32.Vec3

	Uniforms UniformNames
}

// DefaultConfig returns the fixed viewer configuration.
func DefaultConfig() Config {
	return Config{
		Width:           ScreenWidth,
		Height:          ScreenHeight,
		MoveStep:        MoveStep,
		RotateStep:      RotateStep,
		TimeStep:        TimeStep,
		Precision:       DoublePrecision,
		InitialPosition: InitialPosition,
		InitialForward:  InitialForward,
		Uniforms:        DefaultUniformNames(),
	}
}

// Resolution returns the viewport size as a resolution uniform value.
func (c Config) Resolution() mgl32.Vec2 {
	return mgl32.Vec2{float32(c.Width), float32(c.Height)}
}
