package render

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-raymarch/pkg/camera"
)

// NotFound is the location returned for a uniform name the linked program
// does not declare (or that the compiler optimized out).
const NotFound int32 = -1

// UniformNames are the shader-side names of the per-frame uniforms.
type UniformNames struct {
	Resolution string
	Time       string
	CameraPos  string
	CameraDir  string
}

// DefaultUniformNames returns the names the bundled shaders declare.
func DefaultUniformNames() UniformNames {
	return UniformNames{
		Resolution: UniformResolution,
		Time:       UniformTime,
		CameraPos:  UniformCameraPos,
		CameraDir:  UniformCameraDir,
	}
}

// UniformLocator resolves uniform names against a linked program.
type UniformLocator interface {
	UniformLocation(name string) int32
}

// UniformSetter uploads values to uniform locations of the bound program.
type UniformSetter interface {
	SetVec2At(location int32, v mgl32.Vec2)
	SetFloatAt(location int32, v float32)
	SetVec3At(location int32, v mgl32.Vec3)
}

// Locations caches the resolved uniform locations. It is filled once at
// startup; a name that fails to resolve stays NotFound for the session.
type Locations struct {
	Resolution int32
	Time       int32
	CameraPos  int32
	CameraDir  int32
}

// Binding pairs a uniform name with its resolved location.
type Binding struct {
	Name     string
	Location int32
}

// Resolved reports whether the binding points at a real location.
func (b Binding) Resolved() bool {
	return b.Location != NotFound
}

// LookupLocations resolves every name in names. Negative locations other
// than NotFound are normalized to NotFound.
func LookupLocations(program UniformLocator, names UniformNames) Locations {
	lookup := func(name string) int32 {
		if name == "" {
			return NotFound
		}
		if loc := program.UniformLocation(name); loc >= 0 {
			return loc
		}
		return NotFound
	}

	return Locations{
		Resolution: lookup(names.Resolution),
		Time:       lookup(names.Time),
		CameraPos:  lookup(names.CameraPos),
		CameraDir:  lookup(names.CameraDir),
	}
}

// Bindings lists the uniforms in publish order.
func (l Locations) Bindings(names UniformNames) []Binding {
	return []Binding{
		{names.Resolution, l.Resolution},
		{names.Time, l.Time},
		{names.CameraPos, l.CameraPos},
		{names.CameraDir, l.CameraDir},
	}
}

// Unresolved returns the names that did not resolve.
func (l Locations) Unresolved(names UniformNames) []string {
	var missing []string
	for _, b := range l.Bindings(names) {
		if !b.Resolved() {
			missing = append(missing, b.Name)
		}
	}
	return missing
}

// Publish uploads the per-frame uniforms in a fixed order: resolution,
// time, camera position, camera direction. Unresolved locations are skipped.
func Publish(dst UniformSetter, loc Locations, resolution mgl32.Vec2, elapsed float32, cam *camera.State) {
	if loc.Resolution != NotFound {
		dst.SetVec2At(loc.Resolution, resolution)
	}
	if loc.Time != NotFound {
		dst.SetFloatAt(loc.Time, elapsed)
	}
	if loc.CameraPos != NotFound {
		dst.SetVec3At(loc.CameraPos, cam.Position)
	}
	if loc.CameraDir != NotFound {
		dst.SetVec3At(loc.CameraDir, cam.Forward)
	}
}
