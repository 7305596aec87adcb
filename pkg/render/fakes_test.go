package render

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-raymarch/pkg/input"
)

// recorder collects collaborator calls in the order they happen.
type recorder struct {
	calls []string
}

func (r *recorder) record(call string) {
	r.calls = append(r.calls, call)
}

type fakeSurface struct {
	rec *recorder

	// closeAfter requests a close once this many frames were presented.
	closeAfter int
	// held returns the held actions for the given presented frame count.
	held func(frame int) []input.Action

	presented int
	polled    int
}

func (s *fakeSurface) Pressed(a input.Action) bool {
	if s.held == nil {
		return false
	}
	for _, h := range s.held(s.presented) {
		if h == a {
			return true
		}
	}
	return false
}

func (s *fakeSurface) ShouldClose() bool {
	s.rec.record("should-close")
	return s.closeAfter >= 0 && s.presented >= s.closeAfter
}

func (s *fakeSurface) Clear() { s.rec.record("clear") }

func (s *fakeSurface) SwapBuffers() {
	s.rec.record("swap")
	s.presented++
}

func (s *fakeSurface) PollEvents() {
	s.rec.record("poll")
	s.polled++
}

type uniformWrite struct {
	location int32
	value    []float32
}

type fakeProgram struct {
	rec       *recorder
	locations map[string]int32
	writes    []uniformWrite
	lookups   int
}

func (p *fakeProgram) UniformLocation(name string) int32 {
	p.lookups++
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	return NotFound
}

func (p *fakeProgram) Use() { p.rec.record("use") }

func (p *fakeProgram) SetVec2At(location int32, v mgl32.Vec2) {
	p.rec.record("uniform")
	p.writes = append(p.writes, uniformWrite{location, v[:]})
}

func (p *fakeProgram) SetFloatAt(location int32, v float32) {
	p.rec.record("uniform")
	p.writes = append(p.writes, uniformWrite{location, []float32{v}})
}

func (p *fakeProgram) SetVec3At(location int32, v mgl32.Vec3) {
	p.rec.record("uniform")
	p.writes = append(p.writes, uniformWrite{location, v[:]})
}

// last returns the most recent write to location.
func (p *fakeProgram) last(location int32) ([]float32, bool) {
	for i := len(p.writes) - 1; i >= 0; i-- {
		if p.writes[i].location == location {
			return p.writes[i].value, true
		}
	}
	return nil, false
}

type fakeGeometry struct {
	rec   *recorder
	draws int
}

func (g *fakeGeometry) Draw() {
	g.rec.record("draw")
	g.draws++
}

func allLocations() map[string]int32 {
	return map[string]int32{
		UniformResolution: 0,
		UniformTime:       1,
		UniformCameraPos:  2,
		UniformCameraDir:  3,
	}
}
