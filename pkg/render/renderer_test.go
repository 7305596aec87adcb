package render

import (
	"reflect"
	"testing"

	"github.com/leterax/go-raymarch/pkg/input"
)

type harness struct {
	rec      *recorder
	surface  *fakeSurface
	program  *fakeProgram
	geometry *fakeGeometry
	res      *Resources
	released []string
}

func newHarness(t *testing.T, closeAfter int, held func(frame int) []input.Action) (*harness, *Renderer) {
	t.Helper()

	rec := &recorder{}
	h := &harness{
		rec:      rec,
		surface:  &fakeSurface{rec: rec, closeAfter: closeAfter, held: held},
		program:  &fakeProgram{rec: rec, locations: allLocations()},
		geometry: &fakeGeometry{rec: rec},
		res:      &Resources{},
	}
	for _, name := range []string{"window", "program", "vbo", "vao"} {
		name := name
		h.res.Push(name, func() { h.released = append(h.released, name) })
	}

	r, err := New(DefaultConfig(), h.surface, h.program, h.geometry, h.res)
	if err != nil {
		t.Fatal(err)
	}
	return h, r
}

func TestNewValidatesCollaborators(t *testing.T) {
	rec := &recorder{}
	surface := &fakeSurface{rec: rec}
	program := &fakeProgram{rec: rec}
	geometry := &fakeGeometry{rec: rec}

	if _, err := New(DefaultConfig(), nil, program, geometry, nil); err != ErrNoSurface {
		t.Fatalf("expected ErrNoSurface; got %v", err)
	}
	if _, err := New(DefaultConfig(), surface, nil, geometry, nil); err != ErrNoProgram {
		t.Fatalf("expected ErrNoProgram; got %v", err)
	}
	if _, err := New(DefaultConfig(), surface, program, nil, nil); err != ErrNoGeometry {
		t.Fatalf("expected ErrNoGeometry; got %v", err)
	}

	cfg := DefaultConfig()
	cfg.TimeStep = 0
	if _, err := New(cfg, surface, program, geometry, nil); err != ErrInvalidSteps {
		t.Fatalf("expected ErrInvalidSteps; got %v", err)
	}
}

func TestUniformsLookedUpOnce(t *testing.T) {
	h, r := newHarness(t, 10, nil)
	lookups := h.program.lookups

	if _, err := r.Run(); err != nil {
		t.Fatal(err)
	}
	if h.program.lookups != lookups {
		t.Fatalf("expected no lookups inside the loop; got %d extra", h.program.lookups-lookups)
	}
	if lookups != 4 {
		t.Fatalf("expected 4 lookups at startup; got %d", lookups)
	}
}

func TestFrameStepOrder(t *testing.T) {
	h, r := newHarness(t, -1, nil)

	exp := []string{"advance-clock", "integrate-camera", "clear", "publish-uniforms", "draw", "present", "poll-events"}
	if !reflect.DeepEqual(r.StepNames(), exp) {
		t.Fatalf("expected steps %v; got %v", exp, r.StepNames())
	}

	if r.Frame() != Running {
		t.Fatal("expected renderer to keep running")
	}

	expCalls := []string{"should-close", "clear", "use", "uniform", "uniform", "uniform", "uniform", "draw", "swap", "poll"}
	if !reflect.DeepEqual(h.rec.calls, expCalls) {
		t.Fatalf("expected calls %v; got %v", expCalls, h.rec.calls)
	}
}

func TestRunStopsOnCloseRequest(t *testing.T) {
	h, r := newHarness(t, 5, nil)

	stats, err := r.Run()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(r.Stats(), stats) {
		t.Fatalf("expected Stats() to match the Run result; got %+v, want %+v", r.Stats(), stats)
	}
	if stats.Frames != 5 || h.geometry.draws != 5 {
		t.Fatalf("expected 5 frames; got %d (draws %d)", stats.Frames, h.geometry.draws)
	}
	if stats.Reason != ReasonCloseRequested {
		t.Fatalf("expected close request; got %s", stats.Reason)
	}
	if r.State() != Terminated {
		t.Fatalf("expected terminated; got %s", r.State())
	}

	exp := []string{"vao", "vbo", "program", "window"}
	if !reflect.DeepEqual(h.released, exp) {
		t.Fatalf("expected release order %v; got %v", exp, h.released)
	}
}

func TestQuitKeySkipsFrameWork(t *testing.T) {
	held := func(frame int) []input.Action {
		if frame == 3 {
			return []input.Action{input.Quit, input.MoveForward}
		}
		return nil
	}
	h, r := newHarness(t, -1, held)

	stats, err := r.Run()
	if err != nil {
		t.Fatal(err)
	}
	if stats.Reason != ReasonQuitKey {
		t.Fatalf("expected quit key; got %s", stats.Reason)
	}
	if stats.Frames != 3 || h.surface.presented != 3 || h.surface.polled != 3 {
		t.Fatalf("expected 3 complete frames; got %d (presented %d, polled %d)", stats.Frames, h.surface.presented, h.surface.polled)
	}

	// The quit frame must not advance the clock or move the camera.
	if got := r.Camera().Position; got != DefaultConfig().InitialPosition {
		t.Fatalf("expected camera to stay at %v; got %v", DefaultConfig().InitialPosition, got)
	}
	if stats.Elapsed != r.Elapsed() {
		t.Fatalf("expected stats clock %v to match renderer clock %v", stats.Elapsed, r.Elapsed())
	}
	if diff := stats.Elapsed - 0.03; diff > 1e-6 || diff < -1e-6 {
		t.Fatalf("expected clock 0.03 after 3 frames; got %v", stats.Elapsed)
	}
}

func TestTerminationIsFinal(t *testing.T) {
	h, r := newHarness(t, 0, nil)

	if _, err := r.Run(); err != nil {
		t.Fatal(err)
	}
	if h.geometry.draws != 0 {
		t.Fatalf("expected no draws; got %d", h.geometry.draws)
	}

	if r.Frame() != Terminated {
		t.Fatal("expected terminated renderer to stay terminated")
	}
	if _, err := r.Run(); err != ErrTerminated {
		t.Fatalf("expected ErrTerminated; got %v", err)
	}
	if len(h.released) != 4 {
		t.Fatalf("expected resources released exactly once; got %v", h.released)
	}
}

func TestPublishedUniformsTrackCamera(t *testing.T) {
	held := func(frame int) []input.Action {
		return []input.Action{input.MoveForward, input.RotateLeft}
	}
	h, r := newHarness(t, 1, held)

	if _, err := r.Run(); err != nil {
		t.Fatal(err)
	}

	res, _ := h.program.last(0)
	if !reflect.DeepEqual(res, []float32{ScreenWidth, ScreenHeight}) {
		t.Fatalf("expected resolution %dx%d; got %v", ScreenWidth, ScreenHeight, res)
	}

	tm, _ := h.program.last(1)
	if tm[0] != r.Elapsed() {
		t.Fatalf("expected time uniform %v; got %v", r.Elapsed(), tm[0])
	}

	pos, _ := h.program.last(2)
	cam := r.Camera()
	if !reflect.DeepEqual(pos, cam.Position[:]) {
		t.Fatalf("expected camera position %v; got %v", cam.Position, pos)
	}
	if diff := pos[2] - 4.95; diff > 1e-5 || diff < -1e-5 {
		t.Fatalf("expected z 4.95 after one forward step; got %v", pos[2])
	}

	dir, _ := h.program.last(3)
	if !reflect.DeepEqual(dir, cam.Forward[:]) {
		t.Fatalf("expected camera direction %v; got %v", cam.Forward, dir)
	}
	if dir[0] >= 0 {
		t.Fatalf("expected direction to yaw left; got %v", dir)
	}
}

func TestUnresolvedUniformDoesNotAffectOthers(t *testing.T) {
	rec := &recorder{}
	surface := &fakeSurface{rec: rec, closeAfter: 2}
	locations := allLocations()
	delete(locations, UniformTime)
	program := &fakeProgram{rec: rec, locations: locations}

	r, err := New(DefaultConfig(), surface, program, &fakeGeometry{rec: rec}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.Run(); err != nil {
		t.Fatal(err)
	}

	if _, ok := program.last(1); ok {
		t.Fatal("expected no write for the unresolved time uniform")
	}
	for _, loc := range []int32{0, 2, 3} {
		if _, ok := program.last(loc); !ok {
			t.Fatalf("expected location %d to be published", loc)
		}
	}
	if len(program.writes) != 6 {
		t.Fatalf("expected 3 writes per frame over 2 frames; got %d", len(program.writes))
	}
}
