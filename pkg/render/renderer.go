// Package render drives the viewer: it owns the camera and frame clock,
// feeds them to the shader program as uniforms and draws the full-screen
// quad once per frame until the window closes or the quit key is held.
package render

import (
	"github.com/leterax/go-raymarch/internal/log"
	"github.com/leterax/go-raymarch/pkg/camera"
	"github.com/leterax/go-raymarch/pkg/input"
)

var logger = log.New("render")

// Surface is the window frames are presented to. Key state is level
// sampled through the embedded input.Source.
type Surface interface {
	input.Source

	ShouldClose() bool
	Clear()
	SwapBuffers()
	PollEvents()
}

// Program is a linked shader program.
type Program interface {
	UniformLocator
	UniformSetter

	Use()
}

// Geometry is the static mesh drawn every frame.
type Geometry interface {
	Draw()
}

// State is the renderer life-cycle state.
type State int

const (
	Running State = iota
	Terminated
)

func (s State) String() string {
	if s == Terminated {
		return "terminated"
	}
	return "running"
}

// Reason records why the renderer terminated.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonCloseRequested
	ReasonQuitKey
)

func (r Reason) String() string {
	switch r {
	case ReasonCloseRequested:
		return "window close requested"
	case ReasonQuitKey:
		return "quit key pressed"
	}
	return "none"
}

// Stats summarizes a finished session.
type Stats struct {
	Frames   uint64
	Elapsed  float32
	Reason   Reason
	Released []string
}

// A step is one stage of a frame. Steps run in slice order.
type step struct {
	name string
	run  func()
}

// Renderer runs the frame loop. It is not safe for concurrent use; every
// method must be called from the thread that owns the GL context.
type Renderer struct {
	cfg       Config
	surface   Surface
	program   Program
	geometry  Geometry
	resources *Resources

	camera    *camera.State
	clock     *Clock
	locations Locations
	frame     input.Snapshot

	state  State
	frames uint64
	stats  Stats

	steps []step
}

// New creates a renderer over already acquired collaborators. Uniform
// locations are looked up here, once. resources may be nil.
func New(cfg Config, surface Surface, program Program, geometry Geometry, resources *Resources) (*Renderer, error) {
	switch {
	case surface == nil:
		return nil, ErrNoSurface
	case program == nil:
		return nil, ErrNoProgram
	case geometry == nil:
		return nil, ErrNoGeometry
	case cfg.MoveStep <= 0 || cfg.RotateStep <= 0 || cfg.TimeStep <= 0:
		return nil, ErrInvalidSteps
	}

	cam, err := camera.New(cfg.InitialPosition, cfg.InitialForward)
	if err != nil {
		return nil, err
	}

	if resources == nil {
		resources = &Resources{}
	}

	r := &Renderer{
		cfg:       cfg,
		surface:   surface,
		program:   program,
		geometry:  geometry,
		resources: resources,
		camera:    cam,
		clock:     NewClock(cfg.TimeStep, cfg.Precision),
		locations: LookupLocations(program, cfg.Uniforms),
	}

	for _, name := range r.locations.Unresolved(cfg.Uniforms) {
		logger.Warningf("uniform %q not found in program; it will not be updated", name)
	}

	r.steps = []step{
		{"advance-clock", func() { r.clock.Tick() }},
		{"integrate-camera", func() { r.camera.Integrate(r.frame, r.cfg.MoveStep, r.cfg.RotateStep) }},
		{"clear", r.surface.Clear},
		{"publish-uniforms", r.publish},
		{"draw", r.geometry.Draw},
		{"present", r.surface.SwapBuffers},
		{"poll-events", r.surface.PollEvents},
	}

	return r, nil
}

// StepNames returns the names of the per-frame steps in execution order.
func (r *Renderer) StepNames() []string {
	names := make([]string, len(r.steps))
	for i, s := range r.steps {
		names[i] = s.name
	}
	return names
}

func (r *Renderer) publish() {
	r.program.Use()
	Publish(r.program, r.locations, r.cfg.Resolution(), r.clock.Elapsed(), r.camera)
}

// Frame runs a single iteration of the loop and returns the resulting
// state. Termination is checked once, before any frame work is done.
func (r *Renderer) Frame() State {
	if r.state == Terminated {
		return Terminated
	}

	if r.surface.ShouldClose() {
		r.terminate(ReasonCloseRequested)
		return r.state
	}

	r.frame = input.Sample(r.surface)
	if r.frame.Active(input.Quit) {
		r.terminate(ReasonQuitKey)
		return r.state
	}

	for _, s := range r.steps {
		s.run()
	}
	r.frames++

	return r.state
}

// Run loops until the window closes or the quit key is held, then releases
// the acquired resources and returns the session stats.
func (r *Renderer) Run() (Stats, error) {
	if r.state == Terminated {
		return r.stats, ErrTerminated
	}

	logger.Infof("entering render loop (clock precision: %s)", r.clock.Precision())
	for r.Frame() == Running {
	}

	return r.stats, nil
}

func (r *Renderer) terminate(reason Reason) {
	r.state = Terminated

	released := r.resources.Release()
	for _, name := range released {
		logger.Debugf("released %s", name)
	}

	r.stats = Stats{
		Frames:   r.frames,
		Elapsed:  r.clock.Elapsed(),
		Reason:   reason,
		Released: released,
	}
	logger.Noticef("render loop terminated: %s", reason)
}

// Camera returns the renderer's camera.
func (r *Renderer) Camera() *camera.State {
	return r.camera
}

// Elapsed returns the current frame clock value.
func (r *Renderer) Elapsed() float32 {
	return r.clock.Elapsed()
}

// Locations returns the uniform locations resolved at startup.
func (r *Renderer) Locations() Locations {
	return r.locations
}

// State returns the current life-cycle state.
func (r *Renderer) State() State {
	return r.state
}

// Stats returns the session stats. They are only populated once the
// renderer has terminated.
func (r *Renderer) Stats() Stats {
	return r.stats
}
