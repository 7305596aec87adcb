// Package camera holds the viewer's camera state and integrates keyboard
// motion into it.
package camera

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-raymarch/pkg/input"
)

// WorldUp is the fixed axis yaw rotations are applied about.
var WorldUp = mgl32.Vec3{0, 1, 0}

// ErrDegenerateBasis is returned when the initial forward vector is zero or
// parallel to WorldUp, so no right vector can be derived from it.
var ErrDegenerateBasis = errors.New("camera: forward vector cannot span a basis with world up")

// State is the camera position and its orthonormal basis.
//
// Right and Forward are unit length and orthogonal; Up is always Right x
// Forward. The cross order is fixed at construction and never flipped.
type State struct {
	Position mgl32.Vec3
	Forward  mgl32.Vec3
	Right    mgl32.Vec3
	Up       mgl32.Vec3
}

// New creates a camera at position looking along forward.
func New(position, forward mgl32.Vec3) (*State, error) {
	if forward.Len() == 0 {
		return nil, ErrDegenerateBasis
	}
	forward = forward.Normalize()

	right := forward.Cross(WorldUp)
	if right.Len() < 1e-6 {
		return nil, ErrDegenerateBasis
	}
	right = right.Normalize()

	return &State{
		Position: position,
		Forward:  forward,
		Right:    right,
		Up:       right.Cross(forward),
	}, nil
}

// Integrate returns s advanced by one frame of input. s is not modified.
func Integrate(s State, in input.Snapshot, moveStep, rotateStep float32) State {
	s.Integrate(in, moveStep, rotateStep)
	return s
}

// Integrate applies one frame of input in place. Translation uses the basis
// as it was at the start of the frame; yaw rotation is applied afterwards.
func (s *State) Integrate(in input.Snapshot, moveStep, rotateStep float32) {
	if in.Active(input.MoveForward) {
		s.Position = s.Position.Add(s.Forward.Mul(moveStep))
	}
	if in.Active(input.MoveBack) {
		s.Position = s.Position.Sub(s.Forward.Mul(moveStep))
	}
	if in.Active(input.MoveLeft) {
		s.Position = s.Position.Sub(s.Right.Mul(moveStep))
	}
	if in.Active(input.MoveRight) {
		s.Position = s.Position.Add(s.Right.Mul(moveStep))
	}
	if in.Active(input.MoveUp) {
		s.Position = s.Position.Add(s.Up.Mul(moveStep))
	}
	if in.Active(input.MoveDown) {
		s.Position = s.Position.Sub(s.Up.Mul(moveStep))
	}

	var angle float32
	if in.Active(input.RotateLeft) {
		angle += rotateStep
	}
	if in.Active(input.RotateRight) {
		angle -= rotateStep
	}
	if angle != 0 {
		s.Yaw(angle)
	}
}

// Yaw rotates the basis by angle radians about WorldUp and rebuilds it so
// that rounding error does not accumulate across frames.
func (s *State) Yaw(angle float32) {
	rotation := mgl32.Rotate3DY(angle)

	forward := rotation.Mul3x1(s.Forward).Normalize()
	right := rotation.Mul3x1(s.Right)
	right = right.Sub(forward.Mul(right.Dot(forward))).Normalize()

	s.Forward = forward
	s.Right = right
	s.Up = right.Cross(forward)
}

// Orthonormal reports whether Forward and Right are unit length and
// mutually orthogonal with Up, within tol.
func (s State) Orthonormal(tol float32) bool {
	within := func(v, want float32) bool {
		return mgl32.Abs(v-want) <= tol
	}
	return within(s.Forward.Len(), 1) &&
		within(s.Right.Len(), 1) &&
		within(s.Up.Len(), 1) &&
		within(s.Right.Dot(s.Forward), 0) &&
		within(s.Up.Dot(s.Forward), 0) &&
		within(s.Up.Dot(s.Right), 0)
}
