package render

import "errors"

var (
	ErrNoSurface    = errors.New("renderer: no surface attached")
	ErrNoProgram    = errors.New("renderer: no shader program attached")
	ErrNoGeometry   = errors.New("renderer: no geometry attached")
	ErrInvalidSteps = errors.New("renderer: step sizes must be positive")
	ErrTerminated   = errors.New("renderer: already terminated")
)
