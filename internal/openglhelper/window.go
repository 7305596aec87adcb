package openglhelper

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-raymarch/pkg/input"
)

// WindowOptions configures NewWindow.
type WindowOptions struct {
	Width  int
	Height int
	Title  string
	VSync  bool
	// Hidden creates the context without showing the window.
	Hidden bool
	// Bindings maps logical actions to keys. DefaultBindings is used when nil.
	Bindings Bindings
}

// Window handles GLFW window creation and management
type Window struct {
	glfwWindow *glfw.Window
	bindings   Bindings
	clearColor mgl32.Vec4
	closed     bool
}

// NewWindow creates a new GLFW window with an OpenGL 3.3 core context and
// makes the context current on the calling thread.
func NewWindow(opts WindowOptions) (*Window, error) {
	// Initialize GLFW
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	// Configure GLFW
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	// The resolution uniform is fixed, so the framebuffer must be too.
	glfw.WindowHint(glfw.Resizable, glfw.False)
	if opts.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	// Create window
	glfwWindow, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}

	glfwWindow.MakeContextCurrent()
	if opts.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	// Initialize OpenGL
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	bindings := opts.Bindings
	if bindings == nil {
		bindings = DefaultBindings()
	}

	return &Window{
		glfwWindow: glfwWindow,
		bindings:   bindings,
		clearColor: mgl32.Vec4{0, 0, 0, 1},
	}, nil
}

// GLInfo returns the version and renderer strings of the current context.
func GLInfo() (version, renderer string) {
	return gl.GoStr(gl.GetString(gl.VERSION)), gl.GoStr(gl.GetString(gl.RENDERER))
}

// Clear clears the color buffer
func (w *Window) Clear() {
	gl.ClearColor(w.clearColor.X(), w.clearColor.Y(), w.clearColor.Z(), w.clearColor.W())
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// SwapBuffers swaps the front and back buffers
func (w *Window) SwapBuffers() {
	w.glfwWindow.SwapBuffers()
}

// PollEvents processes pending events
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// ShouldClose returns whether the window should close
func (w *Window) ShouldClose() bool {
	return w.glfwWindow.ShouldClose()
}

// Pressed reports whether any key bound to action is currently held.
func (w *Window) Pressed(action input.Action) bool {
	for _, key := range w.bindings[action] {
		if w.glfwWindow.GetKey(key) == glfw.Press {
			return true
		}
	}
	return false
}

// Close destroys the window and terminates GLFW. Later calls are no-ops.
func (w *Window) Close() {
	if w.closed {
		return
	}
	w.closed = true
	w.glfwWindow.Destroy()
	glfw.Terminate()
}

