package openglhelper

import (
	"fmt"
	"strings"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/leterax/go-raymarch/pkg/input"
)

// Bindings maps each logical action to the keys that trigger it.
type Bindings map[input.Action][]glfw.Key

// DefaultBindings returns the viewer key map: W/S/A/D to move, Up/Down
// arrows to rise and sink, Left/Right arrows to turn and Escape to quit.
func DefaultBindings() Bindings {
	return Bindings{
		input.MoveForward: {glfw.KeyW},
		input.MoveBack:    {glfw.KeyS},
		input.MoveLeft:    {glfw.KeyA},
		input.MoveRight:   {glfw.KeyD},
		input.MoveUp:      {glfw.KeyUp},
		input.MoveDown:    {glfw.KeyDown},
		input.RotateLeft:  {glfw.KeyLeft},
		input.RotateRight: {glfw.KeyRight},
		input.Quit:        {glfw.KeyEscape},
	}
}

var keyNames = map[glfw.Key]string{
	glfw.KeyW:      "W",
	glfw.KeyS:      "S",
	glfw.KeyA:      "A",
	glfw.KeyD:      "D",
	glfw.KeyUp:     "Up",
	glfw.KeyDown:   "Down",
	glfw.KeyLeft:   "Left",
	glfw.KeyRight:  "Right",
	glfw.KeyEscape: "Esc",
}

// KeyName returns a printable name for key.
func KeyName(key glfw.Key) string {
	if name, ok := keyNames[key]; ok {
		return name
	}
	return fmt.Sprintf("key(%d)", int(key))
}

// Describe lists the bindings one action per line, in action order.
func (b Bindings) Describe() string {
	var sb strings.Builder
	for _, a := range input.Actions() {
		keys := b[a]
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = KeyName(k)
		}
		fmt.Fprintf(&sb, "%-13s %s\n", a, strings.Join(names, ", "))
	}
	return sb.String()
}
