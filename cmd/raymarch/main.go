package main

import (
	"os"
	"runtime"

	"github.com/urfave/cli"
)

func init() {
	// GLFW and OpenGL calls must all come from the main thread
	runtime.LockOSThread()
}

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "raymarch"
	app.Usage = "fly a camera through a fragment-shader scene"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "vertex",
			Usage: "vertex shader source file (embedded default when empty)",
		},
		cli.StringFlag{
			Name:  "fragment",
			Usage: "fragment shader source file (embedded default when empty)",
		},
		cli.BoolTFlag{
			Name:  "vsync",
			Usage: "wait for vertical sync when presenting frames",
		},
		cli.StringFlag{
			Name:  "clock-precision",
			Value: "double",
			Usage: "frame clock accumulator: single or double",
		},
	}
	app.Action = View
	app.Commands = []cli.Command{
		{
			Name:  "view",
			Usage: "open the viewer window (default)",
			Description: `
Render the fragment shader over a full-screen quad and fly the camera with
W/S/A/D (move), Up/Down (rise/sink) and Left/Right (turn). Press Esc or close
the window to quit.`,
			Action: View,
		},
		{
			Name:  "check",
			Usage: "compile and link the shaders and report uniform bindings",
			Description: `
Create a hidden OpenGL context, build the shader program and print which of
the per-frame uniforms the program declares. Exits non-zero when the program
fails to compile or link.`,
			Action: Check,
		},
	}

	if err := app.Run(os.Args); err != nil {
		os.Exit(reportError(os.Stderr, app.Name, err))
	}
}
