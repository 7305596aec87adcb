package main

import (
	"fmt"

	"github.com/leterax/go-raymarch/internal/openglhelper"
	"github.com/leterax/go-raymarch/pkg/render"
	"github.com/urfave/cli"
)

// View opens the viewer window and runs the render loop until the window
// is closed or Esc is pressed.
func View(ctx *cli.Context) error {
	setupLogging(ctx)

	cfg, err := viewerConfig(ctx)
	if err != nil {
		return setupFailure("invalid configuration", err)
	}

	// Handles are released in reverse order once the loop terminates. A
	// failure before that exits the process without releasing them.
	var resources render.Resources

	window, err := openWindow(ctx, cfg, false)
	if err != nil {
		return setupFailure("failed to create window", err)
	}
	resources.Push("window", window.Close)

	program, err := loadProgram(ctx)
	if err != nil {
		return setupFailure("failed to load shader program", err)
	}
	resources.Push("program", program.Delete)

	quad := openglhelper.NewQuad()
	resources.Push("vertex buffer", quad.DeleteVBO)
	resources.Push("vertex array", quad.DeleteVAO)

	r, err := render.New(cfg, window, program, quad, &resources)
	if err != nil {
		return setupFailure("failed to create renderer", err)
	}

	logger.Infof("uniform bindings\n%s", render.BindingTable(r.Locations().Bindings(cfg.Uniforms)))
	logger.Debugf("key bindings\n%s", openglhelper.DefaultBindings().Describe())

	stats, err := r.Run()
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("render loop: %v", err), exitSetupFailure)
	}

	logger.Noticef("session statistics\n%s", render.StatsTable(stats))
	return nil
}
