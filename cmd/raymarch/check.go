package main

import (
	"github.com/leterax/go-raymarch/pkg/render"
	"github.com/urfave/cli"
)

// Check builds the shader program in a hidden context and reports which
// per-frame uniforms it declares.
func Check(ctx *cli.Context) error {
	setupLogging(ctx)

	cfg, err := viewerConfig(ctx)
	if err != nil {
		return setupFailure("invalid configuration", err)
	}

	window, err := openWindow(ctx, cfg, true)
	if err != nil {
		return setupFailure("failed to create context", err)
	}
	defer window.Close()

	program, err := loadProgram(ctx)
	if err != nil {
		return setupFailure("failed to load shader program", err)
	}
	defer program.Delete()

	locations := render.LookupLocations(program, cfg.Uniforms)
	logger.Noticef("shader program ok\n%s", render.BindingTable(locations.Bindings(cfg.Uniforms)))

	for _, name := range locations.Unresolved(cfg.Uniforms) {
		logger.Warningf("uniform %q is not declared or unused; it will keep its default value", name)
	}
	return nil
}
