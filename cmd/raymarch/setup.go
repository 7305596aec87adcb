package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/leterax/go-raymarch/internal/openglhelper"
	"github.com/leterax/go-raymarch/pkg/render"
	"github.com/leterax/go-raymarch/pkg/shaders"
	"github.com/urfave/cli"
)

var errShaderPaths = errors.New("--vertex and --fragment must be given together")

// Exit code for setup failures.
const exitSetupFailure = 1

func setupFailure(stage string, err error) error {
	return cli.NewExitError(fmt.Sprintf("%s: %v", stage, err), exitSetupFailure)
}

func openWindow(ctx *cli.Context, cfg render.Config, hidden bool) (*openglhelper.Window, error) {
	window, err := openglhelper.NewWindow(openglhelper.WindowOptions{
		Width:  cfg.Width,
		Height: cfg.Height,
		Title:  render.WindowTitle,
		VSync:  ctx.GlobalBoolT("vsync"),
		Hidden: hidden,
	})
	if err != nil {
		return nil, err
	}

	version, renderer := openglhelper.GLInfo()
	logger.Infof("OpenGL %s on %s", version, renderer)

	return window, nil
}

// loadProgram builds the shader program from the --vertex/--fragment files,
// or from the embedded sources when neither is set.
func loadProgram(ctx *cli.Context) (*openglhelper.Shader, error) {
	vertexPath, fragmentPath := ctx.GlobalString("vertex"), ctx.GlobalString("fragment")

	switch {
	case vertexPath == "" && fragmentPath == "":
		logger.Info("using embedded shaders")
		return openglhelper.NewShader(shaders.VertexShader, shaders.FragmentShader)
	case vertexPath == "" || fragmentPath == "":
		return nil, errShaderPaths
	}

	logger.Infof("loading shaders from %s and %s", vertexPath, fragmentPath)
	return openglhelper.LoadShaderFromFiles(vertexPath, fragmentPath)
}

func viewerConfig(ctx *cli.Context) (render.Config, error) {
	cfg := render.DefaultConfig()

	precision, err := render.ParsePrecision(ctx.GlobalString("clock-precision"))
	if err != nil {
		return cfg, err
	}
	cfg.Precision = precision

	return cfg, nil
}

// reportError writes an error that escaped the cli exit handler to w and
// returns the process exit code for it.
func reportError(w io.Writer, name string, err error) int {
	fmt.Fprintf(w, "%s: %v\n", name, err)
	if coder, ok := err.(cli.ExitCoder); ok && coder.ExitCode() != 0 {
		return coder.ExitCode()
	}
	return exitSetupFailure
}
