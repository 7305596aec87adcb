package shaders

import (
	"strings"
	"testing"

	"github.com/leterax/go-raymarch/pkg/render"
)

func TestFragmentShaderDeclaresUniforms(t *testing.T) {
	names := render.DefaultUniformNames()
	for _, name := range []string{names.Resolution, names.Time, names.CameraPos, names.CameraDir} {
		if !strings.Contains(FragmentShader, "uniform") || !strings.Contains(FragmentShader, " "+name+";") {
			t.Fatalf("expected fragment shader to declare uniform %s", name)
		}
	}
}

func TestVertexShaderReadsQuadAttribute(t *testing.T) {
	if !strings.Contains(VertexShader, "layout (location = 0) in vec2") {
		t.Fatal("expected vertex shader to read a vec2 at attribute 0")
	}
	for _, src := range []string{VertexShader, FragmentShader} {
		if !strings.HasPrefix(src, "#version 330 core") {
			t.Fatal("expected GLSL 330 core sources")
		}
	}
}
