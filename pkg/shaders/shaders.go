// Package shaders provides the embedded GLSL sources used when no shader
// paths are given on the command line.
package shaders

import _ "embed"

// VertexShader passes the full-screen quad through unchanged.
//
//go:embed vert.glsl
var VertexShader string

// FragmentShader raymarches the demo scene using the per-frame uniforms.
//
//go:embed frag.glsl
var FragmentShader string
