package openglhelper

import (
	"github.com/go-gl/gl/v3.3-core/gl"
)

// QuadVertices covers normalized device coordinates as a triangle strip,
// two floats per vertex.
var QuadVertices = []float32{
	-1.0, -1.0,
	1.0, -1.0,
	-1.0, 1.0,
	1.0, 1.0,
}

// Quad is the static full-screen quad every fragment is shaded through.
type Quad struct {
	vao *VertexArrayObject
	vbo *BufferObject
}

// NewQuad uploads the quad vertices once, then records the attribute layout
// (attribute 0, vec2) in a fresh VAO. The buffer is acquired before the VAO.
func NewQuad() *Quad {
	vbo := NewVBO(QuadVertices, StaticDraw)

	vao := NewVAO()
	vao.Bind()
	vbo.Bind()
	vao.SetVertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, 0)

	vao.Unbind()

	return &Quad{vao: vao, vbo: vbo}
}

// Draw renders the quad with the currently bound program.
func (q *Quad) Draw() {
	q.vao.Bind()
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, int32(len(QuadVertices)/2))
}

// DeleteVAO releases the vertex array object.
func (q *Quad) DeleteVAO() {
	q.vao.Delete()
}

// DeleteVBO releases the vertex buffer.
func (q *Quad) DeleteVBO() {
	q.vbo.Delete()
}
