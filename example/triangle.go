package main

import "github.com/go-gl/gl/v4.1-core/gl"

// triangle is the demo geometry: one VAO with a position-only VBO.
type triangle struct {
	vao, vbo uint32
}

var triangleVertices = []float32{
	-0.6, -0.5, 0,
	0.6, -0.5, 0,
	0, 0.6, 0,
}

func newTriangle() *triangle {
	t := &triangle{}

	gl.GenVertexArrays(1, &t.vao)
	gl.BindVertexArray(t.vao)

	gl.GenBuffers(1, &t.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, t.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(triangleVertices)*4, gl.Ptr(triangleVertices), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)
	return t
}

func (t *triangle) draw() {
	gl.BindVertexArray(t.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(triangleVertices)/3))
	gl.BindVertexArray(0)
}

func (t *triangle) delete() {
	if t.vbo != 0 {
		gl.DeleteBuffers(1, &t.vbo)
	}
	if t.vao != 0 {
		gl.DeleteVertexArrays(1, &t.vao)
	}
}
