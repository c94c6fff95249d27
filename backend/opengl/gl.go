// Package opengl implements the glapp seams on go-gl (OpenGL 4.1 core) and GLFW.
package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/glapp"
)

// GL implements glapp.GL with the go-gl 4.1 core bindings.
type GL struct{}

// NewGL returns the go-gl implementation of glapp.GL.
func NewGL() *GL {
	return &GL{}
}

var _ glapp.GL = (*GL)(nil)

// Init loads the OpenGL function pointers. A context must be current.
func (*GL) Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	return nil
}

// CreateShader creates a shader object for stage.
func (*GL) CreateShader(stage glapp.ShaderStage) uint32 {
	switch stage {
	case glapp.StageFragment:
		return gl.CreateShader(gl.FRAGMENT_SHADER)
	default:
		return gl.CreateShader(gl.VERTEX_SHADER)
	}
}

// ShaderSource replaces the source of shader.
func (*GL) ShaderSource(shader uint32, source string) {
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
}

// CompileShader compiles shader.
func (*GL) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

// CompileStatus reports whether the last compile of shader succeeded.
func (*GL) CompileStatus(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

// ShaderInfoLog returns up to bufSize bytes of the shader info log.
func (*GL) ShaderInfoLog(shader uint32, bufSize int) string {
	if bufSize <= 0 {
		return ""
	}
	buf := make([]byte, bufSize)
	var length int32
	gl.GetShaderInfoLog(shader, int32(bufSize), &length, &buf[0])
	return string(buf[:clampLength(length, bufSize)])
}

// DeleteShader flags shader for deletion.
func (*GL) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

// CreateProgram creates an empty program object.
func (*GL) CreateProgram() uint32 {
	return gl.CreateProgram()
}

// AttachShader attaches shader to program.
func (*GL) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

// LinkProgram links program.
func (*GL) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

// LinkStatus reports whether the last link of program succeeded.
func (*GL) LinkStatus(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

// ProgramInfoLog returns up to bufSize bytes of the program info log.
func (*GL) ProgramInfoLog(program uint32, bufSize int) string {
	if bufSize <= 0 {
		return ""
	}
	buf := make([]byte, bufSize)
	var length int32
	gl.GetProgramInfoLog(program, int32(bufSize), &length, &buf[0])
	return string(buf[:clampLength(length, bufSize)])
}

// DeleteProgram deletes program. Zero is ignored by the driver.
func (*GL) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

// UseProgram binds program for subsequent draws.
func (*GL) UseProgram(program uint32) {
	gl.UseProgram(program)
}

// GetUniformLocation returns the location of name in program, or -1.
func (*GL) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

// Uniform1f sets a float uniform on the bound program.
func (*GL) Uniform1f(location int32, v0 float32) {
	gl.Uniform1f(location, v0)
}

// Uniform2f sets a vec2 uniform on the bound program.
func (*GL) Uniform2f(location int32, v0, v1 float32) {
	gl.Uniform2f(location, v0, v1)
}

// Uniform3f sets a vec3 uniform on the bound program.
func (*GL) Uniform3f(location int32, v0, v1, v2 float32) {
	gl.Uniform3f(location, v0, v1, v2)
}

// Uniform4f sets a vec4 uniform on the bound program.
func (*GL) Uniform4f(location int32, v0, v1, v2, v3 float32) {
	gl.Uniform4f(location, v0, v1, v2, v3)
}

// UniformMatrix4fv sets a column-major mat4 uniform on the bound program.
func (*GL) UniformMatrix4fv(location int32, m *[16]float32) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

// EnableDepthTest turns on depth testing.
func (*GL) EnableDepthTest() {
	gl.Enable(gl.DEPTH_TEST)
}

// EnableAlphaBlend turns on blending with source-alpha factors.
func (*GL) EnableAlphaBlend() {
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
}

// Viewport sets the viewport rectangle.
func (*GL) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

// ClearColor sets the color Clear fills with.
func (*GL) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

// Clear clears the color and depth buffers.
func (*GL) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// clampLength bounds the length reported by the driver to the buffer size.
func clampLength(length int32, bufSize int) int {
	n := int(length)
	if n < 0 {
		return 0
	}
	return min(n, bufSize)
}
