package glapp

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Program is a linked vertex + fragment shader program.
//
// A Program whose construction failed has a zero handle. It stays safe to use:
// Use binds object zero and every uniform set reports false.
type Program struct {
	gl           GL
	loader       FileLoader
	vertexPath   string
	fragmentPath string

	handle   uint32
	uniforms *UniformCache
	err      error
	deleted  bool
}

// NewProgram compiles the shaders at vertexPath and fragmentPath and links
// them. It never returns nil; check Ok or Err for the outcome. Failures are
// logged with the driver diagnostics.
func NewProgram(gl GL, vertexPath, fragmentPath string, opts ...ProgramOption) *Program {
	p := &Program{
		gl:           gl,
		loader:       OSLoader{},
		vertexPath:   vertexPath,
		fragmentPath: fragmentPath,
	}
	for _, opt := range opts {
		opt(p)
	}

	p.handle, p.err = p.build()
	p.uniforms = NewUniformCache(gl, p.handle)
	return p
}

// Handle returns the program object name, or zero if the program is unusable.
func (p *Program) Handle() uint32 { return p.handle }

// Ok reports whether the program compiled and linked.
func (p *Program) Ok() bool { return p.handle != 0 }

// Err returns the error from the last build, or nil.
func (p *Program) Err() error { return p.err }

// VertexPath returns the path of the vertex shader source.
func (p *Program) VertexPath() string { return p.vertexPath }

// FragmentPath returns the path of the fragment shader source.
func (p *Program) FragmentPath() string { return p.fragmentPath }

// Use makes p the current program. Program bindings are global context state.
func (p *Program) Use() {
	p.gl.UseProgram(p.handle)
}

// Delete releases the program object. Calling it more than once is safe.
// A deleted program cannot be reloaded.
func (p *Program) Delete() {
	if p.handle != 0 {
		p.gl.DeleteProgram(p.handle)
	}
	p.handle = 0
	p.deleted = true
	p.uniforms.Reset(0)
}

// Deleted reports whether Delete was called.
func (p *Program) Deleted() bool { return p.deleted }

// Reload rebuilds the program from its source paths. On success the old
// program object is released and cached uniform locations are dropped. On
// failure the current program is left in place and the error is returned.
// Reload returns ErrProgramDeleted once Delete has been called.
func (p *Program) Reload() error {
	if p.deleted {
		return ErrProgramDeleted
	}
	handle, err := p.build()
	if err != nil {
		if p.handle == 0 {
			p.err = err
		}
		return err
	}

	if p.handle != 0 {
		p.gl.DeleteProgram(p.handle)
	}
	p.handle = handle
	p.err = nil
	p.uniforms.Reset(handle)
	logger.Infof("reloaded shader program %d (vs: %q, fs: %q)", handle, p.vertexPath, p.fragmentPath)
	return nil
}

// SetUniform sets a float, vec2, vec3 or vec4 uniform from 1 to 4 values.
// It returns false without touching the context when the value count is out
// of range or the program has no active uniform called name.
func (p *Program) SetUniform(name string, values []float32) bool {
	if len(values) < 1 || len(values) > 4 {
		return false
	}
	loc, ok := p.uniforms.Location(name)
	if !ok {
		return false
	}

	switch len(values) {
	case 1:
		p.gl.Uniform1f(loc, values[0])
	case 2:
		p.gl.Uniform2f(loc, values[0], values[1])
	case 3:
		p.gl.Uniform3f(loc, values[0], values[1], values[2])
	case 4:
		p.gl.Uniform4f(loc, values[0], values[1], values[2], values[3])
	}
	return true
}

// SetUniform1f sets a float uniform.
func (p *Program) SetUniform1f(name string, v0 float32) bool {
	loc, ok := p.uniforms.Location(name)
	if !ok {
		return false
	}
	p.gl.Uniform1f(loc, v0)
	return true
}

// SetUniform2f sets a vec2 uniform.
func (p *Program) SetUniform2f(name string, v0, v1 float32) bool {
	loc, ok := p.uniforms.Location(name)
	if !ok {
		return false
	}
	p.gl.Uniform2f(loc, v0, v1)
	return true
}

// SetUniform3f sets a vec3 uniform.
func (p *Program) SetUniform3f(name string, v0, v1, v2 float32) bool {
	loc, ok := p.uniforms.Location(name)
	if !ok {
		return false
	}
	p.gl.Uniform3f(loc, v0, v1, v2)
	return true
}

// SetUniform4f sets a vec4 uniform.
func (p *Program) SetUniform4f(name string, v0, v1, v2, v3 float32) bool {
	loc, ok := p.uniforms.Location(name)
	if !ok {
		return false
	}
	p.gl.Uniform4f(loc, v0, v1, v2, v3)
	return true
}

// SetUniformVec2 sets a vec2 uniform from v.
func (p *Program) SetUniformVec2(name string, v mgl32.Vec2) bool {
	return p.SetUniform2f(name, v[0], v[1])
}

// SetUniformVec3 sets a vec3 uniform from v.
func (p *Program) SetUniformVec3(name string, v mgl32.Vec3) bool {
	return p.SetUniform3f(name, v[0], v[1], v[2])
}

// SetUniformVec4 sets a vec4 uniform from v.
func (p *Program) SetUniformVec4(name string, v mgl32.Vec4) bool {
	return p.SetUniform4f(name, v[0], v[1], v[2], v[3])
}

// SetUniformMat4 sets a mat4 uniform from a column-major matrix.
func (p *Program) SetUniformMat4(name string, m mgl32.Mat4) bool {
	loc, ok := p.uniforms.Location(name)
	if !ok {
		return false
	}
	mat := [16]float32(m)
	p.gl.UniformMatrix4fv(loc, &mat)
	return true
}

// build compiles both stages and links them into a new program object.
// Stage objects never outlive this call.
func (p *Program) build() (uint32, error) {
	vs, err := p.compileStage(StageVertex, p.vertexPath)
	if err != nil {
		return 0, err
	}

	fs, err := p.compileStage(StageFragment, p.fragmentPath)
	if err != nil {
		p.gl.DeleteShader(vs)
		return 0, err
	}

	program := p.gl.CreateProgram()
	p.gl.AttachShader(program, vs)
	p.gl.AttachShader(program, fs)
	p.gl.LinkProgram(program)

	linked := p.gl.LinkStatus(program)
	var infoLog string
	if !linked {
		infoLog = p.gl.ProgramInfoLog(program, InfoLogSize)
	}

	p.gl.DeleteShader(vs)
	p.gl.DeleteShader(fs)

	if !linked {
		logger.Errorf("shader program (vs: %q, fs: %q) linking failed!\n%s", p.vertexPath, p.fragmentPath, infoLog)
		p.gl.DeleteProgram(program)
		return 0, &LinkError{VertexPath: p.vertexPath, FragmentPath: p.fragmentPath, Log: infoLog}
	}

	logger.Debugf("linked shader program %d (vs: %q, fs: %q)", program, p.vertexPath, p.fragmentPath)
	return program, nil
}

// compileStage reads and compiles a single stage. On failure the stage object
// is deleted and zero is returned.
func (p *Program) compileStage(stage ShaderStage, path string) (uint32, error) {
	source := p.loader.ReadFile(path)
	if source == "" {
		logger.Errorf("%s shader file %q is empty or unreadable", stage, path)
		return 0, fmt.Errorf("%s shader %q: %w", stage, path, ErrEmptySource)
	}

	shader := p.gl.CreateShader(stage)
	p.gl.ShaderSource(shader, source)
	p.gl.CompileShader(shader)

	if !p.gl.CompileStatus(shader) {
		infoLog := p.gl.ShaderInfoLog(shader, InfoLogSize)
		logger.Errorf("shader file %q compilation failed!\n%s", path, infoLog)
		p.gl.DeleteShader(shader)
		return 0, &CompileError{Stage: stage, Path: path, Log: infoLog}
	}
	return shader, nil
}
