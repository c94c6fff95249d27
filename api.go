package glapp

// InfoLogSize bounds the diagnostic text read back from the driver after a
// failed compile or link.
const InfoLogSize = 4096

// ShaderStage identifies a programmable pipeline stage.
type ShaderStage int

const (
	StageVertex   ShaderStage = iota // vertex shader
	StageFragment                    // fragment shader
)

// String returns the stage name used in diagnostics.
func (s ShaderStage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// GL is the part of the OpenGL API driven by this package.
// All methods must be called on the thread the context is current on.
type GL interface {
	// Init loads the function table for the current context.
	Init() error

	CreateShader(stage ShaderStage) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	CompileStatus(shader uint32) bool
	ShaderInfoLog(shader uint32, bufSize int) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	LinkStatus(program uint32) bool
	ProgramInfoLog(program uint32, bufSize int) string
	DeleteProgram(program uint32)
	UseProgram(program uint32)

	// GetUniformLocation returns -1 when the program has no active uniform
	// with that name.
	GetUniformLocation(program uint32, name string) int32
	Uniform1f(location int32, v0 float32)
	Uniform2f(location int32, v0, v1 float32)
	Uniform3f(location int32, v0, v1, v2 float32)
	Uniform4f(location int32, v0, v1, v2, v3 float32)
	UniformMatrix4fv(location int32, m *[16]float32)

	EnableDepthTest()
	// EnableAlphaBlend enables blending with SRC_ALPHA, ONE_MINUS_SRC_ALPHA.
	EnableAlphaBlend()
	Viewport(x, y, width, height int)
	ClearColor(r, g, b, a float32)
	// Clear clears the color and depth buffers.
	Clear()
}

// WindowHints describe the context requested at window creation.
type WindowHints struct {
	ContextVersionMajor int
	ContextVersionMinor int
	CoreProfile         bool
	ForwardCompatible   bool
	Resizable           bool
}

// Platform is the windowing system.
type Platform interface {
	Init() error
	Terminate()
	CreateWindow(hints WindowHints, width, height int, title string) (Window, error)
	PollEvents()
	// SwapInterval sets the number of screen updates to wait before swapping.
	// It applies to the current context.
	SwapInterval(interval int)
}

// FramebufferSizeFunc is called when the drawable size of w changes.
type FramebufferSizeFunc func(w Window, width, height int)

// Window is a platform window with an attached OpenGL context.
type Window interface {
	MakeContextCurrent()
	ShouldClose() bool
	SetShouldClose(value bool)
	KeyPressed(key Key) bool
	SwapBuffers()
	SetFramebufferSizeCallback(fn FramebufferSizeFunc)
	Destroy()
}
