package glapp

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/go-theft-auto/glapp/log"
)

// mockGL records every call so tests can assert exactly what reached the driver.
// Shader sources containing "#error" fail to compile.
type mockGL struct {
	initErr error

	nextID   uint32
	shaders  map[uint32]*mockShader
	programs map[uint32]*mockProgram

	linkFail bool
	linkLog  string

	// uniforms maps declared uniform names to locations. When relocate is
	// set, every query after the first returns a different location.
	uniforms map[string]int32
	relocate bool
	queried  map[string]int

	calls        map[string]int
	uniformCalls []uniformCall
	used         []uint32

	depthTest  bool
	blend      bool
	viewport   [4]int
	clearColor [4]float32
}

type mockShader struct {
	stage    ShaderStage
	source   string
	compiled bool
	deleted  bool
}

type mockProgram struct {
	attached []uint32
	linked   bool
	deleted  bool
}

type uniformCall struct {
	fn       string
	location int32
	values   []float32
}

func newMockGL() *mockGL {
	return &mockGL{
		shaders:  make(map[uint32]*mockShader),
		programs: make(map[uint32]*mockProgram),
		uniforms: make(map[string]int32),
		queried:  make(map[string]int),
		calls:    make(map[string]int),
	}
}

func (m *mockGL) id() uint32 {
	m.nextID++
	return m.nextID
}

func (m *mockGL) Init() error {
	m.calls["Init"]++
	return m.initErr
}

func (m *mockGL) CreateShader(stage ShaderStage) uint32 {
	m.calls["CreateShader"]++
	id := m.id()
	m.shaders[id] = &mockShader{stage: stage}
	return id
}

func (m *mockGL) ShaderSource(shader uint32, source string) {
	m.calls["ShaderSource"]++
	m.shaders[shader].source = source
}

func (m *mockGL) CompileShader(shader uint32) {
	m.calls["CompileShader"]++
	s := m.shaders[shader]
	s.compiled = !strings.Contains(s.source, "#error")
}

func (m *mockGL) CompileStatus(shader uint32) bool {
	return m.shaders[shader].compiled
}

func (m *mockGL) ShaderInfoLog(shader uint32, bufSize int) string {
	m.calls["ShaderInfoLog"]++
	msg := "0:1: error: " + m.shaders[shader].stage.String() + " stage rejected"
	if len(msg) > bufSize {
		msg = msg[:bufSize]
	}
	return msg
}

func (m *mockGL) DeleteShader(shader uint32) {
	m.calls["DeleteShader"]++
	if s, ok := m.shaders[shader]; ok {
		s.deleted = true
	}
}

func (m *mockGL) CreateProgram() uint32 {
	m.calls["CreateProgram"]++
	id := m.id()
	m.programs[id] = &mockProgram{}
	return id
}

func (m *mockGL) AttachShader(program, shader uint32) {
	m.calls["AttachShader"]++
	p := m.programs[program]
	p.attached = append(p.attached, shader)
}

func (m *mockGL) LinkProgram(program uint32) {
	m.calls["LinkProgram"]++
	m.programs[program].linked = !m.linkFail
}

func (m *mockGL) LinkStatus(program uint32) bool {
	return m.programs[program].linked
}

func (m *mockGL) ProgramInfoLog(program uint32, bufSize int) string {
	m.calls["ProgramInfoLog"]++
	msg := m.linkLog
	if len(msg) > bufSize {
		msg = msg[:bufSize]
	}
	return msg
}

func (m *mockGL) DeleteProgram(program uint32) {
	m.calls["DeleteProgram"]++
	if p, ok := m.programs[program]; ok {
		p.deleted = true
	}
}

func (m *mockGL) UseProgram(program uint32) {
	m.calls["UseProgram"]++
	m.used = append(m.used, program)
}

func (m *mockGL) GetUniformLocation(program uint32, name string) int32 {
	m.calls["GetUniformLocation"]++
	loc, ok := m.uniforms[name]
	if !ok {
		return -1
	}
	m.queried[name]++
	if m.relocate && m.queried[name] > 1 {
		return loc + 100
	}
	return loc
}

func (m *mockGL) uniform(fn string, location int32, values ...float32) {
	m.calls[fn]++
	m.uniformCalls = append(m.uniformCalls, uniformCall{fn: fn, location: location, values: values})
}

func (m *mockGL) Uniform1f(location int32, v0 float32) {
	m.uniform("Uniform1f", location, v0)
}

func (m *mockGL) Uniform2f(location int32, v0, v1 float32) {
	m.uniform("Uniform2f", location, v0, v1)
}

func (m *mockGL) Uniform3f(location int32, v0, v1, v2 float32) {
	m.uniform("Uniform3f", location, v0, v1, v2)
}

func (m *mockGL) Uniform4f(location int32, v0, v1, v2, v3 float32) {
	m.uniform("Uniform4f", location, v0, v1, v2, v3)
}

func (m *mockGL) UniformMatrix4fv(location int32, mat *[16]float32) {
	m.uniform("UniformMatrix4fv", location, mat[:]...)
}

func (m *mockGL) EnableDepthTest() {
	m.calls["EnableDepthTest"]++
	m.depthTest = true
}

func (m *mockGL) EnableAlphaBlend() {
	m.calls["EnableAlphaBlend"]++
	m.blend = true
}

func (m *mockGL) Viewport(x, y, width, height int) {
	m.calls["Viewport"]++
	m.viewport = [4]int{x, y, width, height}
}

func (m *mockGL) ClearColor(r, g, b, a float32) {
	m.calls["ClearColor"]++
	m.clearColor = [4]float32{r, g, b, a}
}

func (m *mockGL) Clear() {
	m.calls["Clear"]++
}

// uniformCallCount returns the number of Uniform* calls of any arity.
func (m *mockGL) uniformCallCount() int {
	return len(m.uniformCalls)
}

func (m *mockGL) liveShaders() int {
	n := 0
	for _, s := range m.shaders {
		if !s.deleted {
			n++
		}
	}
	return n
}

func (m *mockGL) livePrograms() int {
	n := 0
	for _, p := range m.programs {
		if !p.deleted {
			n++
		}
	}
	return n
}

// mockPlatform hands out mockWindows and tracks init/terminate pairing.
type mockPlatform struct {
	initErr   error
	createErr error

	initCalls      int
	terminateCalls int
	pollCalls      int
	swapInterval   int

	hints   WindowHints
	windows []*mockWindow
}

func (p *mockPlatform) Init() error {
	p.initCalls++
	return p.initErr
}

func (p *mockPlatform) Terminate() {
	p.terminateCalls++
}

func (p *mockPlatform) CreateWindow(hints WindowHints, width, height int, title string) (Window, error) {
	if p.createErr != nil {
		return nil, p.createErr
	}
	p.hints = hints
	w := &mockWindow{
		title:  title,
		width:  width,
		height: height,
		keys:   make(map[Key]bool),
	}
	p.windows = append(p.windows, w)
	return w, nil
}

func (p *mockPlatform) PollEvents() {
	p.pollCalls++
}

func (p *mockPlatform) SwapInterval(interval int) {
	p.swapInterval = interval
}

func (p *mockPlatform) liveWindows() []*mockWindow {
	var live []*mockWindow
	for _, w := range p.windows {
		if !w.destroyed {
			live = append(live, w)
		}
	}
	return live
}

type mockWindow struct {
	title  string
	width  int
	height int

	current     bool
	shouldClose bool
	keys        map[Key]bool
	swaps       int
	destroyed   bool

	// closeAfter sets the close flag once this many frames were presented.
	closeAfter int

	sizeCallback FramebufferSizeFunc
}

func (w *mockWindow) MakeContextCurrent()       { w.current = true }
func (w *mockWindow) ShouldClose() bool         { return w.shouldClose }
func (w *mockWindow) SetShouldClose(value bool) { w.shouldClose = value }
func (w *mockWindow) KeyPressed(key Key) bool   { return w.keys[key] }
func (w *mockWindow) Destroy()                  { w.destroyed = true }

func (w *mockWindow) SwapBuffers() {
	w.swaps++
	if w.closeAfter > 0 && w.swaps >= w.closeAfter {
		w.shouldClose = true
	}
}

func (w *mockWindow) SetFramebufferSizeCallback(fn FramebufferSizeFunc) {
	w.sizeCallback = fn
}

// resize simulates the windowing system reporting a new framebuffer size.
func (w *mockWindow) resize(width, height int) {
	if w.sizeCallback != nil {
		w.sizeCallback(w, width, height)
	}
}

var errMock = errors.New("mock failure")

// captureLog redirects package logging into a buffer for the test's duration.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	log.SetSink(&buf)
	t.Cleanup(func() { log.SetSink(os.Stderr) })
	return &buf
}
