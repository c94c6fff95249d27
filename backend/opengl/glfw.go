package opengl

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/glapp"
)

// Platform implements glapp.Platform with GLFW.
// GLFW must be driven from the main thread; lock it with runtime.LockOSThread.
type Platform struct{}

// NewPlatform returns the GLFW implementation of glapp.Platform.
func NewPlatform() *Platform {
	return &Platform{}
}

var _ glapp.Platform = (*Platform)(nil)

// Init initializes GLFW.
func (*Platform) Init() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	return nil
}

// Terminate destroys remaining windows and shuts GLFW down.
func (*Platform) Terminate() {
	glfw.Terminate()
}

// PollEvents processes pending window events.
func (*Platform) PollEvents() {
	glfw.PollEvents()
}

// SwapInterval sets the vsync interval of the current context.
func (*Platform) SwapInterval(interval int) {
	glfw.SwapInterval(interval)
}

// CreateWindow applies hints and creates a window with an OpenGL context.
func (*Platform) CreateWindow(hints glapp.WindowHints, width, height int, title string) (glapp.Window, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, hints.ContextVersionMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, hints.ContextVersionMinor)
	if hints.CoreProfile {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	}
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfwBool(hints.ForwardCompatible))
	glfw.WindowHint(glfw.Resizable, glfwBool(hints.Resizable))

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	return &Window{win: win}, nil
}

// Window implements glapp.Window on a GLFW window.
type Window struct {
	win *glfw.Window
}

var _ glapp.Window = (*Window)(nil)

// GLFW returns the underlying GLFW window.
func (w *Window) GLFW() *glfw.Window {
	return w.win
}

// MakeContextCurrent makes the window context current on the calling thread.
func (w *Window) MakeContextCurrent() {
	w.win.MakeContextCurrent()
}

// ShouldClose reports the window close flag.
func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

// SetShouldClose sets the window close flag.
func (w *Window) SetShouldClose(value bool) {
	w.win.SetShouldClose(value)
}

// SwapBuffers presents the back buffer.
func (w *Window) SwapBuffers() {
	w.win.SwapBuffers()
}

// Destroy destroys the window and its context.
func (w *Window) Destroy() {
	w.win.Destroy()
}

// KeyPressed reports whether key is held down. Keys without a GLFW mapping
// are never pressed.
func (w *Window) KeyPressed(key glapp.Key) bool {
	k, ok := glfwKey(key)
	if !ok {
		return false
	}
	return w.win.GetKey(k) == glfw.Press
}

// SetFramebufferSizeCallback forwards framebuffer size changes to fn. The
// window passed to fn is w itself when GLFW reports this window, so callers
// can compare it against the window they own.
func (w *Window) SetFramebufferSizeCallback(fn glapp.FramebufferSizeFunc) {
	if fn == nil {
		w.win.SetFramebufferSizeCallback(nil)
		return
	}
	w.win.SetFramebufferSizeCallback(func(gw *glfw.Window, width, height int) {
		if gw == w.win {
			fn(w, width, height)
			return
		}
		fn(&Window{win: gw}, width, height)
	})
}

func glfwBool(v bool) int {
	if v {
		return glfw.True
	}
	return glfw.False
}

// glfwKey maps glapp keys to GLFW keys.
func glfwKey(key glapp.Key) (glfw.Key, bool) {
	switch key {
	case glapp.KeyTab:
		return glfw.KeyTab, true
	case glapp.KeyLeft:
		return glfw.KeyLeft, true
	case glapp.KeyRight:
		return glfw.KeyRight, true
	case glapp.KeyUp:
		return glfw.KeyUp, true
	case glapp.KeyDown:
		return glfw.KeyDown, true
	case glapp.KeySpace:
		return glfw.KeySpace, true
	case glapp.KeyEnter:
		return glfw.KeyEnter, true
	case glapp.KeyEscape:
		return glfw.KeyEscape, true
	case glapp.KeyF1:
		return glfw.KeyF1, true
	case glapp.KeyF2:
		return glfw.KeyF2, true
	case glapp.KeyF3:
		return glfw.KeyF3, true
	case glapp.KeyF4:
		return glfw.KeyF4, true
	case glapp.KeyF5:
		return glfw.KeyF5, true
	case glapp.KeyF6:
		return glfw.KeyF6, true
	case glapp.KeyF7:
		return glfw.KeyF7, true
	case glapp.KeyF8:
		return glfw.KeyF8, true
	case glapp.KeyF9:
		return glfw.KeyF9, true
	case glapp.KeyF10:
		return glfw.KeyF10, true
	case glapp.KeyF11:
		return glfw.KeyF11, true
	case glapp.KeyF12:
		return glfw.KeyF12, true
	default:
		return glfw.KeyUnknown, false
	}
}
