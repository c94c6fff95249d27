package glapp

import (
	"fmt"

	"github.com/go-theft-auto/glapp/log"
)

// App owns the window and its OpenGL context.
//
// An App is either uninitialized (no window) or running (window and context
// live). Init always tears down first, so calling it again replaces the window.
// All methods must be called from the thread that created the context.
type App struct {
	platform Platform
	gl       GL
	logger   log.Logger

	window Window
	width  int
	height int
	frames uint64

	hints        WindowHints
	clearColor   [4]float32
	swapInterval int
	render       RenderFunc
}

// NewApp creates an uninitialized App on top of platform and gl.
func NewApp(platform Platform, gl GL, opts ...AppOption) *App {
	a := &App{
		platform: platform,
		gl:       gl,
		logger:   logger,
		hints: WindowHints{
			ContextVersionMajor: DefaultContextVersionMajor,
			ContextVersionMinor: DefaultContextVersionMinor,
			CoreProfile:         true,
			ForwardCompatible:   true,
			Resizable:           true,
		},
		clearColor:   [4]float32{0, 0, 0, 1},
		swapInterval: 1,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Init creates the window and context and prepares default GL state.
// Any existing window is destroyed first. A zero or negative size selects
// DefaultWidth x DefaultHeight. On failure the App is left
// uninitialized and the cause is returned; the caller decides whether to abort.
func (a *App) Init(title string, width, height int) error {
	a.Close()

	if width <= 0 || height <= 0 {
		width, height = DefaultWidth, DefaultHeight
	}

	if err := a.platform.Init(); err != nil {
		a.logger.Errorf("failed to initialize windowing system: %v", err)
		return fmt.Errorf("%w: %v", ErrPlatformInit, err)
	}

	window, err := a.platform.CreateWindow(a.hints, width, height, title)
	if err != nil || window == nil {
		a.logger.Errorf("failed to create window: %v", err)
		a.platform.Terminate()
		return fmt.Errorf("%w: %v", ErrWindowCreate, err)
	}
	window.MakeContextCurrent()
	a.platform.SwapInterval(a.swapInterval)

	if err := a.gl.Init(); err != nil {
		a.logger.Errorf("failed to load OpenGL functions: %v", err)
		window.Destroy()
		a.platform.Terminate()
		return fmt.Errorf("%w: %v", ErrGLLoad, err)
	}

	a.gl.EnableDepthTest()
	a.gl.EnableAlphaBlend()

	a.window = window
	a.width = width
	a.height = height
	a.frames = 0
	window.SetFramebufferSizeCallback(a.onFramebufferSize)

	a.logger.Infof("created %dx%d window %q (OpenGL %d.%d core)",
		a.width, a.height, title, a.hints.ContextVersionMajor, a.hints.ContextVersionMinor)
	return nil
}

// Run runs the frame loop until the window is asked to close. Each frame polls
// events, closes the window on Escape, clears the framebuffer, calls the render
// func and presents. Run returns immediately if the App is not running.
func (a *App) Run() {
	if a.window == nil {
		a.logger.Error("app initialization incorrect, unable to run")
		return
	}

	for !a.window.ShouldClose() {
		a.platform.PollEvents()
		a.processInput()

		c := a.clearColor
		a.gl.ClearColor(c[0], c[1], c[2], c[3])
		a.gl.Clear()

		if a.render != nil {
			a.render(a)
		}

		a.window.SwapBuffers()
		a.frames++
	}
}

// Close destroys the window and shuts the windowing system down.
// It is a no-op on an uninitialized App.
func (a *App) Close() {
	if a.window != nil {
		a.window.SetFramebufferSizeCallback(nil)
		a.window.Destroy()
		a.platform.Terminate()
		a.logger.Debug("window destroyed")
	}

	a.window = nil
	a.width = 0
	a.height = 0
}

// Running reports whether the App has a live window.
func (a *App) Running() bool { return a.window != nil }

// Window returns the current window, or nil.
func (a *App) Window() Window { return a.window }

// GL returns the graphics API the App was built with.
func (a *App) GL() GL { return a.gl }

// Width returns the framebuffer width, or zero when not running.
func (a *App) Width() int { return a.width }

// Height returns the framebuffer height, or zero when not running.
func (a *App) Height() int { return a.height }

// Size returns the framebuffer width and height.
func (a *App) Size() (width, height int) { return a.width, a.height }

// Frames returns the number of frames presented since the last Init.
func (a *App) Frames() uint64 { return a.frames }

// SetRenderFunc replaces the per-frame draw callback.
func (a *App) SetRenderFunc(fn RenderFunc) { a.render = fn }

// KeyPressed reports whether key is currently held down.
func (a *App) KeyPressed(key Key) bool {
	return a.window != nil && a.window.KeyPressed(key)
}

// RequestClose sets the close flag so Run returns after the current frame.
func (a *App) RequestClose() {
	if a.window != nil {
		a.window.SetShouldClose(true)
	}
}

func (a *App) processInput() {
	if a.window.KeyPressed(KeyEscape) {
		a.window.SetShouldClose(true)
	}
}

// onFramebufferSize ignores notifications for any window other than the
// current one, including callbacks that fire after teardown.
func (a *App) onFramebufferSize(w Window, width, height int) {
	if w == nil || a.window == nil || w != a.window {
		return
	}

	width = max(width, 0)
	height = max(height, 0)
	a.gl.Viewport(0, 0, width, height)
	a.width = width
	a.height = height
}
