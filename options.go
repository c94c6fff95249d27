package glapp

import "github.com/go-theft-auto/glapp/log"

// Default context version, and the window size Init uses when given a zero
// or negative size.
const (
	DefaultContextVersionMajor = 4
	DefaultContextVersionMinor = 1
	DefaultWidth               = 1920
	DefaultHeight              = 1080
)

// RenderFunc draws one frame. It runs between clear and present.
type RenderFunc func(a *App)

// AppOption configures an App.
type AppOption func(*App)

// WithContextVersion requests an OpenGL core context of at least major.minor.
func WithContextVersion(major, minor int) AppOption {
	return func(a *App) {
		a.hints.ContextVersionMajor = major
		a.hints.ContextVersionMinor = minor
	}
}

// WithResizable controls whether the user can resize the window.
func WithResizable(resizable bool) AppOption {
	return func(a *App) { a.hints.Resizable = resizable }
}

// WithClearColor sets the background color used at the start of each frame.
func WithClearColor(r, g, b, alpha float32) AppOption {
	return func(a *App) { a.clearColor = [4]float32{r, g, b, alpha} }
}

// WithSwapInterval sets the swap interval applied after the context is made
// current. 1 enables vsync, 0 disables it.
func WithSwapInterval(interval int) AppOption {
	return func(a *App) { a.swapInterval = interval }
}

// WithRenderFunc sets the per-frame draw callback.
func WithRenderFunc(fn RenderFunc) AppOption {
	return func(a *App) { a.render = fn }
}

// WithLogger replaces the logger used for lifecycle diagnostics.
func WithLogger(l log.Logger) AppOption {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// ProgramOption configures a Program.
type ProgramOption func(*Program)

// WithLoader sets the loader used to read shader sources. Defaults to OSLoader.
func WithLoader(loader FileLoader) ProgramOption {
	return func(p *Program) {
		if loader != nil {
			p.loader = loader
		}
	}
}
