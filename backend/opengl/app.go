package opengl

import (
	"sync"

	"github.com/go-theft-auto/glapp"
)

var (
	appOnce sync.Once
	app     *glapp.App
)

// App returns the process-wide application host backed by GLFW and go-gl.
// It is created on first use and is never replaced; opts only take effect
// on that first call.
func App(opts ...glapp.AppOption) *glapp.App {
	appOnce.Do(func() {
		app = glapp.NewApp(NewPlatform(), NewGL(), opts...)
	})
	return app
}
