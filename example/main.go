// Example draws a rotating, color-cycling triangle with glapp.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell                                   # Go + OpenGL/X11 headers
//	cd example && go run . --config app.toml       # run this example
//
// Escape closes the window. F5 rebuilds the shader program; with --watch (or
// shader.watch in the config) it is rebuilt whenever a source file is saved.
package main

import (
	"fmt"
	"math"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/urfave/cli"

	"github.com/go-theft-auto/glapp"
	"github.com/go-theft-auto/glapp/backend/opengl"
	"github.com/go-theft-auto/glapp/config"
	"github.com/go-theft-auto/glapp/log"
)

var logger = log.New("example")

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	app := cli.NewApp()
	app.Name = "glapp-example"
	app.Usage = "draw a rotating triangle"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Usage: "load settings from a TOML file",
		},
		cli.StringFlag{
			Name:  "title",
			Usage: "window title",
		},
		cli.IntFlag{
			Name:  "width",
			Usage: "window width",
		},
		cli.IntFlag{
			Name:  "height",
			Usage: "window height",
		},
		cli.StringFlag{
			Name:  "vertex",
			Usage: "vertex shader source file",
		},
		cli.StringFlag{
			Name:  "fragment",
			Usage: "fragment shader source file",
		},
		cli.BoolFlag{
			Name:  "watch, w",
			Usage: "rebuild the shader program when its sources change",
		},
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig(ctx *cli.Context) (config.Config, error) {
	cfg := config.Default()
	if path := ctx.String("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return cfg, err
		}
	}

	if ctx.IsSet("title") {
		cfg.Window.Title = ctx.String("title")
	}
	if ctx.IsSet("width") {
		cfg.Window.Width = ctx.Int("width")
	}
	if ctx.IsSet("height") {
		cfg.Window.Height = ctx.Int("height")
	}
	if ctx.IsSet("vertex") {
		cfg.Shader.Vertex = ctx.String("vertex")
	}
	if ctx.IsSet("fragment") {
		cfg.Shader.Fragment = ctx.String("fragment")
	}
	if ctx.Bool("watch") {
		cfg.Shader.Watch = true
	}
	return cfg, cfg.Validate()
}

func setupLogging(ctx *cli.Context, cfg config.Config) {
	log.SetLevel(cfg.LogLevel())
	if ctx.Bool("v") {
		log.SetLevel(log.Info)
	}
	if ctx.Bool("vv") {
		log.SetLevel(log.Debug)
	}
}

func run(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	setupLogging(ctx, cfg)

	a := opengl.App(cfg.AppOptions()...)
	if err := a.Init(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height); err != nil {
		return err
	}
	defer a.Close()

	prog := glapp.NewProgram(a.GL(), cfg.Shader.Vertex, cfg.Shader.Fragment)
	defer prog.Delete()
	if !prog.Ok() {
		return fmt.Errorf("build shader program: %w", prog.Err())
	}

	tri := newTriangle()
	defer tri.delete()

	var watcher *glapp.Watcher
	if cfg.Shader.Watch {
		if watcher, err = glapp.NewWatcher(); err != nil {
			return err
		}
		defer watcher.Close()
		if err := watcher.Add(prog); err != nil {
			return err
		}
		logger.Infof("watching %s and %s", cfg.Shader.Vertex, cfg.Shader.Fragment)
	}

	start := time.Now()
	reloadHeld := false
	a.SetRenderFunc(func(a *glapp.App) {
		if watcher != nil {
			watcher.Reload()
		}

		reloadDown := a.KeyPressed(glapp.KeyF5)
		if reloadDown && !reloadHeld {
			if err := prog.Reload(); err != nil {
				logger.Warningf("reload: %v", err)
			}
		}
		reloadHeld = reloadDown

		t := float32(time.Since(start).Seconds())
		prog.Use()
		prog.SetUniformMat4("uTransform", transform(a.Width(), a.Height(), t))
		prog.SetUniform("uColor", cycleColor(t))
		tri.draw()
	})

	logger.Notice("press Escape to quit, F5 to reload shaders")
	a.Run()
	return nil
}

// transform rotates around Z and corrects for the framebuffer aspect ratio.
func transform(width, height int, t float32) mgl32.Mat4 {
	aspect := float32(1)
	if width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}
	return mgl32.Scale3D(1/aspect, 1, 1).Mul4(mgl32.HomogRotate3DZ(t))
}

func cycleColor(t float32) []float32 {
	phase := float64(t)
	return []float32{
		float32(0.5 + 0.5*math.Sin(phase)),
		float32(0.5 + 0.5*math.Sin(phase+2*math.Pi/3)),
		float32(0.5 + 0.5*math.Sin(phase+4*math.Pi/3)),
		1,
	}
}
