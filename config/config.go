// Package config loads demo settings from TOML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/go-theft-auto/glapp"
	"github.com/go-theft-auto/glapp/log"
)

// Config is the top-level configuration document.
type Config struct {
	Window Window `toml:"window"`
	Shader Shader `toml:"shader"`
	Log    Log    `toml:"log"`
}

// Window configures the application window and context.
type Window struct {
	Title      string     `toml:"title"`
	Width      int        `toml:"width"`
	Height     int        `toml:"height"`
	VSync      bool       `toml:"vsync"`
	Resizable  bool       `toml:"resizable"`
	ClearColor [4]float32 `toml:"clear_color"`
	GLMajor    int        `toml:"gl_major"`
	GLMinor    int        `toml:"gl_minor"`
}

// Shader names the demo's shader sources.
type Shader struct {
	Vertex   string `toml:"vertex"`
	Fragment string `toml:"fragment"`
	Watch    bool   `toml:"watch"`
}

// Log configures log verbosity.
type Log struct {
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: Window{
			Title:      "glapp",
			Width:      800,
			Height:     600,
			VSync:      true,
			Resizable:  true,
			ClearColor: [4]float32{0, 0, 0, 1},
			GLMajor:    glapp.DefaultContextVersionMajor,
			GLMinor:    glapp.DefaultContextVersionMinor,
		},
		Shader: Shader{
			Vertex:   "shaders/triangle.vert",
			Fragment: "shaders/triangle.frag",
		},
		Log: Log{Level: "notice"},
	}
}

// Parse decodes data on top of the defaults. Unknown keys are an error.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			keys := make([]string, 0, len(strict.Errors))
			for _, e := range strict.Errors {
				keys = append(keys, strings.Join(e.Key(), "."))
			}
			return Config{}, fmt.Errorf("config: unknown keys: %s", strings.Join(keys, ", "))
		}
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return Parse(data)
}

// Validate checks ranges that TOML typing cannot express.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Window.GLMajor < 3 || (c.Window.GLMajor == 3 && c.Window.GLMinor < 2) {
		return fmt.Errorf("config: OpenGL %d.%d has no core profile", c.Window.GLMajor, c.Window.GLMinor)
	}
	for _, v := range c.Window.ClearColor {
		if v < 0 || v > 1 {
			return fmt.Errorf("config: clear_color components must be within [0, 1], got %v", c.Window.ClearColor)
		}
	}
	if c.Shader.Vertex == "" || c.Shader.Fragment == "" {
		return errors.New("config: shader.vertex and shader.fragment are required")
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// LogLevel returns the configured log level.
func (c Config) LogLevel() log.Level {
	level, _ := log.ParseLevel(c.Log.Level)
	return level
}

// AppOptions maps the window section onto glapp options.
func (c Config) AppOptions() []glapp.AppOption {
	w := c.Window
	swap := 0
	if w.VSync {
		swap = 1
	}
	return []glapp.AppOption{
		glapp.WithContextVersion(w.GLMajor, w.GLMinor),
		glapp.WithResizable(w.Resizable),
		glapp.WithSwapInterval(swap),
		glapp.WithClearColor(w.ClearColor[0], w.ClearColor[1], w.ClearColor[2], w.ClearColor[3]),
	}
}
