package glapp

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySource is returned when a shader file is missing, unreadable or empty.
	ErrEmptySource = errors.New("glapp: shader source is empty or unreadable")
	// ErrProgramDeleted is returned by Reload on a program that was deleted.
	ErrProgramDeleted = errors.New("glapp: shader program was deleted")

	// ErrPlatformInit wraps a windowing system failure in App.Init.
	ErrPlatformInit = errors.New("glapp: windowing system initialization failed")
	// ErrWindowCreate wraps a window or context creation failure in App.Init.
	ErrWindowCreate = errors.New("glapp: window creation failed")
	// ErrGLLoad wraps a failure to load OpenGL function pointers in App.Init.
	ErrGLLoad = errors.New("glapp: loading OpenGL functions failed")
)

// CompileError reports a shader stage that failed to compile.
type CompileError struct {
	Stage ShaderStage
	Path  string
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("glapp: %s shader %q compilation failed: %s", e.Stage, e.Path, e.Log)
}

// LinkError reports a program that failed to link.
type LinkError struct {
	VertexPath   string
	FragmentPath string
	Log          string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("glapp: shader program (vs: %q, fs: %q) linking failed: %s",
		e.VertexPath, e.FragmentPath, e.Log)
}
