/*
Package glapp is a small bootstrap layer for OpenGL applications: it owns the
window and its context, runs the frame loop and wraps compiled shader programs.

# Overview

The package has two parts. App creates a single window with an OpenGL core
context, enables depth testing and alpha blending, and runs a blocking frame
loop that polls input, clears the framebuffer, calls a render func and
presents. Program compiles a vertex and a fragment shader from files, links
them and sets uniforms through a per-program location cache.

Graphics and windowing calls go through the GL, Platform and Window interfaces.
The backend/opengl package implements them with go-gl and GLFW and exposes the
process-wide App.

# Quick Start

	func init() {
	    // GLFW and OpenGL must stay on the main thread.
	    runtime.LockOSThread()
	}

	func main() {
	    app := opengl.App()
	    if err := app.Init("Demo", 800, 600); err != nil {
	        os.Exit(1)
	    }
	    defer app.Close()

	    prog := glapp.NewProgram(app.GL(), "shaders/demo.vert", "shaders/demo.frag")
	    defer prog.Delete()

	    app.SetRenderFunc(func(a *glapp.App) {
	        prog.Use()
	        prog.SetUniform4f("uColor", 0, 0, 1, 1)
	        // draw calls
	    })
	    app.Run()
	}

# Errors

Nothing in this package panics or exits on expected failures. App.Init returns
an error wrapping one of ErrPlatformInit, ErrWindowCreate or ErrGLLoad. A
Program that fails to build has a zero handle, Ok reports false and Err returns
ErrEmptySource, a *CompileError or a *LinkError. Uniform sets report a missing
uniform with false and do not log, since unused uniforms are routinely removed
by the shader compiler.

# Threading

The OpenGL context is current on one thread only. Every method of App, Program
and Watcher.Reload must be called from that thread.
*/
package glapp
