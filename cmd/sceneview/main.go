package main

import (
	"log"
	"os"
	"runtime"

	"sceneview/internal/config"
	"sceneview/internal/input"
	"sceneview/internal/viewer"
	"sceneview/pkg/palette"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
)

// palettePath is loaded when present; the built-in bank covers the
// common case.
const palettePath = "assets/palette.json"

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	window, err := setupWindow()
	if err != nil {
		panic(err)
	}

	im := input.NewInputManager()
	im.SetKeyCallback(window)
	im.SetMouseButtonCallback(window)

	app, err := viewer.New(window, im)
	if err != nil {
		panic(err)
	}

	if bank := loadPalette(); bank != nil {
		app.UsePalette(bank)
	}

	// A signal asks the render loop to stop, then holds process exit
	// until the loop has torn down its GL state on the main thread.
	done := make(chan struct{})
	closer.Bind(func() {
		window.SetShouldClose(true)
		glfw.PostEmptyEvent()
		<-done
	})

	app.Run()
	app.Dispose()
	close(done)
}

func setupWindow() (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	width, height := config.GetWindowSize()
	window, err := glfw.CreateWindow(width, height, "sceneview", nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	glfw.SwapInterval(0)

	return window, nil
}

// loadPalette returns the palette file's bank, or nil when the file is
// absent or unusable.
func loadPalette() *palette.Palette {
	if _, err := os.Stat(palettePath); err != nil {
		return nil
	}
	bank, err := palette.Load(palettePath)
	if err != nil {
		log.Printf("palette file %q unusable, keeping the built-in bank: %v", palettePath, err)
		return nil
	}
	return bank
}
