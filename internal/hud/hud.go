package hud

import (
	"fmt"
	"strings"
	"time"

	"sceneview/internal/camera"
	"sceneview/internal/config"
	"sceneview/internal/graphics"
	"sceneview/internal/profiling"
	"sceneview/internal/scene"
	"sceneview/internal/shading"

	"github.com/go-gl/mathgl/mgl32"
)

// knobNames maps shading knob indices to their on-screen labels. Index
// zero is the "nothing selected" slot.
var knobNames = [...]string{
	shading.ParamGamma:       "gamma",
	shading.ParamBrightness:  "brightness",
	shading.ParamReflectance: "reflectance",
	shading.ParamDiffuse:     "diffuse",
	shading.ParamSky:         "sky",
	shading.ParamChannel:     "channel",
}

// HUD draws the stats overlay: frame rate, camera eye, scene size, the
// selected shading knob and the slowest tracked sections. It satisfies
// the overlay contract of the render frame and owns the font renderer
// it draws with.
type HUD struct {
	font     *graphics.FontRenderer
	cam      *camera.Camera
	registry *scene.Registry
	params   *shading.Params

	frames       int
	lastFPSCheck time.Time
	currentFPS   int
}

// New wraps the given font renderer into a stats overlay. The camera,
// registry and params are read every frame; they stay owned by the
// caller.
func New(font *graphics.FontRenderer, cam *camera.Camera, registry *scene.Registry, params *shading.Params) *HUD {
	return &HUD{
		font:         font,
		cam:          cam,
		registry:     registry,
		params:       params,
		lastFPSCheck: time.Now(),
	}
}

// Draw renders the overlay text at the top-left corner. The FPS counter
// keeps ticking while the HUD is hidden so the value is current the
// moment it is shown again.
func (h *HUD) Draw() {
	h.frames++
	if time.Since(h.lastFPSCheck) >= time.Second {
		h.currentFPS = h.frames
		h.lastFPSCheck = time.Now()
		h.frames = 0
	}

	if !config.GetShowHUD() || h.font == nil {
		return
	}

	lines := make([]string, 0, 16)
	lines = append(lines, fmt.Sprintf("FPS: %d", h.currentFPS))
	if h.cam != nil {
		eye := h.cam.Eye()
		lines = append(lines, fmt.Sprintf("Eye: %.2f, %.2f, %.2f", eye.X(), eye.Y(), eye.Z()))
	}
	if h.registry != nil {
		lines = append(lines, fmt.Sprintf("Objects: %d", h.registry.Len()))
	}
	if h.params != nil {
		lines = append(lines, h.knobLine())
	}

	// Slowest tracked sections, skipping entries that rounded to zero.
	if top := profiling.TopN(6); top != "" {
		for _, line := range strings.Split(top, ", ") {
			if line != "" && !strings.Contains(line, ":0ms") {
				lines = append(lines, line)
			}
		}
	}

	color := mgl32.Vec3{1.0, 1.0, 1.0}
	h.font.RenderLines(lines, 10, 30, 17, 0.6, color)
}

func (h *HUD) knobLine() string {
	snap := h.params.Snapshot()
	sel := h.params.Selected()
	if sel < 1 || sel >= len(knobNames) {
		return fmt.Sprintf("Knob: none | Channel: %d", snap.Channel)
	}
	var value string
	switch sel {
	case shading.ParamGamma:
		value = fmt.Sprintf("%.2f", snap.Gamma)
	case shading.ParamBrightness:
		value = fmt.Sprintf("%.2f", snap.Brightness)
	case shading.ParamReflectance:
		value = fmt.Sprintf("%.2f", snap.Reflectance)
	case shading.ParamDiffuse:
		value = fmt.Sprintf("%.2f", snap.DiffuseStrength)
	case shading.ParamSky:
		value = fmt.Sprintf("%.2f", snap.SkyBrightness)
	case shading.ParamChannel:
		value = fmt.Sprintf("%d", snap.Channel)
	}
	return fmt.Sprintf("Knob: %s = %s | Channel: %d", knobNames[sel], value, snap.Channel)
}

// Dispose releases the font renderer.
func (h *HUD) Dispose() {
	if h.font != nil {
		h.font.Dispose()
		h.font = nil
	}
}
