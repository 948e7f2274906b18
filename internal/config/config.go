package config

import "sync"

// DisplaySettings holds window and presentation configuration
type DisplaySettings struct {
	mu           sync.RWMutex
	windowWidth  int
	windowHeight int
	fpsLimit     int // 0 means uncapped
	sensitivity  float64
	showHUD      bool
}

var globalDisplaySettings = &DisplaySettings{
	windowWidth:  900,
	windowHeight: 600,
	fpsLimit:     0,     // default uncapped
	sensitivity:  0.005, // radians of orbit per cursor pixel
	showHUD:      true,
}

// GetWindowSize returns the configured window dimensions
func GetWindowSize() (int, int) {
	globalDisplaySettings.mu.RLock()
	defer globalDisplaySettings.mu.RUnlock()
	return globalDisplaySettings.windowWidth, globalDisplaySettings.windowHeight
}

// SetWindowSize sets the window dimensions
func SetWindowSize(width, height int) {
	globalDisplaySettings.mu.Lock()
	defer globalDisplaySettings.mu.Unlock()

	// Clamp to reasonable values
	if width < 320 {
		width = 320
	}
	if height < 240 {
		height = 240
	}

	globalDisplaySettings.windowWidth = width
	globalDisplaySettings.windowHeight = height
}

// GetFPSLimit returns the frame rate cap, 0 when uncapped
func GetFPSLimit() int {
	globalDisplaySettings.mu.RLock()
	defer globalDisplaySettings.mu.RUnlock()
	return globalDisplaySettings.fpsLimit
}

// SetFPSLimit sets the frame rate cap, 0 to uncap
func SetFPSLimit(limit int) {
	globalDisplaySettings.mu.Lock()
	defer globalDisplaySettings.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	if limit > 1000 {
		limit = 1000
	}

	globalDisplaySettings.fpsLimit = limit
}

// GetMouseSensitivity returns radians of orbit per cursor pixel
func GetMouseSensitivity() float64 {
	globalDisplaySettings.mu.RLock()
	defer globalDisplaySettings.mu.RUnlock()
	return globalDisplaySettings.sensitivity
}

// SetMouseSensitivity sets radians of orbit per cursor pixel
func SetMouseSensitivity(s float64) {
	globalDisplaySettings.mu.Lock()
	defer globalDisplaySettings.mu.Unlock()

	// Clamp to reasonable values
	if s < 0.0005 {
		s = 0.0005
	}
	if s > 0.05 {
		s = 0.05
	}

	globalDisplaySettings.sensitivity = s
}

// GetShowHUD returns whether the overlay text is drawn
func GetShowHUD() bool {
	globalDisplaySettings.mu.RLock()
	defer globalDisplaySettings.mu.RUnlock()
	return globalDisplaySettings.showHUD
}

// SetShowHUD sets whether the overlay text is drawn
func SetShowHUD(enabled bool) {
	globalDisplaySettings.mu.Lock()
	defer globalDisplaySettings.mu.Unlock()
	globalDisplaySettings.showHUD = enabled
}
