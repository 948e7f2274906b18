package config

import "sync"

// SceneSettings holds geometry generation configuration
type SceneSettings struct {
	mu           sync.RWMutex
	groundExtent float64
	texturePath  string
	meridians    int
	parallels    int
	sphereRadius float64
}

var globalSceneSettings = &SceneSettings{
	groundExtent: 40, // side length of the ground quad
	texturePath:  "", // empty falls back to the builtin checker
	meridians:    24,
	parallels:    16,
	sphereRadius: 1,
}

// GetGroundExtent returns the side length of the ground quad
func GetGroundExtent() float64 {
	globalSceneSettings.mu.RLock()
	defer globalSceneSettings.mu.RUnlock()
	return globalSceneSettings.groundExtent
}

// SetGroundExtent sets the side length of the ground quad
func SetGroundExtent(extent float64) {
	globalSceneSettings.mu.Lock()
	defer globalSceneSettings.mu.Unlock()

	// Clamp to reasonable values
	if extent < 1 {
		extent = 1
	}
	if extent > 500 {
		extent = 500
	}

	globalSceneSettings.groundExtent = extent
}

// GetGroundTexturePath returns the ground texture image path, empty
// for the builtin checker pattern
func GetGroundTexturePath() string {
	globalSceneSettings.mu.RLock()
	defer globalSceneSettings.mu.RUnlock()
	return globalSceneSettings.texturePath
}

// SetGroundTexturePath sets the ground texture image path
func SetGroundTexturePath(path string) {
	globalSceneSettings.mu.Lock()
	defer globalSceneSettings.mu.Unlock()
	globalSceneSettings.texturePath = path
}

// GetSphereDetail returns the meridian and parallel counts for
// generated spheres
func GetSphereDetail() (int, int) {
	globalSceneSettings.mu.RLock()
	defer globalSceneSettings.mu.RUnlock()
	return globalSceneSettings.meridians, globalSceneSettings.parallels
}

// SetSphereDetail sets the meridian and parallel counts for generated
// spheres
func SetSphereDetail(meridians, parallels int) {
	globalSceneSettings.mu.Lock()
	defer globalSceneSettings.mu.Unlock()

	// Clamp to the generator's legal range
	if meridians < 3 {
		meridians = 3
	}
	if meridians > 256 {
		meridians = 256
	}
	if parallels < 2 {
		parallels = 2
	}
	if parallels > 256 {
		parallels = 256
	}

	globalSceneSettings.meridians = meridians
	globalSceneSettings.parallels = parallels
}

// GetSphereRadius returns the radius of generated spheres
func GetSphereRadius() float64 {
	globalSceneSettings.mu.RLock()
	defer globalSceneSettings.mu.RUnlock()
	return globalSceneSettings.sphereRadius
}

// SetSphereRadius sets the radius of generated spheres
func SetSphereRadius(radius float64) {
	globalSceneSettings.mu.Lock()
	defer globalSceneSettings.mu.Unlock()

	// Clamp to reasonable values
	if radius < 0.05 {
		radius = 0.05
	}
	if radius > 50 {
		radius = 50
	}

	globalSceneSettings.sphereRadius = radius
}
