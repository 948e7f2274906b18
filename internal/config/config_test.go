package config

import "testing"

func TestWindowSizeClamps(t *testing.T) {
	defer SetWindowSize(900, 600)

	SetWindowSize(100, 100)
	w, h := GetWindowSize()
	if w != 320 || h != 240 {
		t.Fatalf("got %dx%d, want the 320x240 floor", w, h)
	}

	SetWindowSize(1920, 1080)
	w, h = GetWindowSize()
	if w != 1920 || h != 1080 {
		t.Fatalf("got %dx%d, want 1920x1080", w, h)
	}
}

func TestFPSLimitClamps(t *testing.T) {
	defer SetFPSLimit(0)

	SetFPSLimit(-5)
	if got := GetFPSLimit(); got != 0 {
		t.Fatalf("got %d, want 0 for a negative cap", got)
	}
	SetFPSLimit(5000)
	if got := GetFPSLimit(); got != 1000 {
		t.Fatalf("got %d, want the 1000 ceiling", got)
	}
	SetFPSLimit(144)
	if got := GetFPSLimit(); got != 144 {
		t.Fatalf("got %d, want 144", got)
	}
}

func TestMouseSensitivityClamps(t *testing.T) {
	defer SetMouseSensitivity(0.005)

	SetMouseSensitivity(0)
	if got := GetMouseSensitivity(); got != 0.0005 {
		t.Fatalf("got %g, want the 0.0005 floor", got)
	}
	SetMouseSensitivity(1)
	if got := GetMouseSensitivity(); got != 0.05 {
		t.Fatalf("got %g, want the 0.05 ceiling", got)
	}
}

func TestSphereDetailClampsToGeneratorRange(t *testing.T) {
	defer SetSphereDetail(24, 16)

	SetSphereDetail(1, 0)
	m, p := GetSphereDetail()
	if m != 3 || p != 2 {
		t.Fatalf("got %dx%d, want the 3x2 generator floor", m, p)
	}
	SetSphereDetail(1000, 1000)
	m, p = GetSphereDetail()
	if m != 256 || p != 256 {
		t.Fatalf("got %dx%d, want the 256 ceiling", m, p)
	}
}

func TestGroundSettings(t *testing.T) {
	defer SetGroundExtent(40)
	defer SetGroundTexturePath("")

	SetGroundExtent(0.1)
	if got := GetGroundExtent(); got != 1 {
		t.Fatalf("got %g, want the floor 1", got)
	}
	SetGroundTexturePath("textures/marble.png")
	if got := GetGroundTexturePath(); got != "textures/marble.png" {
		t.Fatalf("got %q", got)
	}
}

func TestShowHUDRoundTrips(t *testing.T) {
	defer SetShowHUD(true)
	SetShowHUD(false)
	if GetShowHUD() {
		t.Fatal("HUD still on after SetShowHUD(false)")
	}
}
