package hud

import (
	"strings"
	"testing"

	"sceneview/internal/shading"
)

func TestKnobLineNamesEverySelection(t *testing.T) {
	cases := []struct {
		sel  int
		want string
	}{
		{0, "Knob: none"},
		{shading.ParamGamma, "Knob: gamma = 2.20"},
		{shading.ParamBrightness, "Knob: brightness = 0.80"},
		{shading.ParamReflectance, "Knob: reflectance = 2.35"},
		{shading.ParamDiffuse, "Knob: diffuse = 1.25"},
		{shading.ParamSky, "Knob: sky = 1.10"},
		{shading.ParamChannel, "Knob: channel = 0"},
	}
	for _, tc := range cases {
		params := shading.NewParams()
		params.Select(tc.sel)
		h := New(nil, nil, nil, params)
		line := h.knobLine()
		if !strings.HasPrefix(line, tc.want) {
			t.Fatalf("selection %d: line %q, want prefix %q", tc.sel, line, tc.want)
		}
		if !strings.Contains(line, "Channel: 0") {
			t.Fatalf("selection %d: line %q missing channel readout", tc.sel, line)
		}
	}
}

func TestKnobLineTracksChannel(t *testing.T) {
	params := shading.NewParams()
	params.Select(shading.ParamChannel)
	params.Adjust(1)
	params.Adjust(1)
	params.Adjust(1)

	h := New(nil, nil, nil, params)
	line := h.knobLine()
	if !strings.Contains(line, "channel = 3") {
		t.Fatalf("line %q, want channel = 3", line)
	}
	if !strings.Contains(line, "Channel: 3") {
		t.Fatalf("line %q, want Channel: 3", line)
	}
}

// Draw without a font renderer must be a no-op rather than a crash; the
// viewer builds the HUD before the font atlas on some paths.
func TestDrawWithoutFontIsSafe(t *testing.T) {
	h := New(nil, nil, nil, nil)
	for i := 0; i < 3; i++ {
		h.Draw()
	}
	h.Dispose()
}
