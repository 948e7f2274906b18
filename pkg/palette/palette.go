// Package palette provides the sixteen-entry color bank shared by the
// shading channel knob and scene object insertion. The bank size is
// fixed; files loaded at startup can override entries but never grow
// or shrink the bank.
package palette

import "github.com/go-gl/mathgl/mgl32"

// Size is the number of entries in a palette. The shading channel knob
// counts through the same range.
const Size = 16

// A Palette is a fixed bank of named RGBA colors. The built-in bank
// carries the registry's default insert green as "fern" and the ground
// quad's fixed color as "crimson".
type Palette struct {
	colors [Size]mgl32.Vec4
	names  [Size]string
}

var defaultEntries = [Size]struct {
	name  string
	color mgl32.Vec4
}{
	{"white", mgl32.Vec4{1.0, 1.0, 1.0, 1.0}},
	{"coral", mgl32.Vec4{0.95, 0.45, 0.40, 1.0}},
	{"amber", mgl32.Vec4{0.95, 0.75, 0.20, 1.0}},
	{"lime", mgl32.Vec4{0.55, 0.85, 0.25, 1.0}},
	{"mint", mgl32.Vec4{0.35, 0.85, 0.60, 1.0}},
	{"teal", mgl32.Vec4{0.15, 0.65, 0.65, 1.0}},
	{"sky", mgl32.Vec4{0.35, 0.65, 0.95, 1.0}},
	{"cobalt", mgl32.Vec4{0.20, 0.35, 0.85, 1.0}},
	{"violet", mgl32.Vec4{0.55, 0.35, 0.85, 1.0}},
	{"magenta", mgl32.Vec4{0.85, 0.30, 0.75, 1.0}},
	{"crimson", mgl32.Vec4{0.8, 0.1, 0.3, 1.0}},
	{"sand", mgl32.Vec4{0.85, 0.75, 0.55, 1.0}},
	{"fern", mgl32.Vec4{0.4, 0.7, 0.2, 1.0}},
	{"slate", mgl32.Vec4{0.45, 0.55, 0.65, 1.0}},
	{"charcoal", mgl32.Vec4{0.25, 0.25, 0.30, 1.0}},
	{"ember", mgl32.Vec4{0.90, 0.35, 0.15, 1.0}},
}

// Default returns the built-in bank.
func Default() *Palette {
	p := &Palette{}
	for i, e := range defaultEntries {
		p.names[i] = e.name
		p.colors[i] = e.color
	}
	return p
}

// Color returns entry i. Out-of-range indices clamp into the bank, the
// same way the channel knob clamps.
func (p *Palette) Color(i int) mgl32.Vec4 {
	return p.colors[clampIndex(i)]
}

// Name returns the label of entry i, clamping like Color.
func (p *Palette) Name(i int) string {
	return p.names[clampIndex(i)]
}

// Index returns the entry with the given name, or -1 when no entry
// carries it.
func (p *Palette) Index(name string) int {
	for i, n := range p.names {
		if n == name {
			return i
		}
	}
	return -1
}

func clampIndex(i int) int {
	if i < 0 {
		return 0
	}
	if i >= Size {
		return Size - 1
	}
	return i
}
