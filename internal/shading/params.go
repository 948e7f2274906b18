package shading

// Knob indices for Select. Zero means nothing is selected and Adjust
// is a no-op.
const (
	ParamGamma = iota + 1
	ParamBrightness
	ParamReflectance
	ParamDiffuse
	ParamSky
	ParamChannel
)

// MaxChannel is the highest color channel index.
const MaxChannel = 15

// Params is the session's shading knob set. One knob is selected at a
// time; Adjust nudges it at a per-knob rate scaled by the frame rate,
// the same convention the camera velocities use.
type Params struct {
	fps      float32
	selected int

	gamma       float32
	brightness  float32
	reflectance float32
	diffuse     float32
	sky         float32
	channel     int
}

// Snapshot is the immutable value set pushed to the shading backend
// each frame.
type Snapshot struct {
	Gamma           float32
	Brightness      float32
	Reflectance     float32
	DiffuseStrength float32
	SkyBrightness   float32
	Channel         int
}

// NewParams returns the default knob values.
func NewParams() *Params {
	return &Params{
		fps:         1,
		gamma:       2.2,
		brightness:  0.8,
		reflectance: 2.35,
		diffuse:     1.25,
		sky:         1.1,
	}
}

// SetFPS records the frame rate that scales continuous adjustments.
func (p *Params) SetFPS(fps float32) {
	if fps <= 0 {
		fps = 1
	}
	p.fps = fps
}

// Select picks the knob subsequent Adjust calls move.
func (p *Params) Select(index int) {
	p.selected = index
}

// Selected returns the index of the active knob.
func (p *Params) Selected() int { return p.selected }

// Adjust nudges the selected knob. Only the sign of delta matters; the
// step size is fixed per knob and divided by the frame rate. The
// channel knob steps by whole units and clamps to [0, MaxChannel].
func (p *Params) Adjust(delta float32) {
	sign := float32(1)
	if delta < 0 {
		sign = -1
	}
	switch p.selected {
	case ParamGamma:
		p.gamma += sign * 0.1 / p.fps
	case ParamBrightness:
		p.brightness += sign * 0.2 / p.fps
	case ParamReflectance:
		p.reflectance += sign * 0.4 / p.fps
	case ParamDiffuse:
		p.diffuse += sign * 0.4 / p.fps
	case ParamSky:
		p.sky += sign * 0.4 / p.fps
	case ParamChannel:
		if delta >= 0 && p.channel < MaxChannel {
			p.channel++
		} else if delta < 0 && p.channel > 0 {
			p.channel--
		}
	}
}

// Channel returns the active color channel index.
func (p *Params) Channel() int { return p.channel }

// Snapshot returns the current knob values.
func (p *Params) Snapshot() Snapshot {
	return Snapshot{
		Gamma:           p.gamma,
		Brightness:      p.brightness,
		Reflectance:     p.reflectance,
		DiffuseStrength: p.diffuse,
		SkyBrightness:   p.sky,
		Channel:         p.channel,
	}
}
