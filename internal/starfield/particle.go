package starfield

import (
	"math"
	"math/rand"
)

// Kind tags the particle variant. All particles share one struct; the tag
// decides which fields are meaningful and how a frame step advances them.
type Kind int

const (
	KindStar Kind = iota
	KindNebula
	KindShootingStar
)

func (k Kind) String() string {
	switch k {
	case KindStar:
		return "star"
	case KindNebula:
		return "nebula"
	case KindShootingStar:
		return "shooting_star"
	default:
		return "unknown"
	}
}

// Color is an RGB triple used by the nebula palette and the background
// gradient.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// nebulaPalette holds the cloud tints, back-to-front friendly hues.
var nebulaPalette = []Color{
	{R: 88, G: 28, B: 135},  // deep purple
	{R: 30, G: 58, B: 138},  // indigo
	{R: 13, G: 94, B: 110},  // teal
	{R: 131, G: 24, B: 94},  // magenta
}

// Particle is a tagged variant over the three decorative populations.
// Every field a step reads belongs to the particle itself; no particle ever
// reads another particle's state.
type Particle struct {
	Kind Kind

	X, Y   float64
	VX, VY float64

	// Star: twinkle phase, advanced by PhaseSpeed each frame.
	Phase      float64
	PhaseSpeed float64

	// Nebula: rotation plus a secondary pulse driving drift and opacity.
	Rotation      float64
	RotationSpeed float64
	PulsePhase    float64
	PulseSpeed    float64
	DriftAmp      float64

	// Shooting star: frames remaining, counted down to removal.
	Life    int
	MaxLife int

	Size        float64
	BaseOpacity float64
	Color       Color
}

const twoPi = 2 * math.Pi

// advance moves the particle one frame forward inside a w×h viewport.
func (p *Particle) advance(w, h float64) {
	switch p.Kind {
	case KindStar:
		p.Phase = math.Mod(p.Phase+p.PhaseSpeed, twoPi)
		p.X = wrap(p.X+p.VX, w)
		p.Y = wrap(p.Y+p.VY, h)
	case KindNebula:
		p.Rotation = math.Mod(p.Rotation+p.RotationSpeed, twoPi)
		p.PulsePhase = math.Mod(p.PulsePhase+p.PulseSpeed, twoPi)
		p.X = wrap(p.X+p.VX, w)
		p.Y = wrap(p.Y+p.VY, h)
	case KindShootingStar:
		p.Life--
		p.X += p.VX
		p.Y += p.VY
	}
}

// opacity is the rendered alpha for the current frame, always within
// [0, BaseOpacity] for persistent particles and [0, 1] for shooting stars.
func (p *Particle) opacity() float64 {
	switch p.Kind {
	case KindStar:
		return p.BaseOpacity * (math.Sin(p.Phase) + 1) / 2
	case KindNebula:
		return p.BaseOpacity * (0.6 + 0.4*(math.Sin(p.PulsePhase)+1)/2)
	case KindShootingStar:
		if p.MaxLife <= 0 {
			return 0
		}
		return math.Max(0, float64(p.Life)/float64(p.MaxLife))
	default:
		return 0
	}
}

// drawX returns the render x position. Nebula clouds drift by a sinusoidal
// offset derived from the pulse phase instead of moving their anchor.
func (p *Particle) drawX() float64 {
	if p.Kind == KindNebula {
		return p.X + math.Sin(p.PulsePhase)*p.DriftAmp
	}
	return p.X
}

// alive reports whether a shooting star should stay in the active set.
// Persistent kinds are always alive.
func (p *Particle) alive(w, h float64) bool {
	if p.Kind != KindShootingStar {
		return true
	}
	if p.Life <= 0 {
		return false
	}
	const margin = 60
	return p.X >= -margin && p.X <= w+margin && p.Y >= -margin && p.Y <= h+margin
}

// wrap keeps a coordinate inside [0, limit) by wrapping at the edges.
func wrap(v, limit float64) float64 {
	if limit <= 0 {
		return 0
	}
	v = math.Mod(v, limit)
	if v < 0 {
		v += limit
	}
	return v
}

func newStar(rng *rand.Rand, w, h float64) Particle {
	angle := rng.Float64() * twoPi
	speed := 0.01 + rng.Float64()*0.04
	return Particle{
		Kind:        KindStar,
		X:           rng.Float64() * w,
		Y:           rng.Float64() * h,
		VX:          math.Cos(angle) * speed,
		VY:          math.Sin(angle) * speed,
		Phase:       rng.Float64() * twoPi,
		PhaseSpeed:  0.01 + rng.Float64()*0.03,
		Size:        0.5 + rng.Float64()*1.5,
		BaseOpacity: 0.3 + rng.Float64()*0.7,
		Color:       Color{R: 255, G: 255, B: 255},
	}
}

func newNebula(rng *rand.Rand, w, h float64) Particle {
	rotDir := 1.0
	if rng.Float64() < 0.5 {
		rotDir = -1.0
	}
	return Particle{
		Kind:          KindNebula,
		X:             rng.Float64() * w,
		Y:             rng.Float64() * h,
		VX:            (rng.Float64() - 0.5) * 0.04,
		Rotation:      rng.Float64() * twoPi,
		RotationSpeed: rotDir * (0.001 + rng.Float64()*0.002),
		PulsePhase:    rng.Float64() * twoPi,
		PulseSpeed:    0.004 + rng.Float64()*0.008,
		DriftAmp:      8 + rng.Float64()*14,
		Size:          120 + rng.Float64()*180,
		BaseOpacity:   0.1 + rng.Float64()*0.12,
		Color:         nebulaPalette[rng.Intn(len(nebulaPalette))],
	}
}

func newShootingStar(rng *rand.Rand, w, h float64) Particle {
	vx := 4 + rng.Float64()*6
	if rng.Float64() < 0.5 {
		vx = -vx
	}
	life := 40 + rng.Intn(41)
	return Particle{
		Kind:    KindShootingStar,
		X:       rng.Float64() * w,
		Y:       rng.Float64() * h * 0.5,
		VX:      vx,
		VY:      2 + rng.Float64()*4,
		Life:    life,
		MaxLife: life,
		Size:    1 + rng.Float64(),
		Color:   Color{R: 255, G: 255, B: 255},
	}
}
