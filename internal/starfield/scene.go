package starfield

import (
	"math/rand"
)

// Options tunes a Scene. Zero values fall back to defaults.
type Options struct {
	// StarDensity is stars per pixel of viewport area.
	StarDensity float64
	NebulaCount int
	// SpawnProbability is the per-frame chance of a new shooting star.
	SpawnProbability float64
	// MaxShootingStars caps the active shooting star set.
	MaxShootingStars int
	// Rand drives all randomness. Defaults to a time-seeded source;
	// tests inject a fixed seed for deterministic frames.
	Rand *rand.Rand
}

func (o Options) withDefaults() Options {
	if o.StarDensity <= 0 {
		o.StarDensity = 0.0001
	}
	if o.NebulaCount <= 0 {
		o.NebulaCount = 4
	}
	if o.SpawnProbability <= 0 {
		o.SpawnProbability = 0.01
	}
	if o.MaxShootingStars <= 0 {
		o.MaxShootingStars = 8
	}
	return o
}

// Scene owns the three particle populations and advances them one frame at a
// time. It is not safe for concurrent use; the engine is its only driver.
type Scene struct {
	width, height float64
	opts          Options
	rng           *rand.Rand

	stars    []Particle
	nebulae  []Particle
	shooting []Particle

	seq uint64
}

// NewScene creates a scene sized to the viewport and populates the persistent
// star and nebula sets. Returns nil for a degenerate viewport, mirroring a
// drawing surface that never became available.
func NewScene(width, height int, opts Options) *Scene {
	if width <= 0 || height <= 0 {
		return nil
	}
	opts = opts.withDefaults()
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	s := &Scene{
		width:  float64(width),
		height: float64(height),
		opts:   opts,
		rng:    rng,
	}
	s.populate()
	return s
}

// populate regenerates the persistent populations from scratch inside the
// current bounds. Shooting stars do not survive regeneration.
func (s *Scene) populate() {
	starCount := int(s.width * s.height * s.opts.StarDensity)
	if starCount < 1 {
		starCount = 1
	}
	s.stars = make([]Particle, starCount)
	for i := range s.stars {
		s.stars[i] = newStar(s.rng, s.width, s.height)
	}
	s.nebulae = make([]Particle, s.opts.NebulaCount)
	for i := range s.nebulae {
		s.nebulae[i] = newNebula(s.rng, s.width, s.height)
	}
	s.shooting = s.shooting[:0]
}

// Step advances every particle by one frame, removes expired shooting stars,
// then rolls the spawn dice. Removal runs before the spawn check so the
// active set stays bounded.
func (s *Scene) Step() {
	s.seq++

	for i := range s.nebulae {
		s.nebulae[i].advance(s.width, s.height)
	}
	for i := range s.stars {
		s.stars[i].advance(s.width, s.height)
	}

	live := s.shooting[:0]
	for i := range s.shooting {
		s.shooting[i].advance(s.width, s.height)
		if s.shooting[i].alive(s.width, s.height) {
			live = append(live, s.shooting[i])
		}
	}
	s.shooting = live

	if len(s.shooting) < s.opts.MaxShootingStars && s.rng.Float64() < s.opts.SpawnProbability {
		s.shooting = append(s.shooting, newShootingStar(s.rng, s.width, s.height))
	}
}

// Resize swaps in new bounds and regenerates all populations. Existing
// particle positions are not preserved.
func (s *Scene) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.width = float64(width)
	s.height = float64(height)
	s.populate()
}

// Render draws the scene back to front: background gradient, nebula clouds,
// ambient stars, shooting stars. The ordering is what produces visual depth
// under alpha blending, so it must not change.
func (s *Scene) Render(c Canvas) {
	c.FillBackground(background)

	for i := range s.nebulae {
		n := &s.nebulae[i]
		c.DrawNebula(n.drawX(), n.Y, n.Size, n.Rotation, n.opacity(), n.Color)
	}
	for i := range s.stars {
		st := &s.stars[i]
		c.DrawStar(st.X, st.Y, st.Size, st.opacity())
	}
	for i := range s.shooting {
		sh := &s.shooting[i]
		c.DrawShootingStar(sh.X, sh.Y, sh.VX, sh.VY, sh.opacity())
	}
}

// Frame renders the scene into a serializable snapshot.
func (s *Scene) Frame() Frame {
	b := newFrameBuilder(s.seq, int(s.width), int(s.height))
	s.Render(b)
	return b.frame
}

// Seq is the number of frames stepped so far.
func (s *Scene) Seq() uint64 { return s.seq }

// Counts reports the population sizes, front layer last.
func (s *Scene) Counts() (stars, nebulae, shooting int) {
	return len(s.stars), len(s.nebulae), len(s.shooting)
}
