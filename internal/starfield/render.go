package starfield

// Gradient is a vertical two-stop background fill.
type Gradient struct {
	Top    Color `json:"top"`
	Bottom Color `json:"bottom"`
}

// background is the night-sky gradient behind every layer.
var background = Gradient{
	Top:    Color{R: 2, G: 6, B: 23},
	Bottom: Color{R: 15, G: 23, B: 42},
}

// Canvas receives one frame's draw calls in back-to-front order.
type Canvas interface {
	FillBackground(g Gradient)
	DrawNebula(x, y, radius, rotation, opacity float64, c Color)
	DrawStar(x, y, size, brightness float64)
	DrawShootingStar(x, y, vx, vy, opacity float64)
}

// NebulaFrame is one rendered nebula cloud.
type NebulaFrame struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Radius   float64 `json:"radius"`
	Rotation float64 `json:"rotation"`
	Opacity  float64 `json:"opacity"`
	Color    Color   `json:"color"`
}

// StarFrame is one rendered ambient star.
type StarFrame struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Size       float64 `json:"size"`
	Brightness float64 `json:"brightness"`
}

// ShootingFrame is one rendered shooting star streak.
type ShootingFrame struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	VX      float64 `json:"vx"`
	VY      float64 `json:"vy"`
	Opacity float64 `json:"opacity"`
}

// Frame is a complete snapshot of one rendered frame. Layer slices are
// ordered back to front exactly as they were drawn.
type Frame struct {
	Seq           uint64          `json:"seq"`
	Width         int             `json:"width"`
	Height        int             `json:"height"`
	Background    Gradient        `json:"background"`
	Nebulae       []NebulaFrame   `json:"nebulae"`
	Stars         []StarFrame     `json:"stars"`
	ShootingStars []ShootingFrame `json:"shooting_stars"`
}

// frameBuilder is a Canvas that records draw calls into a Frame.
type frameBuilder struct {
	frame Frame
}

func newFrameBuilder(seq uint64, width, height int) *frameBuilder {
	return &frameBuilder{frame: Frame{
		Seq:           seq,
		Width:         width,
		Height:        height,
		Nebulae:       []NebulaFrame{},
		Stars:         []StarFrame{},
		ShootingStars: []ShootingFrame{},
	}}
}

func (b *frameBuilder) FillBackground(g Gradient) {
	b.frame.Background = g
}

func (b *frameBuilder) DrawNebula(x, y, radius, rotation, opacity float64, c Color) {
	b.frame.Nebulae = append(b.frame.Nebulae, NebulaFrame{
		X: x, Y: y, Radius: radius, Rotation: rotation, Opacity: opacity, Color: c,
	})
}

func (b *frameBuilder) DrawStar(x, y, size, brightness float64) {
	b.frame.Stars = append(b.frame.Stars, StarFrame{X: x, Y: y, Size: size, Brightness: brightness})
}

func (b *frameBuilder) DrawShootingStar(x, y, vx, vy, opacity float64) {
	b.frame.ShootingStars = append(b.frame.ShootingStars, ShootingFrame{
		X: x, Y: y, VX: vx, VY: vy, Opacity: opacity,
	})
}
