package fx

import (
	"github.com/hubastard/planar/engine/colors"
	"github.com/hubastard/planar/engine/core"
)

// Glow needs a custom fragment shader; the built-in one ignores it.
type Glow struct {
	base
	Color         colors.Color
	OuterStrength float32
	InnerStrength float32
	Knockout      bool
}

func NewGlow() *Glow {
	return &Glow{base: base{kind: KindGlow}, Color: colors.White, OuterStrength: 4}
}

func (e *Glow) Uniforms(dst map[string]any) {
	dst[e.key("color")] = [4]float32(e.Color)
	dst[e.key("outerStrength")] = e.OuterStrength
	dst[e.key("innerStrength")] = e.InnerStrength
	dst[e.key("knockout")] = boolf(e.Knockout)
}

// Shadow needs a custom fragment shader; the built-in one ignores it.
type Shadow struct {
	base
	X, Y      float32
	Decay     float32
	Power     float32
	Color     colors.Color
	Samples   int32
	Intensity float32
}

func NewShadow() *Shadow {
	return &Shadow{base: base{kind: KindShadow}, Decay: 0.1, Power: 1, Color: colors.Black, Samples: 6, Intensity: 1}
}

func (e *Shadow) Uniforms(dst map[string]any) {
	dst[e.key("lightPosition")] = [2]float32{e.X, e.Y}
	dst[e.key("decay")] = e.Decay
	dst[e.key("power")] = e.Power
	dst[e.key("color")] = [4]float32(e.Color)
	dst[e.key("samples")] = e.Samples
	dst[e.key("intensity")] = e.Intensity
}

type Pixelate struct {
	base
	Amount float32
}

func NewPixelate(amount float32) *Pixelate {
	return &Pixelate{base: base{kind: KindPixelate}, Amount: amount}
}

func (e *Pixelate) Uniforms(dst map[string]any) {
	dst[e.key("amount")] = e.Amount
}

type Vignette struct {
	base
	X, Y     float32
	Radius   float32
	Strength float32
}

func NewVignette() *Vignette {
	return &Vignette{base: base{kind: KindVignette}, X: 0.5, Y: 0.5, Radius: 0.5, Strength: 0.5}
}

func (e *Vignette) Uniforms(dst map[string]any) {
	dst[e.key("position")] = [2]float32{e.X, e.Y}
	dst[e.key("radius")] = e.Radius
	dst[e.key("strength")] = e.Strength
}

// Shine sweeps a highlight across the surface; Time advances with Update.
type Shine struct {
	base
	Speed     float32
	LineWidth float32
	Gradient  float32
	Reveal    bool
	Time      float32
}

func NewShine() *Shine {
	return &Shine{base: base{kind: KindShine}, Speed: 0.5, LineWidth: 0.5, Gradient: 3}
}

func (e *Shine) Update(dt float32) { e.Time += dt * e.Speed }

func (e *Shine) Uniforms(dst map[string]any) {
	dst[e.key("speed")] = e.Speed
	dst[e.key("lineWidth")] = e.LineWidth
	dst[e.key("gradient")] = e.Gradient
	dst[e.key("reveal")] = boolf(e.Reveal)
	dst[e.key("time")] = e.Time
}

// Blur averages Steps*(Quality+1) texels on each side along Offset pixels.
type Blur struct {
	base
	Quality  int32 // 0 low, 1 medium, 2 high
	X, Y     float32
	Strength float32
	Color    colors.Color
	Steps    int32
}

func NewBlur() *Blur {
	return &Blur{base: base{kind: KindBlur}, X: 2, Y: 2, Strength: 1, Color: colors.White, Steps: 4}
}

func (e *Blur) Uniforms(dst map[string]any) {
	dst[e.key("quality")] = e.Quality
	dst[e.key("offset")] = [2]float32{e.X, e.Y}
	dst[e.key("strength")] = e.Strength
	dst[e.key("color")] = [4]float32(e.Color)
	dst[e.key("steps")] = e.Steps
}

type Gradient struct {
	base
	Color1, Color2 colors.Color
	Alpha          float32
	FromX, FromY   float32
	ToX, ToY       float32
	Size           float32
}

func NewGradient() *Gradient {
	return &Gradient{base: base{kind: KindGradient}, Color1: colors.Red, Color2: colors.Green, Alpha: 0.2, ToY: 1}
}

func (e *Gradient) Uniforms(dst map[string]any) {
	dst[e.key("color1")] = [4]float32(e.Color1)
	dst[e.key("color2")] = [4]float32(e.Color2)
	dst[e.key("alpha")] = e.Alpha
	dst[e.key("positionFrom")] = [2]float32{e.FromX, e.FromY}
	dst[e.key("positionTo")] = [2]float32{e.ToX, e.ToY}
	dst[e.key("size")] = e.Size
}

// Bloom needs a custom fragment shader; the built-in one ignores it.
type Bloom struct {
	base
	Color            colors.Color
	OffsetX, OffsetY float32
	BlurStrength     float32
	Strength         float32
	Steps            int32
}

func NewBloom() *Bloom {
	return &Bloom{base: base{kind: KindBloom}, Color: colors.White, OffsetX: 1, OffsetY: 1, BlurStrength: 1, Strength: 1, Steps: 4}
}

func (e *Bloom) Uniforms(dst map[string]any) {
	dst[e.key("color")] = [4]float32(e.Color)
	dst[e.key("offset")] = [2]float32{e.OffsetX, e.OffsetY}
	dst[e.key("blurStrength")] = e.BlurStrength
	dst[e.key("strength")] = e.Strength
	dst[e.key("steps")] = e.Steps
}

// ColorMatrix applies a 5x4 row-major color transform (RGBA rows, last
// column is the offset).
type ColorMatrix struct {
	base
	Matrix [20]float32
	Alpha  float32
}

func NewColorMatrix() *ColorMatrix {
	e := &ColorMatrix{base: base{kind: KindColorMatrix}, Alpha: 1}
	e.Reset()
	return e
}

func (e *ColorMatrix) Reset() {
	e.Matrix = [20]float32{
		1, 0, 0, 0, 0,
		0, 1, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// Grayscale blends toward luminance by amount in [0,1].
func (e *ColorMatrix) Grayscale(amount float32) {
	r, g, b := 0.3*amount, 0.6*amount, 0.1*amount
	k := 1 - amount
	e.Matrix = [20]float32{
		r + k, g, b, 0, 0,
		r, g + k, b, 0, 0,
		r, g, b + k, 0, 0,
		0, 0, 0, 1, 0,
	}
}

func (e *ColorMatrix) Uniforms(dst map[string]any) {
	m := e.Matrix
	dst[e.key("matrix")] = m
	dst[e.key("alpha")] = e.Alpha
}

// Circle masks the surface to a disc with a ring of Thickness texels.
type Circle struct {
	base
	Thickness       float32
	Color           colors.Color
	BackgroundColor colors.Color
	Scale           float32
	Feather         float32
}

func NewCircle() *Circle {
	return &Circle{
		base:            base{kind: KindCircle},
		Thickness:       8,
		Color:           colors.Hex(0xfeedb6),
		BackgroundColor: colors.Hex(0xff0000),
		Scale:           1,
		Feather:         0.005,
	}
}

func (e *Circle) Uniforms(dst map[string]any) {
	dst[e.key("thickness")] = e.Thickness
	dst[e.key("color")] = [4]float32(e.Color)
	dst[e.key("backgroundColor")] = [4]float32(e.BackgroundColor)
	dst[e.key("scale")] = e.Scale
	dst[e.key("feather")] = e.Feather
}

type Barrel struct {
	base
	Amount float32
}

func NewBarrel(amount float32) *Barrel {
	return &Barrel{base: base{kind: KindBarrel}, Amount: amount}
}

func (e *Barrel) Uniforms(dst map[string]any) {
	dst[e.key("amount")] = e.Amount
}

// Displacement offsets texels by a displacement map.
type Displacement struct {
	base
	Texture core.Texture
	X, Y    float32
}

func NewDisplacement(tex core.Texture) *Displacement {
	return &Displacement{base: base{kind: KindDisplacement}, Texture: tex, X: 0.005, Y: 0.005}
}

func (e *Displacement) Uniforms(dst map[string]any) {
	dst[e.key("amount")] = [2]float32{e.X, e.Y}
}

func (e *Displacement) Samplers(dst map[string]core.Texture) {
	if e.Texture != nil {
		dst[e.key("map")] = e.Texture
	}
}

// Wipe reveals or hides along an axis as Progress goes 0 to 1.
type Wipe struct {
	base
	Width     float32
	Direction int32 // 0 left/top to right/bottom, 1 reversed
	Axis      int32 // 0 x, 1 y
	Reveal    bool
	Progress  float32
}

func NewWipe() *Wipe {
	return &Wipe{base: base{kind: KindWipe}, Width: 0.1}
}

func (e *Wipe) Uniforms(dst map[string]any) {
	dst[e.key("progress")] = e.Progress
	dst[e.key("wipeWidth")] = e.Width
	dst[e.key("direction")] = e.Direction
	dst[e.key("axis")] = e.Axis
	dst[e.key("reveal")] = boolf(e.Reveal)
}

func boolf(b bool) float32 {
	if b {
		return 1
	}
	return 0
}

var (
	_ Effect = (*Glow)(nil)
	_ Effect = (*Shadow)(nil)
	_ Effect = (*Pixelate)(nil)
	_ Effect = (*Vignette)(nil)
	_ Effect = (*Shine)(nil)
	_ Effect = (*Blur)(nil)
	_ Effect = (*Gradient)(nil)
	_ Effect = (*Bloom)(nil)
	_ Effect = (*ColorMatrix)(nil)
	_ Effect = (*Circle)(nil)
	_ Effect = (*Barrel)(nil)
	_ Effect = (*Displacement)(nil)
	_ Effect = (*Wipe)(nil)
)
