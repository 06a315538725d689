// Package fx holds post-processing effect state that can be attached to any
// renderable by composition. The renderer reads it; nothing here talks to the GPU.
package fx

// Kind identifies an effect type.
type Kind int

const (
	KindGlow Kind = iota
	KindShadow
	KindPixelate
	KindVignette
	KindShine
	KindBlur
	KindGradient
	KindBloom
	KindColorMatrix
	KindCircle
	KindBarrel
	KindDisplacement
	KindWipe
)

var kindNames = [...]string{
	KindGlow:         "Glow",
	KindShadow:       "Shadow",
	KindPixelate:     "Pixelate",
	KindVignette:     "Vignette",
	KindShine:        "Shine",
	KindBlur:         "Blur",
	KindGradient:     "Gradient",
	KindBloom:        "Bloom",
	KindColorMatrix:  "ColorMatrix",
	KindCircle:       "Circle",
	KindBarrel:       "Barrel",
	KindDisplacement: "Displacement",
	KindWipe:         "Wipe",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// Effect is one shader effect instance.
type Effect interface {
	Kind() Kind
	Active() bool
	SetActive(active bool)
	// Uniforms writes this effect's shader parameters into dst, keyed
	// "u<Kind>.<param>".
	Uniforms(dst map[string]any)
}

type base struct {
	kind     Kind
	inactive bool
}

func (b *base) Kind() Kind          { return b.kind }
func (b *base) Active() bool        { return !b.inactive }
func (b *base) SetActive(on bool)   { b.inactive = !on }
func (b *base) key(p string) string { return "u" + b.kind.String() + "." + p }
