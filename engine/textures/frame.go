package textures

// Frame is a pixel rect within a texture, with matching normalised UVs.
type Frame struct {
	Name          string
	Texture       *Texture
	X, Y          int
	Width, Height int
	U0, V0        float32 // top-left
	U1, V1        float32 // bottom-right
}

// newFrame converts a pixel rect to UVs against the texture size.
func newFrame(tex *Texture, name string, x, y, w, h int) *Frame {
	return &Frame{
		Name:    name,
		Texture: tex,
		X:       x, Y: y,
		Width: w, Height: h,
		U0: float32(x) / float32(tex.Width),
		V0: float32(y) / float32(tex.Height),
		U1: float32(x+w) / float32(tex.Width),
		V1: float32(y+h) / float32(tex.Height),
	}
}

// Valid reports whether the frame has a usable size.
func (f *Frame) Valid() bool { return f != nil && f.Width > 0 && f.Height > 0 }
