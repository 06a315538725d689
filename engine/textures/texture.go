package textures

import (
	"fmt"

	"github.com/hubastard/planar/engine/core"
)

// BaseFrame names the frame covering the whole texture.
const BaseFrame = "__BASE"

// Texture is a registered GPU texture and its named frames.
type Texture struct {
	Key           string
	Handle        core.Texture
	Width, Height int
	frames        map[string]*Frame
}

func newTexture(key string, handle core.Texture, w, h int) *Texture {
	t := &Texture{Key: key, Handle: handle, Width: w, Height: h, frames: map[string]*Frame{}}
	t.frames[BaseFrame] = newFrame(t, BaseFrame, 0, 0, w, h)
	return t
}

// Frame returns the named frame; "" means BaseFrame.
func (t *Texture) Frame(name string) (*Frame, bool) {
	if name == "" {
		name = BaseFrame
	}
	f, ok := t.frames[name]
	return f, ok
}

// Base returns the frame covering the whole texture.
func (t *Texture) Base() *Frame { return t.frames[BaseFrame] }

// AddFrame registers a pixel sub-rect. It must lie inside the texture.
func (t *Texture) AddFrame(name string, x, y, w, h int) (*Frame, error) {
	if name == "" || name == BaseFrame {
		return nil, fmt.Errorf("%w: frame name %q", core.ErrInvalidConfiguration, name)
	}
	if w <= 0 || h <= 0 || x < 0 || y < 0 || x+w > t.Width || y+h > t.Height {
		return nil, fmt.Errorf("%w: frame %q rect (%d,%d %dx%d) outside %dx%d",
			core.ErrInvalidConfiguration, name, x, y, w, h, t.Width, t.Height)
	}
	f := newFrame(t, name, x, y, w, h)
	t.frames[name] = f
	return f, nil
}

// AddGrid slices the texture into cw x ch cells named "<prefix><index>",
// row-major from the top-left. Partial cells are skipped.
func (t *Texture) AddGrid(prefix string, cw, ch int) ([]*Frame, error) {
	if cw <= 0 || ch <= 0 {
		return nil, fmt.Errorf("%w: cell size %dx%d", core.ErrInvalidConfiguration, cw, ch)
	}
	var out []*Frame
	for y := 0; y+ch <= t.Height; y += ch {
		for x := 0; x+cw <= t.Width; x += cw {
			f, err := t.AddFrame(fmt.Sprintf("%s%d", prefix, len(out)), x, y, cw, ch)
			if err != nil {
				return nil, err
			}
			out = append(out, f)
		}
	}
	return out, nil
}

// FrameNames lists registered frame names, BaseFrame included.
func (t *Texture) FrameNames() []string {
	names := make([]string, 0, len(t.frames))
	for n := range t.frames {
		names = append(names, n)
	}
	return names
}
