// Package gfxtest provides an in-memory texture backend for tests.
package gfxtest

import (
	"errors"

	"github.com/hubastard/planar/engine/core"
)

// Texture is a fake GPU texture that keeps its uploaded pixels.
type Texture struct {
	Name   uint32
	W, H   int
	Pixels []byte
	Desc   core.TextureDesc
}

func (t *Texture) ID() uint32       { return t.Name }
func (t *Texture) Size() (w, h int) { return t.W, t.H }

// Backend records texture creation and deletion.
type Backend struct {
	// FailCreate makes CreateTexture return this error.
	FailCreate error

	next    uint32
	Live    map[uint32]*Texture
	Deleted []uint32
}

func NewBackend() *Backend { return &Backend{Live: map[uint32]*Texture{}} }

func (b *Backend) CreateTexture(desc core.TextureDesc) (core.Texture, error) {
	if b.FailCreate != nil {
		return nil, b.FailCreate
	}
	if desc.Width <= 0 || desc.Height <= 0 || len(desc.Pixels) != desc.Width*desc.Height*4 {
		return nil, errors.New("gfxtest: bad texture desc")
	}
	b.next++
	px := make([]byte, len(desc.Pixels))
	copy(px, desc.Pixels)
	t := &Texture{Name: b.next, W: desc.Width, H: desc.Height, Pixels: px, Desc: desc}
	b.Live[t.Name] = t
	return t, nil
}

func (b *Backend) DeleteTexture(t core.Texture) {
	if t == nil {
		return
	}
	delete(b.Live, t.ID())
	b.Deleted = append(b.Deleted, t.ID())
}

var _ core.TextureCreator = (*Backend)(nil)
