package textures

import (
	"errors"
	"fmt"

	"github.com/hubastard/planar/engine/core"
)

// ErrKeyInUse is returned when registering over an existing key.
var ErrKeyInUse = errors.New("texture key already in use")

// Registry owns textures by key. Once Add succeeds the registry is
// responsible for deleting the GPU handle.
type Registry struct {
	backend core.TextureCreator
	entries map[string]*Texture
}

// NewRegistry creates a registry. backend may be nil, in which case only
// pre-made handles can be added and Remove leaves them alone.
func NewRegistry(backend core.TextureCreator) *Registry {
	return &Registry{backend: backend, entries: map[string]*Texture{}}
}

func (r *Registry) Exists(key string) bool {
	if r == nil {
		return false
	}
	_, ok := r.entries[key]
	return ok
}

func (r *Registry) Get(key string) (*Texture, bool) {
	if r == nil {
		return nil, false
	}
	t, ok := r.entries[key]
	return t, ok
}

// Add registers an already created GPU texture. On error ownership stays with
// the caller.
func (r *Registry) Add(key string, handle core.Texture, w, h int) (*Texture, error) {
	if r == nil {
		return nil, core.ErrBackendUnavailable
	}
	if key == "" {
		return nil, fmt.Errorf("%w: empty texture key", core.ErrInvalidConfiguration)
	}
	if handle == nil || w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: texture %q has no image (%dx%d)", core.ErrMissingResource, key, w, h)
	}
	if r.Exists(key) {
		return nil, fmt.Errorf("%w: %q", ErrKeyInUse, key)
	}
	t := newTexture(key, handle, w, h)
	r.entries[key] = t
	return t, nil
}

// AddPixels creates a texture from tightly packed RGBA8 pixels and registers
// it. The GPU handle is released if registration fails.
func (r *Registry) AddPixels(key string, w, h int, rgba []byte, desc core.TextureDesc) (*Texture, error) {
	if r == nil || r.backend == nil {
		return nil, core.ErrBackendUnavailable
	}
	if r.Exists(key) {
		return nil, fmt.Errorf("%w: %q", ErrKeyInUse, key)
	}
	desc.Width, desc.Height = w, h
	desc.Format = core.TextureRGBA8
	desc.Pixels = rgba
	handle, err := r.backend.CreateTexture(desc)
	if err != nil {
		return nil, fmt.Errorf("create texture %q: %w", key, err)
	}
	t, err := r.Add(key, handle, w, h)
	if err != nil {
		r.backend.DeleteTexture(handle)
		return nil, err
	}
	return t, nil
}

// Remove unregisters key and releases its GPU handle.
func (r *Registry) Remove(key string) bool {
	t, ok := r.entries[key]
	if !ok {
		return false
	}
	delete(r.entries, key)
	if r.backend != nil && t.Handle != nil {
		r.backend.DeleteTexture(t.Handle)
	}
	return true
}

// Keys lists registered keys in no particular order.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	return keys
}

// Destroy releases every texture.
func (r *Registry) Destroy() {
	for k := range r.entries {
		r.Remove(k)
	}
}
