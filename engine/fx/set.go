package fx

import "github.com/hubastard/planar/engine/core"

// Holder is implemented by renderables that carry FX state.
type Holder interface {
	FX() *Set
}

// Set is an ordered list of effects plus the enable flag and padding the
// renderer needs. The zero value is disabled and empty.
type Set struct {
	enabled bool
	padding float32
	list    []Effect
}

// Enable switches the renderable onto the FX path.
func (s *Set) Enable() { s.enabled = true }

// EnableWithPadding enables and sets the extra texture padding in pixels.
func (s *Set) EnableWithPadding(padding float32) {
	s.enabled = true
	s.padding = padding
}

// Disable leaves the FX path; clear also drops every effect.
func (s *Set) Disable(clear bool) {
	s.enabled = false
	if clear {
		s.Clear()
	}
}

func (s *Set) Enabled() bool        { return s.enabled }
func (s *Set) Padding() float32     { return s.padding }
func (s *Set) SetPadding(p float32) { s.padding = p }
func (s *Set) Len() int             { return len(s.list) }

// Add appends e, enabling the set if needed, and returns e.
func (s *Set) Add(e Effect) Effect {
	if e == nil {
		return nil
	}
	if !s.enabled {
		s.Enable()
	}
	s.list = append(s.list, e)
	return e
}

// Remove drops e by identity. Order of the rest is kept.
func (s *Set) Remove(e Effect) bool {
	for i, x := range s.list {
		if x == e {
			copy(s.list[i:], s.list[i+1:])
			s.list[len(s.list)-1] = nil
			s.list = s.list[:len(s.list)-1]
			return true
		}
	}
	return false
}

// RemoveKind drops every effect of kind k and returns how many went.
func (s *Set) RemoveKind(k Kind) int {
	kept := s.list[:0]
	for _, x := range s.list {
		if x.Kind() != k {
			kept = append(kept, x)
		}
	}
	n := len(s.list) - len(kept)
	for i := len(kept); i < len(s.list); i++ {
		s.list[i] = nil
	}
	s.list = kept
	return n
}

// Clear drops every effect; the enabled flag is untouched.
func (s *Set) Clear() {
	for i := range s.list {
		s.list[i] = nil
	}
	s.list = s.list[:0]
}

// Effects returns a copy of the effect list in application order.
func (s *Set) Effects() []Effect {
	out := make([]Effect, len(s.list))
	copy(out, s.list)
	return out
}

// Active reports whether the renderer has anything to apply.
func (s *Set) Active() bool {
	if s == nil || !s.enabled {
		return false
	}
	for _, e := range s.list {
		if e.Active() {
			return true
		}
	}
	return false
}

// Mask has bit 1<<Kind set for every active effect kind.
func (s *Set) Mask() int32 {
	if s == nil || !s.enabled {
		return 0
	}
	var m int32
	for _, e := range s.list {
		if e.Active() {
			m |= 1 << e.Kind()
		}
	}
	return m
}

// Uniforms writes padding and the parameters of active effects in order.
// When two effects share a kind the later one wins.
func (s *Set) Uniforms(dst map[string]any) {
	if !s.Active() {
		return
	}
	dst["uFXPadding"] = s.padding
	for _, e := range s.list {
		if e.Active() {
			e.Uniforms(dst)
		}
	}
}

// Samplers collects textures required by active effects.
func (s *Set) Samplers(dst map[string]core.Texture) {
	if !s.Active() {
		return
	}
	for _, e := range s.list {
		if ts, ok := e.(interface{ Samplers(map[string]core.Texture) }); ok && e.Active() {
			ts.Samplers(dst)
		}
	}
}
