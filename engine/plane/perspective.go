package plane

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/hubastard/planar/engine/core"
)

// Depth returns the view distance at which something currentHeight tall
// appears desiredHeight tall under a vertical FOV of fovDeg degrees:
//
//	(currentHeight / desiredHeight) / tan(fov/2)
//
// fovDeg must lie strictly inside (0, 180) and both heights must be positive.
func Depth(currentHeight, desiredHeight, fovDeg float32) (float32, error) {
	if math32.IsNaN(fovDeg) || fovDeg <= 0 || fovDeg >= 180 {
		return 0, fmt.Errorf("%w: field of view %v outside (0, 180)", core.ErrInvalidConfiguration, fovDeg)
	}
	if !positive(currentHeight) {
		return 0, fmt.Errorf("%w: height %v", core.ErrInvalidConfiguration, currentHeight)
	}
	if !positive(desiredHeight) {
		return 0, fmt.Errorf("%w: desired height %v", core.ErrInvalidConfiguration, desiredHeight)
	}
	vfov := fovDeg * (math32.Pi / 180)
	d := (currentHeight / desiredHeight) / math32.Tan(vfov/2)
	if math32.IsInf(d, 0) || math32.IsNaN(d) {
		return 0, fmt.Errorf("%w: depth overflow for height %v", core.ErrInvalidConfiguration, desiredHeight)
	}
	return d, nil
}

func positive(v float32) bool {
	return v > 0 && !math32.IsInf(v, 0) && !math32.IsNaN(v)
}

// SetPerspectiveRatio stores the display-to-frame scale on the mesh. Depth is
// not recomputed.
func (p *Plane) SetPerspectiveRatio(ratioX, ratioY float32) {
	p.mesh.SetPerspective(ratioX, ratioY)
}

// SetSizeToFrame derives the perspective ratio from display size over the
// frame's native size.
func (p *Plane) SetSizeToFrame() {
	p.SetPerspectiveRatio(p.width/float32(p.frame.Width), p.height/float32(p.frame.Height))
}

// SetSize changes the display size, refreshes the ratio and recomputes depth
// for the current desired height. On error nothing changes.
func (p *Plane) SetSize(w, h float32) error {
	if !positive(w) {
		return fmt.Errorf("%w: width %v", core.ErrInvalidConfiguration, w)
	}
	d, err := Depth(h, p.desired, p.mesh.FOV())
	if err != nil {
		return err
	}
	p.width, p.height = w, h
	p.SetSizeToFrame()
	p.setDepth(d)
	return nil
}

// SetHeight moves the plane in depth so it appears desired pixels tall.
// Smaller values push it away, larger pull it closer. On error nothing changes.
func (p *Plane) SetHeight(desired float32) error {
	d, err := Depth(p.height, desired, p.mesh.FOV())
	if err != nil {
		return err
	}
	p.desired = desired
	p.setDepth(d)
	return nil
}

// ResetHeight is SetHeight with the frame's native height.
func (p *Plane) ResetHeight() error {
	return p.SetHeight(float32(p.frame.Height))
}

// SetFOV changes the field of view in degrees and recomputes depth for the
// current desired height. On error nothing changes.
func (p *Plane) SetFOV(deg float32) error {
	d, err := Depth(p.height, p.desired, deg)
	if err != nil {
		return err
	}
	p.mesh.SetFOV(deg)
	p.setDepth(d)
	return nil
}

func (p *Plane) FOV() float32           { return p.mesh.FOV() }
func (p *Plane) Depth() float32         { return p.mesh.ViewPosition().Z() }
func (p *Plane) DesiredHeight() float32 { return p.desired }

// setDepth is the only writer of the view z.
func (p *Plane) setDepth(d float32) {
	vp := p.mesh.ViewPosition()
	p.mesh.SetViewPosition(vp.X(), vp.Y(), d)
}
