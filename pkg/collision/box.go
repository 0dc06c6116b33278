package collision

import "github.com/Faultbox/midgard-sat/pkg/math"

// Box is a value snapshot of a collider.
type Box struct {
	Center math.Vec3
	Size   math.Vec3 // per-axis scale along Right, Up, Front
	Axes   [3]math.Vec3
}

// NewBox returns an axis-aligned box.
func NewBox(center, size math.Vec3) Box {
	return Box{
		Center: center,
		Size:   size,
		Axes:   [3]math.Vec3{{X: 1}, {Y: 1}, {Z: 1}},
	}
}

// Snapshot copies any collider into a Box.
func Snapshot(c Collider) Box {
	return Box{
		Center: c.Position(),
		Size:   c.Scale(),
		Axes:   [3]math.Vec3{c.Direction(Right), c.Direction(Up), c.Direction(Front)},
	}
}

// Rotated returns b with its axes rotated by q.
func (b Box) Rotated(q math.Quat) Box {
	for i := range b.Axes {
		b.Axes[i] = q.Rotate(b.Axes[i])
	}
	return b
}

// Moved returns b translated by delta.
func (b Box) Moved(delta math.Vec3) Box {
	b.Center = b.Center.Add(delta)
	return b
}

func (b Box) Position() math.Vec3 { return b.Center }
func (b Box) Scale() math.Vec3    { return b.Size }

// Direction returns the local axis for d, or the zero vector if d is invalid.
func (b Box) Direction(d Direction) math.Vec3 {
	if !d.Valid() {
		return math.Vec3{}
	}
	return b.Axes[d]
}
