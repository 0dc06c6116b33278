package collision

import (
	"fmt"

	"github.com/Faultbox/midgard-sat/pkg/math"
)

// maxAxes is the candidate count of the full 3D test: 3 + 3 + 3*3.
const maxAxes = 15

// SqrtMode selects the square root used to normalize cross-product axes.
type SqrtMode uint8

const (
	// SqrtLegacy uses math.FastSqrt, matching the error profile of older
	// recorded simulations.
	SqrtLegacy SqrtMode = iota
	// SqrtExact uses a true square root.
	SqrtExact
)

func (m SqrtMode) String() string {
	switch m {
	case SqrtLegacy:
		return "legacy"
	case SqrtExact:
		return "exact"
	}
	return fmt.Sprintf("SqrtMode(%d)", uint8(m))
}

// ParseSqrtMode maps "legacy" or "exact" to a SqrtMode.
func ParseSqrtMode(s string) (SqrtMode, error) {
	switch s {
	case "legacy", "fast", "":
		return SqrtLegacy, nil
	case "exact":
		return SqrtExact, nil
	}
	return 0, fmt.Errorf("unknown sqrt mode %q", s)
}

// Reason says which step decided a Result.
type Reason uint8

const (
	// ReasonFarApart: centers are further apart than the summed scale radii.
	ReasonFarApart Reason = iota
	// ReasonSATSkipped: ViewSATOff accepted the pair after the radius check.
	ReasonSATSkipped
	// ReasonSeparated: a separating axis was found.
	ReasonSeparated
	// ReasonOverlap: no candidate axis separates the pair.
	ReasonOverlap
)

func (r Reason) String() string {
	switch r {
	case ReasonFarApart:
		return "far apart"
	case ReasonSATSkipped:
		return "sat skipped"
	case ReasonSeparated:
		return "separated"
	case ReasonOverlap:
		return "overlap"
	}
	return fmt.Sprintf("Reason(%d)", uint8(r))
}

// Result is the outcome of Checker.Test.
type Result struct {
	Overlap bool
	Reason  Reason
	// Axis is the index into the candidate list of the separating axis,
	// or -1 when no axis was tested or none separated.
	Axis int
	// Tested is how many candidate axes were projected onto.
	Tested int
}

// Checker runs the overlap test with a chosen square root. The zero value
// uses the legacy square root and the 3D center delta.
type Checker struct {
	Sqrt math.SqrtFunc

	// PlanarDelta drops the excluded component of the center delta in the
	// 2D view modes, for both the radius pre-check and the projections.
	// The result then no longer depends on the excluded coordinate. Off by
	// default: the flattened cross-product axes point along the excluded
	// axis, so an offset on it can separate a pair.
	PlanarDelta bool
}

// NewChecker returns a Checker for the given square root mode.
func NewChecker(mode SqrtMode) Checker {
	if mode == SqrtExact {
		return Checker{Sqrt: math.ExactSqrt}
	}
	return Checker{Sqrt: math.FastSqrt}
}

var legacy = NewChecker(SqrtLegacy)

// Overlaps reports whether a and b intersect under mode, using the legacy
// square root. See Checker.Test for the exact procedure.
func Overlaps(a, b Collider, mode ViewMode) bool {
	return legacy.Test(a, b, mode).Overlap
}

// Overlaps reports whether a and b intersect under mode.
func (c Checker) Overlaps(a, b Collider, mode ViewMode) bool {
	return c.Test(a, b, mode).Overlap
}

func planar(v math.Vec3, mode ViewMode) math.Vec3 {
	switch mode {
	case ViewSideScroll:
		return v.WithoutZ()
	case ViewTopDown, ViewIsometric:
		return v.WithoutY()
	}
	return v
}

// frame holds one collider's data for the duration of a test.
type frame struct {
	center math.Vec3
	scale  [3]float32
	dirs   [3]math.Vec3
}

func loadFrame(c Collider) frame {
	s := c.Scale()
	return frame{
		center: c.Position(),
		scale:  [3]float32{s.X, s.Y, s.Z},
		dirs:   [3]math.Vec3{c.Direction(Right), c.Direction(Up), c.Direction(Front)},
	}
}

// radius is the generous bounding radius: the plain sum of the scales.
func (f frame) radius() float32 {
	return f.scale[0] + f.scale[1] + f.scale[2]
}

// project returns the half-length of f's box along axis. All three scales
// always contribute, even when a direction was flattened by the view mode.
func (f frame) project(axis math.Vec3) float32 {
	var r float32
	for i := 0; i < 3; i++ {
		r += math.Abs32(axis.Dot(f.dirs[i]) * f.scale[i])
	}
	return r
}

// flatten zeroes one world component of every direction according to mode
// and returns the number of local axes that take part in axis building.
// ok is false for ViewSATOff.
func (f *frame) flatten(mode ViewMode) (count int, ok bool) {
	switch mode {
	case ViewSideScroll:
		for i := range f.dirs {
			f.dirs[i] = f.dirs[i].WithoutZ()
		}
		return 2, true
	case ViewTopDown, ViewIsometric:
		for i := range f.dirs {
			f.dirs[i] = f.dirs[i].WithoutY()
		}
		return 2, true
	case ViewSATOff:
		return 0, false
	}
	// ViewSATOn and unknown values run the full 3D test.
	return 3, true
}

// Test runs the overlap test and reports how it was decided.
//
// The pair is rejected first if the center distance exceeds the sum of both
// scale-sum radii; this runs before any mode handling. ViewSATOff accepts
// anything that survives. Otherwise the candidate axes are built in order
// (A's directions, B's directions, each normalized A×B cross product) and
// the first axis on which the projected center distance exceeds the summed
// projected radii separates the pair.
func (c Checker) Test(a, b Collider, mode ViewMode) Result {
	fa, fb := loadFrame(a), loadFrame(b)
	delta := fb.center.Sub(fa.center)
	if c.PlanarDelta {
		delta = planar(delta, mode)
	}

	maxRange := fa.radius() + fb.radius()
	if delta.SquaredLength() > maxRange*maxRange {
		return Result{Overlap: false, Reason: ReasonFarApart, Axis: -1}
	}

	var axes [maxAxes]math.Vec3
	n, ok := c.buildAxes(&fa, &fb, mode, &axes)
	if !ok {
		return Result{Overlap: true, Reason: ReasonSATSkipped, Axis: -1}
	}

	for i := 0; i < n; i++ {
		axis := axes[i]
		dist := math.Abs32(axis.Dot(delta))
		if dist > fa.project(axis)+fb.project(axis) {
			return Result{Overlap: false, Reason: ReasonSeparated, Axis: i, Tested: i + 1}
		}
	}
	return Result{Overlap: true, Reason: ReasonOverlap, Axis: -1, Tested: n}
}

// Axes returns the candidate separating axes for a and b under mode, in the
// order Test projects onto them. It is nil for ViewSATOff. The radius
// pre-check is not applied.
func (c Checker) Axes(a, b Collider, mode ViewMode) []math.Vec3 {
	fa, fb := loadFrame(a), loadFrame(b)
	var axes [maxAxes]math.Vec3
	n, ok := c.buildAxes(&fa, &fb, mode, &axes)
	if !ok {
		return nil
	}
	out := make([]math.Vec3, n)
	copy(out, axes[:n])
	return out
}

// buildAxes flattens both frames for mode and fills out with the candidate
// axes. Near-parallel direction pairs give a near-zero cross product which
// NormalizeWith turns into its fixed fallback vector.
func (c Checker) buildAxes(fa, fb *frame, mode ViewMode, out *[maxAxes]math.Vec3) (int, bool) {
	count, ok := fa.flatten(mode)
	if !ok {
		return 0, false
	}
	fb.flatten(mode)

	sqrt := c.Sqrt
	if sqrt == nil {
		sqrt = math.FastSqrt
	}

	n := 0
	for i := 0; i < count; i++ {
		out[n] = fa.dirs[i]
		n++
	}
	for i := 0; i < count; i++ {
		out[n] = fb.dirs[i]
		n++
	}
	for i := 0; i < count; i++ {
		for j := 0; j < count; j++ {
			out[n] = fa.dirs[i].Cross(fb.dirs[j]).NormalizeWith(sqrt)
			n++
		}
	}
	return n, true
}
