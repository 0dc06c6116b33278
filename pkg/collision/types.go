// Package collision implements a separating axis overlap test between two
// oriented, non-uniformly scaled boxes, with view modes that reduce the test
// to a plane or skip it in favour of a bounding-sphere check.
package collision

import (
	"fmt"
	"strings"

	"github.com/Faultbox/midgard-sat/pkg/math"
)

// Direction names one of a collider's three local axes.
type Direction uint8

const (
	Right Direction = Direction(math.AxisRight)
	Up    Direction = Direction(math.AxisUp)
	Front Direction = Direction(math.AxisFront)

	directionCount = 3
)

// Valid reports whether d is Right, Up or Front.
func (d Direction) Valid() bool {
	return d < directionCount
}

func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Up:
		return "up"
	case Front:
		return "front"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// ViewMode selects how many dimensions the overlap test runs in.
type ViewMode uint8

const (
	// ViewSideScroll ignores Z (front axis): the test runs on the XY plane.
	ViewSideScroll ViewMode = iota
	// ViewTopDown ignores Y (up axis): the test runs on the XZ plane.
	ViewTopDown
	// ViewIsometric behaves exactly like ViewTopDown.
	ViewIsometric
	// ViewSATOn forces the full 3D separating axis test.
	ViewSATOn
	// ViewSATOff skips the axis test; the bounding-sphere check decides.
	ViewSATOff
)

var viewModeNames = [...]string{
	ViewSideScroll: "sidescroll",
	ViewTopDown:    "topdown",
	ViewIsometric:  "isometric",
	ViewSATOn:      "sat_on",
	ViewSATOff:     "sat_off",
}

// ViewModes lists every defined mode in declaration order.
func ViewModes() []ViewMode {
	return []ViewMode{ViewSideScroll, ViewTopDown, ViewIsometric, ViewSATOn, ViewSATOff}
}

func (m ViewMode) String() string {
	if int(m) < len(viewModeNames) {
		return viewModeNames[m]
	}
	return fmt.Sprintf("ViewMode(%d)", uint8(m))
}

// ParseViewMode maps a mode name (case-insensitive, "-" or "_" allowed) to a ViewMode.
func ParseViewMode(s string) (ViewMode, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for i, name := range viewModeNames {
		if key == name {
			return ViewMode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown view mode %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (m ViewMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *ViewMode) UnmarshalText(text []byte) error {
	v, err := ParseViewMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Collider is the read-only view the overlap test needs. Directions are
// expected to be orthonormal; nothing checks that.
type Collider interface {
	Position() math.Vec3
	Scale() math.Vec3
	Direction(d Direction) math.Vec3
}
