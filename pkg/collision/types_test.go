package collision

import (
	"testing"

	"github.com/Faultbox/midgard-sat/pkg/math"
)

func TestParseViewMode(t *testing.T) {
	tests := []struct {
		in   string
		want ViewMode
	}{
		{"sidescroll", ViewSideScroll},
		{"TopDown", ViewTopDown},
		{" isometric ", ViewIsometric},
		{"sat-on", ViewSATOn},
		{"SAT_OFF", ViewSATOff},
	}
	for _, tt := range tests {
		got, err := ParseViewMode(tt.in)
		if err != nil {
			t.Errorf("ParseViewMode(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseViewMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseViewMode("orbit"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestViewModeTextRoundTrip(t *testing.T) {
	for _, m := range ViewModes() {
		text, err := m.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", m, err)
		}
		var back ViewMode
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%s): %v", text, err)
		}
		if back != m {
			t.Errorf("round trip %v -> %s -> %v", m, text, back)
		}
	}
}

func TestViewModeStringUnknown(t *testing.T) {
	if got := ViewMode(7).String(); got != "ViewMode(7)" {
		t.Errorf("String() = %q", got)
	}
}

func TestDirection(t *testing.T) {
	if Right.String() != "right" || Up.String() != "up" || Front.String() != "front" {
		t.Errorf("unexpected names: %s %s %s", Right, Up, Front)
	}
	if Direction(3).Valid() {
		t.Error("Direction(3) should be invalid")
	}

	v := math.Vec3{X: 1, Y: 2, Z: 3}
	for d, want := range map[Direction]float32{Right: 1, Up: 2, Front: 3} {
		got, err := v.Component(math.Axis(d))
		if err != nil || got != want {
			t.Errorf("Component(%v) = %v, %v; want %v", d, got, err, want)
		}
	}
}

func TestParseSqrtMode(t *testing.T) {
	if m, err := ParseSqrtMode("exact"); err != nil || m != SqrtExact {
		t.Errorf("ParseSqrtMode(exact) = %v, %v", m, err)
	}
	if m, err := ParseSqrtMode("legacy"); err != nil || m != SqrtLegacy {
		t.Errorf("ParseSqrtMode(legacy) = %v, %v", m, err)
	}
	if _, err := ParseSqrtMode("cubic"); err == nil {
		t.Error("expected error for unknown sqrt mode")
	}
}

func TestBoxDirection(t *testing.T) {
	b := NewBox(math.Vec3{}, unit)
	if got := b.Direction(Up); got != (math.Vec3{Y: 1}) {
		t.Errorf("Direction(Up) = %v", got)
	}
	if got := b.Direction(Direction(5)); got != (math.Vec3{}) {
		t.Errorf("Direction(5) = %v, want zero", got)
	}
}

func TestSnapshot(t *testing.T) {
	b := NewBox(math.Vec3{X: 1, Y: 2, Z: 3}, math.Vec3{X: 4, Y: 5, Z: 6}).
		Rotated(math.QuatFromEuler(0.1, 0.2, 0.3))
	if got := Snapshot(b); got != b {
		t.Errorf("Snapshot() = %+v, want %+v", got, b)
	}
	moved := b.Moved(math.Vec3{X: 1})
	if moved.Center.X != 2 || b.Center.X != 1 {
		t.Errorf("Moved() center = %v, original %v", moved.Center, b.Center)
	}
}

func BenchmarkOverlaps3D(b *testing.B) {
	q := math.QuatFromEuler(0.3, 0.6, 0.9)
	a := NewBox(math.Vec3{}, unit).Rotated(q)
	c := NewBox(math.Vec3{X: 1, Y: 1, Z: 1}, unit)
	for i := 0; i < b.N; i++ {
		Overlaps(a, c, ViewSATOn)
	}
}
