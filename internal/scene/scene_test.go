package scene

import (
	"errors"
	"testing"

	"github.com/Faultbox/midgard-sat/pkg/collision"
	"github.com/Faultbox/midgard-sat/pkg/math"
)

var unit = math.Vec3{X: 1, Y: 1, Z: 1}

func box(x, y, z float32) Collider {
	return NewCollider(math.Vec3{X: x, Y: y, Z: z}, unit, math.QuatIdentity())
}

func newArena(t *testing.T, mode collision.ViewMode) (*Manager, *Stage) {
	t.Helper()
	m := NewManager(collision.NewChecker(collision.SqrtLegacy))
	st, err := m.AddStage("arena", mode)
	if err != nil {
		t.Fatalf("AddStage: %v", err)
	}
	return m, st
}

func mustAdd(t *testing.T, m *Manager, stage StageID, name string, c Collider) *Object {
	t.Helper()
	obj, err := m.AddObject(stage, name, c)
	if err != nil {
		t.Fatalf("AddObject(%s): %v", name, err)
	}
	return obj
}

func TestManager_OwnerLookup(t *testing.T) {
	m, st := newArena(t, collision.ViewSATOn)
	crate := mustAdd(t, m, st.ID, "crate", box(0, 0, 0))

	if crate.ID == 0 {
		t.Fatal("object IDs start at 1")
	}
	if crate.Collider.Owner != crate.ID {
		t.Errorf("collider owner = %d, want %d", crate.Collider.Owner, crate.ID)
	}
	owner, ok := m.Owner(crate.Collider)
	if !ok || owner != crate {
		t.Errorf("Owner() = %v, %v; want crate", owner, ok)
	}
	if _, ok := m.Owner(Collider{Owner: 99}); ok {
		t.Error("Owner() should fail for an unknown ID")
	}
}

func TestManager_CurrentStage(t *testing.T) {
	m := NewManager(collision.Checker{})
	if _, ok := m.Current(); ok {
		t.Error("empty manager should have no current stage")
	}

	first, _ := m.AddStage("first", collision.ViewSideScroll)
	second, _ := m.AddStage("second", collision.ViewTopDown)

	cur, ok := m.Current()
	if !ok || cur.ID != first.ID {
		t.Errorf("Current() = %v, want first stage", cur)
	}
	if err := m.SetCurrent(second.ID); err != nil {
		t.Fatalf("SetCurrent: %v", err)
	}
	if cur, _ := m.Current(); cur.ID != second.ID {
		t.Errorf("Current() = %v, want second stage", cur)
	}
	if err := m.SetCurrent(42); !errors.Is(err, ErrUnknownStage) {
		t.Errorf("SetCurrent(42) error = %v, want ErrUnknownStage", err)
	}
}

func TestManager_Duplicates(t *testing.T) {
	m, st := newArena(t, collision.ViewSATOn)
	if _, err := m.AddStage("arena", collision.ViewSATOff); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("duplicate stage error = %v", err)
	}
	mustAdd(t, m, st.ID, "crate", box(0, 0, 0))
	if _, err := m.AddObject(st.ID, "crate", box(1, 0, 0)); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("duplicate object error = %v", err)
	}
	if _, err := m.AddObject(77, "ghost", box(0, 0, 0)); !errors.Is(err, ErrUnknownStage) {
		t.Errorf("unknown stage error = %v", err)
	}
}

func TestManager_Check(t *testing.T) {
	m, st := newArena(t, collision.ViewSATOn)
	a := mustAdd(t, m, st.ID, "a", box(0, 0, 0))
	b := mustAdd(t, m, st.ID, "b", box(1.5, 0, 0))
	c := mustAdd(t, m, st.ID, "c", box(3, 0, 0))

	res, err := m.Check(st.ID, a.ID, b.ID)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !res.Overlap {
		t.Error("expected a and b to overlap")
	}

	res, err = m.Check(st.ID, a.ID, c.ID)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if res.Overlap || res.Reason != collision.ReasonSeparated {
		t.Errorf("a/c = %+v, want separated", res)
	}

	// The same pair under sat_off passes the radius check.
	st.ViewMode = collision.ViewSATOff
	res, _ = m.Check(st.ID, a.ID, c.ID)
	if !res.Overlap || res.Reason != collision.ReasonSATSkipped {
		t.Errorf("a/c with sat_off = %+v, want skipped overlap", res)
	}
}

func TestManager_CheckErrors(t *testing.T) {
	m, st := newArena(t, collision.ViewSATOn)
	a := mustAdd(t, m, st.ID, "a", box(0, 0, 0))

	other, _ := m.AddStage("other", collision.ViewSATOn)
	b := mustAdd(t, m, other.ID, "b", box(0, 0, 0))

	if _, err := m.Check(99, a.ID, a.ID); !errors.Is(err, ErrUnknownStage) {
		t.Errorf("unknown stage error = %v", err)
	}
	if _, err := m.Check(st.ID, a.ID, 99); !errors.Is(err, ErrUnknownObject) {
		t.Errorf("unknown object error = %v", err)
	}
	if _, err := m.Check(st.ID, a.ID, b.ID); !errors.Is(err, ErrNotOnStage) {
		t.Errorf("foreign object error = %v", err)
	}
}

func TestManager_Overlapping(t *testing.T) {
	m, st := newArena(t, collision.ViewSATOn)
	a := mustAdd(t, m, st.ID, "a", box(0, 0, 0))
	b := mustAdd(t, m, st.ID, "b", box(1.5, 0, 0))
	mustAdd(t, m, st.ID, "far", box(20, 0, 0))
	d := mustAdd(t, m, st.ID, "d", box(3, 0, 0))

	pairs, err := m.Overlapping(st.ID)
	if err != nil {
		t.Fatalf("Overlapping: %v", err)
	}

	// a-b and b-d overlap; a-d are 3 apart and separate on X.
	want := [][2]ObjectID{{a.ID, b.ID}, {b.ID, d.ID}}
	if len(pairs) != len(want) {
		t.Fatalf("got %d pairs %+v, want %d", len(pairs), pairs, len(want))
	}
	for i, p := range pairs {
		if p.A != want[i][0] || p.B != want[i][1] {
			t.Errorf("pair %d = (%d,%d), want (%d,%d)", i, p.A, p.B, want[i][0], want[i][1])
		}
		if !p.Result.Overlap {
			t.Errorf("pair %d result not overlapping", i)
		}
	}

	if _, err := m.Overlapping(55); !errors.Is(err, ErrUnknownStage) {
		t.Errorf("unknown stage error = %v", err)
	}
}

func TestCollider_Direction(t *testing.T) {
	c := box(0, 0, 0)
	if got := c.Direction(collision.Front); got != (math.Vec3{Z: 1}) {
		t.Errorf("Direction(Front) = %v", got)
	}
	if got := c.Direction(collision.Direction(9)); got != (math.Vec3{}) {
		t.Errorf("Direction(9) = %v, want zero", got)
	}
	if collision.Snapshot(c).Center != c.Pos {
		t.Error("snapshot lost the position")
	}
}
