package scene

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-sat/pkg/collision"
)

// Pair is two overlapping objects, A created before B.
type Pair struct {
	A, B   ObjectID
	Result collision.Result
}

// Check runs the overlap test for two objects on a stage under the
// stage's view mode.
func (m *Manager) Check(stage StageID, a, b ObjectID) (collision.Result, error) {
	st, ok := m.stages[stage]
	if !ok {
		return collision.Result{}, fmt.Errorf("stage %d: %w", stage, ErrUnknownStage)
	}
	objA, err := m.stageObject(st, a)
	if err != nil {
		return collision.Result{}, err
	}
	objB, err := m.stageObject(st, b)
	if err != nil {
		return collision.Result{}, err
	}

	res := m.checker.Test(objA.Collider, objB.Collider, st.ViewMode)
	m.log.Debug("pair checked",
		zap.String("a", objA.Name),
		zap.String("b", objB.Name),
		zap.Stringer("mode", st.ViewMode),
		zap.Stringer("reason", res.Reason),
		zap.Int("axis", res.Axis))
	return res, nil
}

func (m *Manager) stageObject(st *Stage, id ObjectID) (*Object, error) {
	obj, ok := m.objects[id]
	if !ok {
		return nil, fmt.Errorf("object %d: %w", id, ErrUnknownObject)
	}
	if obj.Stage != st.ID {
		return nil, fmt.Errorf("object %q on stage %q: %w", obj.Name, st.Name, ErrNotOnStage)
	}
	return obj, nil
}

// Overlapping tests every pair of objects on the stage and returns the
// overlapping ones, ordered by object creation.
func (m *Manager) Overlapping(stage StageID) ([]Pair, error) {
	st, ok := m.stages[stage]
	if !ok {
		return nil, fmt.Errorf("stage %d: %w", stage, ErrUnknownStage)
	}

	var pairs []Pair
	ids := st.Objects
	for i := 0; i < len(ids); i++ {
		a := m.objects[ids[i]]
		for j := i + 1; j < len(ids); j++ {
			b := m.objects[ids[j]]
			res := m.checker.Test(a.Collider, b.Collider, st.ViewMode)
			if !res.Overlap {
				continue
			}
			m.log.Debug("overlap",
				zap.String("a", a.Name),
				zap.String("b", b.Name),
				zap.Stringer("reason", res.Reason))
			pairs = append(pairs, Pair{A: a.ID, B: b.ID, Result: res})
		}
	}

	m.log.Info("stage checked",
		zap.String("stage", st.Name),
		zap.Stringer("mode", st.ViewMode),
		zap.Int("objects", len(ids)),
		zap.Int("overlaps", len(pairs)))
	return pairs, nil
}
