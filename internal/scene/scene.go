// Package scene holds stages, objects and their colliders, and runs the
// overlap test over them. Back-references between objects, stages and
// colliders are IDs resolved through the Manager, never pointers.
package scene

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-sat/internal/logger"
	"github.com/Faultbox/midgard-sat/pkg/collision"
	"github.com/Faultbox/midgard-sat/pkg/math"
)

var (
	ErrUnknownStage  = errors.New("unknown stage")
	ErrUnknownObject = errors.New("unknown object")
	ErrNotOnStage    = errors.New("object not on stage")
	ErrDuplicateName = errors.New("duplicate name")
)

// ObjectID identifies an object within a Manager. Zero is never assigned.
type ObjectID uint32

// StageID identifies a stage within a Manager. Zero is never assigned.
type StageID uint32

// Collider is an oriented box attached to an object.
type Collider struct {
	Owner ObjectID
	Pos   math.Vec3
	Size  math.Vec3
	Axes  [3]math.Vec3 // Right, Up, Front
}

// NewCollider returns an axis-aligned collider rotated by q.
func NewCollider(pos, size math.Vec3, q math.Quat) Collider {
	return Collider{Pos: pos, Size: size, Axes: q.Basis()}
}

func (c Collider) Position() math.Vec3 { return c.Pos }
func (c Collider) Scale() math.Vec3    { return c.Size }

func (c Collider) Direction(d collision.Direction) math.Vec3 {
	if !d.Valid() {
		return math.Vec3{}
	}
	return c.Axes[d]
}

// Object is a named scene entity with one collider.
type Object struct {
	ID       ObjectID
	Name     string
	Stage    StageID
	Collider Collider
}

// Stage groups objects tested under one view mode.
type Stage struct {
	ID       StageID
	Name     string
	ViewMode collision.ViewMode
	Objects  []ObjectID
}

// Manager owns every stage and object and resolves IDs.
type Manager struct {
	checker collision.Checker
	log     *zap.Logger

	stages     map[StageID]*Stage
	stageOrder []StageID
	objects    map[ObjectID]*Object
	current    StageID

	nextStage  StageID
	nextObject ObjectID
}

// NewManager creates an empty manager that tests pairs with checker.
func NewManager(checker collision.Checker) *Manager {
	return &Manager{
		checker: checker,
		log:     logger.Named("scene"),
		stages:  make(map[StageID]*Stage),
		objects: make(map[ObjectID]*Object),
	}
}

// Checker returns the checker used for pair tests.
func (m *Manager) Checker() collision.Checker {
	return m.checker
}

// AddStage creates a stage. The first stage added becomes current.
func (m *Manager) AddStage(name string, mode collision.ViewMode) (*Stage, error) {
	if _, ok := m.StageByName(name); ok {
		return nil, fmt.Errorf("stage %q: %w", name, ErrDuplicateName)
	}
	m.nextStage++
	st := &Stage{ID: m.nextStage, Name: name, ViewMode: mode}
	m.stages[st.ID] = st
	m.stageOrder = append(m.stageOrder, st.ID)
	if m.current == 0 {
		m.current = st.ID
	}
	m.log.Debug("stage added", zap.String("stage", name), zap.Stringer("mode", mode))
	return st, nil
}

// AddObject creates an object on a stage and sets its collider's owner.
func (m *Manager) AddObject(stage StageID, name string, col Collider) (*Object, error) {
	st, ok := m.stages[stage]
	if !ok {
		return nil, fmt.Errorf("stage %d: %w", stage, ErrUnknownStage)
	}
	for _, id := range st.Objects {
		if m.objects[id].Name == name {
			return nil, fmt.Errorf("object %q on stage %q: %w", name, st.Name, ErrDuplicateName)
		}
	}

	m.nextObject++
	col.Owner = m.nextObject
	obj := &Object{ID: m.nextObject, Name: name, Stage: stage, Collider: col}
	m.objects[obj.ID] = obj
	st.Objects = append(st.Objects, obj.ID)
	return obj, nil
}

// Stage returns the stage with the given ID.
func (m *Manager) Stage(id StageID) (*Stage, bool) {
	st, ok := m.stages[id]
	return st, ok
}

// StageByName returns the stage with the given name.
func (m *Manager) StageByName(name string) (*Stage, bool) {
	for _, id := range m.stageOrder {
		if st := m.stages[id]; st.Name == name {
			return st, true
		}
	}
	return nil, false
}

// Stages returns all stages in creation order.
func (m *Manager) Stages() []*Stage {
	out := make([]*Stage, 0, len(m.stageOrder))
	for _, id := range m.stageOrder {
		out = append(out, m.stages[id])
	}
	return out
}

// Object returns the object with the given ID.
func (m *Manager) Object(id ObjectID) (*Object, bool) {
	obj, ok := m.objects[id]
	return obj, ok
}

// ObjectByName returns the named object on a stage.
func (m *Manager) ObjectByName(stage StageID, name string) (*Object, bool) {
	st, ok := m.stages[stage]
	if !ok {
		return nil, false
	}
	for _, id := range st.Objects {
		if obj := m.objects[id]; obj.Name == name {
			return obj, true
		}
	}
	return nil, false
}

// Owner resolves a collider's owning object.
func (m *Manager) Owner(c Collider) (*Object, bool) {
	return m.Object(c.Owner)
}

// Current returns the current stage, if any stage exists.
func (m *Manager) Current() (*Stage, bool) {
	return m.Stage(m.current)
}

// SetCurrent selects the current stage.
func (m *Manager) SetCurrent(id StageID) error {
	if _, ok := m.stages[id]; !ok {
		return fmt.Errorf("stage %d: %w", id, ErrUnknownStage)
	}
	m.current = id
	return nil
}
