package scene

import (
	"fmt"
	gomath "math"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/midgard-sat/pkg/collision"
	"github.com/Faultbox/midgard-sat/pkg/math"
)

// File is the YAML layout of a scene file.
//
//	current: arena
//	stages:
//	  - name: arena
//	    view_mode: sat_on
//	    objects:
//	      - name: crate
//	        position: [0, 0, 0]
//	        scale: [1, 1, 1]
//	        rotation: [0, 45, 0]  # pitch, yaw, roll in degrees
type File struct {
	Current string      `yaml:"current,omitempty"`
	Stages  []StageFile `yaml:"stages"`
}

// StageFile is one stage in a scene file.
type StageFile struct {
	Name     string       `yaml:"name"`
	ViewMode string       `yaml:"view_mode"`
	Objects  []ObjectFile `yaml:"objects"`
}

// ObjectFile is one object in a scene file. Axes, when present, replace
// Rotation and are used as given.
type ObjectFile struct {
	Name     string    `yaml:"name"`
	Position []float32 `yaml:"position"`
	Scale    []float32 `yaml:"scale"`
	Rotation []float32 `yaml:"rotation,omitempty"`
	Axes     *AxesFile `yaml:"axes,omitempty"`
}

// AxesFile lists explicit direction vectors.
type AxesFile struct {
	Right []float32 `yaml:"right"`
	Up    []float32 `yaml:"up"`
	Front []float32 `yaml:"front"`
}

// Load reads a scene file into a new Manager.
func Load(path string, checker collision.Checker) (*Manager, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := Parse(data, checker)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	m.log.Info("scene loaded", zap.String("path", path), zap.Int("stages", len(m.stageOrder)))
	return m, nil
}

// Parse builds a Manager from scene YAML.
func Parse(data []byte, checker collision.Checker) (*Manager, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return f.Build(checker)
}

// Build creates a Manager holding the file's stages and objects.
func (f *File) Build(checker collision.Checker) (*Manager, error) {
	m := NewManager(checker)

	for _, sf := range f.Stages {
		mode := collision.ViewSATOn
		if sf.ViewMode != "" {
			var err error
			if mode, err = collision.ParseViewMode(sf.ViewMode); err != nil {
				return nil, fmt.Errorf("stage %q: %w", sf.Name, err)
			}
		}
		st, err := m.AddStage(sf.Name, mode)
		if err != nil {
			return nil, err
		}

		for _, of := range sf.Objects {
			col, err := of.collider()
			if err != nil {
				return nil, fmt.Errorf("stage %q object %q: %w", sf.Name, of.Name, err)
			}
			if _, err := m.AddObject(st.ID, of.Name, col); err != nil {
				return nil, err
			}
		}
	}

	if f.Current != "" {
		st, ok := m.StageByName(f.Current)
		if !ok {
			return nil, fmt.Errorf("current stage %q: %w", f.Current, ErrUnknownStage)
		}
		m.current = st.ID
	}
	return m, nil
}

func (o ObjectFile) collider() (Collider, error) {
	pos, err := vec3("position", o.Position, math.Vec3{})
	if err != nil {
		return Collider{}, err
	}
	size, err := vec3("scale", o.Scale, math.Vec3{X: 1, Y: 1, Z: 1})
	if err != nil {
		return Collider{}, err
	}

	if o.Axes != nil {
		col := Collider{Pos: pos, Size: size}
		for i, raw := range [][]float32{o.Axes.Right, o.Axes.Up, o.Axes.Front} {
			name := collision.Direction(i).String()
			if col.Axes[i], err = vec3("axes."+name, raw, math.Vec3{}); err != nil {
				return Collider{}, err
			}
		}
		return col, nil
	}

	rot, err := vec3("rotation", o.Rotation, math.Vec3{})
	if err != nil {
		return Collider{}, err
	}
	q := math.QuatFromEuler(radians(rot.X), radians(rot.Y), radians(rot.Z))
	return NewCollider(pos, size, q), nil
}

func vec3(field string, v []float32, def math.Vec3) (math.Vec3, error) {
	switch len(v) {
	case 0:
		return def, nil
	case 3:
		return math.Vec3{X: v[0], Y: v[1], Z: v[2]}, nil
	}
	return math.Vec3{}, fmt.Errorf("%s: want 3 components, got %d", field, len(v))
}

func radians(deg float32) float32 {
	return deg * gomath.Pi / 180
}

// Marshal encodes the manager's stages and objects as scene YAML.
// Colliders are written with explicit axes.
func (m *Manager) Marshal() ([]byte, error) {
	var f File
	if cur, ok := m.Current(); ok {
		f.Current = cur.Name
	}
	for _, st := range m.Stages() {
		sf := StageFile{Name: st.Name, ViewMode: st.ViewMode.String()}
		for _, id := range st.Objects {
			obj := m.objects[id]
			c := obj.Collider
			sf.Objects = append(sf.Objects, ObjectFile{
				Name:     obj.Name,
				Position: slice(c.Pos),
				Scale:    slice(c.Size),
				Axes: &AxesFile{
					Right: slice(c.Axes[collision.Right]),
					Up:    slice(c.Axes[collision.Up]),
					Front: slice(c.Axes[collision.Front]),
				},
			})
		}
		f.Stages = append(f.Stages, sf)
	}
	return yaml.Marshal(&f)
}

func slice(v math.Vec3) []float32 {
	return []float32{v.X, v.Y, v.Z}
}
