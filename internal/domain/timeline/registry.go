// Package timeline holds the enemy descriptor table and the scripted spawn
// schedule of a level.
package timeline

import (
	"errors"
	"fmt"

	"github.com/younwookim/kaizen/internal/domain/entity"
)

// ErrMissingBulletVisual is returned when a descriptor fires a bullet kind
// that has no registered visual.
var ErrMissingBulletVisual = errors.New("missing bullet visual")

// Registry owns the enemy descriptors and the shared bullet visuals of a level
type Registry struct {
	descriptors map[string]*entity.EnemyDescriptor
	order       []string
	visuals     map[entity.BulletKind]*entity.BulletVisual
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		descriptors: make(map[string]*entity.EnemyDescriptor),
		visuals:     make(map[entity.BulletKind]*entity.BulletVisual),
	}
}

// Register inserts a descriptor, replacing any previous one with the same name
func (r *Registry) Register(d entity.EnemyDescriptor) {
	if _, ok := r.descriptors[d.Name]; !ok {
		r.order = append(r.order, d.Name)
	}
	r.descriptors[d.Name] = &d
}

// Lookup returns the descriptor registered under name
func (r *Registry) Lookup(name string) (*entity.EnemyDescriptor, bool) {
	d, ok := r.descriptors[name]
	return d, ok
}

// Len returns the number of registered descriptors
func (r *Registry) Len() int {
	return len(r.descriptors)
}

// Names returns descriptor names in first-registration order
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// FirstBoss returns the earliest registered boss descriptor
func (r *Registry) FirstBoss() (*entity.EnemyDescriptor, bool) {
	for _, name := range r.order {
		if d := r.descriptors[name]; d.IsBoss {
			return d, true
		}
	}
	return nil, false
}

// RegisterVisual adds the shared visual for a bullet kind
func (r *Registry) RegisterVisual(v entity.BulletVisual) {
	r.visuals[v.Kind] = &v
}

// Visual returns the shared visual for kind
func (r *Registry) Visual(kind entity.BulletKind) (*entity.BulletVisual, bool) {
	v, ok := r.visuals[kind]
	return v, ok
}

// Validate checks that every descriptor can be spawned and fire
func (r *Registry) Validate() error {
	for _, name := range r.order {
		d := r.descriptors[name]
		if _, ok := r.visuals[d.BulletKind]; !ok {
			return fmt.Errorf("enemy %q uses bullet kind %q: %w", name, d.BulletKind, ErrMissingBulletVisual)
		}
	}
	return nil
}
