// Package collision reports when entities start and stop touching.
//
// Every entity is a kinematic chipmunk body carrying one sensor circle.
// Collision layers become shape filter categories and masks, so pairs that
// may never interact (a bullet and its own side) are rejected by the space
// itself and never produce events.
package collision

import (
	"sort"

	"github.com/jakecoffman/cp"

	"github.com/younwookim/kaizen/internal/domain/entity"
)

const sensorType cp.CollisionType = 1

// EventKind tells whether a contact began or ended
type EventKind int

const (
	Started EventKind = iota
	Stopped
)

// String returns the string representation of the event kind
func (k EventKind) String() string {
	switch k {
	case Started:
		return "Started"
	case Stopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// Contact is one side of a collision
type Contact struct {
	Entity entity.EntityID
	Layer  entity.Layer
}

// Event is a collision start or stop between two entities.
// A always holds the lower entity ID.
type Event struct {
	Kind EventKind
	A, B Contact
}

// Other returns the contact that is not id
func (e Event) Other(id entity.EntityID) Contact {
	if e.A.Entity == id {
		return e.B
	}
	return e.A
}

// Broadphase tracks entity circles in a chipmunk space
type Broadphase struct {
	space   *cp.Space
	shapes  map[entity.EntityID]*cp.Shape
	pending []Event
}

// New creates an empty broad-phase
func New() *Broadphase {
	b := &Broadphase{
		space:  cp.NewSpace(),
		shapes: make(map[entity.EntityID]*cp.Shape),
	}

	handler := b.space.NewCollisionHandler(sensorType, sensorType)
	handler.BeginFunc = func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
		b.record(Started, arb)
		return true
	}
	handler.SeparateFunc = func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) {
		b.record(Stopped, arb)
	}

	return b
}

func (b *Broadphase) record(kind EventKind, arb *cp.Arbiter) {
	sa, sb := arb.Shapes()
	ca, okA := sa.UserData.(Contact)
	cb, okB := sb.UserData.(Contact)
	if !okA || !okB {
		return
	}
	if cb.Entity < ca.Entity {
		ca, cb = cb, ca
	}
	b.pending = append(b.pending, Event{Kind: kind, A: ca, B: cb})
}

// Add registers a circle for id. Adding an existing id replaces it.
func (b *Broadphase) Add(id entity.EntityID, pos entity.Vec3, radius float64, layer entity.Layer) {
	if _, ok := b.shapes[id]; ok {
		b.Remove(id)
	}

	body := b.space.AddBody(cp.NewKinematicBody())
	body.SetPosition(cp.Vector{X: pos.X, Y: pos.Y})

	shape := cp.NewCircle(body, radius, cp.Vector{})
	shape.SetSensor(true)
	shape.SetCollisionType(sensorType)
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, uint(layer), uint(layer.Mask())))
	shape.UserData = Contact{Entity: id, Layer: layer}
	b.space.AddShape(shape)

	b.shapes[id] = shape
}

// Move places the circle of id at pos
func (b *Broadphase) Move(id entity.EntityID, pos entity.Vec3) {
	if shape, ok := b.shapes[id]; ok {
		shape.Body().SetPosition(cp.Vector{X: pos.X, Y: pos.Y})
	}
}

// Remove forgets the circle of id
func (b *Broadphase) Remove(id entity.EntityID) {
	shape, ok := b.shapes[id]
	if !ok {
		return
	}
	body := shape.Body()
	b.space.RemoveShape(shape)
	b.space.RemoveBody(body)
	delete(b.shapes, id)
}

// Has reports whether id is tracked
func (b *Broadphase) Has(id entity.EntityID) bool {
	_, ok := b.shapes[id]
	return ok
}

// Len returns the number of tracked entities
func (b *Broadphase) Len() int {
	return len(b.shapes)
}

// Step runs collision detection and returns the contacts that started or
// stopped since the previous step, ordered by entity ID.
func (b *Broadphase) Step(dt float64) []Event {
	// stops caused by Remove are not reported
	b.pending = b.pending[:0]
	b.space.Step(dt)

	events := make([]Event, len(b.pending))
	copy(events, b.pending)
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].A.Entity != events[j].A.Entity {
			return events[i].A.Entity < events[j].A.Entity
		}
		return events[i].B.Entity < events[j].B.Entity
	})
	return events
}
