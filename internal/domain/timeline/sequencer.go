package timeline

import (
	"log"
	"sort"

	"github.com/younwookim/kaizen/internal/domain/entity"
)

// timeEpsilon absorbs rounding from summing many small frame deltas, so an
// event is due on the step that reaches its time however dt is chunked
const timeEpsilon = 1e-9

// Event schedules one enemy spawn
type Event struct {
	Time      float64 // seconds from level start
	EnemyName string
	Position  entity.Vec3
}

// Sequencer releases timeline events as level time passes.
// The next index only moves forward; once it reaches the end the sequencer
// does nothing.
type Sequencer struct {
	registry *Registry
	events   []Event
	elapsed  float64
	next     int
	dropped  int

	// OnUnknownEnemy is called when an event names an unregistered enemy.
	// The event is skipped either way.
	OnUnknownEnemy func(name string, at float64)
}

// NewSequencer creates a sequencer over events, ordered by time.
// Events with equal times keep their declaration order.
func NewSequencer(registry *Registry, events []Event) *Sequencer {
	sorted := make([]Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Time < sorted[j].Time
	})

	return &Sequencer{
		registry: registry,
		events:   sorted,
	}
}

// Advance moves level time forward by dt and returns the spawns now due
func (s *Sequencer) Advance(dt float64) []entity.SpawnRequest {
	if s.Exhausted() {
		return nil
	}

	s.elapsed += dt

	var out []entity.SpawnRequest
	for s.next < len(s.events) {
		ev := s.events[s.next]
		if ev.Time > s.elapsed+timeEpsilon {
			break
		}
		s.next++

		desc, ok := s.registry.Lookup(ev.EnemyName)
		if !ok {
			s.dropped++
			if s.OnUnknownEnemy != nil {
				s.OnUnknownEnemy(ev.EnemyName, ev.Time)
			} else {
				log.Printf("Failed to spawn unknown enemy %q at t=%.2f", ev.EnemyName, ev.Time)
			}
			continue
		}
		out = append(out, entity.SpawnRequest{Descriptor: desc, Position: ev.Position})
	}
	return out
}

// Exhausted reports whether every event has been processed
func (s *Sequencer) Exhausted() bool {
	return s.next >= len(s.events)
}

// Elapsed returns level time in seconds
func (s *Sequencer) Elapsed() float64 {
	return s.elapsed
}

// NextIndex returns the index of the first unprocessed event
func (s *Sequencer) NextIndex() int {
	return s.next
}

// Len returns the number of scheduled events
func (s *Sequencer) Len() int {
	return len(s.events)
}

// Dropped returns how many events named unknown enemies
func (s *Sequencer) Dropped() int {
	return s.dropped
}
