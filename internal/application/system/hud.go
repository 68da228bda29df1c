package system

import (
	"image/color"

	"github.com/younwookim/kaizen/internal/ecs"
)

// HUDCommand is a notification a lifebar understands
type HUDCommand int

const (
	HUDInit HUDCommand = iota
	HUDShow
	HUDHide
	HUDUpdateLife
)

// String returns the string representation of the command
func (c HUDCommand) String() string {
	switch c {
	case HUDInit:
		return "init"
	case HUDShow:
		return "show"
	case HUDHide:
		return "hide"
	case HUDUpdateLife:
		return "life-update"
	default:
		return "unknown"
	}
}

// HUDNotification targets one lifebar entity
type HUDNotification struct {
	Target      ecs.EntityID
	Command     HUDCommand
	SegmentLife float64
	Colors      []color.RGBA
	Life        float64
}

// HudSystem queues lifebar notifications and animates every lifebar
type HudSystem struct {
	queue []HUDNotification
}

// NewHudSystem creates a new HUD system
func NewHudSystem() *HudSystem {
	return &HudSystem{queue: make([]HUDNotification, 0, 8)}
}

// Init queues an init for the lifebar target
func (s *HudSystem) Init(target ecs.EntityID, segmentLife float64, colors []color.RGBA) {
	s.queue = append(s.queue, HUDNotification{
		Target:      target,
		Command:     HUDInit,
		SegmentLife: segmentLife,
		Colors:      colors,
	})
}

// Show queues a show for the lifebar target
func (s *HudSystem) Show(target ecs.EntityID) {
	s.queue = append(s.queue, HUDNotification{Target: target, Command: HUDShow})
}

// Hide queues a hide for the lifebar target
func (s *HudSystem) Hide(target ecs.EntityID) {
	s.queue = append(s.queue, HUDNotification{Target: target, Command: HUDHide})
}

// UpdateLife queues a remaining-life update for the lifebar target
func (s *HudSystem) UpdateLife(target ecs.EntityID, remaining float64) {
	s.queue = append(s.queue, HUDNotification{Target: target, Command: HUDUpdateLife, Life: remaining})
}

// Pending returns the queued notifications
func (s *HudSystem) Pending() []HUDNotification {
	return s.queue
}

// Update delivers queued notifications in order, then advances every
// lifebar by dt. Notifications for missing lifebars are dropped.
func (s *HudSystem) Update(w *ecs.World, dt float64) {
	for _, n := range s.queue {
		bar, ok := w.Lifebar[n.Target]
		if !ok {
			continue
		}
		switch n.Command {
		case HUDInit:
			bar.Init(n.SegmentLife, n.Colors)
		case HUDShow:
			bar.Show()
		case HUDHide:
			bar.Hide()
		case HUDUpdateLife:
			bar.UpdateLife(n.Life)
		}
	}
	s.queue = s.queue[:0]

	for _, id := range ecs.SortedIDs(w.Lifebar) {
		bar := w.Lifebar[id]
		bar.Update(dt)

		tr := w.Transform[id]
		tr.Position = bar.Position()
		tr.Scale = bar.OverScale()
		w.Transform[id] = tr
	}
}
