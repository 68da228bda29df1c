// Package hud drives the multi-segment lifebar animation.
//
// A lifebar slides on screen, fills its segments one after another, then
// tracks life updates until it is told to hide. It only ever sees numbers;
// which entity's life it shows is decided by whoever sends it notifications.
package hud

import (
	"image/color"
	"math"

	"github.com/tanema/gween/ease"

	"github.com/younwookim/kaizen/internal/domain/entity"
	"github.com/younwookim/kaizen/internal/domain/tween"
)

// Default animation durations in seconds
const (
	DefaultSlideDuration = 2.5
	DefaultFillDuration  = 1.5
)

// Transparent is the under color shown beneath the lowest segment
var Transparent = color.RGBA{}

// Orientation is the axis a lifebar fills along
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// String returns the string representation of the orientation
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Phase is the state of a lifebar
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSlideIn
	PhaseFillUp
	PhaseReady
	PhaseSlideOut
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseSlideIn:
		return "SlideIn"
	case PhaseFillUp:
		return "FillUp"
	case PhaseReady:
		return "Ready"
	case PhaseSlideOut:
		return "SlideOut"
	default:
		return "Unknown"
	}
}

// Layout places a lifebar on screen
type Layout struct {
	Orientation   Orientation
	Visible       entity.Vec3
	Hidden        entity.Vec3
	SlideDuration float64
	FillDuration  float64
}

// Lifebar is the HUD state machine for one life pool
type Lifebar struct {
	layout Layout

	colors      []color.RGBA
	segmentLife float64
	index       int
	phase       Phase

	slide tween.Animator
	fill  tween.Animator

	position    entity.Vec3
	overScale   entity.Vec3
	underColor  color.RGBA
	overColor   color.RGBA
	colorsDirty bool

	life       float64
	hasLife    bool
	showQueued bool

	// OnPhase is called on every phase entry, with the segment index for FillUp
	OnPhase func(phase Phase, index int)
}

// New creates an idle, hidden lifebar
func New(layout Layout) *Lifebar {
	if layout.SlideDuration <= 0 {
		layout.SlideDuration = DefaultSlideDuration
	}
	if layout.FillDuration <= 0 {
		layout.FillDuration = DefaultFillDuration
	}
	return &Lifebar{
		layout:    layout,
		position:  layout.Hidden,
		overScale: entity.One,
	}
}

// Init sets how much life one segment holds and the segment colors,
// lowest segment first.
func (l *Lifebar) Init(segmentLife float64, colors []color.RGBA) {
	l.segmentLife = segmentLife
	l.colors = append([]color.RGBA(nil), colors...)
	l.hasLife = false
	if l.index >= len(l.colors) {
		l.index = max(len(l.colors)-1, 0)
	}
	l.refreshColors()
}

// Show starts sliding the bar in. It only acts from Idle; a show received
// while sliding out is replayed once the bar is back to Idle.
func (l *Lifebar) Show() bool {
	switch l.phase {
	case PhaseIdle:
	case PhaseSlideOut:
		l.showQueued = true
		return false
	default:
		return false
	}

	l.index = 0
	l.overScale = l.fillScale(0)
	l.slide.Play(tween.Tween{
		Start:    l.layout.Hidden,
		End:      l.layout.Visible,
		Duration: l.layout.SlideDuration,
		Ease:     ease.Linear,
		Mode:     tween.Once,
	})
	l.position = l.layout.Hidden
	l.enter(PhaseSlideIn)
	return true
}

// Hide slides the bar out from wherever it is. It is ignored while the bar
// is idle or already leaving.
func (l *Lifebar) Hide() bool {
	l.showQueued = false
	if l.phase == PhaseIdle || l.phase == PhaseSlideOut {
		return false
	}

	l.fill.Stop()
	l.slide.Play(tween.Tween{
		Start:    l.position,
		End:      l.layout.Hidden,
		Duration: l.layout.SlideDuration,
		Ease:     ease.Linear,
		Mode:     tween.Once,
	})
	l.enter(PhaseSlideOut)
	return true
}

// UpdateLife records the latest remaining life. It is shown immediately
// when Ready, otherwise as soon as the fill sequence finishes.
func (l *Lifebar) UpdateLife(remaining float64) {
	l.life = remaining
	l.hasLife = true
	if l.phase == PhaseReady {
		l.applyLife()
	}
}

// Update advances the running animation by dt
func (l *Lifebar) Update(dt float64) {
	switch l.phase {
	case PhaseSlideIn:
		if v, ok := l.slide.Tick(dt); ok {
			l.position = v
		}
		if l.slide.Done() {
			l.index = 0
			l.startFill()
		}

	case PhaseFillUp:
		if v, ok := l.fill.Tick(dt); ok {
			l.overScale = v
		}
		if !l.fill.Done() {
			return
		}
		if l.index+1 < len(l.colors) {
			l.index++
			l.startFill()
			return
		}
		l.enter(PhaseReady)
		if l.hasLife {
			l.applyLife()
		}

	case PhaseSlideOut:
		if v, ok := l.slide.Tick(dt); ok {
			l.position = v
		}
		if l.slide.Done() {
			l.slide.Stop()
			l.enter(PhaseIdle)
			if l.showQueued {
				l.showQueued = false
				l.Show()
			}
		}
	}
}

func (l *Lifebar) startFill() {
	l.fill.Play(tween.Tween{
		Start:    l.fillScale(0),
		End:      entity.One,
		Duration: l.layout.FillDuration,
		Ease:     ease.Linear,
		Mode:     tween.Once,
	})
	l.overScale = l.fillScale(0)
	l.refreshColors()
	l.enter(PhaseFillUp)
}

func (l *Lifebar) applyLife() {
	idx, frac := SegmentFor(l.life, l.segmentLife, len(l.colors))
	if idx != l.index {
		l.index = idx
		l.refreshColors()
	}
	l.overScale = l.fillScale(frac)
}

func (l *Lifebar) enter(p Phase) {
	l.phase = p
	if l.OnPhase != nil {
		l.OnPhase(p, l.index)
	}
}

// fillScale scales only the fill axis
func (l *Lifebar) fillScale(frac float64) entity.Vec3 {
	if l.layout.Orientation == Vertical {
		return entity.Vec3{X: 1, Y: frac, Z: 1}
	}
	return entity.Vec3{X: frac, Y: 1, Z: 1}
}

func (l *Lifebar) refreshColors() {
	l.overColor = Transparent
	l.underColor = Transparent
	if l.index < len(l.colors) {
		l.overColor = l.colors[l.index]
	}
	if l.index > 0 && l.index-1 < len(l.colors) {
		l.underColor = l.colors[l.index-1]
	}
	l.colorsDirty = true
}

// SegmentFor splits remaining life into the active segment and how full it is.
// A full bar reports the last segment at fraction 1.
func SegmentFor(remaining, segmentLife float64, segments int) (index int, fraction float64) {
	if segmentLife <= 0 || segments <= 0 {
		return 0, 0
	}

	r := math.Max(0, math.Min(remaining, segmentLife*float64(segments)))
	ratio := r / segmentLife
	index = int(math.Floor(ratio))
	fraction = ratio - float64(index)
	if index >= segments {
		return segments - 1, 1
	}
	return index, fraction
}

// Phase returns the current phase
func (l *Lifebar) Phase() Phase {
	return l.phase
}

// Index returns the active segment index
func (l *Lifebar) Index() int {
	return l.index
}

// Segments returns the number of segments
func (l *Lifebar) Segments() int {
	return len(l.colors)
}

// SegmentLife returns how much life one segment holds
func (l *Lifebar) SegmentLife() float64 {
	return l.segmentLife
}

// Layout returns the placement of the bar
func (l *Lifebar) Layout() Layout {
	return l.layout
}

// Position returns where the bar is drawn
func (l *Lifebar) Position() entity.Vec3 {
	return l.position
}

// OverScale returns the scale of the draining "over" layer
func (l *Lifebar) OverScale() entity.Vec3 {
	return l.overScale
}

// Colors returns the under and over layer colors
func (l *Lifebar) Colors() (under, over color.RGBA) {
	return l.underColor, l.overColor
}

// TakeColorsDirty reports whether colors changed since the last call
func (l *Lifebar) TakeColorsDirty() bool {
	dirty := l.colorsDirty
	l.colorsDirty = false
	return dirty
}

// Visible reports whether any part of the bar may be on screen
func (l *Lifebar) Visible() bool {
	return l.phase != PhaseIdle
}
