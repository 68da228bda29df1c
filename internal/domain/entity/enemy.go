package entity

import (
	"fmt"
	"image/color"
	"strings"
)

// FirePatternKind selects how an enemy emits bullets
type FirePatternKind int

const (
	FireSpiral FirePatternKind = iota
	FireAimBurst
)

// String returns the database name of the fire pattern
func (k FirePatternKind) String() string {
	switch k {
	case FireSpiral:
		return "spiral"
	case FireAimBurst:
		return "aim_burst"
	default:
		return "unknown"
	}
}

// ParseFirePatternKind accepts "spiral"/"aim_burst" and their Spiral/AimBurst spellings
func ParseFirePatternKind(s string) (FirePatternKind, error) {
	switch normalizeKind(s) {
	case "spiral":
		return FireSpiral, nil
	case "aimburst":
		return FireAimBurst, nil
	}
	return 0, fmt.Errorf("unknown fire pattern kind %q", s)
}

// MotionPatternKind selects how an enemy moves
type MotionPatternKind int

const (
	MotionEnterStay MotionPatternKind = iota
	MotionFlyBy
)

// String returns the database name of the motion pattern
func (k MotionPatternKind) String() string {
	switch k {
	case MotionEnterStay:
		return "enter_stay"
	case MotionFlyBy:
		return "fly_by"
	default:
		return "unknown"
	}
}

// ParseMotionPatternKind accepts "enter_stay"/"fly_by" and their EnterStay/FlyBy spellings
func ParseMotionPatternKind(s string) (MotionPatternKind, error) {
	switch normalizeKind(s) {
	case "enterstay":
		return MotionEnterStay, nil
	case "flyby":
		return MotionFlyBy, nil
	}
	return 0, fmt.Errorf("unknown motion pattern kind %q", s)
}

func normalizeKind(s string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "_", ""))
}

// BulletKind names a shared bullet visual set (open enumeration)
type BulletKind string

// BulletVisual is the read-only look shared by every bullet of one kind.
// Instances hold a pointer to it and never mutate it.
type BulletVisual struct {
	Kind   BulletKind
	Radius float64
	Color  color.RGBA
}

// EnemyDescriptor is the immutable template an enemy is spawned from
type EnemyDescriptor struct {
	Name       string
	MaxLife    float64
	IsBoss     bool
	Fire       FirePatternKind
	Motion     MotionPatternKind
	BulletKind BulletKind
}
