package progression

import (
	"fmt"
	"math"
)

// Curve defines how much xp each level transition costs. Levels start at 1
// and xp never resets, the curve is always evaluated against lifetime xp.
type Curve interface {
	// Name identifies the curve in config and logs.
	Name() string
	// Requirement returns the xp needed to advance from level to level+1.
	Requirement(level int) int64
}

// Default curve tuning values.
const (
	DefaultFlatPerLevel    = 100
	DefaultGeometricBase   = 100
	DefaultGeometricGrowth = 1.15
)

// Curve selector names, matching the PROGRESSION_CURVE config values.
const (
	CurveNameFlat      = "flat"
	CurveNameGeometric = "geometric"
)

// FlatCurve costs the same xp for every level.
type FlatCurve struct {
	PerLevel int64
}

// NewFlatCurve creates a flat curve with the default per-level cost.
func NewFlatCurve() FlatCurve {
	return FlatCurve{PerLevel: DefaultFlatPerLevel}
}

func (c FlatCurve) Name() string { return CurveNameFlat }

func (c FlatCurve) Requirement(int) int64 {
	return c.PerLevel
}

// GeometricCurve grows the per-level cost by a constant factor. Requirements
// are truncated to whole xp so they stay stable across platforms.
type GeometricCurve struct {
	Base   float64
	Growth float64
}

// NewGeometricCurve creates a geometric curve with the default tuning.
func NewGeometricCurve() GeometricCurve {
	return GeometricCurve{Base: DefaultGeometricBase, Growth: DefaultGeometricGrowth}
}

func (c GeometricCurve) Name() string { return CurveNameGeometric }

func (c GeometricCurve) Requirement(level int) int64 {
	if level < 1 {
		level = 1
	}
	return int64(math.Floor(c.Base * math.Pow(c.Growth, float64(level-1))))
}

// NewCurve returns the curve for the given selector name.
func NewCurve(name string) (Curve, error) {
	switch name {
	case CurveNameFlat:
		return NewFlatCurve(), nil
	case CurveNameGeometric:
		return NewGeometricCurve(), nil
	default:
		return nil, fmt.Errorf("unknown progression curve %q", name)
	}
}

// LevelFor computes the level reached with the given lifetime xp. Unspent
// remainder carries into the next level, so a single large grant can advance
// several levels at once.
func LevelFor(c Curve, xp int64) int {
	level := 1
	remaining := xp
	for remaining >= c.Requirement(level) {
		remaining -= c.Requirement(level)
		level++
	}
	return level
}

// Progress reports the current level, the xp earned within that level, and
// the xp still needed to reach the next one.
func Progress(c Curve, xp int64) (level int, into int64, toNext int64) {
	level = 1
	remaining := xp
	for remaining >= c.Requirement(level) {
		remaining -= c.Requirement(level)
		level++
	}
	return level, remaining, c.Requirement(level) - remaining
}
