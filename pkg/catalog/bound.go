package catalog

import (
	"math"
	"strings"
)

// Bound is the closed value range a metric's unit allows.
// An unbounded metric has Bounded == false and passes through Clamp unchanged.
type Bound struct {
	Min     float64
	Max     float64
	Bounded bool
}

var (
	percentBound  = Bound{Min: 0, Max: 100, Bounded: true}
	unitIndex     = Bound{Min: 0, Max: 1, Bounded: true}
	hundredIndex  = Bound{Min: 0, Max: 100, Bounded: true}
	unboundedUnit = Bound{Min: math.Inf(-1), Max: math.Inf(1)}
)

// BoundForUnit derives the range from a unit label:
// anything with "%" is a percentage, "Index (0-1)" and "Index (0-100)"
// are fixed-scale indices, everything else is unbounded.
func BoundForUnit(unit string) Bound {
	switch {
	case strings.Contains(unit, "%"):
		return percentBound
	case strings.Contains(unit, "Index") && strings.Contains(unit, "0-100"):
		return hundredIndex
	case strings.Contains(unit, "Index") && strings.Contains(unit, "0-1"):
		return unitIndex
	default:
		return unboundedUnit
	}
}

// Clamp limits v to the bound.
func (b Bound) Clamp(v float64) float64 {
	if !b.Bounded {
		return v
	}
	return math.Min(math.Max(v, b.Min), b.Max)
}

// Contains reports whether v lies inside the bound.
func (b Bound) Contains(v float64) bool {
	if !b.Bounded {
		return true
	}
	return v >= b.Min && v <= b.Max
}
