// Package pricing implements the charter pricing engine: aircraft
// performance tables, block time, operating costs, demand adjustment and
// route feasibility. Everything in this package is pure arithmetic over
// its inputs.
package pricing

import "strings"

// JetClass is the closed aircraft-class taxonomy used for performance and
// cost lookups. Jets are classified once when loaded, not per quote.
type JetClass int

const (
	ClassUnknown JetClass = iota
	ClassVeryLight
	ClassLight
	ClassSuperLight
	ClassMidsize
	ClassSuperMidsize
	ClassHeavy
	ClassUltraLongRange
	ClassBizliner
)

func (c JetClass) String() string {
	switch c {
	case ClassVeryLight:
		return "very_light"
	case ClassLight:
		return "light"
	case ClassSuperLight:
		return "super_light"
	case ClassMidsize:
		return "midsize"
	case ClassSuperMidsize:
		return "super_midsize"
	case ClassHeavy:
		return "heavy"
	case ClassUltraLongRange:
		return "ultra_long_range"
	case ClassBizliner:
		return "bizliner"
	default:
		return "unknown"
	}
}

// ClassifyType maps a free-form jet type string onto the class taxonomy.
// Qualified variants ("super light", "super midsize") must be checked
// before the unqualified ones so "Super Light Jet" does not classify as
// light.
func ClassifyType(jetType string) JetClass {
	t := strings.ToLower(jetType)

	switch {
	case strings.Contains(t, "bbj"), strings.Contains(t, "acj"), strings.Contains(t, "lineage"):
		return ClassBizliner
	case strings.Contains(t, "ultra long"):
		return ClassUltraLongRange
	case strings.Contains(t, "very light"):
		return ClassVeryLight
	case strings.Contains(t, "super light"):
		return ClassSuperLight
	case strings.Contains(t, "super midsize"):
		return ClassSuperMidsize
	case strings.Contains(t, "light"):
		return ClassLight
	case strings.Contains(t, "midsize"):
		return ClassMidsize
	case strings.Contains(t, "heavy"):
		return ClassHeavy
	default:
		return ClassUnknown
	}
}
