package badges

import "github.com/abhisek/eduvoyager/internal/learner"

// Icon is the closed set of badge icon kinds. The presentation layer maps
// each kind to a glyph; the core never deals in display strings.
type Icon string

const (
	IconFootprints Icon = "footprints"
	IconFlame      Icon = "flame"
	IconTarget     Icon = "target"
	IconGradCap    Icon = "graduation-cap"
	IconBook       Icon = "book"
	IconCrown      Icon = "crown"
)

// Badge is a static achievement definition. The catalog is global and
// read-only; user data references badges by ID only.
type Badge struct {
	ID          string
	Name        string
	Description string
	Icon        Icon
	XPBonus     int

	// Condition decides whether the badge is earned for a stats snapshot.
	// Predicates read xp, streak, completedModules and currentNsqfLevel
	// only, never the badge set, so catalog order carries no
	// evaluation-order dependency.
	Condition func(learner.Stats) bool
}
