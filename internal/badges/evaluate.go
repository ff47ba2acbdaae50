package badges

import "github.com/abhisek/eduvoyager/internal/learner"

// Evaluate scans the catalog against a stats snapshot whose pending
// XP/module delta has already been applied, and unlocks every badge whose
// predicate holds and whose id is not yet in the badge set. All unlocks in
// one pass land together: bonuses are summed into the returned stats and
// ids are appended in catalog order.
//
// Evaluate is pure and idempotent with respect to already-unlocked badges;
// the caller persists the returned stats.
func Evaluate(stats learner.Stats) (learner.Stats, []Badge) {
	var unlocked []Badge

	for _, b := range Catalog {
		if stats.HasBadge(b.ID) {
			continue
		}
		if b.Condition(stats) {
			unlocked = append(unlocked, b)
		}
	}

	if len(unlocked) == 0 {
		return stats, nil
	}

	// Copy the badge slice before appending so the input snapshot is
	// never aliased.
	out := stats
	out.Badges = make([]string, 0, len(stats.Badges)+len(unlocked))
	out.Badges = append(out.Badges, stats.Badges...)
	for _, b := range unlocked {
		out.Badges = append(out.Badges, b.ID)
		out.XP += b.XPBonus
	}

	return out, unlocked
}
