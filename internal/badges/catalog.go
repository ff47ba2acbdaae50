package badges

import "github.com/abhisek/eduvoyager/internal/learner"

// Catalog is the full badge set, in award order.
var Catalog = []Badge{
	{
		ID:          "first_step",
		Name:        "First Step",
		Description: "Complete your first learning module.",
		Icon:        IconFootprints,
		XPBonus:     50,
		Condition:   func(s learner.Stats) bool { return s.CompletedModules >= 1 },
	},
	{
		ID:          "streak_week",
		Name:        "On Fire",
		Description: "Maintain a 3-day learning streak.",
		Icon:        IconFlame,
		XPBonus:     100,
		Condition:   func(s learner.Stats) bool { return s.Streak >= 3 },
	},
	{
		ID:          "xp_hunter",
		Name:        "XP Hunter",
		Description: "Earn 500 total XP.",
		Icon:        IconTarget,
		XPBonus:     200,
		Condition:   func(s learner.Stats) bool { return s.XP >= 500 },
	},
	{
		ID:          "scholar",
		Name:        "The Scholar",
		Description: "Reach NSQF Level 5.",
		Icon:        IconGradCap,
		XPBonus:     300,
		Condition:   func(s learner.Stats) bool { return s.CurrentNSQFLevel >= 5 },
	},
	{
		ID:          "dedicated",
		Name:        "Dedicated",
		Description: "Complete 5 modules.",
		Icon:        IconBook,
		XPBonus:     150,
		Condition:   func(s learner.Stats) bool { return s.CompletedModules >= 5 },
	},
	{
		ID:          "elite",
		Name:        "Elite Learner",
		Description: "Reach 1000 XP.",
		Icon:        IconCrown,
		XPBonus:     500,
		Condition:   func(s learner.Stats) bool { return s.XP >= 1000 },
	},
}

// Lookup returns the catalog badge with the given id, or nil.
func Lookup(id string) *Badge {
	for i := range Catalog {
		if Catalog[i].ID == id {
			return &Catalog[i]
		}
	}
	return nil
}
