// Package leaderboard ranks the learner against a peer cohort. There is no
// live backend yet; peers are synthesized as fixed offsets from the
// learner's own XP so the board always feels contested regardless of
// progress. The Provider contract is what a real service would implement.
package leaderboard

import (
	"sort"

	"github.com/abhisek/eduvoyager/internal/learner"
)

// Entry is one row on the board.
type Entry struct {
	Rank   int    `json:"rank"`
	Name   string `json:"name"`
	Title  string `json:"title"`
	XP     int    `json:"xp"`
	IsUser bool   `json:"isUser"`
}

// Provider produces a ranked board for a learner snapshot.
type Provider interface {
	Rank(profile learner.Profile, stats learner.Stats) []Entry
}

// peer is a synthetic cohort member at a fixed XP offset from the learner.
type peer struct {
	name   string
	title  string
	offset int
}

var cohort = []peer{
	{"Sarah J.", "Data Scientist", 450},
	{"Mike T.", "Full-Stack Developer", 210},
	{"Davide R.", "Cloud Engineer", 50},
	{"Elena V.", "UX Designer", -120},
	{"Raj P.", "DevOps Intern", -300},
}

// Mock is the offset-based Provider used until a real service exists.
type Mock struct{}

// Rank builds the board: each cohort member sits at learner XP plus its
// offset, floored at zero, then everyone is sorted by XP descending and
// assigned dense ranks from 1.
func (Mock) Rank(profile learner.Profile, stats learner.Stats) []Entry {
	entries := make([]Entry, 0, len(cohort)+1)
	for _, p := range cohort {
		xp := stats.XP + p.offset
		if xp < 0 {
			xp = 0
		}
		entries = append(entries, Entry{Name: p.name, Title: p.title, XP: xp})
	}
	entries = append(entries, Entry{
		Name:   profile.DisplayName(),
		Title:  profile.Designation,
		XP:     stats.XP,
		IsUser: true,
	})

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].XP > entries[j].XP
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}
