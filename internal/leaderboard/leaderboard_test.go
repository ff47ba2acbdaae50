package leaderboard

import (
	"testing"

	"github.com/abhisek/eduvoyager/internal/learner"
)

func testProfile() learner.Profile {
	return learner.Profile{FirstName: "Asha", LastName: "Kumar", Designation: "Student"}
}

func TestRankOrdersByXPDescending(t *testing.T) {
	board := Mock{}.Rank(testProfile(), learner.Stats{XP: 500})

	if len(board) != 6 {
		t.Fatalf("board size = %d, want 6", len(board))
	}
	for i := 1; i < len(board); i++ {
		if board[i].XP > board[i-1].XP {
			t.Fatalf("board not sorted at index %d: %d > %d", i, board[i].XP, board[i-1].XP)
		}
		if board[i].Rank != board[i-1].Rank+1 {
			t.Fatalf("ranks not sequential at index %d", i)
		}
	}
	if board[0].Rank != 1 {
		t.Errorf("top rank = %d, want 1", board[0].Rank)
	}
}

func TestRankMarksUserRow(t *testing.T) {
	board := Mock{}.Rank(testProfile(), learner.Stats{XP: 500})

	var users int
	for _, e := range board {
		if e.IsUser {
			users++
			if e.Name != "Asha K." {
				t.Errorf("user name = %q, want Asha K.", e.Name)
			}
			if e.XP != 500 {
				t.Errorf("user xp = %d, want 500", e.XP)
			}
		}
	}
	if users != 1 {
		t.Fatalf("user rows = %d, want exactly 1", users)
	}
}

func TestRankFloorsNegativePeersAtZero(t *testing.T) {
	// With 0 XP the two negative-offset peers would go below zero.
	board := Mock{}.Rank(testProfile(), learner.Stats{XP: 0})

	for _, e := range board {
		if e.XP < 0 {
			t.Fatalf("entry %q has negative XP %d", e.Name, e.XP)
		}
	}
}

func TestRankUserPositionMovesWithXP(t *testing.T) {
	userRank := func(xp int) int {
		board := Mock{}.Rank(testProfile(), learner.Stats{XP: xp})
		for _, e := range board {
			if e.IsUser {
				return e.Rank
			}
		}
		t.Fatal("user row missing")
		return 0
	}

	// Offsets are relative, so with any positive XP the user sits below
	// the three positive-offset peers and above the negative ones.
	if r := userRank(1000); r != 4 {
		t.Errorf("rank at 1000 XP = %d, want 4", r)
	}
	// At zero XP the floored peers tie with the user; the stable sort
	// keeps the user, appended last, at the bottom.
	if r := userRank(0); r != 6 {
		t.Errorf("rank at 0 XP = %d, want 6", r)
	}
}
