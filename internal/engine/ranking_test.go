package engine

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pable/go-inhouse-stats/internal/model"
	"github.com/pable/go-inhouse-stats/internal/storage"
)

// seedJungle seeds three rated jungle players: alice and bob tied on 1500,
// carol below on 1400. Alice has two jungle games, carol one; bob's rating
// was seeded manually and he has none.
func seedJungle(t *testing.T, db *storage.DB) {
	t.Helper()
	mustPlayer(t, db, 1, "alice")
	mustPlayer(t, db, 2, "bob")
	mustPlayer(t, db, 3, "carol")
	mustRating(t, db, 1, model.RoleJungle, 1500)
	mustRating(t, db, 2, model.RoleJungle, 1500)
	mustRating(t, db, 3, model.RoleJungle, 1400)

	mustGame(t, db,
		model.Game{ID: 1, Date: day(0), Winner: model.TeamBlue},
		model.GameParticipant{GameID: 1, PlayerID: 1, Role: model.RoleJungle, Champion: "Elise", Team: model.TeamBlue, MMR: 1490},
		model.GameParticipant{GameID: 1, PlayerID: 3, Role: model.RoleJungle, Champion: "Vi", Team: model.TeamRed, MMR: 1410},
	)
	mustGame(t, db,
		model.Game{ID: 2, Date: day(1), Winner: model.TeamRed},
		model.GameParticipant{GameID: 2, PlayerID: 1, Role: model.RoleJungle, Champion: "Elise", Team: model.TeamBlue, MMR: 1500},
	)
}

func TestLeaderboard(t *testing.T) {
	eng, db := newTestEngine(t)
	seedJungle(t, db)

	got, err := eng.Leaderboard(model.RoleJungle, 0)
	if err != nil {
		t.Fatalf("Leaderboard: %v", err)
	}

	// Ties break by ascending player id, so alice precedes bob.
	want := []model.LeaderboardEntry{
		{Rank: 1, PlayerID: 1, Name: "alice", MMR: 1500, Games: 2},
		{Rank: 2, PlayerID: 2, Name: "bob", MMR: 1500, Games: 0},
		{Rank: 3, PlayerID: 3, Name: "carol", MMR: 1400, Games: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Leaderboard(jungle, 0): -want, +got:\n%s", diff)
	}

	// Repeated calls over unchanged data must produce identical ordering.
	again, err := eng.Leaderboard(model.RoleJungle, 0)
	if err != nil {
		t.Fatalf("second Leaderboard: %v", err)
	}
	if diff := cmp.Diff(got, again); diff != "" {
		t.Errorf("leaderboard not deterministic: -first, +second:\n%s", diff)
	}
}

func TestLeaderboardTruncation(t *testing.T) {
	eng, db := newTestEngine(t)
	seedJungle(t, db)

	got, err := eng.Leaderboard(model.RoleJungle, 2)
	if err != nil {
		t.Fatalf("Leaderboard: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries with limit 2, got %d", len(got))
	}
	if got[0].PlayerID != 1 || got[1].PlayerID != 2 {
		t.Errorf("truncation changed ordering: got %d, %d", got[0].PlayerID, got[1].PlayerID)
	}
}

func TestLeaderboardEmptyRole(t *testing.T) {
	eng, db := newTestEngine(t)
	seedJungle(t, db)

	got, err := eng.Leaderboard(model.RoleTop, 0)
	if err != nil {
		t.Fatalf("Leaderboard on unrated role: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty leaderboard for a role with no ratings, got %v", got)
	}
}

func TestLeaderboardInvalidArguments(t *testing.T) {
	eng, db := newTestEngine(t)
	seedJungle(t, db)

	if _, err := eng.Leaderboard("feeder", 0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("bad role: expected ErrInvalidArgument, got %v", err)
	}
	if _, err := eng.Leaderboard(model.RoleJungle, -1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("negative limit: expected ErrInvalidArgument, got %v", err)
	}
}

func TestRankOfMatchesLeaderboardOrder(t *testing.T) {
	eng, db := newTestEngine(t)
	seedJungle(t, db)

	// Ranking every rated player must reproduce the full ordering with no
	// duplicates and no gaps.
	wantRanks := map[int64]int{1: 1, 2: 2, 3: 3}
	seen := make(map[int]int64)
	for playerID, want := range wantRanks {
		rank, err := eng.RankOf(playerID, model.RoleJungle)
		if err != nil {
			t.Fatalf("RankOf(%d): %v", playerID, err)
		}
		if rank != want {
			t.Errorf("RankOf(%d): want %d, got %d", playerID, want, rank)
		}
		if other, dup := seen[rank]; dup {
			t.Errorf("rank %d assigned to both %d and %d", rank, other, playerID)
		}
		seen[rank] = playerID
	}
	for rank := 1; rank <= len(wantRanks); rank++ {
		if _, ok := seen[rank]; !ok {
			t.Errorf("rank %d missing: ordering has a gap", rank)
		}
	}
}

func TestRankOfOutsideTopWindow(t *testing.T) {
	eng, db := newTestEngine(t)
	seedJungle(t, db)

	// carol is outside a top-2 leaderboard window but still gets her true
	// position in the full ordering.
	rank, err := eng.RankOf(3, model.RoleJungle)
	if err != nil {
		t.Fatalf("RankOf: %v", err)
	}
	if rank != 3 {
		t.Errorf("RankOf(carol): want 3, got %d", rank)
	}
}

func TestRankOfErrors(t *testing.T) {
	eng, db := newTestEngine(t)
	seedJungle(t, db)
	mustPlayer(t, db, 4, "dave")

	if _, err := eng.RankOf(999, model.RoleJungle); !errors.Is(err, ErrPlayerNotFound) {
		t.Errorf("unknown player: expected ErrPlayerNotFound, got %v", err)
	}
	if _, err := eng.RankOf(4, model.RoleJungle); !errors.Is(err, ErrNoRating) {
		t.Errorf("unrated player: expected ErrNoRating, got %v", err)
	}
	if _, err := eng.RankOf(1, "feeder"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("bad role: expected ErrInvalidArgument, got %v", err)
	}
}
