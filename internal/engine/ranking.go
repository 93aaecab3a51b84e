package engine

import (
	"fmt"
	"sort"

	"github.com/pable/go-inhouse-stats/internal/model"
)

// DefaultLeaderboardSize is used when Leaderboard is called with limit 0.
const DefaultLeaderboardSize = 20

// ratingBefore is the single ordering rule for leaderboards and ranks:
// higher MMR first, exact ties broken by ascending player id so repeated
// calls always produce the same order.
func ratingBefore(a, b model.RoleRating) bool {
	if a.MMR != b.MMR {
		return a.MMR > b.MMR
	}
	return a.PlayerID < b.PlayerID
}

// Leaderboard returns the top players of a role by current rating, ranks
// assigned 1..N by position. Each entry also carries the player's lifetime
// game count in the role, computed with the same counting rule as
// AggregateByRole. A role with no rated players yields an empty slice.
func (e *Engine) Leaderboard(role model.Role, limit int) ([]model.LeaderboardEntry, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("role %q: %w", role, ErrInvalidArgument)
	}
	if limit < 0 {
		return nil, fmt.Errorf("limit %d: %w", limit, ErrInvalidArgument)
	}
	if limit == 0 {
		limit = DefaultLeaderboardSize
	}

	ratings, err := e.store.RoleRatings(role)
	if err != nil {
		return nil, fmt.Errorf("load %s ratings: %w", role, err)
	}
	sort.Slice(ratings, func(i, j int) bool { return ratingBefore(ratings[i], ratings[j]) })
	if len(ratings) > limit {
		ratings = ratings[:limit]
	}

	entries := make([]model.LeaderboardEntry, 0, len(ratings))
	for i, r := range ratings {
		stats, err := e.AggregateByRole(r.PlayerID, nil)
		if err != nil {
			return nil, fmt.Errorf("count games for player %d: %w", r.PlayerID, err)
		}
		entries = append(entries, model.LeaderboardEntry{
			Rank:     i + 1,
			PlayerID: r.PlayerID,
			Name:     r.Name,
			MMR:      r.MMR,
			Games:    stats[role].Games,
		})
	}

	e.log.Debug().
		Str("role", string(role)).
		Int("entries", len(entries)).
		Msg("built leaderboard")
	return entries, nil
}

// RankOf returns the 1-based position the player occupies in the full
// descending-rating ordering for the role, consistent with Leaderboard's
// ordering even when the player is outside the top-N window. A player with
// no rating row in the role gets ErrNoRating, not a fabricated rank.
func (e *Engine) RankOf(playerID int64, role model.Role) (int, error) {
	if !role.Valid() {
		return 0, fmt.Errorf("role %q: %w", role, ErrInvalidArgument)
	}
	p, err := e.store.GetPlayer(playerID)
	if err != nil {
		return 0, fmt.Errorf("look up player %d: %w", playerID, err)
	}
	if p == nil {
		return 0, fmt.Errorf("player %d: %w", playerID, ErrPlayerNotFound)
	}

	ratings, err := e.store.RoleRatings(role)
	if err != nil {
		return 0, fmt.Errorf("load %s ratings: %w", role, err)
	}

	var mine *model.RoleRating
	for i := range ratings {
		if ratings[i].PlayerID == playerID {
			mine = &ratings[i]
			break
		}
	}
	if mine == nil {
		return 0, fmt.Errorf("player %d in role %s: %w", playerID, role, ErrNoRating)
	}

	rank := 1
	for i := range ratings {
		if ratings[i].PlayerID == playerID {
			continue
		}
		if ratingBefore(ratings[i], *mine) {
			rank++
		}
	}
	return rank, nil
}
