package engine

import (
	"time"

	"github.com/pable/go-inhouse-stats/internal/model"
)

// AggregateByRole groups a player's qualifying participant rows by role and
// counts games and wins per group. A win is a row whose team equals its
// game's winner, never anything else. Groups with zero games are omitted
// entirely so a later win-rate division can never see a zero denominator;
// an empty history yields an empty map, not an error.
func (e *Engine) AggregateByRole(playerID int64, since *time.Time) (map[model.Role]model.RoleStats, error) {
	rows, err := e.playerRows(playerID, since)
	if err != nil {
		return nil, err
	}

	stats := make(map[model.Role]model.RoleStats)
	for _, row := range rows {
		s := stats[row.Role]
		s.Games++
		if row.Won() {
			s.Wins++
		}
		stats[row.Role] = s
	}

	e.log.Debug().
		Int64("player", playerID).
		Int("rows", len(rows)).
		Int("groups", len(stats)).
		Msg("aggregated role stats")
	return stats, nil
}

// AggregateByChampion groups a player's qualifying participant rows by
// champion. Each group also reports the role the champion was most recently
// played in: rows scan in chronological order, so the last row seen wins.
// Same omission rule as AggregateByRole: no zero-game groups.
func (e *Engine) AggregateByChampion(playerID int64, since *time.Time) (map[string]model.ChampionStats, error) {
	rows, err := e.playerRows(playerID, since)
	if err != nil {
		return nil, err
	}

	stats := make(map[string]model.ChampionStats)
	for _, row := range rows {
		s := stats[row.Champion]
		s.Games++
		if row.Won() {
			s.Wins++
		}
		s.Role = row.Role
		stats[row.Champion] = s
	}

	e.log.Debug().
		Int64("player", playerID).
		Int("rows", len(rows)).
		Int("groups", len(stats)).
		Msg("aggregated champion stats")
	return stats, nil
}
