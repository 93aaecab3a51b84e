package engine

import (
	"fmt"
	"time"

	"github.com/pable/go-inhouse-stats/internal/model"
)

// RatingHistory returns, per role, the chronological (timestamp, rating)
// series of a player's qualifying games, each point carrying the rating
// snapshot taken when that game was recorded. Every role the player holds a
// current rating in gets one synthetic final point (now, current rating), so
// the series always ends at now even when the last game is older than the
// window, and a role with a rating but no qualifying games yields a
// single-point series. Roles the player has truly never played are absent.
func (e *Engine) RatingHistory(playerID int64, since *time.Time) (map[model.Role][]model.RatingPoint, error) {
	rows, err := e.playerRows(playerID, since)
	if err != nil {
		return nil, err
	}

	history := make(map[model.Role][]model.RatingPoint)
	for _, row := range rows {
		history[row.Role] = append(history[row.Role], model.RatingPoint{At: row.Date, MMR: row.MMR})
	}

	ratings, err := e.store.PlayerRatings(playerID)
	if err != nil {
		return nil, fmt.Errorf("load ratings for player %d: %w", playerID, err)
	}
	now := e.now()
	for _, r := range ratings {
		history[r.Role] = append(history[r.Role], model.RatingPoint{At: now, MMR: r.MMR})
	}

	e.log.Debug().
		Int64("player", playerID).
		Int("roles", len(history)).
		Msg("built rating history")
	return history, nil
}
