// Package engine implements the read-side aggregation, ranking and
// rating-history queries over the record store. Every query is a pure
// function of the store contents plus its explicit arguments; the engine
// holds no mutable state between calls and performs no locking, so queries
// may run concurrently.
package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/pable/go-inhouse-stats/internal/model"
	"github.com/pable/go-inhouse-stats/internal/storage"
)

// Sentinel errors forming the query error taxonomy. Callers distinguish them
// with errors.Is. Empty results are empty maps or slices, never errors.
var (
	// ErrPlayerNotFound means the referenced player has no record at all.
	ErrPlayerNotFound = errors.New("player not found")
	// ErrNoRating means the player exists but has never played the
	// requested role.
	ErrNoRating = errors.New("no rating for role")
	// ErrInvalidArgument means a malformed input reached the engine, such
	// as a role outside the fixed set or a negative limit.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Engine answers analytical queries against the record store. Construct one
// with New and share it freely; it is safe for concurrent use.
type Engine struct {
	store *storage.DB
	log   zerolog.Logger

	// now stamps the synthetic final point of rating histories. Overridden
	// in tests.
	now func() time.Time
}

// New returns an engine reading from the given store.
func New(store *storage.DB, log zerolog.Logger) *Engine {
	return &Engine{store: store, log: log, now: time.Now}
}

// playerRows verifies the player exists and returns their qualifying
// participant rows, chronologically ascending. A nil since means no bound;
// otherwise only games strictly after since qualify.
func (e *Engine) playerRows(playerID int64, since *time.Time) ([]model.ParticipantRow, error) {
	p, err := e.store.GetPlayer(playerID)
	if err != nil {
		return nil, fmt.Errorf("look up player %d: %w", playerID, err)
	}
	if p == nil {
		return nil, fmt.Errorf("player %d: %w", playerID, ErrPlayerNotFound)
	}
	rows, err := e.store.PlayerParticipants(playerID, since)
	if err != nil {
		return nil, fmt.Errorf("load participants for player %d: %w", playerID, err)
	}
	return rows, nil
}
