package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pable/go-inhouse-stats/internal/engine"
	"github.com/pable/go-inhouse-stats/internal/logger"
	"github.com/pable/go-inhouse-stats/internal/model"
	"github.com/pable/go-inhouse-stats/internal/storage"
)

// openEngine opens the store and builds an engine over it. Callers must
// close the returned store.
func openEngine() (*engine.Engine, *storage.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open db: %w", err)
	}
	log := logger.New(verbose)
	log.Debug().Str("path", dbPath).Msg("opened record store")
	return engine.New(db, log), db, nil
}

// resolvePlayer accepts a numeric player id or an exact display name.
func resolvePlayer(db *storage.DB, arg string) (*model.Player, error) {
	if id, err := strconv.ParseInt(arg, 10, 64); err == nil {
		p, err := db.GetPlayer(id)
		if err != nil {
			return nil, err
		}
		if p != nil {
			return p, nil
		}
	}
	p, err := db.GetPlayerByName(arg)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("player %q not found", arg)
	}
	return p, nil
}

// parseSince parses an optional absolute RFC3339 lower bound. Free-text date
// expressions are not supported here.
func parseSince(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, fmt.Errorf("invalid --since %q (want RFC3339, e.g. 2026-08-01T00:00:00Z): %w", s, err)
	}
	return &t, nil
}
