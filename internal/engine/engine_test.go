package engine

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/pable/go-inhouse-stats/internal/model"
	"github.com/pable/go-inhouse-stats/internal/storage"
)

func newTestEngine(t *testing.T) (*Engine, *storage.DB) {
	t.Helper()
	db, err := storage.Open(":memory:")
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return New(db, zerolog.Nop()), db
}

func mustPlayer(t *testing.T, db *storage.DB, id int64, name string) {
	t.Helper()
	if err := db.InsertPlayer(model.Player{ID: id, Name: name}); err != nil {
		t.Fatalf("insert player %d: %v", id, err)
	}
}

func mustGame(t *testing.T, db *storage.DB, g model.Game, parts ...model.GameParticipant) {
	t.Helper()
	if _, err := db.InsertGame(g, parts); err != nil {
		t.Fatalf("insert game %d: %v", g.ID, err)
	}
}

func mustRating(t *testing.T, db *storage.DB, playerID int64, role model.Role, mmr float64) {
	t.Helper()
	if err := db.UpsertRating(model.PlayerRating{PlayerID: playerID, Role: role, MMR: mmr}); err != nil {
		t.Fatalf("upsert rating for player %d: %v", playerID, err)
	}
}

// day returns noon UTC, n days after a fixed base date.
func day(n int) time.Time {
	return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

const alice int64 = 1

// seedAlice records five games for one player: three on support (win, loss,
// win) and two on mid (loss, loss). Alice is always on blue side.
func seedAlice(t *testing.T, db *storage.DB) {
	t.Helper()
	mustPlayer(t, db, alice, "alice")

	games := []struct {
		id       int64
		date     time.Time
		winner   model.Team
		role     model.Role
		champion string
		mmr      float64
	}{
		{1, day(0), model.TeamBlue, model.RoleSupport, "Leona", 25.0},
		{2, day(1), model.TeamRed, model.RoleSupport, "Thresh", 25.8},
		{3, day(2), model.TeamBlue, model.RoleSupport, "Leona", 25.4},
		{4, day(3), model.TeamRed, model.RoleMid, "Orianna", 24.6},
		{5, day(4), model.TeamRed, model.RoleMid, "Orianna", 24.1},
	}
	for _, g := range games {
		mustGame(t, db,
			model.Game{ID: g.id, Date: g.date, Winner: g.winner},
			model.GameParticipant{
				GameID:   g.id,
				PlayerID: alice,
				Role:     g.role,
				Champion: g.champion,
				Team:     model.TeamBlue,
				MMR:      g.mmr,
			})
	}
	mustRating(t, db, alice, model.RoleSupport, 26.1)
	mustRating(t, db, alice, model.RoleMid, 23.7)
}
