package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/pable/go-inhouse-stats/internal/model"
)

// InsertPlayer inserts a player record. Uses INSERT OR REPLACE for
// idempotency so repeated imports are safe.
func (db *DB) InsertPlayer(p model.Player) error {
	_, err := db.conn.Exec(`INSERT OR REPLACE INTO players(id, name) VALUES (?, ?)`, p.ID, p.Name)
	return err
}

// GetPlayer returns the player with the given id, or nil if none exists.
func (db *DB) GetPlayer(id int64) (*model.Player, error) {
	var p model.Player
	err := db.conn.QueryRow(`SELECT id, name FROM players WHERE id = ?`, id).Scan(&p.ID, &p.Name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetPlayerByName returns the player with the given display name, or nil if
// none exists.
func (db *DB) GetPlayerByName(name string) (*model.Player, error) {
	var p model.Player
	err := db.conn.QueryRow(`SELECT id, name FROM players WHERE name = ?`, name).Scan(&p.ID, &p.Name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// InsertGame inserts a game together with all of its participant rows in one
// transaction, so readers never observe a half-written game. Returns the
// game id (assigned by the store when g.ID is zero).
func (db *DB) InsertGame(g model.Game, parts []model.GameParticipant) (int64, error) {
	tx, err := db.conn.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	gameID := g.ID
	if gameID > 0 {
		_, err = tx.Exec(`INSERT OR REPLACE INTO games(id, date, winner) VALUES (?, ?, ?)`,
			gameID, g.Date.UTC().UnixNano(), string(g.Winner))
		if err != nil {
			return 0, fmt.Errorf("insert game %d: %w", gameID, err)
		}
	} else {
		res, err := tx.Exec(`INSERT INTO games(date, winner) VALUES (?, ?)`,
			g.Date.UTC().UnixNano(), string(g.Winner))
		if err != nil {
			return 0, fmt.Errorf("insert game: %w", err)
		}
		gameID, err = res.LastInsertId()
		if err != nil {
			return 0, err
		}
	}

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO participants(game_id, player_id, role, champion, team, mmr)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for _, p := range parts {
		_, err = stmt.Exec(gameID, p.PlayerID, string(p.Role), p.Champion, string(p.Team), p.MMR)
		if err != nil {
			return 0, fmt.Errorf("insert participant %d in game %d: %w", p.PlayerID, gameID, err)
		}
	}
	return gameID, tx.Commit()
}

// PlayerParticipants returns a player's participant rows joined with their
// game's date and winner, ordered chronologically ascending. When since is
// non-nil only games strictly after it are returned.
func (db *DB) PlayerParticipants(playerID int64, since *time.Time) ([]model.ParticipantRow, error) {
	query := `
		SELECT g.id, g.date, g.winner, p.role, p.champion, p.team, p.mmr
		FROM participants p
		JOIN games g ON g.id = p.game_id
		WHERE p.player_id = ?`
	args := []any{playerID}
	if since != nil {
		query += ` AND g.date > ?`
		args = append(args, since.UTC().UnixNano())
	}
	query += ` ORDER BY g.date ASC, g.id ASC`

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanParticipantRows(rows)
}

// RecentGames returns a player's most recent participant rows, newest first,
// truncated to limit entries.
func (db *DB) RecentGames(playerID int64, limit int) ([]model.ParticipantRow, error) {
	rows, err := db.conn.Query(`
		SELECT g.id, g.date, g.winner, p.role, p.champion, p.team, p.mmr
		FROM participants p
		JOIN games g ON g.id = p.game_id
		WHERE p.player_id = ?
		ORDER BY g.date DESC, g.id DESC
		LIMIT ?`, playerID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanParticipantRows(rows)
}

func scanParticipantRows(rows *sql.Rows) ([]model.ParticipantRow, error) {
	var out []model.ParticipantRow
	for rows.Next() {
		var r model.ParticipantRow
		var dateNanos int64
		var winner, role, team string
		if err := rows.Scan(&r.GameID, &dateNanos, &winner, &role, &r.Champion, &team, &r.MMR); err != nil {
			return nil, err
		}
		r.Date = time.Unix(0, dateNanos).UTC()
		r.Winner = model.Team(winner)
		r.Role = model.Role(role)
		r.Team = model.Team(team)
		out = append(out, r)
	}
	return out, rows.Err()
}

// UpsertRating sets the current rating for a (player, role) pair, creating
// the row lazily on first write.
func (db *DB) UpsertRating(r model.PlayerRating) error {
	_, err := db.conn.Exec(`INSERT OR REPLACE INTO ratings(player_id, role, mmr) VALUES (?, ?, ?)`,
		r.PlayerID, string(r.Role), r.MMR)
	return err
}

// PlayerRatings returns all current rating rows for a player, one per role
// ever played, in role name order.
func (db *DB) PlayerRatings(playerID int64) ([]model.PlayerRating, error) {
	rows, err := db.conn.Query(`
		SELECT player_id, role, mmr FROM ratings WHERE player_id = ? ORDER BY role`, playerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.PlayerRating
	for rows.Next() {
		var r model.PlayerRating
		var role string
		if err := rows.Scan(&r.PlayerID, &role, &r.MMR); err != nil {
			return nil, err
		}
		r.Role = model.Role(role)
		out = append(out, r)
	}
	return out, rows.Err()
}

// PlayerRating returns the current rating row for a (player, role) pair, or
// nil if the player has never played the role.
func (db *DB) PlayerRating(playerID int64, role model.Role) (*model.PlayerRating, error) {
	var r model.PlayerRating
	var roleStr string
	err := db.conn.QueryRow(`
		SELECT player_id, role, mmr FROM ratings WHERE player_id = ? AND role = ?`,
		playerID, string(role)).Scan(&r.PlayerID, &roleStr, &r.MMR)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	r.Role = model.Role(roleStr)
	return &r, nil
}

// RoleRatings returns every rating row for a role joined with the player's
// display name. Ordering is left to the caller.
func (db *DB) RoleRatings(role model.Role) ([]model.RoleRating, error) {
	rows, err := db.conn.Query(`
		SELECT r.player_id, pl.name, r.mmr
		FROM ratings r
		JOIN players pl ON pl.id = r.player_id
		WHERE r.role = ?`, string(role))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.RoleRating
	for rows.Next() {
		var r model.RoleRating
		if err := rows.Scan(&r.PlayerID, &r.Name, &r.MMR); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// ListGames returns stored games, newest first, truncated to limit entries.
func (db *DB) ListGames(limit int) ([]model.Game, error) {
	rows, err := db.conn.Query(`
		SELECT id, date, winner FROM games ORDER BY date DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Game
	for rows.Next() {
		var g model.Game
		var dateNanos int64
		var winner string
		if err := rows.Scan(&g.ID, &dateNanos, &winner); err != nil {
			return nil, err
		}
		g.Date = time.Unix(0, dateNanos).UTC()
		g.Winner = model.Team(winner)
		out = append(out, g)
	}
	return out, rows.Err()
}
