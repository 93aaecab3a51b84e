package model

import "time"

// Role is one of the five fixed positions a participant occupies in a game.
type Role string

const (
	RoleTop     Role = "top"
	RoleJungle  Role = "jungle"
	RoleMid     Role = "mid"
	RoleBot     Role = "bot"
	RoleSupport Role = "support"
)

// Roles returns the fixed role set in display order.
func Roles() []Role {
	return []Role{RoleTop, RoleJungle, RoleMid, RoleBot, RoleSupport}
}

// Valid reports whether r is a member of the fixed role set.
func (r Role) Valid() bool {
	switch r {
	case RoleTop, RoleJungle, RoleMid, RoleBot, RoleSupport:
		return true
	}
	return false
}

// Team identifies one of the two sides of a game.
type Team string

const (
	TeamBlue Team = "blue"
	TeamRed  Team = "red"
)

// Game is an immutable record of one completed match. Never mutated or
// deleted once written.
type Game struct {
	ID     int64
	Date   time.Time
	Winner Team
}

// GameParticipant is one player's row in one game. MMR is the player's
// rating at the time the game was recorded, not the current rating.
type GameParticipant struct {
	GameID   int64
	PlayerID int64
	Role     Role
	Champion string
	Team     Team
	MMR      float64
}

// PlayerRating is a player's current rating in one role. It is maintained by
// the external rating-update subsystem and read-only here.
type PlayerRating struct {
	PlayerID int64
	Role     Role
	MMR      float64
}

// Player is a registered player identity.
type Player struct {
	ID   int64
	Name string
}

// ParticipantRow is the joined read shape handed to the engine: one
// participant row together with its game's date and winner.
type ParticipantRow struct {
	GameID   int64
	Date     time.Time
	Winner   Team
	Role     Role
	Champion string
	Team     Team
	MMR      float64
}

// Won reports whether the row's player was on the winning team.
func (r ParticipantRow) Won() bool { return r.Team == r.Winner }

// RoleRating is one rating row within a role, joined with the player's name.
type RoleRating struct {
	PlayerID int64
	Name     string
	MMR      float64
}

// RoleStats is the aggregate for one role group.
type RoleStats struct {
	Games int
	Wins  int
}

// WinRate returns wins as a percentage of games played. Groups are only ever
// built with at least one game, so the division is safe.
func (s RoleStats) WinRate() float64 {
	return float64(s.Wins) / float64(s.Games) * 100
}

// ChampionStats is the aggregate for one champion group. Role is the role
// the champion was most recently played in.
type ChampionStats struct {
	Role  Role
	Games int
	Wins  int
}

// WinRate returns wins as a percentage of games played.
func (s ChampionStats) WinRate() float64 {
	return float64(s.Wins) / float64(s.Games) * 100
}

// LeaderboardEntry is one row of a role leaderboard.
type LeaderboardEntry struct {
	Rank     int
	PlayerID int64
	Name     string
	MMR      float64
	Games    int
}

// RatingPoint is one sample of a rating time series.
type RatingPoint struct {
	At  time.Time
	MMR float64
}
