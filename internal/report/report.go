// Package report renders engine output into text tables. The engine itself
// never formats anything; printers here only consume its plain data.
package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/pable/go-inhouse-stats/internal/model"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// titleRole capitalizes a role for display.
func titleRole(r model.Role) string {
	s := string(r)
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

// PrintRoleStats prints the per-role MMR/games/winrate table, sorted by
// games descending.
func PrintRoleStats(w io.Writer, ratings []model.PlayerRating, stats map[model.Role]model.RoleStats) {
	mmr := make(map[model.Role]float64, len(ratings))
	for _, r := range ratings {
		mmr[r.Role] = r.MMR
	}

	type row struct {
		role model.Role
		s    model.RoleStats
	}
	var out []row
	for _, role := range model.Roles() {
		if s, ok := stats[role]; ok {
			out = append(out, row{role, s})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].s.Games > out[j].s.Games })

	table := newTable(w)
	table.Header("ROLE", "MMR", "GAMES", "WINRATE")
	for _, r := range out {
		mmrStr := "—"
		if v, ok := mmr[r.role]; ok {
			mmrStr = fmt.Sprintf("%.2f", v)
		}
		table.Append(
			titleRole(r.role),
			mmrStr,
			strconv.Itoa(r.s.Games),
			fmt.Sprintf("%.2f%%", r.s.WinRate()),
		)
	}
	table.Render()
}

// PrintChampionStats prints the per-champion table, sorted by games
// descending then champion name ascending.
func PrintChampionStats(w io.Writer, stats map[string]model.ChampionStats) {
	type row struct {
		champion string
		s        model.ChampionStats
	}
	out := make([]row, 0, len(stats))
	for champion, s := range stats {
		out = append(out, row{champion, s})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].s.Games != out[j].s.Games {
			return out[i].s.Games > out[j].s.Games
		}
		return out[i].champion < out[j].champion
	})

	table := newTable(w)
	table.Header("CHAMPION", "ROLE", "GAMES", "WINRATE")
	for _, r := range out {
		table.Append(
			r.champion,
			titleRole(r.s.Role),
			strconv.Itoa(r.s.Games),
			fmt.Sprintf("%.2f%%", r.s.WinRate()),
		)
	}
	table.Render()
}

// PrintRanks prints a player's global rank per role as ordinals, best rank
// first.
func PrintRanks(w io.Writer, ranks map[model.Role]int) {
	type row struct {
		role model.Role
		rank int
	}
	out := make([]row, 0, len(ranks))
	for role, rank := range ranks {
		out = append(out, row{role, rank})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].rank != out[j].rank {
			return out[i].rank < out[j].rank
		}
		return out[i].role < out[j].role
	})

	table := newTable(w)
	table.Header("ROLE", "RANK")
	for _, r := range out {
		table.Append(titleRole(r.role), humanize.Ordinal(r.rank))
	}
	table.Render()
}

// PrintLeaderboard prints a role leaderboard as returned by the engine,
// already ordered by rank.
func PrintLeaderboard(w io.Writer, entries []model.LeaderboardEntry) {
	table := newTable(w)
	table.Header("RANK", "NAME", "MMR", "GAMES")
	for _, e := range entries {
		table.Append(
			humanize.Ordinal(e.Rank),
			e.Name,
			fmt.Sprintf("%.2f", e.MMR),
			strconv.Itoa(e.Games),
		)
	}
	table.Render()
}

// PrintGames prints a player's match history rows.
func PrintGames(w io.Writer, rows []model.ParticipantRow) {
	table := newTable(w)
	table.Header("GAME", "DATE", "ROLE", "CHAMPION", "RESULT")
	for _, r := range rows {
		result := "Loss"
		if r.Won() {
			result = "Win"
		}
		table.Append(
			strconv.FormatInt(r.GameID, 10),
			r.Date.Format("2006-01-02"),
			titleRole(r.Role),
			r.Champion,
			result,
		)
	}
	table.Render()
}

// PrintGamesList prints stored games for inspection.
func PrintGamesList(w io.Writer, games []model.Game) {
	table := newTable(w)
	table.Header("GAME", "DATE", "WINNER")
	for _, g := range games {
		table.Append(
			strconv.FormatInt(g.ID, 10),
			g.Date.Format("2006-01-02 15:04"),
			string(g.Winner),
		)
	}
	table.Render()
}
