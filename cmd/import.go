package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pable/go-inhouse-stats/internal/logger"
	"github.com/pable/go-inhouse-stats/internal/model"
)

// dumpFile is the import format: a structured export of players, games and
// current ratings produced by the recording bot.
type dumpFile struct {
	Players []dumpPlayer `json:"players"`
	Games   []dumpGame   `json:"games"`
	Ratings []dumpRating `json:"ratings"`
}

type dumpPlayer struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type dumpGame struct {
	ID           int64             `json:"id"`
	Date         time.Time         `json:"date"`
	Winner       model.Team        `json:"winner"`
	Participants []dumpParticipant `json:"participants"`
}

type dumpParticipant struct {
	PlayerID int64      `json:"player_id"`
	Role     model.Role `json:"role"`
	Champion string     `json:"champion"`
	Team     model.Team `json:"team"`
	MMR      float64    `json:"mmr"`
}

type dumpRating struct {
	PlayerID int64      `json:"player_id"`
	Role     model.Role `json:"role"`
	MMR      float64    `json:"mmr"`
}

var importCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Import a structured dump of players, games and ratings",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read dump: %w", err)
	}
	var dump dumpFile
	if err := json.Unmarshal(data, &dump); err != nil {
		return fmt.Errorf("parse dump: %w", err)
	}

	// Reject malformed records before touching the store.
	for _, g := range dump.Games {
		for _, p := range g.Participants {
			if !p.Role.Valid() {
				return fmt.Errorf("game %d: player %d has unknown role %q", g.ID, p.PlayerID, p.Role)
			}
		}
	}
	for _, r := range dump.Ratings {
		if !r.Role.Valid() {
			return fmt.Errorf("rating for player %d has unknown role %q", r.PlayerID, r.Role)
		}
	}

	_, db, err := openEngine()
	if err != nil {
		return err
	}
	defer db.Close()
	log := logger.New(verbose)

	for _, p := range dump.Players {
		if err := db.InsertPlayer(model.Player{ID: p.ID, Name: p.Name}); err != nil {
			return fmt.Errorf("insert player %d: %w", p.ID, err)
		}
	}
	for _, g := range dump.Games {
		parts := make([]model.GameParticipant, 0, len(g.Participants))
		for _, p := range g.Participants {
			parts = append(parts, model.GameParticipant{
				GameID:   g.ID,
				PlayerID: p.PlayerID,
				Role:     p.Role,
				Champion: p.Champion,
				Team:     p.Team,
				MMR:      p.MMR,
			})
		}
		if _, err := db.InsertGame(model.Game{ID: g.ID, Date: g.Date, Winner: g.Winner}, parts); err != nil {
			return fmt.Errorf("insert game %d: %w", g.ID, err)
		}
	}
	for _, r := range dump.Ratings {
		err := db.UpsertRating(model.PlayerRating{PlayerID: r.PlayerID, Role: r.Role, MMR: r.MMR})
		if err != nil {
			return fmt.Errorf("upsert rating for player %d: %w", r.PlayerID, err)
		}
	}

	log.Debug().
		Int("players", len(dump.Players)).
		Int("games", len(dump.Games)).
		Int("ratings", len(dump.Ratings)).
		Msg("import complete")
	fmt.Printf("imported %d players, %d games, %d ratings\n",
		len(dump.Players), len(dump.Games), len(dump.Ratings))
	return nil
}
