package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-inhouse-stats/internal/model"
	"github.com/pable/go-inhouse-stats/internal/report"
)

var rankCmd = &cobra.Command{
	Use:   "rank <player>",
	Short: "Global rank per role for a player",
	Args:  cobra.ExactArgs(1),
	RunE:  runRank,
}

func runRank(cmd *cobra.Command, args []string) error {
	eng, db, err := openEngine()
	if err != nil {
		return err
	}
	defer db.Close()

	player, err := resolvePlayer(db, args[0])
	if err != nil {
		return err
	}

	ratings, err := db.PlayerRatings(player.ID)
	if err != nil {
		return fmt.Errorf("load ratings: %w", err)
	}
	if len(ratings) == 0 {
		fmt.Println("no rated roles")
		return nil
	}

	ranks := make(map[model.Role]int, len(ratings))
	for _, r := range ratings {
		rank, err := eng.RankOf(player.ID, r.Role)
		if err != nil {
			return fmt.Errorf("rank in %s: %w", r.Role, err)
		}
		ranks[r.Role] = rank
	}
	report.PrintRanks(os.Stdout, ranks)
	return nil
}
