package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-inhouse-stats/internal/report"
)

var statsSince string

var statsCmd = &cobra.Command{
	Use:   "stats <player>",
	Short: "MMR, games total and winrate per role for a player",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().StringVar(&statsSince, "since", "", "only count games after this RFC3339 timestamp")
}

func runStats(cmd *cobra.Command, args []string) error {
	eng, db, err := openEngine()
	if err != nil {
		return err
	}
	defer db.Close()

	player, err := resolvePlayer(db, args[0])
	if err != nil {
		return err
	}
	since, err := parseSince(statsSince)
	if err != nil {
		return err
	}

	stats, err := eng.AggregateByRole(player.ID, since)
	if err != nil {
		return fmt.Errorf("aggregate stats: %w", err)
	}
	if len(stats) == 0 {
		fmt.Println("no games found")
		return nil
	}

	ratings, err := db.PlayerRatings(player.ID)
	if err != nil {
		return fmt.Errorf("load ratings: %w", err)
	}
	report.PrintRoleStats(os.Stdout, ratings, stats)
	return nil
}
