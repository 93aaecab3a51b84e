package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-inhouse-stats/internal/report"
)

var championsSince string

var championsCmd = &cobra.Command{
	Use:   "champions <player>",
	Short: "Games total and winrate per champion for a player",
	Args:  cobra.ExactArgs(1),
	RunE:  runChampions,
}

func init() {
	championsCmd.Flags().StringVar(&championsSince, "since", "", "only count games after this RFC3339 timestamp")
}

func runChampions(cmd *cobra.Command, args []string) error {
	eng, db, err := openEngine()
	if err != nil {
		return err
	}
	defer db.Close()

	player, err := resolvePlayer(db, args[0])
	if err != nil {
		return err
	}
	since, err := parseSince(championsSince)
	if err != nil {
		return err
	}

	stats, err := eng.AggregateByChampion(player.ID, since)
	if err != nil {
		return fmt.Errorf("aggregate champion stats: %w", err)
	}
	if len(stats) == 0 {
		fmt.Println("no games found")
		return nil
	}
	report.PrintChampionStats(os.Stdout, stats)
	return nil
}
