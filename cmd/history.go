package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-inhouse-stats/internal/report"
)

var historyGames int

var historyCmd = &cobra.Command{
	Use:   "history <player>",
	Short: "Recent match history for a player",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyGames, "games", 20, "how many games to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	_, db, err := openEngine()
	if err != nil {
		return err
	}
	defer db.Close()

	player, err := resolvePlayer(db, args[0])
	if err != nil {
		return err
	}

	rows, err := db.RecentGames(player.ID, historyGames)
	if err != nil {
		return fmt.Errorf("load match history: %w", err)
	}
	if len(rows) == 0 {
		fmt.Println("no games found")
		return nil
	}
	report.PrintGames(os.Stdout, rows)
	return nil
}
