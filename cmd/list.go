package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-inhouse-stats/internal/report"
)

var listLimit int

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored games",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().IntVar(&listLimit, "limit", 20, "how many games to show")
}

func runList(cmd *cobra.Command, args []string) error {
	_, db, err := openEngine()
	if err != nil {
		return err
	}
	defer db.Close()

	games, err := db.ListGames(listLimit)
	if err != nil {
		return fmt.Errorf("list games: %w", err)
	}
	if len(games) == 0 {
		fmt.Println("no games stored")
		return nil
	}
	report.PrintGamesList(os.Stdout, games)
	return nil
}
