package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pable/go-inhouse-stats/internal/report"
)

var (
	graphSince string
	graphOut   string
)

var graphCmd = &cobra.Command{
	Use:   "graph <player>",
	Short: "Render a player's MMR history to a PNG",
	Args:  cobra.ExactArgs(1),
	RunE:  runGraph,
}

func init() {
	graphCmd.Flags().StringVar(&graphSince, "since", "", "window start as RFC3339 (default one month back)")
	graphCmd.Flags().StringVar(&graphOut, "out", "", "output file (default mmr-<player-id>.png)")
}

func runGraph(cmd *cobra.Command, args []string) error {
	eng, db, err := openEngine()
	if err != nil {
		return err
	}
	defer db.Close()

	player, err := resolvePlayer(db, args[0])
	if err != nil {
		return err
	}

	since, err := parseSince(graphSince)
	if err != nil {
		return err
	}
	if since == nil {
		monthAgo := time.Now().AddDate(0, -1, 0)
		since = &monthAgo
	}

	history, err := eng.RatingHistory(player.ID, since)
	if err != nil {
		return fmt.Errorf("build rating history: %w", err)
	}
	if len(history) == 0 {
		fmt.Println("no rating history found")
		return nil
	}

	out := graphOut
	if out == "" {
		out = fmt.Sprintf("mmr-%d.png", player.ID)
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	defer f.Close()

	if err := report.WriteRatingChart(f, player.Name, history); err != nil {
		return err
	}
	fmt.Println("wrote", out)
	return nil
}
