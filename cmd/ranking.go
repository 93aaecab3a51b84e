package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-inhouse-stats/internal/report"
	"github.com/pable/go-inhouse-stats/internal/roleresolve"
)

var rankingLimit int

var rankingCmd = &cobra.Command{
	Use:   "ranking <role>",
	Short: "Top players for a role by current MMR",
	Args:  cobra.ExactArgs(1),
	RunE:  runRanking,
}

func init() {
	rankingCmd.Flags().IntVar(&rankingLimit, "limit", 0, "number of entries to show (default 20)")
}

func runRanking(cmd *cobra.Command, args []string) error {
	// Role names are resolved fuzzily here, before the engine sees them.
	role, err := roleresolve.Resolve(args[0])
	if err != nil {
		return err
	}

	eng, db, err := openEngine()
	if err != nil {
		return err
	}
	defer db.Close()

	entries, err := eng.Leaderboard(role, rankingLimit)
	if err != nil {
		return fmt.Errorf("build %s leaderboard: %w", role, err)
	}
	if len(entries) == 0 {
		fmt.Printf("no rated players in %s\n", role)
		return nil
	}
	report.PrintLeaderboard(os.Stdout, entries)
	return nil
}
