// Package main is the entry point for the inhouse CLI tool, which stores
// inhouse game records and computes per-role stats, leaderboards and rating
// history for players.
package main

import "github.com/pable/go-inhouse-stats/cmd"

func main() {
	cmd.Execute()
}
