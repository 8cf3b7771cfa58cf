package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgPath string
)

var rootCmd = &cobra.Command{
	Use:   "jarvisd",
	Short: "jarvisd - local memory and intelligence daemon for the JARVIS assistant",
	Long: `jarvisd keeps the JARVIS assistant's state on the local machine: chats,
relationship progress, streaks, the user profile and preferences all live in
a single SQLite file. It also runs the heuristic layer that classifies intent,
tone and emotion for every message, and falls back to local keyword replies
when no remote backend is reachable.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to YAML config file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(wipeCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
