package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the base command; running it without a subcommand performs a sync
// so the bare binary behaves like the original one-shot puller.
var rootCmd = &cobra.Command{
	Use:   "vsmodpuller",
	Short: "Pulls Vintage Story ModDB metadata into a local database",
	Long: `Fetches the mods and authors collections from the Vintage Story ModDB API,
caches the raw JSON on disk, and loads normalized records (mods, authors,
tags, mod-id aliases) into a local SQLite database for querying.`,
	Run: func(_ *cobra.Command, _ []string) {
		runSync()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
