package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/boxscore/internal/config"
	"github.com/spf13/cobra"
)

var (
	cfg      config.Config
	dataFile string
)

var rootCmd = &cobra.Command{
	Use:   "boxscore",
	Short: "Track basketball players' per-game statistics",
	Long: `boxscore keeps per-game box scores for a roster of players and computes
shooting percentages, per-game averages and a simplified efficiency rating.
The roster lives in a plain text file and can be exported to CSV.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()
		if dataFile != "" {
			cfg.DataFile = dataFile
		}
		if cfg.LogFormat == "json" {
			log.SetFormatter(log.JSONFormatter)
		}
		if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
			log.SetLevel(lvl)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataFile, "file", "", "path to the roster data file (overrides BOXSCORE_FILE)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
