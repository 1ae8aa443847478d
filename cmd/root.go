package cmd

import (
	"fmt"
	"os"

	"fcptitles/config"
	"fcptitles/logging"

	"github.com/spf13/cobra"
)

var (
	verbose   bool
	frameRate int
	logger    *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "fcptitles",
	Short: "Generate FCPXML title sequences for Final Cut Pro",
	Long: `fcptitles turns timed words and numbers into FCPXML documents made of
title clips that Final Cut Pro can import with File > Import > XML.

It can build a 1-10 countdown or one title per word of a lyrics.json
transcription.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig applies flag overrides on top of the environment config.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.New()
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("fps") {
		cfg.FrameRate = frameRate
	}
	return cfg, cfg.Validate()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		IntVar(&frameRate, "fps", config.DefaultFrameRate, "Frame rate used to snap times to frames (24, 25, 30 or 60)")

	rootCmd.AddCommand(countdownCmd)
	rootCmd.AddCommand(lyricsCmd)
}
