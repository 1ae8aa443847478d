package cmd

import (
	"fmt"
	"io"

	"fcptitles/config"
	"fcptitles/fcp"
	"fcptitles/logging"
	"fcptitles/lyrics"

	"github.com/spf13/cobra"
)

var lyricsCmd = &cobra.Command{
	Use:   "lyrics",
	Short: "Generate one title per word from lyrics.json",
	Long: `Generate lyrics.fcpxml from word timings in lyrics.json.

The input holds segments of words, each word with "word", "start" and "end"
in seconds. Every word becomes a title placed at its start time, snapped to
the nearest frame.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if input, _ := cmd.Flags().GetString("input"); input != "" {
			cfg.LyricsInput = input
		}
		if output, _ := cmd.Flags().GetString("output"); output != "" {
			cfg.LyricsOutput = output
		}
		return runLyrics(cfg, logger, cmd.OutOrStdout())
	},
}

func runLyrics(cfg config.Config, log *logging.Logger, out io.Writer) error {
	log = log.WithComponent("lyrics")

	log.Debugw("Reading lyrics", "input", cfg.LyricsInput)
	doc, err := lyrics.Load(cfg.LyricsInput)
	if err != nil {
		return err
	}

	total, err := doc.MaxEnd()
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.LyricsInput, err)
	}

	events := doc.Events()
	for i, ev := range events {
		if ev.End < ev.Start {
			log.Warnw("Word ends before it starts", "index", i, "word", ev.Text, "start", ev.Start, "end", ev.End)
		}
	}

	fcpxml := fcp.NewAssembler(cfg).Lyrics(events, total)
	if err := fcp.WriteToFile(fcpxml, cfg.LyricsOutput); err != nil {
		return err
	}

	duration := fcp.Quantize(total, cfg.FrameRate)
	log.Infow("Wrote lyrics",
		"output", cfg.LyricsOutput,
		"titles", len(events),
		"duration", duration.String(),
	)

	fmt.Fprintf(out, "✓ Generated: %s\n", cfg.LyricsOutput)
	fmt.Fprintf(out, "✓ Contains: %d lyric title clips\n", len(events))
	fmt.Fprintf(out, "✓ Total duration: %.2f seconds\n", duration.Seconds())
	printNextSteps(out, cfg.LyricsOutput, "The lyrics will appear on your timeline!")
	return nil
}

func init() {
	lyricsCmd.Flags().StringP("input", "i", "", "Input lyrics JSON (defaults to "+config.DefaultLyricsInput+")")
	lyricsCmd.Flags().StringP("output", "o", "", "Output filename (defaults to "+config.DefaultLyricsOutput+")")
}
