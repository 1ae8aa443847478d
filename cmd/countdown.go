package cmd

import (
	"fmt"
	"io"

	"fcptitles/config"
	"fcptitles/countdown"
	"fcptitles/fcp"
	"fcptitles/logging"

	"github.com/spf13/cobra"
)

var countdownCmd = &cobra.Command{
	Use:   "countdown",
	Short: "Generate a 1-10 countdown of one-second titles",
	Long: `Generate countdown.fcpxml: ten titles numbered 1 to 10, each on screen
for one second, styled inline with Helvetica 96.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if output, _ := cmd.Flags().GetString("output"); output != "" {
			cfg.CountdownOutput = output
		}
		return runCountdown(cfg, logger, cmd.OutOrStdout())
	},
}

func runCountdown(cfg config.Config, log *logging.Logger, out io.Writer) error {
	log = log.WithComponent("countdown")

	events := countdown.Events(cfg.CountdownLength)
	log.Debugw("Synthesized countdown events", "count", len(events), "fps", cfg.FrameRate)

	doc := fcp.NewAssembler(cfg).Countdown(events, countdown.Duration(cfg.CountdownLength))
	if err := fcp.WriteToFile(doc, cfg.CountdownOutput); err != nil {
		return err
	}
	log.Infow("Wrote countdown", "output", cfg.CountdownOutput, "titles", len(events))

	fmt.Fprintf(out, "✓ Generated: %s\n", cfg.CountdownOutput)
	fmt.Fprintf(out, "✓ Contains: %d title clips (1-%d), each 1 second\n", len(events), cfg.CountdownLength)
	printNextSteps(out, cfg.CountdownOutput, "The countdown timer will appear in your library!")
	return nil
}

func printNextSteps(out io.Writer, filename, done string) {
	fmt.Fprintf(out, "\nNext steps:\n")
	fmt.Fprintf(out, "1. Open Final Cut Pro\n")
	fmt.Fprintf(out, "2. Go to File > Import > XML\n")
	fmt.Fprintf(out, "3. Select '%s'\n", filename)
	fmt.Fprintf(out, "4. %s\n", done)
}

func init() {
	countdownCmd.Flags().StringP("output", "o", "", "Output filename (defaults to "+config.DefaultCountdownOutput+")")
}
