package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/akorchak/patentgrab/internal/pipeline"
	"github.com/akorchak/patentgrab/internal/worker"
)

// batchCmd scrapes every identifier listed in a CSV file.
var batchCmd = &cobra.Command{
	Use:   "batch <input.csv>",
	Short: "Scrape every patent listed in a CSV file",
	Long: `Batch reads patent identifiers from the first column of a CSV file,
scrapes each one and writes the full record array to a JSON file.

The output array has exactly one record per input row, in input order;
duplicated identifiers produce duplicated records. Individual failures never
abort the run - a failed row becomes an error record and the batch continues.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	addHTTPFlags(batchCmd)
	batchCmd.Flags().String("json", "patents.json", "output file for the record array")
	batchCmd.Flags().Duration("delay", time.Second, "mandatory pause between requests")
	batchCmd.Flags().Int("workers", 0, "concurrent fetch workers (0 = config default)")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg := buildConfig(cmd)
	if cmd.Flags().Changed("delay") {
		cfg.RateLimiting.Delay, _ = cmd.Flags().GetDuration("delay")
	}
	if cmd.Flags().Changed("workers") {
		cfg.Concurrency.Workers, _ = cmd.Flags().GetInt("workers")
	}

	scraper := pipeline.NewScraper(cfg)
	processor := worker.NewBatchProcessor(
		scraper,
		cfg.Concurrency.Workers,
		cfg.RateLimiting.RequestsPerSecond,
		cfg.RateLimiting.BurstSize,
		cfg.RateLimiting.Delay,
	)

	if cfg.Output.Verbose {
		fmt.Fprintf(os.Stderr, "Reading identifiers from %s\n", args[0])
	}

	records, err := processor.ProcessFile(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	outPath, _ := cmd.Flags().GetString("json")
	renderer := pipeline.NewRenderer()
	if err := renderer.WriteJSON(records, outPath); err != nil {
		return err
	}

	renderer.RenderSummary(os.Stderr, records)
	fmt.Fprintf(os.Stderr, "Wrote %s\n", outPath)
	return nil
}
