package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/akorchak/patentgrab/internal/pipeline"
)

// fetchCmd scrapes a single patent record.
var fetchCmd = &cobra.Command{
	Use:   "fetch <patent-id>",
	Short: "Scrape a single patent record",
	Long: `Fetch retrieves one patent record and prints it as JSON.

The identifier is normalized before use: anything that is not a letter or a
digit is stripped, so "US 7,654,321" and "us7654321" resolve to the same
record. A retrieval failure still prints a record, carrying only the
identifier and an error message.`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	addHTTPFlags(fetchCmd)
	fetchCmd.Flags().String("json", "", "write the record to a file instead of stdout")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg := buildConfig(cmd)

	scraper := pipeline.NewScraper(cfg)
	renderer := pipeline.NewRenderer()

	if cfg.Output.Verbose {
		fmt.Fprintf(os.Stderr, "Fetching %s\n", pipeline.PatentURL(cfg.Source, pipeline.CleanPatentID(args[0])))
	}

	rec := scraper.Scrape(cmd.Context(), args[0])

	if path, _ := cmd.Flags().GetString("json"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		return renderer.WriteRecord(f, rec)
	}
	return renderer.WriteRecord(os.Stdout, rec)
}
