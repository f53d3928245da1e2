package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/parchment-labs/parchment-cli/internal/core/domain"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [file-id]",
	Short: "Extract and embed an uploaded file",
	Long: `Extracts text from an uploaded file, cleans it, splits it into
overlapping chunks and embeds each chunk. The document becomes
queryable once at least one chunk is embedded.`,
	Args: cobra.ExactArgs(1),
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	if ingestionService == nil {
		return errors.New("ingestion service not configured")
	}

	report, err := ingestionService.IngestFile(context.Background(), args[0])
	if err != nil {
		if report != nil && report.DocumentID != "" {
			cmd.Printf("Document %s created but ingestion failed.\n", report.DocumentID)
		}
		return fmt.Errorf("ingestion failed: %w", err)
	}

	printIngestionReport(cmd, report)
	return nil
}

func printIngestionReport(cmd *cobra.Command, report *domain.IngestionReport) {
	cmd.Printf("Ingested document %s\n", report.DocumentID)
	cmd.Printf("  Embedded: %d chunks\n", report.Embedded)
	if report.Skipped > 0 {
		cmd.Printf("  Skipped:  %d chunks (too short)\n", report.Skipped)
	}
	if report.Failed > 0 {
		cmd.Printf("  Failed:   %d chunks\n", report.Failed)
	}
}
