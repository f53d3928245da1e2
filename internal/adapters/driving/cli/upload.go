package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// uploadIngest runs ingestion right after the upload.
var uploadIngest bool

var uploadCmd = &cobra.Command{
	Use:   "upload [path]",
	Short: "Upload a document file",
	Long: `Stores a PDF, text or markdown file in the library and prints its
file ID. Pass --ingest to extract and embed its content in the same
invocation.`,
	Args: cobra.ExactArgs(1),
	RunE: runUpload,
}

func init() {
	uploadCmd.Flags().BoolVar(&uploadIngest, "ingest", false, "ingest the file after uploading")
	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, args []string) error {
	if libraryService == nil {
		return errors.New("library service not configured")
	}

	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	ctx := context.Background()
	file, err := libraryService.Upload(ctx, filepath.Base(path), "", data)
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}

	cmd.Printf("Uploaded %s\n", file.Name)
	cmd.Printf("  ID:   %s\n", file.ID)
	cmd.Printf("  Type: %s\n", file.Type)
	cmd.Printf("  Size: %d bytes\n", file.Size)

	if !uploadIngest {
		cmd.Printf("\nRun 'parchment ingest %s' to make it queryable.\n", file.ID)
		return nil
	}

	report, err := ingestionService.IngestFile(ctx, file.ID)
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	printIngestionReport(cmd, report)
	return nil
}
