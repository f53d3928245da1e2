package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "Manage uploaded files",
	Long:  `List or delete uploaded files. Deleting removes the stored bytes and every document and embedding derived from the file.`,
}

var filesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List uploaded files",
	Args:  cobra.NoArgs,
	RunE:  runFilesList,
}

var filesDeleteCmd = &cobra.Command{
	Use:   "delete [file-id]",
	Short: "Delete a file and everything derived from it",
	Args:  cobra.ExactArgs(1),
	RunE:  runFilesDelete,
}

func init() {
	filesCmd.AddCommand(filesListCmd)
	filesCmd.AddCommand(filesDeleteCmd)
	rootCmd.AddCommand(filesCmd)
}

func runFilesList(cmd *cobra.Command, _ []string) error {
	if libraryService == nil {
		return errors.New("library service not configured")
	}

	files, err := libraryService.ListFiles(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list files: %w", err)
	}

	if len(files) == 0 {
		cmd.Println("No files uploaded yet.")
		return nil
	}

	cmd.Println("Files:")
	cmd.Println()
	for i := range files {
		cmd.Printf("  %s\n", files[i].ID)
		cmd.Printf("    Name:     %s\n", files[i].Name)
		cmd.Printf("    Type:     %s\n", files[i].Type)
		cmd.Printf("    Size:     %d bytes\n", files[i].Size)
		cmd.Printf("    Uploaded: %s\n", files[i].CreatedAt.Format("2006-01-02 15:04:05"))
		cmd.Println()
	}

	cmd.Printf("Total: %d files\n", len(files))
	return nil
}

func runFilesDelete(cmd *cobra.Command, args []string) error {
	if libraryService == nil {
		return errors.New("library service not configured")
	}

	fileID := args[0]
	if err := libraryService.DeleteFile(context.Background(), fileID); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	cmd.Printf("Deleted file %s and its documents.\n", fileID)
	return nil
}
