package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pixhaven/pixctl/pixhaven"
)

var (
	updateTitle       string
	updateCategory    string
	updateProject     string
	updateDescription string
	updateFile        string
)

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:   "update <image-id>",
	Short: "Update an image's metadata or replace its file",
	Long: `Update the metadata of an existing image, or replace its binary file
with --file. Metadata and file replacement can be combined in one invocation.`,
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeApp,
	RunE:    runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)

	updateCmd.Flags().StringVarP(&updateTitle, "title", "t", "", "new title")
	updateCmd.Flags().StringVarP(&updateCategory, "category", "c", "", "new category")
	updateCmd.Flags().StringVarP(&updateProject, "project", "p", "", "new project ID")
	updateCmd.Flags().StringVar(&updateDescription, "description", "", "new description")
	updateCmd.Flags().StringVar(&updateFile, "file", "", "replacement image file")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	id := args[0]

	update := pixhaven.ImageUpdate{
		Title:       updateTitle,
		Category:    updateCategory,
		ProjectID:   updateProject,
		Description: updateDescription,
	}

	if update.IsZero() && updateFile == "" {
		return fmt.Errorf("nothing to update: provide metadata flags and/or --file")
	}

	if cfg.Safety.DryRun {
		if !update.IsZero() {
			fmt.Printf("[DRY RUN] Would update metadata of image %s\n", id)
		}
		if updateFile != "" {
			fmt.Printf("[DRY RUN] Would replace file of image %s with %s\n", id, updateFile)
		}
		return nil
	}

	if !update.IsZero() {
		updated, err := client.UpdateImage(ctx, id, update)
		if err != nil {
			return fmt.Errorf("metadata update failed: %w", err)
		}
		fmt.Printf("Updated metadata of %s (ID: %s)\n", updated.Title, updated.ID)
	}

	if updateFile != "" {
		file, err := os.Open(updateFile)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", updateFile, err)
		}
		defer file.Close()

		updated, err := client.ReplaceImageFile(ctx, id, pixhaven.Upload{
			Filename: filepath.Base(updateFile),
			Reader:   file,
		})
		if err != nil {
			return fmt.Errorf("file replacement failed: %w", err)
		}
		fmt.Printf("Replaced file of %s with %s\n", updated.Title, updated.Filename)
	}

	return nil
}
