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
	uploadTitle       string
	uploadCategory    string
	uploadProject     string
	uploadDescription string
)

// uploadCmd represents the upload command
var uploadCmd = &cobra.Command{
	Use:     "upload <file>...",
	Short:   "Upload one or more image files",
	Long:    `Upload image files in a single request. Metadata flags apply to every file.`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: initializeApp,
	RunE:    runUpload,
}

func init() {
	rootCmd.AddCommand(uploadCmd)

	uploadCmd.Flags().StringVarP(&uploadTitle, "title", "t", "", "image title")
	uploadCmd.Flags().StringVarP(&uploadCategory, "category", "c", "", "image category")
	uploadCmd.Flags().StringVarP(&uploadProject, "project", "p", "", "project ID")
	uploadCmd.Flags().StringVar(&uploadDescription, "description", "", "image description")
}

func runUpload(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if cfg.Safety.DryRun {
		for _, path := range args {
			fmt.Printf("[DRY RUN] Would upload %s\n", path)
		}
		return nil
	}

	var uploads []pixhaven.Upload
	for _, path := range args {
		file, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer file.Close()

		uploads = append(uploads, pixhaven.Upload{
			Filename: filepath.Base(path),
			Reader:   file,
		})
	}

	meta := pixhaven.ImageUpdate{
		Title:       uploadTitle,
		Category:    uploadCategory,
		ProjectID:   uploadProject,
		Description: uploadDescription,
	}

	created, err := client.UploadImages(ctx, uploads, meta)
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}

	fmt.Printf("Uploaded %d image", len(created))
	if len(created) != 1 {
		fmt.Printf("s")
	}
	fmt.Println(":")
	for _, image := range created {
		fmt.Printf("• %s (ID: %s)\n", image.Title, image.ID)
	}

	return nil
}
