package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:     "get <image-id>",
	Short:   "Show details for a single image",
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeApp,
	RunE:    runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	image, err := client.GetImage(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Title:        %s\n", image.Title)
	fmt.Printf("ID:           %s\n", image.ID)
	if image.Description != "" {
		fmt.Printf("Description:  %s\n", image.Description)
	}
	if image.Category != "" {
		fmt.Printf("Category:     %s\n", image.Category)
	}
	if image.ProjectID != "" {
		fmt.Printf("Project:      %s\n", image.ProjectID)
	}
	fmt.Printf("File:         %s (%s, %s)\n", image.Filename, image.ContentType, formatSize(image.Size))
	if !image.CreatedAt.IsZero() {
		fmt.Printf("Created:      %s\n", image.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	if !image.UpdatedAt.IsZero() {
		fmt.Printf("Updated:      %s\n", image.UpdatedAt.Format("2006-01-02 15:04:05"))
	}
	if image.AccessToken != "" {
		fmt.Printf("Data URL:     %s\n", client.ImageDataURL(image.ID, image.AccessToken))
	}

	return nil
}
