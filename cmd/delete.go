package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pixhaven/pixctl/pixhaven"
)

var (
	deleteCategory string
	deleteProject  string
	deleteTitle    string
	deleteExpr     string
	noConfirm      bool
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete [image-id]",
	Short: "Delete an image, or all images matching a filter",
	Long: `Delete a single image by ID, or delete every image matching the given
filter criteria. Batch deletes run concurrently and report per-image failures.`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: initializeApp,
	RunE:    runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)

	deleteCmd.Flags().StringVarP(&deleteCategory, "category", "c", "", "filter by category")
	deleteCmd.Flags().StringVarP(&deleteProject, "project", "p", "", "filter by project ID")
	deleteCmd.Flags().StringVarP(&deleteTitle, "title", "t", "", "filter by title")
	deleteCmd.Flags().StringVarP(&deleteExpr, "filter", "f", "", "client-side filter expression")
	deleteCmd.Flags().BoolVar(&noConfirm, "no-confirm", false, "skip confirmation prompt")
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if len(args) == 1 {
		return deleteSingle(ctx, args[0])
	}
	return deleteBatch(ctx)
}

func deleteSingle(ctx context.Context, id string) error {
	image, err := client.GetImage(ctx, id)
	if err != nil {
		return err
	}

	if cfg.Safety.DryRun {
		fmt.Printf("[DRY RUN] Would delete %s (ID: %s)\n", image.Title, image.ID)
		return nil
	}

	if !confirmDelete(fmt.Sprintf("Delete %s (ID: %s)?", image.Title, image.ID)) {
		fmt.Println("Aborted.")
		return nil
	}

	confirmation, err := client.DeleteImage(ctx, id)
	if err != nil {
		return err
	}

	if confirmation.Message != "" {
		fmt.Println(confirmation.Message)
	} else {
		fmt.Printf("Deleted %s.\n", image.Title)
	}
	return nil
}

func deleteBatch(ctx context.Context) error {
	if deleteCategory == "" && deleteProject == "" && deleteTitle == "" && deleteExpr == "" {
		return fmt.Errorf("refusing to delete everything: provide an image ID or filter criteria")
	}

	serverFilter := pixhaven.ImageFilter{
		Category:  deleteCategory,
		ProjectID: deleteProject,
		Title:     deleteTitle,
	}

	match, err := compileMatch(deleteExpr)
	if err != nil {
		return err
	}

	images, err := operations.SearchImages(ctx, serverFilter, match)
	if err != nil {
		return err
	}

	if len(images) == 0 {
		fmt.Println("No images found matching the filter criteria.")
		return nil
	}

	fmt.Printf("The following %d images will be deleted:\n", len(images))
	for _, image := range images {
		printImage(image, cfg.Safety.ShowDetails)
	}

	if cfg.Safety.DryRun {
		fmt.Printf("[DRY RUN] Would delete %d images\n", len(images))
		return nil
	}

	if !confirmDelete(fmt.Sprintf("Delete %d images?", len(images))) {
		fmt.Println("Aborted.")
		return nil
	}

	result := operations.BatchDeleteImages(ctx, images)

	fmt.Printf("Deleted %d of %d images.\n", len(result.Successful), result.Requested)
	for _, failure := range result.Failed {
		fmt.Printf("✗ %v\n", failure)
	}
	if len(result.Failed) > 0 {
		return fmt.Errorf("%d deletions failed", len(result.Failed))
	}
	return nil
}

// confirmDelete asks the user to confirm unless confirmation is disabled.
func confirmDelete(prompt string) bool {
	if noConfirm || !cfg.Safety.ConfirmDelete {
		return true
	}

	fmt.Printf("%s [y/N]: ", prompt)
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return false
	}
	response := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return response == "y" || response == "yes"
}
