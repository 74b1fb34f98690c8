package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pixhaven/pixctl/filter"
	"github.com/pixhaven/pixctl/pixhaven"
)

var (
	listCategory string
	listProject  string
	listTitle    string
	filterExpr   string
	showDetails  bool
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List images matching the filter criteria",
	Long: `List images on the PixHaven server. Category, project and title are
applied server-side; --filter adds a client-side expression on top, e.g.:

  pixctl list --category wallpapers --filter 'size > 1_000_000'
  pixctl list --filter 'hasPrefix(title, "vacation") && age_days < 30'`,
	PreRunE: initializeApp,
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "filter by category")
	listCmd.Flags().StringVarP(&listProject, "project", "p", "", "filter by project ID")
	listCmd.Flags().StringVarP(&listTitle, "title", "t", "", "filter by title")
	listCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "client-side filter expression")
	listCmd.Flags().BoolVar(&showDetails, "details", false, "show image details")
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	serverFilter := pixhaven.ImageFilter{
		Category:  listCategory,
		ProjectID: listProject,
		Title:     listTitle,
	}

	match, err := compileMatch(filterExpr)
	if err != nil {
		return err
	}

	logger.Info().
		Str("category", listCategory).
		Str("project_id", listProject).
		Str("title", listTitle).
		Msg("Searching images")

	images, err := operations.SearchImages(ctx, serverFilter, match)
	if err != nil {
		return err
	}

	if len(images) == 0 {
		fmt.Println("No images found matching the filter criteria.")
		return nil
	}

	fmt.Printf("\nFound %d images:\n", len(images))
	fmt.Println(strings.Repeat("-", 80))

	for _, image := range images {
		printImage(image, showDetails || cfg.Safety.ShowDetails)
	}

	return nil
}

// compileMatch compiles an optional client-side filter expression.
func compileMatch(expression string) (func(pixhaven.Image) bool, error) {
	if expression == "" {
		return nil, nil
	}

	compiled, err := filter.Compile(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}
	return compiled.Predicate(), nil
}

// printImage renders one image as a list entry.
func printImage(image pixhaven.Image, details bool) {
	fmt.Printf("• %s", image.Title)
	if image.Category != "" {
		fmt.Printf(" [%s]", image.Category)
	}
	fmt.Println()

	if !details {
		return
	}

	fmt.Printf("    ID: %s\n", image.ID)
	if image.ProjectID != "" {
		fmt.Printf("    Project: %s\n", image.ProjectID)
	}
	fmt.Printf("    File: %s (%s, %s)\n", image.Filename, image.ContentType, formatSize(image.Size))
	if !image.CreatedAt.IsZero() {
		fmt.Printf("    Created: %s\n", image.CreatedAt.Format("2006-01-02 15:04"))
	}
}

// formatSize renders a byte count for display.
func formatSize(size int64) string {
	switch {
	case size >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(size)/(1<<20))
	case size >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(size)/(1<<10))
	default:
		return fmt.Sprintf("%d B", size)
	}
}
