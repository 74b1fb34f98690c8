package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pixhaven/pixctl/imagelist"
	"github.com/pixhaven/pixctl/pixhaven"
)

var (
	watchCategory string
	watchProject  string
	watchTitle    string
	watchInterval int
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Continuously watch the image list",
	Long: `Watch the image list, refetching on an interval and re-rendering whenever
the collection changes. Previous results stay visible while a refresh is in
flight; fetch failures are shown without discarding the last good list.`,
	PreRunE: initializeApp,
	RunE:    runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVarP(&watchCategory, "category", "c", "", "filter by category")
	watchCmd.Flags().StringVarP(&watchProject, "project", "p", "", "filter by project ID")
	watchCmd.Flags().StringVarP(&watchTitle, "title", "t", "", "filter by title")
	watchCmd.Flags().IntVarP(&watchInterval, "interval", "i", 0, "seconds between refetches (default from config)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	interval := cfg.Watch.Interval
	if watchInterval > 0 {
		interval = watchInterval
	}

	initial := pixhaven.ImageFilter{
		Category:  watchCategory,
		ProjectID: watchProject,
		Title:     watchTitle,
	}

	controller := imagelist.New(client, initial, logger,
		imagelist.WithOnChange(renderListState))
	defer controller.Close()

	ticker := time.NewTicker(time.Duration(interval) * time.Second)
	defer ticker.Stop()

	logger.Info().Int("interval", interval).Msg("Watching image list")

	for {
		select {
		case <-ticker.C:
			controller.Refetch()
		case <-ctx.Done():
			fmt.Println("\nStopped.")
			return nil
		}
	}
}

// renderListState prints one snapshot of the list controller.
func renderListState(state imagelist.State) {
	if state.Loading {
		fmt.Println("Refreshing...")
		return
	}

	fmt.Printf("\n%s — %d images\n", time.Now().Format("15:04:05"), len(state.Images))
	fmt.Println(strings.Repeat("-", 40))
	for _, image := range state.Images {
		printImage(image, false)
	}
	if state.LastError != "" {
		fmt.Printf("! %s\n", state.LastError)
	}
}
