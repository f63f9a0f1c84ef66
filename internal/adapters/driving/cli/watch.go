package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
)

var gardenWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow the garden live until interrupted",
	Long: `Subscribes to the garden and prints a summary line every time a
planting or catalog change lands. With watch_catalog enabled in the
config, edits to the catalog file are picked up too.`,
	RunE: runGardenWatch,
}

func init() {
	gardenCmd.AddCommand(gardenWatchCmd)
}

func runGardenWatch(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	if err := ensureServices(ctx); err != nil {
		return err
	}

	if watchCatalog && catalogSource != nil {
		store, err := storeManager.Store(ctx)
		if err != nil {
			return err
		}
		stopWatch, err := catalogSource.Watch(ctx, store.PlantStore())
		if err != nil {
			return fmt.Errorf("watching catalog: %w", err)
		}
		defer stopWatch() //nolint:errcheck
	}

	cmd.Println("Watching the garden. Press Ctrl+C to stop.")
	return followGarden(ctx, cmd)
}

// followGarden drains the live garden subscription until the context
// is cancelled or the subscription closes.
func followGarden(ctx context.Context, cmd *cobra.Command) error {
	sub := gardenPlanter.WatchPlantedGardens(ctx)
	defer sub.Cancel()

	for {
		select {
		case r, ok := <-sub.Updates():
			if !ok {
				return nil
			}
			if r.Err != nil {
				return fmt.Errorf("watching garden: %w", r.Err)
			}
			total := 0
			for i := range r.Value {
				total += len(r.Value[i].Plantings)
			}
			cmd.Printf("[%s] %d plants, %d plantings\n",
				time.Now().Format("15:04:05"), len(r.Value), total)
		case <-ctx.Done():
			return nil
		}
	}
}
