package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/verdant-labs/gardenlog/internal/core/domain"
)

var gardenCmd = &cobra.Command{
	Use:   "garden",
	Short: "Manage your garden plantings",
}

var gardenListCmd = &cobra.Command{
	Use:   "list",
	Short: "List everything planted in the garden",
	RunE:  runGardenList,
}

var gardenPlantCmd = &cobra.Command{
	Use:   "plant [plant-id]",
	Short: "Record a new planting of a catalog plant",
	Args:  cobra.ExactArgs(1),
	RunE:  runGardenPlant,
}

var gardenRemoveCmd = &cobra.Command{
	Use:   "remove [planting-id]",
	Short: "Remove a planting from the garden",
	Args:  cobra.ExactArgs(1),
	RunE:  runGardenRemove,
}

func init() {
	gardenCmd.AddCommand(gardenListCmd)
	gardenCmd.AddCommand(gardenPlantCmd)
	gardenCmd.AddCommand(gardenRemoveCmd)
	rootCmd.AddCommand(gardenCmd)
}

func runGardenList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if err := ensureServices(ctx); err != nil {
		return err
	}

	gardens, err := gardenPlanter.GetPlantedGardens(ctx)
	if err != nil {
		return fmt.Errorf("listing garden: %w", err)
	}
	if len(gardens) == 0 {
		cmd.Println("Nothing planted yet. Try: gardenlog garden plant <plant-id>")
		return nil
	}

	for i := range gardens {
		g := &gardens[i]
		cmd.Printf("  %s %s\n", nameStyle.Render(g.Plant.Name),
			mutedStyle.Render(fmt.Sprintf("(%d planted)", len(g.Plantings))))
		for j := range g.Plantings {
			cmd.Println(renderPlanting(&g.Plantings[j]))
		}
	}
	return nil
}

func runGardenPlant(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if err := ensureServices(ctx); err != nil {
		return err
	}

	plantID := args[0]
	res := <-gardenPlanter.CreateGardenPlanting(ctx, plantID)
	if res.Err != nil {
		if errors.Is(res.Err, domain.ErrConstraint) {
			return fmt.Errorf("plant %q is not in the catalog", plantID)
		}
		return fmt.Errorf("planting %s: %w", plantID, res.Err)
	}

	cmd.Printf("Planted %s on %s (planting #%d).\n",
		plantID, renderDate(res.Planting.PlantDate), res.Planting.ID)
	return nil
}

func runGardenRemove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if err := ensureServices(ctx); err != nil {
		return err
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid planting id %q", args[0])
	}

	if err := <-gardenPlanter.RemoveGardenPlanting(ctx, domain.GardenPlanting{ID: id}); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("planting #%d does not exist", id)
		}
		return fmt.Errorf("removing planting #%d: %w", id, err)
	}

	cmd.Printf("Removed planting #%d.\n", id)
	return nil
}
