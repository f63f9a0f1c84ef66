package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verdant-labs/gardenlog/internal/core/domain"
)

var plantsZone int

var plantsCmd = &cobra.Command{
	Use:   "plants",
	Short: "Browse the plant catalog",
}

var plantsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List plants in the catalog",
	Long: `Lists the plant catalog ordered by name.
With --zone, only plants suited to that grow zone are shown.`,
	RunE: runPlantsList,
}

var plantsShowCmd = &cobra.Command{
	Use:   "show [plant-id]",
	Short: "Show one plant in detail",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlantsShow,
}

func init() {
	plantsListCmd.Flags().IntVar(&plantsZone, "zone", 0, "filter by grow zone number")
	plantsCmd.AddCommand(plantsListCmd)
	plantsCmd.AddCommand(plantsShowCmd)
	rootCmd.AddCommand(plantsCmd)
}

func runPlantsList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if err := ensureServices(ctx); err != nil {
		return err
	}

	var (
		plants []domain.Plant
		err    error
	)
	if cmd.Flags().Changed("zone") {
		plants, err = plantQueries.GetPlantsWithGrowZoneNumber(ctx, plantsZone)
	} else {
		plants, err = plantQueries.GetPlants(ctx)
	}
	if err != nil {
		return fmt.Errorf("listing plants: %w", err)
	}

	if len(plants) == 0 {
		cmd.Println("No plants in the catalog.")
		return nil
	}
	for i := range plants {
		cmd.Println(renderPlantLine(&plants[i]))
	}
	return nil
}

func runPlantsShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if err := ensureServices(ctx); err != nil {
		return err
	}

	plant, err := plantQueries.GetPlant(ctx, args[0])
	if err != nil {
		return fmt.Errorf("loading plant: %w", err)
	}
	if plant == nil {
		cmd.Printf("Plant %q is not in the catalog.\n", args[0])
		return nil
	}

	cmd.Println(nameStyle.Render(plant.Name))
	cmd.Printf("  ID:       %s\n", plant.ID)
	cmd.Printf("  Zone:     %d\n", plant.GrowZoneNumber)
	cmd.Printf("  Watering: every %d days\n", plant.WateringInterval)
	if plant.ImageURL != "" {
		cmd.Printf("  Image:    %s\n", plant.ImageURL)
	}
	if plant.Description != "" {
		cmd.Println()
		cmd.Println(plant.Description)
	}
	return nil
}
