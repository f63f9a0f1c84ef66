package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var waterAt string

var waterCmd = &cobra.Command{
	Use:   "water",
	Short: "Watering schedule helpers",
}

var waterDueCmd = &cobra.Command{
	Use:   "due",
	Short: "List plantings that are due for watering",
	Long: `Lists every planting whose watering interval has elapsed since its
last watering. By default "now" is used; --at checks a different moment.`,
	RunE: runWaterDue,
}

func init() {
	waterDueCmd.Flags().StringVar(&waterAt, "at", "",
		"check due status at this time (RFC3339 or YYYY-MM-DD)")
	waterCmd.AddCommand(waterDueCmd)
	rootCmd.AddCommand(waterCmd)
}

func runWaterDue(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if err := ensureServices(ctx); err != nil {
		return err
	}

	at := time.Now()
	if waterAt != "" {
		parsed, err := parseAt(waterAt)
		if err != nil {
			return err
		}
		at = parsed
	}

	gardens, err := gardenPlanter.GetPlantedGardens(ctx)
	if err != nil {
		return fmt.Errorf("listing garden: %w", err)
	}

	due := 0
	for i := range gardens {
		g := &gardens[i]
		for j := range g.Plantings {
			gp := &g.Plantings[j]
			if !g.Plant.ShouldBeWatered(at, gp.LastWateringDate) {
				continue
			}
			due++
			cmd.Printf("  %s %s\n", dueStyle.Render(g.Plant.Name),
				mutedStyle.Render(fmt.Sprintf("#%d, last watered %s (every %d days)",
					gp.ID, renderDate(gp.LastWateringDate), g.Plant.WateringInterval)))
		}
	}

	if due == 0 {
		cmd.Println("Nothing needs watering.")
	}
	return nil
}

func parseAt(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: use RFC3339 or YYYY-MM-DD", s)
	}
	return t, nil
}
