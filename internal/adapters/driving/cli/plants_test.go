package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdant-labs/gardenlog/internal/adapters/driven/storage/memory"
	"github.com/verdant-labs/gardenlog/internal/core/domain"
	"github.com/verdant-labs/gardenlog/internal/core/services"
)

// setupTestServices swaps in façades backed by in-memory stores and
// returns the stores for test setup.
func setupTestServices(t *testing.T) (*memory.PlantStore, *memory.GardenStore) {
	t.Helper()

	plants := memory.NewPlantStore()
	garden := memory.NewGardenStore(plants)

	oldPlants, oldGarden := plantQueries, gardenPlanter
	plantQueries = services.NewPlantService(plants)
	gardenPlanter = services.NewGardenService(garden)
	t.Cleanup(func() {
		plantQueries, gardenPlanter = oldPlants, oldGarden
	})

	return plants, garden
}

// runCommand executes the root command with args and captures output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

func seedTestCatalog(t *testing.T, plants *memory.PlantStore) {
	t.Helper()
	err := plants.UpsertAll(context.Background(), []domain.Plant{
		{ID: "solanum", Name: "Tomato", Description: "A red berry", GrowZoneNumber: 6, WateringInterval: 4},
		{ID: "malus", Name: "Apple", Description: "A pome fruit", GrowZoneNumber: 3, WateringInterval: 30},
	})
	require.NoError(t, err)
}

func TestPlantsListCmd_ListsCatalog(t *testing.T) {
	plants, _ := setupTestServices(t)
	seedTestCatalog(t, plants)

	out, err := runCommand(t, "plants", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Tomato")
	assert.Contains(t, out, "Apple")
	assert.Contains(t, out, "water every 4 days")
}

func TestPlantsListCmd_EmptyCatalog(t *testing.T) {
	setupTestServices(t)

	out, err := runCommand(t, "plants", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No plants in the catalog.")
}

func TestPlantsListCmd_ZoneFilter(t *testing.T) {
	plants, _ := setupTestServices(t)
	seedTestCatalog(t, plants)
	t.Cleanup(func() {
		plantsListCmd.Flags().Lookup("zone").Changed = false
	})

	out, err := runCommand(t, "plants", "list", "--zone", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Apple")
	assert.NotContains(t, out, "Tomato")
}

func TestPlantsShowCmd_DisplaysDetails(t *testing.T) {
	plants, _ := setupTestServices(t)
	seedTestCatalog(t, plants)

	out, err := runCommand(t, "plants", "show", "solanum")
	require.NoError(t, err)
	assert.Contains(t, out, "Tomato")
	assert.Contains(t, out, "every 4 days")
	assert.Contains(t, out, "A red berry")
}

func TestPlantsShowCmd_UnknownPlant(t *testing.T) {
	setupTestServices(t)

	out, err := runCommand(t, "plants", "show", "no-such-plant")
	require.NoError(t, err)
	assert.Contains(t, out, `"no-such-plant" is not in the catalog`)
}
