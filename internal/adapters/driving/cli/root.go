// Package cli implements the gardenlog command-line interface.
// It is a reference consumer of the driving ports: commands talk to
// the plant and garden façades and never touch the store directly.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	catalogfile "github.com/verdant-labs/gardenlog/internal/adapters/driven/catalog/file"
	configfile "github.com/verdant-labs/gardenlog/internal/adapters/driven/config/file"
	"github.com/verdant-labs/gardenlog/internal/adapters/driven/storage/sqlite"
	"github.com/verdant-labs/gardenlog/internal/core/ports/driving"
	"github.com/verdant-labs/gardenlog/internal/core/services"
	"github.com/verdant-labs/gardenlog/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verboseFlag bool
	dataDirFlag string
	catalogFlag string
)

// Services used by the commands. They stay nil until the first command
// that needs the store runs; tests inject fakes directly.
var (
	storeManager  *sqlite.Manager
	catalogSource *catalogfile.Source
	watchCatalog  bool
	plantQueries  driving.PlantQueries
	gardenPlanter driving.GardenPlanter
)

var rootCmd = &cobra.Command{
	Use:   "gardenlog",
	Short: "Track your garden from the terminal",
	Long: `gardenlog keeps a local plant catalog and a log of what you have
planted, backed by a SQLite store in your home directory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return configure()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"enable debug logging")
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "",
		"directory for the SQLite store (default ~/.gardenlog/data)")
	rootCmd.PersistentFlags().StringVar(&catalogFlag, "catalog", "",
		"plant catalog JSON file (default: embedded catalog)")
}

// configure merges the config file with flags and prepares the store
// manager. The store itself is not opened until a command needs it.
func configure() error {
	cfg, err := configfile.Load("")
	if err != nil {
		return err
	}

	dataDir := cfg.DataDir
	if dataDirFlag != "" {
		dataDir = dataDirFlag
	}
	catalogPath := cfg.CatalogPath
	if catalogFlag != "" {
		catalogPath = catalogFlag
	}
	logger.SetVerbose(verboseFlag || cfg.Verbose)

	if storeManager == nil {
		catalogSource = catalogfile.NewSource(catalogPath)
		watchCatalog = cfg.WatchCatalog && catalogPath != ""
		storeManager = sqlite.NewManager(dataDir, catalogSource.Seed)
	}
	return nil
}

// ensureServices opens the store on first use and binds the façades.
func ensureServices(ctx context.Context) error {
	if plantQueries != nil && gardenPlanter != nil {
		return nil
	}
	if storeManager == nil {
		return errors.New("store not configured")
	}

	store, err := storeManager.Store(ctx)
	if err != nil {
		return err
	}
	if plantQueries == nil {
		plantQueries = services.NewPlantService(store.PlantStore())
	}
	if gardenPlanter == nil {
		gardenPlanter = services.NewGardenService(store.GardenStore())
	}
	return nil
}
