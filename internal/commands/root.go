package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/omerdav/coursereg/internal/config"
	"github.com/omerdav/coursereg/internal/store"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "coursereg",
	Short: "A campus course-registration record manager",
	Long: `coursereg maintains course, lecturer and student records and lets an
authenticated student manage personal weekly class schedules. All state is
kept in plain comma-delimited files under the configured data directory.`,
}

// openStores loads the config and the catalog files. Both consoles start
// from here.
func openStores() (*config.Config, *store.Catalog, *store.Rows, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading config: %w", err)
	}
	catalog, err := store.Open(cfg.DataDir)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("opening catalog: %w", err)
	}
	rows, err := store.NewRows(cfg.DataDir)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("opening row store: %w", err)
	}
	return cfg, catalog, rows, nil
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(adminCmd)
	rootCmd.AddCommand(studentCmd)
	rootCmd.AddCommand(coursesCmd)
	rootCmd.AddCommand(versionCmd)
}
