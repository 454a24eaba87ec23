// ABOUTME: Root command definition and CLI setup
// ABOUTME: Handles global flags and config resolution
package cli

import (
	"github.com/harper/diary/internal/config"
	"github.com/spf13/cobra"
)

var (
	dbFlag       string
	timezoneFlag string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "diary",
	Short: "Diary import and query tool",
	Long:  `Diary imports timestamped entry files into a SQLite diary database and queries it with full-text search.`,
}

func Execute() error {
	return rootCmd.Execute()
}

// loadConfig resolves the effective configuration: config file over
// defaults, flags over both.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}

	if dbFlag != "" {
		cfg.Database = dbFlag
	}
	if timezoneFlag != "" {
		cfg.Timezone = timezoneFlag
	}

	return cfg, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbFlag, "db", "", "Path to the diary database (default diary.sqlite3)")
	rootCmd.PersistentFlags().StringVar(&timezoneFlag, "timezone", "", "Local timezone name (default America/Vancouver)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log import progress")
}
