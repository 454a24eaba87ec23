// ABOUTME: Init command for provisioning the database schema
// ABOUTME: Applies the embedded migrations; import assumes this has run
package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harper/diary/internal/db"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create or update the diary database schema",
	Long: `Create the entries table and its entrytext full-text index.

Schema setup is a separate step on purpose: import never creates tables and
fails if they are missing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		database, err := db.Open(cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer func() { _ = database.Close() }()

		if err := db.Migrate(cmd.Context(), database); err != nil {
			return err
		}

		color.Green("Database ready: %s", cfg.Database)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
