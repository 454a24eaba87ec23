// ABOUTME: Import command for loading entry files into the database
// ABOUTME: Runs the directory importer inside a single transaction
package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harper/diary/internal/db"
	"github.com/harper/diary/internal/importer"
	"github.com/harper/diary/internal/logging"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import [dir]",
	Short: "Import entry files from a directory",
	Long: `Import every file in a directory as a diary entry.

File names encode the entry's local timestamp as year-month-day-hour-minute
without leading zeroes, e.g. 2023-2-3-15-59.md. The file body becomes the
entry text. The whole run commits as one transaction; any bad filename or
I/O error aborts the run and leaves the database untouched.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		dir := cfg.DocsDir
		if len(args) > 0 {
			dir = args[0]
		}

		loc, err := cfg.Location()
		if err != nil {
			return err
		}

		database, err := db.Open(cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer func() {
			if closeErr := database.Close(); closeErr != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to close database: %v\n", closeErr)
			}
		}()

		imp := importer.New(database, loc, logging.New(cmd.ErrOrStderr(), verbose))
		count, err := imp.Run(cmd.Context(), dir)
		if err != nil {
			return err
		}

		color.Green("Imported %d entries from %s", count, dir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
