// ABOUTME: Years command for per-year entry counts
// ABOUTME: Groups entries by the year of their local date
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/harper/diary/internal/db"
	"github.com/spf13/cobra"
)

var yearsJSONOutput bool

var yearsCmd = &cobra.Command{
	Use:   "years",
	Short: "Show entry counts per year",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		database, err := db.Open(cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close()

		counts, err := db.YearCounts(database)
		if err != nil {
			return fmt.Errorf("failed to count years: %w", err)
		}

		if yearsJSONOutput {
			data, err := json.MarshalIndent(counts, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		for _, yc := range counts {
			fmt.Printf("%d\t%d\n", yc.Year, yc.Count)
		}
		return nil
	},
}

func init() {
	yearsCmd.Flags().BoolVar(&yearsJSONOutput, "json", false, "Output as JSON")
	rootCmd.AddCommand(yearsCmd)
}
