// ABOUTME: Year command for listing one year's entries
// ABOUTME: Fetches entries by the year of their local date, oldest first
package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/harper/diary/internal/db"
	"github.com/spf13/cobra"
)

var yearJSONOutput bool

var yearCmd = &cobra.Command{
	Use:   "year <year>",
	Short: "List entries from one year",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		year, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid year %q", args[0])
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		loc, err := cfg.Location()
		if err != nil {
			return err
		}

		database, err := db.Open(cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close()

		entries, err := db.EntriesForYear(database, year)
		if err != nil {
			return fmt.Errorf("failed to list entries for %d: %w", year, err)
		}

		if yearJSONOutput {
			data, err := json.MarshalIndent(entries, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		fmt.Println("ID\tDate\t\tTime\tBody")
		fmt.Println("--\t----\t\t----\t----")
		for _, entry := range entries {
			localTime := time.Unix(entry.Timestamp, 0).In(loc).Format("15:04")
			fmt.Printf("%d\t%s\t%s\t%s\n", entry.ID, entry.Date, localTime, firstLine(entry.Body))
		}
		return nil
	},
}

func init() {
	yearCmd.Flags().BoolVar(&yearJSONOutput, "json", false, "Output as JSON")
	rootCmd.AddCommand(yearCmd)
}
