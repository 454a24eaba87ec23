// ABOUTME: List command for displaying recent entries
// ABOUTME: Supports table and JSON output formats
package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/harper/diary/internal/db"
	"github.com/spf13/cobra"
)

var (
	listLimit      int
	listJSONOutput bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent entries",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		entries, err := db.RecentEntries(database, listLimit)
		if err != nil {
			return fmt.Errorf("failed to list entries: %w", err)
		}

		if listJSONOutput {
			data, err := json.MarshalIndent(entries, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			fmt.Println(string(data))
		} else {
			fmt.Println("ID\tDate\t\tTime\tBody")
			fmt.Println("--\t----\t\t----\t----")
			for _, entry := range entries {
				localTime := time.Unix(entry.Timestamp, 0).In(loc).Format("15:04")
				fmt.Printf("%d\t%s\t%s\t%s\n", entry.ID, entry.Date, localTime, firstLine(entry.Body))
			}
		}

		return nil
	},
}

// firstLine truncates body text to its first line for table output.
func firstLine(body string) string {
	for i, r := range body {
		if r == '\n' {
			return body[:i]
		}
	}
	return body
}

func init() {
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 8, "Number of entries to show")
	listCmd.Flags().BoolVar(&listJSONOutput, "json", false, "Output as JSON")
	rootCmd.AddCommand(listCmd)
}
