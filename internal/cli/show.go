// ABOUTME: Show command for displaying a single entry
// ABOUTME: Fetches an entry by rowid and prints its body
package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/harper/diary/internal/db"
	"github.com/spf13/cobra"
)

var showJSONOutput bool

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid entry id %q", args[0])
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

		entry, err := db.GetEntry(database, id)
		if err != nil {
			return fmt.Errorf("failed to fetch entry: %w", err)
		}

		if showJSONOutput {
			data, err := json.MarshalIndent(entry, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		localTime := time.Unix(entry.Timestamp, 0).In(loc).Format("2006-01-02 15:04")
		color.Cyan("%s (entry %d)", localTime, entry.ID)
		fmt.Println(entry.Body)
		return nil
	},
}

func init() {
	showCmd.Flags().BoolVar(&showJSONOutput, "json", false, "Output as JSON")
	rootCmd.AddCommand(showCmd)
}
