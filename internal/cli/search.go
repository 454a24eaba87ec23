// ABOUTME: Search command for full-text queries
// ABOUTME: Supports FTS match text and date ranges
package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/araddon/dateparse"
	"github.com/harper/diary/internal/db"
	"github.com/spf13/cobra"
)

var (
	searchSince      string
	searchUntil      string
	searchLimit      int
	searchJSONOutput bool
)

var searchCmd = &cobra.Command{
	Use:   "search <text>",
	Short: "Search entries",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		loc, err := cfg.Location()
		if err != nil {
			return err
		}

		params := db.SearchParams{
			Text:  args[0],
			Limit: searchLimit,
		}

		if searchSince != "" {
			since, err := dateparse.ParseIn(searchSince, loc)
			if err != nil {
				return fmt.Errorf("invalid --since date: %w", err)
			}
			params.Since = &since
		}

		if searchUntil != "" {
			until, err := dateparse.ParseIn(searchUntil, loc)
			if err != nil {
				return fmt.Errorf("invalid --until date: %w", err)
			}
			params.Until = &until
		}

		database, err := db.Open(cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close()

		results, err := db.SearchEntries(database, params)
		if err != nil {
			return fmt.Errorf("failed to search entries: %w", err)
		}

		if searchJSONOutput {
			data, err := json.MarshalIndent(results, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		fmt.Println("ID\tDate\t\tTime\tMatch")
		fmt.Println("--\t----\t\t----\t-----")
		for _, r := range results {
			localTime := time.Unix(r.Timestamp, 0).In(loc).Format("15:04")
			fmt.Printf("%d\t%s\t%s\t%s\n", r.ID, r.Date, localTime, r.Snippet)
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().StringVar(&searchSince, "since", "", "Start date (natural language or ISO)")
	searchCmd.Flags().StringVar(&searchUntil, "until", "", "End date (natural language or ISO)")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 100, "Maximum results")
	searchCmd.Flags().BoolVar(&searchJSONOutput, "json", false, "Output as JSON")
	rootCmd.AddCommand(searchCmd)
}
