// ABOUTME: Entry persistence and queries
// ABOUTME: Handles the entries table and its entrytext full-text mirror
package db

import (
	"database/sql"
	"fmt"
	"time"
)

// Entry is one diary record. ID is the SQLite rowid; Timestamp is epoch
// seconds; Date is the local calendar date the timestamp fell on.
type Entry struct {
	ID        int64  `json:"id"`
	Timestamp int64  `json:"timestamp"`
	Date      string `json:"date"`
	Body      string `json:"body"`
}

// AddEntry appends one entry row and its entrytext mirror row inside the
// caller's transaction. The two tables stay rowid-aligned because every
// write goes through here.
func AddEntry(tx *sql.Tx, timestamp int64, date, body string) error {
	if _, err := tx.Exec(
		"INSERT INTO entries (timestamp, date, body) VALUES (?, ?, ?)",
		timestamp, date, body,
	); err != nil {
		return err
	}

	if _, err := tx.Exec("INSERT INTO entrytext (body) VALUES (?)", body); err != nil {
		return err
	}

	return nil
}

// RecentEntries returns the most recent entries, limited by limit
func RecentEntries(database *sql.DB, limit int) ([]Entry, error) {
	query := `
		SELECT rowid, timestamp, date, body
		FROM entries
		ORDER BY timestamp DESC
		LIMIT ?
	`

	rows, err := database.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

// GetEntry returns the entry with the given rowid.
func GetEntry(database *sql.DB, id int64) (Entry, error) {
	var entry Entry
	err := database.QueryRow(
		"SELECT rowid, timestamp, date, body FROM entries WHERE rowid = ?", id,
	).Scan(&entry.ID, &entry.Timestamp, &entry.Date, &entry.Body)
	if err == sql.ErrNoRows {
		return Entry{}, fmt.Errorf("no entry with id %d", id)
	}
	if err != nil {
		return Entry{}, err
	}
	return entry, nil
}

// EntriesForYear returns all entries whose local date falls in year,
// oldest first.
func EntriesForYear(database *sql.DB, year int) ([]Entry, error) {
	query := `
		SELECT rowid, timestamp, date, body
		FROM entries
		WHERE CAST(strftime('%Y', date) AS INTEGER) = ?
		ORDER BY timestamp
	`

	rows, err := database.Query(query, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

// YearCount is the number of entries dated within one calendar year.
type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// YearCounts returns entry counts grouped by the year of the local date,
// most recent year first.
func YearCounts(database *sql.DB) ([]YearCount, error) {
	query := `
		SELECT CAST(strftime('%Y', date) AS INTEGER) AS year, COUNT(*) AS cnt
		FROM entries
		GROUP BY year
		ORDER BY year DESC
	`

	rows, err := database.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []YearCount
	for rows.Next() {
		var yc YearCount
		if err := rows.Scan(&yc.Year, &yc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, yc)
	}

	return counts, rows.Err()
}

type SearchParams struct {
	Text  string
	Since *time.Time
	Until *time.Time
	Limit int
}

// SearchResult is one full-text match with a snippet of the matching body.
type SearchResult struct {
	ID        int64  `json:"id"`
	Timestamp int64  `json:"timestamp"`
	Date      string `json:"date"`
	Snippet   string `json:"snippet"`
}

// SearchEntries runs a full-text match against entrytext, joined back to
// entries by rowid.
func SearchEntries(database *sql.DB, params SearchParams) ([]SearchResult, error) {
	query := `
		SELECT entries.rowid, entries.timestamp, entries.date,
			snippet(entrytext, 0, '', '', '...', 32)
		FROM entrytext
		JOIN entries ON entries.rowid = entrytext.rowid
		WHERE entrytext MATCH ?
	`
	args := []interface{}{params.Text}

	if params.Since != nil {
		query += " AND entries.timestamp >= ?"
		args = append(args, params.Since.Unix())
	}
	if params.Until != nil {
		query += " AND entries.timestamp <= ?"
		args = append(args, params.Until.Unix())
	}

	query += " ORDER BY entries.timestamp DESC"

	if params.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, params.Limit)
	}

	rows, err := database.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []SearchResult
	for rows.Next() {
		var r SearchResult
		if err := rows.Scan(&r.ID, &r.Timestamp, &r.Date, &r.Snippet); err != nil {
			return nil, err
		}
		results = append(results, r)
	}

	return results, rows.Err()
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var entry Entry
		if err := rows.Scan(&entry.ID, &entry.Timestamp, &entry.Date, &entry.Body); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
