package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"
)

// ResponsesTable holds one survey response per row
const ResponsesTable = "responses"

// Row is a raw row of the responses table. Values are scanned as text so the
// caller decides how to coerce them.
type Row struct {
	Gender    sql.NullString
	Race      sql.NullString
	AgeGroup  sql.NullString
	Education sql.NullString
	Income    sql.NullString
	Support   sql.NullString
}

// Open opens an existing SQLite database read-only. It never creates the file.
func Open(dbPath string) (*sql.DB, error) {
	if _, err := os.Stat(dbPath); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", "file:"+dbPath+"?mode=ro")
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// ReadResponses returns every row of the responses table in rowid order
func ReadResponses(ctx context.Context, db *sql.DB) ([]Row, error) {
	query := fmt.Sprintf(`SELECT gender, race, age_group, education, income, policy_support FROM %s ORDER BY rowid`, ResponsesTable)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var r Row
		if err := rows.Scan(&r.Gender, &r.Race, &r.AgeGroup, &r.Education, &r.Income, &r.Support); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
