package dataset

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strings"

	"policy-survey-api/internal/model"
	"policy-survey-api/internal/store"
	"policy-survey-api/pkg/utils"
)

// LoadSQLite reads survey responses from the responses table of a SQLite
// database file
func LoadSQLite(path string) (*Dataset, error) {
	db, err := store.Open(path)
	if err != nil {
		reason := "failed to open SQLite database"
		if errors.Is(err, fs.ErrNotExist) {
			reason = "expected data file here; generate the dataset and place it in the data directory"
		}
		return nil, &LoadError{Path: path, Reason: reason, Err: err}
	}
	defer db.Close()

	rows, err := store.ReadResponses(context.Background(), db)
	if err != nil {
		return nil, &LoadError{Path: path, Reason: fmt.Sprintf("failed to read table %s", store.ResponsesTable), Err: err}
	}

	records := make([]model.Record, 0, len(rows))
	for i, row := range rows {
		rec, err := fromRow(row)
		if err != nil {
			return nil, &LoadError{Path: path, Row: i + 1, Reason: "invalid record", Err: err}
		}
		records = append(records, rec)
	}

	ds, err := New(records)
	if err != nil {
		return nil, &LoadError{Path: path, Reason: "invalid dataset", Err: err}
	}
	log.Printf("🗄️ SQLite ingestion done: %d records read from %s", ds.Len(), path)
	return ds, nil
}

func fromRow(row store.Row) (model.Record, error) {
	var rec model.Record
	values := map[model.Column]string{
		model.ColumnGender:    row.Gender.String,
		model.ColumnRace:      row.Race.String,
		model.ColumnAgeGroup:  row.AgeGroup.String,
		model.ColumnEducation: row.Education.String,
		model.ColumnIncome:    row.Income.String,
	}
	for _, c := range model.Columns {
		v := strings.TrimSpace(values[c])
		if v == "" {
			return rec, fmt.Errorf("empty value for column %s", c)
		}
		setValue(&rec, c, v)
	}

	if !row.Support.Valid {
		return rec, fmt.Errorf("column %s: value is NULL", model.SupportColumn)
	}
	support, err := utils.ParseIndicator(row.Support.String)
	if err != nil {
		return rec, fmt.Errorf("column %s: %w", model.SupportColumn, err)
	}
	rec.Support = support
	return rec, nil
}
