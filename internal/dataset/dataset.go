// Package dataset loads the survey responses served by the API. A Dataset is
// built once at startup and never changes afterwards, so it can be shared by
// any number of concurrent readers without locking.
package dataset

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"policy-survey-api/internal/model"
)

// Dataset is an immutable, ordered set of survey responses
type Dataset struct {
	records []model.Record
}

// New builds a Dataset from records. Every record must carry a value for
// each categorical column.
func New(records []model.Record) (*Dataset, error) {
	for i, rec := range records {
		if col, ok := missingValue(rec); ok {
			return nil, fmt.Errorf("record %d: empty value for column %s", i+1, col)
		}
	}
	return &Dataset{records: slices.Clone(records)}, nil
}

// Load reads the dataset at path. SQLite files are recognised by extension;
// anything else is parsed as CSV.
func Load(path string) (*Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return LoadSQLite(path)
	default:
		return LoadCSV(path)
	}
}

// Len returns the number of records
func (d *Dataset) Len() int {
	return len(d.records)
}

// Records returns a copy of the records in load order
func (d *Dataset) Records() []model.Record {
	return slices.Clone(d.records)
}

func missingValue(rec model.Record) (model.Column, bool) {
	for _, c := range model.Columns {
		if rec.Value(c) == "" {
			return c, true
		}
	}
	return "", false
}
