package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strings"

	"policy-survey-api/internal/model"
	"policy-survey-api/pkg/utils"
)

// LoadCSV reads survey responses from a CSV file with a header row
func LoadCSV(path string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		reason := "failed to open CSV file"
		if errors.Is(err, fs.ErrNotExist) {
			reason = "expected data file here; generate the dataset and place it in the data directory"
		}
		return nil, &LoadError{Path: path, Reason: reason, Err: err}
	}
	defer file.Close()

	ds, err := ReadCSV(file, path)
	if err != nil {
		return nil, err
	}
	log.Printf("📄 CSV ingestion done: %d records read from %s", ds.Len(), path)
	return ds, nil
}

// ReadCSV parses survey responses from r. name identifies the source in
// errors.
func ReadCSV(r io.Reader, name string) (*Dataset, error) {
	csvReader := csv.NewReader(r)
	csvReader.LazyQuotes = true

	headers, err := csvReader.Read()
	if err != nil {
		return nil, &LoadError{Path: name, Reason: "failed to read CSV header", Err: err}
	}

	index, err := headerIndex(headers)
	if err != nil {
		return nil, &LoadError{Path: name, Reason: "malformed header", Err: err}
	}

	var records []model.Record
	row := 0
	for {
		fields, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			return nil, &LoadError{Path: name, Row: row, Reason: "CSV read error", Err: err}
		}

		rec, err := parseRow(fields, index)
		if err != nil {
			return nil, &LoadError{Path: name, Row: row, Reason: "invalid record", Err: err}
		}
		records = append(records, rec)
	}

	return New(records)
}

// headerIndex maps each required header to its column position
func headerIndex(headers []string) (map[string]int, error) {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		// Clean header names: trim whitespace, BOM and ALL quotes
		clean := strings.TrimPrefix(h, "\ufeff")
		clean = strings.TrimSpace(clean)
		clean = strings.ReplaceAll(clean, `"`, "")
		if _, dup := index[clean]; !dup {
			index[clean] = i
		}
	}

	for _, field := range model.RequiredHeaders() {
		if _, ok := index[field]; !ok {
			return nil, fmt.Errorf("missing required column: %s", field)
		}
	}
	return index, nil
}

func parseRow(fields []string, index map[string]int) (model.Record, error) {
	var rec model.Record
	for _, c := range model.Columns {
		v := strings.TrimSpace(fields[index[string(c)]])
		if v == "" {
			return rec, fmt.Errorf("empty value for column %s", c)
		}
		setValue(&rec, c, v)
	}

	support, err := utils.ParseIndicator(fields[index[model.SupportColumn]])
	if err != nil {
		return rec, fmt.Errorf("column %s: %w", model.SupportColumn, err)
	}
	rec.Support = support
	return rec, nil
}

func setValue(rec *model.Record, c model.Column, v string) {
	switch c {
	case model.ColumnGender:
		rec.Gender = v
	case model.ColumnRace:
		rec.Race = v
	case model.ColumnAgeGroup:
		rec.AgeGroup = v
	case model.ColumnEducation:
		rec.Education = v
	case model.ColumnIncome:
		rec.Income = v
	}
}
