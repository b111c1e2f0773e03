package query

import (
	"testing"

	"policy-survey-api/internal/dataset"
	"policy-survey-api/internal/model"
)

// exampleRecords is the four-respondent dataset: support [1,0,1,1], gender [F,F,M,M]
func exampleRecords() []model.Record {
	return []model.Record{
		{Gender: "F", Race: "Asian", AgeGroup: "18-29", Education: "Bachelor", Income: "Low", Support: true},
		{Gender: "F", Race: "White", AgeGroup: "30-44", Education: "High School", Income: "Middle", Support: false},
		{Gender: "M", Race: "Asian", AgeGroup: "45-64", Education: "Master", Income: "High", Support: true},
		{Gender: "M", Race: "Black", AgeGroup: "30-44", Education: "Bachelor", Income: "Low", Support: true},
	}
}

func newExampleService(t *testing.T) *Service {
	t.Helper()
	return NewService(mustDataset(t, exampleRecords()))
}

func mustDataset(t *testing.T, records []model.Record) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.New(records)
	if err != nil {
		t.Fatalf("dataset.New failed: %v", err)
	}
	return ds
}
