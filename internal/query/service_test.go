package query

import (
	"errors"
	"testing"

	"policy-survey-api/internal/model"
)

func TestServiceExampleScenario(t *testing.T) {
	svc := newExampleService(t)

	if got, want := svc.OverallSupport(), (model.AggregateResult{Count: 4, SupportRate: 0.75}); got != want {
		t.Errorf("OverallSupport() = %+v, want %+v", got, want)
	}

	got, err := svc.SupportBy(model.FilterSpec{Gender: "F"})
	if err != nil {
		t.Fatalf("SupportBy(F) failed: %v", err)
	}
	if want := (model.AggregateResult{Count: 2, SupportRate: 0.5}); got != want {
		t.Errorf("SupportBy(F) = %+v, want %+v", got, want)
	}

	groups, err := svc.Grouped("gender")
	if err != nil {
		t.Fatalf("Grouped(gender) failed: %v", err)
	}
	want := model.GroupResult{
		{Column: model.ColumnGender, Value: "F", Count: 2, SupportRate: 0.5},
		{Column: model.ColumnGender, Value: "M", Count: 2, SupportRate: 1},
	}
	if len(groups) != len(want) {
		t.Fatalf("Grouped(gender) = %+v, want %+v", groups, want)
	}
	for i := range want {
		if groups[i] != want[i] {
			t.Errorf("group %d = %+v, want %+v", i, groups[i], want[i])
		}
	}
}

// One supporter per gender gives 0.5 overall and 0.5 in each group.
func TestServiceBalancedScenario(t *testing.T) {
	records := []model.Record{
		{Gender: "F", Race: "a", AgeGroup: "a", Education: "a", Income: "a", Support: true},
		{Gender: "F", Race: "a", AgeGroup: "a", Education: "a", Income: "a", Support: false},
		{Gender: "M", Race: "a", AgeGroup: "a", Education: "a", Income: "a", Support: true},
		{Gender: "M", Race: "a", AgeGroup: "a", Education: "a", Income: "a", Support: false},
	}
	svc := NewService(mustDataset(t, records))

	if got := svc.OverallSupport(); got.Count != 4 || got.SupportRate != 0.5 {
		t.Errorf("OverallSupport() = %+v", got)
	}
	groups, err := svc.Grouped("gender")
	if err != nil {
		t.Fatalf("Grouped failed: %v", err)
	}
	for _, g := range groups {
		if g.Count != 2 || g.SupportRate != 0.5 {
			t.Errorf("unexpected group %+v", g)
		}
	}
}

func TestServiceSupportByNoMatch(t *testing.T) {
	svc := newExampleService(t)

	_, err := svc.SupportBy(model.FilterSpec{Gender: "Nonbinary"})
	if !errors.Is(err, ErrNoMatch) {
		t.Fatalf("SupportBy(Nonbinary) error = %v, want ErrNoMatch", err)
	}
}

func TestServiceSupportByEmptySpec(t *testing.T) {
	svc := newExampleService(t)

	got, err := svc.SupportBy(model.FilterSpec{})
	if err != nil {
		t.Fatalf("SupportBy(empty) failed: %v", err)
	}
	if got != svc.OverallSupport() {
		t.Errorf("SupportBy(empty) = %+v, want overall %+v", got, svc.OverallSupport())
	}
}

func TestServiceEmptyDataset(t *testing.T) {
	svc := NewService(mustDataset(t, nil))

	if got := svc.OverallSupport(); got != (model.AggregateResult{}) {
		t.Errorf("OverallSupport() on empty dataset = %+v", got)
	}
	if _, err := svc.SupportBy(model.FilterSpec{}); !errors.Is(err, ErrNoMatch) {
		t.Errorf("SupportBy on empty dataset error = %v, want ErrNoMatch", err)
	}
	groups, err := svc.Grouped("race")
	if err != nil || len(groups) != 0 {
		t.Errorf("Grouped on empty dataset = %+v, %v", groups, err)
	}
}

func TestServiceGroupedInvalidColumn(t *testing.T) {
	svc := newExampleService(t)

	_, err := svc.Grouped("zip_code")
	var colErr *InvalidColumnError
	if !errors.As(err, &colErr) {
		t.Fatalf("Grouped(zip_code) error = %v, want *InvalidColumnError", err)
	}
	if len(colErr.Valid) != len(model.Columns) {
		t.Errorf("Valid = %v, want %d options", colErr.Valid, len(model.Columns))
	}
}

func TestServiceIdempotent(t *testing.T) {
	svc := newExampleService(t)

	if svc.OverallSupport() != svc.OverallSupport() {
		t.Error("OverallSupport is not idempotent")
	}

	first, _ := svc.Grouped("race")
	second, _ := svc.Grouped("race")
	if len(first) != len(second) {
		t.Fatalf("Grouped lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Grouped entry %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}
