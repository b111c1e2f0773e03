package query

import (
	"reflect"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"policy-survey-api/internal/model"
)

func genRecord() gopter.Gen {
	return gopter.CombineGens(
		gen.OneConstOf("Female", "Male", "Nonbinary"),
		gen.OneConstOf("Asian", "Black", "Hispanic", "White", "Other"),
		gen.OneConstOf("18-29", "30-44", "45-64", "65+"),
		gen.OneConstOf("High School", "Bachelor", "Master", "PhD"),
		gen.OneConstOf("Low", "Middle", "High"),
		gen.Bool(),
	).Map(func(values []interface{}) model.Record {
		return model.Record{
			Gender:    values[0].(string),
			Race:      values[1].(string),
			AgeGroup:  values[2].(string),
			Education: values[3].(string),
			Income:    values[4].(string),
			Support:   values[5].(bool),
		}
	})
}

func genRecords() gopter.Gen {
	return gen.SliceOf(genRecord(), reflect.TypeOf(model.Record{}))
}

func newProperties() *gopter.Properties {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	return gopter.NewProperties(parameters)
}

func TestProperty_Summary(t *testing.T) {
	properties := newProperties()

	properties.Property("overall count equals dataset size", prop.ForAll(
		func(records []model.Record) bool {
			svc := NewService(mustDataset(t, records))
			return svc.OverallSupport().Count == len(records)
		},
		genRecords(),
	))

	properties.Property("support rate is within [0,1] and zero exactly for empty input", prop.ForAll(
		func(records []model.Record) bool {
			result := Summarize(records)
			if result.SupportRate < 0 || result.SupportRate > 1 {
				return false
			}
			if result.Count == 0 {
				return result.SupportRate == 0
			}
			return true
		},
		genRecords(),
	))

	properties.Property("queries are idempotent", prop.ForAll(
		func(records []model.Record, column string) bool {
			svc := NewService(mustDataset(t, records))
			if svc.OverallSupport() != svc.OverallSupport() {
				return false
			}
			first, err1 := svc.Grouped(column)
			second, err2 := svc.Grouped(column)
			return err1 == nil && err2 == nil && reflect.DeepEqual(first, second)
		},
		genRecords(),
		gen.OneConstOf("gender", "race", "age_group", "education", "income"),
	))

	properties.TestingRun(t)
}

func TestProperty_Filters(t *testing.T) {
	properties := newProperties()

	properties.Property("AND composition matches successive filtering", prop.ForAll(
		func(records []model.Record, gender, race string) bool {
			both := Apply(records, model.FilterSpec{Gender: gender, Race: race})
			genderFirst := Apply(Apply(records, model.FilterSpec{Gender: gender}), model.FilterSpec{Race: race})
			raceFirst := Apply(Apply(records, model.FilterSpec{Race: race}), model.FilterSpec{Gender: gender})
			return reflect.DeepEqual(both, genderFirst) && reflect.DeepEqual(both, raceFirst)
		},
		genRecords(),
		gen.OneConstOf("Female", "Male", "Nonbinary"),
		gen.OneConstOf("Asian", "Black", "Hispanic", "White", "Other"),
	))

	properties.Property("filter values are case insensitive", prop.ForAll(
		func(records []model.Record, gender string) bool {
			lower := Apply(records, model.FilterSpec{Gender: strings.ToLower(gender)})
			upper := Apply(records, model.FilterSpec{Gender: strings.ToUpper(gender)})
			return reflect.DeepEqual(lower, upper)
		},
		genRecords(),
		gen.OneConstOf("Female", "Male", "Nonbinary", "unknown"),
	))

	properties.Property("empty filter keeps every record", prop.ForAll(
		func(records []model.Record) bool {
			return len(Apply(records, model.FilterSpec{})) == len(records)
		},
		genRecords(),
	))

	properties.TestingRun(t)
}

func TestProperty_Grouping(t *testing.T) {
	properties := newProperties()

	properties.Property("group counts sum to dataset size", prop.ForAll(
		func(records []model.Record) bool {
			for _, column := range model.Columns {
				groups, err := GroupBy(records, string(column))
				if err != nil {
					return false
				}
				total := 0
				for _, g := range groups {
					total += g.Count
				}
				if total != len(records) {
					return false
				}
			}
			return true
		},
		genRecords(),
	))

	properties.Property("groups are sorted and distinct", prop.ForAll(
		func(records []model.Record, column string) bool {
			groups, err := GroupBy(records, column)
			if err != nil {
				return false
			}
			for i := 1; i < len(groups); i++ {
				if groups[i-1].Value >= groups[i].Value {
					return false
				}
			}
			return true
		},
		genRecords(),
		gen.OneConstOf("gender", "race", "age_group", "education", "income"),
	))

	properties.Property("invalid columns always error", prop.ForAll(
		func(records []model.Record, column string) bool {
			if _, ok := model.ParseColumn(column); ok {
				return true
			}
			groups, err := GroupBy(records, column)
			return groups == nil && err != nil
		},
		genRecords(),
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
