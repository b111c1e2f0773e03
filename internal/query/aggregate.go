package query

import (
	"math"
	"sort"

	"policy-survey-api/internal/model"
)

// Rate returns the share of records that support the policy, at full
// precision. It is exactly 0 for no records.
func Rate(records []model.Record) float64 {
	if len(records) == 0 {
		return 0
	}
	var sum float64
	for _, rec := range records {
		sum += rec.Indicator()
	}
	return sum / float64(len(records))
}

// Round3 rounds a rate to 3 decimal places for presentation. Ties go to
// the even digit, so 0.0625 becomes 0.062.
func Round3(x float64) float64 {
	return math.RoundToEven(x*1000) / 1000
}

// Summarize returns the count and rounded support rate of records
func Summarize(records []model.Record) model.AggregateResult {
	return model.AggregateResult{
		Count:       len(records),
		SupportRate: Round3(Rate(records)),
	}
}

// groupAccumulator collects the running totals for one group value
type groupAccumulator struct {
	count     int
	supported float64
}

// GroupBy partitions records by the distinct values of column and returns one
// entry per value, sorted by value
func GroupBy(records []model.Record, column string) (model.GroupResult, error) {
	col, ok := model.ParseColumn(column)
	if !ok {
		return nil, &InvalidColumnError{Column: column, Valid: ValidColumns()}
	}

	groups := make(map[string]*groupAccumulator)
	for _, rec := range records {
		key := rec.Value(col)
		acc, exists := groups[key]
		if !exists {
			acc = &groupAccumulator{}
			groups[key] = acc
		}
		acc.count++
		acc.supported += rec.Indicator()
	}

	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := make(model.GroupResult, 0, len(keys))
	for _, key := range keys {
		acc := groups[key]
		result = append(result, model.GroupEntry{
			Column:      col,
			Value:       key,
			Count:       acc.count,
			SupportRate: Round3(acc.supported / float64(acc.count)),
		})
	}
	return result, nil
}

// ValidColumns returns the grouping allow-list, sorted
func ValidColumns() []string {
	valid := make([]string, 0, len(model.Columns))
	for _, c := range model.Columns {
		valid = append(valid, string(c))
	}
	sort.Strings(valid)
	return valid
}
