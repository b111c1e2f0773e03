package query

import (
	"strings"

	"policy-survey-api/internal/model"
)

// Apply returns the records matching every non-empty field of spec.
// Values are compared after lowercasing both sides; an empty spec keeps
// every record. The input slice is never modified.
func Apply(records []model.Record, spec model.FilterSpec) []model.Record {
	constraints := spec.Constraints()
	// Pre-build lowercase filter values once per call
	for i := range constraints {
		constraints[i].Value = strings.ToLower(constraints[i].Value)
	}

	out := make([]model.Record, 0, len(records))
	for _, rec := range records {
		if matches(rec, constraints) {
			out = append(out, rec)
		}
	}
	return out
}

func matches(rec model.Record, constraints []model.Constraint) bool {
	for _, c := range constraints {
		if strings.ToLower(rec.Value(c.Column)) != c.Value {
			return false
		}
	}
	return true
}
