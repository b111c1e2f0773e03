package model

import "strings"

// FilterSpec is the set of optional filters accepted by GET /support_by.
// An empty field places no constraint on its column.
type FilterSpec struct {
	Gender    string `json:"gender,omitempty"`
	Race      string `json:"race,omitempty"`
	AgeGroup  string `json:"age_group,omitempty"`
	Education string `json:"education,omitempty"`
	Income    string `json:"income,omitempty"`
}

// Constraint is one column = value predicate taken from a FilterSpec
type Constraint struct {
	Column Column
	Value  string
}

// Value returns the filter value set for a column
func (f FilterSpec) Value(c Column) string {
	switch c {
	case ColumnGender:
		return f.Gender
	case ColumnRace:
		return f.Race
	case ColumnAgeGroup:
		return f.AgeGroup
	case ColumnEducation:
		return f.Education
	case ColumnIncome:
		return f.Income
	default:
		return ""
	}
}

// Set assigns value to the field for column c. Unknown columns are ignored.
func (f *FilterSpec) Set(c Column, value string) {
	switch c {
	case ColumnGender:
		f.Gender = value
	case ColumnRace:
		f.Race = value
	case ColumnAgeGroup:
		f.AgeGroup = value
	case ColumnEducation:
		f.Education = value
	case ColumnIncome:
		f.Income = value
	}
}

// Constraints returns the non-empty filters in column order
func (f FilterSpec) Constraints() []Constraint {
	var out []Constraint
	for _, c := range Columns {
		if v := f.Value(c); v != "" {
			out = append(out, Constraint{Column: c, Value: v})
		}
	}
	return out
}

// IsEmpty reports whether no filter is set
func (f FilterSpec) IsEmpty() bool {
	return len(f.Constraints()) == 0
}

func (f FilterSpec) String() string {
	constraints := f.Constraints()
	if len(constraints) == 0 {
		return "no filters"
	}
	parts := make([]string, len(constraints))
	for i, c := range constraints {
		parts[i] = string(c.Column) + "=" + c.Value
	}
	return strings.Join(parts, ",")
}
