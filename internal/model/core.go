package model

// Column names a categorical attribute of a survey response
type Column string

const (
	ColumnGender    Column = "gender"
	ColumnRace      Column = "race"
	ColumnAgeGroup  Column = "age_group"
	ColumnEducation Column = "education"
	ColumnIncome    Column = "income"
)

// SupportColumn is the header of the support indicator column
const SupportColumn = "policy_support"

// Columns lists the categorical columns in dataset order. It doubles as the
// group_by allow-list.
var Columns = []Column{
	ColumnGender,
	ColumnRace,
	ColumnAgeGroup,
	ColumnEducation,
	ColumnIncome,
}

// ParseColumn returns the column called name. Matching is exact.
func ParseColumn(name string) (Column, bool) {
	for _, c := range Columns {
		if string(c) == name {
			return c, true
		}
	}
	return "", false
}

// RequiredHeaders returns every header a data source must provide
func RequiredHeaders() []string {
	headers := make([]string, 0, len(Columns)+1)
	for _, c := range Columns {
		headers = append(headers, string(c))
	}
	return append(headers, SupportColumn)
}

// Record represents a single survey respondent
type Record struct {
	Gender    string `json:"gender"`
	Race      string `json:"race"`
	AgeGroup  string `json:"age_group"`
	Education string `json:"education"`
	Income    string `json:"income"`
	Support   bool   `json:"policy_support"`
}

// Value returns the record's value for a categorical column
func (r Record) Value(c Column) string {
	switch c {
	case ColumnGender:
		return r.Gender
	case ColumnRace:
		return r.Race
	case ColumnAgeGroup:
		return r.AgeGroup
	case ColumnEducation:
		return r.Education
	case ColumnIncome:
		return r.Income
	default:
		return ""
	}
}

// Indicator returns the support flag as 1.0 or 0.0
func (r Record) Indicator() float64 {
	if r.Support {
		return 1
	}
	return 0
}
