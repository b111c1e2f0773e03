package query

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoMatch is returned when filters select no respondents
var ErrNoMatch = errors.New("no respondents match the given filters")

// InvalidColumnError reports a grouping column outside the allow-list
type InvalidColumnError struct {
	Column string
	Valid  []string // sorted
}

func (e *InvalidColumnError) Error() string {
	return fmt.Sprintf("invalid group_by %q: must be one of %s", e.Column, strings.Join(e.Valid, ", "))
}
