package model

import (
	"encoding/json"
	"fmt"
)

// AggregateResult is the response body of /support and /support_by
type AggregateResult struct {
	Count       int     `json:"count"`
	SupportRate float64 `json:"support_rate"`
}

// GroupEntry is the support summary for one value of a grouping column.
// It encodes with the column name as the key of the group value, e.g.
// {"gender": "F", "count": 2, "support_rate": 0.5}.
type GroupEntry struct {
	Column      Column  `json:"-"`
	Value       string  `json:"-"`
	Count       int     `json:"count"`
	SupportRate float64 `json:"support_rate"`
}

// GroupResult is the response body of /grouped, ordered by group value
type GroupResult []GroupEntry

// MarshalJSON writes the group value first, keyed by the column name
func (g GroupEntry) MarshalJSON() ([]byte, error) {
	key, err := json.Marshal(string(g.Column))
	if err != nil {
		return nil, err
	}
	value, err := json.Marshal(g.Value)
	if err != nil {
		return nil, err
	}
	rate, err := json.Marshal(g.SupportRate)
	if err != nil {
		return nil, err
	}
	return []byte(fmt.Sprintf(`{%s:%s,"count":%d,"support_rate":%s}`, key, value, g.Count, rate)), nil
}
