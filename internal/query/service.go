// Package query answers support-rate questions over a loaded dataset.
package query

import (
	"fmt"

	"policy-survey-api/internal/dataset"
	"policy-survey-api/internal/model"
)

// Service runs the read-only survey queries. It holds no mutable state and is
// safe for concurrent use.
type Service struct {
	ds *dataset.Dataset
}

// NewService creates a query service over ds
func NewService(ds *dataset.Dataset) *Service {
	return &Service{ds: ds}
}

// Dataset returns the dataset the service reads from
func (s *Service) Dataset() *dataset.Dataset {
	return s.ds
}

// OverallSupport summarizes the whole dataset
func (s *Service) OverallSupport() model.AggregateResult {
	return Summarize(s.ds.Records())
}

// SupportBy summarizes the respondents matching spec. It returns ErrNoMatch
// when none do.
func (s *Service) SupportBy(spec model.FilterSpec) (model.AggregateResult, error) {
	subset := Apply(s.ds.Records(), spec)
	if len(subset) == 0 {
		return model.AggregateResult{}, fmt.Errorf("support by %s: %w", spec, ErrNoMatch)
	}
	return Summarize(subset), nil
}

// Grouped returns per-value support for column
func (s *Service) Grouped(column string) (model.GroupResult, error) {
	return GroupBy(s.ds.Records(), column)
}
