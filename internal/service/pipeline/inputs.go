package pipeline

import "github.com/ougirez/perdash/internal/domain"

// Inputs are the five fully materialized source collections. Overviews may be
// empty: the overview dataset is optional.
type Inputs struct {
	Statuses        []domain.Status
	Countries       []domain.Country
	Prioritizations []domain.Prioritization
	Assessments     []domain.Assessment
	Overviews       []domain.Overview
}
