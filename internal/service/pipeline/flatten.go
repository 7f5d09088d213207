package pipeline

import (
	"github.com/ougirez/perdash/internal/domain"
	"github.com/ougirez/perdash/internal/domain/dto"
)

// FlattenAssessments lists every component response of each assessment,
// regardless of area nesting, keyed by assessment id. When ids repeat, the
// first assessment with that id is kept.
func FlattenAssessments(assessments []domain.Assessment) map[int64][]dto.DashboardComponent {
	res := make(map[int64][]dto.DashboardComponent, len(assessments))
	for _, a := range assessments {
		if _, ok := res[a.ID]; ok {
			continue
		}
		res[a.ID] = flattenAssessment(a)
	}

	return res
}

func flattenAssessment(a domain.Assessment) []dto.DashboardComponent {
	components := make([]dto.DashboardComponent, 0)
	for _, area := range a.AreaResponses {
		for _, c := range area.ComponentResponses {
			details := c.ComponentInfo()
			rating := c.RatingInfo()

			dc := dto.DashboardComponent{
				ComponentID:  c.Component,
				ComponentNum: details.ComponentNum,
				AreaID:       details.Area,
				AreaName:     domain.AreaName(details.Area),
			}
			if details.Title != nil {
				dc.ComponentName = *details.Title
			}
			if rating.Value != nil {
				dc.RatingValue = *rating.Value
			}
			if rating.Title != nil {
				dc.RatingTitle = *rating.Title
			}

			components = append(components, dc)
		}
	}

	return components
}
