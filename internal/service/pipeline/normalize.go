package pipeline

import (
	"github.com/ougirez/perdash/internal/domain"
	"github.com/ougirez/perdash/internal/domain/dto"
	"github.com/ougirez/perdash/internal/pkg/textmatch"
)

// NormalizeAssessments projects every assessment into the simplified nested
// shape. Areas and component responses are never dropped or reordered.
func NormalizeAssessments(assessments []domain.Assessment) []dto.NormalizedAssessment {
	res := make([]dto.NormalizedAssessment, 0, len(assessments))
	for _, a := range assessments {
		res = append(res, normalizeAssessment(a))
	}

	return res
}

func normalizeAssessment(a domain.Assessment) dto.NormalizedAssessment {
	areas := make([]dto.NormalizedArea, 0, len(a.AreaResponses))
	for _, area := range a.AreaResponses {
		components := make([]dto.NormalizedComponent, 0, len(area.ComponentResponses))
		for _, c := range area.ComponentResponses {
			components = append(components, normalizeComponent(c))
		}

		areas = append(areas, dto.NormalizedArea{ID: area.ID, ComponentResponses: components})
	}

	return dto.NormalizedAssessment{ID: a.ID, AreaResponses: areas}
}

func normalizeComponent(c domain.ComponentResponse) dto.NormalizedComponent {
	return dto.NormalizedComponent{
		ID:                                 c.ID,
		Component:                          c.Component,
		Rating:                             c.Rating,
		RatingDetails:                      c.RatingInfo(),
		ComponentDetails:                   c.ComponentInfo(),
		UrbanConsiderations:                c.UrbanConsiderations,
		EpiConsiderations:                  c.EpiConsiderations,
		ClimateEnvironmentalConsiderations: c.ClimateEnvironmentalConsiderations,
		MigrationConsiderations:            c.MigrationConsiderations,
		UrbanConsiderationsSimplified:      textmatch.IsAffirmative(c.UrbanConsiderations.Value()),
		EpiConsiderationsSimplified:        textmatch.IsAffirmative(c.EpiConsiderations.Value()),
		ClimateEnvironmentalConsiderationsSimplified: textmatch.IsAffirmative(c.ClimateEnvironmentalConsiderations.Value()),
		MigrationConsiderationsSimplified:            textmatch.IsAffirmative(c.MigrationConsiderations.Value()),
		Notes:                                        c.Notes,
	}
}

// AggregateConsiderations sets a flag for an assessment when any of its
// component responses, in any area, has that flag set.
func AggregateConsiderations(assessments []dto.NormalizedAssessment) map[int64]dto.Considerations {
	res := make(map[int64]dto.Considerations, len(assessments))
	for _, a := range assessments {
		var c dto.Considerations
		for _, area := range a.AreaResponses {
			for _, cr := range area.ComponentResponses {
				c.Epi = c.Epi || cr.EpiConsiderationsSimplified
				c.ClimateEnvironmental = c.ClimateEnvironmental || cr.ClimateEnvironmentalConsiderationsSimplified
				c.Urban = c.Urban || cr.UrbanConsiderationsSimplified
				c.Migration = c.Migration || cr.MigrationConsiderationsSimplified
			}
		}
		res[a.ID] = c
	}

	return res
}
