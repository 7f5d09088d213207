package pipeline

import (
	"github.com/ougirez/perdash/internal/domain"
	"github.com/ougirez/perdash/internal/domain/dto"
)

var phaseDisplayLabels = map[string]string{
	"Action And Accountability": "Action & accountability",
	"WorkPlan":                  "Workplan",
}

func remapPhaseDisplay(display *string) *string {
	if display == nil {
		return nil
	}
	if label, ok := phaseDisplayLabels[*display]; ok {
		return &label
	}

	return display
}

// JoinStatuses emits exactly one joined record per status, in input order.
// Unresolvable references fall back to empty defaults instead of dropping the
// status.
func JoinStatuses(
	statuses []domain.Status,
	lookups Lookups,
	considerations map[int64]dto.Considerations,
	components map[int64][]dto.DashboardComponent,
) []dto.JoinedRecord {
	res := make([]dto.JoinedRecord, 0, len(statuses))
	for _, status := range statuses {
		res = append(res, joinStatus(status, lookups, considerations, components))
	}

	return res
}

func joinStatus(
	status domain.Status,
	lookups Lookups,
	considerations map[int64]dto.Considerations,
	components map[int64][]dto.DashboardComponent,
) dto.JoinedRecord {
	inline := status.Details()

	var country countryEntry
	if inline.ISO3 != nil {
		country = lookups.Countries[*inline.ISO3]
	}

	regionID := country.Region
	if regionID == nil {
		regionID = inline.Region
	}

	record := dto.JoinedRecord{
		ID:                    status.ID,
		AssessmentNumber:      status.AssessmentNumber,
		DateOfAssessment:      status.DateOfAssessment,
		CountryID:             status.Country,
		CountryName:           firstNonEmpty(inline.Name, country.Name),
		Phase:                 status.Phase,
		PhaseDisplay:          remapPhaseDisplay(status.PhaseDisplay.OrDefault("")),
		TypeOfAssessment:      status.TypeOfAssessment,
		TypeOfAssessmentName:  status.TypeOfAssessmentName(),
		CountryISO3:           firstNonEmpty(inline.ISO3, country.ISO3),
		RegionID:              regionID,
		RegionName:            domain.RegionName(regionID),
		Latitude:              country.Centroid.Latitude(),
		Longitude:             country.Centroid.Longitude(),
		UpdatedAt:             status.UpdatedAt,
		PrioritizedComponents: []dto.PrioritizedComponent{},
		Components:            []dto.DashboardComponent{},
	}

	if prioritized, ok := lookups.Prioritized[status.ID]; ok {
		record.PrioritizedComponents = prioritized
	}
	if overview, ok := lookups.Overviews[status.ID]; ok {
		record.OverviewFlags = overview
	}

	if status.Assessment != nil {
		record.Considerations = considerations[*status.Assessment]
		if dc, ok := components[*status.Assessment]; ok {
			record.Components = dc
		}
	}

	return record
}

// firstNonEmpty prefers the inline value; an empty inline string counts as absent.
func firstNonEmpty(inline, fallback *string) *string {
	if inline != nil && *inline != "" {
		return inline
	}

	return fallback
}
