package pipeline

import (
	"sort"

	"github.com/ougirez/perdash/internal/domain/dto"
)

// GroupByComponent builds the component-centric dashboard table. Every joined
// record contributes one summary per component, or a single summary with a
// nil rating when it has no components.
func GroupByComponent(records []dto.JoinedRecord) []*dto.ComponentGroup {
	groups := dto.NewComponentGroups()
	for _, r := range records {
		if len(r.Components) == 0 {
			empty := groups.EmptyGroup()
			empty.Assessments = append(empty.Assessments, summaryOf(r, nil, ""))
			continue
		}

		for _, c := range r.Components {
			group := groups.GetGroup(c)
			rating := c.RatingValue
			group.Assessments = append(group.Assessments, summaryOf(r, &rating, c.RatingTitle))
		}
	}

	return groups.List()
}

func summaryOf(r dto.JoinedRecord, ratingValue *int64, ratingTitle string) dto.AssessmentSummary {
	return dto.AssessmentSummary{
		AssessmentID:     r.ID,
		AssessmentNumber: r.AssessmentNumber,
		CountryID:        r.CountryID,
		CountryName:      r.CountryName,
		RegionID:         r.RegionID,
		RegionName:       r.RegionName,
		DateOfAssessment: r.DateOfAssessment,
		RatingValue:      ratingValue,
		RatingTitle:      ratingTitle,
	}
}

// BuildCountryHistory groups joined records by country name and orders each
// country's entries by date. A missing date sorts as "" and ties keep their
// input order.
func BuildCountryHistory(records []dto.JoinedRecord) map[string][]dto.CountryHistoryEntry {
	res := make(map[string][]dto.CountryHistoryEntry)
	for _, r := range records {
		key := dto.NullCountryKey
		if r.CountryName != nil {
			key = *r.CountryName
		}

		res[key] = append(res[key], dto.CountryHistoryEntry{
			AssessmentNumber: r.AssessmentNumber,
			Date:             r.DateOfAssessment,
			Components:       r.Components,
			Phase:            r.Phase,
			PhaseDisplay:     r.PhaseDisplay,
		})
	}

	for _, entries := range res {
		sort.SliceStable(entries, func(i, j int) bool {
			return dateKey(entries[i].Date) < dateKey(entries[j].Date)
		})
	}

	return res
}

func dateKey(date *string) string {
	if date == nil {
		return ""
	}

	return *date
}
