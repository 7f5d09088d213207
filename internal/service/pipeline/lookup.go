package pipeline

import (
	"github.com/ougirez/perdash/internal/domain"
	"github.com/ougirez/perdash/internal/domain/dto"
	"github.com/samber/lo"
)

type countryEntry struct {
	Centroid *domain.Centroid
	ISO3     *string
	Region   *int64
	Name     *string
}

// Lookups index the side datasets for the status join. Duplicate keys are
// resolved last-write-wins.
type Lookups struct {
	Countries             map[string]countryEntry
	Overviews             map[int64]dto.OverviewFlags
	Prioritized           map[int64][]dto.PrioritizedComponent
	ComponentDescriptions map[int64]dto.ComponentDescription
}

func BuildLookups(in Inputs) Lookups {
	return Lookups{
		Countries:             buildCountryLookup(in.Countries),
		Overviews:             buildOverviewLookup(in.Overviews),
		Prioritized:           buildPrioritizationLookup(in.Prioritizations),
		ComponentDescriptions: buildComponentDescriptions(in.Prioritizations),
	}
}

// Countries without an iso3 code are skipped: no status can reference them.
func buildCountryLookup(countries []domain.Country) map[string]countryEntry {
	res := make(map[string]countryEntry, len(countries))
	for _, c := range countries {
		if c.ISO3 == nil {
			continue
		}
		res[*c.ISO3] = countryEntry{
			Centroid: c.Centroid,
			ISO3:     c.ISO3,
			Region:   c.Region,
			Name:     c.Name,
		}
	}

	return res
}

func buildOverviewLookup(overviews []domain.Overview) map[int64]dto.OverviewFlags {
	res := make(map[int64]dto.OverviewFlags, len(overviews))
	for _, o := range overviews {
		res[o.ID] = dto.OverviewFlags{
			AssessPreparednessOfCountry:       o.AssessPreparednessOfCountry,
			AssessUrbanAspectOfCountry:        o.AssessUrbanAspectOfCountry,
			AssessClimateEnvironmentOfCountry: o.AssessClimateEnvironmentOfCountry,
			AssessMigrationAspectOfCountry:    o.AssessMigrationAspectOfCountry,
		}
	}

	return res
}

// buildPrioritizationLookup is keyed by the record's overview field, which
// holds a status id.
func buildPrioritizationLookup(items []domain.Prioritization) map[int64][]dto.PrioritizedComponent {
	res := make(map[int64][]dto.PrioritizedComponent, len(items))
	for _, item := range items {
		if item.Overview == nil {
			continue
		}

		res[*item.Overview] = lo.Map(item.PrioritizedActionResponses, func(r domain.PrioritizedActionResponse, _ int) dto.PrioritizedComponent {
			details := r.Details()
			return dto.PrioritizedComponent{
				ComponentID:    r.Component,
				ComponentTitle: details.Title,
				AreaTitle:      details.AreaTitle(),
			}
		})
	}

	return res
}

// buildComponentDescriptions spans every prioritization record; a later
// record overwrites an earlier one for the same component id.
func buildComponentDescriptions(items []domain.Prioritization) map[int64]dto.ComponentDescription {
	res := make(map[int64]dto.ComponentDescription)
	for _, item := range items {
		for _, r := range item.PrioritizedActionResponses {
			details := r.Details()
			if details.ID == nil || *details.ID == 0 {
				continue
			}

			res[*details.ID] = dto.ComponentDescription{
				ComponentTitle: details.Title,
				AreaTitle:      details.AreaTitle(),
				Description:    details.Description,
			}
		}
	}

	return res
}
