package pipeline

import "github.com/ougirez/perdash/internal/domain/dto"

// Process turns the five source collections into the four derived datasets.
// It is pure: the same inputs always produce the same outputs.
func Process(in Inputs) *dto.Outputs {
	lookups := BuildLookups(in)

	normalized := NormalizeAssessments(in.Assessments)
	considerations := AggregateConsiderations(normalized)
	components := FlattenAssessments(in.Assessments)

	joined := JoinStatuses(in.Statuses, lookups, considerations, components)

	return &dto.Outputs{
		ProcessedAssessments:  dto.ProcessedAssessments{Results: normalized},
		MapData:               joined,
		ComponentDescriptions: lookups.ComponentDescriptions,
		Dashboard: dto.Dashboard{
			Assessments:        GroupByComponent(joined),
			CountryAssessments: BuildCountryHistory(joined),
		},
	}
}
