package pipeline

import (
	"context"
	"testing"

	"github.com/ougirez/perdash/internal/domain"
	"github.com/ougirez/perdash/internal/pkg/constants"
	"github.com/ougirez/perdash/internal/pkg/store"
	"github.com/stretchr/testify/require"
)

const (
	statusJSON = `{"results": [
		{"id": 1, "country": 117, "country_details": {"iso3": "KEN", "region": 0}, "assessment": 10,
		 "assessment_number": 1, "date_of_assessment": "2023-05-01", "phase": 4, "phase_display": "WorkPlan",
		 "type_of_assessment": 1, "type_of_assessment_details": {"id": 1, "name": "Self assessment"},
		 "updated_at": "2023-06-01T10:00:00Z"},
		{"id": 2, "country": 117, "country_details": {"iso3": "KEN", "name": "", "region": 0}, "assessment": 11,
		 "assessment_number": 2, "date_of_assessment": "2021-02-01", "phase": 5, "phase_display": "Action And Accountability"},
		{"id": 3, "country": 9, "country_details": {"iso3": "XXX", "name": "Atlantis", "region": 3}, "assessment": 99,
		 "phase_display": "Orientation"}
	]}`

	countriesJSON = `{"results": [
		{"id": 117, "iso3": "KEN", "name": "Kenya", "region": 0,
		 "centroid": {"type": "Point", "coordinates": [37.9, 0.02]}},
		{"id": 50, "iso3": "ESP", "name": "Spain", "region": 4, "centroid": {"type": "Point", "coordinates": [3.7]}},
		{"id": 51, "iso3": null, "name": "Nowhere", "region": 1}
	]}`

	prioritizationJSON = `{"results": [
		{"id": 7, "overview": 1, "prioritized_action_responses": [
			{"id": 70, "component": 5, "component_details": {"id": 5, "title": "Hazard, context and risk analysis",
			 "description": "first", "area": {"id": 2, "title": "Analysis and planning"}}},
			{"id": 71, "component": 14, "component_details": {"id": 14, "title": "Early warning",
			 "description": "ews", "area": {"id": 3, "title": "Operational capacity"}}}
		]},
		{"id": 8, "overview": null, "prioritized_action_responses": [
			{"id": 80, "component": 5, "component_details": {"id": 5, "title": "Hazard, context and risk analysis",
			 "description": "second", "area": {"id": 2, "title": "Analysis and planning"}}},
			{"id": 81, "component": 0, "component_details": {"id": 0, "title": "Zero"}}
		]}
	]}`

	assessmentsJSON = `{"results": [
		{"id": 10, "area_responses": [
			{"id": 1, "component_responses": [
				{"id": 100, "component": 5, "rating": 3,
				 "rating_details": {"id": 3, "value": 3, "title": "High"},
				 "component_details": {"id": 5, "component_num": 2, "area": 2, "title": "Hazard, context and risk analysis"},
				 "urban_considerations": "Yes", "epi_considerations": "No aplica", "notes": ["legacy",1]}
			]},
			{"id": 2, "component_responses": [
				{"id": 101, "component": 14, "rating_details": null, "component_details": {"id": 14, "area": 42},
				 "migration_considerations": "Sí, en parte"}
			]}
		]},
		{"id": 11, "area_responses": [{"id": 3, "component_responses": []}]}
	]}`

	overviewJSON = `{"results": [
		{"id": 1, "assess_preparedness_of_country": true, "assess_urban_aspect_of_country": false,
		 "assess_climate_environment_of_country": null, "assess_migration_aspect_of_country": true}
	]}`
)

func decodeFixture[T any](t *testing.T, key, body string) []T {
	t.Helper()

	items, err := DecodeCollection[T](key, []byte(body))
	require.NoError(t, err)
	return items
}

func fixtureInputs(t *testing.T) Inputs {
	t.Helper()

	return Inputs{
		Statuses:        decodeFixture[domain.Status](t, constants.DatasetStatus, statusJSON),
		Countries:       decodeFixture[domain.Country](t, constants.DatasetCountries, countriesJSON),
		Prioritizations: decodeFixture[domain.Prioritization](t, constants.DatasetPrioritization, prioritizationJSON),
		Assessments:     decodeFixture[domain.Assessment](t, constants.DatasetAssessments, assessmentsJSON),
		Overviews:       decodeFixture[domain.Overview](t, constants.DatasetOverview, overviewJSON),
	}
}

func seedStore(t *testing.T, withOverview bool) store.Store {
	t.Helper()

	ctx := context.Background()
	st := store.NewMemory()
	docs := map[string]string{
		constants.DatasetStatus:         statusJSON,
		constants.DatasetCountries:      countriesJSON,
		constants.DatasetPrioritization: prioritizationJSON,
		constants.DatasetAssessments:    assessmentsJSON,
	}
	if withOverview {
		docs[constants.DatasetOverview] = overviewJSON
	}

	for key, body := range docs {
		_, err := store.WriteAll(ctx, st, key, []byte(body))
		require.NoError(t, err)
	}

	return st
}

func ptr[T any](v T) *T {
	return &v
}
