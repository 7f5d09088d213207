package pipeline

import (
	"testing"
	"time"

	"github.com/ougirez/perdash/internal/domain"
	"github.com/ougirez/perdash/internal/domain/dto"
	"github.com/ougirez/perdash/internal/pkg/codec"
	"github.com/ougirez/perdash/internal/pkg/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessJoinsKenyaStatus(t *testing.T) {
	out := Process(fixtureInputs(t))
	require.Len(t, out.MapData, 3)

	r := out.MapData[0]
	assert.Equal(t, int64(1), r.ID)
	assert.Equal(t, ptr("Kenya"), r.CountryName)
	assert.Equal(t, ptr("KEN"), r.CountryISO3)
	assert.Equal(t, ptr(int64(0)), r.RegionID)
	assert.Equal(t, ptr("Africa"), r.RegionName)
	assert.Equal(t, ptr(0.02), r.Latitude)
	assert.Equal(t, ptr(37.9), r.Longitude)
	assert.Equal(t, ptr("Self assessment"), r.TypeOfAssessmentName)
	assert.Equal(t, ptr("Workplan"), r.PhaseDisplay)

	assert.True(t, r.Urban)
	assert.True(t, r.Migration)
	assert.False(t, r.Epi)
	assert.False(t, r.ClimateEnvironmental)

	assert.Equal(t, ptr(true), r.AssessPreparednessOfCountry)
	assert.Equal(t, ptr(false), r.AssessUrbanAspectOfCountry)
	assert.Nil(t, r.AssessClimateEnvironmentOfCountry)
	assert.Equal(t, ptr(true), r.AssessMigrationAspectOfCountry)

	assert.Equal(t, []dto.PrioritizedComponent{
		{ComponentID: ptr(int64(5)), ComponentTitle: ptr("Hazard, context and risk analysis"), AreaTitle: ptr("Analysis and planning")},
		{ComponentID: ptr(int64(14)), ComponentTitle: ptr("Early warning"), AreaTitle: ptr("Operational capacity")},
	}, r.PrioritizedComponents)

	assert.Equal(t, []dto.DashboardComponent{
		{
			ComponentID:   ptr(int64(5)),
			ComponentName: "Hazard, context and risk analysis",
			ComponentNum:  ptr(int64(2)),
			AreaID:        ptr(int64(2)),
			AreaName:      "Analysis and planning",
			RatingValue:   3,
			RatingTitle:   "High",
		},
		{
			ComponentID: ptr(int64(14)),
			AreaID:      ptr(int64(42)),
		},
	}, r.Components)
}

func TestProcessDefaults(t *testing.T) {
	out := Process(fixtureInputs(t))

	t.Run("empty inline name falls back to lookup", func(t *testing.T) {
		r := out.MapData[1]
		assert.Equal(t, ptr("Kenya"), r.CountryName)
		assert.Equal(t, ptr("Action & accountability"), r.PhaseDisplay)
		assert.Empty(t, r.PrioritizedComponents)
		assert.NotNil(t, r.PrioritizedComponents)
		assert.NotNil(t, r.Components)
		assert.Empty(t, r.Components)
	})

	t.Run("unknown country keeps the status", func(t *testing.T) {
		r := out.MapData[2]
		assert.Equal(t, int64(3), r.ID)
		assert.Equal(t, ptr("Atlantis"), r.CountryName)
		assert.Equal(t, ptr("XXX"), r.CountryISO3)
		assert.Equal(t, ptr("Europe"), r.RegionName)
		assert.Nil(t, r.Latitude)
		assert.Nil(t, r.Longitude)
		assert.Equal(t, ptr("Orientation"), r.PhaseDisplay)
		assert.Equal(t, dto.Considerations{}, r.Considerations)
		assert.Equal(t, dto.OverviewFlags{}, r.OverviewFlags)
		assert.Empty(t, r.Components)
	})
}

func TestProcessWithoutOverviews(t *testing.T) {
	in := fixtureInputs(t)
	in.Overviews = nil

	out := Process(in)
	for _, r := range out.MapData {
		assert.Equal(t, dto.OverviewFlags{}, r.OverviewFlags)
	}

	b, err := codec.Marshal(out.MapData[0])
	require.NoError(t, err)
	assert.Contains(t, string(b), `"assess_preparedness_of_country":null`)
	assert.Contains(t, string(b), `"assess_migration_aspect_of_country":null`)
}

func TestProcessKeepsEveryStatus(t *testing.T) {
	in := fixtureInputs(t)
	in.Countries = nil
	in.Prioritizations = nil
	in.Assessments = nil
	in.Overviews = nil

	out := Process(in)
	require.Len(t, out.MapData, len(in.Statuses))
	for i, r := range out.MapData {
		assert.Equal(t, in.Statuses[i].ID, r.ID)
	}
}

func TestComponentDescriptions(t *testing.T) {
	out := Process(fixtureInputs(t))

	require.Len(t, out.ComponentDescriptions, 2)
	assert.Equal(t, ptr("second"), out.ComponentDescriptions[5].Description)
	assert.Equal(t, ptr("ews"), out.ComponentDescriptions[14].Description)
	assert.NotContains(t, out.ComponentDescriptions, int64(0))
}

func TestNormalizeAssessments(t *testing.T) {
	in := fixtureInputs(t)
	normalized := NormalizeAssessments(in.Assessments)

	require.Len(t, normalized, len(in.Assessments))
	for i, a := range normalized {
		require.Len(t, a.AreaResponses, len(in.Assessments[i].AreaResponses))
		for j, area := range a.AreaResponses {
			assert.Equal(t, in.Assessments[i].AreaResponses[j].ID, area.ID)
			assert.Len(t, area.ComponentResponses, len(in.Assessments[i].AreaResponses[j].ComponentResponses))
		}
	}

	first := normalized[0].AreaResponses[0].ComponentResponses[0]
	assert.True(t, first.UrbanConsiderationsSimplified)
	assert.False(t, first.EpiConsiderationsSimplified)
	assert.Equal(t, ptr(int64(3)), first.RatingDetails.Value)
	assert.Equal(t, "Yes", first.UrbanConsiderations.Value())

	b, err := codec.Marshal(first)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"notes":["legacy",1]`)
	assert.Contains(t, string(b), `"climate_environmental_considerations":null`)

	second := normalized[0].AreaResponses[1].ComponentResponses[0]
	assert.Equal(t, domain.RatingDetails{}, second.RatingDetails)
	assert.True(t, second.MigrationConsiderationsSimplified)
}

func TestFlattenFirstAssessmentWins(t *testing.T) {
	assessments := decodeFixture[domain.Assessment](t, constants.DatasetAssessments, `{"results": [
		{"id": 1, "area_responses": [{"id": 1, "component_responses": [{"id": 1, "component": 1}]}]},
		{"id": 1, "area_responses": [{"id": 2, "component_responses": [{"id": 2, "component": 2}, {"id": 3, "component": 3}]}]}
	]}`)

	flat := FlattenAssessments(assessments)
	require.Len(t, flat[1], 1)
	assert.Equal(t, ptr(int64(1)), flat[1][0].ComponentID)
}

func TestGroupByComponent(t *testing.T) {
	out := Process(fixtureInputs(t))
	groups := out.Dashboard.Assessments
	require.Len(t, groups, 2)

	first := groups[0]
	assert.Equal(t, ptr(int64(5)), first.ComponentID)
	require.Len(t, first.Assessments, 3)
	assert.Equal(t, ptr(int64(3)), first.Assessments[0].RatingValue)
	assert.Equal(t, "High", first.Assessments[0].RatingTitle)

	// component-less records land in the first bucket
	assert.Equal(t, int64(2), first.Assessments[1].AssessmentID)
	assert.Nil(t, first.Assessments[1].RatingValue)
	assert.Equal(t, "", first.Assessments[1].RatingTitle)
	assert.Equal(t, int64(3), first.Assessments[2].AssessmentID)

	assert.Equal(t, ptr(int64(14)), groups[1].ComponentID)
	assert.Len(t, groups[1].Assessments, 1)
	assert.Equal(t, ptr(int64(0)), groups[1].Assessments[0].RatingValue)
}

func TestGroupByComponentSyntheticBucket(t *testing.T) {
	records := []dto.JoinedRecord{
		{ID: 1, Components: []dto.DashboardComponent{}},
		{ID: 2, Components: []dto.DashboardComponent{{ComponentID: ptr(int64(7)), RatingValue: 2}}},
		{ID: 3},
	}

	groups := GroupByComponent(records)
	require.Len(t, groups, 2)

	synthetic := groups[0]
	assert.Nil(t, synthetic.ComponentID)
	assert.Nil(t, synthetic.AreaID)
	require.Len(t, synthetic.Assessments, 2)
	assert.Equal(t, int64(1), synthetic.Assessments[0].AssessmentID)
	assert.Equal(t, int64(3), synthetic.Assessments[1].AssessmentID)

	assert.Equal(t, ptr(int64(7)), groups[1].ComponentID)
	assert.Len(t, groups[1].Assessments, 1)
}

// Every component occurrence and every component-less record yields exactly
// one summary.
func TestGroupByComponentCounts(t *testing.T) {
	out := Process(fixtureInputs(t))

	want := 0
	for _, r := range out.MapData {
		want += max(len(r.Components), 1)
	}

	got := 0
	for _, g := range out.Dashboard.Assessments {
		got += len(g.Assessments)
	}
	assert.Equal(t, want, got)
}

func TestBuildCountryHistory(t *testing.T) {
	records := []dto.JoinedRecord{
		{ID: 1, CountryName: ptr("Kenya"), AssessmentNumber: ptr(int64(1)), DateOfAssessment: ptr("2023-05-01")},
		{ID: 2, CountryName: ptr("Kenya"), AssessmentNumber: ptr(int64(2)), DateOfAssessment: ptr("2021-02-01")},
		{ID: 3, CountryName: ptr("Kenya"), AssessmentNumber: ptr(int64(3))},
		{ID: 4, CountryName: ptr("Kenya"), AssessmentNumber: ptr(int64(4)), DateOfAssessment: ptr("2021-02-01")},
		{ID: 5, AssessmentNumber: ptr(int64(5)), PhaseDisplay: ptr("Workplan")},
	}

	history := BuildCountryHistory(records)
	require.Len(t, history, 2)

	numbers := make([]int64, 0)
	for _, e := range history["Kenya"] {
		numbers = append(numbers, *e.AssessmentNumber)
	}
	assert.Equal(t, []int64{3, 2, 4, 1}, numbers)

	require.Len(t, history[dto.NullCountryKey], 1)
	assert.Equal(t, ptr("Workplan"), history[dto.NullCountryKey][0].PhaseDisplay)
}

func TestRemapPhaseDisplay(t *testing.T) {
	tests := []struct {
		name string
		in   *string
		want *string
	}{
		{name: "workplan", in: ptr("WorkPlan"), want: ptr("Workplan")},
		{name: "accountability", in: ptr("Action And Accountability"), want: ptr("Action & accountability")},
		{name: "passthrough", in: ptr("Assessment"), want: ptr("Assessment")},
		{name: "case sensitive", in: ptr("workplan"), want: ptr("workplan")},
		{name: "nil", in: nil, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, remapPhaseDisplay(tt.in))
		})
	}
}

func TestRegionFallsBackToInline(t *testing.T) {
	statuses := decodeFixture[domain.Status](t, constants.DatasetStatus, `{"results": [
		{"id": 1, "country_details": {"iso3": "ESP", "region": 3}},
		{"id": 2, "country_details": {"iso3": "FRA", "region": 3}},
		{"id": 3, "country_details": null}
	]}`)
	countries := decodeFixture[domain.Country](t, constants.DatasetCountries, `{"results": [
		{"id": 50, "iso3": "ESP", "name": "Spain", "region": 4, "centroid": {"type": "Point", "coordinates": [3.7]}},
		{"id": 60, "iso3": "FRA", "name": "France", "region": null}
	]}`)

	out := Process(Inputs{Statuses: statuses, Countries: countries})
	require.Len(t, out.MapData, 3)

	assert.Equal(t, ptr("MENA"), out.MapData[0].RegionName)
	assert.Equal(t, ptr(3.7), out.MapData[0].Longitude)
	assert.Nil(t, out.MapData[0].Latitude)

	assert.Equal(t, ptr(int64(3)), out.MapData[1].RegionID)
	assert.Equal(t, ptr("France"), out.MapData[1].CountryName)

	assert.Nil(t, out.MapData[2].CountryName)
	assert.Nil(t, out.MapData[2].RegionID)
	assert.Nil(t, out.MapData[2].RegionName)
}

func TestEncodeIsDeterministic(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	first, err := Encode(Process(fixtureInputs(t)), now)
	require.NoError(t, err)
	second, err := Encode(Process(fixtureInputs(t)), now)
	require.NoError(t, err)

	require.Len(t, first, 5)
	for i := range first {
		assert.Equal(t, first[i].Key, second[i].Key)
		assert.Equal(t, string(first[i].Data), string(second[i].Data), first[i].Key)
	}

	last := first[len(first)-1]
	assert.Equal(t, constants.DatasetLastUpdate, last.Key)
	assert.JSONEq(t, `{"lastUpdate": "2024-03-01T12:00:00Z"}`, string(last.Data))
}

func TestCentroidShapes(t *testing.T) {
	tests := []struct {
		name     string
		centroid string
		wantLat  *float64
		wantLong *float64
	}{
		{name: "point", centroid: `{"type": "Point", "coordinates": [37.9, 0.02]}`, wantLat: ptr(0.02), wantLong: ptr(37.9)},
		{name: "longitude only", centroid: `{"type": "Point", "coordinates": [37.9]}`, wantLong: ptr(37.9)},
		{name: "null latitude", centroid: `{"type": "Point", "coordinates": [37.9, null]}`, wantLong: ptr(37.9)},
		{name: "coordinates as string", centroid: `{"type": "Point", "coordinates": "37.9,0.02"}`},
		{name: "string numbers", centroid: `{"type": "Point", "coordinates": ["37.9", "0.02"]}`},
		{name: "wkt string", centroid: `"POINT(37.9 0.02)"`},
		{name: "number", centroid: `42`},
		{name: "null", centroid: `null`},
		{name: "empty object", centroid: `{}`},
	}

	statuses := decodeFixture[domain.Status](t, constants.DatasetStatus,
		`{"results": [{"id": 1, "country_details": {"iso3": "KEN"}}]}`)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			countries := decodeFixture[domain.Country](t, constants.DatasetCountries,
				`{"results": [{"id": 117, "iso3": "KEN", "name": "Kenya", "region": 0, "centroid": `+tt.centroid+`}]}`)
			require.Len(t, countries, 1)

			out := Process(Inputs{Statuses: statuses, Countries: countries})
			require.Len(t, out.MapData, 1)

			r := out.MapData[0]
			assert.Equal(t, ptr("Kenya"), r.CountryName)
			assert.Equal(t, tt.wantLat, r.Latitude)
			assert.Equal(t, tt.wantLong, r.Longitude)
		})
	}
}

// A lookup region of 0 is a real region (Africa) and wins over the inline one.
func TestRegionZeroIsKept(t *testing.T) {
	statuses := decodeFixture[domain.Status](t, constants.DatasetStatus, `{"results": [
		{"id": 1, "country_details": {"iso3": "KEN", "region": 2}},
		{"id": 2, "country_details": {"iso3": "KEN"}}
	]}`)
	countries := decodeFixture[domain.Country](t, constants.DatasetCountries,
		`{"results": [{"id": 117, "iso3": "KEN", "name": "Kenya", "region": 0}]}`)

	out := Process(Inputs{Statuses: statuses, Countries: countries})
	require.Len(t, out.MapData, 2)

	for _, r := range out.MapData {
		assert.Equal(t, ptr(int64(0)), r.RegionID)
		assert.Equal(t, ptr("Africa"), r.RegionName)
	}
}

func TestPhaseDisplayMissingKey(t *testing.T) {
	statuses := decodeFixture[domain.Status](t, constants.DatasetStatus, `{"results": [
		{"id": 1, "country_details": {"name": "Kenya"}, "date_of_assessment": "2020-01-01"},
		{"id": 2, "country_details": {"name": "Kenya"}, "date_of_assessment": "2021-01-01", "phase_display": "WorkPlan"}
	]}`)

	out := Process(Inputs{Statuses: statuses})
	require.Len(t, out.MapData, 2)
	assert.Equal(t, ptr(""), out.MapData[0].PhaseDisplay)
	assert.Equal(t, ptr("Workplan"), out.MapData[1].PhaseDisplay)

	history := out.Dashboard.CountryAssessments["Kenya"]
	require.Len(t, history, 2)
	assert.Equal(t, ptr(""), history[0].PhaseDisplay)

	b, err := codec.Marshal(out.MapData[0])
	require.NoError(t, err)
	assert.Contains(t, string(b), `"phase_display":""`)
}
