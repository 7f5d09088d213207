package dto

// PrioritizedComponent is one prioritised action of a status record.
type PrioritizedComponent struct {
	ComponentID    *int64  `json:"componentId"`
	ComponentTitle *string `json:"componentTitle"`
	AreaTitle      *string `json:"areaTitle"`
}

type ComponentDescription struct {
	ComponentTitle *string `json:"componentTitle"`
	AreaTitle      *string `json:"areaTitle"`
	Description    *string `json:"description"`
}

// OverviewFlags are the country-level assess_* answers; all nil when the
// overview dataset has no record for the status.
type OverviewFlags struct {
	AssessPreparednessOfCountry       *bool `json:"assess_preparedness_of_country"`
	AssessUrbanAspectOfCountry        *bool `json:"assess_urban_aspect_of_country"`
	AssessClimateEnvironmentOfCountry *bool `json:"assess_climate_environment_of_country"`
	AssessMigrationAspectOfCountry    *bool `json:"assess_migration_aspect_of_country"`
}

// JoinedRecord is one status record enriched with everything the map view needs.
type JoinedRecord struct {
	ID                    int64                  `json:"id"`
	AssessmentNumber      *int64                 `json:"assessment_number"`
	DateOfAssessment      *string                `json:"date_of_assessment"`
	CountryID             *int64                 `json:"country_id"`
	CountryName           *string                `json:"country_name"`
	Phase                 *int64                 `json:"phase"`
	PhaseDisplay          *string                `json:"phase_display"`
	TypeOfAssessment      *int64                 `json:"type_of_assessment"`
	TypeOfAssessmentName  *string                `json:"type_of_assessment_name"`
	CountryISO3           *string                `json:"country_iso3"`
	RegionID              *int64                 `json:"region_id"`
	RegionName            *string                `json:"region_name"`
	Latitude              *float64               `json:"latitude"`
	Longitude             *float64               `json:"longitude"`
	UpdatedAt             *string                `json:"updated_at"`
	PrioritizedComponents []PrioritizedComponent `json:"prioritized_components"`
	Considerations
	OverviewFlags
	Components []DashboardComponent `json:"components"`
}
