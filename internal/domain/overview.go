package domain

// Overview is the authenticated per-overview record; ID equals a Status id.
type Overview struct {
	ID                                int64 `json:"id"`
	AssessPreparednessOfCountry       *bool `json:"assess_preparedness_of_country"`
	AssessUrbanAspectOfCountry        *bool `json:"assess_urban_aspect_of_country"`
	AssessClimateEnvironmentOfCountry *bool `json:"assess_climate_environment_of_country"`
	AssessMigrationAspectOfCountry    *bool `json:"assess_migration_aspect_of_country"`
}
