package dto

import "github.com/ougirez/perdash/internal/domain"

// NormalizedAssessment keeps the area -> component nesting of the source
// record with simplified nested objects and the derived consideration flags.
type NormalizedAssessment struct {
	ID            int64            `json:"id"`
	AreaResponses []NormalizedArea `json:"area_responses"`
}

type NormalizedArea struct {
	ID                 int64                 `json:"id"`
	ComponentResponses []NormalizedComponent `json:"component_responses"`
}

type NormalizedComponent struct {
	ID                                           int64                   `json:"id"`
	Component                                    *int64                  `json:"component"`
	Rating                                       *int64                  `json:"rating"`
	RatingDetails                                domain.RatingDetails    `json:"rating_details"`
	ComponentDetails                             domain.ComponentDetails `json:"component_details"`
	UrbanConsiderations                          domain.FreeText         `json:"urban_considerations"`
	EpiConsiderations                            domain.FreeText         `json:"epi_considerations"`
	ClimateEnvironmentalConsiderations           domain.FreeText         `json:"climate_environmental_considerations"`
	MigrationConsiderations                      domain.FreeText         `json:"migration_considerations"`
	UrbanConsiderationsSimplified                bool                    `json:"urban_considerations_simplified"`
	EpiConsiderationsSimplified                  bool                    `json:"epi_considerations_simplified"`
	ClimateEnvironmentalConsiderationsSimplified bool                    `json:"climate_environmental_considerations_simplified"`
	MigrationConsiderationsSimplified            bool                    `json:"migration_considerations_simplified"`
	Notes                                        domain.FreeText         `json:"notes"`
}

// Considerations is the per-assessment "any component says yes" summary.
type Considerations struct {
	Epi                  bool `json:"epi_considerations"`
	ClimateEnvironmental bool `json:"climate_environmental_considerations"`
	Urban                bool `json:"urban_considerations"`
	Migration            bool `json:"migration_considerations"`
}

// DashboardComponent is one component response flattened out of its area.
type DashboardComponent struct {
	ComponentID   *int64 `json:"component_id"`
	ComponentName string `json:"component_name"`
	ComponentNum  *int64 `json:"component_num"`
	AreaID        *int64 `json:"area_id"`
	AreaName      string `json:"area_name"`
	RatingValue   int64  `json:"rating_value"`
	RatingTitle   string `json:"rating_title"`
}
