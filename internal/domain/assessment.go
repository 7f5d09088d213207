package domain

type Assessment struct {
	ID            int64          `json:"id"`
	AreaResponses []AreaResponse `json:"area_responses"`
}

type AreaResponse struct {
	ID                 int64               `json:"id"`
	ComponentResponses []ComponentResponse `json:"component_responses"`
}

type ComponentResponse struct {
	ID                                 int64             `json:"id"`
	Component                          *int64            `json:"component"`
	Rating                             *int64            `json:"rating"`
	RatingDetails                      *RatingDetails    `json:"rating_details"`
	ComponentDetails                   *ComponentDetails `json:"component_details"`
	UrbanConsiderations                FreeText          `json:"urban_considerations"`
	EpiConsiderations                  FreeText          `json:"epi_considerations"`
	ClimateEnvironmentalConsiderations FreeText          `json:"climate_environmental_considerations"`
	MigrationConsiderations            FreeText          `json:"migration_considerations"`
	Notes                              FreeText          `json:"notes"`
}

type RatingDetails struct {
	ID    *int64  `json:"id"`
	Value *int64  `json:"value"`
	Title *string `json:"title"`
}

type ComponentDetails struct {
	ID           *int64  `json:"id"`
	ComponentNum *int64  `json:"component_num"`
	Area         *int64  `json:"area"`
	Title        *string `json:"title"`
	Description  *string `json:"description"`
}

// RatingInfo and ComponentInfo are the single defaulting points for the two
// optional nested objects of a component response.
func (c *ComponentResponse) RatingInfo() RatingDetails {
	if c.RatingDetails == nil {
		return RatingDetails{}
	}

	return *c.RatingDetails
}

func (c *ComponentResponse) ComponentInfo() ComponentDetails {
	if c.ComponentDetails == nil {
		return ComponentDetails{}
	}

	return *c.ComponentDetails
}

// HasComponentResponses reports whether any area carries at least one response.
func (a *Assessment) HasComponentResponses() bool {
	for _, area := range a.AreaResponses {
		if len(area.ComponentResponses) > 0 {
			return true
		}
	}

	return false
}
