package domain

// Status is one PER process-status record: one assessment cycle of one country.
type Status struct {
	ID                      int64                    `json:"id"`
	Country                 *int64                   `json:"country"`
	CountryDetails          *CountryDetails          `json:"country_details"`
	Assessment              *int64                   `json:"assessment"`
	AssessmentNumber        *int64                   `json:"assessment_number"`
	DateOfAssessment        *string                  `json:"date_of_assessment"`
	Phase                   *int64                   `json:"phase"`
	PhaseDisplay            OptionalString           `json:"phase_display"`
	TypeOfAssessment        *int64                   `json:"type_of_assessment"`
	TypeOfAssessmentDetails *TypeOfAssessmentDetails `json:"type_of_assessment_details"`
	UpdatedAt               *string                  `json:"updated_at"`
}

type CountryDetails struct {
	ISO3   *string `json:"iso3"`
	Name   *string `json:"name"`
	Region *int64  `json:"region"`
}

type TypeOfAssessmentDetails struct {
	ID   *int64  `json:"id"`
	Name *string `json:"name"`
}

// Details never returns nil so callers can read inline fields directly.
func (s *Status) Details() CountryDetails {
	if s.CountryDetails == nil {
		return CountryDetails{}
	}

	return *s.CountryDetails
}

func (s *Status) TypeOfAssessmentName() *string {
	if s.TypeOfAssessmentDetails == nil {
		return nil
	}

	return s.TypeOfAssessmentDetails.Name
}
