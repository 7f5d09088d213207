package dto

// Outputs are the four derived datasets of one pipeline run.
type Outputs struct {
	ProcessedAssessments  ProcessedAssessments
	MapData               []JoinedRecord
	ComponentDescriptions map[int64]ComponentDescription
	Dashboard             Dashboard
}

type ProcessedAssessments struct {
	Results []NormalizedAssessment `json:"results"`
}

type LastUpdate struct {
	LastUpdate string `json:"lastUpdate"`
}
