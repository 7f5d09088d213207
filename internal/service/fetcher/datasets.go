package fetcher

import "github.com/ougirez/perdash/internal/pkg/constants"

// Dataset binds a GO API endpoint to the store key its results are kept under.
type Dataset struct {
	Key  string
	Path string
	// Auth datasets need the API token and are optional: a failure is
	// reported but does not fail the fetch.
	Auth bool
}

var (
	StatusDataset         = Dataset{Key: constants.DatasetStatus, Path: "public-per-process-status/"}
	CountriesDataset      = Dataset{Key: constants.DatasetCountries, Path: "country/"}
	PrioritizationDataset = Dataset{Key: constants.DatasetPrioritization, Path: "public-per-prioritization/"}
	AssessmentsDataset    = Dataset{Key: constants.DatasetAssessments, Path: "public-per-assessment/"}
	OverviewDataset       = Dataset{Key: constants.DatasetOverview, Path: "per-overview/", Auth: true}
)

var PublicDatasets = []Dataset{
	StatusDataset,
	CountriesDataset,
	PrioritizationDataset,
	AssessmentsDataset,
}
