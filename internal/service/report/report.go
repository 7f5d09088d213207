package report

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/ougirez/perdash/internal/domain"
	"github.com/ougirez/perdash/internal/domain/dto"
	"github.com/ougirez/perdash/internal/pkg/codec"
	"github.com/ougirez/perdash/internal/pkg/constants"
	"github.com/ougirez/perdash/internal/pkg/store"
	"github.com/ougirez/perdash/internal/service/pipeline"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type Report struct {
	Assessments          AssessmentsReport   `json:"assessments"`
	Status               CountedDataset      `json:"status"`
	MapData              CountedDataset      `json:"map_data"`
	ProcessedAssessments int                 `json:"processed_assessments"`
	Dashboard            DashboardReport     `json:"dashboard"`
	AreaRatings          []AreaRatingSummary `json:"area_ratings"`
}

type AssessmentsReport struct {
	Total                     int `json:"total"`
	WithComponentResponses    int `json:"with_component_responses"`
	WithoutComponentResponses int `json:"without_component_responses"`
}

type CountedDataset struct {
	Total           int `json:"total"`
	UniqueCountries int `json:"unique_countries"`
}

type DashboardReport struct {
	UniqueAssessments int `json:"unique_assessments"`
	UniqueCountries   int `json:"unique_countries"`
}

type AreaRatingSummary struct {
	AreaID     *int64          `json:"area_id"`
	AreaName   string          `json:"area_name"`
	Components int             `json:"components"`
	MeanRating decimal.Decimal `json:"mean_rating"`
}

type Service struct {
	store store.Store
}

func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// Build reads the raw and processed datasets back from the store and
// summarizes them.
func (s *Service) Build(ctx context.Context) (*Report, error) {
	assessments, err := readCollection[domain.Assessment](ctx, s.store, constants.DatasetAssessments)
	if err != nil {
		return nil, err
	}
	statuses, err := readCollection[domain.Status](ctx, s.store, constants.DatasetStatus)
	if err != nil {
		return nil, err
	}
	processed, err := readCollection[dto.NormalizedAssessment](ctx, s.store, constants.DatasetAssessmentsProcessed)
	if err != nil {
		return nil, err
	}

	var mapData []dto.JoinedRecord
	if err := readJSON(ctx, s.store, constants.DatasetMapData, &mapData); err != nil {
		return nil, err
	}

	var dashboard dto.Dashboard
	if err := readJSON(ctx, s.store, constants.DatasetDashboard, &dashboard); err != nil {
		return nil, err
	}

	withComponents := lo.CountBy(assessments, func(a domain.Assessment) bool {
		return a.HasComponentResponses()
	})

	r := &Report{
		Assessments: AssessmentsReport{
			Total:                     len(assessments),
			WithComponentResponses:    withComponents,
			WithoutComponentResponses: len(assessments) - withComponents,
		},
		Status: CountedDataset{
			Total: len(statuses),
			UniqueCountries: countUnique(statuses, func(s domain.Status) *int64 {
				return s.Country
			}),
		},
		MapData: CountedDataset{
			Total: len(mapData),
			UniqueCountries: countUnique(mapData, func(r dto.JoinedRecord) *int64 {
				return r.CountryID
			}),
		},
		ProcessedAssessments: len(processed),
		AreaRatings:          AreaRatings(mapData),
	}

	// only the first bucket is inspected
	if len(dashboard.Assessments) > 0 && dashboard.Assessments[0] != nil {
		first := dashboard.Assessments[0].Assessments
		r.Dashboard = DashboardReport{
			UniqueAssessments: len(lo.UniqBy(first, func(a dto.AssessmentSummary) int64 {
				return a.AssessmentID
			})),
			UniqueCountries: countUnique(first, func(a dto.AssessmentSummary) *int64 {
				return a.CountryID
			}),
		}
	}

	return r, nil
}

// AreaRatings averages the rating value of every dashboard component per
// area, rounded to two places. Areas are ordered by id, unknown area last.
func AreaRatings(records []dto.JoinedRecord) []AreaRatingSummary {
	type acc struct {
		summary AreaRatingSummary
		sum     decimal.Decimal
	}

	byArea := make(map[string]*acc)
	for _, r := range records {
		for _, c := range r.Components {
			key := idKey(c.AreaID)
			a, ok := byArea[key]
			if !ok {
				a = &acc{summary: AreaRatingSummary{AreaID: c.AreaID, AreaName: c.AreaName}, sum: decimal.Zero}
				byArea[key] = a
			}
			a.summary.Components++
			a.sum = a.sum.Add(decimal.NewFromInt(c.RatingValue))
		}
	}

	res := lo.MapToSlice(byArea, func(_ string, a *acc) AreaRatingSummary {
		a.summary.MeanRating = a.sum.Div(decimal.NewFromInt(int64(a.summary.Components))).Round(2)
		return a.summary
	})
	sort.Slice(res, func(i, j int) bool {
		if res[i].AreaID == nil || res[j].AreaID == nil {
			return res[j].AreaID == nil && res[i].AreaID != nil
		}
		return *res[i].AreaID < *res[j].AreaID
	})

	return res
}

func (r *Report) Render(w io.Writer, source string) error {
	lines := []string{
		fmt.Sprintf("\n=== Analyzing data in: %s ===\n", source),
		fmt.Sprintf("Total Assessment IDs: %d", r.Assessments.Total),
		fmt.Sprintf("Assessments with component_responses: %d", r.Assessments.WithComponentResponses),
		fmt.Sprintf("Assessments without component_responses: %d", r.Assessments.WithoutComponentResponses),
		"",
		fmt.Sprintf("Total Assessment IDs in %s: %d", constants.DatasetStatus, r.Status.Total),
		fmt.Sprintf("Unique Countries in %s: %d", constants.DatasetStatus, r.Status.UniqueCountries),
		"",
		fmt.Sprintf("Total Assessments in %s: %d", constants.DatasetMapData, r.MapData.Total),
		fmt.Sprintf("Unique Countries in %s: %d", constants.DatasetMapData, r.MapData.UniqueCountries),
		"",
		fmt.Sprintf("Total Assessments in %s: %d", constants.DatasetAssessmentsProcessed, r.ProcessedAssessments),
		"",
		fmt.Sprintf("Total Assessment IDs in %s: %d", constants.DatasetDashboard, r.Dashboard.UniqueAssessments),
		fmt.Sprintf("Unique Countries in %s: %d", constants.DatasetDashboard, r.Dashboard.UniqueCountries),
	}

	if len(r.AreaRatings) > 0 {
		lines = append(lines, "", "Mean rating per area:")
		for _, a := range r.AreaRatings {
			name := a.AreaName
			if name == "" {
				name = "(unknown area)"
			}
			lines = append(lines, fmt.Sprintf("  %s: %s (%d components)", name, a.MeanRating.StringFixed(2), a.Components))
		}
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("fmt.Fprintln: %w", err)
		}
	}

	return nil
}

// countUnique counts distinct ids, treating a missing id as one more value.
func countUnique[T any](items []T, id func(T) *int64) int {
	return len(lo.Uniq(lo.Map(items, func(item T, _ int) string {
		return idKey(id(item))
	})))
}

func idKey(id *int64) string {
	if id == nil {
		return "null"
	}

	return strconv.FormatInt(*id, 10)
}

func readCollection[T any](ctx context.Context, st store.Store, key string) ([]T, error) {
	b, err := store.ReadAll(ctx, st, key)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}

	return pipeline.DecodeCollection[T](key, b)
}

func readJSON(ctx context.Context, st store.Store, key string, v any) error {
	b, err := store.ReadAll(ctx, st, key)
	if err != nil {
		return fmt.Errorf("read %s: %w", key, err)
	}
	if err := codec.Unmarshal(b, v); err != nil {
		return fmt.Errorf("%w: %s: %v", constants.ErrMalformedInput, key, err)
	}

	return nil
}
