package pipeline

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ougirez/perdash/internal/pkg/constants"
	"github.com/ougirez/perdash/internal/pkg/logger"
	"github.com/ougirez/perdash/internal/pkg/metrics"
	"github.com/ougirez/perdash/internal/pkg/store"
	"github.com/ougirez/perdash/internal/service/fetcher"
)

type Fetcher interface {
	Fetch(ctx context.Context) (*fetcher.Result, error)
}

type RunResult struct {
	RunID     string          `json:"run_id"`
	Fetch     *fetcher.Result `json:"fetch,omitempty"`
	Records   map[string]int  `json:"records"`
	Files     []store.Info    `json:"files"`
	StartedAt time.Time       `json:"started_at"`
	Duration  time.Duration   `json:"duration"`
}

type Service struct {
	store   store.Store
	fetcher Fetcher
	metrics *metrics.Metrics
	now     func() time.Time

	// runMx keeps two refreshes from interleaving their writes.
	runMx sync.Mutex
}

func NewService(st store.Store, f Fetcher, m *metrics.Metrics) *Service {
	if m == nil {
		m = metrics.New()
	}

	return &Service{
		store:   st,
		fetcher: f,
		metrics: m,
		now:     time.Now,
	}
}

// Run fetches (unless skipFetch or no fetcher is set), loads, processes and
// writes every output dataset.
func (s *Service) Run(ctx context.Context, skipFetch bool) (res *RunResult, err error) {
	s.runMx.Lock()
	defer s.runMx.Unlock()

	started := s.now()
	runID := uuid.New().String()
	ctx = logger.With(ctx, "run_id", runID)

	defer func() {
		s.metrics.ObserveRun(started, err)
		if err != nil {
			logger.Errorf(ctx, "pipeline run failed: %s", err.Error())
		}
	}()

	res = &RunResult{RunID: runID, StartedAt: started}

	if !skipFetch && s.fetcher != nil {
		if res.Fetch, err = s.fetcher.Fetch(ctx); err != nil {
			return nil, fmt.Errorf("fetch: %w", err)
		}
	}

	in, err := Load(ctx, s.store)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}

	out := Process(in)

	res.Files, err = Write(ctx, s.store, out, s.now())
	if err != nil {
		return nil, fmt.Errorf("write: %w", err)
	}

	res.Records = map[string]int{
		constants.DatasetMapData:               len(out.MapData),
		constants.DatasetComponentDescriptions: len(out.ComponentDescriptions),
		constants.DatasetAssessmentsProcessed:  len(out.ProcessedAssessments.Results),
		constants.DatasetDashboard:             len(out.Dashboard.Assessments),
	}
	for key, n := range res.Records {
		s.metrics.DatasetRecords.WithLabelValues(key).Set(float64(n))
	}

	res.Duration = s.now().Sub(started)
	logger.Infof(ctx, "pipeline run done: %d records, %d component groups, %d countries",
		len(out.MapData), len(out.Dashboard.Assessments), len(out.Dashboard.CountryAssessments))

	return res, nil
}
