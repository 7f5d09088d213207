package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/ougirez/perdash/internal/domain"
	"github.com/ougirez/perdash/internal/pkg/codec"
	"github.com/ougirez/perdash/internal/pkg/logger"
	"github.com/ougirez/perdash/internal/pkg/store"
	"golang.org/x/sync/errgroup"
)

type Result struct {
	Counts          map[string]int `json:"counts"`
	OverviewFetched bool           `json:"overview_fetched"`
}

type Service struct {
	client *Client
	store  store.Store
}

func NewService(client *Client, st store.Store) *Service {
	return &Service{client: client, store: st}
}

// Fetch downloads the public datasets concurrently and then the optional
// authenticated overview dataset, storing each as {"results": [...]}.
func (s *Service) Fetch(ctx context.Context) (*Result, error) {
	res := &Result{Counts: make(map[string]int, len(PublicDatasets)+1)}
	resMx := sync.Mutex{}

	eg, egCtx := errgroup.WithContext(ctx)
	for _, ds := range PublicDatasets {
		ds := ds
		eg.Go(func() error {
			count, err := s.fetchDataset(egCtx, ds)
			if err != nil {
				return fmt.Errorf("fetchDataset, dataset-%s: %w", ds.Key, err)
			}

			resMx.Lock()
			defer resMx.Unlock()
			res.Counts[ds.Key] = count
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		logger.Errorf(ctx, "error fetching data: %s", err.Error())
		return nil, err
	}

	if !s.client.HasToken() {
		logger.Warnf(ctx, "no API token configured, skipping %s", OverviewDataset.Key)
		return res, nil
	}

	count, err := s.fetchDataset(ctx, OverviewDataset)
	if err != nil {
		logger.Warnf(ctx, "failed to fetch %s, continuing without it: %s", OverviewDataset.Key, err.Error())
		return res, nil
	}
	res.Counts[OverviewDataset.Key] = count
	res.OverviewFetched = true

	logger.Infof(ctx, "all data fetched successfully")
	return res, nil
}

func (s *Service) fetchDataset(ctx context.Context, ds Dataset) (int, error) {
	results, err := s.client.FetchAll(ctx, ds)
	if err != nil {
		return 0, err
	}

	b, err := codec.MarshalIndent(domain.NewCollection[json.RawMessage](results))
	if err != nil {
		return 0, fmt.Errorf("encode %s: %w", ds.Key, err)
	}

	if _, err := store.WriteAll(ctx, s.store, ds.Key, b); err != nil {
		return 0, fmt.Errorf("store %s: %w", ds.Key, err)
	}

	logger.Infof(ctx, "%s saved, %d records", ds.Key, len(results))
	return len(results), nil
}
