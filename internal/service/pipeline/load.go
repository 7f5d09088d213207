package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/ougirez/perdash/internal/domain"
	"github.com/ougirez/perdash/internal/pkg/codec"
	"github.com/ougirez/perdash/internal/pkg/constants"
	"github.com/ougirez/perdash/internal/pkg/logger"
	"github.com/ougirez/perdash/internal/pkg/store"
)

// Load reads the five source datasets. A missing or malformed required
// dataset aborts the load; a missing overview dataset yields no overviews.
func Load(ctx context.Context, st store.Store) (Inputs, error) {
	var (
		in  Inputs
		err error
	)

	if in.Statuses, err = readCollection[domain.Status](ctx, st, constants.DatasetStatus); err != nil {
		return Inputs{}, err
	}
	if in.Countries, err = readCollection[domain.Country](ctx, st, constants.DatasetCountries); err != nil {
		return Inputs{}, err
	}
	if in.Prioritizations, err = readCollection[domain.Prioritization](ctx, st, constants.DatasetPrioritization); err != nil {
		return Inputs{}, err
	}
	if in.Assessments, err = readCollection[domain.Assessment](ctx, st, constants.DatasetAssessments); err != nil {
		return Inputs{}, err
	}

	in.Overviews, err = readCollection[domain.Overview](ctx, st, constants.DatasetOverview)
	if errors.Is(err, constants.ErrNotFound) {
		logger.Infof(ctx, "%s not found, continuing without overview data", constants.DatasetOverview)
		in.Overviews, err = []domain.Overview{}, nil
	}
	if err != nil {
		return Inputs{}, err
	}

	logger.Infof(ctx, "loaded inputs: %d statuses, %d countries, %d prioritizations, %d assessments, %d overviews",
		len(in.Statuses), len(in.Countries), len(in.Prioritizations), len(in.Assessments), len(in.Overviews))

	return in, nil
}

func readCollection[T any](ctx context.Context, st store.Store, key string) ([]T, error) {
	b, err := store.ReadAll(ctx, st, key)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}

	return DecodeCollection[T](key, b)
}

// DecodeCollection decodes a {"results": [...]} envelope. A missing or null
// results key and any value that does not decode as a list are fatal.
func DecodeCollection[T any](key string, b []byte) ([]T, error) {
	var c domain.Collection[T]
	if err := codec.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", constants.ErrMalformedInput, key, err)
	}
	if c.Results == nil {
		return nil, fmt.Errorf("%w: %s", constants.ErrMissingResults, key)
	}

	return c.Items(), nil
}
