package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/ougirez/perdash/internal/domain/dto"
	"github.com/ougirez/perdash/internal/pkg/codec"
	"github.com/ougirez/perdash/internal/pkg/constants"
	"github.com/ougirez/perdash/internal/pkg/store"
)

type EncodedFile struct {
	Key  string
	Data []byte
}

// Encode serializes every output file. Write only starts once all of them
// encoded, so a failed run leaves the previous files untouched.
func Encode(out *dto.Outputs, now time.Time) ([]EncodedFile, error) {
	docs := []struct {
		key string
		v   any
	}{
		{constants.DatasetMapData, out.MapData},
		{constants.DatasetComponentDescriptions, out.ComponentDescriptions},
		{constants.DatasetAssessmentsProcessed, out.ProcessedAssessments},
		{constants.DatasetDashboard, out.Dashboard},
		{constants.DatasetLastUpdate, dto.LastUpdate{LastUpdate: now.UTC().Format(time.RFC3339Nano)}},
	}

	files := make([]EncodedFile, 0, len(docs))
	for _, d := range docs {
		b, err := codec.MarshalIndent(d.v)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", d.key, err)
		}
		files = append(files, EncodedFile{Key: d.key, Data: b})
	}

	return files, nil
}

func Write(ctx context.Context, st store.Store, out *dto.Outputs, now time.Time) ([]store.Info, error) {
	files, err := Encode(out, now)
	if err != nil {
		return nil, err
	}

	infos := make([]store.Info, 0, len(files))
	for _, f := range files {
		info, err := store.WriteAll(ctx, st, f.Key, f.Data)
		if err != nil {
			return nil, fmt.Errorf("write %s: %w", f.Key, err)
		}
		infos = append(infos, info)
	}

	return infos, nil
}
