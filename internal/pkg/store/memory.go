package store

import (
	"bytes"
	"context"
	"io"
	"io/fs"
	"sort"
	"strings"
	"sync"
	"time"
)

type memoryEntry struct {
	info Info
	data []byte
}

// Memory is a process-local Store, used by tests and the "memory" driver.
type Memory struct {
	mx   sync.RWMutex
	objs map[string]memoryEntry
}

func NewMemory() *Memory {
	return &Memory{objs: make(map[string]memoryEntry)}
}

func (s *Memory) Driver() Driver { return DriverMemory }

func (s *Memory) Put(_ context.Context, key string, r io.Reader, opts PutOptions) (Info, error) {
	if _, err := sanitizeKey(key); err != nil {
		return Info{}, err
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return Info{}, err
	}

	contentType := opts.ContentType
	if contentType == "" {
		contentType = contentTypeFor(key)
	}
	info := Info{
		Key:          key,
		Size:         int64(len(b)),
		ContentType:  contentType,
		Metadata:     cloneMetadata(opts.Metadata),
		LastModified: time.Now().UTC(),
	}

	s.mx.Lock()
	defer s.mx.Unlock()
	s.objs[key] = memoryEntry{info: info, data: b}

	return info, nil
}

func (s *Memory) Get(_ context.Context, key string) (Info, io.ReadCloser, error) {
	s.mx.RLock()
	obj, ok := s.objs[key]
	s.mx.RUnlock()
	if !ok {
		return Info{}, nil, wrapErr(key, fs.ErrNotExist)
	}

	data := make([]byte, len(obj.data))
	copy(data, obj.data)
	info := obj.info
	info.Metadata = cloneMetadata(info.Metadata)

	return info, io.NopCloser(bytes.NewReader(data)), nil
}

func (s *Memory) Head(_ context.Context, key string) (Info, error) {
	s.mx.RLock()
	obj, ok := s.objs[key]
	s.mx.RUnlock()
	if !ok {
		return Info{}, wrapErr(key, fs.ErrNotExist)
	}

	info := obj.info
	info.Metadata = cloneMetadata(info.Metadata)
	return info, nil
}

func (s *Memory) List(_ context.Context, prefix string) ([]Info, error) {
	s.mx.RLock()
	defer s.mx.RUnlock()

	out := make([]Info, 0, len(s.objs))
	for k, v := range s.objs {
		if strings.HasPrefix(k, prefix) {
			info := v.info
			info.Metadata = cloneMetadata(info.Metadata)
			out = append(out, info)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}
