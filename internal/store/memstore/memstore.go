// Package memstore keeps support requests and appointments in process
// memory. It backs development runs and tests.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"careconnect/pkg/types"
)

type entry[T any] struct {
	seq    uint64
	record T
}

type Store struct {
	mu           sync.RWMutex
	seq          uint64
	support      map[string]entry[types.SupportRequest]
	appointments map[string]entry[types.Appointment]
}

func New() *Store {
	return &Store{
		support:      make(map[string]entry[types.SupportRequest]),
		appointments: make(map[string]entry[types.Appointment]),
	}
}

func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *Store) nextSeqLocked() uint64 {
	s.seq++
	return s.seq
}

// list orders entries by key, breaking ties by insertion order, and copies
// out at most limit records.
func list[T any](entries map[string]entry[T], key func(*T) time.Time, opts types.ListOptions) []*T {
	sorted := make([]entry[T], 0, len(entries))
	for _, e := range entries {
		sorted = append(sorted, e)
	}

	sort.Slice(sorted, func(i, j int) bool {
		a, b := key(&sorted[i].record), key(&sorted[j].record)
		if !a.Equal(b) {
			if opts.Descending {
				return a.After(b)
			}
			return a.Before(b)
		}
		if opts.Descending {
			return sorted[i].seq > sorted[j].seq
		}
		return sorted[i].seq < sorted[j].seq
	})

	if opts.Limit > 0 && uint64(len(sorted)) > opts.Limit {
		sorted = sorted[:opts.Limit]
	}

	out := make([]*T, 0, len(sorted))
	for _, e := range sorted {
		record := e.record
		out = append(out, &record)
	}

	return out
}

func unsupportedSort(field types.SortField) error {
	return fmt.Errorf("unsupported sort field %q", field)
}
