package memstore

import (
	"context"
	"time"

	"careconnect/pkg/types"
)

func (s *Store) CreateSupportRequest(ctx context.Context, req *types.SupportRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.support[req.ID] = entry[types.SupportRequest]{seq: s.nextSeqLocked(), record: *req}
	return nil
}

func (s *Store) SupportRequests(ctx context.Context, opts types.ListOptions) ([]*types.SupportRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var key func(*types.SupportRequest) time.Time
	switch opts.SortField {
	case types.SortByCreatedAt, "":
		key = func(r *types.SupportRequest) time.Time { return r.CreatedAt }
	default:
		return nil, unsupportedSort(opts.SortField)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return list(s.support, key, opts), nil
}

func (s *Store) SupportRequest(ctx context.Context, id string) (*types.SupportRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.support[id]
	if !ok {
		return nil, types.ErrNotFound
	}

	req := e.record
	return &req, nil
}

func (s *Store) DeleteSupportRequest(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.support[id]; !ok {
		return types.ErrNotFound
	}

	delete(s.support, id)
	return nil
}
