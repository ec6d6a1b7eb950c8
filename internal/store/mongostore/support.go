package mongostore

import (
	"context"
	"fmt"

	"careconnect/pkg/types"
)

func (s *Store) CreateSupportRequest(ctx context.Context, req *types.SupportRequest) error {
	if _, err := s.support.InsertOne(ctx, req); err != nil {
		return fmt.Errorf("failed to insert support request: %w", err)
	}

	return nil
}

func (s *Store) SupportRequests(ctx context.Context, opts types.ListOptions) ([]*types.SupportRequest, error) {
	if opts.SortField != "" && opts.SortField != types.SortByCreatedAt {
		return nil, fmt.Errorf("unsupported sort field %q", opts.SortField)
	}

	reqs, err := findAll[types.SupportRequest](ctx, s.support, findOptions(opts, types.SortByCreatedAt))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch support requests: %w", err)
	}

	return reqs, nil
}

func (s *Store) SupportRequest(ctx context.Context, id string) (*types.SupportRequest, error) {
	return findOne[types.SupportRequest](ctx, s.support, id)
}

func (s *Store) DeleteSupportRequest(ctx context.Context, id string) error {
	return deleteOne(ctx, s.support, id)
}
