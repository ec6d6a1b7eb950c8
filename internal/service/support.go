package service

import (
	"context"
	"fmt"

	"careconnect/internal/schema"
	"careconnect/pkg/types"
)

// SupportListCap is the most support requests a list call returns.
const SupportListCap = 10

// SupportListOptions is the default ordering: newest first, capped.
var SupportListOptions = types.ListOptions{
	SortField:  types.SortByCreatedAt,
	Descending: true,
	Limit:      SupportListCap,
}

type SupportRepository interface {
	CreateSupportRequest(ctx context.Context, req *types.SupportRequest) error
	SupportRequests(ctx context.Context, opts types.ListOptions) ([]*types.SupportRequest, error)
	SupportRequest(ctx context.Context, id string) (*types.SupportRequest, error)
	DeleteSupportRequest(ctx context.Context, id string) error
}

// SupportService has no update: support requests are append/delete only.
type SupportService struct {
	base
	repo SupportRepository
}

func NewSupportService(repo SupportRepository, opts ...Option) *SupportService {
	return &SupportService{base: newBase(opts), repo: repo}
}

func (s *SupportService) Create(ctx context.Context, input map[string]any) (*types.SupportRequest, error) {
	rec, err := schema.SupportRequest.Validate(input)
	if err != nil {
		return nil, err
	}

	req := supportRequestFromRecord(rec)
	req.ID = s.newID()
	req.CreatedAt = s.timestamp()

	if err := s.repo.CreateSupportRequest(ctx, req); err != nil {
		return nil, fmt.Errorf("failed to create support request: %w", err)
	}

	return req, nil
}

// List returns support requests ordered per opts. Missing or oversized
// limits are clamped to SupportListCap.
func (s *SupportService) List(ctx context.Context, opts types.ListOptions) ([]*types.SupportRequest, error) {
	if opts.SortField == "" {
		opts.SortField = SupportListOptions.SortField
		opts.Descending = SupportListOptions.Descending
	}
	if opts.Limit == 0 || opts.Limit > SupportListCap {
		opts.Limit = SupportListCap
	}

	reqs, err := s.repo.SupportRequests(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list support requests: %w", err)
	}

	return reqs, nil
}

func (s *SupportService) Get(ctx context.Context, id string) (*types.SupportRequest, error) {
	req, err := s.repo.SupportRequest(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch support request %s: %w", id, err)
	}

	return req, nil
}

func (s *SupportService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteSupportRequest(ctx, id); err != nil {
		return fmt.Errorf("failed to delete support request %s: %w", id, err)
	}

	return nil
}

func supportRequestFromRecord(rec schema.Record) *types.SupportRequest {
	return &types.SupportRequest{
		FullName:    rec.String("fullName"),
		Email:       rec.String("email"),
		InquiryType: types.InquiryType(rec.String("inquiryType")),
		Message:     rec.String("message"),
		Status:      types.SupportStatus(rec.String("status")),
	}
}
