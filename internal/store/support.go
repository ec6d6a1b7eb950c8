package store

import (
	"context"
	"fmt"

	"careconnect/internal/utils"
	"careconnect/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const supportTableName = "careconnect.support_requests"

var supportColumns = utils.StructTagValues(types.SupportRequest{})

type SupportRepository struct {
	pool *pgxpool.Pool
}

func NewSupportRepository(pool *pgxpool.Pool) *SupportRepository {
	return &SupportRepository{pool: pool}
}

func (r *SupportRepository) CreateSupportRequest(ctx context.Context, req *types.SupportRequest) error {
	query, args, err := psql().Insert(supportTableName).SetMap(utils.StructToMap(req)).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert support request query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to insert support request")
}

func (r *SupportRepository) SupportRequests(ctx context.Context, opts types.ListOptions) ([]*types.SupportRequest, error) {
	if opts.SortField != "" && opts.SortField != types.SortByCreatedAt {
		return nil, fmt.Errorf("unsupported sort field %q", opts.SortField)
	}

	order, err := orderBy(opts, "created_at")
	if err != nil {
		return nil, err
	}

	builder := psql().Select(supportColumns...).From(supportTableName).OrderBy(order, "id")
	if opts.Limit > 0 {
		builder = builder.Limit(opts.Limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate support requests query: %w", err)
	}

	reqs := make([]*types.SupportRequest, 0)
	if err := pgxscan.Select(ctx, r.pool, &reqs, query, args...); err != nil {
		return nil, fmt.Errorf("failed to fetch support requests: %w", err)
	}

	return reqs, nil
}

func (r *SupportRepository) SupportRequest(ctx context.Context, id string) (*types.SupportRequest, error) {
	query, args, err := psql().Select(supportColumns...).From(supportTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate support request query: %w", err)
	}

	var req = new(types.SupportRequest)
	err = pgxscan.Get(ctx, r.pool, req, query, args...)
	if err != nil && !pgxscan.NotFound(err) {
		return nil, err
	}

	if err != nil {
		return nil, types.ErrNotFound
	}

	return req, nil
}

func (r *SupportRepository) DeleteSupportRequest(ctx context.Context, id string) error {
	query, args, err := psql().Delete(supportTableName).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate delete support request query for %s: %w", id, err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete support request: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return types.ErrNotFound
	}

	return nil
}
