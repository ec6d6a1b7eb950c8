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

const appointmentTableName = "careconnect.appointments"

var appointmentColumns = utils.StructTagValues(types.Appointment{})

type AppointmentRepository struct {
	pool *pgxpool.Pool
}

func NewAppointmentRepository(pool *pgxpool.Pool) *AppointmentRepository {
	return &AppointmentRepository{pool: pool}
}

func (r *AppointmentRepository) CreateAppointment(ctx context.Context, appt *types.Appointment) error {
	query, args, err := psql().Insert(appointmentTableName).SetMap(utils.StructToMap(appt)).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert appointment query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to insert appointment")
}

func (r *AppointmentRepository) Appointments(ctx context.Context, opts types.ListOptions) ([]*types.Appointment, error) {
	order, err := orderBy(opts, "appointment_date")
	if err != nil {
		return nil, err
	}

	builder := psql().Select(appointmentColumns...).From(appointmentTableName).OrderBy(order, "id")
	if opts.Limit > 0 {
		builder = builder.Limit(opts.Limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate appointments query: %w", err)
	}

	appts := make([]*types.Appointment, 0)
	if err := pgxscan.Select(ctx, r.pool, &appts, query, args...); err != nil {
		return nil, fmt.Errorf("failed to fetch appointments: %w", err)
	}

	return appts, nil
}

func (r *AppointmentRepository) Appointment(ctx context.Context, id string) (*types.Appointment, error) {
	query, args, err := psql().Select(appointmentColumns...).From(appointmentTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate appointment query: %w", err)
	}

	var appt = new(types.Appointment)
	err = pgxscan.Get(ctx, r.pool, appt, query, args...)
	if err != nil && !pgxscan.NotFound(err) {
		return nil, err
	}

	if err != nil {
		return nil, types.ErrNotFound
	}

	return appt, nil
}

// UpdateAppointment overwrites every mutable column. id and created_at are
// never part of the SET clause.
func (r *AppointmentRepository) UpdateAppointment(ctx context.Context, id string, appt *types.Appointment) error {
	updateMap := utils.StructToMap(appt)
	delete(updateMap, "id")
	delete(updateMap, "created_at")

	query, args, err := psql().Update(appointmentTableName).SetMap(updateMap).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate update appointment query for %s: %w", id, err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update appointment: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return types.ErrNotFound
	}

	return nil
}

func (r *AppointmentRepository) DeleteAppointment(ctx context.Context, id string) error {
	query, args, err := psql().Delete(appointmentTableName).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate delete appointment query for %s: %w", id, err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return types.ErrNotFound
	}

	return nil
}
