package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/lucsky/cuid"
	"motoflash/internal/entities"
	"motoflash/internal/repository"
	"motoflash/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, store_id, store_name, store_address, store_latitude, store_longitude,
	delivery_address, delivery_latitude, delivery_longitude, recipient_name, recipient_phone, notes,
	value, delivery_fee, app_commission, status, priority, rider_id, rider_name, distance,
	estimated_time, created_at, accepted_at, in_progress_at, completed_at, cancelled_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderCreate entities.OrderCreate) (*entities.DeliveryOrder, error) {
	query := `
		INSERT INTO delivery_orders (
			id, store_id, store_name, store_address, store_latitude, store_longitude,
			delivery_address, delivery_latitude, delivery_longitude, recipient_name,
			recipient_phone, notes, value, delivery_fee, app_commission, status, priority, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, NOW())
		RETURNING ` + orderColumns

	row := r.querier.QueryRow(
		ctx,
		query,
		cuid.New(),
		orderCreate.StoreID,
		orderCreate.StoreName,
		orderCreate.StoreAddress,
		orderCreate.StoreLatitude,
		orderCreate.StoreLongitude,
		orderCreate.DeliveryAddress,
		orderCreate.DeliveryLatitude,
		orderCreate.DeliveryLongitude,
		orderCreate.RecipientName,
		orderCreate.RecipientPhone,
		orderCreate.Notes,
		orderCreate.Value,
		orderCreate.DeliveryFee,
		entities.PlaceholderCommission,
		entities.OrderPending.String(),
		orderCreate.Priority.String(),
	)

	orderDB, err := scanOrder(row)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(orderDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.DeliveryOrder, error) {
	query := `SELECT ` + orderColumns + `
		FROM delivery_orders
		WHERE id = $1`

	orderDB, err := scanOrder(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(orderDB), nil
}

// AcceptPending is the linchpin of at-most-one-acceptance: the update is
// guarded by the pending status, so a raced second attempt matches zero
// rows and is told the order is gone.
func (r *Repository) AcceptPending(ctx context.Context, acceptance entities.OrderAcceptance) (*entities.DeliveryOrder, error) {
	query := `
		UPDATE delivery_orders
		SET status = $1,
			rider_id = $2,
			rider_name = $3,
			app_commission = $4,
			distance = $5,
			estimated_time = $6,
			accepted_at = $7
		WHERE id = $8 AND status = $9
		RETURNING ` + orderColumns

	row := r.querier.QueryRow(
		ctx,
		query,
		entities.OrderAccepted.String(),
		acceptance.RiderID,
		acceptance.RiderName,
		acceptance.AppCommission,
		acceptance.Distance,
		acceptance.EstimatedTime,
		acceptance.AcceptedAt,
		acceptance.OrderID,
		entities.OrderPending.String(),
	)

	orderDB, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.classifyMissedUpdate(ctx, acceptance.OrderID)
		}
		// Under serializable isolation the loser of a concurrent accept
		// aborts instead of matching zero rows.
		if repository.IsPgErrorWithCode(err, repository.PgErrSerializationFailure) {
			return nil, order.ErrOrderNotAvailable
		}
		return nil, fmt.Errorf("unexpected order repository accept error: %w", err)
	}

	return ToDomain(orderDB), nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id string, from, to entities.OrderStatusType, at time.Time) (*entities.DeliveryOrder, error) {
	builder := qb.
		Update("delivery_orders").
		Set("status", to.String())

	switch to {
	case entities.OrderInProgress:
		builder = builder.Set("in_progress_at", at)
	case entities.OrderCompleted:
		builder = builder.Set("completed_at", at)
	case entities.OrderCancelled:
		builder = builder.Set("cancelled_at", at)
	}

	builder = builder.
		Where(sq.Eq{"id": id, "status": from.String()}).
		Suffix("RETURNING " + orderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update status error: %w", err)
	}

	orderDB, err := scanOrder(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.classifyMissedUpdate(ctx, id)
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrSerializationFailure) {
			return nil, order.ErrOrderNotAvailable
		}
		return nil, fmt.Errorf("unexpected order repository update status error: %w", err)
	}

	return ToDomain(orderDB), nil
}

func (r *Repository) List(ctx context.Context, filter entities.OrderFilter) ([]entities.DeliveryOrder, int64, error) {
	const defaultLimit = 50

	builder := qb.
		Select(orderColumns).
		From("delivery_orders")
	countBuilder := qb.
		Select("COUNT(*)").
		From("delivery_orders")

	// optional filters, each ANDed in
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
		countBuilder = countBuilder.Where(sq.Eq{"status": filter.Status.String()})
	}
	if filter.RiderID != nil {
		builder = builder.Where(sq.Eq{"rider_id": *filter.RiderID})
		countBuilder = countBuilder.Where(sq.Eq{"rider_id": *filter.RiderID})
	}
	if filter.StoreID != nil {
		builder = builder.Where(sq.Eq{"store_id": *filter.StoreID})
		countBuilder = countBuilder.Where(sq.Eq{"store_id": *filter.StoreID})
	}

	limit := defaultLimit
	if filter.Limit != nil && *filter.Limit > 0 {
		limit = *filter.Limit
	}
	builder = builder.
		OrderBy("created_at DESC").
		Limit(uint64(limit))
	if filter.Offset != nil && *filter.Offset > 0 {
		builder = builder.Offset(uint64(*filter.Offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, limit)
	for rows.Next() {
		orderDB, err := scanOrder(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("unexpected order repository list error: %w", err)
		}
		orderModels = append(orderModels, *orderDB)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected order repository count error: %w", err)
	}

	var total int64
	if err := r.querier.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("unexpected order repository count error: %w", err)
	}

	return ToDomainList(orderModels), total, nil
}

// classifyMissedUpdate tells a vanished order apart from one that moved
// out of the expected status between read and write.
func (r *Repository) classifyMissedUpdate(ctx context.Context, id string) error {
	var status string
	err := r.querier.QueryRow(ctx, `SELECT status FROM delivery_orders WHERE id = $1`, id).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return order.ErrOrderNotFound
		}
		return fmt.Errorf("unexpected order repository status check error: %w", err)
	}
	return order.ErrOrderNotAvailable
}

func scanOrder(row pgx.Row) (*OrderDB, error) {
	var o OrderDB
	err := row.Scan(
		&o.ID,
		&o.StoreID,
		&o.StoreName,
		&o.StoreAddress,
		&o.StoreLatitude,
		&o.StoreLongitude,
		&o.DeliveryAddress,
		&o.DeliveryLatitude,
		&o.DeliveryLongitude,
		&o.RecipientName,
		&o.RecipientPhone,
		&o.Notes,
		&o.Value,
		&o.DeliveryFee,
		&o.AppCommission,
		&o.Status,
		&o.Priority,
		&o.RiderID,
		&o.RiderName,
		&o.Distance,
		&o.EstimatedTime,
		&o.CreatedAt,
		&o.AcceptedAt,
		&o.InProgressAt,
		&o.CompletedAt,
		&o.CancelledAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
