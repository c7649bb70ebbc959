package partner

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"motoflash/internal/entities"
	"motoflash/internal/service/order"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Partner, error) {
	query := `
		SELECT id, name, address, latitude, longitude, is_blocked, created_at
		FROM partners
		WHERE id = $1`

	var partnerDB PartnerDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&partnerDB.ID,
		&partnerDB.Name,
		&partnerDB.Address,
		&partnerDB.Latitude,
		&partnerDB.Longitude,
		&partnerDB.IsBlocked,
		&partnerDB.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrPartnerNotFound
		}
		return nil, fmt.Errorf("unexpected partner repository getbyid error: %w", err)
	}

	return ToDomain(&partnerDB), nil
}
