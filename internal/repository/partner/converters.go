package partner

import "motoflash/internal/entities"

func ToDomain(p *PartnerDB) *entities.Partner {
	if p == nil {
		return nil
	}
	return &entities.Partner{
		ID:        p.ID,
		Name:      p.Name,
		Address:   p.Address,
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
		IsBlocked: p.IsBlocked,
		CreatedAt: p.CreatedAt,
	}
}
