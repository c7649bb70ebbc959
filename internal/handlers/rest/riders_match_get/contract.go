//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=riders_match_get_test
package riders_match_get

import (
	"context"

	"motoflash/internal/entities"
	"motoflash/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	FindMatchingRiders(ctx context.Context, criteria entities.MatchingCriteria) ([]entities.MatchCandidate, error)
}
