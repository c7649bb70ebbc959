package presence_sweep

import (
	"context"
	"time"

	"motoflash/pkg/logger"
)

type Service interface {
	CleanupStalePresence(ctx context.Context) (int64, error)
}

type PresenceSweep struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewPresenceSweep(log logger.Logger, service Service, interval time.Duration) *PresenceSweep {
	return &PresenceSweep{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (p *PresenceSweep) TTL() time.Duration {
	return p.interval
}

func (p *PresenceSweep) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	rowsAffected, err := p.service.CleanupStalePresence(ctxWithTimeout)

	if rowsAffected > 0 {
		p.log.With(
			logger.NewField("stale_riders", rowsAffected),
		).Info("presence sweep")
	}

	return err
}

func (p *PresenceSweep) Info() string {
	return "presence sweep"
}
