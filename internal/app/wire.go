//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"motoflash/internal/gateway/kafka/orderevents"
	"motoflash/internal/handlers/rest/order_accept_post"
	"motoflash/internal/handlers/rest/order_get"
	"motoflash/internal/handlers/rest/order_post"
	"motoflash/internal/handlers/rest/order_status_put"
	"motoflash/internal/handlers/rest/orders_get"
	"motoflash/internal/handlers/rest/rider_location_put"
	"motoflash/internal/handlers/rest/riders_match_get"
	"motoflash/internal/handlers/rest/wallet_get"
	"motoflash/internal/handlers/rest/wallet_withdraw_post"
	"motoflash/internal/handlers/tasks/presence_sweep"
	"motoflash/internal/pkg/config"
	"motoflash/internal/pkg/factory/trip_eta"

	orderRepo "motoflash/internal/repository/order"
	partnerRepo "motoflash/internal/repository/partner"
	riderRepo "motoflash/internal/repository/rider"
	walletRepo "motoflash/internal/repository/wallet"
	matchingService "motoflash/internal/service/matching"
	orderService "motoflash/internal/service/order"
	riderService "motoflash/internal/service/rider"
	walletService "motoflash/internal/service/wallet"

	"motoflash/pkg/background"
	"motoflash/pkg/logger"
	"motoflash/pkg/querier"
	"motoflash/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	SweepInterval time.Duration
	PresenceTTL   time.Duration
)

type Application struct {
	ServiceOrder      ServiceOrder
	ServiceMatching   ServiceMatching
	ServiceWallet     ServiceWallet
	ServiceRider      ServiceRider
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	order_post.Service
	orders_get.Service
	order_get.Service
	order_accept_post.Service
	order_status_put.Service
}

type ServiceMatching interface {
	riders_match_get.Service
}

type ServiceWallet interface {
	wallet_get.Service
	wallet_withdraw_post.Service
}

type ServiceRider interface {
	rider_location_put.Service
}

// InitializeApplication builds the HTTP service object graph (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideSweepInterval,
		providePresenceTTL,

		provideOrderRepository,
		providePartnerRepository,
		provideRiderRepository,
		provideWalletRepository,

		trip_eta.New,
		provideOrderEventsPublisher,

		provideServiceRider,
		provideServiceWallet,
		provideServiceMatching,
		provideServiceOrder,

		providePresenceSweepTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Order)),
		wire.Bind(new(ServiceMatching), new(*matchingService.Matching)),
		wire.Bind(new(ServiceWallet), new(*walletService.Wallet)),
		wire.Bind(new(ServiceRider), new(*riderService.Rider)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.PartnerProvider), new(*partnerRepo.Repository)),
		wire.Bind(new(orderService.RiderService), new(*riderService.Rider)),
		wire.Bind(new(orderService.WalletService), new(*walletService.Wallet)),
		wire.Bind(new(orderService.EtaFactory), new(*trip_eta.TripEtaFactory)),
		wire.Bind(new(orderService.EventPublisher), new(*orderevents.Publisher)),

		wire.Bind(new(matchingService.Repository), new(*riderRepo.Repository)),
		wire.Bind(new(matchingService.EtaFactory), new(*trip_eta.TripEtaFactory)),

		wire.Bind(new(walletService.Repository), new(*walletRepo.Repository)),
		wire.Bind(new(riderService.Repository), new(*riderRepo.Repository)),

		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(walletService.TxManager), new(*tx.Manager)),

		wire.Bind(new(presence_sweep.Service), new(*riderService.Rider)),
	)
	return &Application{}, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func providePartnerRepository(querier *querier.Querier) *partnerRepo.Repository {
	return partnerRepo.New(querier)
}

func provideRiderRepository(querier *querier.Querier) *riderRepo.Repository {
	return riderRepo.New(querier)
}

func provideWalletRepository(querier *querier.Querier) *walletRepo.Repository {
	return walletRepo.New(querier)
}

func provideServiceRider(
	repository riderService.Repository,
	presenceTTL PresenceTTL,
) *riderService.Rider {
	return riderService.New(repository, time.Duration(presenceTTL))
}

func provideServiceWallet(
	repository walletService.Repository,
	txManager walletService.TxManager,
) *walletService.Wallet {
	return walletService.New(repository, txManager)
}

func provideServiceMatching(
	repository matchingService.Repository,
	etaFactory matchingService.EtaFactory,
) *matchingService.Matching {
	return matchingService.New(repository, etaFactory)
}

func provideServiceOrder(
	repository orderService.Repository,
	partners orderService.PartnerProvider,
	riderSvc orderService.RiderService,
	walletSvc orderService.WalletService,
	etaFactory orderService.EtaFactory,
	events orderService.EventPublisher,
	txManager orderService.TxManager,
) *orderService.Order {
	return orderService.New(
		repository,
		partners,
		riderSvc,
		walletSvc,
		etaFactory,
		events,
		txManager,
	)
}

func provideOrderEventsPublisher(log logger.Logger, producer sarama.SyncProducer, cfg *config.Config) *orderevents.Publisher {
	return orderevents.New(log, producer, cfg.Kafka.Topic)
}

func provideSweepInterval(cfg *config.Config) SweepInterval {
	return SweepInterval(cfg.Tasks.PresenceSweepInterval)
}

func providePresenceTTL(cfg *config.Config) PresenceTTL {
	return PresenceTTL(cfg.Tasks.RiderPresenceTTL)
}

func providePresenceSweepTask(
	log logger.Logger,
	riderSvc presence_sweep.Service,
	interval SweepInterval,
) *presence_sweep.PresenceSweep {
	return presence_sweep.NewPresenceSweep(log, riderSvc, time.Duration(interval))
}

func provideTaskList(
	presenceSweepTask *presence_sweep.PresenceSweep,
) []background.Task {
	return []background.Task{
		presenceSweepTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
