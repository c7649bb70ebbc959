package order

import (
	"context"
	"fmt"
	"math"
	"time"

	"motoflash/internal/entities"
	"motoflash/pkg/geo"
)

const (
	standardCommission = 1.00
	premiumCommission  = 3.00

	loyaltyPointsPerDelivery = 10
)

type Order struct {
	repository    Repository
	partners      PartnerProvider
	riderService  RiderService
	walletService WalletService
	etaFactory    EtaFactory
	events        EventPublisher
	txManager     TxManager
}

func New(
	repository Repository,
	partners PartnerProvider,
	riderService RiderService,
	walletService WalletService,
	etaFactory EtaFactory,
	events EventPublisher,
	txManager TxManager,
) *Order {
	return &Order{
		repository:    repository,
		partners:      partners,
		riderService:  riderService,
		walletService: walletService,
		etaFactory:    etaFactory,
		events:        events,
		txManager:     txManager,
	}
}

// CreateOrder persists a new pending order for a known, non-blocked
// partner. The commission stays at its placeholder until acceptance.
func (s *Order) CreateOrder(ctx context.Context, orderCreate entities.OrderCreate) (*entities.DeliveryOrder, error) {
	if !isValidID(orderCreate.StoreID) || orderCreate.DeliveryAddress == "" {
		return nil, ErrMissingRequiredFields
	}

	partner, err := s.partners.GetByID(ctx, orderCreate.StoreID)
	if err != nil {
		return nil, fmt.Errorf("get partner: %w", err)
	}
	if partner.IsBlocked {
		return nil, ErrPartnerBlocked
	}

	if orderCreate.Priority == nil {
		priority := entities.DefaultOrderPriority
		orderCreate.Priority = &priority
	}

	created, err := s.repository.Create(ctx, orderCreate)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.events.OrderStatusChanged(ctx, entities.OrderStatusEvent{
		OrderID:    created.ID,
		Status:     created.Status,
		OccurredAt: created.CreatedAt,
	})
	return created, nil
}

// AcceptOrder assigns a rider to a pending order, locking in commission,
// trip distance and ETA. The pending-status check and the write execute
// as one atomic unit: of two concurrent attempts exactly one wins and the
// other observes ErrOrderNotAvailable.
func (s *Order) AcceptOrder(ctx context.Context, orderID, riderID, riderName string) (*entities.DeliveryOrder, error) {
	if !isValidID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidID(riderID) {
		return nil, ErrInvalidRiderID
	}

	var accepted *entities.DeliveryOrder
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		riderEntity, err := s.riderService.GetRider(ctx, riderID)
		if err != nil {
			return fmt.Errorf("get rider: %w", err)
		}

		if riderEntity.HasCriticalMaintenance && !riderEntity.MaintenanceBlockOverride {
			return ErrRiderBlockedByMaintenance
		}

		orderEntity, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		if orderEntity.Status != entities.OrderPending {
			return ErrOrderNotAvailable
		}

		commission := standardCommission
		if riderEntity.Premium() {
			commission = premiumCommission
		}

		distance := geo.Distance(
			orderEntity.StoreLatitude,
			orderEntity.StoreLongitude,
			orderEntity.DeliveryLatitude,
			orderEntity.DeliveryLongitude,
		)

		acceptance := entities.OrderAcceptance{
			OrderID:       orderID,
			RiderID:       riderID,
			RiderName:     riderName,
			AppCommission: commission,
			Distance:      roundTo2(distance),
			EstimatedTime: s.etaFactory.EstimateMinutes(riderEntity.VehicleType, distance),
			AcceptedAt:    time.Now().UTC(),
		}

		accepted, err = s.repository.AcceptPending(ctx, acceptance)
		if err != nil {
			return fmt.Errorf("accept pending order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.events.OrderStatusChanged(ctx, entities.OrderStatusEvent{
		OrderID:    accepted.ID,
		Status:     accepted.Status,
		RiderID:    accepted.RiderID,
		OccurredAt: time.Now().UTC(),
	})
	return accepted, nil
}

// UpdateOrderStatus drives the order along the lifecycle, rejecting
// transitions the diagram does not permit. Completing an order credits
// the rider's commission and loyalty points inside the same transaction.
func (s *Order) UpdateOrderStatus(ctx context.Context, orderID string, status entities.OrderStatusType) (*entities.DeliveryOrder, error) {
	if !isValidID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	var updated *entities.DeliveryOrder
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		orderEntity, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if !canTransition(orderEntity.Status, status) {
			return fmt.Errorf("%s -> %s: %w", orderEntity.Status, status, ErrInvalidTransition)
		}

		updated, err = s.repository.UpdateStatus(ctx, orderID, orderEntity.Status, status, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("update order status: %w", err)
		}

		if status == entities.OrderCompleted && updated.RiderID != nil && updated.AppCommission > 0 {
			if err := s.walletService.CreditCommission(ctx, *updated.RiderID, updated.AppCommission, orderID); err != nil {
				return fmt.Errorf("credit commission: %w", err)
			}
			if err := s.riderService.AddLoyaltyPoints(ctx, *updated.RiderID, loyaltyPointsPerDelivery); err != nil {
				return fmt.Errorf("add loyalty points: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.events.OrderStatusChanged(ctx, entities.OrderStatusEvent{
		OrderID:    updated.ID,
		Status:     updated.Status,
		RiderID:    updated.RiderID,
		OccurredAt: time.Now().UTC(),
	})
	return updated, nil
}

func (s *Order) ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.DeliveryOrder, int64, error) {
	orders, total, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}
	return orders, total, nil
}

func (s *Order) GetOrderByID(ctx context.Context, orderID string) (*entities.DeliveryOrder, error) {
	if !isValidID(orderID) {
		return nil, ErrInvalidOrderID
	}

	orderEntity, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return orderEntity, nil
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
