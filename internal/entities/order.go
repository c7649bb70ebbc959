package entities

import "time"

type DeliveryOrder struct {
	ID                string
	StoreID           string
	StoreName         string
	StoreAddress      string
	StoreLatitude     float64
	StoreLongitude    float64
	DeliveryAddress   string
	DeliveryLatitude  float64
	DeliveryLongitude float64
	RecipientName     *string
	RecipientPhone    *string
	Notes             *string
	Value             float64
	DeliveryFee       float64
	AppCommission     float64
	Status            OrderStatusType
	Priority          OrderPriorityType
	RiderID           *string
	RiderName         *string
	Distance          *float64
	EstimatedTime     *int
	CreatedAt         time.Time
	AcceptedAt        *time.Time
	InProgressAt      *time.Time
	CompletedAt       *time.Time
	CancelledAt       *time.Time
}

type OrderStatusType string

const (
	OrderPending    OrderStatusType = "pending"
	OrderAccepted   OrderStatusType = "accepted"
	OrderInProgress OrderStatusType = "inProgress"
	OrderCompleted  OrderStatusType = "completed"
	OrderCancelled  OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// Terminal reports whether no further transition may leave the status.
func (s OrderStatusType) Terminal() bool {
	return s == OrderCompleted || s == OrderCancelled
}

type OrderPriorityType string

const (
	PriorityNormal OrderPriorityType = "normal"
	PriorityHigh   OrderPriorityType = "high"
)

const DefaultOrderPriority = PriorityNormal

func (p OrderPriorityType) String() string {
	return string(p)
}

// PlaceholderCommission is persisted at creation; the authoritative
// commission is resolved from the rider's subscription at acceptance.
const PlaceholderCommission = 1.0

// OrderCreate carries the fields accepted by order creation.
type OrderCreate struct {
	StoreID           string
	StoreName         string
	StoreAddress      string
	StoreLatitude     float64
	StoreLongitude    float64
	DeliveryAddress   string
	DeliveryLatitude  float64
	DeliveryLongitude float64
	RecipientName     *string
	RecipientPhone    *string
	Notes             *string
	Value             float64
	DeliveryFee       float64
	Priority          *OrderPriorityType
}

// OrderAcceptance is the set of fields locked in when a rider wins an
// order: commission, trip geometry derivatives and the rider identity.
type OrderAcceptance struct {
	OrderID       string
	RiderID       string
	RiderName     string
	AppCommission float64
	Distance      float64
	EstimatedTime int
	AcceptedAt    time.Time
}

// OrderFilter composes the optional list predicates, each ANDed in.
type OrderFilter struct {
	Status  *OrderStatusType
	RiderID *string
	StoreID *string
	Limit   *int
	Offset  *int
}

type OrderStatusEvent struct {
	OrderID    string
	Status     OrderStatusType
	RiderID    *string
	OccurredAt time.Time
}
