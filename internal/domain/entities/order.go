package entities

import "time"

// OrderStatus is the lifecycle state reported by the procurement source view.
type OrderStatus string

const (
	OrderStatusCancelled               OrderStatus = "Cancelled"
	OrderStatusInProduction            OrderStatus = "In Production"
	OrderStatusInvoiced                OrderStatus = "Invoiced"
	OrderStatusManifested              OrderStatus = "Manifested"
	OrderStatusManufacturingInvoiced   OrderStatus = "Manufacturing Invoiced"
	OrderStatusPendingProduction       OrderStatus = "Pending Production"
	OrderStatusProductionComplete      OrderStatus = "Production Complete"
	OrderStatusRejected                OrderStatus = "Rejected"
	OrderStatusShipComplete            OrderStatus = "Ship Complete"
	OrderStatusWaitingOrderFulfillment OrderStatus = "Waiting Order Fulfillment"
)

// KnownOrderStatuses lists every status the source view is documented to
// emit. Filtering accepts arbitrary strings; this list exists for docs and
// examples, not enforcement.
func KnownOrderStatuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusCancelled,
		OrderStatusInProduction,
		OrderStatusInvoiced,
		OrderStatusManifested,
		OrderStatusManufacturingInvoiced,
		OrderStatusPendingProduction,
		OrderStatusProductionComplete,
		OrderStatusRejected,
		OrderStatusShipComplete,
		OrderStatusWaitingOrderFulfillment,
	}
}

// Order is one row of the SRF order-details reporting view. Every column is
// nullable at the source, order_number included, so all fields are pointers.
// The view is externally populated; this service never writes to it.
type Order struct {
	SRFNumber             *string
	OrderNumber           *string
	BuID                  *int
	TrackingLink          *string
	ServiceTags           *string
	OrderStatus           *string
	OrderDate             *time.Time
	CancelDate            *time.Time
	CancelReason          *string
	EstimatedShipDate     *time.Time
	ShippedDate           *time.Time
	EstimatedDeliveryDate *time.Time
	DeliveryDate          *time.Time
	RevisedShipDate       *time.Time
	RevisedDeliveryDate   *time.Time
	DeliveryStatus        *string
}
