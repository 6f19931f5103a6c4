package response

import (
	"time"

	"idea_api/internal/domain/entities"
)

const dateLayout = "2006-01-02"

// OrderResponse is the client-facing shape of one order-details row. All
// fields are nullable at the source and serialize as explicit nulls; dates
// are rendered as plain YYYY-MM-DD strings.
type OrderResponse struct {
	SRFNumber             *string `json:"srf_number"`
	OrderNumber           *string `json:"order_number"`
	BuID                  *int    `json:"bu_id"`
	TrackingLink          *string `json:"tracking_link"`
	ServiceTags           *string `json:"service_tags"`
	OrderStatus           *string `json:"order_status"`
	OrderDate             *string `json:"order_date"`
	CancelDate            *string `json:"cancel_date"`
	CancelReason          *string `json:"cancel_reason"`
	EstimatedShipDate     *string `json:"estimated_ship_date"`
	ShippedDate           *string `json:"shipped_date"`
	EstimatedDeliveryDate *string `json:"estimated_delivery_date"`
	DeliveryDate          *string `json:"delivery_date"`
	RevisedShipDate       *string `json:"revised_ship_date"`
	RevisedDeliveryDate   *string `json:"revised_delivery_date"`
	DeliveryStatus        *string `json:"delivery_status"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		SRFNumber:             o.SRFNumber,
		OrderNumber:           o.OrderNumber,
		BuID:                  o.BuID,
		TrackingLink:          o.TrackingLink,
		ServiceTags:           o.ServiceTags,
		OrderStatus:           o.OrderStatus,
		OrderDate:             formatDate(o.OrderDate),
		CancelDate:            formatDate(o.CancelDate),
		CancelReason:          o.CancelReason,
		EstimatedShipDate:     formatDate(o.EstimatedShipDate),
		ShippedDate:           formatDate(o.ShippedDate),
		EstimatedDeliveryDate: formatDate(o.EstimatedDeliveryDate),
		DeliveryDate:          formatDate(o.DeliveryDate),
		RevisedShipDate:       formatDate(o.RevisedShipDate),
		RevisedDeliveryDate:   formatDate(o.RevisedDeliveryDate),
		DeliveryStatus:        o.DeliveryStatus,
	}
}

// FromOrders always returns a non-nil slice so empty results serialize
// as [] rather than null.
func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
