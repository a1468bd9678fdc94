package sync

import "strconv"

// ---------------------------------------------------------------------------
// OrderStatus represents the order state code assigned by the legacy service
// ---------------------------------------------------------------------------

// OrderStatus is the order state on the legacy service. The wire codes 0-17
// are defined externally; OrderStatusUnrecognized is local only and covers
// any code the legacy service introduces that this enumeration does not know.
type OrderStatus int

const (
	// OrderStatusNew indicates a freshly placed order
	OrderStatusNew OrderStatus = 0
	// OrderStatusAwaitingPayment indicates payment has not been received yet
	OrderStatusAwaitingPayment OrderStatus = 1
	// OrderStatusPaid indicates payment received
	OrderStatusPaid OrderStatus = 2
	// OrderStatusApproved indicates the order passed manual review
	OrderStatusApproved OrderStatus = 3
	// OrderStatusPreparing indicates the order is being picked and packed
	OrderStatusPreparing OrderStatus = 4
	// OrderStatusReadyToShip indicates the package is awaiting carrier pickup
	OrderStatusReadyToShip OrderStatus = 5
	// OrderStatusShipped indicates the package was handed to the carrier
	OrderStatusShipped OrderStatus = 6
	// OrderStatusInTransit indicates the package is on its way
	OrderStatusInTransit OrderStatus = 7
	// OrderStatusDelivered indicates the package reached the buyer
	OrderStatusDelivered OrderStatus = 8
	// OrderStatusCompleted indicates the order is closed out successfully
	OrderStatusCompleted OrderStatus = 9
	// OrderStatusCancelRequested indicates the buyer asked for cancellation
	OrderStatusCancelRequested OrderStatus = 10
	// OrderStatusCancelled indicates the order was cancelled
	OrderStatusCancelled OrderStatus = 11
	// OrderStatusRefundRequested indicates the buyer asked for a refund
	OrderStatusRefundRequested OrderStatus = 12
	// OrderStatusRefunded indicates the order was refunded
	OrderStatusRefunded OrderStatus = 13
	// OrderStatusReturned indicates the package came back to the seller
	OrderStatusReturned OrderStatus = 14
	// OrderStatusOnHold indicates processing is paused
	OrderStatusOnHold OrderStatus = 15
	// OrderStatusFailed indicates fulfilment failed
	OrderStatusFailed OrderStatus = 16
	// OrderStatusArchived indicates the order was archived
	OrderStatusArchived OrderStatus = 17

	// OrderStatusUnrecognized covers wire codes outside the known range.
	// It is never serialized back to the legacy service.
	OrderStatusUnrecognized OrderStatus = -1
)

// OrderStatusFromCode maps a raw wire code to an OrderStatus, falling back
// to OrderStatusUnrecognized for codes outside the known range.
func OrderStatusFromCode(code int) OrderStatus {
	s := OrderStatus(code)
	if s.IsValid() {
		return s
	}
	return OrderStatusUnrecognized
}

// IsValid returns true if the status is one of the known wire codes
func (s OrderStatus) IsValid() bool {
	return s >= OrderStatusNew && s <= OrderStatusArchived
}

// Code returns the raw wire code for the status
func (s OrderStatus) Code() int {
	return int(s)
}

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	if !s.IsValid() {
		return "UNRECOGNIZED"
	}
	return orderStatusNames[s]
}

// DisplayName returns a human-readable name for the status
func (s OrderStatus) DisplayName() string {
	if !s.IsValid() {
		return "Unrecognized (" + strconv.Itoa(int(s)) + ")"
	}
	return orderStatusDisplayNames[s]
}

// IsFinal returns true if the status is a terminal state on the legacy service
func (s OrderStatus) IsFinal() bool {
	switch s {
	case OrderStatusCompleted, OrderStatusCancelled, OrderStatusRefunded,
		OrderStatusReturned, OrderStatusArchived:
		return true
	default:
		return false
	}
}

var orderStatusNames = map[OrderStatus]string{
	OrderStatusNew:             "NEW",
	OrderStatusAwaitingPayment: "AWAITING_PAYMENT",
	OrderStatusPaid:            "PAID",
	OrderStatusApproved:        "APPROVED",
	OrderStatusPreparing:       "PREPARING",
	OrderStatusReadyToShip:     "READY_TO_SHIP",
	OrderStatusShipped:         "SHIPPED",
	OrderStatusInTransit:       "IN_TRANSIT",
	OrderStatusDelivered:       "DELIVERED",
	OrderStatusCompleted:       "COMPLETED",
	OrderStatusCancelRequested: "CANCEL_REQUESTED",
	OrderStatusCancelled:       "CANCELLED",
	OrderStatusRefundRequested: "REFUND_REQUESTED",
	OrderStatusRefunded:        "REFUNDED",
	OrderStatusReturned:        "RETURNED",
	OrderStatusOnHold:          "ON_HOLD",
	OrderStatusFailed:          "FAILED",
	OrderStatusArchived:        "ARCHIVED",
}

var orderStatusDisplayNames = map[OrderStatus]string{
	OrderStatusNew:             "New",
	OrderStatusAwaitingPayment: "Awaiting payment",
	OrderStatusPaid:            "Paid",
	OrderStatusApproved:        "Approved",
	OrderStatusPreparing:       "Preparing",
	OrderStatusReadyToShip:     "Ready to ship",
	OrderStatusShipped:         "Shipped",
	OrderStatusInTransit:       "In transit",
	OrderStatusDelivered:       "Delivered",
	OrderStatusCompleted:       "Completed",
	OrderStatusCancelRequested: "Cancel requested",
	OrderStatusCancelled:       "Cancelled",
	OrderStatusRefundRequested: "Refund requested",
	OrderStatusRefunded:        "Refunded",
	OrderStatusReturned:        "Returned",
	OrderStatusOnHold:          "On hold",
	OrderStatusFailed:          "Failed",
	OrderStatusArchived:        "Archived",
}
