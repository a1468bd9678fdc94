package sync

import (
	"errors"
	"fmt"
)

var (
	// Remote service errors
	ErrConnection    = errors.New("sync: remote service unreachable or returned an unexpected payload")
	ErrConfigMissing = errors.New("sync: no connection settings stored for shop")

	// Transfer errors
	ErrResolution     = errors.New("sync: customer resolution rejected by host platform")
	ErrDuplicateOrder = errors.New("sync: order already synced")
	ErrTransfer       = errors.New("sync: host order creation rejected")

	// Validation errors
	ErrInvalidOrder       = errors.New("sync: invalid remote order")
	ErrInvalidLedgerEntry = errors.New("sync: invalid ledger entry")
)

// DuplicateOrderError reports a refused re-import, naming the host order the
// source order was already imported as
type DuplicateOrderError struct {
	OrderNumber   string
	HostOrderID   string
	HostOrderName string
}

// Error implements the error interface
func (e *DuplicateOrderError) Error() string {
	return fmt.Sprintf("%v: order %s already imported as %s",
		ErrDuplicateOrder, e.OrderNumber, e.HostOrderName)
}

// Unwrap makes the error match ErrDuplicateOrder under errors.Is
func (e *DuplicateOrderError) Unwrap() error {
	return ErrDuplicateOrder
}
