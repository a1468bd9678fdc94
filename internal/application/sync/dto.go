package sync

import (
	"time"

	ordersync "github.com/ordersync/backend/internal/domain/sync"
)

// TransferResult is the outcome of a successful single-order transfer
type TransferResult struct {
	// HostOrderID is the created draft order identifier
	HostOrderID string
	// HostOrderName is the draft order display name
	HostOrderName string
	// Customer is the resolved (or created) host customer
	Customer ordersync.CustomerMatch
}

// OrderOutcome labels what happened to one order during a batch sync
type OrderOutcome string

const (
	// OutcomeSynced indicates the order was created on the host platform
	OutcomeSynced OrderOutcome = "synced"
	// OutcomeDuplicate indicates the order already had a synced ledger row.
	// This is a normal, expected result, not a failure.
	OutcomeDuplicate OrderOutcome = "duplicate"
	// OutcomeFailed indicates the transfer failed; the order is retryable
	OutcomeFailed OrderOutcome = "failed"
)

// OrderReport is the per-order line of a batch report
type OrderReport struct {
	// OrderNumber is the source order number
	OrderNumber string
	// Outcome labels the result
	Outcome OrderOutcome
	// HostOrderName names the created (or previously created) host order
	HostOrderName string
	// Reason carries the failure text when Outcome is failed
	Reason string
}

// BatchReport summarizes one batch sync invocation for an operator
type BatchReport struct {
	// Shop is the shop the batch ran for
	Shop string
	// Total is the number of orders attempted
	Total int
	// Synced is the number of orders created on the host platform
	Synced int
	// Duplicates is the number of orders skipped as already synced
	Duplicates int
	// Failed is the number of orders that failed with a reason
	Failed int
	// Orders contains the per-order outcomes, in processing order
	Orders []OrderReport
	// FinishedAt is when the batch completed
	FinishedAt time.Time
}
