// Package sync contains the domain model for importing orders from a legacy
// order-management service into the host commerce platform.
//
// The package defines the remote order value objects, the phone and total
// normalization rules, the persisted sync ledger that prevents double import,
// and the ports implemented by the legacy RPC client and the host platform
// client in the infrastructure layer.
package sync
