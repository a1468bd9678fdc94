package sync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ordersync/backend/internal/domain/shared"
	ordersync "github.com/ordersync/backend/internal/domain/sync"
)

// maxFetchPages bounds a single pull so a misbehaving endpoint that keeps
// returning full pages cannot spin the loop forever.
const maxFetchPages = 50

// TransferService orchestrates the sync pipeline: fetch orders from the
// legacy service, resolve customers on the host platform, create draft
// orders, and record every attempt in the ledger.
type TransferService struct {
	connections ordersync.ShopConnectionRepository
	ledger      ordersync.LedgerRepository
	sources     ordersync.RemoteSourceProvider
	resolver    *CustomerResolver
	platform    ordersync.HostPlatform
	logger      *zap.Logger
}

// NewTransferService creates the sync orchestrator
func NewTransferService(
	connections ordersync.ShopConnectionRepository,
	ledger ordersync.LedgerRepository,
	sources ordersync.RemoteSourceProvider,
	platform ordersync.HostPlatform,
	logger *zap.Logger,
) *TransferService {
	return &TransferService{
		connections: connections,
		ledger:      ledger,
		sources:     sources,
		resolver:    NewCustomerResolver(platform, logger),
		platform:    platform,
		logger:      logger,
	}
}

// ---------------------------------------------------------------------------
// Single Order Transfer
// ---------------------------------------------------------------------------

// Transfer imports one normalized order into the host platform.
//
// A duplicate guard runs first: when the ledger already holds a synced row
// for the (shop, order number) pair, the transfer is refused with
// ErrDuplicateOrder and no new ledger row is written. Otherwise the buyer is
// resolved to a host customer, a draft order is created, and the attempt is
// appended to the ledger as synced or failed.
func (s *TransferService) Transfer(ctx context.Context, shop string, order ordersync.NormalizedOrder) (*TransferResult, error) {
	if err := order.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.ledger.FindSynced(ctx, shop, order.OrderNumber)
	if err == nil {
		return nil, &ordersync.DuplicateOrderError{
			OrderNumber:   order.OrderNumber,
			HostOrderID:   existing.HostOrderID,
			HostOrderName: existing.HostOrderName,
		}
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, fmt.Errorf("duplicate check for order %s: %w", order.OrderNumber, err)
	}

	if order.Status.IsValid() && !order.Status.IsFinal() {
		// The upstream order may still change after import
		s.logger.Warn("importing order in a non-final status",
			zap.String("shop", shop),
			zap.String("order_number", order.OrderNumber),
			zap.String("status", order.Status.DisplayName()))
	}

	entry := ordersync.NewLedgerEntry(shop, order.OrderNumber)
	entry.CustomerName = order.BuyerName()
	entry.TotalAmount = order.Total
	if raw, marshalErr := json.Marshal(order.RemoteOrder); marshalErr == nil {
		entry.RawOrder = string(raw)
	}

	customer, err := s.resolver.Resolve(ctx, order)
	if err != nil {
		s.recordFailure(ctx, entry, err)
		return nil, err
	}
	entry.CustomerName = customer.DisplayName
	entry.HostCustomerID = customer.HostCustomerID

	draft, err := s.platform.CreateDraftOrder(ctx, s.draftInput(shop, order, customer))
	if err != nil {
		s.recordFailure(ctx, entry, err)
		return nil, fmt.Errorf("%w: order %s: %v", ordersync.ErrTransfer, order.OrderNumber, err)
	}

	entry.MarkSynced(draft.ID, draft.Name)
	if err := s.ledger.Append(ctx, entry); err != nil {
		// The host order exists but no ledger row blocks a re-import; name
		// the host order so an operator can reconcile.
		return nil, fmt.Errorf("order %s created as %s but ledger write failed: %w",
			order.OrderNumber, draft.Name, err)
	}

	s.logger.Info("order transferred",
		zap.String("shop", shop),
		zap.String("order_number", order.OrderNumber),
		zap.String("host_order_name", draft.Name),
		zap.String("host_customer_id", customer.HostCustomerID),
		zap.Bool("customer_created", customer.IsNew),
		zap.String("total", order.Total.StringFixed(2)))

	return &TransferResult{
		HostOrderID:   draft.ID,
		HostOrderName: draft.Name,
		Customer:      customer,
	}, nil
}

// recordFailure appends the entry as failed so the attempt stays visible to
// operators. An append error is logged, not returned; the caller already has
// the transfer error to surface.
func (s *TransferService) recordFailure(ctx context.Context, entry *ordersync.LedgerEntry, cause error) {
	entry.MarkFailed(cause.Error())
	if err := s.ledger.Append(ctx, entry); err != nil {
		s.logger.Error("failed to record failed transfer attempt",
			zap.String("shop", entry.Shop),
			zap.String("order_number", entry.OrderNumber),
			zap.Error(err))
	}
}

// draftInput builds the host draft order request for a resolved order
func (s *TransferService) draftInput(shop string, order ordersync.NormalizedOrder, customer ordersync.CustomerMatch) ordersync.DraftOrderInput {
	items := make([]ordersync.HostLineItem, 0, len(order.Items))
	for _, li := range order.Items {
		items = append(items, ordersync.HostLineItem{
			Title:    li.Title,
			Quantity: li.Quantity,
			Price:    li.UnitPrice(),
			SKU:      li.SKU,
		})
	}

	input := ordersync.DraftOrderInput{
		CustomerID: customer.HostCustomerID,
		Email:      order.Email,
		Phone:      order.Phone,
		LineItems:  items,
		Note:       fmt.Sprintf("Imported from %s, source order %s", shop, order.OrderNumber),
		Tags:       fmt.Sprintf("legacy-sync, %s", order.OrderNumber),
	}
	if !order.Address.IsZero() {
		addr := hostAddress(order)
		input.ShippingAddress = &addr
	}
	return input
}

// ---------------------------------------------------------------------------
// Order Pull
// ---------------------------------------------------------------------------

// PullOrders fetches all orders matching the filter from the shop's legacy
// endpoint, walking pages until a short page signals the end. Every fetched
// order is normalized before it is returned.
func (s *TransferService) PullOrders(ctx context.Context, shop string, filter ordersync.OrderFilter) ([]ordersync.NormalizedOrder, error) {
	conn, err := s.connections.FindByShop(ctx, shop)
	if err != nil {
		return nil, err
	}
	source, err := s.sources.Source(conn)
	if err != nil {
		return nil, err
	}

	pageSize := conn.FetchPageSize()
	var out []ordersync.NormalizedOrder
	for page := 1; page <= maxFetchPages; page++ {
		orders, err := source.FetchOrders(ctx, filter, pageSize, page)
		if err != nil {
			return nil, fmt.Errorf("fetch page %d: %w", page, err)
		}
		for _, o := range orders {
			out = append(out, ordersync.Normalize(o))
		}
		if len(orders) < pageSize {
			break
		}
	}

	s.logger.Debug("orders pulled",
		zap.String("shop", shop),
		zap.Int("count", len(out)))
	return out, nil
}

// ---------------------------------------------------------------------------
// Batch Sync
// ---------------------------------------------------------------------------

// SyncShop pulls every order matching the filter and transfers them one by
// one. Failures and duplicates do not stop the batch; each order's outcome
// is reported individually.
func (s *TransferService) SyncShop(ctx context.Context, shop string, filter ordersync.OrderFilter) (*BatchReport, error) {
	orders, err := s.PullOrders(ctx, shop, filter)
	if err != nil {
		return nil, err
	}

	report := &BatchReport{
		Shop:   shop,
		Total:  len(orders),
		Orders: make([]OrderReport, 0, len(orders)),
	}
	for _, order := range orders {
		result, err := s.Transfer(ctx, shop, order)
		var dup *ordersync.DuplicateOrderError
		switch {
		case err == nil:
			report.Synced++
			report.Orders = append(report.Orders, OrderReport{
				OrderNumber:   order.OrderNumber,
				Outcome:       OutcomeSynced,
				HostOrderName: result.HostOrderName,
			})
		case errors.As(err, &dup):
			report.Duplicates++
			report.Orders = append(report.Orders, OrderReport{
				OrderNumber:   order.OrderNumber,
				Outcome:       OutcomeDuplicate,
				HostOrderName: dup.HostOrderName,
			})
		default:
			report.Failed++
			report.Orders = append(report.Orders, OrderReport{
				OrderNumber: order.OrderNumber,
				Outcome:     OutcomeFailed,
				Reason:      err.Error(),
			})
			s.logger.Warn("order transfer failed",
				zap.String("shop", shop),
				zap.String("order_number", order.OrderNumber),
				zap.Error(err))
		}
	}
	report.FinishedAt = time.Now()

	s.logger.Info("batch sync finished",
		zap.String("shop", shop),
		zap.Int("total", report.Total),
		zap.Int("synced", report.Synced),
		zap.Int("duplicates", report.Duplicates),
		zap.Int("failed", report.Failed))
	return report, nil
}

// ---------------------------------------------------------------------------
// Connection Check
// ---------------------------------------------------------------------------

// TestConnection verifies the shop's configured legacy endpoint is reachable
// and the auth code is accepted
func (s *TransferService) TestConnection(ctx context.Context, shop string) error {
	conn, err := s.connections.FindByShop(ctx, shop)
	if err != nil {
		return err
	}
	source, err := s.sources.Source(conn)
	if err != nil {
		return err
	}
	return source.TestConnection(ctx)
}
