package sync

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ordersync/backend/internal/domain/shared"
	ordersync "github.com/ordersync/backend/internal/domain/sync"
)

const defaultCountry = "TR"

// CustomerResolver resolves a source order's buyer to a host platform
// customer. Lookup precedence is email first, then normalized phone. When
// neither matches, a new customer is created from the order's contact data.
type CustomerResolver struct {
	platform ordersync.HostPlatform
	logger   *zap.Logger
}

// NewCustomerResolver creates a resolver backed by the given host platform
func NewCustomerResolver(platform ordersync.HostPlatform, logger *zap.Logger) *CustomerResolver {
	return &CustomerResolver{
		platform: platform,
		logger:   logger,
	}
}

// Resolve finds or creates the host customer for a normalized order.
// An email match always wins over a phone match, even when both would hit
// different customers. Lookup or creation failures are reported as
// resolution errors.
func (r *CustomerResolver) Resolve(ctx context.Context, order ordersync.NormalizedOrder) (ordersync.CustomerMatch, error) {
	if order.Email != "" {
		customer, err := r.platform.FindCustomerByEmail(ctx, order.Email)
		if err == nil {
			r.logger.Debug("customer matched by email",
				zap.String("order_number", order.OrderNumber),
				zap.String("host_customer_id", customer.ID))
			return ordersync.CustomerMatch{
				HostCustomerID: customer.ID,
				DisplayName:    customer.DisplayName(),
			}, nil
		}
		if !errors.Is(err, shared.ErrNotFound) {
			return ordersync.CustomerMatch{}, fmt.Errorf("%w: email lookup: %v", ordersync.ErrResolution, err)
		}
	}

	if order.Phone != "" {
		customer, err := r.platform.FindCustomerByPhone(ctx, order.Phone)
		if err == nil {
			r.logger.Debug("customer matched by phone",
				zap.String("order_number", order.OrderNumber),
				zap.String("host_customer_id", customer.ID))
			return ordersync.CustomerMatch{
				HostCustomerID: customer.ID,
				DisplayName:    customer.DisplayName(),
			}, nil
		}
		if !errors.Is(err, shared.ErrNotFound) {
			return ordersync.CustomerMatch{}, fmt.Errorf("%w: phone lookup: %v", ordersync.ErrResolution, err)
		}
	}

	created, err := r.platform.CreateCustomer(ctx, ordersync.NewCustomerInput{
		FirstName: order.Name,
		LastName:  order.Surname,
		Email:     order.Email,
		Phone:     order.Phone,
		Address:   customerAddress(order),
	})
	if err != nil {
		return ordersync.CustomerMatch{}, fmt.Errorf("%w: create customer: %v", ordersync.ErrResolution, err)
	}

	r.logger.Info("customer created on host platform",
		zap.String("order_number", order.OrderNumber),
		zap.String("host_customer_id", created.ID))

	return ordersync.CustomerMatch{
		HostCustomerID: created.ID,
		DisplayName:    created.DisplayName(),
		IsNew:          true,
	}, nil
}

// customerAddress maps the order's shipping address onto the customer
// creation input. Country defaults to TR when the source omits it.
func customerAddress(order ordersync.NormalizedOrder) *ordersync.HostAddress {
	if order.Address.IsZero() {
		return nil
	}
	addr := hostAddress(order)
	return &addr
}

func hostAddress(order ordersync.NormalizedOrder) ordersync.HostAddress {
	country := order.Address.Country
	if country == "" {
		country = defaultCountry
	}
	return ordersync.HostAddress{
		FirstName: order.Name,
		LastName:  order.Surname,
		Address1:  order.Address.Street,
		Address2:  order.Address.District,
		City:      order.Address.City,
		Province:  order.Address.Province,
		Zip:       order.Address.ZipCode,
		Country:   country,
		Phone:     order.Phone,
	}
}
