package sync

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ordersync/backend/internal/domain/shared"
	ordersync "github.com/ordersync/backend/internal/domain/sync"
)

// fakePlatform is an in-memory HostPlatform for resolver and transfer tests
type fakePlatform struct {
	byEmail map[string]*ordersync.HostCustomer
	byPhone map[string]*ordersync.HostCustomer

	createdCustomers []ordersync.NewCustomerInput
	draftInputs      []ordersync.DraftOrderInput

	nextID    int64
	searchErr error
	createErr error
	draftErr  error

	// failOrderTag trips draftErrFor only for draft orders whose tags
	// contain it, letting batch tests fail a single order
	failOrderTag string
	draftErrFor  error
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{
		byEmail: make(map[string]*ordersync.HostCustomer),
		byPhone: make(map[string]*ordersync.HostCustomer),
		nextID:  1000,
	}
}

func (p *fakePlatform) addCustomer(id, firstName, lastName, email, phone string) {
	c := &ordersync.HostCustomer{ID: id, FirstName: firstName, LastName: lastName, Email: email, Phone: phone}
	if email != "" {
		p.byEmail[email] = c
	}
	if phone != "" {
		p.byPhone[phone] = c
	}
}

func (p *fakePlatform) FindCustomerByEmail(_ context.Context, email string) (*ordersync.HostCustomer, error) {
	if p.searchErr != nil {
		return nil, p.searchErr
	}
	if c, ok := p.byEmail[email]; ok {
		return c, nil
	}
	return nil, shared.ErrNotFound
}

func (p *fakePlatform) FindCustomerByPhone(_ context.Context, phone string) (*ordersync.HostCustomer, error) {
	if p.searchErr != nil {
		return nil, p.searchErr
	}
	if c, ok := p.byPhone[phone]; ok {
		return c, nil
	}
	return nil, shared.ErrNotFound
}

func (p *fakePlatform) CreateCustomer(_ context.Context, input ordersync.NewCustomerInput) (*ordersync.HostCustomer, error) {
	if p.createErr != nil {
		return nil, p.createErr
	}
	p.createdCustomers = append(p.createdCustomers, input)
	p.nextID++
	created := &ordersync.HostCustomer{
		ID:        strconv.FormatInt(p.nextID, 10),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
	}
	if input.Email != "" {
		p.byEmail[input.Email] = created
	}
	if input.Phone != "" {
		p.byPhone[input.Phone] = created
	}
	return created, nil
}

func (p *fakePlatform) CreateDraftOrder(_ context.Context, input ordersync.DraftOrderInput) (*ordersync.DraftOrder, error) {
	if p.draftErr != nil {
		return nil, p.draftErr
	}
	if p.failOrderTag != "" && strings.Contains(input.Tags, p.failOrderTag) {
		return nil, p.draftErrFor
	}
	p.draftInputs = append(p.draftInputs, input)
	id := int64(9000 + len(p.draftInputs))
	return &ordersync.DraftOrder{
		ID:   strconv.FormatInt(id, 10),
		Name: "#D" + strconv.Itoa(len(p.draftInputs)),
	}, nil
}

var _ ordersync.HostPlatform = (*fakePlatform)(nil)

// scenarioOrder is the canonical two-line-item order used across the
// application tests
func scenarioOrder() ordersync.NormalizedOrder {
	return ordersync.Normalize(ordersync.RemoteOrder{
		OrderNumber: "1001",
		Name:        "Ayşe",
		Surname:     "Yılmaz",
		Email:       "a@b.com",
		RawPhone:    "05321234567",
		Status:      ordersync.OrderStatusPaid,
		Address: ordersync.Address{
			Street: "Atatürk Cad. 5",
			City:   "İstanbul",
		},
		Items: []ordersync.LineItem{
			{Title: "Pamuk Tişört", Quantity: 2, BaseAmount: decimal.NewFromInt(100), TaxAmount: decimal.NewFromInt(18)},
			{Title: "Çorap", Quantity: 1, BaseAmount: decimal.NewFromInt(50), TaxAmount: decimal.Zero},
		},
	})
}

func TestCustomerResolver_Resolve(t *testing.T) {
	t.Run("email match wins over phone match", func(t *testing.T) {
		platform := newFakePlatform()
		platform.addCustomer("11", "Ayşe", "Yılmaz", "a@b.com", "")
		platform.addCustomer("22", "Başka", "Biri", "", "+905321234567")
		resolver := NewCustomerResolver(platform, zap.NewNop())

		match, err := resolver.Resolve(context.Background(), scenarioOrder())

		require.NoError(t, err)
		assert.Equal(t, "11", match.HostCustomerID)
		assert.False(t, match.IsNew)
		assert.Empty(t, platform.createdCustomers)
	})

	t.Run("falls back to phone when email misses", func(t *testing.T) {
		platform := newFakePlatform()
		platform.addCustomer("22", "Ayşe", "Yılmaz", "", "+905321234567")
		resolver := NewCustomerResolver(platform, zap.NewNop())

		match, err := resolver.Resolve(context.Background(), scenarioOrder())

		require.NoError(t, err)
		assert.Equal(t, "22", match.HostCustomerID)
		assert.False(t, match.IsNew)
	})

	t.Run("creates a customer when nothing matches", func(t *testing.T) {
		platform := newFakePlatform()
		resolver := NewCustomerResolver(platform, zap.NewNop())

		match, err := resolver.Resolve(context.Background(), scenarioOrder())

		require.NoError(t, err)
		assert.True(t, match.IsNew)
		assert.NotEmpty(t, match.HostCustomerID)
		assert.Equal(t, "Ayşe Yılmaz", match.DisplayName)

		require.Len(t, platform.createdCustomers, 1)
		created := platform.createdCustomers[0]
		assert.Equal(t, "a@b.com", created.Email)
		assert.Equal(t, "+905321234567", created.Phone)
		require.NotNil(t, created.Address)
		assert.Equal(t, "İstanbul", created.Address.City)
		assert.Equal(t, "TR", created.Address.Country)
	})

	t.Run("order without address creates customer without one", func(t *testing.T) {
		platform := newFakePlatform()
		resolver := NewCustomerResolver(platform, zap.NewNop())

		order := scenarioOrder()
		order.Address = ordersync.Address{}

		_, err := resolver.Resolve(context.Background(), order)
		require.NoError(t, err)
		require.Len(t, platform.createdCustomers, 1)
		assert.Nil(t, platform.createdCustomers[0].Address)
	})

	t.Run("order without email skips straight to phone", func(t *testing.T) {
		platform := newFakePlatform()
		platform.addCustomer("22", "Ayşe", "Yılmaz", "", "+905321234567")
		resolver := NewCustomerResolver(platform, zap.NewNop())

		order := scenarioOrder()
		order.Email = ""

		match, err := resolver.Resolve(context.Background(), order)
		require.NoError(t, err)
		assert.Equal(t, "22", match.HostCustomerID)
	})

	t.Run("lookup failure surfaces as resolution error", func(t *testing.T) {
		platform := newFakePlatform()
		platform.searchErr = errors.New("hostapi: HTTP 500")
		resolver := NewCustomerResolver(platform, zap.NewNop())

		_, err := resolver.Resolve(context.Background(), scenarioOrder())
		assert.ErrorIs(t, err, ordersync.ErrResolution)
	})

	t.Run("create failure surfaces as resolution error", func(t *testing.T) {
		platform := newFakePlatform()
		platform.createErr = errors.New("hostapi: HTTP 422: email invalid")
		resolver := NewCustomerResolver(platform, zap.NewNop())

		_, err := resolver.Resolve(context.Background(), scenarioOrder())
		require.Error(t, err)
		assert.ErrorIs(t, err, ordersync.ErrResolution)
		assert.Contains(t, err.Error(), "email invalid")
	})
}
