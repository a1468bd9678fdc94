package sync

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLedgerEntry(t *testing.T) {
	entry := NewLedgerEntry("acme", "1001")

	assert.NotEqual(t, uuid.Nil, entry.ID)
	assert.Equal(t, "acme", entry.Shop)
	assert.Equal(t, "1001", entry.OrderNumber)
	assert.Equal(t, LedgerStatusPending, entry.Status)
	assert.False(t, entry.CreatedAt.IsZero())
	assert.Nil(t, entry.SyncedAt)
}

func TestLedgerEntry_MarkSynced(t *testing.T) {
	entry := NewLedgerEntry("acme", "1001")
	entry.TotalAmount = decimal.NewFromInt(286)

	entry.MarkSynced("987", "#D42")

	assert.Equal(t, LedgerStatusSynced, entry.Status)
	assert.Equal(t, "987", entry.HostOrderID)
	assert.Equal(t, "#D42", entry.HostOrderName)
	assert.Empty(t, entry.ErrorMessage)
	require.NotNil(t, entry.SyncedAt)
}

func TestLedgerEntry_MarkFailed(t *testing.T) {
	entry := NewLedgerEntry("acme", "1001")

	entry.MarkFailed("HTTP 422: line items invalid")

	assert.Equal(t, LedgerStatusFailed, entry.Status)
	assert.Equal(t, "HTTP 422: line items invalid", entry.ErrorMessage)
	assert.Nil(t, entry.SyncedAt)
}

func TestLedgerEntry_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*LedgerEntry)
		wantErr bool
	}{
		{name: "valid entry", mutate: func(*LedgerEntry) {}},
		{name: "missing shop", mutate: func(e *LedgerEntry) { e.Shop = "" }, wantErr: true},
		{name: "missing order number", mutate: func(e *LedgerEntry) { e.OrderNumber = "" }, wantErr: true},
		{name: "nil id", mutate: func(e *LedgerEntry) { e.ID = uuid.Nil }, wantErr: true},
		{name: "bogus status", mutate: func(e *LedgerEntry) { e.Status = LedgerStatus("weird") }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := NewLedgerEntry("acme", "1001")
			tt.mutate(entry)
			err := entry.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidLedgerEntry)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLedgerStatus(t *testing.T) {
	assert.True(t, LedgerStatusPending.IsValid())
	assert.True(t, LedgerStatusSynced.IsValid())
	assert.True(t, LedgerStatusFailed.IsValid())
	assert.False(t, LedgerStatus("done").IsValid())
	assert.Equal(t, "synced", LedgerStatusSynced.String())
}
