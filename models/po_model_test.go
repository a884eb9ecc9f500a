package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPOItemReceiptRecalculate(t *testing.T) {
	item := POItemReceipt{OrderedQty: 100, ReceivedQty: 90, AcceptedQty: 85}
	item.Recalculate()
	assert.Equal(t, 10.0, item.ShortQty)
	assert.Equal(t, 5.0, item.RejectedQty)
}

func TestPOItemReceiptRecalculateFractional(t *testing.T) {
	item := POItemReceipt{OrderedQty: 10.5, ReceivedQty: 10.5, AcceptedQty: 10.25}
	item.Recalculate()
	assert.InDelta(t, 0.0, item.ShortQty, 1e-9)
	assert.InDelta(t, 0.25, item.RejectedQty, 1e-9)
}

func TestPOItemReceiptRecalculateOverridesCallerValues(t *testing.T) {
	// Derived fields are never accepted from the caller.
	item := POItemReceipt{OrderedQty: 50, ReceivedQty: 50, AcceptedQty: 50, ShortQty: 7, RejectedQty: 7}
	require.NoError(t, item.BeforeSave(nil))
	assert.Equal(t, 0.0, item.ShortQty)
	assert.Equal(t, 0.0, item.RejectedQty)
}

func TestValidateReceivedQty(t *testing.T) {
	tests := []struct {
		name     string
		ordered  float64
		received float64
		detail   string
	}{
		{"zero", 100, 0, "must be greater than zero"},
		{"negative", 100, -5, "must be greater than zero"},
		{"just above tolerance", 100, 110.01, "exceeds 110% of ordered quantity"},
		{"double", 100, 200, "exceeds 110% of ordered quantity"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateReceivedQty(tc.ordered, tc.received)
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, "received_qty", validationErr.Field)
			assert.Equal(t, tc.detail, validationErr.Detail)
		})
	}
}

func TestValidateReceivedQtyWithinTolerance(t *testing.T) {
	assert.NoError(t, ValidateReceivedQty(100, 1))
	assert.NoError(t, ValidateReceivedQty(100, 100))
	// The tolerance boundary itself is accepted.
	assert.NoError(t, ValidateReceivedQty(100, 110))
	assert.NoError(t, ValidateReceivedQty(20, 22))
}
