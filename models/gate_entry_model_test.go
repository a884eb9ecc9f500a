package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEntryTransitionAllowed(t *testing.T) {
	allowed := []struct{ from, to string }{
		{EntryStatusDraft, EntryStatusInProgress},
		{EntryStatusInProgress, EntryStatusQCPending},
		{EntryStatusQCPending, EntryStatusQCCompleted},
		{EntryStatusQCCompleted, EntryStatusCompleted},
	}
	for _, tc := range allowed {
		assert.NoError(t, ValidateEntryTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestValidateEntryTransitionRejected(t *testing.T) {
	statuses := []string{
		EntryStatusDraft, EntryStatusInProgress, EntryStatusQCPending,
		EntryStatusQCCompleted, EntryStatusCompleted, EntryStatusCancelled,
	}
	allowed := map[string]string{
		EntryStatusDraft:       EntryStatusInProgress,
		EntryStatusInProgress:  EntryStatusQCPending,
		EntryStatusQCPending:   EntryStatusQCCompleted,
		EntryStatusQCCompleted: EntryStatusCompleted,
	}

	for _, from := range statuses {
		for _, to := range statuses {
			if allowed[from] == to {
				continue
			}
			err := ValidateEntryTransition(from, to)
			require.Error(t, err, "%s -> %s should be rejected", from, to)

			var transitionErr *InvalidTransitionError
			require.ErrorAs(t, err, &transitionErr)
			assert.Equal(t, from, transitionErr.From)
			assert.Equal(t, to, transitionErr.To)
		}
	}
}

func TestValidateEntryTransitionUnknownStatus(t *testing.T) {
	err := ValidateEntryTransition("UNKNOWN", EntryStatusInProgress)
	var transitionErr *InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
}

func TestValidateEntryTransitionNoSkipping(t *testing.T) {
	// The chain must be walked one status at a time.
	assert.Error(t, ValidateEntryTransition(EntryStatusDraft, EntryStatusCompleted))
	assert.Error(t, ValidateEntryTransition(EntryStatusDraft, EntryStatusQCPending))
	assert.Error(t, ValidateEntryTransition(EntryStatusInProgress, EntryStatusCompleted))
}

func TestValidateEntryTransitionNoCancelViaTransition(t *testing.T) {
	// CANCELLED is only reachable through the explicit cancel operation.
	for _, from := range []string{EntryStatusDraft, EntryStatusInProgress, EntryStatusQCPending, EntryStatusQCCompleted} {
		assert.Error(t, ValidateEntryTransition(from, EntryStatusCancelled), "from %s", from)
	}
}

func TestValidEntryType(t *testing.T) {
	for _, valid := range []string{EntryTypeRawMaterial, EntryTypeDailyNeed, EntryTypeMaintenance, EntryTypeConstruction} {
		assert.True(t, ValidEntryType(valid), valid)
	}
	assert.False(t, ValidEntryType(""))
	assert.False(t, ValidEntryType("VISITOR"))
	assert.False(t, ValidEntryType("raw_material"))
}

func TestWeighmentNetWeightDerived(t *testing.T) {
	w := Weighment{GrossWeight: 12500, TareWeight: 4300, NetWeight: 999}
	require.NoError(t, w.BeforeSave(nil))
	assert.Equal(t, 8200.0, w.NetWeight)
}
