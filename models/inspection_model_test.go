package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateInspectionTransitionAllowed(t *testing.T) {
	allowed := []struct{ from, to string }{
		{InspectionStatusDraft, InspectionStatusSubmitted},
		{InspectionStatusSubmitted, InspectionStatusChemistApproved},
		{InspectionStatusSubmitted, InspectionStatusRejected},
		{InspectionStatusChemistApproved, InspectionStatusQAMApproved},
		{InspectionStatusChemistApproved, InspectionStatusRejected},
		{InspectionStatusQAMApproved, InspectionStatusCompleted},
	}
	for _, tc := range allowed {
		assert.NoError(t, ValidateInspectionTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestValidateInspectionTransitionRejected(t *testing.T) {
	rejected := []struct{ from, to string }{
		// Approval stages cannot be skipped.
		{InspectionStatusDraft, InspectionStatusChemistApproved},
		{InspectionStatusDraft, InspectionStatusQAMApproved},
		{InspectionStatusDraft, InspectionStatusCompleted},
		{InspectionStatusSubmitted, InspectionStatusQAMApproved},
		{InspectionStatusSubmitted, InspectionStatusCompleted},
		{InspectionStatusChemistApproved, InspectionStatusCompleted},
		// Rejection only branches from the review stages.
		{InspectionStatusDraft, InspectionStatusRejected},
		{InspectionStatusQAMApproved, InspectionStatusRejected},
		// Terminal states have no successors.
		{InspectionStatusCompleted, InspectionStatusDraft},
		{InspectionStatusCompleted, InspectionStatusSubmitted},
		{InspectionStatusRejected, InspectionStatusSubmitted},
		{InspectionStatusRejected, InspectionStatusDraft},
		// No backward moves.
		{InspectionStatusSubmitted, InspectionStatusDraft},
		{InspectionStatusChemistApproved, InspectionStatusSubmitted},
		{InspectionStatusQAMApproved, InspectionStatusChemistApproved},
	}
	for _, tc := range rejected {
		err := ValidateInspectionTransition(tc.from, tc.to)
		require.Error(t, err, "%s -> %s should be rejected", tc.from, tc.to)

		var transitionErr *InvalidTransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, tc.from, transitionErr.From)
		assert.Equal(t, tc.to, transitionErr.To)
	}
}

func TestTerminalOutcome(t *testing.T) {
	assert.True(t, TerminalOutcome(FinalStatusAccepted))
	assert.True(t, TerminalOutcome(FinalStatusRejected))
	assert.False(t, TerminalOutcome(FinalStatusPending))
	assert.False(t, TerminalOutcome(FinalStatusHold))
	assert.False(t, TerminalOutcome(""))
}

func fptr(v float64) *float64 { return &v }

func TestDeriveWithinSpecNumeric(t *testing.T) {
	tests := []struct {
		name   string
		result float64
		within bool
	}{
		{"below min", 98.9, false},
		{"at min", 99.0, true},
		{"inside", 99.5, true},
		{"at max", 100.0, true},
		{"above max", 100.1, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := InspectionParameterResult{
				ParameterType: ParameterTypeNumeric,
				MinValue:      fptr(99.0),
				MaxValue:      fptr(100.0),
				ResultNumeric: fptr(tc.result),
			}
			r.DeriveWithinSpec()
			require.NotNil(t, r.IsWithinSpec)
			assert.Equal(t, tc.within, *r.IsWithinSpec)
		})
	}
}

func TestDeriveWithinSpecUndecidable(t *testing.T) {
	cases := []InspectionParameterResult{
		{ParameterType: ParameterTypeText, ResultText: "clear liquid"},
		{ParameterType: ParameterTypeBool, ResultText: "true"},
		{ParameterType: ParameterTypeNumeric, MinValue: fptr(1), MaxValue: fptr(2)},
		{ParameterType: ParameterTypeNumeric, ResultNumeric: fptr(1.5), MaxValue: fptr(2)},
		{ParameterType: ParameterTypeNumeric, ResultNumeric: fptr(1.5), MinValue: fptr(1)},
	}
	for i, r := range cases {
		r.DeriveWithinSpec()
		assert.Nil(t, r.IsWithinSpec, "case %d", i)
	}
}

func TestDeriveWithinSpecClearsManualOverride(t *testing.T) {
	within := true
	r := InspectionParameterResult{
		ParameterType: ParameterTypeText,
		IsWithinSpec:  &within,
	}
	require.NoError(t, r.BeforeSave(nil))
	assert.Nil(t, r.IsWithinSpec)
}
