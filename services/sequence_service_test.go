package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSequenceNumber(t *testing.T) {
	assert.Equal(t, "RPT-20260828-0001", FormatSequenceNumber(ReportNoPrefix, "20260828", 1))
	assert.Equal(t, "LOT-20260828-0042", FormatSequenceNumber(LotNoPrefix, "20260828", 42))
	assert.Equal(t, "GE-20261231-9999", FormatSequenceNumber(EntryNoPrefix, "20261231", 9999))
	// The counter widens past four digits instead of wrapping.
	assert.Equal(t, "GE-20260828-10001", FormatSequenceNumber(EntryNoPrefix, "20260828", 10001))
}
