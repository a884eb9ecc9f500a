package sap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupOpenPORows(t *testing.T) {
	rows := []OpenPORow{
		{PONumber: "4500001234", SupplierName: "Acme Chemicals", OpenPOItem: OpenPOItem{DocEntry: 812, LineNum: 0, ItemCode: "RM-A", OrderedQty: 100, RemainingQty: 40}},
		{PONumber: "4500001234", SupplierName: "Acme Chemicals", OpenPOItem: OpenPOItem{DocEntry: 812, LineNum: 1, ItemCode: "RM-B", OrderedQty: 50, RemainingQty: 50}},
		{PONumber: "4500005678", SupplierName: "Acme Chemicals", OpenPOItem: OpenPOItem{DocEntry: 913, LineNum: 0, ItemCode: "RM-C", OrderedQty: 25, RemainingQty: 25}},
	}

	pos := GroupOpenPORows("V0001", rows)

	require.Len(t, pos, 2)
	assert.Equal(t, "4500001234", pos[0].PONumber)
	assert.Equal(t, 812, pos[0].DocEntry)
	assert.Equal(t, "V0001", pos[0].SupplierCode)
	assert.Equal(t, "Acme Chemicals", pos[0].SupplierName)
	require.Len(t, pos[0].Items, 2)
	assert.Equal(t, "RM-A", pos[0].Items[0].ItemCode)
	assert.Equal(t, "RM-B", pos[0].Items[1].ItemCode)

	assert.Equal(t, "4500005678", pos[1].PONumber)
	assert.Equal(t, 913, pos[1].DocEntry)
	require.Len(t, pos[1].Items, 1)
	assert.Equal(t, "RM-C", pos[1].Items[0].ItemCode)
}

func TestGroupOpenPORowsPreservesRowOrder(t *testing.T) {
	// Interleaved rows still land on their own PO, in first-seen order.
	rows := []OpenPORow{
		{PONumber: "B", OpenPOItem: OpenPOItem{LineNum: 0}},
		{PONumber: "A", OpenPOItem: OpenPOItem{LineNum: 0}},
		{PONumber: "B", OpenPOItem: OpenPOItem{LineNum: 1}},
	}

	pos := GroupOpenPORows("V0001", rows)

	require.Len(t, pos, 2)
	assert.Equal(t, "B", pos[0].PONumber)
	assert.Equal(t, "A", pos[1].PONumber)
	assert.Len(t, pos[0].Items, 2)
	assert.Len(t, pos[1].Items, 1)
}

func TestGroupOpenPORowsEmpty(t *testing.T) {
	pos := GroupOpenPORows("V0001", nil)
	assert.NotNil(t, pos)
	assert.Empty(t, pos)
}
