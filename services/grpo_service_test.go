package services

import (
	"errors"
	"testing"

	"gate-app/models"
	"gate-app/sap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGRPODocumentSkipsUnacceptedItems(t *testing.T) {
	receipt := &models.POReceipt{
		SupplierCode: "V0001",
		DocEntry:     812,
		Items: []models.POItemReceipt{
			{ID: 1, ItemCode: "RM-A", AcceptedQty: 100, UnitPrice: 52.5, TaxCode: "GST18", WhsCode: "RM01", BaseLine: 0},
			{ID: 2, ItemCode: "RM-B", AcceptedQty: 0, BaseLine: 1},
			{ID: 3, ItemCode: "RM-C", AcceptedQty: 25, WhsCode: "RM01", BaseLine: 2},
		},
	}

	doc, lines := BuildGRPODocument(receipt, "gate entry GE-20260828-0001")

	assert.Equal(t, "V0001", doc.CardCode)
	assert.Equal(t, "gate entry GE-20260828-0001", doc.Comments)
	require.Len(t, doc.DocumentLines, 2)
	require.Len(t, lines, 2)

	first := doc.DocumentLines[0]
	assert.Equal(t, "RM-A", first.ItemCode)
	assert.Equal(t, 100.0, first.Quantity)
	assert.Equal(t, 52.5, first.UnitPrice)
	assert.Equal(t, "GST18", first.TaxCode)
	assert.Equal(t, "RM01", first.WarehouseCode)

	assert.Equal(t, "RM-C", doc.DocumentLines[1].ItemCode)
	assert.Equal(t, 25.0, doc.DocumentLines[1].Quantity)

	assert.Equal(t, int64(1), lines[0].POItemReceiptId)
	assert.Equal(t, 100.0, lines[0].PostedQty)
	assert.Equal(t, int64(3), lines[1].POItemReceiptId)
	assert.Equal(t, 25.0, lines[1].PostedQty)
}

func TestBuildGRPODocumentBaseDocumentLinkage(t *testing.T) {
	receipt := &models.POReceipt{
		SupplierCode: "V0001",
		DocEntry:     812,
		Items: []models.POItemReceipt{
			{ID: 1, ItemCode: "RM-A", AcceptedQty: 10, BaseLine: 3},
			{ID: 2, ItemCode: "RM-B", AcceptedQty: 20, BaseLine: 5},
		},
	}

	doc, lines := BuildGRPODocument(receipt, "")
	require.Len(t, doc.DocumentLines, 2)

	for i, line := range doc.DocumentLines {
		assert.Equal(t, sap.BaseTypePurchaseOrder, line.BaseType)
		assert.Equal(t, 812, line.BaseEntry)
		require.NotNil(t, line.BaseLine, "line %d", i)
	}
	assert.Equal(t, 3, *doc.DocumentLines[0].BaseLine)
	assert.Equal(t, 5, *doc.DocumentLines[1].BaseLine)

	assert.Equal(t, 812, lines[0].BaseEntry)
	assert.Equal(t, 3, lines[0].BaseLine)
	assert.Equal(t, 5, lines[1].BaseLine)
}

func TestBuildGRPODocumentWithoutBaseDocument(t *testing.T) {
	// A receipt keyed in manually has no ERP doc entry, so the lines carry no
	// base-document reference.
	receipt := &models.POReceipt{
		SupplierCode: "V0002",
		Items: []models.POItemReceipt{
			{ID: 1, ItemCode: "RM-A", AcceptedQty: 10, BaseLine: 3},
		},
	}

	doc, _ := BuildGRPODocument(receipt, "")
	require.Len(t, doc.DocumentLines, 1)
	assert.Zero(t, doc.DocumentLines[0].BaseType)
	assert.Zero(t, doc.DocumentLines[0].BaseEntry)
	assert.Nil(t, doc.DocumentLines[0].BaseLine)
}

func TestBuildGRPODocumentAllRejected(t *testing.T) {
	receipt := &models.POReceipt{
		SupplierCode: "V0001",
		Items: []models.POItemReceipt{
			{ID: 1, ItemCode: "RM-A", AcceptedQty: 0},
			{ID: 2, ItemCode: "RM-B", AcceptedQty: 0},
		},
	}

	doc, lines := BuildGRPODocument(receipt, "")
	assert.Empty(t, doc.DocumentLines)
	assert.Empty(t, lines)
}

func TestClassifySAPError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		category string
	}{
		{"connection", &sap.ConnectionError{CompanyCode: "C001", Op: "Login", Err: errors.New("timeout")}, "connection"},
		{"validation", &sap.ValidationError{CompanyCode: "C001", Op: "PurchaseDeliveryNotes", Message: "item missing"}, "validation"},
		{"data", &sap.DataError{CompanyCode: "C001", Op: "PurchaseDeliveryNotes", Err: errors.New("status 500")}, "data"},
		{"unknown", errors.New("boom"), "internal"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.category, ClassifySAPError(tc.err))
		})
	}
}

func TestValidateRepost(t *testing.T) {
	require.NoError(t, validateRepost(nil, "4500001234"))
	require.NoError(t, validateRepost(&models.GRPOPosting{Status: models.GRPOStatusPending}, "4500001234"))
	require.NoError(t, validateRepost(&models.GRPOPosting{Status: models.GRPOStatusFailed}, "4500001234"))

	for _, status := range []string{models.GRPOStatusPosted, models.GRPOStatusPartiallyPosted} {
		err := validateRepost(&models.GRPOPosting{Status: status}, "4500001234")
		var conflictErr *models.ConflictError
		require.ErrorAs(t, err, &conflictErr, status)
		assert.Equal(t, "GRPO already posted for PO 4500001234", conflictErr.Detail)
	}
}

func TestPlanAttachmentWork(t *testing.T) {
	posted := &models.GRPOPosting{Status: models.GRPOStatusPosted, SapDocEntry: 812}

	// Fresh attachment owes both remote calls.
	upload, err := PlanAttachmentWork(&models.GRPOAttachment{Status: models.AttachmentStatusPending}, posted)
	require.NoError(t, err)
	assert.True(t, upload)

	// A failed link attempt left the remote reference behind: only the link
	// is owed, the upload is never repeated.
	upload, err = PlanAttachmentWork(&models.GRPOAttachment{Status: models.AttachmentStatusFailed, SapAbsoluteEntry: 321}, posted)
	require.NoError(t, err)
	assert.False(t, upload)

	// A failed upload left no reference, so the whole chain runs again.
	upload, err = PlanAttachmentWork(&models.GRPOAttachment{Status: models.AttachmentStatusFailed}, posted)
	require.NoError(t, err)
	assert.True(t, upload)

	// A posting with incomplete attachment evidence still accepts retries.
	partially := &models.GRPOPosting{Status: models.GRPOStatusPartiallyPosted, SapDocEntry: 812}
	upload, err = PlanAttachmentWork(&models.GRPOAttachment{Status: models.AttachmentStatusFailed, SapAbsoluteEntry: 321}, partially)
	require.NoError(t, err)
	assert.False(t, upload)
}

func TestPlanAttachmentWorkRejections(t *testing.T) {
	posted := &models.GRPOPosting{Status: models.GRPOStatusPosted, SapDocEntry: 812}

	_, err := PlanAttachmentWork(&models.GRPOAttachment{Status: models.AttachmentStatusLinked, SapAbsoluteEntry: 321}, posted)
	var conflictErr *models.ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, "attachment already linked", conflictErr.Detail)

	pending := &models.GRPOAttachment{Status: models.AttachmentStatusPending}
	for name, posting := range map[string]*models.GRPOPosting{
		"pending posting":     {Status: models.GRPOStatusPending},
		"failed posting":      {Status: models.GRPOStatusFailed},
		"posted without doc":  {Status: models.GRPOStatusPosted},
		"partial without doc": {Status: models.GRPOStatusPartiallyPosted},
	} {
		_, err := PlanAttachmentWork(pending, posting)
		var validationErr *models.ValidationError
		require.ErrorAs(t, err, &validationErr, name)
	}
}

func TestClassifySAPErrorWrapped(t *testing.T) {
	wrapped := errors.Join(errors.New("retry 2/3"), &sap.ConnectionError{CompanyCode: "C001", Op: "Login", Err: errors.New("refused")})
	assert.Equal(t, "connection", ClassifySAPError(wrapped))
}
