package sap

import (
	"fmt"
	"net/http"
)

// Base object type of a purchase order in the service layer, used for
// base-document linking on GRPO lines.
const BaseTypePurchaseOrder = 22

type DocumentLine struct {
	ItemCode      string  `json:"ItemCode"`
	Quantity      float64 `json:"Quantity"`
	UnitPrice     float64 `json:"UnitPrice,omitempty"`
	TaxCode       string  `json:"TaxCode,omitempty"`
	WarehouseCode string  `json:"WarehouseCode,omitempty"`
	BaseType      int     `json:"BaseType,omitempty"`
	BaseEntry     int     `json:"BaseEntry,omitempty"`
	BaseLine      *int    `json:"BaseLine,omitempty"`
}

type GRPODocument struct {
	CardCode               string         `json:"CardCode"`
	BPLIDAssignedToInvoice int            `json:"BPL_IDAssignedToInvoice,omitempty"`
	Comments               string         `json:"Comments,omitempty"`
	DocumentLines          []DocumentLine `json:"DocumentLines"`
}

type GRPOResult struct {
	DocEntry int     `json:"DocEntry"`
	DocNum   int     `json:"DocNum"`
	DocTotal float64 `json:"DocTotal"`
}

// PostGRPO creates a goods-receipt-PO document and returns its identity.
func (c *Client) PostGRPO(doc GRPODocument) (*GRPOResult, error) {
	if len(doc.DocumentLines) == 0 {
		return nil, &ValidationError{
			CompanyCode: c.company.CompanyCode,
			Op:          "PurchaseDeliveryNotes",
			Message:     "document has no lines",
		}
	}
	if doc.BPLIDAssignedToInvoice == 0 {
		doc.BPLIDAssignedToInvoice = c.company.BranchId
	}

	var result GRPOResult
	if err := c.doJSON(http.MethodPost, "/PurchaseDeliveryNotes", doc, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// LinkAttachment patches the GRPO document with an uploaded attachment
// reference.
func (c *Client) LinkAttachment(docEntry, absoluteEntry int) error {
	payload := map[string]int{"AttachmentEntry": absoluteEntry}
	path := fmt.Sprintf("/PurchaseDeliveryNotes(%d)", docEntry)
	return c.doJSON(http.MethodPatch, path, payload, nil)
}
