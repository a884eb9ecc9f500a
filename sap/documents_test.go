package sap

import (
	"encoding/json"
	"strings"
	"testing"

	"gate-app/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostGRPORejectsEmptyDocument(t *testing.T) {
	client := NewClient(config.SAPCompany{CompanyCode: "C001"})

	result, err := client.PostGRPO(GRPODocument{CardCode: "V0001"})

	assert.Nil(t, result)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "C001", validationErr.CompanyCode)
	assert.Equal(t, "document has no lines", validationErr.Message)
}

func TestDocumentLineBaseLineZeroIsSerialized(t *testing.T) {
	// Line zero of a purchase order is a valid base line, the pointer keeps it
	// distinguishable from "no base document".
	zero := 0
	withBase := DocumentLine{ItemCode: "RM-A", Quantity: 10, BaseType: BaseTypePurchaseOrder, BaseEntry: 812, BaseLine: &zero}
	withoutBase := DocumentLine{ItemCode: "RM-A", Quantity: 10}

	b, err := json.Marshal(withBase)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"BaseLine":0`)
	assert.Contains(t, string(b), `"BaseType":22`)

	b, err = json.Marshal(withoutBase)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "BaseLine")
	assert.NotContains(t, string(b), "BaseType")
	assert.NotContains(t, string(b), "BaseEntry")
}

func TestReadErrorMessage(t *testing.T) {
	body := `{"error":{"code":-5002,"message":{"lang":"en-us","value":"Item no. is missing"}}}`
	assert.Equal(t, "Item no. is missing", readErrorMessage(strings.NewReader(body)))

	// Non service-layer bodies come back verbatim.
	assert.Equal(t, "bad gateway", readErrorMessage(strings.NewReader("bad gateway")))
}
