package utils

import (
	"errors"
	"net/http/httptest"
	"testing"

	"gate-app/models"
	"gate-app/sap"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func statusFor(t *testing.T, err error) int {
	t.Helper()
	app := fiber.New()
	app.Get("/boom", func(ctx *fiber.Ctx) error {
		return ErrorResponse(ctx, err)
	})
	resp, testErr := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, testErr)
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestErrorResponseMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", &models.ValidationError{Field: "received_qty", Detail: "must be greater than zero"}, fiber.StatusBadRequest},
		{"not found", &models.NotFoundError{Entity: "gate entry"}, fiber.StatusNotFound},
		{"gorm not found", gorm.ErrRecordNotFound, fiber.StatusNotFound},
		{"invalid transition", &models.InvalidTransitionError{From: "DRAFT", To: "COMPLETED"}, fiber.StatusConflict},
		{"locked", &models.LockedEntryError{Entity: "gate entry", ID: 1}, fiber.StatusConflict},
		{"completion blocked", &models.CompletionBlockedError{Reason: "weighment not recorded"}, fiber.StatusConflict},
		{"conflict", &models.ConflictError{Detail: "GRPO already posted for PO 4500001234"}, fiber.StatusConflict},
		{"sap connection", &sap.ConnectionError{CompanyCode: "C001", Op: "Login", Err: errors.New("timeout")}, fiber.StatusServiceUnavailable},
		{"sap validation", &sap.ValidationError{CompanyCode: "C001", Op: "PurchaseDeliveryNotes", Message: "item missing"}, fiber.StatusBadRequest},
		{"sap data", &sap.DataError{CompanyCode: "C001", Op: "PurchaseDeliveryNotes", Err: errors.New("status 500")}, fiber.StatusBadGateway},
		{"unknown", errors.New("boom"), fiber.StatusInternalServerError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.status, statusFor(t, tc.err))
		})
	}
}
