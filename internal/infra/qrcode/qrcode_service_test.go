package qrcode

import (
	"encoding/json"
	"testing"

	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "medium"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GeneratePaymentQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	qrBytes, err := svc.GeneratePaymentQR(service.PaymentQRPayload{
		Reference: "HOK-1A2B3C4D",
		Amount:    50750,
		BankName:  "Test Bank",
	})
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GeneratePaymentQR_RequiresReference(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	_, err := svc.GeneratePaymentQR(service.PaymentQRPayload{Amount: 100})

	assert.Error(t, err)
}

func TestQRCodeService_GeneratePaymentQR_DifferentSizes(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		svc := NewQRCodeService(size, "M")

		qrBytes, err := svc.GeneratePaymentQR(service.PaymentQRPayload{Reference: "HOK-REF", Amount: 1})
		require.NoError(t, err)
		assert.NotEmpty(t, qrBytes)
	}
}

func TestQRCodeService_ParsePaymentQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	raw, err := json.Marshal(PaymentQRData{
		Type:          paymentQRType,
		Reference:     "HOK-1A2B3C4D",
		Amount:        502000,
		AccountNumber: "0123456789",
	})
	require.NoError(t, err)

	payload, err := svc.ParsePaymentQR(string(raw))
	require.NoError(t, err)
	assert.Equal(t, service.PaymentQRPayload{
		Reference:     "HOK-1A2B3C4D",
		Amount:        502000,
		AccountNumber: "0123456789",
	}, payload)
}

func TestQRCodeService_ParsePaymentQR_Invalid(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	tests := []struct {
		name string
		data string
	}{
		{"not json", "not-json"},
		{"wrong type", `{"type":"subscription","reference":"X"}`},
		{"missing reference", `{"type":"bank_transfer","amount":10}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParsePaymentQR(tt.data)
			assert.Error(t, err)
		})
	}
}
