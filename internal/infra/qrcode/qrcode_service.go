package qrcode

import (
	"encoding/json"
	"strings"

	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

// paymentQRType tags the payload so other QR codes are rejected on parse.
const paymentQRType = "bank_transfer"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// PaymentQRData is the JSON document encoded in the invoice QR code.
type PaymentQRData struct {
	Type          string `json:"type"`
	Reference     string `json:"reference"`
	Amount        int64  `json:"amount"`
	BankName      string `json:"bank_name,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch strings.ToLower(errorCorrectionLevel) {
	case "l", "low":
		level = qrcode.Low
	case "m", "medium":
		level = qrcode.Medium
	case "q", "high":
		level = qrcode.High
	case "h", "highest":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GeneratePaymentQR generates a PNG QR code carrying the bank-transfer details
func (s *qrcodeService) GeneratePaymentQR(payload service.PaymentQRPayload) ([]byte, error) {
	if payload.Reference == "" {
		return nil, errors.New("payment reference is required")
	}

	jsonData, err := json.Marshal(PaymentQRData{
		Type:          paymentQRType,
		Reference:     payload.Reference,
		Amount:        payload.Amount,
		BankName:      payload.BankName,
		AccountNumber: payload.AccountNumber,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParsePaymentQR parses scanned QR code data back into the payment details
func (s *qrcodeService) ParsePaymentQR(qrData string) (service.PaymentQRPayload, error) {
	var data PaymentQRData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return service.PaymentQRPayload{}, errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != paymentQRType {
		return service.PaymentQRPayload{}, errors.Errorf("invalid QR code type: %s", data.Type)
	}
	if data.Reference == "" {
		return service.PaymentQRPayload{}, errors.New("QR code carries no payment reference")
	}

	return service.PaymentQRPayload{
		Reference:     data.Reference,
		Amount:        data.Amount,
		BankName:      data.BankName,
		AccountNumber: data.AccountNumber,
	}, nil
}
