package service

// QRCodeService renders bank-transfer payment references as QR codes.
type QRCodeService interface {
	// GeneratePaymentQR encodes the payment details into a PNG image.
	GeneratePaymentQR(payload PaymentQRPayload) ([]byte, error)

	// ParsePaymentQR decodes a scanned payload.
	ParsePaymentQR(data string) (PaymentQRPayload, error)
}

// PaymentQRPayload is what the invoice QR code carries.
type PaymentQRPayload struct {
	Reference     string `json:"reference"`
	Amount        int64  `json:"amount"`
	BankName      string `json:"bankName,omitempty"`
	AccountNumber string `json:"accountNumber,omitempty"`
}
