package service

import "github.com/TimDev9492/chad-website/internal/domain/entity"

// PaymentTransfer describes a SEPA credit transfer for the event fee.
type PaymentTransfer struct {
	Bank      entity.BankDetails
	Amount    float64
	Reference string
}

// QRCodeService renders payment QR codes banking apps can scan.
type QRCodeService interface {
	GeneratePaymentQR(transfer PaymentTransfer) ([]byte, error)
}
