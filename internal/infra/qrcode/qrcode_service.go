// Package qrcode renders EPC069-12 ("GiroCode") SEPA credit transfer QR codes.
package qrcode

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/TimDev9492/chad-website/config"
	"github.com/TimDev9492/chad-website/internal/domain/service"
	"github.com/TimDev9492/chad-website/internal/errors"

	"github.com/skip2/go-qrcode"
)

const (
	defaultSize = 256

	epcMaxNameLength      = 70
	epcMaxReferenceLength = 140
	epcMaxAmount          = 999999999.99
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// NewFromConfig reads size and error correction level from the payment section.
func NewFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.Payment == nil {
		return NewQRCodeService(defaultSize, "M")
	}

	return NewQRCodeService(cfg.Payment.QRSize, cfg.Payment.ErrorCorrectionLevel)
}

// GeneratePaymentQR encodes the transfer as an EPC payload and returns a PNG.
func (s *qrcodeService) GeneratePaymentQR(transfer service.PaymentTransfer) ([]byte, error) {
	payload, err := EPCPayload(transfer)
	if err != nil {
		return nil, err
	}

	qrCode, err := qrcode.New(payload, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// EPCPayload builds the newline separated EPC069-12 version 002 payload. Optional trailing
// lines are omitted.
func EPCPayload(transfer service.PaymentTransfer) (string, error) {
	name := strings.TrimSpace(transfer.Bank.AccountHolder)
	iban := strings.ReplaceAll(strings.ToUpper(transfer.Bank.IBAN), " ", "")

	switch {
	case name == "" || utf8.RuneCountInString(name) > epcMaxNameLength:
		return "", errors.Errorf("invalid account holder %q", name)
	case iban == "":
		return "", errors.New("iban is required")
	case transfer.Amount < 0.01 || transfer.Amount > epcMaxAmount:
		return "", errors.Errorf("amount %.2f out of range", transfer.Amount)
	case utf8.RuneCountInString(transfer.Reference) > epcMaxReferenceLength:
		return "", errors.New("reference too long")
	}

	lines := []string{
		"BCD",
		"002",
		"1", // UTF-8
		"SCT",
		strings.ToUpper(strings.TrimSpace(transfer.Bank.BIC)),
		name,
		iban,
		"EUR" + strconv.FormatFloat(transfer.Amount, 'f', 2, 64),
		"", // purpose
		"", // structured reference
		transfer.Reference,
	}

	return strings.Join(lines, "\n"), nil
}
