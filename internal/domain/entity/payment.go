package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentInfo is the stored payment row of one attendee.
type PaymentInfo struct {
	UserID           uuid.UUID
	PaymentReference int64
	Status           PaymentStatus
	CreatedAt        time.Time
}

// BankDetails is the account attendees transfer the fee to.
type BankDetails struct {
	AccountHolder string `json:"account_holder"`
	IBAN          string `json:"iban"`
	BIC           string `json:"bic"`
}

// PaymentOverview is what the payments page shows an attendee.
type PaymentOverview struct {
	Price            float64       `json:"price"`
	PaymentReference *int64        `json:"payment_reference"`
	PaymentStatus    PaymentStatus `json:"payment_status"`
	Bank             BankDetails   `json:"bank"`
	Countries        []*Country    `json:"countries"`
}
