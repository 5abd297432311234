package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Seed markers carried over from the legacy data. Records tagged with either
// are synthetic opening-balance rows, not real donation cash events, and are
// excluded from donation totals.
const (
	SourceInitialCapital  = "Initial Capital"
	DonorInternalTransfer = "Internal Transfer"
)

// Donation is money gifted to the store.
type Donation struct {
	DonationID    string          `json:"donationID"`
	AccountID     string          `json:"accountID"`
	DonationDate  time.Time       `json:"donationDate"`
	DonorName     string          `json:"donorName"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod MoneyAccount    `json:"paymentMethod"`
	Source        string          `json:"source,omitempty"`
	AuditFields
}

// IsSeedMarker reports whether this row is a synthetic seeding record rather
// than an operating donation.
func (d Donation) IsSeedMarker() bool {
	return d.Source == SourceInitialCapital || d.DonorName == DonorInternalTransfer
}
