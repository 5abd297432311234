package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OfficeAsset is a fixed asset (furniture, shelving, a computer) bought for
// the shop. The purchase takes money out of cash or bank and the asset's cost
// is carried on the balance sheet at cost.
type OfficeAsset struct {
	AssetID       string          `json:"assetID"`
	AccountID     string          `json:"accountID"`
	Name          string          `json:"name"`
	Cost          decimal.Decimal `json:"cost"`
	PurchaseDate  time.Time       `json:"purchaseDate"`
	PaymentMethod MoneyAccount    `json:"paymentMethod"`
	AuditFields
}
