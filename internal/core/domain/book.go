package domain

import "github.com/shopspring/decimal"

// Book is a stocked title. Stock must never go negative; oversells are
// rejected at the mutation boundary.
type Book struct {
	BookID          string          `json:"bookID"`
	AccountID       string          `json:"accountID"`
	Title           string          `json:"title"`
	Author          string          `json:"author,omitempty"`
	ProductionPrice decimal.Decimal `json:"productionPrice"`
	SellingPrice    decimal.Decimal `json:"sellingPrice"`
	Stock           int64           `json:"stock"`
	AuditFields
}
