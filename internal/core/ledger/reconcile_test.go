package ledger_test

import (
	"testing"
	"time"

	"github.com/boighar/backoffice/internal/core/domain"
	"github.com/boighar/backoffice/internal/core/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCustomerDue_Recomputation(t *testing.T) {
	// opening 100 + due sale 500 + split remainder 600 - payment 400 - adjust-due return 150 = 650
	opening := decimal.NewFromInt(100)
	sales := []domain.Sale{
		{SaleDate: day(time.March, 1), Total: dec(500), PaymentMethod: domain.SalePaymentDue},
		{SaleDate: day(time.March, 5), Total: dec(1000), PaymentMethod: domain.SalePaymentSplit, SplitPaymentMethod: domain.AccountCash, AmountPaid: dec(400)},
		{SaleDate: day(time.March, 9), Total: dec(250), PaymentMethod: domain.SalePaymentCash}, // cash sale leaves no due
	}
	entries := []domain.LedgerEntry{
		{Type: domain.EntryReceivable, Kind: domain.KindPaymentReceived, Amount: dec(400), Status: domain.StatusPaid, PaymentMethod: domain.AccountCash},
		{Type: domain.EntryReceivable, Kind: domain.KindDueCreated, Amount: dec(500), Status: domain.StatusPending}, // due creation must not subtract
		{Type: domain.EntryReceivable, Kind: domain.KindPaymentReceived, Amount: dec(999), Status: domain.StatusPending}, // unsettled payment row ignored
	}
	returns := []domain.SalesReturn{
		{ReturnDate: day(time.March, 20), TotalReturnValue: dec(150), RefundMethod: domain.RefundAdjustDue},
		{ReturnDate: day(time.March, 22), TotalReturnValue: dec(75), RefundMethod: domain.RefundCash}, // cash refund leaves due untouched
	}

	due := ledger.CustomerDue(opening, sales, entries, returns)
	assert.True(t, due.Equal(dec(650)), "got %s", due)
}

func TestCustomerDue_NoHistory(t *testing.T) {
	due := ledger.CustomerDue(decimal.NewFromInt(40), nil, nil, nil)
	assert.True(t, due.Equal(dec(40)))
}
