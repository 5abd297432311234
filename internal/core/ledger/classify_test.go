package ledger_test

import (
	"testing"
	"time"

	"github.com/boighar/backoffice/internal/core/domain"
	"github.com/boighar/backoffice/internal/core/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	nov15 = time.Date(2024, 11, 15, 12, 0, 0, 0, time.UTC)
	dec31 = ledger.EndOfDay(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC))
)

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestClassifySale_CashAndBank(t *testing.T) {
	sale := domain.Sale{
		SaleDate:      nov15,
		Total:         dec(750),
		PaymentMethod: domain.SalePaymentCash,
	}
	contrib := ledger.ClassifySale(sale, dec31)
	assert.True(t, contrib.Cash.Equal(dec(750)))
	assert.True(t, contrib.Bank.IsZero())

	sale.PaymentMethod = domain.SalePaymentBank
	contrib = ledger.ClassifySale(sale, dec31)
	assert.True(t, contrib.Cash.IsZero())
	assert.True(t, contrib.Bank.Equal(dec(750)))
}

func TestClassifySale_SplitContributesOnlyPaidPortion(t *testing.T) {
	// total=1000, amountPaid=400 cash: +400 cash now, 600 stays receivable.
	sale := domain.Sale{
		SaleDate:           nov15,
		Total:              dec(1000),
		PaymentMethod:      domain.SalePaymentSplit,
		SplitPaymentMethod: domain.AccountCash,
		AmountPaid:         dec(400),
	}
	contrib := ledger.ClassifySale(sale, dec31)
	assert.True(t, contrib.Cash.Equal(dec(400)))
	assert.True(t, contrib.Bank.IsZero())
	assert.True(t, sale.DueAmount().Equal(dec(600)))
}

func TestClassifySale_DueAndCreditMoveNoMoney(t *testing.T) {
	for _, method := range []domain.SalePaymentMethod{domain.SalePaymentDue, domain.SalePaymentCredit} {
		sale := domain.Sale{SaleDate: nov15, Total: dec(500), PaymentMethod: method}
		contrib := ledger.ClassifySale(sale, dec31)
		assert.True(t, contrib.Cash.IsZero(), "method %s", method)
		assert.True(t, contrib.Bank.IsZero(), "method %s", method)
	}
}

func TestClassifySale_AfterCutoffExcluded(t *testing.T) {
	sale := domain.Sale{
		SaleDate:      time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Total:         dec(100),
		PaymentMethod: domain.SalePaymentCash,
	}
	contrib := ledger.ClassifySale(sale, dec31)
	assert.True(t, contrib.Cash.IsZero())
}

func TestClassifyExpense_MissingMethodDefaultsToCash(t *testing.T) {
	// Legacy records carry no payment method; the documented default is cash.
	exp := domain.Expense{ExpenseDate: nov15, Amount: dec(200)}
	contrib := ledger.ClassifyExpense(exp, dec31)
	assert.True(t, contrib.Cash.Equal(dec(-200)))
	assert.True(t, contrib.Bank.IsZero())
}

func TestClassifyExpense_Bank(t *testing.T) {
	exp := domain.Expense{ExpenseDate: nov15, Amount: dec(80), PaymentMethod: domain.AccountBank}
	contrib := ledger.ClassifyExpense(exp, dec31)
	assert.True(t, contrib.Cash.IsZero())
	assert.True(t, contrib.Bank.Equal(dec(-80)))
}

func TestClassifyDonation_SeedMarkersExcluded(t *testing.T) {
	seedBySource := domain.Donation{
		DonationDate:  nov15,
		Amount:        dec(5000),
		PaymentMethod: domain.AccountCash,
		Source:        domain.SourceInitialCapital,
	}
	seedByDonor := domain.Donation{
		DonationDate:  nov15,
		DonorName:     domain.DonorInternalTransfer,
		Amount:        dec(300),
		PaymentMethod: domain.AccountBank,
	}
	real := domain.Donation{
		DonationDate:  nov15,
		DonorName:     "Rahim",
		Amount:        dec(300),
		PaymentMethod: domain.AccountCash,
	}

	assert.True(t, ledger.ClassifyDonation(seedBySource, dec31).Cash.IsZero())
	assert.True(t, ledger.ClassifyDonation(seedByDonor, dec31).Bank.IsZero())
	assert.True(t, ledger.ClassifyDonation(real, dec31).Cash.Equal(dec(300)))
}

func TestClassifyCapital_InitialIgnoresCutoff(t *testing.T) {
	// Opening balance dated after the cutoff still counts: it is day-zero
	// state, not a dated transaction.
	early := ledger.EndOfDay(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC))
	initial := domain.Capital{
		CapitalDate:   nov15,
		Source:        domain.SourceInitialCapital,
		Amount:        dec(34891),
		PaymentMethod: domain.AccountCash,
	}
	dated := domain.Capital{
		CapitalDate:   nov15,
		Source:        "owner top-up",
		Amount:        dec(1000),
		PaymentMethod: domain.AccountCash,
	}

	assert.True(t, ledger.ClassifyCapital(initial, early).Cash.Equal(dec(34891)))
	assert.True(t, ledger.ClassifyCapital(dated, early).Cash.IsZero())
	assert.True(t, ledger.ClassifyCapital(dated, dec31).Cash.Equal(dec(1000)))
}

func TestClassifyTransfer_PreservesCombinedTotal(t *testing.T) {
	tr := domain.Transfer{
		TransferDate: nov15,
		From:         domain.AccountCash,
		To:           domain.AccountBank,
		Amount:       dec(500),
	}
	contrib := ledger.ClassifyTransfer(tr, dec31)
	assert.True(t, contrib.Cash.Equal(dec(-500)))
	assert.True(t, contrib.Bank.Equal(dec(500)))
	assert.True(t, contrib.Cash.Add(contrib.Bank).IsZero())
}

func TestClassifyLedgerEntry_OnlySettledPaymentsMoveMoney(t *testing.T) {
	dueCreated := domain.LedgerEntry{
		DueDate: nov15,
		Type:    domain.EntryReceivable,
		Kind:    domain.KindDueCreated,
		Amount:  dec(600),
		Status:  domain.StatusPending,
	}
	paymentReceived := domain.LedgerEntry{
		DueDate:       nov15,
		Type:          domain.EntryReceivable,
		Kind:          domain.KindPaymentReceived,
		Amount:        dec(600),
		Status:        domain.StatusPaid,
		PaymentMethod: domain.AccountCash,
	}
	paymentSent := domain.LedgerEntry{
		DueDate:       nov15,
		Type:          domain.EntryPayable,
		Kind:          domain.KindPaymentSent,
		Amount:        dec(250),
		Status:        domain.StatusPaid,
		PaymentMethod: domain.AccountBank,
	}

	contrib, err := ledger.ClassifyLedgerEntry(dueCreated, dec31)
	require.NoError(t, err)
	assert.True(t, contrib.Cash.IsZero())

	contrib, err = ledger.ClassifyLedgerEntry(paymentReceived, dec31)
	require.NoError(t, err)
	assert.True(t, contrib.Cash.Equal(dec(600)))

	contrib, err = ledger.ClassifyLedgerEntry(paymentSent, dec31)
	require.NoError(t, err)
	assert.True(t, contrib.Bank.Equal(dec(-250)))
}

func TestClassifyLedgerEntry_PendingPaymentScoresZero(t *testing.T) {
	entry := domain.LedgerEntry{
		DueDate:       nov15,
		Kind:          domain.KindPaymentReceived,
		Amount:        dec(100),
		Status:        domain.StatusPending,
		PaymentMethod: domain.AccountCash,
	}
	contrib, err := ledger.ClassifyLedgerEntry(entry, dec31)
	require.NoError(t, err)
	assert.True(t, contrib.Cash.IsZero())
}

func TestClassifyLedgerEntry_UnknownKindIsAmbiguous(t *testing.T) {
	entry := domain.LedgerEntry{DueDate: nov15, Amount: dec(100), Status: domain.StatusPaid}
	_, err := ledger.ClassifyLedgerEntry(entry, dec31)
	assert.ErrorIs(t, err, ledger.ErrAmbiguousEntry)
}

func TestClassifySalesReturn_RefundMethods(t *testing.T) {
	base := domain.SalesReturn{ReturnDate: nov15, TotalReturnValue: dec(120)}

	cashRefund := base
	cashRefund.RefundMethod = domain.RefundCash
	assert.True(t, ledger.ClassifySalesReturn(cashRefund, dec31).Cash.Equal(dec(-120)))

	bankRefund := base
	bankRefund.RefundMethod = domain.RefundBank
	assert.True(t, ledger.ClassifySalesReturn(bankRefund, dec31).Bank.Equal(dec(-120)))

	adjustDue := base
	adjustDue.RefundMethod = domain.RefundAdjustDue
	contrib := ledger.ClassifySalesReturn(adjustDue, dec31)
	assert.True(t, contrib.Cash.IsZero())
	assert.True(t, contrib.Bank.IsZero())
}

func TestClassifyPurchase_CreditMovesNoMoney(t *testing.T) {
	paid := domain.Purchase{PurchaseDate: nov15, TotalCost: dec(900), PaymentMethod: domain.PurchaseBank}
	credit := domain.Purchase{PurchaseDate: nov15, TotalCost: dec(900), PaymentMethod: domain.PurchaseCredit}

	assert.True(t, ledger.ClassifyPurchase(paid, dec31).Bank.Equal(dec(-900)))
	contrib := ledger.ClassifyPurchase(credit, dec31)
	assert.True(t, contrib.Cash.IsZero())
	assert.True(t, contrib.Bank.IsZero())
}
