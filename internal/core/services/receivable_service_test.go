package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/boighar/backoffice/internal/apperrors"
	"github.com/boighar/backoffice/internal/core/domain"
	portssvc "github.com/boighar/backoffice/internal/core/ports/services"
	"github.com/boighar/backoffice/internal/core/services"
	"github.com/boighar/backoffice/internal/dto"
)

type ReceivableServiceTestSuite struct {
	suite.Suite
	mockLedgerRepo *MockLedgerEntryRepository
	service        portssvc.ReceivableSvcFacade
	accountID      string
	userID         string
	pending        domain.LedgerEntry
}

func (suite *ReceivableServiceTestSuite) SetupTest() {
	suite.mockLedgerRepo = new(MockLedgerEntryRepository)
	suite.service = services.NewReceivableService(suite.mockLedgerRepo)

	suite.accountID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.pending = domain.LedgerEntry{
		EntryID:    uuid.NewString(),
		AccountID:  suite.accountID,
		CustomerID: uuid.NewString(),
		DueDate:    time.Date(2024, 12, 5, 0, 0, 0, 0, time.UTC),
		Type:       domain.EntryReceivable,
		Kind:       domain.KindDueCreated,
		Amount:     decimal.NewFromInt(600),
		Status:     domain.StatusPending,
	}
}

func (suite *ReceivableServiceTestSuite) TestAddPayment_WritesPaidPaymentRow() {
	ctx := context.Background()
	req := dto.AddPaymentRequest{Date: "2024-12-20", PaymentMethod: "BANK"}

	suite.mockLedgerRepo.On("FindEntryByID", ctx, suite.accountID, suite.pending.EntryID).Return(&suite.pending, nil).Once()
	suite.mockLedgerRepo.On("Settle", ctx, suite.pending, mock.MatchedBy(func(p domain.LedgerEntry) bool {
		return p.Kind == domain.KindPaymentReceived &&
			p.Status == domain.StatusPaid &&
			p.PaymentMethod == domain.AccountBank &&
			p.Amount.Equal(suite.pending.Amount) &&
			p.CustomerID == suite.pending.CustomerID
	})).Return(nil).Once()

	payment, err := suite.service.AddPayment(ctx, suite.accountID, suite.pending.EntryID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPaid, payment.Status)
	suite.Equal(domain.KindPaymentReceived, payment.Kind)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *ReceivableServiceTestSuite) TestAddPayment_AlreadySettledRejected() {
	ctx := context.Background()
	settled := suite.pending
	settled.Status = domain.StatusPaid

	suite.mockLedgerRepo.On("FindEntryByID", ctx, suite.accountID, settled.EntryID).Return(&settled, nil).Once()

	_, err := suite.service.AddPayment(ctx, suite.accountID, settled.EntryID, dto.AddPaymentRequest{PaymentMethod: "CASH"}, suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrAlreadySettled)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "Settle")
}

func (suite *ReceivableServiceTestSuite) TestAddPayment_PayableRejected() {
	ctx := context.Background()
	payable := suite.pending
	payable.Type = domain.EntryPayable
	payable.Kind = domain.KindPayableCreated

	suite.mockLedgerRepo.On("FindEntryByID", ctx, suite.accountID, payable.EntryID).Return(&payable, nil).Once()

	_, err := suite.service.AddPayment(ctx, suite.accountID, payable.EntryID, dto.AddPaymentRequest{PaymentMethod: "CASH"}, suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReceivableServiceTestSuite) TestPayPayable_WritesPaymentSentRow() {
	ctx := context.Background()
	payable := suite.pending
	payable.Type = domain.EntryPayable
	payable.Kind = domain.KindPayableCreated
	payable.CustomerID = ""
	payable.SupplierName = "Dhaka Press"

	suite.mockLedgerRepo.On("FindEntryByID", ctx, suite.accountID, payable.EntryID).Return(&payable, nil).Once()
	suite.mockLedgerRepo.On("Settle", ctx, payable, mock.MatchedBy(func(p domain.LedgerEntry) bool {
		return p.Kind == domain.KindPaymentSent &&
			p.Status == domain.StatusPaid &&
			p.SupplierName == "Dhaka Press"
	})).Return(nil).Once()

	payment, err := suite.service.PayPayable(ctx, suite.accountID, payable.EntryID, dto.AddPaymentRequest{PaymentMethod: "BANK"}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.KindPaymentSent, payment.Kind)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *ReceivableServiceTestSuite) TestListEntries_PendingOnlyDelegates() {
	ctx := context.Background()
	suite.mockLedgerRepo.On("ListPendingEntries", ctx, suite.accountID, domain.EntryReceivable).
		Return([]domain.LedgerEntry{suite.pending}, nil).Once()

	entries, err := suite.service.ListEntries(ctx, suite.accountID, domain.EntryReceivable, true)

	suite.Require().NoError(err)
	suite.Len(entries, 1)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func TestReceivableServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReceivableServiceTestSuite))
}
