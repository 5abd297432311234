package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/boighar/backoffice/internal/apperrors"
	"github.com/boighar/backoffice/internal/core/domain"
	portsrepo "github.com/boighar/backoffice/internal/core/ports/repositories"
	portssvc "github.com/boighar/backoffice/internal/core/ports/services"
	"github.com/boighar/backoffice/internal/dto"
)

type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepositoryFacade
}

// NewExpenseService creates a new expense service.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade) portssvc.ExpenseSvcFacade {
	return &expenseService{expenseRepo: expenseRepo}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

func (s *expenseService) CreateExpense(ctx context.Context, accountID string, req dto.CreateExpenseRequest, userID string) (*domain.Expense, error) {
	expenseDate, err := parseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid expense date", apperrors.ErrValidation)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: expense amount must be positive", apperrors.ErrValidation)
	}

	expense := domain.Expense{
		ExpenseID:     uuid.NewString(),
		AccountID:     accountID,
		ExpenseDate:   expenseDate,
		Description:   req.Description,
		Amount:        req.Amount,
		PaymentMethod: domain.MoneyAccount(req.PaymentMethod),
		AuditFields:   newAuditFields(userID, time.Now()),
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense", slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Expense recorded",
		slog.String("expense_id", expense.ExpenseID),
		slog.String("method", string(expense.EffectiveMethod())),
	)
	return &expense, nil
}

func (s *expenseService) ListExpenses(ctx context.Context, accountID string) ([]domain.Expense, error) {
	return s.expenseRepo.ListExpenses(ctx, accountID)
}
