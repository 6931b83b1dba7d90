package point

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/point-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/point-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/point-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/point-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/point-ledger/internal/domain/port/usecase"
)

var _ usecase.PointUseCase = (*Service)(nil)

// Service is the ledger service. Charges and uses for one user are serialized
// through the lock manager; each committed mutation writes the new balance
// and one history entry inside a single unit of work.
type Service struct {
	balances     persistence.BalanceStore
	history      persistence.HistoryLog
	uow          persistence.UnitOfWork
	locks        *UserLockManager
	validator    *Validator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	metrics      coreport.LedgerMetrics
}

// NewPointService creates a new ledger service
func NewPointService(
	balances persistence.BalanceStore,
	history persistence.HistoryLog,
	uow persistence.UnitOfWork,
	locks *UserLockManager,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	metrics coreport.LedgerMetrics,
) *Service {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &Service{
		balances:     balances,
		history:      history,
		uow:          uow,
		locks:        locks,
		validator:    NewValidator(),
		timeProvider: timeProvider,
		logger:       logger,
		metrics:      metrics,
	}
}

// Charge credits amount to userID's balance and returns the new balance
func (s *Service) Charge(ctx context.Context, userID uint64, amount int64) (entity.Balance, error) {
	return s.mutate(ctx, entity.TransactionTypeCharge, userID, amount)
}

// Use debits amount from userID's balance and returns the new balance
func (s *Service) Use(ctx context.Context, userID uint64, amount int64) (entity.Balance, error) {
	return s.mutate(ctx, entity.TransactionTypeUse, userID, amount)
}

// GetBalance returns userID's balance. Unknown users have a zero balance.
// Reads do not take the user's slot.
func (s *Service) GetBalance(ctx context.Context, userID uint64) (entity.Balance, error) {
	if err := s.validator.ValidateUserID(userID); err != nil {
		return entity.Balance{}, err
	}

	balance, err := s.balances.Get(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to read balance", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return entity.Balance{}, fmt.Errorf("failed to read balance of user %d: %w", userID, err)
	}
	return balance, nil
}

// GetHistory returns userID's committed mutations in commit order.
// Unknown users have an empty, non-nil history.
func (s *Service) GetHistory(ctx context.Context, userID uint64) ([]entity.HistoryEntry, error) {
	if err := s.validator.ValidateUserID(userID); err != nil {
		return nil, err
	}

	entries, err := s.history.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to read history", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("failed to read history of user %d: %w", userID, err)
	}
	if entries == nil {
		entries = []entity.HistoryEntry{}
	}
	return entries, nil
}

func (s *Service) mutate(
	ctx context.Context,
	txType entity.TransactionType,
	userID uint64,
	amount int64,
) (entity.Balance, error) {
	start := s.timeProvider.Now()
	operation := txType.Operation()

	if err := s.validator.ValidateMutation(userID, amount); err != nil {
		s.logger.Warn("Rejected invalid request", map[string]any{
			"operation": operation,
			"user_id":   userID,
			"amount":    amount,
			"error":     err.Error(),
		})
		s.metrics.ObserveMutation(operation, coreport.OutcomeRejected, s.timeProvider.Since(start))
		return entity.Balance{}, err
	}

	balance, err := WithUserLock(ctx, s.locks, userID, func(ctx context.Context) (entity.Balance, error) {
		return s.commit(ctx, txType, userID, amount)
	})
	elapsed := s.timeProvider.Since(start)

	if err != nil {
		switch {
		case errs.IsValidationError(err):
			fields := map[string]any{"operation": operation, "user_id": userID, "amount": amount, "error": err.Error()}
			var balanceErr *errs.BalanceError
			if errors.As(err, &balanceErr) {
				fields = balanceErr.LogFields()
			}
			s.logger.Warn("Rejected balance mutation", fields)
			s.metrics.ObserveMutation(operation, coreport.OutcomeRejected, elapsed)

		case errs.IsUserLockedError(err):
			s.logger.Warn("User busy, mutation not attempted", map[string]any{
				"operation":  operation,
				"user_id":    userID,
				"amount":     amount,
				"elapsed_ms": elapsed.Milliseconds(),
			})
			s.metrics.ObserveMutation(operation, coreport.OutcomeFailed, elapsed)

		default:
			s.logger.Error("Balance mutation failed", map[string]any{
				"operation":  operation,
				"user_id":    userID,
				"amount":     amount,
				"error":      err.Error(),
				"error_code": errs.ErrorCode(err),
			})
			s.metrics.ObserveMutation(operation, coreport.OutcomeFailed, elapsed)
		}
		return entity.Balance{}, err
	}

	s.logger.Info("Balance mutation committed", map[string]any{
		"operation":   operation,
		"user_id":     userID,
		"amount":      amount,
		"new_balance": balance.Amount,
		"elapsed_ms":  elapsed.Milliseconds(),
	})
	s.metrics.ObserveMutation(operation, coreport.OutcomeCommitted, elapsed)
	return balance, nil
}

// commit runs while holding userID's slot. The read, the checks against the
// current balance and both writes share one unit of work; nothing is written
// when the mutation is rejected.
func (s *Service) commit(
	ctx context.Context,
	txType entity.TransactionType,
	userID uint64,
	amount int64,
) (entity.Balance, error) {
	var next entity.Balance

	err := s.uow.Execute(ctx, func(ctx context.Context) error {
		current, err := s.balances.Get(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to read balance of user %d: %w", userID, err)
		}
		if current.IsEmpty() {
			s.logger.Debug("First mutation for user", map[string]any{
				"user_id":   userID,
				"operation": txType.Operation(),
			})
		}

		next, err = current.Apply(txType, amount, s.timeProvider.Now())
		if err != nil {
			return err
		}

		if _, err := s.balances.Save(ctx, next); err != nil {
			return fmt.Errorf("failed to save balance: %w", err)
		}
		if _, err := s.history.Append(ctx, userID, txType, amount, next.UpdatedAt); err != nil {
			return fmt.Errorf("failed to append history: %w", err)
		}
		return nil
	})
	if err != nil {
		return entity.Balance{}, err
	}

	return next, nil
}
