package goalfund

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/granafy/backend/internal/models"
	"github.com/shopspring/decimal"
)

// AllocateParams describes one funding event.
type AllocateParams struct {
	GoalID    uuid.UUID
	AccountID uuid.UUID
	OwnerID   uuid.UUID
	Amount    decimal.Decimal
	Date      time.Time
	Note      string
}

// AllocateResult is the outcome of a successful allocation.
type AllocateResult struct {
	Goal        models.Goal
	Allocation  models.GoalAllocation
	Transaction models.Transaction

	// SideEffects reports non-critical steps that failed. The allocation
	// itself succeeded even when side effects are degraded.
	SideEffects BestEffort
}

// Allocate moves money from an account into a goal.
//
// It creates the allocation record, raises the goal's accrued amount,
// creates the offsetting outflow transaction against the source account and
// reconciles the virtual Objectives account. The offsetting transaction and
// reconciliation make partial failures observable: if the offsetting
// transaction cannot be created, the accrued amount and the allocation are
// rolled back so that the goal and the transaction history do not diverge.
func (s *Service) Allocate(ctx context.Context, params AllocateParams) (AllocateResult, error) {
	if !params.Amount.IsPositive() {
		return AllocateResult{}, ErrAmountNotPositive
	}

	goal, err := s.store.Goal(ctx, params.GoalID)
	if err != nil {
		return AllocateResult{}, err
	}
	if goal.OwnerID != params.OwnerID {
		return AllocateResult{}, notFound("goal")
	}

	if goal.IsComplete() {
		return AllocateResult{}, &GoalAlreadyCompleteError{
			Name:     goal.Name,
			Progress: goal.Progress(),
		}
	}

	account, err := s.store.Account(ctx, params.AccountID)
	if err != nil {
		return AllocateResult{}, err
	}
	if account.OwnerID != params.OwnerID {
		return AllocateResult{}, notFound("account")
	}

	previous := goal

	allocation := models.GoalAllocation{
		GoalID:    params.GoalID,
		AccountID: params.AccountID,
		OwnerID:   params.OwnerID,
		Amount:    params.Amount,
		Date:      params.Date,
		Note:      params.Note,
	}
	err = s.store.CreateAllocation(ctx, &allocation)
	if err != nil {
		return AllocateResult{}, err
	}

	goal.AccruedAmount = previous.AccruedAmount.Add(params.Amount)
	err = s.store.SetGoalAccrued(ctx, goal.ID, goal.AccruedAmount)
	if err != nil {
		s.compensate(ctx, previous, allocation.ID, false)
		return AllocateResult{}, err
	}

	categoryID, err := s.goalCategory(ctx, params.OwnerID)
	if err != nil {
		s.compensate(ctx, previous, allocation.ID, true)
		return AllocateResult{}, err
	}

	transaction := models.Transaction{
		OwnerID:    params.OwnerID,
		AccountID:  params.AccountID,
		CategoryID: categoryID,
		Type:       models.TransactionTypeOutflow,
		Amount:     params.Amount,
		Date:       params.Date,
		Note:       transactionNote(goal, params.Note),
		GoalID:     &goal.ID,
	}
	var effects BestEffort
	err = s.postTransaction(ctx, account, &transaction, &effects)
	if err != nil {
		s.compensate(ctx, previous, allocation.ID, true)
		return AllocateResult{}, err
	}

	// Checked only after the offsetting transaction is in place, so that a
	// compensated allocation can never announce a completion.
	s.checkCompletion(ctx, goal, previous, &effects)

	err = s.Resync(ctx, params.OwnerID)
	if err != nil {
		effects.fail("objectives account reconciliation", err)
	}

	return AllocateResult{
		Goal:        goal,
		Allocation:  allocation,
		Transaction: transaction,
		SideEffects: effects,
	}, nil
}

// compensate undoes the writes of a failed allocation: the allocation row
// and, when it was already raised, the goal's accrued amount. Compensation
// is itself best-effort; a leftover inconsistency converges through the
// next reconciliation pass and is logged for manual follow-up.
func (s *Service) compensate(ctx context.Context, previous models.Goal, allocationID uuid.UUID, accruedRaised bool) {
	var effects BestEffort

	if accruedRaised {
		if err := s.store.SetGoalAccrued(ctx, previous.ID, previous.AccruedAmount); err != nil {
			effects.fail("restore goal accrued amount", err)
		}
	}

	if err := s.store.DeleteAllocation(ctx, allocationID); err != nil {
		effects.fail("delete allocation record", err)
	}
}

func transactionNote(goal models.Goal, note string) string {
	if note != "" {
		return note
	}

	return fmt.Sprintf("Allocation to goal %q", goal.Name)
}
