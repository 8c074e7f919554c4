package goalfund

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/granafy/backend/internal/models"
	"github.com/shopspring/decimal"
)

// reconcileEpsilon absorbs rounding noise between the cached balance and
// the goal total. Differences at or below it do not warrant an adjustment.
var reconcileEpsilon = decimal.NewFromFloat(0.01)

// AdjustmentNote marks the synthetic transactions the reconciler inserts.
const AdjustmentNote = "Automatic adjustment to match total goal savings"

// Resync brings the virtual Objectives account in line with the sum of the
// owner's goal balances.
//
// When no unarchived goal savings remain, the account is removed entirely
// so that owners without goals do not see a stray account. Otherwise the
// account is created lazily, a synthetic adjustment transaction keeps the
// history auditable, and the cached balance is written directly: it is
// defined to equal the goal total by construction, not derived from the
// transaction history the way real account balances are.
//
// Resync is idempotent. A second call without intervening goal changes
// finds a zero delta and performs no writes.
func (s *Service) Resync(ctx context.Context, ownerID uuid.UUID) error {
	goals, err := s.store.GoalsByOwner(ctx, ownerID)
	if err != nil {
		return err
	}

	target := decimal.Zero
	for _, goal := range goals {
		if goal.Archived {
			continue
		}

		target = target.Add(goal.AccruedAmount)
	}

	account, err := s.store.AccountByName(ctx, ownerID, models.ObjectivesAccountName)
	if err != nil && !errors.Is(err, models.ErrResourceNotFound) {
		return err
	}
	exists := err == nil

	if target.IsZero() {
		if exists {
			return s.store.DeleteAccount(ctx, account.ID)
		}

		return nil
	}

	if !exists {
		account = models.Account{
			OwnerID: ownerID,
			Name:    models.ObjectivesAccountName,
			Kind:    models.AccountKindSavings,
			Note:    "Automatically managed, mirrors your total goal savings",
		}
		err = s.store.CreateAccount(ctx, &account)
		if err != nil {
			return err
		}
	}

	delta := target.Sub(account.Balance)
	if delta.Abs().LessThanOrEqual(reconcileEpsilon) {
		return nil
	}

	categoryID, err := s.goalCategory(ctx, ownerID)
	if err != nil {
		return err
	}

	adjustmentType := models.TransactionTypeInflow
	if delta.IsNegative() {
		adjustmentType = models.TransactionTypeOutflow
	}

	adjustment := models.Transaction{
		OwnerID:    ownerID,
		AccountID:  account.ID,
		CategoryID: categoryID,
		Type:       adjustmentType,
		Amount:     delta.Abs(),
		Note:       AdjustmentNote,
	}
	err = s.store.CreateTransaction(ctx, &adjustment)
	if err != nil {
		return err
	}

	return s.store.SetAccountBalance(ctx, account.ID, target)
}
