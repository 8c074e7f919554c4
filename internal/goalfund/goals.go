package goalfund

import (
	"context"

	"github.com/granafy/backend/internal/models"
	"github.com/shopspring/decimal"
)

// CreateGoal persists a new goal and reconciles the virtual Objectives
// account. A goal created with a pre-seeded accrued amount that already
// meets the target notifies immediately.
func (s *Service) CreateGoal(ctx context.Context, goal *models.Goal) (BestEffort, error) {
	var effects BestEffort

	err := s.store.CreateGoal(ctx, goal)
	if err != nil {
		return effects, err
	}

	previous := *goal
	previous.AccruedAmount = decimal.Zero
	s.checkCompletion(ctx, *goal, previous, &effects)

	err = s.Resync(ctx, goal.OwnerID)
	if err != nil {
		effects.fail("objectives account reconciliation", err)
	}

	return effects, nil
}

// UpdateGoal persists changes to a goal and reconciles the virtual
// Objectives account. previous must be the goal state the caller read
// before applying the changes; it drives the completion transition check.
func (s *Service) UpdateGoal(ctx context.Context, goal *models.Goal, previous models.Goal) (BestEffort, error) {
	var effects BestEffort

	err := s.store.SaveGoal(ctx, goal)
	if err != nil {
		return effects, err
	}

	s.checkCompletion(ctx, *goal, previous, &effects)

	err = s.Resync(ctx, goal.OwnerID)
	if err != nil {
		effects.fail("objectives account reconciliation", err)
	}

	return effects, nil
}

// DeleteGoal removes a goal, cascading its allocations, and reconciles the
// virtual Objectives account. Deleting the last goal with savings removes
// the Objectives account entirely.
func (s *Service) DeleteGoal(ctx context.Context, goal *models.Goal) (BestEffort, error) {
	var effects BestEffort

	err := s.store.DeleteGoal(ctx, goal)
	if err != nil {
		return effects, err
	}

	err = s.Resync(ctx, goal.OwnerID)
	if err != nil {
		effects.fail("objectives account reconciliation", err)
	}

	return effects, nil
}
