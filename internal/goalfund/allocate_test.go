package goalfund_test

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/granafy/backend/internal/goalfund"
	"github.com/granafy/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestAllocateHappyPath() {
	ctx := context.Background()
	owner := suite.createTestOwner()
	account := suite.createTestAccount(models.Account{
		OwnerID:        owner.ID,
		InitialBalance: decimal.NewFromFloat(500),
		Balance:        decimal.NewFromFloat(500),
	})
	goal := suite.createTestGoal(models.Goal{OwnerID: owner.ID})

	result, err := suite.service.Allocate(ctx, goalfund.AllocateParams{
		GoalID:    goal.ID,
		AccountID: account.ID,
		OwnerID:   owner.ID,
		Amount:    decimal.NewFromFloat(200),
	})
	suite.Require().Nil(err)
	suite.Assert().True(result.SideEffects.OK(), "Side effects degraded: %#v", result.SideEffects.Degradations)

	suite.Assert().True(decimal.NewFromFloat(200).Equal(result.Goal.AccruedAmount))

	// The offsetting transaction is an outflow against the source account
	// and references the goal
	suite.Assert().Equal(models.TransactionTypeOutflow, result.Transaction.Type)
	suite.Require().NotNil(result.Transaction.GoalID)
	suite.Assert().Equal(goal.ID, *result.Transaction.GoalID)

	// The source account balance dropped by the allocated amount
	reloaded, err := suite.store.Account(ctx, account.ID)
	suite.Require().Nil(err)
	suite.Assert().True(decimal.NewFromFloat(300).Equal(reloaded.Balance), "Balance is %s, should be 300", reloaded.Balance)

	// The Objectives account exists and mirrors the goal total
	objectives := suite.objectivesAccount(owner)
	suite.Require().NotNil(objectives)
	suite.Assert().True(decimal.NewFromFloat(200).Equal(objectives.Balance), "Objectives balance is %s, should be 200", objectives.Balance)
}

func (suite *TestSuiteStandard) TestAllocateAmountNotPositive() {
	ctx := context.Background()
	owner := suite.createTestOwner()
	account := suite.createTestAccount(models.Account{OwnerID: owner.ID})
	goal := suite.createTestGoal(models.Goal{OwnerID: owner.ID})

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromFloat(-10)} {
		_, err := suite.service.Allocate(ctx, goalfund.AllocateParams{
			GoalID:    goal.ID,
			AccountID: account.ID,
			OwnerID:   owner.ID,
			Amount:    amount,
		})
		suite.Assert().ErrorIs(err, goalfund.ErrAmountNotPositive)
	}
}

func (suite *TestSuiteStandard) TestAllocateCompleteGoalRejected() {
	ctx := context.Background()
	owner := suite.createTestOwner()
	account := suite.createTestAccount(models.Account{OwnerID: owner.ID})
	goal := suite.createTestGoal(models.Goal{
		OwnerID:       owner.ID,
		TargetAmount:  decimal.NewFromFloat(100),
		AccruedAmount: decimal.NewFromFloat(100),
	})

	_, err := suite.service.Allocate(ctx, goalfund.AllocateParams{
		GoalID:    goal.ID,
		AccountID: account.ID,
		OwnerID:   owner.ID,
		Amount:    decimal.NewFromFloat(10),
	})

	var complete *goalfund.GoalAlreadyCompleteError
	suite.Require().ErrorAs(err, &complete)
	suite.Assert().Equal(goal.Name, complete.Name)
}

func (suite *TestSuiteStandard) TestAllocateOwnershipEnforced() {
	ctx := context.Background()
	owner := suite.createTestOwner()
	other := models.Owner{Name: "Other Owner"}
	suite.Require().Nil(models.DB.Create(&other).Error)

	account := suite.createTestAccount(models.Account{OwnerID: owner.ID})
	goal := suite.createTestGoal(models.Goal{OwnerID: other.ID})

	_, err := suite.service.Allocate(ctx, goalfund.AllocateParams{
		GoalID:    goal.ID,
		AccountID: account.ID,
		OwnerID:   owner.ID,
		Amount:    decimal.NewFromFloat(10),
	})

	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

// TestAllocateConvergence walks a goal to completion in three steps and
// verifies the final state plus that exactly one notification is emitted.
func (suite *TestSuiteStandard) TestAllocateConvergence() {
	ctx := context.Background()
	owner := suite.createTestOwner()
	account := suite.createTestAccount(models.Account{
		OwnerID:        owner.ID,
		InitialBalance: decimal.NewFromFloat(2000),
		Balance:        decimal.NewFromFloat(2000),
	})
	goal := suite.createTestGoal(models.Goal{
		Name:         "New car",
		OwnerID:      owner.ID,
		TargetAmount: decimal.NewFromFloat(1000),
	})

	for i, amount := range []float64{200, 100, 700} {
		result, err := suite.service.Allocate(ctx, goalfund.AllocateParams{
			GoalID:    goal.ID,
			AccountID: account.ID,
			OwnerID:   owner.ID,
			Amount:    decimal.NewFromFloat(amount),
		})
		suite.Require().Nil(err, "Allocation %d failed", i)
		suite.Assert().True(result.SideEffects.OK(), "Side effects degraded: %#v", result.SideEffects.Degradations)
	}

	reloadedGoal, err := suite.store.Goal(ctx, goal.ID)
	suite.Require().Nil(err)
	suite.Assert().True(reloadedGoal.IsComplete())
	suite.Assert().True(decimal.NewFromFloat(1000).Equal(reloadedGoal.AccruedAmount))

	reloadedAccount, err := suite.store.Account(ctx, account.ID)
	suite.Require().Nil(err)
	suite.Assert().True(decimal.NewFromFloat(1000).Equal(reloadedAccount.Balance), "Balance is %s, should be 1000", reloadedAccount.Balance)

	objectives := suite.objectivesAccount(owner)
	suite.Require().NotNil(objectives)
	suite.Assert().True(decimal.NewFromFloat(1000).Equal(objectives.Balance), "Objectives balance is %s, should be 1000", objectives.Balance)

	// The completion crossing happened exactly once
	notifications := suite.notifications(owner)
	suite.Require().Len(notifications, 1)
	suite.Assert().Equal(models.NotificationKindSuccess, notifications[0].Kind)
	suite.Assert().Contains(notifications[0].Message, "New car")
}

// TestAllocateConcurrent runs one allocation per goal in parallel and
// verifies that a single reconciliation afterwards lands the Objectives
// account exactly on the accrued total, regardless of interleaving.
func (suite *TestSuiteStandard) TestAllocateConcurrent() {
	ctx := context.Background()
	owner := suite.createTestOwner()
	account := suite.createTestAccount(models.Account{
		OwnerID:        owner.ID,
		InitialBalance: decimal.NewFromFloat(2000),
		Balance:        decimal.NewFromFloat(2000),
	})

	goals := make([]models.Goal, 5)
	for i := range goals {
		goals[i] = suite.createTestGoal(models.Goal{
			Name:    fmt.Sprintf("Goal %d", i),
			OwnerID: owner.ID,
		})
	}

	var wg sync.WaitGroup
	errs := make(chan error, len(goals))

	for _, goal := range goals {
		wg.Add(1)
		go func(goalID uuid.UUID) {
			defer wg.Done()

			_, err := suite.service.Allocate(ctx, goalfund.AllocateParams{
				GoalID:    goalID,
				AccountID: account.ID,
				OwnerID:   owner.ID,
				Amount:    decimal.NewFromFloat(100),
			})
			errs <- err
		}(goal.ID)
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		suite.Assert().Nil(err, "Concurrent allocation failed: %s", err)
	}

	suite.Require().Nil(suite.service.Resync(ctx, owner.ID))

	total := decimal.Zero
	for _, goal := range goals {
		reloaded, err := suite.store.Goal(ctx, goal.ID)
		suite.Require().Nil(err)
		total = total.Add(reloaded.AccruedAmount)
	}
	suite.Assert().True(decimal.NewFromFloat(500).Equal(total), "Accrued total is %s, should be 500", total)

	objectives := suite.objectivesAccount(owner)
	suite.Require().NotNil(objectives)
	suite.Assert().True(total.Equal(objectives.Balance), "Objectives balance is %s, should be %s", objectives.Balance, total)

	reloadedAccount, err := suite.store.Account(ctx, account.ID)
	suite.Require().Nil(err)
	suite.Assert().True(decimal.NewFromFloat(1500).Equal(reloadedAccount.Balance), "Balance is %s, should be 1500", reloadedAccount.Balance)
}

// TestAllocateNotificationOncePerCrossing touches a complete goal again
// through an update and verifies no second notification is emitted.
func (suite *TestSuiteStandard) TestAllocateNotificationOncePerCrossing() {
	ctx := context.Background()
	owner := suite.createTestOwner()
	account := suite.createTestAccount(models.Account{
		OwnerID:        owner.ID,
		InitialBalance: decimal.NewFromFloat(500),
		Balance:        decimal.NewFromFloat(500),
	})
	goal := suite.createTestGoal(models.Goal{
		OwnerID:      owner.ID,
		TargetAmount: decimal.NewFromFloat(100),
	})

	_, err := suite.service.Allocate(ctx, goalfund.AllocateParams{
		GoalID:    goal.ID,
		AccountID: account.ID,
		OwnerID:   owner.ID,
		Amount:    decimal.NewFromFloat(100),
	})
	suite.Require().Nil(err)
	suite.Require().Len(suite.notifications(owner), 1)

	// Updating the complete goal must not notify again
	reloaded, err := suite.store.Goal(ctx, goal.ID)
	suite.Require().Nil(err)
	previous := reloaded
	reloaded.Note = "still complete"

	_, err = suite.service.UpdateGoal(ctx, &reloaded, previous)
	suite.Require().Nil(err)
	suite.Assert().Len(suite.notifications(owner), 1)
}

// TestGoalCreatedCompleteNotifies seeds a goal that already meets its
// target and expects an immediate notification.
func (suite *TestSuiteStandard) TestGoalCreatedCompleteNotifies() {
	ctx := context.Background()
	owner := suite.createTestOwner()

	goal := models.Goal{
		Name:          "Pre-funded",
		OwnerID:       owner.ID,
		TargetAmount:  decimal.NewFromFloat(100),
		AccruedAmount: decimal.NewFromFloat(100),
	}

	effects, err := suite.service.CreateGoal(ctx, &goal)
	suite.Require().Nil(err)
	suite.Assert().True(effects.OK())

	suite.Assert().Len(suite.notifications(owner), 1)
}

// TestGoalCompletionByTargetLowering lowers the target below the accrued
// amount and expects the crossing to notify.
func (suite *TestSuiteStandard) TestGoalCompletionByTargetLowering() {
	ctx := context.Background()
	owner := suite.createTestOwner()
	goal := suite.createTestGoal(models.Goal{
		OwnerID:       owner.ID,
		TargetAmount:  decimal.NewFromFloat(1000),
		AccruedAmount: decimal.NewFromFloat(600),
	})

	previous := goal
	goal.TargetAmount = decimal.NewFromFloat(500)

	_, err := suite.service.UpdateGoal(ctx, &goal, previous)
	suite.Require().Nil(err)

	suite.Assert().Len(suite.notifications(owner), 1)
}
