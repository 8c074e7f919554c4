package goalfund_test

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/granafy/backend/internal/goalfund"
	"github.com/granafy/backend/internal/ledger"
	"github.com/granafy/backend/internal/models"
	"github.com/shopspring/decimal"
)

var errFault = errors.New("store fault injected")

// faultStore wraps the real store and fails selected operations to test
// the degradation and compensation paths.
type faultStore struct {
	*ledger.GormStore

	failCreditCardProcedure bool
	failCreateTransaction   bool
	failUpdateBalance       bool
}

func (s *faultStore) PostCreditCardTransaction(ctx context.Context, transaction *models.Transaction) error {
	if s.failCreditCardProcedure {
		return errFault
	}

	return s.GormStore.PostCreditCardTransaction(ctx, transaction)
}

func (s *faultStore) CreateTransaction(ctx context.Context, transaction *models.Transaction) error {
	if s.failCreateTransaction {
		return errFault
	}

	return s.GormStore.CreateTransaction(ctx, transaction)
}

func (s *faultStore) UpdateAccountBalance(ctx context.Context, id uuid.UUID) error {
	if s.failUpdateBalance {
		return errFault
	}

	return s.GormStore.UpdateAccountBalance(ctx, id)
}

func (suite *TestSuiteStandard) faultService(store *faultStore) *goalfund.Service {
	return goalfund.New(store, goalfund.NewStoreNotifier(store), goalfund.Config{})
}

// TestCreditCardProcedureFallback breaks the credit card procedure and
// verifies the transaction is still written through the direct path, with
// the degradation recorded.
func (suite *TestSuiteStandard) TestCreditCardProcedureFallback() {
	ctx := context.Background()
	owner := suite.createTestOwner()
	account := suite.createTestAccount(models.Account{
		OwnerID: owner.ID,
		Kind:    models.AccountKindCreditCard,
	})
	category := suite.createTestCategory(models.Category{OwnerID: owner.ID})

	store := &faultStore{GormStore: suite.store, failCreditCardProcedure: true}
	service := suite.faultService(store)

	transaction := models.Transaction{
		OwnerID:    owner.ID,
		AccountID:  account.ID,
		CategoryID: category.ID,
		Type:       models.TransactionTypeOutflow,
		Amount:     decimal.NewFromFloat(99),
	}

	effects, err := service.PostTransaction(ctx, &transaction)
	suite.Require().Nil(err)

	suite.Require().Len(effects.Degradations, 1)
	suite.Assert().Equal("credit card transaction procedure", effects.Degradations[0].Op)

	// Written exactly once, balance still correct
	var count int64
	suite.Require().Nil(models.DB.Model(&models.Transaction{}).Where(&models.Transaction{AccountID: account.ID}).Count(&count).Error)
	suite.Assert().Equal(int64(1), count)

	reloaded, err := suite.store.Account(ctx, account.ID)
	suite.Require().Nil(err)
	suite.Assert().True(decimal.NewFromFloat(99).Equal(reloaded.Balance), "Balance is %s, should be 99", reloaded.Balance)
}

// TestPostTransactionDegradedRecompute breaks the balance recomputation
// and verifies the transaction write still succeeds.
func (suite *TestSuiteStandard) TestPostTransactionDegradedRecompute() {
	ctx := context.Background()
	owner := suite.createTestOwner()
	account := suite.createTestAccount(models.Account{OwnerID: owner.ID})
	category := suite.createTestCategory(models.Category{OwnerID: owner.ID})

	store := &faultStore{GormStore: suite.store, failUpdateBalance: true}
	service := suite.faultService(store)

	transaction := models.Transaction{
		OwnerID:    owner.ID,
		AccountID:  account.ID,
		CategoryID: category.ID,
		Amount:     decimal.NewFromFloat(10),
	}

	effects, err := service.PostTransaction(ctx, &transaction)
	suite.Require().Nil(err)

	suite.Require().Len(effects.Degradations, 1)
	suite.Assert().Equal("account balance recomputation", effects.Degradations[0].Op)
}

// TestAllocateCompensation breaks the offsetting transaction write and
// verifies the allocation and the accrued amount are rolled back.
func (suite *TestSuiteStandard) TestAllocateCompensation() {
	ctx := context.Background()
	owner := suite.createTestOwner()
	account := suite.createTestAccount(models.Account{
		OwnerID:        owner.ID,
		InitialBalance: decimal.NewFromFloat(500),
		Balance:        decimal.NewFromFloat(500),
	})
	goal := suite.createTestGoal(models.Goal{
		OwnerID:       owner.ID,
		AccruedAmount: decimal.NewFromFloat(50),
	})

	store := &faultStore{GormStore: suite.store, failCreateTransaction: true}
	service := suite.faultService(store)

	_, err := service.Allocate(ctx, goalfund.AllocateParams{
		GoalID:    goal.ID,
		AccountID: account.ID,
		OwnerID:   owner.ID,
		Amount:    decimal.NewFromFloat(100),
	})
	suite.Require().ErrorIs(err, errFault)

	// The accrued amount is back at its previous value
	reloaded, err := suite.store.Goal(ctx, goal.ID)
	suite.Require().Nil(err)
	suite.Assert().True(decimal.NewFromFloat(50).Equal(reloaded.AccruedAmount), "Accrued amount is %s, should be 50", reloaded.AccruedAmount)

	// No allocation record remains
	var count int64
	suite.Require().Nil(models.DB.Model(&models.GoalAllocation{}).Where(&models.GoalAllocation{GoalID: goal.ID}).Count(&count).Error)
	suite.Assert().Equal(int64(0), count)
}

// TestAllocateCompensationNoNotification crosses the target with an
// allocation whose offsetting write fails. The rolled back allocation must
// not leave a completion notification behind.
func (suite *TestSuiteStandard) TestAllocateCompensationNoNotification() {
	ctx := context.Background()
	owner := suite.createTestOwner()
	account := suite.createTestAccount(models.Account{
		OwnerID:        owner.ID,
		InitialBalance: decimal.NewFromFloat(500),
		Balance:        decimal.NewFromFloat(500),
	})
	goal := suite.createTestGoal(models.Goal{
		OwnerID:       owner.ID,
		TargetAmount:  decimal.NewFromFloat(100),
		AccruedAmount: decimal.NewFromFloat(50),
	})

	store := &faultStore{GormStore: suite.store, failCreateTransaction: true}
	service := suite.faultService(store)

	_, err := service.Allocate(ctx, goalfund.AllocateParams{
		GoalID:    goal.ID,
		AccountID: account.ID,
		OwnerID:   owner.ID,
		Amount:    decimal.NewFromFloat(60),
	})
	suite.Require().ErrorIs(err, errFault)

	reloaded, err := suite.store.Goal(ctx, goal.ID)
	suite.Require().Nil(err)
	suite.Assert().False(reloaded.IsComplete())

	suite.Assert().Len(suite.notifications(owner), 0, "A compensated allocation must not announce a completion")
}
