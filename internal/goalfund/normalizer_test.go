package goalfund_test

import (
	"context"

	"github.com/granafy/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestPostTransactionRegularAccount() {
	ctx := context.Background()
	owner := suite.createTestOwner()
	account := suite.createTestAccount(models.Account{
		OwnerID:        owner.ID,
		InitialBalance: decimal.NewFromFloat(100),
		Balance:        decimal.NewFromFloat(100),
	})
	category := suite.createTestCategory(models.Category{OwnerID: owner.ID})

	transaction := models.Transaction{
		OwnerID:    owner.ID,
		AccountID:  account.ID,
		CategoryID: category.ID,
		Type:       models.TransactionTypeOutflow,
		Amount:     decimal.NewFromFloat(30),
	}

	effects, err := suite.service.PostTransaction(ctx, &transaction)
	suite.Require().Nil(err)
	suite.Assert().True(effects.OK())

	reloaded, err := suite.store.Account(ctx, account.ID)
	suite.Require().Nil(err)
	suite.Assert().True(decimal.NewFromFloat(70).Equal(reloaded.Balance), "Balance is %s, should be 70", reloaded.Balance)
}

func (suite *TestSuiteStandard) TestPostTransactionCreditCard() {
	ctx := context.Background()
	owner := suite.createTestOwner()
	account := suite.createTestAccount(models.Account{
		OwnerID: owner.ID,
		Kind:    models.AccountKindCreditCard,
	})
	category := suite.createTestCategory(models.Category{OwnerID: owner.ID})

	// A purchase increases the amount owed
	purchase := models.Transaction{
		OwnerID:    owner.ID,
		AccountID:  account.ID,
		CategoryID: category.ID,
		Type:       models.TransactionTypeOutflow,
		Amount:     decimal.NewFromFloat(-250), // negative input is normalized
	}
	effects, err := suite.service.PostTransaction(ctx, &purchase)
	suite.Require().Nil(err)
	suite.Assert().True(effects.OK())
	suite.Assert().True(decimal.NewFromFloat(250).Equal(purchase.Amount), "Stored magnitude must be non-negative")

	// A payment decreases it
	payment := models.Transaction{
		OwnerID:    owner.ID,
		AccountID:  account.ID,
		CategoryID: category.ID,
		Type:       models.TransactionTypeInflow,
		Amount:     decimal.NewFromFloat(100),
	}
	_, err = suite.service.PostTransaction(ctx, &payment)
	suite.Require().Nil(err)

	reloaded, err := suite.store.Account(ctx, account.ID)
	suite.Require().Nil(err)
	suite.Assert().True(decimal.NewFromFloat(150).Equal(reloaded.Balance), "Balance is %s, should be 150", reloaded.Balance)
}

func (suite *TestSuiteStandard) TestPostTransactionObjectivesRejected() {
	ctx := context.Background()
	owner := suite.createTestOwner()
	_ = suite.createTestGoal(models.Goal{
		OwnerID:       owner.ID,
		AccruedAmount: decimal.NewFromFloat(100),
	})
	suite.Require().Nil(suite.service.Resync(ctx, owner.ID))

	objectives := suite.objectivesAccount(owner)
	suite.Require().NotNil(objectives)
	category := suite.createTestCategory(models.Category{OwnerID: owner.ID, Name: "Groceries"})

	transaction := models.Transaction{
		OwnerID:    owner.ID,
		AccountID:  objectives.ID,
		CategoryID: category.ID,
		Amount:     decimal.NewFromFloat(10),
	}

	_, err := suite.service.PostTransaction(ctx, &transaction)
	suite.Assert().ErrorIs(err, models.ErrVirtualAccountNotTransactable)
}

func (suite *TestSuiteStandard) TestPostTransactionOwnershipEnforced() {
	ctx := context.Background()
	owner := suite.createTestOwner()
	other := models.Owner{Name: "Other Owner"}
	suite.Require().Nil(models.DB.Create(&other).Error)

	account := suite.createTestAccount(models.Account{OwnerID: owner.ID})
	category := suite.createTestCategory(models.Category{OwnerID: other.ID})

	transaction := models.Transaction{
		OwnerID:    other.ID,
		AccountID:  account.ID,
		CategoryID: category.ID,
		Amount:     decimal.NewFromFloat(10),
	}

	_, err := suite.service.PostTransaction(ctx, &transaction)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}
