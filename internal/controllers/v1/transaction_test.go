package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/granafy/backend/internal/controllers/v1"
	"github.com/granafy/backend/internal/models"
	"github.com/granafy/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTransactionCreate() {
	owner := suite.createTestOwner(v1.OwnerEditable{})
	account := suite.createTestAccount(v1.AccountEditable{
		OwnerID:        owner.ID,
		InitialBalance: decimal.NewFromFloat(100),
	})
	category := suite.createTestCategory(v1.CategoryEditable{OwnerID: owner.ID})

	recorder := suite.request("POST", "/v1/transactions", v1.TransactionEditable{
		OwnerID:    owner.ID,
		AccountID:  account.ID,
		CategoryID: category.ID,
		Type:       models.TransactionTypeOutflow,
		Amount:     decimal.NewFromFloat(30),
	})
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	// The account balance is recomputed
	getRecorder := suite.request("GET", fmt.Sprintf("/v1/accounts/%s", account.ID), nil)
	var response v1.AccountResponse
	test.DecodeResponse(suite.T(), &getRecorder, &response)
	assert.True(suite.T(), decimal.NewFromFloat(70).Equal(response.Data.Balance), "Balance is %s, should be 70", response.Data.Balance)
}

func (suite *TestSuiteStandard) TestTransactionCreateCreditCard() {
	owner := suite.createTestOwner(v1.OwnerEditable{})
	account := suite.createTestAccount(v1.AccountEditable{
		OwnerID: owner.ID,
		Kind:    models.AccountKindCreditCard,
	})
	category := suite.createTestCategory(v1.CategoryEditable{OwnerID: owner.ID})

	recorder := suite.request("POST", "/v1/transactions", v1.TransactionEditable{
		OwnerID:    owner.ID,
		AccountID:  account.ID,
		CategoryID: category.ID,
		Type:       models.TransactionTypeOutflow,
		Amount:     decimal.NewFromFloat(250),
	})
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	// A purchase raises the amount owed
	getRecorder := suite.request("GET", fmt.Sprintf("/v1/accounts/%s", account.ID), nil)
	var response v1.AccountResponse
	test.DecodeResponse(suite.T(), &getRecorder, &response)
	assert.True(suite.T(), decimal.NewFromFloat(250).Equal(response.Data.Balance), "Balance is %s, should be 250", response.Data.Balance)
}

func (suite *TestSuiteStandard) TestTransactionCreateNegativeAmount() {
	owner := suite.createTestOwner(v1.OwnerEditable{})
	account := suite.createTestAccount(v1.AccountEditable{OwnerID: owner.ID})
	category := suite.createTestCategory(v1.CategoryEditable{OwnerID: owner.ID})

	// Normalization takes the magnitude, so a negative amount is accepted
	// and stored as its absolute value
	recorder := suite.request("POST", "/v1/transactions", v1.TransactionEditable{
		OwnerID:    owner.ID,
		AccountID:  account.ID,
		CategoryID: category.ID,
		Type:       models.TransactionTypeInflow,
		Amount:     decimal.NewFromFloat(-50),
	})
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.True(suite.T(), decimal.NewFromFloat(50).Equal(response.Data.Amount))
}

func (suite *TestSuiteStandard) TestTransactionListFilterByAccount() {
	owner := suite.createTestOwner(v1.OwnerEditable{})
	account := suite.createTestAccount(v1.AccountEditable{Name: "First", OwnerID: owner.ID})
	other := suite.createTestAccount(v1.AccountEditable{Name: "Second", OwnerID: owner.ID})
	category := suite.createTestCategory(v1.CategoryEditable{OwnerID: owner.ID})

	for _, accountID := range []interface{}{account.ID, other.ID} {
		recorder := suite.request("POST", "/v1/transactions", map[string]interface{}{
			"ownerId":    owner.ID,
			"accountId":  accountID,
			"categoryId": category.ID,
			"amount":     "10",
		})
		test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)
	}

	recorder := suite.request("GET", fmt.Sprintf("/v1/transactions?account=%s", account.ID), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), account.ID, response.Data[0].AccountID)
}

func (suite *TestSuiteStandard) TestTransactionDeleteRecomputesBalance() {
	owner := suite.createTestOwner(v1.OwnerEditable{})
	account := suite.createTestAccount(v1.AccountEditable{
		OwnerID:        owner.ID,
		InitialBalance: decimal.NewFromFloat(100),
	})
	category := suite.createTestCategory(v1.CategoryEditable{OwnerID: owner.ID})

	recorder := suite.request("POST", "/v1/transactions", v1.TransactionEditable{
		OwnerID:    owner.ID,
		AccountID:  account.ID,
		CategoryID: category.ID,
		Type:       models.TransactionTypeOutflow,
		Amount:     decimal.NewFromFloat(30),
	})
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	var created v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &created)

	recorder = suite.request("DELETE", fmt.Sprintf("/v1/transactions/%s", created.Data.ID), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)

	getRecorder := suite.request("GET", fmt.Sprintf("/v1/accounts/%s", account.ID), nil)
	var response v1.AccountResponse
	test.DecodeResponse(suite.T(), &getRecorder, &response)
	assert.True(suite.T(), decimal.NewFromFloat(100).Equal(response.Data.Balance), "Balance is %s, should be 100", response.Data.Balance)
}
