package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/granafy/backend/internal/controllers/v1"
	"github.com/granafy/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestGoalCreate() {
	owner := suite.createTestOwner(v1.OwnerEditable{})

	goal := suite.createTestGoal(v1.GoalEditable{
		Name:         "New car",
		OwnerID:      owner.ID,
		TargetAmount: decimal.NewFromFloat(15000),
	})

	assert.Equal(suite.T(), "New car", goal.Name)
	assert.False(suite.T(), goal.Complete)
	assert.True(suite.T(), goal.Progress.IsZero())
}

func (suite *TestSuiteStandard) TestGoalCreateInvalidTarget() {
	owner := suite.createTestOwner(v1.OwnerEditable{})

	recorder := suite.request("POST", "/v1/goals", v1.GoalEditable{
		Name:    "No target",
		OwnerID: owner.ID,
	})
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestGoalUpdateReconciles() {
	owner := suite.createTestOwner(v1.OwnerEditable{})
	goal := suite.createTestGoal(v1.GoalEditable{
		OwnerID:       owner.ID,
		TargetAmount:  decimal.NewFromFloat(1000),
		AccruedAmount: decimal.NewFromFloat(100),
	})

	recorder := suite.request("PATCH", fmt.Sprintf("/v1/goals/%s", goal.ID), map[string]string{"accruedAmount": "400"})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	// The Objectives account follows the new total
	recorder = suite.request("GET", fmt.Sprintf("/v1/accounts?owner=%s", owner.ID), nil)
	var accounts v1.AccountListResponse
	test.DecodeResponse(suite.T(), &recorder, &accounts)

	var found bool
	for _, account := range accounts.Data {
		if account.Name == "Objectives" {
			found = true
			assert.True(suite.T(), decimal.NewFromFloat(400).Equal(account.Balance), "Objectives balance is %s, should be 400", account.Balance)
		}
	}
	assert.True(suite.T(), found)
}

func (suite *TestSuiteStandard) TestGoalUpdateCompletionNotifies() {
	owner := suite.createTestOwner(v1.OwnerEditable{})
	goal := suite.createTestGoal(v1.GoalEditable{
		OwnerID:       owner.ID,
		TargetAmount:  decimal.NewFromFloat(1000),
		AccruedAmount: decimal.NewFromFloat(600),
	})

	recorder := suite.request("PATCH", fmt.Sprintf("/v1/goals/%s", goal.ID), map[string]string{"targetAmount": "500"})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.GoalResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.True(suite.T(), response.Data.Complete)

	recorder = suite.request("GET", fmt.Sprintf("/v1/notifications?owner=%s", owner.ID), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var notifications v1.NotificationListResponse
	test.DecodeResponse(suite.T(), &recorder, &notifications)
	assert.Len(suite.T(), notifications.Data, 1)
}

func (suite *TestSuiteStandard) TestGoalDeleteRemovesObjectives() {
	owner := suite.createTestOwner(v1.OwnerEditable{})
	goal := suite.createTestGoal(v1.GoalEditable{
		OwnerID:       owner.ID,
		TargetAmount:  decimal.NewFromFloat(1000),
		AccruedAmount: decimal.NewFromFloat(100),
	})

	recorder := suite.request("DELETE", fmt.Sprintf("/v1/goals/%s", goal.ID), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)

	recorder = suite.request("GET", fmt.Sprintf("/v1/accounts?owner=%s", owner.ID), nil)
	var accounts v1.AccountListResponse
	test.DecodeResponse(suite.T(), &recorder, &accounts)

	for _, account := range accounts.Data {
		assert.NotEqual(suite.T(), "Objectives", account.Name, "Objectives account must be removed with the last goal")
	}
}

func (suite *TestSuiteStandard) TestGoalListFilterByOwner() {
	owner := suite.createTestOwner(v1.OwnerEditable{Name: "First"})
	other := suite.createTestOwner(v1.OwnerEditable{Name: "Second"})
	_ = suite.createTestGoal(v1.GoalEditable{Name: "Mine", OwnerID: owner.ID})
	_ = suite.createTestGoal(v1.GoalEditable{Name: "Theirs", OwnerID: other.ID})

	recorder := suite.request("GET", fmt.Sprintf("/v1/goals?owner=%s", owner.ID), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.GoalListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), "Mine", response.Data[0].Name)
}
