package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/granafy/backend/internal/models"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	OwnerID    uuid.UUID              `json:"ownerId" example:"d0085c5a-6b30-4a3f-b135-3b9c62f10c2e"`                                                    // ID of the owner
	AccountID  uuid.UUID              `json:"accountId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88107f21"`                                                  // ID of the account the transaction is booked against
	CategoryID uuid.UUID              `json:"categoryId" example:"dfc105a5-9b69-4fa7-b2a1-822b04e6e637"`                                                 // ID of the category
	Type       models.TransactionType `json:"type" example:"despesa" default:"despesa"`                                                                  // Type of the transaction
	Date       time.Time              `json:"date" example:"2026-02-10T00:00:00.000000Z"`                                                                // Date of the transaction
	Amount     decimal.Decimal        `json:"amount" example:"42.12" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001"`                // Magnitude of the transaction, always non-negative
	Note       string                 `json:"note" example:"Weekly groceries" default:""`                                                                // Note about the transaction
	GoalID     *uuid.UUID             `json:"goalId" example:"438cc6c0-9baf-49fd-a75a-d76bd5cab19c"`                                                     // Set when the transaction offsets a goal allocation
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		OwnerID:    editable.OwnerID,
		AccountID:  editable.AccountID,
		CategoryID: editable.CategoryID,
		Type:       editable.Type,
		Date:       editable.Date,
		Amount:     editable.Amount,
		Note:       editable.Note,
		GoalID:     editable.GoalID,
	}
}

type TransactionLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
	Account string `json:"account" example:"https://example.com/api/v1/accounts/af892e10-7e0a-4fb8-b1bc-4b6d88107f21"` // The account the transaction is booked against
}

type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Links TransactionLinks `json:"links"`
}

// newTransaction returns the API v1 representation of the resource
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			OwnerID:    model.OwnerID,
			AccountID:  model.AccountID,
			CategoryID: model.CategoryID,
			Type:       model.Type,
			Date:       model.Date,
			Amount:     model.Amount,
			Note:       model.Note,
			GoalID:     model.GoalID,
		},
		Links: TransactionLinks{
			Self:    fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
			Account: fmt.Sprintf("%s/v1/accounts/%s", url, model.AccountID),
		},
	}
}

type TransactionListResponse struct {
	Data  []Transaction `json:"data"`                                                          // List of resources
	Error *string       `json:"error" example:"the ID in the URL is not a valid UUID"` // The error, if any occurred
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the ID in the URL is not a valid UUID"` // The error, if any occurred
	Data  *Transaction `json:"data"`                                                          // The resource
}

type TransactionQueryFilter struct {
	Owner   string `form:"owner"`   // Filter by owner ID
	Account string `form:"account"` // Filter by account ID
}
