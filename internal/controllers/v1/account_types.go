package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/granafy/backend/internal/models"
	"github.com/shopspring/decimal"
)

type AccountEditable struct {
	Name           string             `json:"name" example:"Main checking" default:""`                                          // Name of the account
	Note           string             `json:"note" example:"Salary account" default:""`                                         // Note about the account
	OwnerID        uuid.UUID          `json:"ownerId" example:"d0085c5a-6b30-4a3f-b135-3b9c62f10c2e"`                           // ID of the owner
	Kind           models.AccountKind `json:"kind" example:"checking" default:"checking"`                                       // One of checking, savings, cash, credit_card
	InitialBalance decimal.Decimal    `json:"initialBalance" example:"2490.31" default:"0"`                                     // Balance of the account before the first transaction
	Archived       bool               `json:"archived" example:"true" default:"false"`                                          // Is the account archived?
}

// model returns the database resource for the API representation of the editable fields
func (editable AccountEditable) model() models.Account {
	return models.Account{
		Name:           editable.Name,
		Note:           editable.Note,
		OwnerID:        editable.OwnerID,
		Kind:           editable.Kind,
		InitialBalance: editable.InitialBalance,
		Archived:       editable.Archived,
	}
}

type AccountLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/accounts/af892e10-7e0a-4fb8-b1bc-4b6d88107f21"`        // The account itself
	Owner        string `json:"owner" example:"https://example.com/api/v1/owners/d0085c5a-6b30-4a3f-b135-3b9c62f10c2e"`         // The owner of the account
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?account=af892e10"`                // Transactions for this account
}

type Account struct {
	models.DefaultModel
	AccountEditable
	Balance decimal.Decimal `json:"balance" example:"1490.31"` // Cached balance, recomputed from the transaction history
	Links   AccountLinks    `json:"links"`
}

// newAccount returns the API v1 representation of the resource
func newAccount(c *gin.Context, model models.Account) Account {
	url := c.GetString(string(models.DBContextURL))

	return Account{
		DefaultModel: model.DefaultModel,
		AccountEditable: AccountEditable{
			Name:           model.Name,
			Note:           model.Note,
			OwnerID:        model.OwnerID,
			Kind:           model.Kind,
			InitialBalance: model.InitialBalance,
			Archived:       model.Archived,
		},
		Balance: model.Balance,
		Links: AccountLinks{
			Self:         fmt.Sprintf("%s/v1/accounts/%s", url, model.ID),
			Owner:        fmt.Sprintf("%s/v1/owners/%s", url, model.OwnerID),
			Transactions: fmt.Sprintf("%s/v1/transactions?account=%s", url, model.ID),
		},
	}
}

type AccountListResponse struct {
	Data  []Account `json:"data"`                                                          // List of resources
	Error *string   `json:"error" example:"the ID in the URL is not a valid UUID"` // The error, if any occurred
}

type AccountResponse struct {
	Error *string  `json:"error" example:"the ID in the URL is not a valid UUID"` // The error, if any occurred
	Data  *Account `json:"data"`                                                          // The resource
}

type AccountQueryFilter struct {
	Owner string `form:"owner"` // Filter by owner ID
}
