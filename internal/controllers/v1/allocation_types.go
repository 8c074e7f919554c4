package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/granafy/backend/internal/models"
	"github.com/shopspring/decimal"
)

type AllocationEditable struct {
	GoalID    uuid.UUID       `json:"goalId" example:"438cc6c0-9baf-49fd-a75a-d76bd5cab19c"`                                                     // ID of the goal being funded
	AccountID uuid.UUID       `json:"accountId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88107f21"`                                                  // ID of the account the money comes from
	OwnerID   uuid.UUID       `json:"ownerId" example:"d0085c5a-6b30-4a3f-b135-3b9c62f10c2e"`                                                    // ID of the owner
	Amount    decimal.Decimal `json:"amount" example:"200" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"`         // Amount to move into the goal
	Date      time.Time       `json:"date" example:"2026-02-10T00:00:00.000000Z"`                                                                // Date of the allocation
	Note      string          `json:"note" example:"Bonus payout" default:""`                                                                    // Note about the allocation
}

// model returns the database resource for the API representation of the editable fields
func (editable AllocationEditable) model() models.GoalAllocation {
	return models.GoalAllocation{
		GoalID:    editable.GoalID,
		AccountID: editable.AccountID,
		OwnerID:   editable.OwnerID,
		Amount:    editable.Amount,
		Date:      editable.Date,
		Note:      editable.Note,
	}
}

type AllocationLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/allocations/27a67375-e1d0-44a8-bb03-cbd9439cdc67"`  // The allocation itself
	Goal    string `json:"goal" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c"`        // The goal being funded
	Account string `json:"account" example:"https://example.com/api/v1/accounts/af892e10-7e0a-4fb8-b1bc-4b6d88107f21"`  // The account the money comes from
}

type Allocation struct {
	models.DefaultModel
	AllocationEditable
	Links AllocationLinks `json:"links"`
}

// newAllocation returns the API v1 representation of the resource
func newAllocation(c *gin.Context, model models.GoalAllocation) Allocation {
	url := c.GetString(string(models.DBContextURL))

	return Allocation{
		DefaultModel: model.DefaultModel,
		AllocationEditable: AllocationEditable{
			GoalID:    model.GoalID,
			AccountID: model.AccountID,
			OwnerID:   model.OwnerID,
			Amount:    model.Amount,
			Date:      model.Date,
			Note:      model.Note,
		},
		Links: AllocationLinks{
			Self:    fmt.Sprintf("%s/v1/allocations/%s", url, model.ID),
			Goal:    fmt.Sprintf("%s/v1/goals/%s", url, model.GoalID),
			Account: fmt.Sprintf("%s/v1/accounts/%s", url, model.AccountID),
		},
	}
}

type AllocationListResponse struct {
	Data  []Allocation `json:"data"`                                                          // List of resources
	Error *string      `json:"error" example:"the ID in the URL is not a valid UUID"` // The error, if any occurred
}

// AllocationResponse contains the created allocation together with the goal
// it funded and the offsetting transaction, so that clients can render the
// outcome without further requests.
type AllocationResponse struct {
	Error       *string      `json:"error" example:"the ID in the URL is not a valid UUID"` // The error, if any occurred
	Data        *Allocation  `json:"data"`                                                          // The resource
	Goal        *Goal        `json:"goal"`                                                          // The goal after the allocation
	Transaction *Transaction `json:"transaction"`                                                   // The offsetting outflow transaction
}

type AllocationQueryFilter struct {
	Owner string `form:"owner"` // Filter by owner ID
	Goal  string `form:"goal"`  // Filter by goal ID
}
