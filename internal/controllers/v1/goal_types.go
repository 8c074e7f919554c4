package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/granafy/backend/internal/models"
	"github.com/shopspring/decimal"
)

type GoalEditable struct {
	Name            string          `json:"name" example:"New car" default:""`                                                                            // Name of the goal
	Note            string          `json:"note" example:"Replace the old one before it dies" default:""`                                                 // Note about the goal
	OwnerID         uuid.UUID       `json:"ownerId" example:"d0085c5a-6b30-4a3f-b135-3b9c62f10c2e"`                                                       // ID of the owner
	TargetAmount    decimal.Decimal `json:"targetAmount" example:"15000" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"`    // How much money should be saved for this goal?
	AccruedAmount   decimal.Decimal `json:"accruedAmount" example:"2500" default:"0"`                                                                     // How much money has been saved so far
	Deadline        *time.Time      `json:"deadline" example:"2027-06-01T00:00:00.000000Z"`                                                               // When the goal should be reached
	Archived        bool            `json:"archived" example:"true" default:"false"`                                                                      // Is the goal archived?
	LinkedAccountID *uuid.UUID      `json:"linkedAccountId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88107f21"`                                               // Optional account this goal is saved towards
}

// model returns the database resource for the API representation of the editable fields
func (editable GoalEditable) model() models.Goal {
	return models.Goal{
		Name:            editable.Name,
		Note:            editable.Note,
		OwnerID:         editable.OwnerID,
		TargetAmount:    editable.TargetAmount,
		AccruedAmount:   editable.AccruedAmount,
		Deadline:        editable.Deadline,
		Archived:        editable.Archived,
		LinkedAccountID: editable.LinkedAccountID,
	}
}

type GoalLinks struct {
	Self        string `json:"self" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c"`          // The goal itself
	Owner       string `json:"owner" example:"https://example.com/api/v1/owners/d0085c5a-6b30-4a3f-b135-3b9c62f10c2e"`        // The owner of the goal
	Allocations string `json:"allocations" example:"https://example.com/api/v1/allocations?goal=438cc6c0"`                    // Allocations funding this goal
}

type Goal struct {
	models.DefaultModel
	GoalEditable
	Progress decimal.Decimal `json:"progress" example:"0.1666"` // Completion ratio of the goal
	Complete bool            `json:"complete" example:"false"`  // Has the goal reached its target?
	Links    GoalLinks       `json:"links"`
}

// newGoal returns the API v1 representation of the resource
func newGoal(c *gin.Context, model models.Goal) Goal {
	url := c.GetString(string(models.DBContextURL))

	return Goal{
		DefaultModel: model.DefaultModel,
		GoalEditable: GoalEditable{
			Name:            model.Name,
			Note:            model.Note,
			OwnerID:         model.OwnerID,
			TargetAmount:    model.TargetAmount,
			AccruedAmount:   model.AccruedAmount,
			Deadline:        model.Deadline,
			Archived:        model.Archived,
			LinkedAccountID: model.LinkedAccountID,
		},
		Progress: model.Progress(),
		Complete: model.IsComplete(),
		Links: GoalLinks{
			Self:        fmt.Sprintf("%s/v1/goals/%s", url, model.ID),
			Owner:       fmt.Sprintf("%s/v1/owners/%s", url, model.OwnerID),
			Allocations: fmt.Sprintf("%s/v1/allocations?goal=%s", url, model.ID),
		},
	}
}

type GoalListResponse struct {
	Data  []Goal  `json:"data"`                                                          // List of resources
	Error *string `json:"error" example:"the ID in the URL is not a valid UUID"` // The error, if any occurred
}

type GoalResponse struct {
	Error *string `json:"error" example:"the ID in the URL is not a valid UUID"` // The error, if any occurred
	Data  *Goal   `json:"data"`                                                          // The resource
}
