package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/granafy/backend/internal/models"
)

type OwnerEditable struct {
	Name string `json:"name" example:"Ferreira family" default:""` // Name of the owner
	Note string `json:"note" example:"Shared household budget" default:""` // Note about the owner
}

// model returns the database resource for the API representation of the editable fields
func (editable OwnerEditable) model() models.Owner {
	return models.Owner{
		Name: editable.Name,
		Note: editable.Note,
	}
}

type OwnerLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/owners/d0085c5a-6b30-4a3f-b135-3b9c62f10c2e"`         // The owner itself
	Accounts     string `json:"accounts" example:"https://example.com/api/v1/accounts?owner=d0085c5a"`                          // Accounts of this owner
	Goals        string `json:"goals" example:"https://example.com/api/v1/goals?owner=d0085c5a"`                                // Goals of this owner
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?owner=d0085c5a"`                  // Transactions of this owner
	Sync         string `json:"sync" example:"https://example.com/api/v1/owners/d0085c5a-6b30-4a3f-b135-3b9c62f10c2e/objectives/sync"` // Objectives account repair endpoint
}

type Owner struct {
	models.DefaultModel
	OwnerEditable
	Links OwnerLinks `json:"links"`
}

// newOwner returns the API v1 representation of the resource
func newOwner(c *gin.Context, model models.Owner) Owner {
	url := c.GetString(string(models.DBContextURL))

	return Owner{
		DefaultModel: model.DefaultModel,
		OwnerEditable: OwnerEditable{
			Name: model.Name,
			Note: model.Note,
		},
		Links: OwnerLinks{
			Self:         fmt.Sprintf("%s/v1/owners/%s", url, model.ID),
			Accounts:     fmt.Sprintf("%s/v1/accounts?owner=%s", url, model.ID),
			Goals:        fmt.Sprintf("%s/v1/goals?owner=%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?owner=%s", url, model.ID),
			Sync:         fmt.Sprintf("%s/v1/owners/%s/objectives/sync", url, model.ID),
		},
	}
}

type OwnerListResponse struct {
	Data  []Owner `json:"data"`                                                          // List of resources
	Error *string `json:"error" example:"the ID in the URL is not a valid UUID"` // The error, if any occurred
}

type OwnerResponse struct {
	Error *string `json:"error" example:"the ID in the URL is not a valid UUID"` // The error, if any occurred
	Data  *Owner  `json:"data"`                                                          // The resource
}
