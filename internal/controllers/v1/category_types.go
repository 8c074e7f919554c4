package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/granafy/backend/internal/models"
)

type CategoryEditable struct {
	Name     string    `json:"name" example:"Groceries" default:""`                    // Name of the category
	Note     string    `json:"note" example:"Everything from the supermarket" default:""` // Note about the category
	OwnerID  uuid.UUID `json:"ownerId" example:"d0085c5a-6b30-4a3f-b135-3b9c62f10c2e"` // ID of the owner
	Archived bool      `json:"archived" example:"true" default:"false"`                // Is the category archived?
}

// model returns the database resource for the API representation of the editable fields
func (editable CategoryEditable) model() models.Category {
	return models.Category{
		Name:     editable.Name,
		Note:     editable.Note,
		OwnerID:  editable.OwnerID,
		Archived: editable.Archived,
	}
}

type CategoryLinks struct {
	Self  string `json:"self" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91498c789"` // The category itself
	Owner string `json:"owner" example:"https://example.com/api/v1/owners/d0085c5a-6b30-4a3f-b135-3b9c62f10c2e"`    // The owner of the category
}

type Category struct {
	models.DefaultModel
	CategoryEditable
	Links CategoryLinks `json:"links"`
}

// newCategory returns the API v1 representation of the resource
func newCategory(c *gin.Context, model models.Category) Category {
	url := c.GetString(string(models.DBContextURL))

	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			Name:     model.Name,
			Note:     model.Note,
			OwnerID:  model.OwnerID,
			Archived: model.Archived,
		},
		Links: CategoryLinks{
			Self:  fmt.Sprintf("%s/v1/categories/%s", url, model.ID),
			Owner: fmt.Sprintf("%s/v1/owners/%s", url, model.OwnerID),
		},
	}
}

type CategoryListResponse struct {
	Data  []Category `json:"data"`                                                          // List of resources
	Error *string    `json:"error" example:"the ID in the URL is not a valid UUID"` // The error, if any occurred
}

type CategoryResponse struct {
	Error *string   `json:"error" example:"the ID in the URL is not a valid UUID"` // The error, if any occurred
	Data  *Category `json:"data"`                                                          // The resource
}
