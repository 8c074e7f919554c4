// Package v1 contains the v1 API of the Granafy backend.
package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/granafy/backend/internal/goalfund"
	"github.com/granafy/backend/internal/ledger"
)

// Controller holds the dependencies of the v1 handlers.
type Controller struct {
	Store   *ledger.GormStore
	Service *goalfund.Service
}

// RegisterRoutes attaches all v1 routes to the router group passed in.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	co.RegisterOwnerRoutes(r.Group("/owners"))
	co.RegisterAccountRoutes(r.Group("/accounts"))
	co.RegisterCategoryRoutes(r.Group("/categories"))
	co.RegisterGoalRoutes(r.Group("/goals"))
	co.RegisterAllocationRoutes(r.Group("/allocations"))
	co.RegisterTransactionRoutes(r.Group("/transactions"))
	co.RegisterNotificationRoutes(r.Group("/notifications"))
}

// URIID is the URI parameter for a resource ID.
type URIID struct {
	ID string `uri:"id" binding:"required,uuid"`
}
