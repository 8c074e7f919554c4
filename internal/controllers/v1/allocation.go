package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/granafy/backend/internal/goalfund"
	"github.com/granafy/backend/internal/httputil"
	"github.com/granafy/backend/internal/models"
)

func (co Controller) RegisterAllocationRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsAllocations)
		r.GET("", co.GetAllocations)
		r.POST("", co.CreateAllocation)
	}
	{
		r.OPTIONS("/:id", OptionsAllocationDetail)
		r.GET("/:id", co.GetAllocation)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocations
// @Success		204
// @Router			/v1/allocations [options]
func OptionsAllocations(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocations
// @Success		204
// @Failure		400	{object}	httpError
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/allocations/{id} [options]
func OptionsAllocationDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Create allocation
// @Description	Moves money from an account into a goal, creating the offsetting transaction and reconciling the Objectives account
// @Tags			Allocations
// @Produce		json
// @Success		201			{object}	AllocationResponse
// @Failure		400			{object}	AllocationResponse
// @Failure		404			{object}	AllocationResponse
// @Failure		409			{object}	AllocationResponse
// @Failure		500			{object}	AllocationResponse
// @Param			allocation	body		AllocationEditable	true	"Allocation"
// @Router			/v1/allocations [post]
func (co Controller) CreateAllocation(c *gin.Context) {
	var editable AllocationEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, AllocationResponse{Error: &e})
		return
	}

	result, err := co.Service.Allocate(c.Request.Context(), goalfund.AllocateParams{
		GoalID:    editable.GoalID,
		AccountID: editable.AccountID,
		OwnerID:   editable.OwnerID,
		Amount:    editable.Amount,
		Date:      editable.Date,
		Note:      editable.Note,
	})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationResponse{Error: &e})
		return
	}

	allocation := newAllocation(c, result.Allocation)
	goal := newGoal(c, result.Goal)
	transaction := newTransaction(c, result.Transaction)
	c.JSON(http.StatusCreated, AllocationResponse{
		Data:        &allocation,
		Goal:        &goal,
		Transaction: &transaction,
	})
}

// @Summary		List allocations
// @Description	Returns a list of allocations
// @Tags			Allocations
// @Produce		json
// @Success		200		{object}	AllocationListResponse
// @Failure		400		{object}	AllocationListResponse
// @Failure		500		{object}	AllocationListResponse
// @Param			owner	query		string	false	"Filter by owner ID"
// @Param			goal	query		string	false	"Filter by goal ID"
// @Router			/v1/allocations [get]
func (co Controller) GetAllocations(c *gin.Context) {
	var filter AllocationQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, AllocationListResponse{Error: &e})
		return
	}

	query := models.DB
	if filter.Owner != "" {
		ownerID, err := uuid.Parse(filter.Owner)
		if err != nil {
			e := errOwnerIDParameter.Error()
			c.JSON(http.StatusBadRequest, AllocationListResponse{Error: &e})
			return
		}
		query = query.Where(&models.GoalAllocation{OwnerID: ownerID})
	}
	if filter.Goal != "" {
		goalID, err := uuid.Parse(filter.Goal)
		if err != nil {
			e := httputil.ErrInvalidUUID.Error()
			c.JSON(http.StatusBadRequest, AllocationListResponse{Error: &e})
			return
		}
		query = query.Where(&models.GoalAllocation{GoalID: goalID})
	}

	var allocations []models.GoalAllocation
	err := query.Find(&allocations).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationListResponse{Error: &e})
		return
	}

	data := make([]Allocation, 0, len(allocations))
	for _, allocation := range allocations {
		data = append(data, newAllocation(c, allocation))
	}

	c.JSON(http.StatusOK, AllocationListResponse{Data: data})
}

// @Summary		Get allocation
// @Description	Returns a specific allocation
// @Tags			Allocations
// @Produce		json
// @Success		200	{object}	AllocationResponse
// @Failure		400	{object}	AllocationResponse
// @Failure		404	{object}	AllocationResponse
// @Failure		500	{object}	AllocationResponse
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/allocations/{id} [get]
func (co Controller) GetAllocation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, AllocationResponse{Error: &e})
		return
	}

	id, err := uuid.Parse(uri.ID)
	if err != nil {
		e := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, AllocationResponse{Error: &e})
		return
	}

	var allocation models.GoalAllocation
	err = models.DB.First(&allocation, id).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationResponse{Error: &e})
		return
	}

	apiResource := newAllocation(c, allocation)
	c.JSON(http.StatusOK, AllocationResponse{Data: &apiResource})
}
