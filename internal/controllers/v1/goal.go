package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/granafy/backend/internal/httputil"
	"github.com/granafy/backend/internal/models"
)

func (co Controller) RegisterGoalRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsGoals)
		r.GET("", co.GetGoals)
		r.POST("", co.CreateGoal)
	}
	{
		r.OPTIONS("/:id", OptionsGoalDetail)
		r.GET("/:id", co.GetGoal)
		r.PATCH("/:id", co.UpdateGoal)
		r.DELETE("/:id", co.DeleteGoal)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Router			/v1/goals [options]
func OptionsGoals(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Failure		400	{object}	httpError
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/goals/{id} [options]
func OptionsGoalDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create goal
// @Description	Creates a new goal and reconciles the Objectives account
// @Tags			Goals
// @Produce		json
// @Success		201		{object}	GoalResponse
// @Failure		400		{object}	GoalResponse
// @Failure		404		{object}	GoalResponse
// @Failure		500		{object}	GoalResponse
// @Param			goal	body		GoalEditable	true	"Goal"
// @Router			/v1/goals [post]
func (co Controller) CreateGoal(c *gin.Context) {
	var editable GoalEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, GoalResponse{Error: &e})
		return
	}

	goal := editable.model()

	_, err = co.Service.CreateGoal(c.Request.Context(), &goal)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{Error: &e})
		return
	}

	apiResource := newGoal(c, goal)
	c.JSON(http.StatusCreated, GoalResponse{Data: &apiResource})
}

// @Summary		List goals
// @Description	Returns a list of goals
// @Tags			Goals
// @Produce		json
// @Success		200		{object}	GoalListResponse
// @Failure		400		{object}	GoalListResponse
// @Failure		500		{object}	GoalListResponse
// @Param			owner	query		string	false	"Filter by owner ID"
// @Router			/v1/goals [get]
func (co Controller) GetGoals(c *gin.Context) {
	var filter AccountQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, GoalListResponse{Error: &e})
		return
	}

	query := models.DB
	if filter.Owner != "" {
		ownerID, err := uuid.Parse(filter.Owner)
		if err != nil {
			e := errOwnerIDParameter.Error()
			c.JSON(http.StatusBadRequest, GoalListResponse{Error: &e})
			return
		}
		query = query.Where(&models.Goal{OwnerID: ownerID})
	}

	var goals []models.Goal
	err := query.Find(&goals).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalListResponse{Error: &e})
		return
	}

	data := make([]Goal, 0, len(goals))
	for _, goal := range goals {
		data = append(data, newGoal(c, goal))
	}

	c.JSON(http.StatusOK, GoalListResponse{Data: data})
}

// @Summary		Get goal
// @Description	Returns a specific goal
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	GoalResponse
// @Failure		400	{object}	GoalResponse
// @Failure		404	{object}	GoalResponse
// @Failure		500	{object}	GoalResponse
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/goals/{id} [get]
func (co Controller) GetGoal(c *gin.Context) {
	goal, err := getGoalResource(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{Error: &e})
		return
	}

	apiResource := newGoal(c, goal)
	c.JSON(http.StatusOK, GoalResponse{Data: &apiResource})
}

// @Summary		Update goal
// @Description	Updates an existing goal and reconciles the Objectives account
// @Tags			Goals
// @Produce		json
// @Success		200		{object}	GoalResponse
// @Failure		400		{object}	GoalResponse
// @Failure		404		{object}	GoalResponse
// @Failure		500		{object}	GoalResponse
// @Param			id		path		URIID			true	"ID formatted as string"
// @Param			goal	body		GoalEditable	true	"Goal"
// @Router			/v1/goals/{id} [patch]
func (co Controller) UpdateGoal(c *gin.Context) {
	goal, err := getGoalResource(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{Error: &e})
		return
	}

	// Pre-fill the editable fields with the current state so that a
	// partial body only overwrites the fields it contains.
	editable := GoalEditable{
		Name:            goal.Name,
		Note:            goal.Note,
		OwnerID:         goal.OwnerID,
		TargetAmount:    goal.TargetAmount,
		AccruedAmount:   goal.AccruedAmount,
		Deadline:        goal.Deadline,
		Archived:        goal.Archived,
		LinkedAccountID: goal.LinkedAccountID,
	}
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, GoalResponse{Error: &e})
		return
	}

	// The pre-update state drives the completion notification, so only
	// the transition into completeness is announced.
	previous := goal

	updated := editable.model()
	updated.DefaultModel = goal.DefaultModel
	goal = updated

	_, err = co.Service.UpdateGoal(c.Request.Context(), &goal, previous)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{Error: &e})
		return
	}

	apiResource := newGoal(c, goal)
	c.JSON(http.StatusOK, GoalResponse{Data: &apiResource})
}

// @Summary		Delete goal
// @Description	Deletes a goal with its allocations and reconciles the Objectives account
// @Tags			Goals
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/goals/{id} [delete]
func (co Controller) DeleteGoal(c *gin.Context) {
	goal, err := getGoalResource(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	_, err = co.Service.DeleteGoal(c.Request.Context(), &goal)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// getGoalResource verifies that the goal from the URL parameters exists and returns it
func getGoalResource(c *gin.Context) (models.Goal, error) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return models.Goal{}, httputil.ErrInvalidUUID
	}

	id, err := uuid.Parse(uri.ID)
	if err != nil {
		return models.Goal{}, httputil.ErrInvalidUUID
	}

	var goal models.Goal
	err = models.DB.First(&goal, id).Error
	if err != nil {
		return models.Goal{}, err
	}

	return goal, nil
}
