package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/granafy/backend/internal/httputil"
	"github.com/granafy/backend/internal/models"
)

func (co Controller) RegisterOwnerRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsOwners)
		r.GET("", co.GetOwners)
		r.POST("", co.CreateOwner)
	}
	{
		r.OPTIONS("/:id", OptionsOwnerDetail)
		r.GET("/:id", co.GetOwner)
		r.PATCH("/:id", co.UpdateOwner)
		r.DELETE("/:id", co.DeleteOwner)
	}
	{
		r.OPTIONS("/:id/objectives/sync", OptionsObjectivesSync)
		r.POST("/:id/objectives/sync", co.SyncObjectives)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Owners
// @Success		204
// @Router			/v1/owners [options]
func OptionsOwners(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Owners
// @Success		204
// @Failure		400	{object}	httpError
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/owners/{id} [options]
func OptionsOwnerDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Owners
// @Success		204
// @Failure		400	{object}	httpError
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/owners/{id}/objectives/sync [options]
func OptionsObjectivesSync(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	httputil.OptionsPost(c)
}

// @Summary		Create owner
// @Description	Creates a new owner
// @Tags			Owners
// @Produce		json
// @Success		201		{object}	OwnerResponse
// @Failure		400		{object}	OwnerResponse
// @Failure		500		{object}	OwnerResponse
// @Param			owner	body		OwnerEditable	true	"Owner"
// @Router			/v1/owners [post]
func (co Controller) CreateOwner(c *gin.Context) {
	var editable OwnerEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, OwnerResponse{Error: &e})
		return
	}

	owner := editable.model()
	err = models.DB.Create(&owner).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OwnerResponse{Error: &e})
		return
	}

	apiResource := newOwner(c, owner)
	c.JSON(http.StatusCreated, OwnerResponse{Data: &apiResource})
}

// @Summary		List owners
// @Description	Returns a list of owners
// @Tags			Owners
// @Produce		json
// @Success		200	{object}	OwnerListResponse
// @Failure		500	{object}	OwnerListResponse
// @Router			/v1/owners [get]
func (co Controller) GetOwners(c *gin.Context) {
	var owners []models.Owner

	err := models.DB.Find(&owners).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OwnerListResponse{Error: &e})
		return
	}

	data := make([]Owner, 0, len(owners))
	for _, owner := range owners {
		data = append(data, newOwner(c, owner))
	}

	c.JSON(http.StatusOK, OwnerListResponse{Data: data})
}

// @Summary		Get owner
// @Description	Returns a specific owner
// @Tags			Owners
// @Produce		json
// @Success		200	{object}	OwnerResponse
// @Failure		400	{object}	OwnerResponse
// @Failure		404	{object}	OwnerResponse
// @Failure		500	{object}	OwnerResponse
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/owners/{id} [get]
func (co Controller) GetOwner(c *gin.Context) {
	owner, err := getOwnerResource(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OwnerResponse{Error: &e})
		return
	}

	apiResource := newOwner(c, owner)
	c.JSON(http.StatusOK, OwnerResponse{Data: &apiResource})
}

// @Summary		Update owner
// @Description	Updates an existing owner
// @Tags			Owners
// @Produce		json
// @Success		200		{object}	OwnerResponse
// @Failure		400		{object}	OwnerResponse
// @Failure		404		{object}	OwnerResponse
// @Failure		500		{object}	OwnerResponse
// @Param			id		path		URIID			true	"ID formatted as string"
// @Param			owner	body		OwnerEditable	true	"Owner"
// @Router			/v1/owners/{id} [patch]
func (co Controller) UpdateOwner(c *gin.Context) {
	owner, err := getOwnerResource(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OwnerResponse{Error: &e})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, OwnerEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, OwnerResponse{Error: &e})
		return
	}

	var editable OwnerEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, OwnerResponse{Error: &e})
		return
	}

	err = models.DB.Model(&owner).Select("", updateFields...).Updates(editable.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OwnerResponse{Error: &e})
		return
	}

	apiResource := newOwner(c, owner)
	c.JSON(http.StatusOK, OwnerResponse{Data: &apiResource})
}

// @Summary		Delete owner
// @Description	Deletes an owner
// @Tags			Owners
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/owners/{id} [delete]
func (co Controller) DeleteOwner(c *gin.Context) {
	owner, err := getOwnerResource(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&owner).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Repair the Objectives account
// @Description	Resynchronizes the virtual Objectives account with the sum of the owner's goal balances. Idempotent, callable standalone for repair.
// @Tags			Owners
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/owners/{id}/objectives/sync [post]
func (co Controller) SyncObjectives(c *gin.Context) {
	owner, err := getOwnerResource(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = co.Service.Resync(c.Request.Context(), owner.ID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// getOwnerResource verifies that the owner from the URL parameters exists and returns it
func getOwnerResource(c *gin.Context) (models.Owner, error) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return models.Owner{}, httputil.ErrInvalidUUID
	}

	id, err := uuid.Parse(uri.ID)
	if err != nil {
		return models.Owner{}, httputil.ErrInvalidUUID
	}

	var owner models.Owner
	err = models.DB.First(&owner, id).Error
	if err != nil {
		return models.Owner{}, err
	}

	return owner, nil
}
