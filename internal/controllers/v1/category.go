package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/granafy/backend/internal/httputil"
	"github.com/granafy/backend/internal/models"
)

func (co Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsCategories)
		r.GET("", co.GetCategories)
		r.POST("", co.CreateCategory)
	}
	{
		r.OPTIONS("/:id", OptionsCategoryDetail)
		r.GET("/:id", co.GetCategory)
		r.PATCH("/:id", co.UpdateCategory)
		r.DELETE("/:id", co.DeleteCategory)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategories(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httpError
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/categories/{id} [options]
func OptionsCategoryDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create category
// @Description	Creates a new category
// @Tags			Categories
// @Produce		json
// @Success		201			{object}	CategoryResponse
// @Failure		400			{object}	CategoryResponse
// @Failure		404			{object}	CategoryResponse
// @Failure		500			{object}	CategoryResponse
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories [post]
func (co Controller) CreateCategory(c *gin.Context) {
	var editable CategoryEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, CategoryResponse{Error: &e})
		return
	}

	category := editable.model()
	err = models.DB.Create(&category).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &e})
		return
	}

	apiResource := newCategory(c, category)
	c.JSON(http.StatusCreated, CategoryResponse{Data: &apiResource})
}

// @Summary		List categories
// @Description	Returns a list of categories
// @Tags			Categories
// @Produce		json
// @Success		200		{object}	CategoryListResponse
// @Failure		400		{object}	CategoryListResponse
// @Failure		500		{object}	CategoryListResponse
// @Param			owner	query		string	false	"Filter by owner ID"
// @Router			/v1/categories [get]
func (co Controller) GetCategories(c *gin.Context) {
	var filter AccountQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, CategoryListResponse{Error: &e})
		return
	}

	query := models.DB
	if filter.Owner != "" {
		ownerID, err := uuid.Parse(filter.Owner)
		if err != nil {
			e := errOwnerIDParameter.Error()
			c.JSON(http.StatusBadRequest, CategoryListResponse{Error: &e})
			return
		}
		query = query.Where(&models.Category{OwnerID: ownerID})
	}

	var categories []models.Category
	err := query.Find(&categories).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryListResponse{Error: &e})
		return
	}

	data := make([]Category, 0, len(categories))
	for _, category := range categories {
		data = append(data, newCategory(c, category))
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: data})
}

// @Summary		Get category
// @Description	Returns a specific category
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryResponse
// @Failure		400	{object}	CategoryResponse
// @Failure		404	{object}	CategoryResponse
// @Failure		500	{object}	CategoryResponse
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/categories/{id} [get]
func (co Controller) GetCategory(c *gin.Context) {
	category, err := getCategoryResource(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &e})
		return
	}

	apiResource := newCategory(c, category)
	c.JSON(http.StatusOK, CategoryResponse{Data: &apiResource})
}

// @Summary		Update category
// @Description	Updates an existing category
// @Tags			Categories
// @Produce		json
// @Success		200			{object}	CategoryResponse
// @Failure		400			{object}	CategoryResponse
// @Failure		404			{object}	CategoryResponse
// @Failure		500			{object}	CategoryResponse
// @Param			id			path		URIID				true	"ID formatted as string"
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories/{id} [patch]
func (co Controller) UpdateCategory(c *gin.Context) {
	category, err := getCategoryResource(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &e})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, CategoryEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, CategoryResponse{Error: &e})
		return
	}

	var editable CategoryEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, CategoryResponse{Error: &e})
		return
	}

	err = models.DB.Model(&category).Select("", updateFields...).Updates(editable.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &e})
		return
	}

	apiResource := newCategory(c, category)
	c.JSON(http.StatusOK, CategoryResponse{Data: &apiResource})
}

// @Summary		Delete category
// @Description	Deletes a category
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/categories/{id} [delete]
func (co Controller) DeleteCategory(c *gin.Context) {
	category, err := getCategoryResource(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&category).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// getCategoryResource verifies that the category from the URL parameters exists and returns it
func getCategoryResource(c *gin.Context) (models.Category, error) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return models.Category{}, httputil.ErrInvalidUUID
	}

	id, err := uuid.Parse(uri.ID)
	if err != nil {
		return models.Category{}, httputil.ErrInvalidUUID
	}

	var category models.Category
	err = models.DB.First(&category, id).Error
	if err != nil {
		return models.Category{}, err
	}

	return category, nil
}
