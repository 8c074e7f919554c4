package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/granafy/backend/internal/httputil"
	"github.com/granafy/backend/internal/models"
)

func (co Controller) RegisterAccountRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsAccounts)
		r.GET("", co.GetAccounts)
		r.POST("", co.CreateAccount)
	}
	{
		r.OPTIONS("/:id", OptionsAccountDetail)
		r.GET("/:id", co.GetAccount)
		r.PATCH("/:id", co.UpdateAccount)
		r.DELETE("/:id", co.DeleteAccount)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Success		204
// @Router			/v1/accounts [options]
func OptionsAccounts(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Success		204
// @Failure		400	{object}	httpError
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/accounts/{id} [options]
func OptionsAccountDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create account
// @Description	Creates a new account
// @Tags			Accounts
// @Produce		json
// @Success		201		{object}	AccountResponse
// @Failure		400		{object}	AccountResponse
// @Failure		404		{object}	AccountResponse
// @Failure		500		{object}	AccountResponse
// @Param			account	body		AccountEditable	true	"Account"
// @Router			/v1/accounts [post]
func (co Controller) CreateAccount(c *gin.Context) {
	var editable AccountEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, AccountResponse{Error: &e})
		return
	}

	account := editable.model()

	// The Objectives account is managed by the reconciler
	if account.IsObjectives() {
		e := models.ErrVirtualAccountNotTransactable.Error()
		c.JSON(http.StatusBadRequest, AccountResponse{Error: &e})
		return
	}

	account.Balance = account.InitialBalance
	err = models.DB.Create(&account).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountResponse{Error: &e})
		return
	}

	apiResource := newAccount(c, account)
	c.JSON(http.StatusCreated, AccountResponse{Data: &apiResource})
}

// @Summary		List accounts
// @Description	Returns a list of accounts
// @Tags			Accounts
// @Produce		json
// @Success		200		{object}	AccountListResponse
// @Failure		400		{object}	AccountListResponse
// @Failure		500		{object}	AccountListResponse
// @Param			owner	query		string	false	"Filter by owner ID"
// @Router			/v1/accounts [get]
func (co Controller) GetAccounts(c *gin.Context) {
	var filter AccountQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, AccountListResponse{Error: &e})
		return
	}

	query := models.DB
	if filter.Owner != "" {
		ownerID, err := uuid.Parse(filter.Owner)
		if err != nil {
			e := errOwnerIDParameter.Error()
			c.JSON(http.StatusBadRequest, AccountListResponse{Error: &e})
			return
		}
		query = query.Where(&models.Account{OwnerID: ownerID})
	}

	var accounts []models.Account
	err := query.Find(&accounts).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountListResponse{Error: &e})
		return
	}

	data := make([]Account, 0, len(accounts))
	for _, account := range accounts {
		data = append(data, newAccount(c, account))
	}

	c.JSON(http.StatusOK, AccountListResponse{Data: data})
}

// @Summary		Get account
// @Description	Returns a specific account
// @Tags			Accounts
// @Produce		json
// @Success		200	{object}	AccountResponse
// @Failure		400	{object}	AccountResponse
// @Failure		404	{object}	AccountResponse
// @Failure		500	{object}	AccountResponse
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/accounts/{id} [get]
func (co Controller) GetAccount(c *gin.Context) {
	account, err := getAccountResource(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountResponse{Error: &e})
		return
	}

	apiResource := newAccount(c, account)
	c.JSON(http.StatusOK, AccountResponse{Data: &apiResource})
}

// @Summary		Update account
// @Description	Updates an existing account
// @Tags			Accounts
// @Produce		json
// @Success		200		{object}	AccountResponse
// @Failure		400		{object}	AccountResponse
// @Failure		404		{object}	AccountResponse
// @Failure		500		{object}	AccountResponse
// @Param			id		path		URIID			true	"ID formatted as string"
// @Param			account	body		AccountEditable	true	"Account"
// @Router			/v1/accounts/{id} [patch]
func (co Controller) UpdateAccount(c *gin.Context) {
	account, err := getAccountResource(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountResponse{Error: &e})
		return
	}

	if account.IsObjectives() {
		e := models.ErrVirtualAccountNotTransactable.Error()
		c.JSON(http.StatusBadRequest, AccountResponse{Error: &e})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, AccountEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, AccountResponse{Error: &e})
		return
	}

	var editable AccountEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, AccountResponse{Error: &e})
		return
	}

	err = models.DB.Model(&account).Select("", updateFields...).Updates(editable.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountResponse{Error: &e})
		return
	}

	apiResource := newAccount(c, account)
	c.JSON(http.StatusOK, AccountResponse{Data: &apiResource})
}

// @Summary		Delete account
// @Description	Deletes an account
// @Tags			Accounts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/accounts/{id} [delete]
func (co Controller) DeleteAccount(c *gin.Context) {
	account, err := getAccountResource(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if account.IsObjectives() {
		c.JSON(http.StatusBadRequest, httpError{Error: models.ErrVirtualAccountNotTransactable.Error()})
		return
	}

	err = models.DB.Delete(&account).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// getAccountResource verifies that the account from the URL parameters exists and returns it
func getAccountResource(c *gin.Context) (models.Account, error) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return models.Account{}, httputil.ErrInvalidUUID
	}

	id, err := uuid.Parse(uri.ID)
	if err != nil {
		return models.Account{}, httputil.ErrInvalidUUID
	}

	var account models.Account
	err = models.DB.First(&account, id).Error
	if err != nil {
		return models.Account{}, err
	}

	return account, nil
}
