package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/granafy/backend/internal/httputil"
	"github.com/granafy/backend/internal/models"
)

func (co Controller) RegisterNotificationRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsNotifications)
		r.GET("", co.GetNotifications)
	}
	{
		r.OPTIONS("/:id", OptionsNotificationDetail)
		r.GET("/:id", co.GetNotification)
		r.PATCH("/:id", co.UpdateNotification)
	}
}

type NotificationEditable struct {
	Read bool `json:"read" example:"true" default:"false"` // Has the notification been read?
}

type NotificationLinks struct {
	Self  string `json:"self" example:"https://example.com/api/v1/notifications/8c7d6b85-5b21-4f48-9f0a-26b9d55b3f63"` // The notification itself
	Owner string `json:"owner" example:"https://example.com/api/v1/owners/d0085c5a-6b30-4a3f-b135-3b9c62f10c2e"`       // The owner of the notification
}

type Notification struct {
	models.DefaultModel
	OwnerID uuid.UUID               `json:"ownerId" example:"d0085c5a-6b30-4a3f-b135-3b9c62f10c2e"`  // ID of the owner
	Message string                  `json:"message" example:"Parabéns! Você alcançou a meta 'New car'!"` // Text shown to the user
	Kind    models.NotificationKind `json:"kind" example:"success"`                                  // Kind of the notification
	Read    bool                    `json:"read" example:"false"`                                    // Has the notification been read?
	Links   NotificationLinks       `json:"links"`
}

// newNotification returns the API v1 representation of the resource
func newNotification(c *gin.Context, model models.Notification) Notification {
	url := c.GetString(string(models.DBContextURL))

	return Notification{
		DefaultModel: model.DefaultModel,
		OwnerID:      model.OwnerID,
		Message:      model.Message,
		Kind:         model.Kind,
		Read:         model.Read,
		Links: NotificationLinks{
			Self:  fmt.Sprintf("%s/v1/notifications/%s", url, model.ID),
			Owner: fmt.Sprintf("%s/v1/owners/%s", url, model.OwnerID),
		},
	}
}

type NotificationListResponse struct {
	Data  []Notification `json:"data"`                                                          // List of resources
	Error *string        `json:"error" example:"the ID in the URL is not a valid UUID"` // The error, if any occurred
}

type NotificationResponse struct {
	Error *string       `json:"error" example:"the ID in the URL is not a valid UUID"` // The error, if any occurred
	Data  *Notification `json:"data"`                                                          // The resource
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Notifications
// @Success		204
// @Router			/v1/notifications [options]
func OptionsNotifications(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Notifications
// @Success		204
// @Failure		400	{object}	httpError
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/notifications/{id} [options]
func OptionsNotificationDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	httputil.OptionsGetPatch(c)
}

// @Summary		List notifications
// @Description	Returns a list of notifications
// @Tags			Notifications
// @Produce		json
// @Success		200		{object}	NotificationListResponse
// @Failure		400		{object}	NotificationListResponse
// @Failure		500		{object}	NotificationListResponse
// @Param			owner	query		string	false	"Filter by owner ID"
// @Router			/v1/notifications [get]
func (co Controller) GetNotifications(c *gin.Context) {
	var filter AccountQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, NotificationListResponse{Error: &e})
		return
	}

	query := models.DB
	if filter.Owner != "" {
		ownerID, err := uuid.Parse(filter.Owner)
		if err != nil {
			e := errOwnerIDParameter.Error()
			c.JSON(http.StatusBadRequest, NotificationListResponse{Error: &e})
			return
		}
		query = query.Where(&models.Notification{OwnerID: ownerID})
	}

	var notifications []models.Notification
	err := query.Order("created_at DESC").Find(&notifications).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), NotificationListResponse{Error: &e})
		return
	}

	data := make([]Notification, 0, len(notifications))
	for _, notification := range notifications {
		data = append(data, newNotification(c, notification))
	}

	c.JSON(http.StatusOK, NotificationListResponse{Data: data})
}

// @Summary		Get notification
// @Description	Returns a specific notification
// @Tags			Notifications
// @Produce		json
// @Success		200	{object}	NotificationResponse
// @Failure		400	{object}	NotificationResponse
// @Failure		404	{object}	NotificationResponse
// @Failure		500	{object}	NotificationResponse
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/notifications/{id} [get]
func (co Controller) GetNotification(c *gin.Context) {
	notification, err := getNotificationResource(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), NotificationResponse{Error: &e})
		return
	}

	apiResource := newNotification(c, notification)
	c.JSON(http.StatusOK, NotificationResponse{Data: &apiResource})
}

// @Summary		Update notification
// @Description	Marks a notification as read or unread
// @Tags			Notifications
// @Produce		json
// @Success		200				{object}	NotificationResponse
// @Failure		400				{object}	NotificationResponse
// @Failure		404				{object}	NotificationResponse
// @Failure		500				{object}	NotificationResponse
// @Param			id				path		URIID					true	"ID formatted as string"
// @Param			notification	body		NotificationEditable	true	"Notification"
// @Router			/v1/notifications/{id} [patch]
func (co Controller) UpdateNotification(c *gin.Context) {
	notification, err := getNotificationResource(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), NotificationResponse{Error: &e})
		return
	}

	var editable NotificationEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, NotificationResponse{Error: &e})
		return
	}

	err = models.DB.Model(&notification).Select("Read").Updates(models.Notification{Read: editable.Read}).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), NotificationResponse{Error: &e})
		return
	}

	apiResource := newNotification(c, notification)
	c.JSON(http.StatusOK, NotificationResponse{Data: &apiResource})
}

// getNotificationResource verifies that the notification from the URL parameters exists and returns it
func getNotificationResource(c *gin.Context) (models.Notification, error) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return models.Notification{}, httputil.ErrInvalidUUID
	}

	id, err := uuid.Parse(uri.ID)
	if err != nil {
		return models.Notification{}, httputil.ErrInvalidUUID
	}

	var notification models.Notification
	err = models.DB.First(&notification, id).Error
	if err != nil {
		return models.Notification{}, err
	}

	return notification, nil
}
