package handler

import (
	"ceslar/internal/middleware"
	"ceslar/internal/models"
	"ceslar/internal/service"
	"ceslar/pkg/response"

	"github.com/gin-gonic/gin"
)

// EventHandler handles HTTP requests for church events.
type EventHandler struct {
	service service.EventServicer
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(service service.EventServicer) *EventHandler {
	return &EventHandler{service: service}
}

// ListEvents godoc
// @Summary      List events
// @Description  Page through events by page number or cursor. Drafts are listed only for editors of the filtered church.
// @Tags         events
// @Produce      json
// @Param        churchId  query     string  false  "Church ID"
// @Param        category  query     string  false  "Category"
// @Param        page      query     int     false  "Page number (1-based)"
// @Param        cursor    query     string  false  "Cursor from the previous page"
// @Param        limit     query     int     false  "Page size (1-100)"  default(10)
// @Param        sort      query     string  false  "Comma-separated fields, '-' prefix for descending"  example(startsAt)
// @Success      200       {object}  response.Response{data=[]models.Event}
// @Failure      400       {object}  response.Response
// @Failure      500       {object}  response.Response
// @Router       /events [get]
func (h *EventHandler) ListEvents(c *gin.Context) {
	var filter models.ContentFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	page, err := h.service.ListEvents(c.Request.Context(), middleware.GetClaims(c), filter, pageRequest(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Paginated(c, page)
}

// GetEvent godoc
// @Summary      Get event
// @Tags         events
// @Produce      json
// @Param        id   path      string  true  "Event ID"
// @Success      200  {object}  response.Response{data=models.Event}
// @Failure      404  {object}  response.Response
// @Router       /events/{id} [get]
func (h *EventHandler) GetEvent(c *gin.Context) {
	event, err := h.service.GetEvent(c.Request.Context(), middleware.GetClaims(c), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, event)
}

// CreateEvent godoc
// @Summary      Create event
// @Description  Create an event in the church named by the body. Church admins, pastors, leaders and staff.
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreateEventRequest  true  "Event details"
// @Success      201      {object}  response.Response{data=models.Event}
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Security     BearerAuth
// @Router       /events [post]
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	event, err := h.service.CreateEvent(c.Request.Context(), middleware.GetClaims(c), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, event)
}

// UpdateEvent godoc
// @Summary      Update event
// @Description  Update an event. The church id in the body or query must own the event.
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        id       path      string                     true  "Event ID"
// @Param        request  body      models.UpdateEventRequest  true  "Fields to update"
// @Success      200      {object}  response.Response{data=models.Event}
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Security     BearerAuth
// @Router       /events/{id} [put]
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	var req models.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	event, err := h.service.UpdateEvent(c.Request.Context(), middleware.ResolvedChurchID(c), c.Param("id"), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, event)
}

// DeleteEvent godoc
// @Summary      Delete event
// @Description  Soft-delete an event. Church admins and pastors, or holders of delete:all.
// @Tags         events
// @Produce      json
// @Param        id        path      string  true   "Event ID"
// @Param        churchId  query     string  false  "Church ID owning the event"
// @Success      200       {object}  response.Response
// @Failure      403       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Security     BearerAuth
// @Router       /events/{id} [delete]
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	if err := h.service.DeleteEvent(c.Request.Context(), middleware.ResolvedChurchID(c), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "event deleted"})
}
