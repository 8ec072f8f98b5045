package handler

import (
	"ceslar/internal/middleware"
	"ceslar/internal/models"
	"ceslar/internal/service"
	"ceslar/pkg/response"

	"github.com/gin-gonic/gin"
)

// MinistryHandler handles HTTP requests for church ministries.
type MinistryHandler struct {
	service service.MinistryServicer
}

// NewMinistryHandler creates a new MinistryHandler.
func NewMinistryHandler(service service.MinistryServicer) *MinistryHandler {
	return &MinistryHandler{service: service}
}

// ListMinistries godoc
// @Summary      List ministries
// @Description  Page through ministries by page number or cursor. Inactive ministries are listed only for editors of the filtered church.
// @Tags         ministries
// @Produce      json
// @Param        churchId  query     string  false  "Church ID"
// @Param        isActive  query     bool    false  "Active state (editors only; others always see active)"
// @Param        page      query     int     false  "Page number (1-based)"
// @Param        cursor    query     string  false  "Cursor from the previous page"
// @Param        limit     query     int     false  "Page size (1-100)"  default(10)
// @Param        sort      query     string  false  "Comma-separated fields, '-' prefix for descending"  example(name)
// @Success      200       {object}  response.Response{data=[]models.Ministry}
// @Failure      400       {object}  response.Response
// @Failure      500       {object}  response.Response
// @Router       /ministries [get]
func (h *MinistryHandler) ListMinistries(c *gin.Context) {
	var filter models.ContentFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	page, err := h.service.ListMinistries(c.Request.Context(), middleware.GetClaims(c), filter, pageRequest(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Paginated(c, page)
}

// GetMinistry godoc
// @Summary      Get ministry
// @Tags         ministries
// @Produce      json
// @Param        id   path      string  true  "Ministry ID"
// @Success      200  {object}  response.Response{data=models.Ministry}
// @Failure      404  {object}  response.Response
// @Router       /ministries/{id} [get]
func (h *MinistryHandler) GetMinistry(c *gin.Context) {
	ministry, err := h.service.GetMinistry(c.Request.Context(), middleware.GetClaims(c), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, ministry)
}

// CreateMinistry godoc
// @Summary      Create ministry
// @Description  Create a ministry in the church named by the body. Church admins, pastors, leaders and staff.
// @Tags         ministries
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreateMinistryRequest  true  "Ministry details"
// @Success      201      {object}  response.Response{data=models.Ministry}
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Security     BearerAuth
// @Router       /ministries [post]
func (h *MinistryHandler) CreateMinistry(c *gin.Context) {
	var req models.CreateMinistryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	ministry, err := h.service.CreateMinistry(c.Request.Context(), middleware.GetClaims(c), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, ministry)
}

// UpdateMinistry godoc
// @Summary      Update ministry
// @Description  Update a ministry. The church id in the body or query must own the ministry.
// @Tags         ministries
// @Accept       json
// @Produce      json
// @Param        id       path      string                        true  "Ministry ID"
// @Param        request  body      models.UpdateMinistryRequest  true  "Fields to update"
// @Success      200      {object}  response.Response{data=models.Ministry}
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Security     BearerAuth
// @Router       /ministries/{id} [put]
func (h *MinistryHandler) UpdateMinistry(c *gin.Context) {
	var req models.UpdateMinistryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	ministry, err := h.service.UpdateMinistry(c.Request.Context(), middleware.ResolvedChurchID(c), c.Param("id"), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, ministry)
}

// DeleteMinistry godoc
// @Summary      Delete ministry
// @Description  Soft-delete a ministry. Church admins and pastors, or holders of delete:all.
// @Tags         ministries
// @Produce      json
// @Param        id        path      string  true   "Ministry ID"
// @Param        churchId  query     string  false  "Church ID owning the ministry"
// @Success      200       {object}  response.Response
// @Failure      403       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Security     BearerAuth
// @Router       /ministries/{id} [delete]
func (h *MinistryHandler) DeleteMinistry(c *gin.Context) {
	if err := h.service.DeleteMinistry(c.Request.Context(), middleware.ResolvedChurchID(c), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "ministry deleted"})
}
