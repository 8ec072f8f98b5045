package handler

import (
	"ceslar/internal/models"
	"ceslar/internal/pagination"
	"ceslar/internal/service"
	"ceslar/pkg/response"

	"github.com/gin-gonic/gin"
)

// ChurchHandler handles HTTP requests for churches.
type ChurchHandler struct {
	service service.ChurchServicer
}

// NewChurchHandler creates a new ChurchHandler.
func NewChurchHandler(service service.ChurchServicer) *ChurchHandler {
	return &ChurchHandler{service: service}
}

// ListChurches godoc
// @Summary      List churches
// @Description  Page through churches by page number
// @Tags         churches
// @Produce      json
// @Param        page      query     int     false  "Page number (1-based)"  default(1)
// @Param        limit     query     int     false  "Page size (1-100)"      default(10)
// @Param        sort      query     string  false  "Comma-separated fields, '-' prefix for descending"  example(name)
// @Param        city      query     string  false  "City"
// @Param        country   query     string  false  "ISO country code"
// @Param        isActive  query     bool    false  "Active churches only"
// @Param        search    query     string  false  "Name prefix, case-insensitive"
// @Success      200       {object}  response.Response{data=[]models.Church,pagination=pagination.OffsetInfo}
// @Failure      400       {object}  response.Response
// @Failure      500       {object}  response.Response
// @Router       /churches [get]
func (h *ChurchHandler) ListChurches(c *gin.Context) {
	h.list(c, pageRequest(c))
}

// ListChurchesCursor godoc
// @Summary      List churches by cursor
// @Description  Page through churches with an opaque cursor
// @Tags         churches
// @Produce      json
// @Param        cursor    query     string  false  "Cursor from the previous page"
// @Param        limit     query     int     false  "Page size (1-100)"  default(10)
// @Param        sort      query     string  false  "Comma-separated fields, '-' prefix for descending"
// @Param        city      query     string  false  "City"
// @Param        country   query     string  false  "ISO country code"
// @Param        isActive  query     bool    false  "Active churches only"
// @Param        search    query     string  false  "Name prefix, case-insensitive"
// @Success      200       {object}  response.Response{data=[]models.Church,pagination=pagination.CursorInfo}
// @Failure      400       {object}  response.Response
// @Failure      500       {object}  response.Response
// @Router       /churches/cursor [get]
func (h *ChurchHandler) ListChurchesCursor(c *gin.Context) {
	h.list(c, cursorRequest(c))
}

func (h *ChurchHandler) list(c *gin.Context, req pagination.Request) {
	var filter models.ChurchFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	page, err := h.service.ListChurches(c.Request.Context(), filter, req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Paginated(c, page)
}

// GetChurch godoc
// @Summary      Get church
// @Tags         churches
// @Produce      json
// @Param        churchId  path      string  true  "Church ID"
// @Success      200       {object}  response.Response{data=models.Church}
// @Failure      404       {object}  response.Response
// @Failure      500       {object}  response.Response
// @Router       /churches/{churchId} [get]
func (h *ChurchHandler) GetChurch(c *gin.Context) {
	church, err := h.service.GetChurch(c.Request.Context(), c.Param("churchId"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, church)
}

// CreateChurch godoc
// @Summary      Create church
// @Description  Register a new church. System admins only.
// @Tags         churches
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreateChurchRequest  true  "Church details"
// @Success      201      {object}  response.Response{data=models.Church}
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Security     BearerAuth
// @Router       /churches [post]
func (h *ChurchHandler) CreateChurch(c *gin.Context) {
	var req models.CreateChurchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	church, err := h.service.CreateChurch(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, church)
}

// UpdateChurch godoc
// @Summary      Update church
// @Description  Update church details. Church admins only.
// @Tags         churches
// @Accept       json
// @Produce      json
// @Param        churchId  path      string                      true  "Church ID"
// @Param        request   body      models.UpdateChurchRequest  true  "Fields to update"
// @Success      200       {object}  response.Response{data=models.Church}
// @Failure      400       {object}  response.Response
// @Failure      403       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Failure      409       {object}  response.Response
// @Security     BearerAuth
// @Router       /churches/{churchId} [put]
func (h *ChurchHandler) UpdateChurch(c *gin.Context) {
	var req models.UpdateChurchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	church, err := h.service.UpdateChurch(c.Request.Context(), c.Param("churchId"), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, church)
}

// DeleteChurch godoc
// @Summary      Delete church
// @Description  Soft-delete a church. System admins or holders of delete:all.
// @Tags         churches
// @Produce      json
// @Param        churchId  path      string  true  "Church ID"
// @Success      200       {object}  response.Response
// @Failure      403       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Security     BearerAuth
// @Router       /churches/{churchId} [delete]
func (h *ChurchHandler) DeleteChurch(c *gin.Context) {
	if err := h.service.DeleteChurch(c.Request.Context(), c.Param("churchId")); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "church deleted"})
}
