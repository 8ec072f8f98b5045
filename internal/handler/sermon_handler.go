package handler

import (
	"ceslar/internal/middleware"
	"ceslar/internal/models"
	"ceslar/internal/service"
	"ceslar/pkg/response"

	"github.com/gin-gonic/gin"
)

// SermonHandler handles HTTP requests for church sermons.
type SermonHandler struct {
	service service.SermonServicer
}

// NewSermonHandler creates a new SermonHandler.
func NewSermonHandler(service service.SermonServicer) *SermonHandler {
	return &SermonHandler{service: service}
}

// ListSermons godoc
// @Summary      List sermons
// @Description  Page through sermons by page number or cursor, newest first. Drafts are listed only for editors of the filtered church.
// @Tags         sermons
// @Produce      json
// @Param        churchId  query     string  false  "Church ID"
// @Param        preacher  query     string  false  "Preacher"
// @Param        series    query     string  false  "Series"
// @Param        page      query     int     false  "Page number (1-based)"
// @Param        cursor    query     string  false  "Cursor from the previous page"
// @Param        limit     query     int     false  "Page size (1-100)"  default(10)
// @Param        sort      query     string  false  "Comma-separated fields, '-' prefix for descending"  example(-date)
// @Success      200       {object}  response.Response{data=[]models.Sermon}
// @Failure      400       {object}  response.Response
// @Failure      500       {object}  response.Response
// @Router       /sermons [get]
func (h *SermonHandler) ListSermons(c *gin.Context) {
	var filter models.ContentFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	page, err := h.service.ListSermons(c.Request.Context(), middleware.GetClaims(c), filter, pageRequest(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Paginated(c, page)
}

// GetSermon godoc
// @Summary      Get sermon
// @Tags         sermons
// @Produce      json
// @Param        id   path      string  true  "Sermon ID"
// @Success      200  {object}  response.Response{data=models.Sermon}
// @Failure      404  {object}  response.Response
// @Router       /sermons/{id} [get]
func (h *SermonHandler) GetSermon(c *gin.Context) {
	sermon, err := h.service.GetSermon(c.Request.Context(), middleware.GetClaims(c), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, sermon)
}

// CreateSermon godoc
// @Summary      Create sermon
// @Description  Create a sermon in the church named by the body. Church admins, pastors, leaders and staff.
// @Tags         sermons
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreateSermonRequest  true  "Sermon details"
// @Success      201      {object}  response.Response{data=models.Sermon}
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Security     BearerAuth
// @Router       /sermons [post]
func (h *SermonHandler) CreateSermon(c *gin.Context) {
	var req models.CreateSermonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	sermon, err := h.service.CreateSermon(c.Request.Context(), middleware.GetClaims(c), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, sermon)
}

// UpdateSermon godoc
// @Summary      Update sermon
// @Description  Update a sermon. The church id in the body or query must own the sermon.
// @Tags         sermons
// @Accept       json
// @Produce      json
// @Param        id       path      string                     true  "Sermon ID"
// @Param        request  body      models.UpdateSermonRequest  true  "Fields to update"
// @Success      200      {object}  response.Response{data=models.Sermon}
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Security     BearerAuth
// @Router       /sermons/{id} [put]
func (h *SermonHandler) UpdateSermon(c *gin.Context) {
	var req models.UpdateSermonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	sermon, err := h.service.UpdateSermon(c.Request.Context(), middleware.ResolvedChurchID(c), c.Param("id"), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, sermon)
}

// DeleteSermon godoc
// @Summary      Delete sermon
// @Description  Soft-delete a sermon. Church admins and pastors, or holders of delete:all.
// @Tags         sermons
// @Produce      json
// @Param        id        path      string  true   "Sermon ID"
// @Param        churchId  query     string  false  "Church ID owning the sermon"
// @Success      200       {object}  response.Response
// @Failure      403       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Security     BearerAuth
// @Router       /sermons/{id} [delete]
func (h *SermonHandler) DeleteSermon(c *gin.Context) {
	if err := h.service.DeleteSermon(c.Request.Context(), middleware.ResolvedChurchID(c), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "sermon deleted"})
}
