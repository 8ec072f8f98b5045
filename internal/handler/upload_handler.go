package handler

import (
	"ceslar/internal/models"
	"ceslar/internal/service"
	"ceslar/pkg/response"

	"github.com/gin-gonic/gin"
)

// UploadHandler handles HTTP requests for church media uploads.
type UploadHandler struct {
	service service.UploadServicer
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(service service.UploadServicer) *UploadHandler {
	return &UploadHandler{service: service}
}

// CreateUpload godoc
// @Summary      Create upload URL
// @Description  Issue a presigned PUT URL for a new media object under the church's prefix. Church admins, pastors, leaders and staff.
// @Tags         uploads
// @Accept       json
// @Produce      json
// @Param        churchId  path      string                      true  "Church ID"
// @Param        request   body      models.CreateUploadRequest  true  "Upload details"
// @Success      201       {object}  response.Response{data=models.UploadResponse}
// @Failure      400       {object}  response.Response
// @Failure      403       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Security     BearerAuth
// @Router       /churches/{churchId}/uploads [post]
func (h *UploadHandler) CreateUpload(c *gin.Context) {
	var req models.CreateUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	upload, err := h.service.CreateUpload(c.Request.Context(), c.Param("churchId"), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, upload)
}

// DeleteUpload godoc
// @Summary      Delete upload
// @Description  Remove a media object stored under the church's prefix.
// @Tags         uploads
// @Produce      json
// @Param        churchId  path      string  true  "Church ID"
// @Param        key       query     string  true  "Object key"
// @Success      204
// @Failure      400       {object}  response.Response
// @Failure      403       {object}  response.Response
// @Security     BearerAuth
// @Router       /churches/{churchId}/uploads [delete]
func (h *UploadHandler) DeleteUpload(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		response.BadRequest(c, "key is required")
		return
	}

	if err := h.service.DeleteUpload(c.Request.Context(), c.Param("churchId"), key); err != nil {
		response.FromError(c, err)
		return
	}

	response.NoContent(c)
}
