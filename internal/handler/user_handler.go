package handler

import (
	"ceslar/internal/models"
	"ceslar/internal/service"
	"ceslar/pkg/response"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for user operations.
type UserHandler struct {
	service service.UserServicer
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service service.UserServicer) *UserHandler {
	return &UserHandler{service: service}
}

// ListUsers godoc
// @Summary      List users
// @Description  Page through all users by cursor. System admins only.
// @Tags         users
// @Produce      json
// @Param        cursor  query     string  false  "Id of the last user of the previous page"
// @Param        limit   query     int     false  "Page size (1-100)"  default(10)
// @Param        sort    query     string  false  "Comma-separated fields, '-' prefix for descending"  example(-createdAt)
// @Success      200     {object}  response.Response{data=[]models.User,pagination=pagination.CursorInfo}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Security     BearerAuth
// @Router       /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	page, err := h.service.ListUsers(c.Request.Context(), cursorRequest(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Paginated(c, page)
}

// GetUser godoc
// @Summary      Get user by ID
// @Description  Retrieve a single user. Owner or system admin.
// @Tags         users
// @Produce      json
// @Param        userId  path      string  true  "User ID"
// @Success      200     {object}  response.Response{data=models.User}
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /users/{userId} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.service.GetUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, user)
}

// UpdateUser godoc
// @Summary      Update user
// @Description  Update a user's email, name or phone. Owner or system admin.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        userId   path      string                    true  "User ID"
// @Param        request  body      models.UpdateUserRequest  true  "Fields to update"
// @Success      200      {object}  response.Response{data=models.User}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /users/{userId} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.service.UpdateUser(c.Request.Context(), c.Param("userId"), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, user)
}

// UpdateAccess godoc
// @Summary      Set user access
// @Description  Set a user's system role and permissions. System admins only.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        userId   path      string                      true  "User ID"
// @Param        request  body      models.UpdateAccessRequest  true  "Role and permissions"
// @Success      200      {object}  response.Response{data=models.User}
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Security     BearerAuth
// @Router       /users/{userId}/access [put]
func (h *UserHandler) UpdateAccess(c *gin.Context) {
	var req models.UpdateAccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.service.UpdateAccess(c.Request.Context(), c.Param("userId"), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, user)
}

// DeleteUser godoc
// @Summary      Delete user
// @Description  Soft-delete a user. System admins only.
// @Tags         users
// @Produce      json
// @Param        userId  path      string  true  "User ID"
// @Success      200     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /users/{userId} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.service.DeleteUser(c.Request.Context(), c.Param("userId")); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "user deleted"})
}
