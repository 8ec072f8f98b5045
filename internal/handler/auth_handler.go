// Package handler contains HTTP handlers for the API.
package handler

import (
	"ceslar/internal/middleware"
	"ceslar/internal/models"
	"ceslar/internal/service"
	"ceslar/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for authentication operations.
type AuthHandler struct {
	service service.AuthServicer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service service.AuthServicer) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register godoc
// @Summary      Register a new user
// @Description  Create a user account and return an access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      models.RegisterRequest  true  "User registration details"
// @Success      201      {object}  response.Response{data=models.LoginResponse}
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, result)
}

// Login godoc
// @Summary      User login
// @Description  Authenticate with email and password and return an access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      models.LoginRequest  true  "User credentials"
// @Success      200      {object}  response.Response{data=models.LoginResponse}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, result)
}

// Me godoc
// @Summary      Current user
// @Description  Return the authenticated user together with the resolved roles and permissions
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response{data=models.MeResponse}
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	result, err := h.service.Me(c.Request.Context(), middleware.GetClaims(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, result)
}
