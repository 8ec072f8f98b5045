package handler

import (
	"ceslar/internal/middleware"
	"ceslar/internal/models"
	"ceslar/internal/service"
	"ceslar/pkg/response"

	"github.com/gin-gonic/gin"
)

// MembershipHandler handles HTTP requests for church memberships.
type MembershipHandler struct {
	service service.MembershipServicer
}

// NewMembershipHandler creates a new MembershipHandler.
func NewMembershipHandler(service service.MembershipServicer) *MembershipHandler {
	return &MembershipHandler{service: service}
}

// ListMembers godoc
// @Summary      List church members
// @Description  Page through the memberships of a church. Church admins, pastors and leaders.
// @Tags         members
// @Produce      json
// @Param        churchId  path      string  true   "Church ID"
// @Param        role      query     string  false  "Church role"
// @Param        status    query     string  false  "Membership status"  Enums(pending, active, inactive)
// @Param        page      query     int     false  "Page number (1-based)"  default(1)
// @Param        limit     query     int     false  "Page size (1-100)"      default(10)
// @Success      200       {object}  response.Response{data=[]models.Membership,pagination=pagination.OffsetInfo}
// @Failure      403       {object}  response.Response
// @Security     BearerAuth
// @Router       /churches/{churchId}/members [get]
func (h *MembershipHandler) ListMembers(c *gin.Context) {
	var filter models.MembershipFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	page, err := h.service.ListMembers(c.Request.Context(), c.Param("churchId"), filter, pageRequest(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Paginated(c, page)
}

// Join godoc
// @Summary      Join church
// @Description  Request membership for userId. Church admins add active members directly; anyone else files a pending request.
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        churchId  path      string                    true  "Church ID"
// @Param        request   body      models.JoinChurchRequest  true  "Member to add"
// @Success      201       {object}  response.Response{data=models.Membership}
// @Failure      400       {object}  response.Response
// @Failure      403       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Failure      409       {object}  response.Response
// @Security     BearerAuth
// @Router       /churches/{churchId}/members [post]
func (h *MembershipHandler) Join(c *gin.Context) {
	var req models.JoinChurchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	membership, err := h.service.Join(c.Request.Context(), middleware.GetClaims(c), c.Param("churchId"), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, membership)
}

// UpdateMember godoc
// @Summary      Update member
// @Description  Change a member's role or status. Church admins only.
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        churchId  path      string                          true  "Church ID"
// @Param        userId    path      string                          true  "User ID"
// @Param        request   body      models.UpdateMembershipRequest  true  "Role and/or status"
// @Success      200       {object}  response.Response{data=models.Membership}
// @Failure      400       {object}  response.Response
// @Failure      403       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Security     BearerAuth
// @Router       /churches/{churchId}/members/{userId} [put]
func (h *MembershipHandler) UpdateMember(c *gin.Context) {
	var req models.UpdateMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	membership, err := h.service.UpdateMember(c.Request.Context(), c.Param("churchId"), c.Param("userId"), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, membership)
}

// RemoveMember godoc
// @Summary      Leave or remove
// @Description  Delete a membership. The member themselves or a system admin.
// @Tags         members
// @Produce      json
// @Param        churchId  path      string  true  "Church ID"
// @Param        userId    path      string  true  "User ID"
// @Success      200       {object}  response.Response
// @Failure      403       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Security     BearerAuth
// @Router       /churches/{churchId}/members/{userId} [delete]
func (h *MembershipHandler) RemoveMember(c *gin.Context) {
	if err := h.service.RemoveMember(c.Request.Context(), c.Param("churchId"), c.Param("userId")); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "membership removed"})
}
