package handler

import (
	"ceslar/internal/middleware"
	"ceslar/internal/models"
	"ceslar/internal/service"
	"ceslar/pkg/response"

	"github.com/gin-gonic/gin"
)

// QuestionHandler handles HTTP requests for contact-form questions.
type QuestionHandler struct {
	service service.QuestionServicer
}

// NewQuestionHandler creates a new QuestionHandler.
func NewQuestionHandler(service service.QuestionServicer) *QuestionHandler {
	return &QuestionHandler{service: service}
}

// SubmitQuestion godoc
// @Summary      Submit question
// @Description  Public contact form, optionally addressed to a church. Rate limited per client.
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreateQuestionRequest  true  "Question"
// @Success      201      {object}  response.Response{data=models.Question}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Router       /questions [post]
func (h *QuestionHandler) SubmitQuestion(c *gin.Context) {
	var req models.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	question, err := h.service.SubmitQuestion(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, question)
}

// ListQuestions godoc
// @Summary      List questions
// @Description  Page through questions. Holders of read:questions, or church admins for their church.
// @Tags         questions
// @Produce      json
// @Param        churchId  query     string  false  "Church ID"
// @Param        status    query     string  false  "Status"  Enums(open, answered)
// @Param        page      query     int     false  "Page number (1-based)"
// @Param        cursor    query     string  false  "Cursor from the previous page"
// @Param        limit     query     int     false  "Page size (1-100)"  default(10)
// @Success      200       {object}  response.Response{data=[]models.Question}
// @Failure      403       {object}  response.Response
// @Security     BearerAuth
// @Router       /questions [get]
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	var filter models.QuestionFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	page, err := h.service.ListQuestions(c.Request.Context(), filter, pageRequest(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Paginated(c, page)
}

// AnswerQuestion godoc
// @Summary      Answer question
// @Description  Answer a question addressed to the church in the body. Church admins and pastors.
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        id       path      string                        true  "Question ID"
// @Param        request  body      models.AnswerQuestionRequest  true  "Answer"
// @Success      200      {object}  response.Response{data=models.Question}
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Security     BearerAuth
// @Router       /questions/{id}/answer [put]
func (h *QuestionHandler) AnswerQuestion(c *gin.Context) {
	var req models.AnswerQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	question, err := h.service.AnswerQuestion(c.Request.Context(), middleware.GetClaims(c), middleware.ResolvedChurchID(c), c.Param("id"), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, question)
}

// DeleteQuestion godoc
// @Summary      Delete question
// @Description  Permanently delete a question. Holders of delete:all.
// @Tags         questions
// @Produce      json
// @Param        id   path      string  true  "Question ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Security     BearerAuth
// @Router       /questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	if err := h.service.DeleteQuestion(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "question deleted"})
}
