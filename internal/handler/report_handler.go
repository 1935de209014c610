package handler

import (
	"errors"

	apperrors "forum-api/internal/errors"
	"forum-api/internal/models"
	"forum-api/internal/service"
	"forum-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// ReportHandler handles HTTP requests for moderation reports.
type ReportHandler struct {
	service service.ReportServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(service service.ReportServicer) *ReportHandler {
	return &ReportHandler{service: service}
}

// CreateReport godoc
// @Summary      Submit report
// @Description  File a moderation report, optionally referencing a comment
// @Tags         reports
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreateReportRequest  true  "Report content"
// @Success      201      {object}  response.Response{data=models.CreateReportResponse}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /reports [post]
func (h *ReportHandler) CreateReport(c *gin.Context) {
	var req models.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.CreateReport(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, result)
}

// ListReports godoc
// @Summary      List reports
// @Description  Retrieve all open moderation reports
// @Tags         reports
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response{data=[]models.Report}
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /reports [get]
func (h *ReportHandler) ListReports(c *gin.Context) {
	reports, err := h.service.ListReports(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, reports)
}

// DenyReport godoc
// @Summary      Deny report
// @Description  Dismiss a report without touching the reported comment
// @Tags         reports
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Report ID"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /reports/deny/{id} [delete]
func (h *ReportHandler) DenyReport(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.DenyReport(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrReportNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, gin.H{"message": "report denied"})
}

// DeleteReportedComment godoc
// @Summary      Delete reported comment
// @Description  Delete the comment a report references, then resolve the report
// @Tags         reports
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Report ID"
// @Success      200  {object}  response.Response{data=models.ModerationResult}
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /reports/delete-comment/{id} [delete]
func (h *ReportHandler) DeleteReportedComment(c *gin.Context) {
	id := c.Param("id")

	result, err := h.service.ResolveWithCommentDeletion(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrReportNotFound) ||
			errors.Is(err, apperrors.ErrReportMissingComment) ||
			errors.Is(err, apperrors.ErrCommentNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}
