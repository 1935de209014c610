package handler

import (
	"forum-api/internal/models"
	"forum-api/internal/service"
	"forum-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// AnnouncementHandler handles HTTP requests for announcement operations.
type AnnouncementHandler struct {
	service service.AnnouncementServicer
}

// NewAnnouncementHandler creates a new AnnouncementHandler.
func NewAnnouncementHandler(service service.AnnouncementServicer) *AnnouncementHandler {
	return &AnnouncementHandler{service: service}
}

// CreateAnnouncement godoc
// @Summary      Create announcement
// @Description  Publish a site announcement
// @Tags         announcements
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreateAnnouncementRequest  true  "Announcement content"
// @Success      201      {object}  response.Response{data=models.Announcement}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /announcement [post]
func (h *AnnouncementHandler) CreateAnnouncement(c *gin.Context) {
	var req models.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	announcement, err := h.service.CreateAnnouncement(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, announcement)
}

// ListAnnouncements godoc
// @Summary      List announcements
// @Description  Retrieve all site announcements
// @Tags         announcements
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response{data=[]models.Announcement}
// @Failure      500  {object}  response.Response
// @Router       /announcements [get]
func (h *AnnouncementHandler) ListAnnouncements(c *gin.Context) {
	announcements, err := h.service.ListAnnouncements(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, announcements)
}
