package handler

import (
	"errors"

	apperrors "forum-api/internal/errors"
	"forum-api/internal/middleware"
	"forum-api/internal/service"
	"forum-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// AdminHandler handles HTTP requests for the admin dashboard.
type AdminHandler struct {
	service service.AdminServicer
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(service service.AdminServicer) *AdminHandler {
	return &AdminHandler{service: service}
}

// Profile godoc
// @Summary      Admin profile
// @Description  Retrieve the admin's profile with site-wide counts
// @Tags         admin
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response{data=models.AdminProfileResponse}
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /admin/profile [get]
func (h *AdminHandler) Profile(c *gin.Context) {
	email := middleware.GetUserEmail(c)

	profile, err := h.service.Profile(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, profile)
}
