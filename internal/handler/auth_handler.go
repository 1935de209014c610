// Package handler contains HTTP handlers for the API.
package handler

import (
	"forum-api/internal/models"
	"forum-api/internal/service"
	"forum-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for token issuance.
type AuthHandler struct {
	service service.AuthServicer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service service.AuthServicer) *AuthHandler {
	return &AuthHandler{service: service}
}

// IssueToken godoc
// @Summary      Issue access token
// @Description  Issue a signed JWT for the given email
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      models.IssueTokenRequest  true  "User identity"
// @Success      200      {object}  response.Response{data=models.TokenResponse}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /jwt [post]
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req models.IssueTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	token, err := h.service.IssueToken(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, token)
}
