package handler

import (
	"forum-api/internal/models"
	"forum-api/internal/service"
	"forum-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// UploadHandler handles HTTP requests for pre-signed asset URLs.
type UploadHandler struct {
	service service.UploadServicer
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(service service.UploadServicer) *UploadHandler {
	return &UploadHandler{service: service}
}

// RequestUpload godoc
// @Summary      Request upload URL
// @Description  Generate a pre-signed PUT URL for an image asset
// @Tags         uploads
// @Accept       json
// @Produce      json
// @Param        request  body      models.RequestUploadRequest  true  "File metadata"
// @Success      200      {object}  response.Response{data=models.UploadURLResponse}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /uploads [post]
func (h *UploadHandler) RequestUpload(c *gin.Context) {
	var req models.RequestUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.RequestUpload(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// DownloadURL godoc
// @Summary      Request download URL
// @Description  Generate a pre-signed GET URL for a stored asset key
// @Tags         uploads
// @Accept       json
// @Produce      json
// @Param        key  path      string  true  "Object key"
// @Success      200  {object}  response.Response{data=models.DownloadURLResponse}
// @Failure      500  {object}  response.Response
// @Router       /uploads/url/{key} [get]
func (h *UploadHandler) DownloadURL(c *gin.Context) {
	key := c.Param("key")

	result, err := h.service.DownloadURL(c.Request.Context(), key)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}
