package handler

import (
	"forum-api/internal/models"
	"forum-api/internal/service"
	"forum-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// TagHandler handles HTTP requests for tag operations.
type TagHandler struct {
	service service.TagServicer
}

// NewTagHandler creates a new TagHandler.
func NewTagHandler(service service.TagServicer) *TagHandler {
	return &TagHandler{service: service}
}

// ListTags godoc
// @Summary      List tags
// @Description  Retrieve all tags available for posts
// @Tags         tags
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response{data=[]models.Tag}
// @Failure      500  {object}  response.Response
// @Router       /tags [get]
func (h *TagHandler) ListTags(c *gin.Context) {
	tags, err := h.service.ListTags(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, tags)
}

// AddTag godoc
// @Summary      Add tag
// @Description  Add a tag; a duplicate value is reported as success with a null insertedId
// @Tags         tags
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreateTagRequest  true  "Tag value"
// @Success      200      {object}  response.Response{data=models.CreateTagResponse}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /admin/tags [post]
func (h *TagHandler) AddTag(c *gin.Context) {
	var req models.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.AddTag(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}
