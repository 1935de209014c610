package handler

import (
	"forum-api/internal/models"
	"forum-api/internal/service"
	"forum-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// CommentHandler handles HTTP requests for comment operations.
type CommentHandler struct {
	service service.CommentServicer
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(service service.CommentServicer) *CommentHandler {
	return &CommentHandler{service: service}
}

// CreateComment godoc
// @Summary      Create comment
// @Description  Add a comment referencing a post by title
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreateCommentRequest  true  "Comment content"
// @Success      201      {object}  response.Response{data=models.Comment}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	comment, err := h.service.CreateComment(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, comment)
}

// CommentsForPost godoc
// @Summary      List comments for a post
// @Description  Retrieve comments matching a post title
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        postTitle  path      string  true  "Post title"
// @Success      200        {object}  response.Response{data=[]models.Comment}
// @Failure      500        {object}  response.Response
// @Router       /comments/{postTitle} [get]
func (h *CommentHandler) CommentsForPost(c *gin.Context) {
	postTitle := c.Param("postTitle")

	comments, err := h.service.CommentsForPost(c.Request.Context(), postTitle)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, comments)
}
