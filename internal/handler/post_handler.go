package handler

import (
	"errors"

	apperrors "forum-api/internal/errors"
	"forum-api/internal/middleware"
	"forum-api/internal/models"
	"forum-api/internal/service"
	"forum-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// PostHandler handles HTTP requests for post operations.
type PostHandler struct {
	service service.PostServicer
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(service service.PostServicer) *PostHandler {
	return &PostHandler{service: service}
}

// ListPosts godoc
// @Summary      List posts
// @Description  List posts filtered by tag substring and sorted by time or vote difference
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        sortOption  query     string  false  "latest or popularity"
// @Param        searchTerm  query     string  false  "Tag substring filter"
// @Success      200         {object}  response.Response{data=[]models.Post}
// @Failure      400         {object}  response.Response
// @Failure      500         {object}  response.Response
// @Router       /posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	var query models.PostListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	posts, err := h.service.ListPosts(c.Request.Context(), &query)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, posts)
}

// GetPost godoc
// @Summary      Get post by ID
// @Description  Retrieve a single post with its full detail
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Post ID"
// @Success      200  {object}  response.Response{data=models.Post}
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /detailedPost/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	id := c.Param("id")

	post, err := h.service.GetPost(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrPostNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, post)
}

// CreatePost godoc
// @Summary      Create post
// @Description  Create a post; users without a Gold badge are limited to five posts
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreatePostRequest  true  "Post content"
// @Success      201      {object}  response.Response{data=models.Post}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	email := middleware.GetUserEmail(c)

	post, err := h.service.CreatePost(c.Request.Context(), email, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrPostQuotaExceeded) {
			response.Forbidden(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, post)
}

// SetVotes godoc
// @Summary      Update post votes
// @Description  Set a post's upvote and downvote counters
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id       path      string                    true  "Post ID"
// @Param        request  body      models.UpdateVotesRequest  true  "Vote counters"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /posts/{id} [patch]
func (h *PostHandler) SetVotes(c *gin.Context) {
	id := c.Param("id")

	var req models.UpdateVotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.SetVotes(c.Request.Context(), id, &req); err != nil {
		if errors.Is(err, apperrors.ErrPostNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, gin.H{"message": "votes updated"})
}

// IncrementComments godoc
// @Summary      Increment comment count
// @Description  Increment a post's comment counter by one
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Post ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /posts/comment-increment/{id} [patch]
func (h *PostHandler) IncrementComments(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.IncrementComments(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrPostNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, gin.H{"message": "comment count updated"})
}

// RecentPostsByAuthor godoc
// @Summary      Recent posts by author
// @Description  Retrieve an author's three most recent posts
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        email  path      string  true  "Author email"
// @Success      200    {object}  response.Response{data=[]models.Post}
// @Failure      500    {object}  response.Response
// @Router       /users/{email}/posts [get]
func (h *PostHandler) RecentPostsByAuthor(c *gin.Context) {
	email := c.Param("email")

	posts, err := h.service.RecentPostsByAuthor(c.Request.Context(), email)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, posts)
}

// MyPosts godoc
// @Summary      List own posts
// @Description  Retrieve all posts authored by the authenticated user, newest first
// @Tags         posts
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response{data=[]models.Post}
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /users/posts [get]
func (h *PostHandler) MyPosts(c *gin.Context) {
	email := middleware.GetUserEmail(c)

	posts, err := h.service.PostsByAuthor(c.Request.Context(), email)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, posts)
}

// DeletePost godoc
// @Summary      Delete post
// @Description  Remove a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Post ID"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.DeletePost(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrPostNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, gin.H{"message": "post deleted"})
}
