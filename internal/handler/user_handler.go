package handler

import (
	"errors"

	apperrors "forum-api/internal/errors"
	"forum-api/internal/models"
	"forum-api/internal/service"
	"forum-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for user operations.
type UserHandler struct {
	service service.UserServicer
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service service.UserServicer) *UserHandler {
	return &UserHandler{service: service}
}

// Register godoc
// @Summary      Register user
// @Description  Create a user record; a duplicate email is reported as success with a null insertedId
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body      models.RegisterUserRequest  true  "User profile"
// @Success      200      {object}  response.Response{data=models.RegisterUserResponse}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /users [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req models.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// GetAllUsers godoc
// @Summary      List all users
// @Description  Retrieve every registered user
// @Tags         users
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response{data=[]models.User}
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /users [get]
func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.service.GetAllUsers(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, users)
}

// AdminStatus godoc
// @Summary      Check admin status
// @Description  Report whether the given email belongs to an admin
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        email  path      string  true  "User email"
// @Success      200    {object}  response.Response{data=models.AdminStatusResponse}
// @Failure      401    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Security     BearerAuth
// @Router       /users/admin/{email} [get]
func (h *UserHandler) AdminStatus(c *gin.Context) {
	email := c.Param("email")

	admin, err := h.service.IsAdmin(c.Request.Context(), email)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, models.AdminStatusResponse{Admin: admin})
}

// Membership godoc
// @Summary      Get membership status
// @Description  Retrieve a user's badge and post count
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        email  path      string  true  "User email"
// @Success      200    {object}  response.Response{data=models.MembershipResponse}
// @Failure      401    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Security     BearerAuth
// @Router       /users/membership/{email} [get]
func (h *UserHandler) Membership(c *gin.Context) {
	email := c.Param("email")

	membership, err := h.service.GetMembership(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, membership)
}

// UpgradeMembership godoc
// @Summary      Upgrade membership
// @Description  Grant the Gold badge to a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        email  path      string  true  "User email"
// @Success      200    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Router       /users/member/{email} [patch]
func (h *UserHandler) UpgradeMembership(c *gin.Context) {
	email := c.Param("email")

	if err := h.service.UpgradeMembership(c.Request.Context(), email); err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, gin.H{"message": "membership upgraded"})
}

// PromoteToAdmin godoc
// @Summary      Promote user to admin
// @Description  Set the admin role on a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /users/admin/{id} [patch]
func (h *UserHandler) PromoteToAdmin(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.PromoteToAdmin(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, gin.H{"message": "user promoted to admin"})
}

// DeleteUser godoc
// @Summary      Delete user
// @Description  Remove a user from the system
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.DeleteUser(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, gin.H{"message": "user deleted"})
}
