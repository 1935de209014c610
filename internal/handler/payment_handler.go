package handler

import (
	"errors"

	apperrors "forum-api/internal/errors"
	"forum-api/internal/models"
	"forum-api/internal/service"
	"forum-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles HTTP requests for payment operations.
type PaymentHandler struct {
	service service.PaymentServicer
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(service service.PaymentServicer) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// CreateIntent godoc
// @Summary      Create payment intent
// @Description  Create a provider payment intent for the membership price
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreatePaymentIntentRequest  true  "Intent request"
// @Success      200      {object}  response.Response{data=models.CreatePaymentIntentResponse}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /create-payment-intent [post]
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req models.CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.CreateIntent(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// RecordPayment godoc
// @Summary      Record payment
// @Description  Store a completed payment and purge any referenced cart items
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request  body      models.RecordPaymentRequest  true  "Payment record"
// @Success      201      {object}  response.Response{data=models.RecordPaymentResponse}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /payments [post]
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	var req models.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.RecordPayment(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCartItem) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, result)
}

// History godoc
// @Summary      Payment history
// @Description  Retrieve a user's payments, newest first
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        email  path      string  true  "User email"
// @Success      200    {object}  response.Response{data=[]models.Payment}
// @Failure      401    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Security     BearerAuth
// @Router       /payments/{email} [get]
func (h *PaymentHandler) History(c *gin.Context) {
	email := c.Param("email")

	payments, err := h.service.History(c.Request.Context(), email)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, payments)
}
