package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/storefront-catalog-service/internal/model"
	"github.com/maxviazov/storefront-catalog-service/internal/service"
	"github.com/maxviazov/storefront-catalog-service/pkg/response"
)

type OrderHandler struct {
	svc service.OrderService
}

func NewOrderHandler(svc service.OrderService) *OrderHandler { return &OrderHandler{svc: svc} }

func (h *OrderHandler) Register(r *gin.RouterGroup) {
	r.GET("/orders/:id", h.getByID)
}

// orderResultResponse adds the derived payment views next to the stored fields.
type orderResultResponse struct {
	model.OrderResult
	IsCashPayment bool   `json:"isCashPayment"`
	PaymentMethod string `json:"paymentMethod"`
}

func (h *OrderHandler) getByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.WriteError(c, service.NewInvalidInputError([]service.FieldError{{Field: "id", Message: "must be a valid integer"}}))
		return
	}
	o, err := h.svc.GetOrderResult(c.Request.Context(), id)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, orderResultResponse{
		OrderResult:   o,
		IsCashPayment: model.IsCashPayment(o),
		PaymentMethod: model.PaymentMethod(o),
	})
}

type PaymentHandler struct {
	svc service.PaymentService
}

func NewPaymentHandler(svc service.PaymentService) *PaymentHandler { return &PaymentHandler{svc: svc} }

func (h *PaymentHandler) Register(r *gin.RouterGroup) {
	r.POST("/payments/validate", h.validate)
}

func (h *PaymentHandler) validate(c *gin.Context) {
	var req model.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput) // parsing details stay internal
		return
	}
	out, err := h.svc.ValidatePaymentRequest(c.Request.Context(), req)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, out, "payment request is valid")
}
