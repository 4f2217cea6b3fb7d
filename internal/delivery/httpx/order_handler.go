package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Gabrielduah055/menHealthBackend/internal/domain/entities"
	"github.com/Gabrielduah055/menHealthBackend/internal/infrastructure/logger"
	"github.com/Gabrielduah055/menHealthBackend/internal/usecase"
)

type OrderHandler struct {
	orderUseCase   *usecase.OrderUseCase
	paymentUseCase *usecase.PaymentUseCase
	logger         *logger.Logger
}

func NewOrderHandler(
	orderUseCase *usecase.OrderUseCase,
	paymentUseCase *usecase.PaymentUseCase,
	logger *logger.Logger,
) *OrderHandler {
	return &OrderHandler{
		orderUseCase:   orderUseCase,
		paymentUseCase: paymentUseCase,
		logger:         logger,
	}
}

// CreateOrder is the public checkout endpoint. It answers with the order and
// the hosted payment page the buyer must be redirected to.
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	items := make([]usecase.OrderItemRequest, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecase.OrderItemRequest{
			ProductID: item.ProductID,
			Qty:       item.Qty,
		})
	}

	result, err := h.orderUseCase.CreateOrder(r.Context(), entities.Customer{
		Name:    req.Customer.Name,
		Email:   req.Customer.Email,
		Phone:   req.Customer.Phone,
		Address: req.Customer.Address,
	}, items)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"order":             result.Order,
		"payment_url":       result.PaymentURL,
		"payment_reference": result.PaymentReference,
	})
}

// VerifyPayment is called by the storefront after the gateway redirects the
// buyer back. It is safe to call repeatedly with the same reference.
func (h *OrderHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	var req VerifyPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	order, err := h.paymentUseCase.VerifyPayment(r.Context(), req.Reference)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderUseCase.ListOrders(r.Context())
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orderUseCase.GetOrderExpanded(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

func (h *OrderHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	order, err := h.orderUseCase.UpdateOrderStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, order)
}
