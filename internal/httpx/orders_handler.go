package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ariefcatur/go-order-desk.git/internal/orders"
	"github.com/ariefcatur/go-order-desk.git/internal/service"
)

type OrdersHandler struct {
	Service *service.OrderService
	Log     *zap.Logger
}

type CreateOrderReq struct {
	CustomerInfo json.RawMessage    `json:"customerInfo"`
	Products     []orders.LineInput `json:"products"`
}

func (h *OrdersHandler) Register(r *chi.Mux) {
	r.Post("/orders", h.createOrder)
	r.Get("/orders", h.listOrders)
	r.Get("/orders/{id}", h.getOrder)
	r.Post("/orders/{id}/cancel", h.cancelOrder)
	r.Post("/orders/process", h.processNext)
	r.Get("/products", h.listProducts)
	r.Get("/queue", h.queueStatus)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps the typed domain failures onto the HTTP surface. Every one
// of them is a user-displayable condition; anything unrecognized is a bug and
// surfaces as 500.
func (h *OrdersHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, orders.ErrInvalidOrderData):
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "invalid order data: customer information and at least one product are required",
		})
	case errors.Is(err, orders.ErrProductNotFound),
		errors.Is(err, orders.ErrOrderNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, orders.ErrInsufficientStock),
		errors.Is(err, orders.ErrInvalidTransition):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		h.Log.Error("request failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func (h *OrdersHandler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	ord, err := h.Service.Create(req.CustomerInfo, req.Products)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ord)
}

func (h *OrdersHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Service.List())
}

func (h *OrdersHandler) getOrder(w http.ResponseWriter, r *http.Request) {
	ord, err := h.Service.Get(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ord)
}

func (h *OrdersHandler) cancelOrder(w http.ResponseWriter, r *http.Request) {
	ord, err := h.Service.Cancel(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Order canceled successfully",
		"order":   ord,
	})
}

func (h *OrdersHandler) processNext(w http.ResponseWriter, r *http.Request) {
	ord, ok, err := h.Service.ProcessNext()
	if err != nil {
		h.writeError(w, err)
		return
	}
	if !ok {
		writeJSON(w, http.StatusOK, map[string]string{"message": "No orders in the queue"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Order processed successfully",
		"order":   ord,
	})
}

func (h *OrdersHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Service.ListProducts())
}

func (h *OrdersHandler) queueStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Service.QueueEntries())
}
