package rest

import (
	"net/http"

	"github.com/mahabubulhasibshawon/spt-portal/internal/domain"
)

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if !h.bind(w, r, &req) {
		return
	}
	order, err := h.orders.CreateOrder(r.Context(), principalFrom(r.Context()), req.toDomain())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	page, err := pageParams(r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	q := r.URL.Query()
	out, err := h.orders.ListOrders(r.Context(), principalFrom(r.Context()), domain.OrderFilter{
		Status: domain.OrderStatus(q.Get("status")),
		Search: q.Get("search"),
		Page:   page,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	order, err := h.orders.GetOrder(r.Context(), principalFrom(r.Context()), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) updateOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	var req updateOrderRequest
	if !h.bind(w, r, &req) {
		return
	}
	order, err := h.orders.UpdateOrder(r.Context(), principalFrom(r.Context()), id, req.toDomain())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	var req statusRequest
	if !h.bind(w, r, &req) {
		return
	}
	order, err := h.orders.UpdateStatus(r.Context(), principalFrom(r.Context()), id, domain.OrderStatus(req.Status))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) cancelOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	order, err := h.orders.CancelOrder(r.Context(), principalFrom(r.Context()), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	if err := h.orders.DeleteOrder(r.Context(), principalFrom(r.Context()), id); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
