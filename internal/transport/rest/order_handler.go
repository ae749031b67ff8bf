package rest

import (
	"net/http"
	"strconv"

	"bijoux-be/internal/middleware"
	"bijoux-be/internal/order"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) ListMyOrders(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.ActorFrom(r.Context())

	orders, err := h.OrderSvc.ListByCustomer(r.Context(), actor.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.ActorFrom(r.Context())

	id, err := parseOrderID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	o, err := h.OrderSvc.GetDetail(r.Context(), id, actor)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderResponse(o))
}

func (h *Handler) AdminListOrders(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.ActorFrom(r.Context())

	filter := order.Filter{}
	if raw := r.URL.Query().Get("status"); raw != "" {
		st := order.Status(raw)
		if !st.Valid() {
			writeError(w, r, &ValidationError{msg: "unknown status filter: " + raw})
			return
		}
		filter.Status = &st
	}
	if raw := r.URL.Query().Get("search"); raw != "" {
		filter.Search = &raw
	}

	orders, err := h.OrderSvc.ListAll(r.Context(), filter, actor)
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) AdminTransitionOrder(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.ActorFrom(r.Context())

	id, err := parseOrderID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req transitionRequest
	if err := bind(r, &req, h.validate); err != nil {
		writeError(w, r, err)
		return
	}

	o, err := h.OrderSvc.Transition(r.Context(), id, req.Status, actor)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderResponse(o))
}

func parseOrderID(r *http.Request) (uint, error) {
	raw := chi.URLParam(r, "orderID")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, &ValidationError{msg: "invalid order id: " + raw}
	}
	return uint(id), nil
}
