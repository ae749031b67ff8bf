package rest

import (
	"net/http"
	"strconv"

	"bijoux-be/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) ListAddresses(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.ActorFrom(r.Context())

	addrs, err := h.CustomerSvc.ListAddresses(r.Context(), actor.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := make([]addressResponse, 0, len(addrs))
	for _, a := range addrs {
		out = append(out, toAddressResponse(a))
	}
	writeJSON(w, http.StatusOK, out)
}

// AdminReactivateUser re-enables a deactivated account.
func (h *Handler) AdminReactivateUser(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "userID")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		writeError(w, r, &ValidationError{msg: "invalid user id: " + raw})
		return
	}

	if err := h.UserSvc.Reactivate(r.Context(), uint(id)); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
