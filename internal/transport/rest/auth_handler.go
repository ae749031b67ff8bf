package rest

import (
	"net/http"

	"bijoux-be/internal/user"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := bind(r, &req, h.validate); err != nil {
		writeError(w, r, err)
		return
	}

	u, err := h.UserSvc.Register(r.Context(), user.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Phone:    req.Phone,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"id":    u.ID,
		"email": u.Email,
		"name":  u.Name,
	})
}

// Login authenticates and, on success, merges the browser-held cart into the
// account's stored cart. The merge runs once per login; re-running it with
// the same local cart cannot inflate quantities.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req loginRequest
	if err := bind(r, &req, h.validate); err != nil {
		writeError(w, r, err)
		return
	}

	token, u, err := h.UserSvc.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	local, err := toCartValue(req.Cart)
	if err != nil {
		writeError(w, r, err)
		return
	}

	merged, dropped, err := h.CartSvc.MergeOnLogin(ctx, u.ID, local)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := loginResponse{
		Token: token,
		Cart:  toCartResponse(merged),
	}
	for _, d := range dropped {
		resp.Warnings = append(resp.Warnings, "removed from cart ("+d.Reason+"): "+d.Key.ProductID)
	}

	writeJSON(w, http.StatusOK, resp)
}
