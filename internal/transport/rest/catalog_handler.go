package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.CatalogSvc.GetProduct(r.Context(), chi.URLParam(r, "productID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.CatalogSvc.ListCategories(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}
