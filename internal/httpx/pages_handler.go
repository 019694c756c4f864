package httpx

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mcheros/storefront/internal/pages"
	"github.com/mcheros/storefront/internal/store"
)

type PageStore interface {
	GetByKey(ctx context.Context, key string) (*pages.PageContent, error)
}

type PagesHandler struct {
	Repo PageStore
}

func (h *PagesHandler) Register(r *chi.Mux) {
	r.Get("/api/pages/{key}", h.getPage)
}

func (h *PagesHandler) getPage(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	p, err := h.Repo.GetByKey(ctx, chi.URLParam(r, "key"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Page not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, p)
}
