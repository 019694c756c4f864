package httpx

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/mcheros/storefront/internal/store"
)

// DiagHandler reports process liveness and store connectivity. Every
// failure is reported inside the response body, never as an error status.
type DiagHandler struct {
	Client *mongo.Client
	DB     *mongo.Database
}

func (h *DiagHandler) Register(r *chi.Mux) {
	r.Get("/test", h.testStore)
}

func (h *DiagHandler) testStore(w http.ResponseWriter, r *http.Request) {
	resp := map[string]any{
		"backend":           "running",
		"database":          "not_available",
		"database_url":      envStatus("DATABASE_URL"),
		"database_name":     envValue("DATABASE_NAME"),
		"connection_status": "not_connected",
		"collections":       []string{},
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.Client.Ping(ctx, readpref.Primary()); err != nil {
		resp["database"] = "error: " + truncate(err.Error(), 50)
		writeJSON(w, http.StatusOK, resp)
		return
	}
	resp["database"] = "available"
	resp["connection_status"] = "connected"

	cols, err := store.Collections(ctx, h.DB)
	if err != nil {
		resp["database"] = "connected_with_error: " + truncate(err.Error(), 50)
		writeJSON(w, http.StatusOK, resp)
		return
	}
	if len(cols) > 10 {
		cols = cols[:10]
	}
	resp["database"] = "connected"
	resp["collections"] = cols
	writeJSON(w, http.StatusOK, resp)
}

func envStatus(key string) string {
	if os.Getenv(key) != "" {
		return "set"
	}
	return "not_set"
}

func envValue(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return "not_set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
