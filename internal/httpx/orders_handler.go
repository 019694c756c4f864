package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"

	kafkax "github.com/mcheros/storefront/internal/kafka"
	"github.com/mcheros/storefront/internal/orders"
	"github.com/mcheros/storefront/internal/redisx"
	"github.com/mcheros/storefront/internal/store"
)

// OrderStore is the slice of the order repo handlers depend on.
type OrderStore interface {
	Create(ctx context.Context, o *orders.Order) (*orders.Order, error)
	Get(ctx context.Context, id string) (*orders.Order, error)
}

// Publisher emits domain events; satisfied by kafkax.Producer.
type Publisher interface {
	Publish(key, value []byte, headers ...kafkago.Header)
}

// Cache is the read-through cache for order lookups; satisfied by
// redisx.Cache.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

type OrdersHandler struct {
	Repo     OrderStore
	Producer Publisher
	Cache    Cache
	Service  string
}

type CreateOrderReq struct {
	BuyerEmail string        `json:"buyer_email"`
	BuyerName  string        `json:"buyer_name"`
	IGN        string        `json:"ign,omitempty"`
	Items      []orders.Item `json:"items"`
	Note       string        `json:"note,omitempty"` // accepted, not persisted
}

func (h *OrdersHandler) Register(r *chi.Mux) {
	r.Post("/api/orders", h.createOrder)
	r.Get("/api/orders/{id}", h.getOrder)
}

func (req *CreateOrderReq) validate() error {
	if len(req.Items) == 0 {
		return errors.New("cart is empty")
	}
	if req.BuyerEmail == "" || !strings.Contains(req.BuyerEmail, "@") {
		return errors.New("invalid buyer_email")
	}
	if strings.TrimSpace(req.BuyerName) == "" {
		return errors.New("buyer_name is required")
	}
	for _, it := range req.Items {
		if it.Quantity < 1 {
			return fmt.Errorf("invalid quantity for product %s", it.ProductID)
		}
		if it.Price < 0 {
			return fmt.Errorf("invalid price for product %s", it.ProductID)
		}
	}
	return nil
}

func (h *OrdersHandler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	if err := req.validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	o := &orders.Order{
		BuyerEmail: req.BuyerEmail,
		BuyerName:  req.BuyerName,
		IGN:        req.IGN,
		Items:      req.Items,
		Total:      orders.Total(req.Items),
		Status:     orders.StatusPending,
	}
	saved, err := h.Repo.Create(ctx, o)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	orderID := saved.ID.Hex()
	h.cacheOrder(ctx, orderID, saved)
	h.publishCreated(r, orderID, saved)

	writeJSON(w, http.StatusOK, saved)
}

func (h *OrdersHandler) getOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")
	if orderID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing id"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	key := fmt.Sprintf(redisx.KeyOrder, orderID)
	if s, err := h.Cache.Get(ctx, key); err == nil && s != "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(s))
		return
	}

	o, err := h.Repo.Get(ctx, orderID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Order not found"})
			return
		}
		// malformed id or store failure: client error with message
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	h.cacheOrder(ctx, orderID, o)
	writeJSON(w, http.StatusOK, o)
}

func (h *OrdersHandler) cacheOrder(ctx context.Context, orderID string, o *orders.Order) {
	b, err := json.Marshal(o)
	if err != nil {
		return
	}
	_ = h.Cache.Set(ctx, fmt.Sprintf(redisx.KeyOrder, orderID), string(b), redisx.TTLOrderCache)
}

func (h *OrdersHandler) publishCreated(r *http.Request, orderID string, o *orders.Order) {
	ev := orders.Envelope{
		EventID:       uuid.NewString(),
		EventType:     orders.EventOrderCreated,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      h.Service,
		TraceID:       r.Header.Get("X-Request-Id"),
		CorrelationID: orderID,
	}
	ev.Payload = kafkax.MustMarshal(orders.OrderCreatedPayload{
		OrderID:    orderID,
		BuyerEmail: o.BuyerEmail,
		Items:      o.Items,
		Total:      o.Total,
	})
	h.Producer.Publish(orders.PartitionKey(orderID), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(orders.EventOrderCreated)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
}
