package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcheros/storefront/internal/catalog"
)

// fakeProductStore seeds its in-memory catalog when empty, like the real
// repo does against the store.
type fakeProductStore struct {
	products  []catalog.Product
	seedCalls int
	fail      error
}

func (f *fakeProductStore) EnsureSeed(context.Context) error {
	f.seedCalls++
	if f.fail != nil {
		return f.fail
	}
	if len(f.products) == 0 {
		for _, p := range catalog.DefaultProducts {
			p.ID = newObjectID()
			f.products = append(f.products, p)
		}
	}
	return nil
}

func (f *fakeProductStore) List(context.Context) ([]catalog.Product, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	return f.products, nil
}

func listProducts(t *testing.T, h *CatalogHandler) *httptest.ResponseRecorder {
	t.Helper()
	r := NewRouter()
	h.Register(r)
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestListProductsSeedsOnce(t *testing.T) {
	fs := &fakeProductStore{}
	h := &CatalogHandler{Repo: fs}

	for i := 0; i < 3; i++ {
		rec := listProducts(t, h)
		require.Equal(t, http.StatusOK, rec.Code)

		var got []catalog.Product
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Len(t, got, 4, "repeated calls must not duplicate the seed")
	}
	assert.Equal(t, 3, fs.seedCalls)
}

func TestListProductsShape(t *testing.T) {
	h := &CatalogHandler{Repo: &fakeProductStore{}}
	rec := listProducts(t, h)
	require.Equal(t, http.StatusOK, rec.Code)

	var got []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.NotEmpty(t, got)
	first := got[0]
	assert.Contains(t, first, "id")
	assert.Contains(t, first, "name")
	assert.Contains(t, first, "price")
	assert.Contains(t, first, "category")
}

func TestListProductsStoreFailure(t *testing.T) {
	h := &CatalogHandler{Repo: &fakeProductStore{fail: errors.New("store unreachable")}}
	rec := listProducts(t, h)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
