package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcheros/storefront/internal/pages"
	"github.com/mcheros/storefront/internal/store"
)

type fakePageStore struct {
	byKey map[string]pages.PageContent
}

func (f *fakePageStore) GetByKey(_ context.Context, key string) (*pages.PageContent, error) {
	p, ok := f.byKey[key]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &p, nil
}

func TestGetPage(t *testing.T) {
	h := &PagesHandler{Repo: &fakePageStore{byKey: map[string]pages.PageContent{
		"tos": {ID: newObjectID(), Key: "tos", Title: "Terms of Service", Content: "Be nice."},
	}}}
	r := NewRouter()
	h.Register(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/pages/tos", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got pages.PageContent
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Terms of Service", got.Title)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/pages/unknown", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
