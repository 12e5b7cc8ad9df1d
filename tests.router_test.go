package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// This file contains unit tests for the routing setup. Requests go
// through the real router with the full middlewares stacks so the
// whole path from url to envelope gets covered.

func newTestRouter(t *testing.T, storage BookStorage) *httprouter.Router {
	t.Helper()
	config := &Config{
		OpsEndpointsEnable: true,
		Server:             ServerConfig{APIPrefix: "/api"},
	}
	bs := NewBookService(zap.NewNop(), config, NewIDsHandler(), storage)
	api := NewAPIHandler(zap.NewNop(), config, &Statistics{started: time.Now()}, NewMockClocker(), NewIDsHandler(), bs)
	public, ops := api.MiddlewaresStacks()
	return api.SetupRoutes(httprouter.New(), &MiddlewareMap{public: public.Chain, ops: ops.Chain})
}

func TestRouterBookRoutes(t *testing.T) {
	router := newTestRouter(t, NewMemoryBookStorage())

	body := `{"name":"Dune","author":"Frank Herbert","price":9.99,"description":"Desert planet epic"}`
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/add", strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, w.Code)

	var created BookSavedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id := created.SavedBook.ID
	assert.True(t, strings.HasPrefix(id, BookIDPrefix+":"))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/books", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var books []Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &books))
	require.Len(t, books, 1)
	assert.Equal(t, "Dune", books[0].Name)
	assert.False(t, books[0].Read)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/books/"+id, strings.NewReader(`{"read":true}`)))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/books/"+id, nil))
	require.Equal(t, http.StatusOK, w.Code)
	var book Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &book))
	assert.True(t, book.Read)
	assert.Equal(t, "Frank Herbert", book.Author)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/books/"+id, nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/books", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestRouterStatusRoutes(t *testing.T) {
	router := newTestRouter(t, NewMemoryBookStorage())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/status", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Books store api is available")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/status", w.Header().Get("Location"))
}

func TestRouterNotFound(t *testing.T) {
	router := newTestRouter(t, NewMemoryBookStorage())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/nowhere", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "route does not exist", resp["message"])
	assert.Equal(t, "GET /api/nowhere", resp["path"])
}

func TestRouterUnknownIDIsNotFound(t *testing.T) {
	router := newTestRouter(t, NewMemoryBookStorage())

	testCases := []struct {
		name string
		id   string
	}{
		{"malformed id", "not-an-id"},
		{"well formed but absent id", NewIDsHandler().Generate(BookIDPrefix)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/books/"+tc.id, nil))
			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.JSONEq(t, `{"message":"Book not found"}`, w.Body.String())
		})
	}
}

func TestRouterOpsRoutes(t *testing.T) {
	router := newTestRouter(t, NewMemoryBookStorage())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ops/stats", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

// TestRouterStorageFailure verifies a backend error surfaces as 500
// with the verbatim error message.
func TestRouterStorageFailure(t *testing.T) {
	storage := &MockBookStorage{
		GetAllFunc: func(_ context.Context) ([]Book, error) {
			return nil, assert.AnError
		},
	}
	router := newTestRouter(t, storage)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/books", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"`+assert.AnError.Error()+`"}`, w.Body.String())
}
