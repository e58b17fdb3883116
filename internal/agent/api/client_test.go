package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-tabkeeper/internal/agent/api"
)

func TestClient_ErrorEnvelopeJoined(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"errors":["Email can't be blank","Password can't be blank"]}`))
	}))
	defer srv.Close()

	err := api.NewClient(srv.URL).PostJSON("/users", map[string]string{}, nil, "")
	require.Error(t, err)
	assert.Equal(t, "Email can't be blank; Password can't be blank", err.Error())
	assert.Equal(t, http.StatusUnprocessableEntity, api.StatusOf(err))
}

func TestClient_PlainErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gateway down", http.StatusBadGateway)
	}))
	defer srv.Close()

	err := api.NewClient(srv.URL).GetJSON("/tabs", nil, "")
	require.Error(t, err)
	assert.Equal(t, "gateway down", err.Error())
	assert.Equal(t, http.StatusBadGateway, api.StatusOf(err))
}

func TestClient_EmptyErrorBodyUsesStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	err := api.NewClient(srv.URL).DeleteJSON("/users", nil, "tok")
	require.Error(t, err)
	assert.Equal(t, "401 Unauthorized", err.Error())
}

func TestClient_HeadersAndTrailingSlash(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users", r.URL.Path)
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		// пустое тело ответа — не ошибка
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	var resp struct{}
	require.NoError(t, api.NewClient(srv.URL+"/").PatchJSON("/users", map[string]string{"a": "b"}, &resp, "tok"))
}

// Без тела запроса Content-Type не ставится
func TestClient_GetHasNoContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	require.NoError(t, api.NewClient(srv.URL).GetJSON("/health", nil, ""))
}

func TestStatusOf_NonAPIError(t *testing.T) {
	assert.Equal(t, 0, api.StatusOf(assert.AnError))
}
