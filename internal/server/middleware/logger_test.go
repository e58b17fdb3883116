package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/IvanChernomyrdin/go-tabkeeper/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-tabkeeper/internal/shared/logger"
)

func TestLoggerMiddleware_LogsStatusAndSize(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := &logger.HTTPLogger{Logger: zap.New(core)}

	h := middleware.LoggerMiddleware(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("hello"))
	}))

	req := httptest.NewRequest(http.MethodPost, "/tabs?x=1", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	require.Equal(t, 1, logs.Len())

	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "POST", fields["method"])
	assert.Equal(t, "/tabs?x=1", fields["uri"])
	assert.EqualValues(t, http.StatusCreated, fields["status"])
	assert.EqualValues(t, 5, fields["response_size"])
}

// Обработчик ничего не записал — логируем 200
func TestLoggerMiddleware_DefaultStatus(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := &logger.HTTPLogger{Logger: zap.New(core)}

	h := middleware.LoggerMiddleware(log)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, 1, logs.Len())
	assert.EqualValues(t, http.StatusOK, logs.All()[0].ContextMap()["status"])
}
