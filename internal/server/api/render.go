package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/IvanChernomyrdin/go-tabkeeper/internal/server/middleware"
	serr "github.com/IvanChernomyrdin/go-tabkeeper/internal/shared/errors"
	shared "github.com/IvanChernomyrdin/go-tabkeeper/internal/shared/models"
)

// Каждый метод отвечает в JSON
const (
	JsonContentType string = shared.JSONContentType
	ContentType     string = "Content-Type"
)

// Тексты ошибок, которые не приходят из валидации.
const (
	MsgBadJSON          = "bad json"
	MsgForbidden        = "Forbidden."
	MsgTabNotFound      = "Tab not found."
	MsgNotFound         = "Not found."
	MsgMethodNotAllowed = "Method not allowed."
	MsgTooLarge         = "request body too large"
	MsgInternal         = "internal server error"
)

// WriteJSON пишет статус и тело в JSON.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteErrors пишет конверт {"errors":[...]}.
func WriteErrors(w http.ResponseWriter, status int, msgs ...string) {
	if msgs == nil {
		msgs = []string{}
	}
	WriteJSON(w, status, shared.ErrorsResponse{Errors: msgs})
}

// NotFound и MethodNotAllowed подменяют текстовые ответы chi.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	WriteErrors(w, http.StatusNotFound, MsgNotFound)
}

func MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	WriteErrors(w, http.StatusMethodNotAllowed, MsgMethodNotAllowed)
}

// renderError переводит ошибку операции в статус и конверт ошибки.
//
//   - *serr.ValidationError → 422 со всеми сообщениями
//   - serr.ErrBadJSON → 400
//   - serr.ErrUnauthorized → 401
//   - serr.ErrForbidden → 403
//   - serr.ErrNotFound → 404
//   - всё остальное → 500, ошибка уходит только в лог
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var tooLarge *http.MaxBytesError

	switch {
	case errors.Is(err, serr.ErrValidation):
		if errors.Is(err, serr.ErrInvalidCredentials) {
			h.Log.Info("authentication failed", zap.String("path", r.URL.Path))
		}
		WriteErrors(w, http.StatusUnprocessableEntity, serr.Messages(err)...)
	case errors.As(err, &tooLarge):
		WriteErrors(w, http.StatusRequestEntityTooLarge, MsgTooLarge)
	case errors.Is(err, serr.ErrBadJSON):
		WriteErrors(w, http.StatusBadRequest, MsgBadJSON)
	case errors.Is(err, serr.ErrUnauthorized):
		WriteErrors(w, http.StatusUnauthorized, middleware.MsgNotAuthenticated)
	case errors.Is(err, serr.ErrForbidden):
		WriteErrors(w, http.StatusForbidden, MsgForbidden)
	case errors.Is(err, serr.ErrNotFound):
		WriteErrors(w, http.StatusNotFound, MsgTabNotFound)
	default:
		h.Log.Error(op+" failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		WriteErrors(w, http.StatusInternalServerError, MsgInternal)
	}
}
