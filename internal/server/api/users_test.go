package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	crypt "github.com/IvanChernomyrdin/go-tabkeeper/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-tabkeeper/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-tabkeeper/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-tabkeeper/internal/shared/logger"
	shared "github.com/IvanChernomyrdin/go-tabkeeper/internal/shared/models"
)

func TestRegisterUser_OK(t *testing.T) {
	h, d := NewTestHandler(t)
	id := uuid.New()

	d.users.EXPECT().GetByEmail(gomock.Any(), "new@mail.com").Return(models.User{}, serr.ErrNotFound)
	d.users.EXPECT().Create(gomock.Any(), "new@mail.com", gomock.Any()).
		Return(models.User{ID: id, Email: "new@mail.com"}, nil)

	rr := do(t, h.RegisterUser, call{
		method: http.MethodPost,
		target: "/users",
		body:   `{"data":{"type":"users","attributes":{"email":"new@mail.com","password":"secret123","confirmation":"secret123"}}}`,
	})

	require.Equal(t, http.StatusOK, rr.Code)
	requireJSON(t, rr)

	var resp shared.SecurityTokenResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "security_tokens", resp.Data.Type)
	assert.Equal(t, "Bearer", resp.Data.Attributes.Prefix)

	claims, err := crypt.ParseAccessToken(resp.Data.Attributes.Token, d.jwt)
	require.NoError(t, err)
	assert.Equal(t, id.String(), claims.Subject)
}

func TestRegisterUser_BadJSON(t *testing.T) {
	h, _ := NewTestHandler(t)

	rr := do(t, h.RegisterUser, call{method: http.MethodPost, target: "/users", body: `{"data":`})

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, []string{"bad json"}, decodeErrors(t, rr))
}

// Пустое тело — пустые атрибуты
func TestRegisterUser_EmptyBody(t *testing.T) {
	h, _ := NewTestHandler(t)

	rr := do(t, h.RegisterUser, call{method: http.MethodPost, target: "/users"})

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, []string{"Email can't be blank", "Password can't be blank"}, decodeErrors(t, rr))
}

func TestRegisterUser_Duplicate(t *testing.T) {
	h, d := NewTestHandler(t)

	d.users.EXPECT().GetByEmail(gomock.Any(), "dup@mail.com").Return(models.User{ID: uuid.New()}, nil)

	rr := do(t, h.RegisterUser, call{
		method: http.MethodPost,
		target: "/users",
		body:   `{"data":{"type":"users","attributes":{"email":"dup@mail.com","password":"secret123"}}}`,
	})

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, []string{"Email has already been taken"}, decodeErrors(t, rr))
}

func TestRegisterUser_TooLarge(t *testing.T) {
	h, _ := NewTestHandler(t)

	limited := func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, 16)
		h.RegisterUser(w, r)
	}
	rr := do(t, limited, call{
		method: http.MethodPost,
		target: "/users",
		body:   `{"data":{"type":"users","attributes":{"email":"` + strings.Repeat("a", 64) + `"}}}`,
	})

	require.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
}

func TestAuthenticateUser_UnknownEmail(t *testing.T) {
	h, d := NewTestHandler(t)
	core, logs := observer.New(zap.InfoLevel)
	h.Log = &logger.HTTPLogger{Logger: zap.New(core)}

	d.users.EXPECT().GetByEmail(gomock.Any(), "ghost@mail.com").Return(models.User{}, serr.ErrNotFound)

	rr := do(t, h.AuthenticateUser, call{
		method: http.MethodPost,
		target: "/users/authenticate",
		body:   `{"data":{"type":"users","attributes":{"email":"ghost@mail.com","password":"x"}}}`,
	})

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, []string{"Invalid email or password."}, decodeErrors(t, rr))

	entries := logs.FilterMessage("authentication failed").All()
	require.Len(t, entries, 1)
	assert.NotContains(t, entries[0].ContextMap(), "email")
}

func TestAuthenticateUser_StoreDown(t *testing.T) {
	h, d := NewTestHandler(t)

	d.users.EXPECT().GetByEmail(gomock.Any(), "u@mail.com").Return(models.User{}, serr.ErrInternal)

	rr := do(t, h.AuthenticateUser, call{
		method: http.MethodPost,
		target: "/users/authenticate",
		body:   `{"data":{"type":"users","attributes":{"email":"u@mail.com","password":"x"}}}`,
	})

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, []string{"internal server error"}, decodeErrors(t, rr))
}

func TestUpdateUser(t *testing.T) {
	me := models.User{ID: uuid.New(), Email: "me@mail.com"}

	t.Run("without current user", func(t *testing.T) {
		h, _ := NewTestHandler(t)
		rr := do(t, h.UpdateUser, call{method: http.MethodPatch, target: "/users", body: `{}`})

		require.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, []string{"Not authenticated."}, decodeErrors(t, rr))
	})

	// без ключа email ничего не меняется
	t.Run("no email key", func(t *testing.T) {
		h, _ := NewTestHandler(t)
		rr := do(t, h.UpdateUser, call{
			method: http.MethodPatch,
			target: "/users",
			body:   `{"data":{"type":"users","attributes":{}}}`,
			user:   &me,
		})

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{}`, rr.Body.String())
	})

	t.Run("blank email", func(t *testing.T) {
		h, _ := NewTestHandler(t)
		rr := do(t, h.UpdateUser, call{
			method: http.MethodPatch,
			target: "/users",
			body:   `{"data":{"type":"users","attributes":{"email":""}}}`,
			user:   &me,
		})

		require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		assert.Equal(t, []string{"Email can't be blank"}, decodeErrors(t, rr))
	})

	t.Run("new email", func(t *testing.T) {
		h, d := NewTestHandler(t)
		d.users.EXPECT().GetByEmail(gomock.Any(), "new@mail.com").Return(models.User{}, serr.ErrNotFound)
		d.users.EXPECT().UpdateEmail(gomock.Any(), me.ID, "new@mail.com").Return(models.User{ID: me.ID, Email: "new@mail.com"}, nil)

		rr := do(t, h.UpdateUser, call{
			method: http.MethodPatch,
			target: "/users",
			body:   `{"data":{"type":"users","attributes":{"email":"new@mail.com"}}}`,
			user:   &me,
		})

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{}`, rr.Body.String())
	})
}

func TestDestroyUser(t *testing.T) {
	me := models.User{ID: uuid.New()}
	h, d := NewTestHandler(t)

	d.users.EXPECT().Delete(gomock.Any(), me.ID).Return(nil)

	rr := do(t, h.DestroyUser, call{method: http.MethodDelete, target: "/users", user: &me})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{}`, rr.Body.String())
}

func TestHealth(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		h, d := NewTestHandler(t)
		d.health.EXPECT().Ping(gomock.Any()).Return(nil)

		rr := do(t, h.Health, call{method: http.MethodGet, target: "/health"})
		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
	})

	t.Run("store down", func(t *testing.T) {
		h, d := NewTestHandler(t)
		d.health.EXPECT().Ping(gomock.Any()).Return(context.DeadlineExceeded)

		rr := do(t, h.Health, call{method: http.MethodGet, target: "/health"})
		require.Equal(t, http.StatusServiceUnavailable, rr.Code)
	})
}
