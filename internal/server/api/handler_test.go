package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/IvanChernomyrdin/go-tabkeeper/internal/server/api"
	"github.com/IvanChernomyrdin/go-tabkeeper/internal/server/config"
	crypt "github.com/IvanChernomyrdin/go-tabkeeper/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-tabkeeper/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-tabkeeper/internal/server/models"
	"github.com/IvanChernomyrdin/go-tabkeeper/internal/server/service"
	svcmocks "github.com/IvanChernomyrdin/go-tabkeeper/internal/server/service/mocks"
	"github.com/IvanChernomyrdin/go-tabkeeper/internal/shared/logger"
	shared "github.com/IvanChernomyrdin/go-tabkeeper/internal/shared/models"
)

type testDeps struct {
	users  *svcmocks.MockUsersRepo
	tabs   *svcmocks.MockTabsRepo
	health *svcmocks.MockHealthRepo
	jwt    crypt.JWTConfig
}

// NewTestHandler создаёт Handler с моками репозиториев и конфигом через dependency injection
func NewTestHandler(t *testing.T) (*api.Handler, testDeps) {
	t.Helper()

	ctrl := gomock.NewController(t)

	d := testDeps{
		users:  svcmocks.NewMockUsersRepo(ctrl),
		tabs:   svcmocks.NewMockTabsRepo(ctrl),
		health: svcmocks.NewMockHealthRepo(ctrl),
	}

	cfg := &config.Config{
		Auth: config.AuthConfig{
			Issuer:    "issuer",
			Audience:  "audience",
			AccessTTL: time.Minute,
			JWT: config.JWTConfig{
				Algorithm:  "HS256",
				SigningKey: "supersecretkeysupersecretkey123456", // >= 32
			},
		},
		Password: config.PasswordConfig{
			Hasher: "bcrypt",
			Bcrypt: config.BcryptConfig{Cost: 4},
		},
		Tabs: config.TabsConfig{DefaultPageSize: 10, MaxPageSize: 100},
	}
	d.jwt = cfg.Auth.Token()

	svc := service.NewServices(service.Repositories{
		Users:  d.users,
		Tabs:   d.tabs,
		Health: d.health,
	}, cfg)

	return api.NewHandler(svc, logger.NewNop(), middleware.NewJWTVerifier(d.jwt)), d
}

type call struct {
	method string
	target string
	body   string
	user   *models.User
	id     string
}

// do вызывает хендлер напрямую: пользователь и параметр {id} кладутся в контекст,
// как это делают AuthMiddleware и chi.
func do(t *testing.T, hf http.HandlerFunc, c call) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(c.method, c.target, strings.NewReader(c.body))
	ctx := req.Context()
	if c.user != nil {
		ctx = middleware.WithCurrentUser(ctx, *c.user)
	}
	if c.id != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", c.id)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}

	rr := httptest.NewRecorder()
	hf(rr, req.WithContext(ctx))
	return rr
}

func decodeErrors(t *testing.T, rr *httptest.ResponseRecorder) []string {
	t.Helper()
	var body shared.ErrorsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body.Errors
}

func requireJSON(t *testing.T, rr *httptest.ResponseRecorder) {
	t.Helper()
	require.Equal(t, "application/json; charset=utf-8", rr.Header().Get("Content-Type"))
}
