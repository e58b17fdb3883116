// Package middleware содержит HTTP middleware сервера.
package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	crypt "github.com/IvanChernomyrdin/go-tabkeeper/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-tabkeeper/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-tabkeeper/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-tabkeeper/internal/shared/logger"
	shared "github.com/IvanChernomyrdin/go-tabkeeper/internal/shared/models"
)

// ctxKey используется как тип ключа для хранения значений в context.Context.
// Отдельный тип предотвращает коллизии ключей между пакетами.
type ctxKey string

// currentUserKey — ключ контекста, под которым хранится текущий пользователь.
const currentUserKey ctxKey = "current_user"

// MsgNotAuthenticated — тело ответа 401 для защищённых маршрутов.
const MsgNotAuthenticated = "Not authenticated."

// JWTVerifier проверяет access-токены из заголовка Authorization.
//
// Используется в HTTP middleware для:
//   - проверки подписи, алгоритма и срока действия токена
//   - валидации issuer и audience
//   - извлечения userID из claims.Subject
type JWTVerifier struct {
	cfg crypt.JWTConfig
}

// NewJWTVerifier создаёт новый JWTVerifier с заданными параметрами.
func NewJWTVerifier(cfg crypt.JWTConfig) *JWTVerifier {
	return &JWTVerifier{cfg: cfg}
}

// PrincipalResolver загружает пользователя по проверенному токену.
// Удалённый пользователь возвращается как serr.ErrUnauthorized.
type PrincipalResolver interface {
	Resolve(ctx context.Context, p models.Principal) (models.User, error)
}

// Verify разбирает значение заголовка Authorization.
// Любая ошибка формата, подписи или claims — serr.ErrUnauthorized.
func (v *JWTVerifier) Verify(header string) (models.Principal, error) {
	raw := ExtractBearer(header)
	if raw == "" {
		return models.Principal{}, serr.ErrUnauthorized
	}

	claims, err := crypt.ParseAccessToken(raw, v.cfg)
	if err != nil {
		return models.Principal{}, serr.ErrUnauthorized
	}

	id, err := uuid.Parse(strings.TrimSpace(claims.Subject))
	if err != nil {
		return models.Principal{}, serr.ErrUnauthorized
	}
	return models.Principal{UserID: id}, nil
}

// AuthMiddleware возвращает HTTP middleware для защищённых маршрутов.
//
// Middleware:
//   - ожидает заголовок Authorization: Bearer <token>
//   - проверяет токен и загружает пользователя через resolver
//   - сохраняет пользователя в context.Context
//
// Без пользователя отвечает 401 {"errors":["Not authenticated."]}.
func (v *JWTVerifier) AuthMiddleware(resolver PrincipalResolver, log *logger.HTTPLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, err := v.Verify(r.Header.Get("Authorization"))
			if err != nil {
				writeErrors(w, http.StatusUnauthorized, MsgNotAuthenticated)
				return
			}

			user, err := resolver.Resolve(r.Context(), p)
			if err != nil {
				if errors.Is(err, serr.ErrUnauthorized) {
					writeErrors(w, http.StatusUnauthorized, MsgNotAuthenticated)
					return
				}
				log.Error("resolve current user failed", zap.String("user_id", p.UserID.String()), zap.Error(err))
				writeErrors(w, http.StatusInternalServerError, "internal server error")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithCurrentUser(r.Context(), user)))
		})
	}
}

// WithCurrentUser кладёт пользователя в контекст запроса.
func WithCurrentUser(ctx context.Context, u models.User) context.Context {
	return context.WithValue(ctx, currentUserKey, u)
}

// CurrentUserFromContext достаёт пользователя, которого положил AuthMiddleware.
//
// Возвращает false, если запрос не прошёл аутентификацию.
func CurrentUserFromContext(ctx context.Context) (models.User, bool) {
	u, ok := ctx.Value(currentUserKey).(models.User)
	return u, ok
}

// ExtractBearer извлекает JWT из заголовка Authorization.
//
// Ожидаемый формат (схема чувствительна к регистру):
//
//	Authorization: Bearer <token>
//
// Возвращает пустую строку, если формат некорректен.
func ExtractBearer(h string) string {
	rest, ok := strings.CutPrefix(h, shared.BearerPrefix+" ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(rest)
}

func writeErrors(w http.ResponseWriter, status int, msgs ...string) {
	w.Header().Set("Content-Type", shared.JSONContentType)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(shared.ErrorsResponse{Errors: msgs})
}
