// Package api реализует HTTP-слой сервера tabkeeper.
//
// Пакет отвечает за:
//   - разбор тел запросов в конверте {"data":{"type":...,"attributes":{...}}};
//   - вызов операций сервисного слоя от имени текущего пользователя;
//   - маппинг доменных ошибок (service/repository) в HTTP-коды и конверт {"errors":[...]}.
//
// Маршруты регистрирует пакет internal/server/net/http.
package api

import (
	"net/http"

	"github.com/IvanChernomyrdin/go-tabkeeper/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-tabkeeper/internal/server/service"
	"github.com/IvanChernomyrdin/go-tabkeeper/internal/shared/logger"
)

// Handler агрегирует зависимости HTTP-слоя и предоставляет методы-хендлеры.
//
// Handler содержит:
//   - Svc: сервисный слой (бизнес-логика);
//   - Log: логгер для записи событий и ошибок;
//   - Verifier: проверка access-токенов.
//
// Методы Handler используются роутером для обработки HTTP-запросов.
type Handler struct {
	Svc      *service.Services
	Log      *logger.HTTPLogger
	Verifier *middleware.JWTVerifier
}

// NewHandler создаёт экземпляр Handler с переданными зависимостями.
//
// svc — набор сервисов приложения,
// log — логгер,
// verifier — проверка JWT.
func NewHandler(svc *service.Services, log *logger.HTTPLogger, verifier *middleware.JWTVerifier) *Handler {
	return &Handler{
		Svc:      svc,
		Log:      log,
		Verifier: verifier,
	}
}

// RequireUser — middleware защищённых маршрутов: токен проверяется,
// пользователь загружается из хранилища и кладётся в контекст.
func (h *Handler) RequireUser() func(http.Handler) http.Handler {
	return h.Verifier.AuthMiddleware(h.Svc.Users, h.Log)
}
