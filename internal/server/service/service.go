// Package service содержит бизнес-логику tabkeeper.
// Это прослойка между HTTP-обработчиками (api) и хранилищем данных (repository).
//
// Каждая операция — метод, который возвращает результат или одну из
// доменных ошибок (serr.ErrUnauthorized, serr.ErrForbidden, serr.ErrNotFound,
// *serr.ValidationError). В HTTP-статус их переводит слой api.
package service

//go:generate mockgen -source=service.go -destination=mocks/mock_repos.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-tabkeeper/internal/server/config"
	"github.com/IvanChernomyrdin/go-tabkeeper/internal/server/models"
)

// Repositories — набор интерфейсов, которые сервисный слой ожидает от слоя repository.
type Repositories struct {
	Users  UsersRepo
	Tabs   TabsRepo
	Health HealthRepo
}

// Services — агрегатор всех сервисов приложения.
type Services struct {
	Users  *UsersService
	Tabs   *TabsService
	Health HealthRepo
}

// NewServices собирает все сервисы приложения.
func NewServices(repos Repositories, cfg *config.Config) *Services {
	v := NewValidator()
	return &Services{
		Users:  NewUsersService(repos.Users, cfg.Password.NewHasher(), cfg.Auth.Token(), v),
		Tabs:   NewTabsService(repos.Tabs, cfg.Tabs, v),
		Health: repos.Health,
	}
}

// HealthRepo — минимально нужное для health-check.
type HealthRepo interface {
	Ping(ctx context.Context) error
}

// UsersRepo — репозиторий пользователей.
//
// Занятый email возвращается как serr.ErrAlreadyExists,
// отсутствующая запись — как serr.ErrNotFound.
type UsersRepo interface {
	Create(ctx context.Context, email, passwordDigest string) (models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	UpdateEmail(ctx context.Context, id uuid.UUID, email string) (models.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TabsRepo — репозиторий вкладок.
type TabsRepo interface {
	Create(ctx context.Context, userID uuid.UUID, url string, title *string) (models.Tab, error)
	GetByID(ctx context.Context, id uuid.UUID) (models.Tab, error)
	ListByUser(ctx context.Context, userID uuid.UUID, page models.Page) ([]models.Tab, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
	Update(ctx context.Context, tab models.Tab) (models.Tab, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
