package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-tabkeeper/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-tabkeeper/internal/shared/errors"
)

// TabLocator находит вкладку по id из маршрута и проверяет владельца.
//
// Нет такой вкладки (или id не UUID) — serr.ErrNotFound.
// Вкладка есть, но чужая — serr.ErrForbidden.
// Результат не кэшируется: каждая операция вызывает Locate заново.
type TabLocator struct {
	tabs TabsRepo
}

func NewTabLocator(tabs TabsRepo) *TabLocator {
	return &TabLocator{tabs: tabs}
}

func (l *TabLocator) Locate(ctx context.Context, current models.User, rawID string) (models.Tab, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return models.Tab{}, fmt.Errorf("tab %q: %w", rawID, serr.ErrNotFound)
	}

	tab, err := l.tabs.GetByID(ctx, id)
	if err != nil {
		return models.Tab{}, err
	}

	if tab.UserID != current.ID {
		return models.Tab{}, fmt.Errorf("tab %s: %w", id, serr.ErrForbidden)
	}
	return tab, nil
}
