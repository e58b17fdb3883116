package models

import (
	"time"

	"github.com/google/uuid"
)

// Tab — закладка пользователя. UserID задаётся при создании и больше не меняется.
type Tab struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	URL       string    `db:"url"`
	Title     *string   `db:"title"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Page — окно выборки для списка вкладок. Offset — номер страницы с 1.
type Page struct {
	Offset int
	Count  int
}

// Limit и Skip переводят номер страницы в LIMIT/OFFSET.
func (p Page) Limit() uint64 { return uint64(p.Count) }

func (p Page) Skip() uint64 { return uint64((p.Offset - 1) * p.Count) }
