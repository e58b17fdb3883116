// Серверные модели пользователя и вкладки
package models

import (
	"time"

	"github.com/google/uuid"
)

// Role — роль пользователя. Через обычное обновление не меняется.
type Role string

const (
	RoleClient Role = "client"
	RoleAdmin  Role = "admin"
)

type User struct {
	ID             uuid.UUID `db:"id"`
	Email          string    `db:"email"`
	PasswordDigest string    `db:"password_digest" json:"-"`
	Role           Role      `db:"role"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// Principal — личность, восстановленная из проверенного токена.
// Живёт только в рамках одного запроса и нигде не хранится.
type Principal struct {
	UserID uuid.UUID
}
