// Методы клиента для учётной записи: регистрация, вход, смена email, удаление.
package api

import (
	shared "github.com/IvanChernomyrdin/go-tabkeeper/internal/shared/models"
)

// Register регистрирует пользователя и возвращает выданный токен.
// Пустой confirmation не отправляется.
func (c *Client) Register(email, password, confirmation string) (shared.SecurityTokenAttributes, error) {
	attrs := shared.UserAttributes{Email: &email, Password: &password}
	if confirmation != "" {
		attrs.Confirmation = &confirmation
	}

	var resp shared.SecurityTokenResponse
	err := c.PostJSON("/users", shared.NewResourceDocument(shared.TypeUsers, attrs), &resp, "")
	return resp.Data.Attributes, err
}

// Authenticate обменивает email и пароль на токен.
func (c *Client) Authenticate(email, password string) (shared.SecurityTokenAttributes, error) {
	attrs := shared.UserAttributes{Email: &email, Password: &password}

	var resp shared.SecurityTokenResponse
	err := c.PostJSON("/users/authenticate", shared.NewResourceDocument(shared.TypeUsers, attrs), &resp, "")
	return resp.Data.Attributes, err
}

// UpdateEmail меняет email текущего пользователя.
func (c *Client) UpdateEmail(token, email string) error {
	attrs := shared.UserAttributes{Email: &email}
	return c.PatchJSON("/users", shared.NewResourceDocument(shared.TypeUsers, attrs), nil, token)
}

// DeleteAccount удаляет учётную запись вместе со всеми вкладками.
func (c *Client) DeleteAccount(token string) error {
	return c.DeleteJSON("/users", nil, token)
}
