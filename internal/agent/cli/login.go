package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewLoginCmd создаёт CLI-команду для входа пользователя в систему.
//
// Команда обменивает email и пароль на токен и сохраняет его в локальный
// конфигурационный файл. Неверный пароль и неизвестный email сервер
// не различает.
//
// Пример использования:
//
//	tabkeeper login --email test@example.com --password StrongPass123
func NewLoginCmd(app *App) *cobra.Command {
	var email string
	var pw passwordFlags

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Логин пользователя (получить токен)",
		Long: `Логин пользователя.

Пример:
  tabkeeper login --email test@example.com --password StrongPass123
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := pw.resolve(cmd, "Password")
			if err != nil {
				return err
			}

			// создаём API-клиент для общения с сервером
			c := NewAPIClient(app.ServerURL)
			tok, err := c.Authenticate(email, password)
			if err != nil {
				return err
			}

			if err := saveToken(app, tok); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "login ok (token saved)")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email for login")
	pw.register(cmd)
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

// NewLogoutCmd удаляет сохранённый токен. На сервере ничего не меняется.
func NewLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Удалить сохранённый токен",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := RemoveCredentials(app.CredsPath); err != nil {
				return err
			}
			app.Creds = nil
			fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}
