package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-tabkeeper/internal/agent/config"
	shared "github.com/IvanChernomyrdin/go-tabkeeper/internal/shared/models"
)

// NewRegisterCmd создаёт CLI-команду для регистрации нового пользователя.
//
// Сервер сразу выдаёт токен, команда сохраняет его локально.
//
// Пример использования:
//
//	tabkeeper register --email test@example.com --password StrongPass123 --confirm StrongPass123
func NewRegisterCmd(app *App) *cobra.Command {
	var email, confirm string
	var pw passwordFlags

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Регистрация нового пользователя",
		Long: `Регистрация нового пользователя на сервере.

Пример:
  tabkeeper register --email test@example.com --password StrongPass123
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := pw.resolve(cmd, "Password")
			if err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			tok, err := c.Register(email, password, confirm)
			if err != nil {
				return err
			}

			if err := saveToken(app, tok); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "registration successful (token saved)")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email for registration")
	cmd.Flags().StringVar(&confirm, "confirm", "", "password confirmation (optional)")
	pw.register(cmd)
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

// saveToken сохраняет токен в состоянии приложения и в локальном файле.
func saveToken(app *App, tok shared.SecurityTokenAttributes) error {
	if app.Creds == nil {
		app.Creds = &config.Credentials{}
	}
	app.Creds.Prefix = tok.Prefix
	app.Creds.Token = tok.Token
	return SaveCredentials(app.CredsPath, app.Creds)
}
