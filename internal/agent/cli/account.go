package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewAccountCmd группирует команды над своей учётной записью.
func NewAccountCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Смена email и удаление учётной записи",
	}
	cmd.AddCommand(newAccountUpdateCmd(app))
	cmd.AddCommand(newAccountDeleteCmd(app))
	return cmd
}

func newAccountUpdateCmd(app *App) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Сменить email",
		Long: `Меняет email текущего пользователя.

Пример:
  tabkeeper account update --email new@example.com
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.token()
			if err != nil {
				return err
			}
			if err := NewAPIClient(app.ServerURL).UpdateEmail(token, email); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "email updated")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "new email")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newAccountDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Удалить учётную запись вместе со всеми вкладками",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("account deletion removes all tabs; pass --yes to confirm")
			}
			token, err := app.token()
			if err != nil {
				return err
			}
			if err := NewAPIClient(app.ServerURL).DeleteAccount(token); err != nil {
				return err
			}
			// токен больше ни к кому не относится
			if err := RemoveCredentials(app.CredsPath); err != nil {
				return err
			}
			app.Creds = nil
			fmt.Fprintln(cmd.OutOrStdout(), "account deleted")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm deletion")
	return cmd
}
