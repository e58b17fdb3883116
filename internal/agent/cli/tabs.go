package cli

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	shared "github.com/IvanChernomyrdin/go-tabkeeper/internal/shared/models"
)

// NewTabsCmd группирует команды над вкладками текущего пользователя.
func NewTabsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tabs",
		Short: "Работа с вкладками",
		Long: `Работа с вкладками текущего пользователя.

Примеры:
  tabkeeper tabs add https://go.dev --title "Go"
  tabkeeper tabs list --offset 1 --count 20
  tabkeeper tabs show <id>
  tabkeeper tabs update <id> --title "New title"
  tabkeeper tabs delete <id>
  tabkeeper tabs count
`,
	}

	cmd.AddCommand(newTabsAddCmd(app))
	cmd.AddCommand(newTabsListCmd(app))
	cmd.AddCommand(newTabsShowCmd(app))
	cmd.AddCommand(newTabsUpdateCmd(app))
	cmd.AddCommand(newTabsDeleteCmd(app))
	cmd.AddCommand(newTabsCountCmd(app))
	return cmd
}

func newTabsAddCmd(app *App) *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "add <url>",
		Short: "Добавить вкладку",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.token()
			if err != nil {
				return err
			}

			// без --title заголовок не передаётся вовсе
			var titlePtr *string
			if cmd.Flags().Changed("title") {
				titlePtr = &title
			}

			tab, err := NewAPIClient(app.ServerURL).CreateTab(token, args[0], titlePtr)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created tab %s\n", tab.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "tab title")
	return cmd
}

func newTabsListCmd(app *App) *cobra.Command {
	var offset, count int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Список вкладок, новые сверху",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.token()
			if err != nil {
				return err
			}

			page, err := NewAPIClient(app.ServerURL).ListTabs(token, offset, count)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tURL\tTITLE")
			for _, t := range page.Tabs {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", t.Attributes.ID, t.Attributes.URL, titleOrDash(t.Attributes.Title))
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(out, "page %d (count %d), total %d\n", page.Page.Offset, page.Page.Count, page.Count)
			return nil
		},
	}

	cmd.Flags().IntVar(&offset, "offset", 0, "page number starting from 1 (server default when omitted)")
	cmd.Flags().IntVar(&count, "count", 0, "page size (server default when omitted)")
	return cmd
}

func newTabsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Показать вкладку",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.token()
			if err != nil {
				return err
			}

			tab, err := NewAPIClient(app.ServerURL).GetTab(token, args[0])
			if err != nil {
				return err
			}
			printTab(cmd.OutOrStdout(), tab)
			return nil
		},
	}
}

func newTabsUpdateCmd(app *App) *cobra.Command {
	var url, title string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Изменить url и/или заголовок вкладки",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.token()
			if err != nil {
				return err
			}

			// передаются только явно заданные флаги
			var urlPtr, titlePtr *string
			if cmd.Flags().Changed("url") {
				urlPtr = &url
			}
			if cmd.Flags().Changed("title") {
				titlePtr = &title
			}
			if urlPtr == nil && titlePtr == nil {
				return errors.New("nothing to update: pass --url and/or --title")
			}

			tab, err := NewAPIClient(app.ServerURL).UpdateTab(token, args[0], urlPtr, titlePtr)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "updated tab %s\n", tab.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "new url")
	cmd.Flags().StringVar(&title, "title", "", "new title")
	return cmd
}

func newTabsDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Удалить вкладку",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.token()
			if err != nil {
				return err
			}

			if err := NewAPIClient(app.ServerURL).DeleteTab(token, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted tab %s\n", args[0])
			return nil
		},
	}
}

func newTabsCountCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Число вкладок",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.token()
			if err != nil {
				return err
			}

			n, err := NewAPIClient(app.ServerURL).CountTabs(token)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
}

func printTab(w io.Writer, t shared.TabAttributes) {
	fmt.Fprintf(w, "id:    %s\nurl:   %s\ntitle: %s\n", t.ID, t.URL, titleOrDash(t.Title))
}

func titleOrDash(title *string) string {
	if title == nil || *title == "" {
		return "-"
	}
	return *title
}
