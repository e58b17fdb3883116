package service

import (
	"context"

	"github.com/IvanChernomyrdin/go-tabkeeper/internal/server/config"
	"github.com/IvanChernomyrdin/go-tabkeeper/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-tabkeeper/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-tabkeeper/internal/shared/utils"
)

// TabsService реализует операции над вкладками текущего пользователя.
// Show, Update и Destroy сначала проходят через TabLocator.
type TabsService struct {
	tabs     TabsRepo
	locator  *TabLocator
	validate *Validator
	pages    config.TabsConfig
}

// TabInput — атрибуты вкладки из запроса. nil означает, что ключ не передан.
type TabInput struct {
	URL   *string
	Title *string
}

// TabPage — одна страница списка и общее количество вкладок пользователя.
type TabPage struct {
	Tabs  []models.Tab
	Total int
	Page  models.Page
}

func NewTabsService(tabs TabsRepo, pages config.TabsConfig, v *Validator) *TabsService {
	return &TabsService{
		tabs:     tabs,
		locator:  NewTabLocator(tabs),
		validate: v,
		pages:    pages,
	}
}

// Create создаёт вкладку, владелец — текущий пользователь.
func (s *TabsService) Create(ctx context.Context, current models.User, in TabInput) (models.Tab, error) {
	f := tabFields{URL: utils.Deref(in.URL), Title: in.Title}
	if msgs := s.validate.Messages(f); len(msgs) > 0 {
		return models.Tab{}, serr.NewValidationError(msgs...)
	}
	return s.tabs.Create(ctx, current.ID, f.URL, f.Title)
}

// Index возвращает страницу вкладок, новые сверху, и их общее число.
func (s *TabsService) Index(ctx context.Context, current models.User, offset, count string) (TabPage, error) {
	page := ParsePage(offset, count, s.pages)

	total, err := s.tabs.CountByUser(ctx, current.ID)
	if err != nil {
		return TabPage{}, err
	}

	tabs, err := s.tabs.ListByUser(ctx, current.ID, page)
	if err != nil {
		return TabPage{}, err
	}

	return TabPage{Tabs: tabs, Total: total, Page: page}, nil
}

func (s *TabsService) Show(ctx context.Context, current models.User, id string) (models.Tab, error) {
	return s.locator.Locate(ctx, current, id)
}

// Update применяет только переданные поля и проверяет результат
// теми же правилами, что и Create.
func (s *TabsService) Update(ctx context.Context, current models.User, id string, in TabInput) (models.Tab, error) {
	tab, err := s.locator.Locate(ctx, current, id)
	if err != nil {
		return models.Tab{}, err
	}

	if in.URL != nil {
		tab.URL = *in.URL
	}
	if in.Title != nil {
		tab.Title = in.Title
	}

	if msgs := s.validate.Messages(tabFields{URL: tab.URL, Title: tab.Title}); len(msgs) > 0 {
		return models.Tab{}, serr.NewValidationError(msgs...)
	}

	return s.tabs.Update(ctx, tab)
}

func (s *TabsService) Destroy(ctx context.Context, current models.User, id string) error {
	tab, err := s.locator.Locate(ctx, current, id)
	if err != nil {
		return err
	}
	return s.tabs.Delete(ctx, tab.ID, current.ID)
}

// Count возвращает число вкладок текущего пользователя.
func (s *TabsService) Count(ctx context.Context, current models.User) (int, error) {
	return s.tabs.CountByUser(ctx, current.ID)
}
