package repository

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/IvanChernomyrdin/go-tabkeeper/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-tabkeeper/internal/shared/errors"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var tabColumns = []string{"id", "user_id", "url", "title", "created_at", "updated_at"}

// TabsRepository хранит вкладки пользователей.
// Запросы собираются через squirrel, строки маппятся через sqlx.
type TabsRepository struct {
	db *sqlx.DB
}

func NewTabsRepository(db *sqlx.DB) *TabsRepository {
	return &TabsRepository{db: db}
}

func (r *TabsRepository) Create(ctx context.Context, userID uuid.UUID, url string, title *string) (models.Tab, error) {
	query, args, err := psql.Insert("tabs").
		Columns("user_id", "url", "title").
		Values(userID, url, title).
		Suffix("RETURNING " + strings.Join(tabColumns, ", ")).
		ToSql()
	if err != nil {
		return models.Tab{}, fmt.Errorf("%w: build insert: %v", serr.ErrInternal, err)
	}

	var t models.Tab
	if err := r.db.GetContext(ctx, &t, query, args...); err != nil {
		return models.Tab{}, mapWriteError(err)
	}
	return t, nil
}

func (r *TabsRepository) GetByID(ctx context.Context, id uuid.UUID) (models.Tab, error) {
	query, args, err := psql.Select(tabColumns...).
		From("tabs").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Tab{}, fmt.Errorf("%w: build select: %v", serr.ErrInternal, err)
	}

	var t models.Tab
	if err := r.db.GetContext(ctx, &t, query, args...); err != nil {
		return models.Tab{}, mapReadError(err)
	}
	return t, nil
}

// ListByUser возвращает одну страницу вкладок пользователя, новые сверху.
// При равном created_at порядок определяет seq (порядок вставки).
func (r *TabsRepository) ListByUser(ctx context.Context, userID uuid.UUID, page models.Page) ([]models.Tab, error) {
	query, args, err := psql.Select(tabColumns...).
		From("tabs").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "seq ASC").
		Limit(page.Limit()).
		Offset(page.Skip()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: build select: %v", serr.ErrInternal, err)
	}

	tabs := make([]models.Tab, 0, page.Count)
	if err := r.db.SelectContext(ctx, &tabs, query, args...); err != nil {
		return nil, fmt.Errorf("%w: %v", serr.ErrInternal, err)
	}
	return tabs, nil
}

func (r *TabsRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	query, args, err := psql.Select("count(*)").
		From("tabs").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: build count: %v", serr.ErrInternal, err)
	}

	var n int
	if err := r.db.GetContext(ctx, &n, query, args...); err != nil {
		return 0, fmt.Errorf("%w: %v", serr.ErrInternal, err)
	}
	return n, nil
}

// Update сохраняет url и title. Владелец в условии WHERE, поэтому
// чужую вкладку обновить нельзя даже при ошибке выше по стеку.
func (r *TabsRepository) Update(ctx context.Context, tab models.Tab) (models.Tab, error) {
	query, args, err := psql.Update("tabs").
		Set("url", tab.URL).
		Set("title", tab.Title).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": tab.ID, "user_id": tab.UserID}).
		Suffix("RETURNING " + strings.Join(tabColumns, ", ")).
		ToSql()
	if err != nil {
		return models.Tab{}, fmt.Errorf("%w: build update: %v", serr.ErrInternal, err)
	}

	var t models.Tab
	if err := r.db.GetContext(ctx, &t, query, args...); err != nil {
		return models.Tab{}, mapReadError(err)
	}
	return t, nil
}

func (r *TabsRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	query, args, err := psql.Delete("tabs").
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: build delete: %v", serr.ErrInternal, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %v", serr.ErrInternal, err)
	}
	return expectAffected(res)
}
