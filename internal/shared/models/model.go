// Package models содержит общие для сервера и CLI модели HTTP API.
//
// Все ответы сервера завёрнуты в единый конверт:
//
//	{"data": {"type": "...", "attributes": {...}}}  — ресурс
//	{"data": {"count": N, "page": {...}, "tabs": [...]}} — коллекция
//	{"errors": ["...", ...]}                         — ошибка
//
// Тела запросов используют тот же вид: {"data": {"type": "...", "attributes": {...}}}.
package models

// Типы ресурсов в конверте.
const (
	TypeUsers          = "users"
	TypeTabs           = "tabs"
	TypeTabCounts      = "tab_counts"
	TypeSecurityTokens = "security_tokens"
)

// JSONContentType — Content-Type всех ответов сервера.
const JSONContentType = "application/json; charset=utf-8"

// BearerPrefix — схема токена, которую сервер отдаёт в SecurityToken.
const BearerPrefix = "Bearer"

// Document — верхний уровень любого успешного ответа и тела запроса.
type Document[T any] struct {
	Data T `json:"data"`
}

// Resource — ресурс с типом и атрибутами.
type Resource[T any] struct {
	Type       string `json:"type"`
	Attributes T      `json:"attributes"`
}

// NewResourceDocument заворачивает атрибуты в {"data":{"type":...,"attributes":...}}.
func NewResourceDocument[T any](typ string, attrs T) Document[Resource[T]] {
	return Document[Resource[T]]{Data: Resource[T]{Type: typ, Attributes: attrs}}
}

// ErrorsResponse — конверт ошибки.
type ErrorsResponse struct {
	Errors []string `json:"errors"`
}

// EmptyResponse сериализуется в {}.
type EmptyResponse struct{}

// UserAttributes — атрибуты запроса регистрации, логина и обновления пользователя.
//
// Поля — указатели: отсутствующий ключ (или null) не трогает текущее значение,
// пустая строка применяется и проходит валидацию.
type UserAttributes struct {
	Email        *string `json:"email,omitempty"`
	Password     *string `json:"password,omitempty"`
	Confirmation *string `json:"confirmation,omitempty"`
}

// SecurityTokenAttributes — выданный токен доступа.
type SecurityTokenAttributes struct {
	Prefix string `json:"prefix"`
	Token  string `json:"token"`
}

// TabRequestAttributes — атрибуты создания и частичного обновления вкладки.
type TabRequestAttributes struct {
	URL   *string `json:"url,omitempty"`
	Title *string `json:"title,omitempty"`
}

// TabAttributes — представление вкладки в ответе.
// Title == nil сериализуется как null.
type TabAttributes struct {
	ID     string  `json:"id"`
	URL    string  `json:"url"`
	Title  *string `json:"title"`
	UserID string  `json:"userId"`
}

// PageInfo — фактически применённые параметры пагинации.
type PageInfo struct {
	Offset int `json:"offset"`
	Count  int `json:"count"`
}

// TabCollection — страница вкладок и общее (без окна) их количество.
type TabCollection struct {
	Count int                       `json:"count"`
	Page  PageInfo                  `json:"page"`
	Tabs  []Resource[TabAttributes] `json:"tabs"`
}

// TabCountAttributes — ответ GET /tabs/count.
type TabCountAttributes struct {
	Count int `json:"count"`
}

// Сокращения для часто используемых конвертов.
type (
	UserRequest           = Document[Resource[UserAttributes]]
	TabRequest            = Document[Resource[TabRequestAttributes]]
	TabResponse           = Document[Resource[TabAttributes]]
	TabListResponse       = Document[TabCollection]
	TabCountResponse      = Document[Resource[TabCountAttributes]]
	SecurityTokenResponse = Document[Resource[SecurityTokenAttributes]]
)
