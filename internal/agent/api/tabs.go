// Методы клиента для вкладок текущего пользователя.
package api

import (
	"net/url"
	"strconv"

	shared "github.com/IvanChernomyrdin/go-tabkeeper/internal/shared/models"
)

// CreateTab создаёт вкладку. title == nil — без заголовка.
func (c *Client) CreateTab(token, tabURL string, title *string) (shared.TabAttributes, error) {
	attrs := shared.TabRequestAttributes{URL: &tabURL, Title: title}

	var resp shared.TabResponse
	err := c.PostJSON("/tabs", shared.NewResourceDocument(shared.TypeTabs, attrs), &resp, token)
	return resp.Data.Attributes, err
}

// ListTabs возвращает страницу вкладок. Нулевые offset/count не передаются,
// тогда сервер берёт значения по умолчанию.
func (c *Client) ListTabs(token string, offset, count int) (shared.TabCollection, error) {
	q := url.Values{}
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	}
	if count > 0 {
		q.Set("count", strconv.Itoa(count))
	}
	path := "/tabs"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp shared.TabListResponse
	err := c.GetJSON(path, &resp, token)
	return resp.Data, err
}

func (c *Client) GetTab(token, id string) (shared.TabAttributes, error) {
	var resp shared.TabResponse
	err := c.GetJSON(tabPath(id), &resp, token)
	return resp.Data.Attributes, err
}

// UpdateTab меняет только переданные (не nil) поля.
func (c *Client) UpdateTab(token, id string, tabURL, title *string) (shared.TabAttributes, error) {
	attrs := shared.TabRequestAttributes{URL: tabURL, Title: title}

	var resp shared.TabResponse
	err := c.PatchJSON(tabPath(id), shared.NewResourceDocument(shared.TypeTabs, attrs), &resp, token)
	return resp.Data.Attributes, err
}

func (c *Client) DeleteTab(token, id string) error {
	return c.DeleteJSON(tabPath(id), nil, token)
}

// CountTabs возвращает число вкладок текущего пользователя.
func (c *Client) CountTabs(token string) (int, error) {
	var resp shared.TabCountResponse
	err := c.GetJSON("/tabs/count", &resp, token)
	return resp.Data.Attributes.Count, err
}

func tabPath(id string) string {
	return "/tabs/" + url.PathEscape(id)
}
