// HTTP-хендлеры вкладок текущего пользователя
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/IvanChernomyrdin/go-tabkeeper/internal/server/models"
	"github.com/IvanChernomyrdin/go-tabkeeper/internal/server/service"
	shared "github.com/IvanChernomyrdin/go-tabkeeper/internal/shared/models"
)

// CreateTab создаёт вкладку текущего пользователя.
//
// @Summary      Create tab
// @Tags         tabs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body shared.TabRequest true "Url and optional title"
// @Success      200 {object} shared.TabResponse
// @Failure      400 {object} shared.ErrorsResponse "Bad JSON"
// @Failure      401 {object} shared.ErrorsResponse "Not authenticated"
// @Failure      422 {object} shared.ErrorsResponse "Validation failed"
// @Failure      500 {object} shared.ErrorsResponse "Internal server error"
// @Router       /tabs [post]
func (h *Handler) CreateTab(w http.ResponseWriter, r *http.Request) {
	current, err := currentUser(r)
	if err != nil {
		h.renderError(w, r, "create tab", err)
		return
	}

	attrs, err := decodeAttributes[shared.TabRequestAttributes](r)
	if err != nil {
		h.renderError(w, r, "create tab", err)
		return
	}

	tab, err := h.Svc.Tabs.Create(r.Context(), current, tabInput(attrs))
	if err != nil {
		h.renderError(w, r, "create tab", err)
		return
	}
	WriteJSON(w, http.StatusOK, tabDocument(tab))
}

// IndexTabs возвращает страницу вкладок, новые сверху.
//
// @Summary      List tabs
// @Description  offset is a 1-based page number, count is the page size.
// @Description  Invalid values fall back to defaults, count is capped.
// @Tags         tabs
// @Produce      json
// @Security     BearerAuth
// @Param        offset query int false "Page number" default(1)
// @Param        count  query int false "Page size" default(10)
// @Success      200 {object} shared.TabListResponse
// @Failure      401 {object} shared.ErrorsResponse "Not authenticated"
// @Failure      500 {object} shared.ErrorsResponse "Internal server error"
// @Router       /tabs [get]
func (h *Handler) IndexTabs(w http.ResponseWriter, r *http.Request) {
	current, err := currentUser(r)
	if err != nil {
		h.renderError(w, r, "index tabs", err)
		return
	}

	q := r.URL.Query()
	page, err := h.Svc.Tabs.Index(r.Context(), current, q.Get("offset"), q.Get("count"))
	if err != nil {
		h.renderError(w, r, "index tabs", err)
		return
	}

	out := shared.TabCollection{
		Count: page.Total,
		Page:  shared.PageInfo{Offset: page.Page.Offset, Count: page.Page.Count},
		Tabs:  make([]shared.Resource[shared.TabAttributes], 0, len(page.Tabs)),
	}
	for _, t := range page.Tabs {
		out.Tabs = append(out.Tabs, tabResource(t))
	}
	WriteJSON(w, http.StatusOK, shared.TabListResponse{Data: out})
}

// CountTabs возвращает число вкладок текущего пользователя.
//
// @Summary      Count tabs
// @Tags         tabs
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} shared.TabCountResponse
// @Failure      401 {object} shared.ErrorsResponse "Not authenticated"
// @Failure      500 {object} shared.ErrorsResponse "Internal server error"
// @Router       /tabs/count [get]
func (h *Handler) CountTabs(w http.ResponseWriter, r *http.Request) {
	current, err := currentUser(r)
	if err != nil {
		h.renderError(w, r, "count tabs", err)
		return
	}

	n, err := h.Svc.Tabs.Count(r.Context(), current)
	if err != nil {
		h.renderError(w, r, "count tabs", err)
		return
	}
	WriteJSON(w, http.StatusOK, shared.NewResourceDocument(shared.TypeTabCounts, shared.TabCountAttributes{Count: n}))
}

// ShowTab возвращает вкладку по id.
//
// @Summary      Show tab
// @Tags         tabs
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Tab ID (UUID)"
// @Success      200 {object} shared.TabResponse
// @Failure      401 {object} shared.ErrorsResponse "Not authenticated"
// @Failure      403 {object} shared.ErrorsResponse "Tab belongs to another user"
// @Failure      404 {object} shared.ErrorsResponse "Tab not found"
// @Failure      500 {object} shared.ErrorsResponse "Internal server error"
// @Router       /tabs/{id} [get]
func (h *Handler) ShowTab(w http.ResponseWriter, r *http.Request) {
	current, err := currentUser(r)
	if err != nil {
		h.renderError(w, r, "show tab", err)
		return
	}

	tab, err := h.Svc.Tabs.Show(r.Context(), current, chi.URLParam(r, "id"))
	if err != nil {
		h.renderError(w, r, "show tab", err)
		return
	}
	WriteJSON(w, http.StatusOK, tabDocument(tab))
}

// UpdateTab меняет переданные поля вкладки.
//
// @Summary      Update tab
// @Description  Only the attributes present in the body are changed.
// @Tags         tabs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path string           true "Tab ID (UUID)"
// @Param        request body shared.TabRequest true "Url and/or title"
// @Success      200 {object} shared.TabResponse
// @Failure      400 {object} shared.ErrorsResponse "Bad JSON"
// @Failure      401 {object} shared.ErrorsResponse "Not authenticated"
// @Failure      403 {object} shared.ErrorsResponse "Tab belongs to another user"
// @Failure      404 {object} shared.ErrorsResponse "Tab not found"
// @Failure      422 {object} shared.ErrorsResponse "Validation failed"
// @Failure      500 {object} shared.ErrorsResponse "Internal server error"
// @Router       /tabs/{id} [patch]
func (h *Handler) UpdateTab(w http.ResponseWriter, r *http.Request) {
	current, err := currentUser(r)
	if err != nil {
		h.renderError(w, r, "update tab", err)
		return
	}

	attrs, err := decodeAttributes[shared.TabRequestAttributes](r)
	if err != nil {
		h.renderError(w, r, "update tab", err)
		return
	}

	tab, err := h.Svc.Tabs.Update(r.Context(), current, chi.URLParam(r, "id"), tabInput(attrs))
	if err != nil {
		h.renderError(w, r, "update tab", err)
		return
	}
	WriteJSON(w, http.StatusOK, tabDocument(tab))
}

// DestroyTab удаляет вкладку.
//
// @Summary      Delete tab
// @Tags         tabs
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Tab ID (UUID)"
// @Success      200 {object} shared.EmptyResponse
// @Failure      401 {object} shared.ErrorsResponse "Not authenticated"
// @Failure      403 {object} shared.ErrorsResponse "Tab belongs to another user"
// @Failure      404 {object} shared.ErrorsResponse "Tab not found"
// @Failure      500 {object} shared.ErrorsResponse "Internal server error"
// @Router       /tabs/{id} [delete]
func (h *Handler) DestroyTab(w http.ResponseWriter, r *http.Request) {
	current, err := currentUser(r)
	if err != nil {
		h.renderError(w, r, "destroy tab", err)
		return
	}

	if err := h.Svc.Tabs.Destroy(r.Context(), current, chi.URLParam(r, "id")); err != nil {
		h.renderError(w, r, "destroy tab", err)
		return
	}
	WriteJSON(w, http.StatusOK, shared.EmptyResponse{})
}

func tabInput(a shared.TabRequestAttributes) service.TabInput {
	return service.TabInput{URL: a.URL, Title: a.Title}
}

func tabResource(t models.Tab) shared.Resource[shared.TabAttributes] {
	return shared.Resource[shared.TabAttributes]{
		Type: shared.TypeTabs,
		Attributes: shared.TabAttributes{
			ID:     t.ID.String(),
			URL:    t.URL,
			Title:  t.Title,
			UserID: t.UserID.String(),
		},
	}
}

func tabDocument(t models.Tab) shared.TabResponse {
	return shared.TabResponse{Data: tabResource(t)}
}
