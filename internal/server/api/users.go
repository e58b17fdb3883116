// HTTP-хендлеры учётной записи: регистрация, вход, смена email, удаление
package api

import (
	"net/http"

	"github.com/IvanChernomyrdin/go-tabkeeper/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-tabkeeper/internal/server/models"
	"github.com/IvanChernomyrdin/go-tabkeeper/internal/server/service"
	serr "github.com/IvanChernomyrdin/go-tabkeeper/internal/shared/errors"
	shared "github.com/IvanChernomyrdin/go-tabkeeper/internal/shared/models"
)

// RegisterUser регистрирует пользователя и сразу выдаёт токен.
//
// @Summary      Register user
// @Description  Creates a user account and returns a bearer token for it.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body shared.UserRequest true "Email, password and optional confirmation"
// @Success      200 {object} shared.SecurityTokenResponse
// @Failure      400 {object} shared.ErrorsResponse "Bad JSON"
// @Failure      422 {object} shared.ErrorsResponse "Validation failed"
// @Failure      500 {object} shared.ErrorsResponse "Internal server error"
// @Router       /users [post]
func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	attrs, err := decodeAttributes[shared.UserAttributes](r)
	if err != nil {
		h.renderError(w, r, "register", err)
		return
	}

	tok, err := h.Svc.Users.Register(r.Context(), userInput(attrs))
	if err != nil {
		h.renderError(w, r, "register", err)
		return
	}
	writeToken(w, tok)
}

// AuthenticateUser проверяет email и пароль и выдаёт токен.
//
// @Summary      Authenticate
// @Description  Exchanges email and password for a bearer token.
// @Description  Unknown email and wrong password produce the same message.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body shared.UserRequest true "Email and password"
// @Success      200 {object} shared.SecurityTokenResponse
// @Failure      400 {object} shared.ErrorsResponse "Bad JSON"
// @Failure      422 {object} shared.ErrorsResponse "Invalid email or password."
// @Failure      500 {object} shared.ErrorsResponse "Internal server error"
// @Router       /users/authenticate [post]
func (h *Handler) AuthenticateUser(w http.ResponseWriter, r *http.Request) {
	attrs, err := decodeAttributes[shared.UserAttributes](r)
	if err != nil {
		h.renderError(w, r, "authenticate", err)
		return
	}

	tok, err := h.Svc.Users.Authenticate(r.Context(), userInput(attrs))
	if err != nil {
		h.renderError(w, r, "authenticate", err)
		return
	}
	writeToken(w, tok)
}

// UpdateUser меняет email текущего пользователя.
//
// @Summary      Update current user
// @Description  Changes the email when the key is present. Without it nothing changes.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body shared.UserRequest true "New email"
// @Success      200 {object} shared.EmptyResponse
// @Failure      400 {object} shared.ErrorsResponse "Bad JSON"
// @Failure      401 {object} shared.ErrorsResponse "Not authenticated"
// @Failure      422 {object} shared.ErrorsResponse "Validation failed"
// @Failure      500 {object} shared.ErrorsResponse "Internal server error"
// @Router       /users [patch]
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	current, err := currentUser(r)
	if err != nil {
		h.renderError(w, r, "update user", err)
		return
	}

	attrs, err := decodeAttributes[shared.UserAttributes](r)
	if err != nil {
		h.renderError(w, r, "update user", err)
		return
	}

	if err := h.Svc.Users.Update(r.Context(), current, userInput(attrs)); err != nil {
		h.renderError(w, r, "update user", err)
		return
	}
	WriteJSON(w, http.StatusOK, shared.EmptyResponse{})
}

// DestroyUser удаляет учётную запись текущего пользователя вместе с его вкладками.
//
// @Summary      Delete current user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} shared.EmptyResponse
// @Failure      401 {object} shared.ErrorsResponse "Not authenticated"
// @Failure      500 {object} shared.ErrorsResponse "Internal server error"
// @Router       /users [delete]
func (h *Handler) DestroyUser(w http.ResponseWriter, r *http.Request) {
	current, err := currentUser(r)
	if err != nil {
		h.renderError(w, r, "destroy user", err)
		return
	}

	if err := h.Svc.Users.Destroy(r.Context(), current); err != nil {
		h.renderError(w, r, "destroy user", err)
		return
	}
	WriteJSON(w, http.StatusOK, shared.EmptyResponse{})
}

func userInput(a shared.UserAttributes) service.UserInput {
	return service.UserInput{
		Email:        a.Email,
		Password:     a.Password,
		Confirmation: a.Confirmation,
	}
}

func writeToken(w http.ResponseWriter, tok service.SecurityToken) {
	WriteJSON(w, http.StatusOK, shared.NewResourceDocument(shared.TypeSecurityTokens, shared.SecurityTokenAttributes{
		Prefix: tok.Prefix,
		Token:  tok.Token,
	}))
}

// currentUser достаёт пользователя, которого положил AuthMiddleware.
func currentUser(r *http.Request) (models.User, error) {
	u, ok := middleware.CurrentUserFromContext(r.Context())
	if !ok {
		return models.User{}, serr.ErrUnauthorized
	}
	return u, nil
}
