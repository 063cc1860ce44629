package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// SessionHandler exposes the session store.
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// SignInRequest represents the request body for signing in
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SessionView is the session as the presentation layer sees it. The token is never exposed.
type SessionView struct {
	Authenticated bool         `json:"authenticated"`
	User          *entity.User `json:"user"`
}

// GetSession returns the current identity.
func (h *SessionHandler) GetSession(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.view())
}

// SignIn handles the sign-in request
func (h *SessionHandler) SignIn(c echo.Context) error {
	var req SignInRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.sessionUC.SignIn(c.Request().Context(), req.Email, req.Password); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.view())
}

// SignUp handles the registration request
func (h *SessionHandler) SignUp(c echo.Context) error {
	var req usecase.SignUpInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign up input")
	}

	if err := h.sessionUC.SignUp(c.Request().Context(), req); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, h.view())
}

// SignOut handles the sign-out request. It always succeeds.
func (h *SessionHandler) SignOut(c echo.Context) error {
	h.sessionUC.SignOut(c.Request().Context())

	return response.Success(c, http.StatusOK, h.view())
}

// Refresh reloads the signed-in user's record.
func (h *SessionHandler) Refresh(c echo.Context) error {
	if _, err := h.sessionUC.Refresh(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.view())
}

func (h *SessionHandler) view() SessionView {
	current := h.sessionUC.Current()

	return SessionView{Authenticated: current.IsAuthenticated(), User: current.User}
}
