// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"doorman/internal/delivery/http/response"
	domainerrors "doorman/internal/domain/errors"
	"doorman/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for the credential endpoints.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// Signup handles the registration request. A body that cannot be bound or is
// missing any field gets the same "All fields are required" rejection; the
// store is never touched in that case.
func (h *AccountHandler) Signup(c echo.Context) error {
	input := new(usecase.SignupInput)
	if err := c.Bind(input); err != nil {
		return domainerrors.ErrMissingFields.WrapMessage("failed to bind signup input")
	}

	if err := c.Validate(input); err != nil {
		return domainerrors.ErrMissingFields.WrapMessage("signup input failed validation")
	}

	if err := h.uc.Signup(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.SignupSuccess(c)
}

// Login handles the authentication request.
func (h *AccountHandler) Login(c echo.Context) error {
	input := new(usecase.LoginInput)
	if err := c.Bind(input); err != nil {
		return domainerrors.ErrInvalidCredentials.WrapMessage("failed to bind login input")
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.LoginSuccess(c, output.Account)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
