// Package response holds the exact wire shapes of the public API.
// These bodies are a compatibility contract; do not restructure them.
package response

import (
	"net/http"

	"doorman/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// Ack is the success body shared by both endpoints.
type Ack struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// LoginAck is the login success body. User carries the minimal identity
// projection; the password hash is never part of it.
type LoginAck struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	User    UserInfo `json:"user"`
}

// UserInfo is the identity projection returned on login.
type UserInfo struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// SignupSuccess writes the registration acknowledgment.
// No account fields are echoed back.
func SignupSuccess(c echo.Context) error {
	return c.JSON(http.StatusOK, Ack{
		Success: true,
		Message: "Registration successful",
	})
}

// LoginSuccess writes the login acknowledgment with the identity projection.
func LoginSuccess(c echo.Context, account *entity.Account) error {
	return c.JSON(http.StatusOK, LoginAck{
		Success: true,
		Message: "Login successful",
		User: UserInfo{
			Name:  account.Name,
			Phone: account.Phone,
			Email: account.Email,
		},
	})
}
