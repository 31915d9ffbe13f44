package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// SessionHandler reports who the current credential belongs to.
type SessionHandler struct{}

func NewSessionHandler() *SessionHandler {
	return &SessionHandler{}
}

type sessionResponse struct {
	AccountID  int64  `json:"account_id"`
	ExternalID string `json:"external_id"`
	Role       string `json:"role"`
}

// Get handles GET /v1/session.
//
// @Summary      Current session
// @Tags         session
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  sessionResponse
// @Failure      401  {object}  response.Envelope
// @Failure      500  {object}  response.Envelope
// @Router       /v1/session [get]
func (h *SessionHandler) Get(c echo.Context) error {
	account, err := currentAccount(c)
	if err != nil {
		return err
	}

	role := ""
	if !account.Role.IsZero() {
		role = account.Role.String()
	}

	return c.JSON(http.StatusOK, sessionResponse{
		AccountID:  account.ID,
		ExternalID: account.ExternalID,
		Role:       role,
	})
}
