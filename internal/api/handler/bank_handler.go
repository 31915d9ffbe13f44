package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bancaplus/backoffice/internal/core/domain"
	"github.com/bancaplus/backoffice/internal/core/ports"
	"github.com/bancaplus/backoffice/internal/i18n"
)

// BankHandler handles HTTP requests for bank operations.
type BankHandler struct {
	banks  ports.BankRepository
	bundle *i18n.Bundle
	now    func() time.Time
}

func NewBankHandler(banks ports.BankRepository, bundle *i18n.Bundle) *BankHandler {
	return &BankHandler{banks: banks, bundle: bundle, now: time.Now}
}

// Create handles POST /v1/banks.
//
// @Summary      Create a bank
// @Tags         banks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      CreateBankRequest  true  "Bank details"
// @Success      201   {object}  bankResponse
// @Failure      400   {object}  response.Envelope
// @Failure      401   {object}  response.Envelope
// @Failure      403   {object}  response.Envelope
// @Failure      409   {object}  response.Envelope
// @Failure      500   {object}  response.Envelope
// @Router       /v1/banks [post]
func (h *BankHandler) Create(c echo.Context) error {
	req, err := payload[CreateBankRequest](c)
	if err != nil {
		return err
	}
	account, err := currentAccount(c)
	if err != nil {
		return err
	}

	bank, err := h.banks.Create(c.Request().Context(), &domain.Bank{
		Name:      strings.TrimSpace(req.Name),
		Code:      strings.ToUpper(req.Code),
		OwnerID:   account.ID,
		CreatedAt: h.now().UTC(),
	})
	if errors.Is(err, domain.ErrBankExists) {
		return reject(c, h.bundle, http.StatusConflict, i18n.KeyBankExists, err)
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, bankResponse{
		ID:        bank.ID,
		Name:      bank.Name,
		Code:      bank.Code,
		OwnerID:   bank.OwnerID,
		CreatedAt: bank.CreatedAt.Format(time.RFC3339),
	})
}

// Delete handles DELETE /v1/banks/:id.
//
// @Summary      Delete a bank
// @Tags         banks
// @Security     BearerAuth
// @Param        id   path      string  true  "Bank id"
// @Success      204
// @Failure      401  {object}  response.Envelope
// @Failure      403  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Failure      500  {object}  response.Envelope
// @Router       /v1/banks/{id} [delete]
func (h *BankHandler) Delete(c echo.Context) error {
	req, err := payload[BankIDRequest](c)
	if err != nil {
		return err
	}

	err = h.banks.Delete(c.Request().Context(), req.ID)
	if errors.Is(err, domain.ErrBankNotFound) {
		return reject(c, h.bundle, http.StatusNotFound, i18n.KeyBankNotFound, err)
	}
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
