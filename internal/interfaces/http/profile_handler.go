package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/facturio/internal/application/dto"
	"github.com/tu-usuario/facturio/internal/application/profile"
)

// ProfileHandler maneja perfil del emisor y coordenadas bancarias (protegido).
type ProfileHandler struct {
	uc *profile.ProfileUseCase
}

// NewProfileHandler construye el handler.
func NewProfileHandler(uc *profile.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

// Get GET /api/profile
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetProfile(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Save PUT /api/profile
// El primer guardado completa el onboarding.
func (h *ProfileHandler) Save(c *fiber.Ctx) error {
	var in dto.ProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SaveProfile(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetBankDetails GET /api/profile/bank-details
func (h *ProfileHandler) GetBankDetails(c *fiber.Ctx) error {
	out, err := h.uc.GetBankDetails(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SaveBankDetails PUT /api/profile/bank-details
// Valida IBAN (checksum mod-97) y BIC antes de guardar.
func (h *ProfileHandler) SaveBankDetails(c *fiber.Ctx) error {
	var in dto.BankDetailsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SaveBankDetails(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
