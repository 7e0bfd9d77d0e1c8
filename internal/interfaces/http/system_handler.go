package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rubengianelli8/Sistema-gestion/internal/application/usecase"
)

// SystemHandler tablero, auditoría y respaldo.
type SystemHandler struct {
	uc *usecase.SystemUseCase
}

// NewSystemHandler construye el handler.
func NewSystemHandler(uc *usecase.SystemUseCase) *SystemHandler {
	return &SystemHandler{uc: uc}
}

// Dashboard contadores del tablero.
func (h *SystemHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AuditLog entradas de auditoría más recientes.
func (h *SystemHandler) AuditLog(c *fiber.Ctx) error {
	out, err := h.uc.AuditLog(c.QueryInt("limit", 200))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Backup volcado JSON completo (solo admin).
func (h *SystemHandler) Backup(c *fiber.Ctx) error {
	out, err := h.uc.Backup()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
