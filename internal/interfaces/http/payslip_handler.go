package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/payslip-api/internal/application/dto"
	"github.com/jhoicas/payslip-api/internal/application/payslip"
	"github.com/jhoicas/payslip-api/internal/domain"
	"github.com/jhoicas/payslip-api/pkg/logger"
)

// PayslipHandler consulta y descarga de desprendibles.
type PayslipHandler struct {
	uc  *payslip.UseCase
	log *logger.Logger
}

// NewPayslipHandler construye el handler.
func NewPayslipHandler(uc *payslip.UseCase, log *logger.Logger) *PayslipHandler {
	return &PayslipHandler{uc: uc, log: log}
}

// Get godoc
// @Summary      Desprendible de un periodo
// @Description  Busca por IPPIS (sin distinguir mayúsculas) o número de servicio y devuelve el objeto canónico.
// @Tags         payslip
// @Produce      json
// @Security     BearerAuth
// @Param        id     query  string  true  "IPPIS o número de servicio"
// @Param        year   query  string  true  "Año"
// @Param        month  query  string  true  "Mes (ej. August)"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/payslip [get]
func (h *PayslipHandler) Get(c *fiber.Ctx) error {
	var q dto.PayslipQuery
	if err := c.QueryParser(&q); err != nil {
		return badRequest(c, "INVALID_QUERY", "Invalid query parameters")
	}
	slip, err := h.uc.Get(c.UserContext(), q)
	if err != nil {
		return h.lookupError(c, err)
	}
	return c.JSON(slip)
}

// PDF godoc
// @Summary      Desprendible en PDF
// @Tags         payslip
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id     query  string  true  "IPPIS o número de servicio"
// @Param        year   query  string  true  "Año"
// @Param        month  query  string  true  "Mes"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/payslip/pdf [get]
func (h *PayslipHandler) PDF(c *fiber.Ctx) error {
	var q dto.PayslipQuery
	if err := c.QueryParser(&q); err != nil {
		return badRequest(c, "INVALID_QUERY", "Invalid query parameters")
	}
	data, filename, err := h.uc.DownloadPDF(c.UserContext(), q)
	if err != nil {
		return h.lookupError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(data)
}

func (h *PayslipHandler) lookupError(c *fiber.Ctx, err error) error {
	switch {
	case isInvalidInput(err):
		return badRequest(c, "VALIDATION", "Missing required query parameters: id, year, month")
	case errors.Is(err, domain.ErrEmployeeNotFound):
		return notFound(c, "OFFICER_NOT_FOUND", "Officer not found")
	case errors.Is(err, domain.ErrPeriodNotFound):
		return notFound(c, "PAYSLIP_NOT_FOUND", "Payslip not found for given month/year")
	}
	return serverError(c, h.log, err, "consulta de desprendible")
}
