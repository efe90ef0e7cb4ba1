package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/construstock/internal/application/dto"
	"github.com/tu-usuario/construstock/internal/application/usecase"
)

// ReportHandler maneja las peticiones HTTP de reportes y tablero (protegido).
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Dashboard godoc
// @Summary      Tablero principal
// @Description  Métricas agregadas del inventario más las últimas transacciones.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/reports/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// InventoryValue godoc
// @Summary      Valor del inventario
// @Description  current_stock × unit_cost por material, de mayor a menor valor. Con format=pdf devuelve el documento PDF.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        category_id  query  int     false  "Filtrar por categoría"
// @Param        format       query  string  false  "pdf para exportar el reporte"
// @Success      200  {object}  dto.InventoryValueResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/inventory-value [get]
func (h *ReportHandler) InventoryValue(c *fiber.Ctx) error {
	categoryID, ok := parseOptionalIDQuery(c, "category_id")
	if !ok {
		return nil
	}
	if c.Query("format") == "pdf" {
		pdfBytes, err := h.uc.InventoryValuePDF(c.Context(), categoryID)
		if err != nil {
			return respondDomainError(c, err)
		}
		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventory-value.pdf"`)
		return c.Send(pdfBytes)
	}
	out, err := h.uc.InventoryValue(c.Context(), categoryID)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// StockMovement godoc
// @Summary      Histórico de movimientos
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        inventory_id  query  int     false  "Filtrar por material"
// @Param        type          query  string  false  "in | out | transfer | adjustment"
// @Param        start_date    query  string  false  "Desde (YYYY-MM-DD)"
// @Param        end_date      query  string  false  "Hasta (YYYY-MM-DD)"
// @Success      200  {array}   dto.TransactionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/stock-movement [get]
func (h *ReportHandler) StockMovement(c *fiber.Ctx) error {
	filter, ok := parseTransactionFilter(c)
	if !ok {
		return nil
	}
	out, err := h.uc.StockMovement(c.Context(), filter)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// CategoryWise godoc
// @Summary      Inventario por categoría
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.CategoryWiseRow
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/reports/category-wise [get]
func (h *ReportHandler) CategoryWise(c *fiber.Ctx) error {
	out, err := h.uc.CategoryWise(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// SupplierPerformance godoc
// @Summary      Inventario por proveedor
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.SupplierPerformanceRow
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/reports/supplier-performance [get]
func (h *ReportHandler) SupplierPerformance(c *fiber.Ctx) error {
	out, err := h.uc.SupplierPerformance(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ProjectAllocations godoc
// @Summary      Reporte de asignaciones
// @Description  Asignaciones de inventario a proyectos con su valor (cantidad × costo unitario).
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        project_id  query  int  false  "Filtrar por proyecto"
// @Success      200  {object}  dto.ProjectAllocationsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/project-allocations [get]
func (h *ReportHandler) ProjectAllocations(c *fiber.Ctx) error {
	projectID, ok := parseOptionalIDQuery(c, "project_id")
	if !ok {
		return nil
	}
	out, err := h.uc.ProjectAllocations(c.Context(), projectID)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// MonthlySummary godoc
// @Summary      Resumen mensual
// @Description  Agregado mensual de transacciones por tipo para un año (default: año en curso).
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        year  query  int  false  "Año (default actual)"
// @Success      200  {array}   dto.MonthlySummaryRow
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/monthly-summary [get]
func (h *ReportHandler) MonthlySummary(c *fiber.Ctx) error {
	year := time.Now().Year()
	if raw := c.Query("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil || y < 2000 || y > 2200 {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "year inválido"})
		}
		year = y
	}
	out, err := h.uc.MonthlySummary(c.Context(), year)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// parseOptionalIDQuery parsea un query param numérico opcional.
// Si es inválido escribe la respuesta 400 y devuelve ok=false.
func parseOptionalIDQuery(c *fiber.Ctx, param string) (*int64, bool) {
	raw := c.Query(param)
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: param + " inválido"})
		return nil, false
	}
	return &id, true
}
