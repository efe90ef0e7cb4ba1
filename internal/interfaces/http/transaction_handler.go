package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/construstock/internal/application/dto"
	"github.com/tu-usuario/construstock/internal/application/ledger"
	"github.com/tu-usuario/construstock/internal/application/usecase"
	"github.com/tu-usuario/construstock/internal/domain/entity"
	"github.com/tu-usuario/construstock/internal/domain/repository"
)

// TransactionHandler maneja las peticiones HTTP del ledger de stock (protegido).
type TransactionHandler struct {
	ledger  *ledger.UseCase
	reports *usecase.ReportUseCase
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(ledgerUC *ledger.UseCase, reports *usecase.ReportUseCase) *TransactionHandler {
	return &TransactionHandler{ledger: ledgerUC, reports: reports}
}

// Create godoc
// @Summary      Registrar transacción de stock
// @Description  Registra una transacción tipada (in/out/transfer/adjustment) y aplica su delta sobre current_stock de forma atómica. Una salida sin stock suficiente responde 400 con available y requested, sin efectos.
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransactionRequest  true  "type, inventory_id, quantity > 0; unit_cost opcional"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/transactions [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	userID := GetUserID(c)
	tx, err := h.ledger.RecordTransaction(c.Context(), ledger.RecordTransactionInput{
		Type:            in.Type,
		InventoryID:     in.InventoryID,
		Quantity:        in.Quantity,
		UnitCost:        in.UnitCost,
		ReferenceNumber: in.ReferenceNumber,
		Notes:           in.Notes,
		ProjectID:       in.ProjectID,
		UserID:          &userID,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToTransactionResponse(tx))
}

// List godoc
// @Summary      Listar transacciones
// @Description  Histórico del ledger con filtros combinables, del más reciente al más antiguo.
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        type          query  string  false  "in | out | transfer | adjustment"
// @Param        inventory_id  query  int     false  "Filtrar por material"
// @Param        project_id    query  int     false  "Filtrar por proyecto"
// @Param        start_date    query  string  false  "Desde (YYYY-MM-DD)"
// @Param        end_date      query  string  false  "Hasta (YYYY-MM-DD)"
// @Param        page          query  int     false  "Página (default 1)"
// @Param        limit         query  int     false  "Tamaño de página (default 50)"
// @Success      200  {object}  dto.TransactionListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	filter, ok := parseTransactionFilter(c)
	if !ok {
		return nil
	}
	var page dto.PageQuery
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	result, err := h.ledger.ListTransactions(c.Context(), filter, page.Page, page.Limit)
	if err != nil {
		return respondDomainError(c, err)
	}
	txs := make([]dto.TransactionResponse, 0, len(result.Transactions))
	for _, t := range result.Transactions {
		txs = append(txs, dto.ToTransactionResponse(t))
	}
	return c.JSON(dto.TransactionListResponse{
		Transactions: txs,
		Pagination: dto.Pagination{
			Page:  result.Page,
			Limit: result.Limit,
			Total: result.Total,
			Pages: result.Pages,
		},
	})
}

// GetByID godoc
// @Summary      Obtener transacción por ID
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la transacción"
// @Success      200  {object}  dto.TransactionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transactions/{id} [get]
func (h *TransactionHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	tx, err := h.ledger.GetTransaction(c.Context(), id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.ToTransactionResponse(tx))
}

// Summary godoc
// @Summary      Resumen de transacciones
// @Description  Totales de entradas y salidas (cantidad y costo) en un rango de fechas.
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "Desde (YYYY-MM-DD)"
// @Param        end_date    query  string  false  "Hasta (YYYY-MM-DD)"
// @Success      200  {object}  dto.TransactionSummaryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/transactions/summary/overview [get]
func (h *TransactionHandler) Summary(c *fiber.Ctx) error {
	start, ok := parseDateQuery(c, "start_date")
	if !ok {
		return nil
	}
	end, ok := parseDateQuery(c, "end_date")
	if !ok {
		return nil
	}
	out, err := h.reports.TransactionSummary(c.Context(), start, end)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// parseTransactionFilter arma el filtro del histórico desde los query params.
// Si algún valor es inválido escribe la respuesta 400 y devuelve ok=false.
func parseTransactionFilter(c *fiber.Ctx) (repository.TransactionFilter, bool) {
	filter := repository.TransactionFilter{Type: c.Query("type")}
	if filter.Type != "" && !entity.ValidTransactionType(filter.Type) {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type inválido"})
		return filter, false
	}
	for param, dst := range map[string]**int64{
		"inventory_id": &filter.InventoryID,
		"project_id":   &filter.ProjectID,
	} {
		if raw := c.Query(param); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: param + " inválido"})
				return filter, false
			}
			*dst = &id
		}
	}
	var ok bool
	if filter.StartDate, ok = parseDateQuery(c, "start_date"); !ok {
		return filter, false
	}
	if filter.EndDate, ok = parseDateQuery(c, "end_date"); !ok {
		return filter, false
	}
	return filter, true
}

// parseDateQuery parsea un query param de fecha (YYYY-MM-DD o RFC3339).
// Si es inválido escribe la respuesta 400 y devuelve ok=false.
func parseDateQuery(c *fiber.Ctx, param string) (*time.Time, bool) {
	raw := c.Query(param)
	if raw == "" {
		return nil, true
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, true
	}
	_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: param + " inválido (YYYY-MM-DD)"})
	return nil, false
}
