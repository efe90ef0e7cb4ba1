package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/construstock/internal/application/dto"
	"github.com/tu-usuario/construstock/internal/application/ledger"
	"github.com/tu-usuario/construstock/internal/application/usecase"
	"github.com/tu-usuario/construstock/internal/domain/repository"
)

// ProjectHandler maneja las peticiones HTTP de proyectos y asignaciones (protegido).
type ProjectHandler struct {
	uc     *usecase.ProjectUseCase
	ledger *ledger.UseCase
}

// NewProjectHandler construye el handler.
func NewProjectHandler(uc *usecase.ProjectUseCase, ledgerUC *ledger.UseCase) *ProjectHandler {
	return &ProjectHandler{uc: uc, ledger: ledgerUC}
}

// List godoc
// @Summary      Listar proyectos
// @Tags         projects
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Busca en nombre y descripción"
// @Param        status  query  string  false  "active | completed | on_hold"
// @Param        page    query  int     false  "Página (default 1)"
// @Param        limit   query  int     false  "Tamaño de página (default 50, max 100)"
// @Success      200  {object}  dto.ProjectListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/projects [get]
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	filter := repository.ProjectFilter{
		Search: c.Query("search"),
		Status: c.Query("status"),
	}
	var page dto.PageQuery
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	out, err := h.uc.List(filter, page)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener proyecto por ID
// @Tags         projects
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del proyecto"
// @Success      200  {object}  dto.ProjectResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/projects/{id} [get]
func (h *ProjectHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear proyecto
// @Tags         projects
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProjectRequest  true  "name obligatorio; status default: active"
// @Success      201   {object}  dto.ProjectResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/projects [post]
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProjectRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar proyecto
// @Tags         projects
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                       true  "ID del proyecto"
// @Param        body  body  dto.UpdateProjectRequest  true  "campos del proyecto"
// @Success      200   {object}  dto.ProjectResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/projects/{id} [put]
func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	var in dto.UpdateProjectRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar proyecto
// @Description  Falla con HAS_DEPENDENTS si el proyecto tiene asignaciones de inventario.
// @Tags         projects
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del proyecto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/projects/{id} [delete]
func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	if err := h.uc.Delete(id); err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "proyecto eliminado"})
}

// Allocate godoc
// @Summary      Asignar inventario al proyecto
// @Description  Crea la asignación y la transacción 'out' enlazada en una única unidad atómica; si no hay stock suficiente no persiste nada.
// @Tags         projects
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                  true  "ID del proyecto"
// @Param        body  body  dto.AllocateRequest  true  "inventory_id y allocated_quantity > 0"
// @Success      201   {object}  dto.AllocationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/projects/{id}/allocate [post]
func (h *ProjectHandler) Allocate(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	var in dto.AllocateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	userID := GetUserID(c)
	alloc, err := h.ledger.Allocate(c.Context(), ledger.AllocateInput{
		ProjectID:         id,
		InventoryID:       in.InventoryID,
		AllocatedQuantity: in.AllocatedQuantity,
		Notes:             in.Notes,
		UserID:            &userID,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToAllocationResponse(alloc))
}

// ListAllocations godoc
// @Summary      Listar asignaciones del proyecto
// @Tags         projects
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del proyecto"
// @Success      200  {array}   dto.AllocationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/projects/{id}/allocations [get]
func (h *ProjectHandler) ListAllocations(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	out, err := h.uc.ListAllocations(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
