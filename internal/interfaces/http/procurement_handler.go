package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/karibu-groceries/kgl-api/internal/application/dto"
	"github.com/karibu-groceries/kgl-api/internal/application/usecase"
)

// ProcurementHandler serves /api/procurements.
type ProcurementHandler struct {
	uc *usecase.ProcurementUseCase
}

// NewProcurementHandler builds the handler.
func NewProcurementHandler(uc *usecase.ProcurementUseCase) *ProcurementHandler {
	return &ProcurementHandler{uc: uc}
}

// Create godoc
// @Summary      Record a procurement
// @Tags         procurements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProcurementRequest  true  "Procurement record"
// @Success      201   {object}  dto.ProcurementCreatedEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/procurements [post]
func (h *ProcurementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProcurementRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, "Error creating procurement record", err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, "Error creating procurement record", err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ProcurementCreatedEnvelope{
		Message:       "Procurement record created successfully",
		CreatedRecord: *out,
	})
}

// List godoc
// @Summary      List procurements
// @Tags         procurements
// @Produce      json
// @Success      200  {object}  dto.ProcurementListEnvelope
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/procurements [get]
func (h *ProcurementHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, "Error fetching procurement records", err)
	}
	return c.JSON(dto.ProcurementListEnvelope{
		Message:    "procurement records successfully fetched",
		AllRecords: out,
	})
}

// GetByID godoc
// @Summary      Get a procurement
// @Tags         procurements
// @Produce      json
// @Param        id   path  string  true  "Procurement ID"
// @Success      200  {object}  dto.ProcurementEnvelope
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/procurements/{id} [get]
func (h *ProcurementHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, "Error finding record", err)
	}
	return c.JSON(dto.ProcurementEnvelope{Message: "Record found", Record: *out})
}

// Update godoc
// @Summary      Update a procurement
// @Description  Only the fields present in the body are changed.
// @Tags         procurements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "Procurement ID"
// @Param        body  body  dto.UpdateProcurementRequest  true  "Fields to change"
// @Success      200   {object}  dto.ProcurementUpdatedEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/procurements/{id} [patch]
func (h *ProcurementHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProcurementRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, "Error updating record", err)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, "Error updating record", err)
	}
	return c.JSON(dto.ProcurementUpdatedEnvelope{
		Message:       "Record with id " + out.ID + " updated",
		UpdatedRecord: *out,
	})
}

// Delete godoc
// @Summary      Delete a procurement
// @Tags         procurements
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Procurement ID"
// @Success      200  {object}  dto.ProcurementDeletedEnvelope
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/procurements/{id} [delete]
func (h *ProcurementHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, "Error deleting record", err)
	}
	return c.JSON(dto.ProcurementDeletedEnvelope{
		Message:       "Record with id " + out.ID + " deleted successfully",
		DeletedRecord: *out,
	})
}
