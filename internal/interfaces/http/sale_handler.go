package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/karibu-groceries/kgl-api/internal/application/dto"
	"github.com/karibu-groceries/kgl-api/internal/application/usecase"
)

// SaleHandler serves /api/sales.
type SaleHandler struct {
	uc       *usecase.SaleUseCase
	receipts *usecase.ReceiptUseCase
}

// NewSaleHandler builds the handler. receipts may be nil, in which case the
// receipt route is not registered.
func NewSaleHandler(uc *usecase.SaleUseCase, receipts *usecase.ReceiptUseCase) *SaleHandler {
	return &SaleHandler{uc: uc, receipts: receipts}
}

// Create godoc
// @Summary      Record a sale
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Sale record"
// @Success      201   {object}  dto.SaleEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, "Error creating sale record", err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, "Error creating sale record", err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SaleEnvelope{
		Message: "Sale record created successfully",
		Sale:    *out,
	})
}

// List godoc
// @Summary      List sales
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SaleListEnvelope
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, "Error fetching sales", err)
	}
	return c.JSON(dto.SaleListEnvelope{Message: "sales successfully loaded", Sales: out})
}

// GetByID godoc
// @Summary      Get a sale
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Sale ID"
// @Success      200  {object}  dto.SaleEnvelope
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, "Fetching sale with id "+id+" failed", err)
	}
	return c.JSON(dto.SaleEnvelope{Message: "Sale found successfully", Sale: *out})
}

// Update godoc
// @Summary      Update a sale
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "Sale ID"
// @Param        body  body  dto.UpdateSaleRequest  true  "Fields to change"
// @Success      200   {object}  dto.SaleUpdatedEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [patch]
func (h *SaleHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSaleRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, "Error updating sale", err)
	}
	id := c.Params("id")
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, "Error updating sale", err)
	}
	return c.JSON(dto.SaleUpdatedEnvelope{Message: "Sale with id " + out.ID + " updated", UpdatedSale: *out})
}

// Delete godoc
// @Summary      Delete a sale
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Sale ID"
// @Success      200  {object}  dto.SaleDeletedEnvelope
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [delete]
func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, "Error deleting sale record", err)
	}
	return c.JSON(dto.SaleDeletedEnvelope{
		Message:     "Sale with id " + out.ID + " deleted successfully",
		DeletedSale: *out,
	})
}

// Receipt godoc
// @Summary      Download a sale receipt
// @Tags         sales
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "Sale ID"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/receipt [get]
func (h *SaleHandler) Receipt(c *fiber.Ctx) error {
	pdf, filename, err := h.receipts.SaleReceipt(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, "Error generating receipt", err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+filename+`"`)
	return c.Send(pdf)
}
