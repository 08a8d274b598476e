package handler

import (
	"github.com/deepaksinghh13/PIMS-Inventory-Management/internal/model"
	"github.com/deepaksinghh13/PIMS-Inventory-Management/internal/service"

	"github.com/gofiber/fiber/v2"
)

type InventoryHandler struct {
	inventory        service.InventoryService
	defaultThreshold int
}

func NewInventoryHandler(inventory service.InventoryService, defaultThreshold int) *InventoryHandler {
	return &InventoryHandler{inventory: inventory, defaultThreshold: defaultThreshold}
}

func (h *InventoryHandler) CreateInventory(c *fiber.Ctx) error {
	var req model.CreateInventoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON"})
	}
	if err := h.inventory.CreateInventory(&req); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *InventoryHandler) AdjustInventory(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req model.AdjustInventoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON"})
	}
	if err := h.inventory.AdjustInventory(id, &req, currentUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AuditAdjustment is a manual correction recorded through the same ledgered
// path as any other adjustment.
func (h *InventoryHandler) AuditAdjustment(c *fiber.Ctx) error {
	var req model.AuditAdjustmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON"})
	}
	adjustment := req.Adjustment
	adjustment.Reason = "Audit: " + adjustment.Reason
	if err := h.inventory.AdjustInventory(req.InventoryID, &adjustment, currentUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *InventoryHandler) GetTransactions(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	transactions, err := h.inventory.ListTransactions(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(transactions)
}

func (h *InventoryHandler) GetInventoryByProduct(c *fiber.Ctx) error {
	productID, err := parseID(c, "productId")
	if err != nil {
		return err
	}
	inventory, err := h.inventory.GetInventoryByProduct(productID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(inventory)
}

func (h *InventoryHandler) LowInventoryAlert(c *fiber.Ctx) error {
	threshold := c.QueryInt("threshold", h.defaultThreshold)
	if err := h.inventory.CheckLowInventory(threshold); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "low inventory check completed"})
}
