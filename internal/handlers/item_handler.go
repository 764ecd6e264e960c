package handlers

import (
	"arenaserver/internal/apperrors"
	"arenaserver/internal/models"
	"arenaserver/internal/services"
	"arenaserver/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ItemHandler handles HTTP requests for the item catalog.
type ItemHandler struct {
	service  *services.ItemService
	validate *validation.Validator
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(service *services.ItemService, validate *validation.Validator) *ItemHandler {
	return &ItemHandler{
		service:  service,
		validate: validate,
	}
}

// RegisterRoutes registers the item routes.
func (h *ItemHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/item", h.HandleCreateItem)
	router.Delete("/item", h.HandleDeleteItem)
	router.Get("/item/:code", h.HandleGetItem)
	router.Patch("/item/:code", h.HandleUpdateItem)
}

// HandleCreateItem handles POST /item.
func (h *ItemHandler) HandleCreateItem(c *fiber.Ctx) error {
	var req models.CreateItemRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := h.validate.Struct(req); err != nil {
		return err
	}

	item, err := h.service.CreateItem(c.UserContext(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "아이템 생성을 성공했습니다.",
		"item":    item.View(),
	})
}

// HandleDeleteItem handles DELETE /item.
func (h *ItemHandler) HandleDeleteItem(c *fiber.Ctx) error {
	var req models.ItemCodeRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := h.validate.Struct(req); err != nil {
		return err
	}

	item, err := h.service.DeleteItem(c.UserContext(), req.Code)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "아이템 삭제를 성공했습니다.",
		"item":    item.View(),
	})
}

// HandleGetItem handles GET /item/:code.
func (h *ItemHandler) HandleGetItem(c *fiber.Ctx) error {
	code, err := pathCode(c)
	if err != nil {
		return err
	}
	req := models.ItemCodeRequest{Code: code}
	if err := h.validate.Struct(req); err != nil {
		return err
	}

	item, err := h.service.GetItem(c.UserContext(), req.Code)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "아이템 조회 성공",
		"item":    item.View(),
	})
}

// HandleUpdateItem handles PATCH /item/:code. Only the fields present in the
// body are changed.
func (h *ItemHandler) HandleUpdateItem(c *fiber.Ctx) error {
	var req models.UpdateItemRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	code, err := pathCode(c)
	if err != nil {
		return err
	}
	req.Code = code
	if err := h.validate.Struct(req); err != nil {
		return err
	}

	item, err := h.service.UpdateItem(c.UserContext(), req.Code, req.Patch())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "아이템 수정을 성공했습니다.",
		"item":    item.View(),
	})
}

func pathCode(c *fiber.Ctx) (int, error) {
	code, err := c.ParamsInt("code")
	if err != nil {
		return 0, apperrors.Validation(err)
	}
	return code, nil
}
