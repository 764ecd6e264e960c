package handlers

import (
	"arenaserver/internal/models"
	"arenaserver/internal/services"
	"arenaserver/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// CharacterHandler handles HTTP requests for characters.
type CharacterHandler struct {
	service  *services.CharacterService
	validate *validation.Validator
}

// NewCharacterHandler creates a new CharacterHandler.
func NewCharacterHandler(service *services.CharacterService, validate *validation.Validator) *CharacterHandler {
	return &CharacterHandler{
		service:  service,
		validate: validate,
	}
}

// RegisterRoutes registers the character routes.
func (h *CharacterHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/character", h.HandleCreateCharacter)
	router.Delete("/character", h.HandleDeleteCharacter)
	router.Get("/character/:name", h.HandleGetCharacter)
}

// HandleCreateCharacter handles POST /character.
func (h *CharacterHandler) HandleCreateCharacter(c *fiber.Ctx) error {
	var req models.CreateCharacterRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := h.validate.Struct(req); err != nil {
		return err
	}

	character, err := h.service.CreateCharacter(c.UserContext(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":   "캐릭터 생성을 성공했습니다.",
		"character": character.View(),
	})
}

// HandleDeleteCharacter handles DELETE /character.
func (h *CharacterHandler) HandleDeleteCharacter(c *fiber.Ctx) error {
	var req models.DeleteCharacterRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := h.validate.Struct(req); err != nil {
		return err
	}

	character, err := h.service.DeleteCharacter(c.UserContext(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":          "캐릭터 삭제를 성공했습니다.",
		"deletedCharacter": character.View(),
	})
}

// HandleGetCharacter handles GET /character/:name.
func (h *CharacterHandler) HandleGetCharacter(c *fiber.Ctx) error {
	req := models.CharacterNameRequest{Name: c.Params("name")}
	if err := h.validate.Struct(req); err != nil {
		return err
	}

	character, err := h.service.GetCharacter(c.UserContext(), req.Name)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":   "캐릭터 조회 성공",
		"character": character.DetailView(),
	})
}
