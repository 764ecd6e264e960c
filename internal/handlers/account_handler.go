package handlers

import (
	"arenaserver/internal/models"
	"arenaserver/internal/services"
	"arenaserver/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// AccountHandler handles HTTP requests for accounts.
type AccountHandler struct {
	service  *services.AccountService
	validate *validation.Validator
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(service *services.AccountService, validate *validation.Validator) *AccountHandler {
	return &AccountHandler{
		service:  service,
		validate: validate,
	}
}

// RegisterRoutes registers the account routes.
func (h *AccountHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/account", h.HandleCreateAccount)
	router.Delete("/account", h.HandleDeleteAccount)
}

// HandleCreateAccount handles POST /account.
func (h *AccountHandler) HandleCreateAccount(c *fiber.Ctx) error {
	var req models.CreateAccountRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := h.validate.Struct(req); err != nil {
		return err
	}

	account, err := h.service.CreateAccount(c.UserContext(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "계정 생성을 성공했습니다.",
		"account": account.View(),
	})
}

// HandleDeleteAccount handles DELETE /account.
func (h *AccountHandler) HandleDeleteAccount(c *fiber.Ctx) error {
	var req models.DeleteAccountRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := h.validate.Struct(req); err != nil {
		return err
	}

	account, err := h.service.DeleteAccount(c.UserContext(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "계정 삭제를 성공했습니다.",
		"account": account.View(),
	})
}
