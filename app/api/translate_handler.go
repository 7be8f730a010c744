package api

import (
	"github.com/gofiber/fiber/v2"

	"aihub/translate"
	"aihub/types"
)

type TranslateHandler struct {
	client *translate.Client
}

func NewTranslateHandler(client *translate.Client) *TranslateHandler {
	return &TranslateHandler{client: client}
}

func (h *TranslateHandler) HandleTranslate(c *fiber.Ctx) error {
	var params types.TranslateParams
	if c.BodyParser(&params) != nil {
		return ErrBadRequest()
	}

	if errors := types.Validate(&params); len(errors) > 0 {
		return types.NewValidationError(errors)
	}

	result, err := h.client.Translate(c.Context(), params.Text, params.Dest)
	if err != nil {
		return err
	}

	return c.JSON(result)
}
