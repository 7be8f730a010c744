package api

import (
	"github.com/gofiber/fiber/v2"

	"aihub/currency"
	"aihub/types"
)

type CurrencyHandler struct{}

func NewCurrencyHandler() *CurrencyHandler {
	return &CurrencyHandler{}
}

func (h *CurrencyHandler) HandleConvert(c *fiber.Ctx) error {
	var params types.CurrencyParams
	if c.BodyParser(&params) != nil {
		return ErrBadRequest()
	}

	if errors := types.Validate(&params); len(errors) > 0 {
		return types.NewValidationError(errors)
	}

	from := params.From
	if from == "" {
		from = "USD"
	}
	to := params.To
	if to == "" {
		to = "INR"
	}

	result, err := currency.Convert(*params.Amount, from, to)
	if err != nil {
		return NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(result)
}
