package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/smart-jordan/internal/pkg/errors"
	"github.com/smart-jordan/internal/pkg/utils"
	"github.com/smart-jordan/internal/pkg/validator"
	"github.com/smart-jordan/internal/usecase"
	"github.com/smart-jordan/internal/usecase/dto"
	"go.uber.org/zap"
)

// ScrollHandler - вычисление состояния навигации по раскладке страницы
type ScrollHandler struct {
	logger *zap.Logger
}

// NewScrollHandler - создание нового ScrollHandler
func NewScrollHandler(logger *zap.Logger) *ScrollHandler {
	return &ScrollHandler{logger: logger}
}

// State godoc
// @Summary Состояние прокрутки
// @Description Вычисляет прогресс чтения (0-100), видимость секций, активную секцию и показ кнопки "наверх". Состояние не хранится: клиент передает предыдущую активную секцию.
// @Tags Scroll
// @Accept json
// @Produce json
// @Param request body dto.ScrollStateRequest true "Раскладка страницы"
// @Success 200 {object} utils.SuccessResponse{data=domain.ScrollState}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/scroll/state [post]
func (h *ScrollHandler) State(c *fiber.Ctx) error {
	var req dto.ScrollStateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidLayout.WithDetails(validator.Details(err)))
	}

	state := usecase.TrackScroll(req.PreviousActive, req.ToLayout())

	return utils.SendSuccess(c, state, nil)
}
