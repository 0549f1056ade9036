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

// DestinationHandler - обработчик каталога направлений
type DestinationHandler struct {
	destinationUC *usecase.DestinationUseCase
	logger        *zap.Logger
}

// NewDestinationHandler - создание нового DestinationHandler
func NewDestinationHandler(destinationUC *usecase.DestinationUseCase, logger *zap.Logger) *DestinationHandler {
	return &DestinationHandler{
		destinationUC: destinationUC,
		logger:        logger,
	}
}

// List godoc
// @Summary Список направлений с фильтрами
// @Description Возвращает направления каталога, удовлетворяющие всем активным фильтрам, в исходном порядке. Значение "all" или пустое значение отключает фильтр. Длительность сравнивается как подстрока ("6" совпадает с "4-6 hours" и "6-8 hours").
// @Tags Destinations
// @Produce json
// @Param category query string false "Категория (all, nature, historical, religious, urban)"
// @Param difficulty query string false "Сложность (all, easy, moderate, hard)"
// @Param duration query string false "Подстрока длительности"
// @Param budget query string false "Бюджет (all, low, medium, high)"
// @Param accessibility query string false "Доступность (all, excellent, good, moderate, limited)"
// @Param q query string false "Поиск по названию и краткому описанию"
// @Success 200 {object} utils.SuccessResponse{data=dto.DestinationListResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/destinations [get]
func (h *DestinationHandler) List(c *fiber.Ctx) error {
	var req dto.DestinationFilterRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidFilter)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidFilter.WithDetails(validator.Details(err)))
	}

	result, err := h.destinationUC.List(c.Context(), req.ToCriteria())
	if err != nil {
		h.logger.Error("Failed to list destinations", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total:     result.Total,
		Catalogue: result.Catalogue,
	})
}

// GetByID godoc
// @Summary Направление по ID
// @Description Возвращает полную карточку направления
// @Tags Destinations
// @Produce json
// @Param id path string true "ID направления" example(petra)
// @Success 200 {object} utils.SuccessResponse{data=domain.Destination}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/destinations/{id} [get]
func (h *DestinationHandler) GetByID(c *fiber.Ctx) error {
	d, err := h.destinationUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, d, nil)
}

// FilterOptions godoc
// @Summary Значения фильтров
// @Description Возвращает допустимые значения перечислимых фильтров
// @Tags Destinations
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.FilterOptionsResponse}
// @Router /api/v1/destinations/filters [get]
func (h *DestinationHandler) FilterOptions(c *fiber.Ctx) error {
	return utils.SendSuccess(c, h.destinationUC.FilterOptions(), nil)
}
