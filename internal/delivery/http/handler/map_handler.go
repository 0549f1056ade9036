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

// MapHandler - маркеры направлений на карте
type MapHandler struct {
	mapUC  *usecase.MapUseCase
	logger *zap.Logger
}

// NewMapHandler - создание нового MapHandler
func NewMapHandler(mapUC *usecase.MapUseCase, logger *zap.Logger) *MapHandler {
	return &MapHandler{
		mapUC:  mapUC,
		logger: logger,
	}
}

// Markers godoc
// @Summary Маркеры карты
// @Description Один маркер на направление и настройки тайлового слоя
// @Tags Map
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.MapMarkersResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/map/markers [get]
func (h *MapHandler) Markers(c *fiber.Ctx) error {
	result, err := h.mapUC.Markers(c.Context())
	if err != nil {
		h.logger.Error("Failed to build map markers", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result.Markers)})
}

// Nearest godoc
// @Summary Ближайшие направления
// @Description Направления по возрастанию расстояния по большому кругу (км)
// @Tags Map
// @Produce json
// @Param lat query number true "Широта"
// @Param lon query number true "Долгота"
// @Param limit query int false "Максимум результатов (1-50)"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.NearestDestination}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/map/nearest [get]
func (h *MapHandler) Nearest(c *fiber.Ctx) error {
	lat, err := optionalFloat(c, "lat")
	if err != nil {
		return utils.SendError(c, err)
	}
	lon, err := optionalFloat(c, "lon")
	if err != nil {
		return utils.SendError(c, err)
	}

	req := dto.NearestRequest{Lat: lat, Lon: lon, Limit: c.QueryInt("limit", 0)}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidCoordinates.WithDetails(validator.Details(err)))
	}

	result, err := h.mapUC.Nearest(c.Context(), req.Point(), req.Limit)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result), Limit: req.Limit})
}
