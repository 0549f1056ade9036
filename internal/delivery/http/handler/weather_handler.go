package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/smart-jordan/internal/pkg/errors"
	"github.com/smart-jordan/internal/pkg/utils"
	"github.com/smart-jordan/internal/pkg/validator"
	"github.com/smart-jordan/internal/usecase"
	"github.com/smart-jordan/internal/usecase/dto"
	"go.uber.org/zap"
)

// WeatherHandler - текущая погода
type WeatherHandler struct {
	weatherUC *usecase.WeatherUseCase
	logger    *zap.Logger
}

// NewWeatherHandler - создание нового WeatherHandler
func NewWeatherHandler(weatherUC *usecase.WeatherUseCase, logger *zap.Logger) *WeatherHandler {
	return &WeatherHandler{
		weatherUC: weatherUC,
		logger:    logger,
	}
}

// Current godoc
// @Summary Текущая погода
// @Description Температура и влажность в точке. Без координат используется центр Аммана. При недоступности сервиса возвращаются значения по умолчанию (25°C, 40%) с source=fallback.
// @Tags Weather
// @Produce json
// @Param lat query number false "Широта"
// @Param lon query number false "Долгота"
// @Success 200 {object} utils.SuccessResponse{data=domain.Weather}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/weather [get]
func (h *WeatherHandler) Current(c *fiber.Ctx) error {
	var req dto.WeatherRequest

	lat, err := optionalFloat(c, "lat")
	if err != nil {
		return utils.SendError(c, err)
	}
	lon, err := optionalFloat(c, "lon")
	if err != nil {
		return utils.SendError(c, err)
	}
	req.Lat, req.Lon = lat, lon

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidCoordinates.WithDetails(validator.Details(err)))
	}

	w, err := h.weatherUC.Current(c.Context(), req.Point())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, w, nil)
}

func optionalFloat(c *fiber.Ctx, key string) (*float64, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.ErrInvalidCoordinates.WithDetails(map[string]interface{}{
			key: "must be a number",
		})
	}
	return &v, nil
}
