package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/smart-jordan/internal/pkg/errors"
	"github.com/smart-jordan/internal/pkg/utils"
	"github.com/smart-jordan/internal/usecase"
	"go.uber.org/zap"
)

// SensorHandler - симулированные показания датчиков
type SensorHandler struct {
	sensorUC *usecase.SensorUseCase
	logger   *zap.Logger
}

// NewSensorHandler - создание нового SensorHandler
func NewSensorHandler(sensorUC *usecase.SensorUseCase, logger *zap.Logger) *SensorHandler {
	return &SensorHandler{
		sensorUC: sensorUC,
		logger:   logger,
	}
}

// Current godoc
// @Summary Текущие показания
// @Description Возвращает текущие и предыдущие показания и список изменившихся полей
// @Tags Sensors
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=domain.SensorSnapshot}
// @Router /api/v1/sensors/current [get]
func (h *SensorHandler) Current(c *fiber.Ctx) error {
	return utils.SendSuccess(c, h.sensorUC.Current(c.Context()), nil)
}

// History godoc
// @Summary История показаний
// @Description Последние показания из Redis Stream, от новых к старым
// @Tags Sensors
// @Produce json
// @Param limit query int false "Количество записей (1-100)" default(20)
// @Success 200 {object} utils.SuccessResponse{data=[]dto.SensorHistoryItem}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/sensors/history [get]
func (h *SensorHandler) History(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	if limit < 1 || limit > 100 {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"limit": "must be between 1 and 100",
		}))
	}

	items, err := h.sensorUC.History(c.Context(), limit)
	if err != nil {
		h.logger.Error("Failed to read sensor history", zap.Error(err))
		return utils.SendError(c, errors.ErrCacheError)
	}

	return utils.SendSuccess(c, items, &utils.Meta{
		Total: len(items),
		Limit: limit,
	})
}
