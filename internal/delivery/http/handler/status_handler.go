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

// StatusHandler - отметки клиентов о доступности API.
// Маршруты /api/* отдают объекты без обертки, /api/v1/* - в обертке {data, meta}.
type StatusHandler struct {
	statusUC *usecase.StatusUseCase
	logger   *zap.Logger
}

// NewStatusHandler - создание нового StatusHandler
func NewStatusHandler(statusUC *usecase.StatusUseCase, logger *zap.Logger) *StatusHandler {
	return &StatusHandler{
		statusUC: statusUC,
		logger:   logger,
	}
}

// Hello godoc
// @Summary Приветствие
// @Tags Status
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router /api/ [get]
func (h *StatusHandler) Hello(c *fiber.Ctx) error {
	return c.JSON(dto.MessageResponse{Message: "Hello World"})
}

// CreateRaw godoc
// @Summary Создать отметку
// @Tags Status
// @Accept json
// @Produce json
// @Param request body dto.StatusCheckRequest true "Имя клиента"
// @Success 200 {object} domain.StatusCheck
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/status [post]
func (h *StatusHandler) CreateRaw(c *fiber.Ctx) error {
	req, err := parseStatusRequest(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	check, err := h.statusUC.Create(c.Context(), req.ClientName)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(check)
}

// ListRaw godoc
// @Summary Список отметок
// @Tags Status
// @Produce json
// @Success 200 {array} domain.StatusCheck
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/status [get]
func (h *StatusHandler) ListRaw(c *fiber.Ctx) error {
	checks, err := h.statusUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(checks)
}

// Create godoc
// @Summary Создать отметку
// @Tags Status
// @Accept json
// @Produce json
// @Param request body dto.StatusCheckRequest true "Имя клиента"
// @Success 201 {object} utils.SuccessResponse{data=domain.StatusCheck}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/status [post]
func (h *StatusHandler) Create(c *fiber.Ctx) error {
	req, err := parseStatusRequest(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	check, err := h.statusUC.Create(c.Context(), req.ClientName)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, check)
}

// List godoc
// @Summary Список отметок
// @Tags Status
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.StatusCheck}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/status [get]
func (h *StatusHandler) List(c *fiber.Ctx) error {
	checks, err := h.statusUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, checks, &utils.Meta{Total: len(checks)})
}

func parseStatusRequest(c *fiber.Ctx) (*dto.StatusCheckRequest, error) {
	var req dto.StatusCheckRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, errors.ErrInvalidRequest
	}

	if err := validator.Validate(&req); err != nil {
		return nil, errors.ErrInvalidRequest.WithDetails(validator.Details(err))
	}

	return &req, nil
}
