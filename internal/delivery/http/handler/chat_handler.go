package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/smart-jordan/internal/pkg/errors"
	"github.com/smart-jordan/internal/pkg/utils"
	"github.com/smart-jordan/internal/pkg/validator"
	"github.com/smart-jordan/internal/usecase"
	"github.com/smart-jordan/internal/usecase/dto"
	"go.uber.org/zap"
)

// ChatHandler - сессии чата с гидом
type ChatHandler struct {
	chatUC *usecase.ChatUseCase
	logger *zap.Logger
}

// NewChatHandler - создание нового ChatHandler
func NewChatHandler(chatUC *usecase.ChatUseCase, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chatUC: chatUC,
		logger: logger,
	}
}

// Open godoc
// @Summary Новая сессия чата
// @Description Создает сессию с приветственным сообщением гида
// @Tags Chat
// @Produce json
// @Success 201 {object} utils.SuccessResponse{data=domain.ChatSession}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/chat/sessions [post]
func (h *ChatHandler) Open(c *fiber.Ctx) error {
	session, err := h.chatUC.Open(c.Context())
	if err != nil {
		h.logger.Error("Failed to open chat session", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, session)
}

// Transcript godoc
// @Summary Стенограмма сессии
// @Tags Chat
// @Produce json
// @Param id path string true "ID сессии (UUID)"
// @Success 200 {object} utils.SuccessResponse{data=domain.ChatSession}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/chat/sessions/{id} [get]
func (h *ChatHandler) Transcript(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	session, err := h.chatUC.Transcript(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, session, nil)
}

// Submit godoc
// @Summary Отправить сообщение гиду
// @Description Добавляет сообщение пользователя, пересылает всю стенограмму во внешний сервис и возвращает обновленную стенограмму. Пустое сообщение ничего не меняет. Ошибка внешнего сервиса добавляется как сообщение бота с префиксом ⚠️. Пока сессия ждет ответа, новые сообщения отклоняются с 409.
// @Tags Chat
// @Accept json
// @Produce json
// @Param id path string true "ID сессии (UUID)"
// @Param request body dto.ChatMessageRequest true "Сообщение"
// @Success 200 {object} utils.SuccessResponse{data=domain.ChatSession}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/chat/sessions/{id}/messages [post]
func (h *ChatHandler) Submit(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.ChatMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(validator.Details(err)))
	}

	session, err := h.chatUC.Submit(c.Context(), id, req.Text)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, session, nil)
}

// Close godoc
// @Summary Закрыть сессию
// @Description Удаляет сессию. Ответ, пришедший после закрытия, отбрасывается.
// @Tags Chat
// @Param id path string true "ID сессии (UUID)"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/chat/sessions/{id} [delete]
func (h *ChatHandler) Close(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.chatUC.Close(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func sessionID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"id": "must be a UUID",
		})
	}
	return id, nil
}
