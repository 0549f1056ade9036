package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

// Recovery - перехват паники в обработчике. Паника пишется в лог вместе с request id,
// клиент получает 500 через общий обработчик ошибок.
func Recovery(logger *zap.Logger) fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			fields := []zap.Field{
				zap.String("method", utils.CopyString(c.Method())),
				zap.String("path", utils.CopyString(c.Path())),
				zap.String("panic", fmt.Sprint(e)),
				zap.Stack("stack"),
			}
			if rid, ok := c.Locals("requestid").(string); ok {
				fields = append(fields, zap.String("request_id", utils.CopyString(rid)))
			}
			logger.Error("Panic recovered", fields...)
		},
	})
}
