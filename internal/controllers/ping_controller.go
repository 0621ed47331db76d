package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PingController контроллер для проверки работоспособности сервиса.
type PingController struct {
	conn ConnectionChecker // Проверяет соединение с хранилищем
}

func NewPingController(conn ConnectionChecker) *PingController {
	return &PingController{conn: conn}
}

// Ping обрабатывает GET /ping запрос.
//
// В случае успеха возвращает:
//   - HTTP 200 OK с телом "pong"
//
// В случае недоступности хранилища возвращает:
//   - HTTP 500 Internal Server Error
func (c *PingController) Ping(ctx *gin.Context) {
	pingCtx, cancel := requestContext(ctx)
	defer cancel()
	if err := c.conn.CheckConnection(pingCtx); err != nil {
		_ = ctx.Error(fmt.Errorf("ping error: %w", err))
		ctx.Status(http.StatusInternalServerError)
		return
	}
	ctx.String(http.StatusOK, "pong")
}
