package web

import (
	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/parts-shop/internal/transport/web/middlewares"
)

// currentUserID берет из контекста gin ID текущего юзера. ID устанавливается
// в middlewares.UserRequired. Если значения нет или тип не совпал - вернется 0.
func currentUserID(c *gin.Context) int64 {
	raw, exist := c.Get(middlewares.CurrentUserIDKey)
	if !exist {
		return 0
	}
	userID, ok := raw.(int64)
	if !ok {
		return 0
	}
	return userID
}
