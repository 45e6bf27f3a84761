package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func statusErrorText(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad request"
	case http.StatusNotFound:
		return "not found"
	default:
		return "internal server error"
	}
}

// Errors закрывает запросы, завершившиеся ошибкой без ответа: ошибки
// персистентности не восстанавливаются на месте, клиент получает короткий
// текст, детали остаются в логе.
func Errors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		c.String(c.Writer.Status(), statusErrorText(c.Writer.Status()))
		c.Abort()
	}
}
