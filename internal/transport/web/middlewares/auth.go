package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/parts-shop/internal/transport/web/session"
)

const (
	CurrentUserIDKey  = "currentUserID"
	CurrentAdminIDKey = "currentAdminID"
)

// UserRequired пропускает только принципала-юзера и кладет его id в контекст
// gin (поле CurrentUserIDKey). Все остальные редиректятся на страницу входа:
// отказ в доступе это навигация, а не ошибка.
func UserRequired(loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := session.Current(c).(session.UserPrincipal)
		if !ok {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}
		c.Set(CurrentUserIDKey, principal.ID)
		c.Next()
	}
}

// AdminRequired пропускает только принципала-админа и кладет его id в
// контекст gin (поле CurrentAdminIDKey). Остальные редиректятся на админский
// вход.
func AdminRequired(loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := session.Current(c).(session.AdminPrincipal)
		if !ok {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}
		c.Set(CurrentAdminIDKey, principal.ID)
		c.Next()
	}
}
