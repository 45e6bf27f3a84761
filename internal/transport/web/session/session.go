// Package session хранит принципала текущего клиента в подписанной
// cookie-сессии. Роль выражена типом-суммой: сессия структурно не может
// держать одновременно и юзера и админа.
package session

import (
	"fmt"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Name имя cookie сессии.
const Name = "shopsess"

const (
	roleKey     = "role"
	identityKey = "identity"

	roleUser  = "user"
	roleAdmin = "admin"
)

// Principal описывает кто стоит за запросом. Ровно три реализации:
// Anonymous, UserPrincipal и AdminPrincipal.
type Principal interface {
	principal()
}

type Anonymous struct{}

type UserPrincipal struct {
	ID int64
}

type AdminPrincipal struct {
	ID int64
}

func (Anonymous) principal()      {}
func (UserPrincipal) principal()  {}
func (AdminPrincipal) principal() {}

// Current восстанавливает принципала из сессии. Любое несогласованное
// состояние (нет роли, нет идентификатора, чужой тип значения) читается как
// Anonymous.
func Current(c *gin.Context) Principal {
	sess := sessions.Default(c)

	role, roleOk := sess.Get(roleKey).(string)
	id, idOk := sess.Get(identityKey).(int64)
	if !roleOk || !idOk || id == 0 {
		return Anonymous{}
	}

	switch role {
	case roleUser:
		return UserPrincipal{ID: id}
	case roleAdmin:
		return AdminPrincipal{ID: id}
	}
	return Anonymous{}
}

// SetUser записывает в сессию принципала-юзера. Предыдущая роль, какой бы
// она ни была, перезаписывается.
func SetUser(c *gin.Context, id int64) error {
	return set(c, roleUser, id)
}

// SetAdmin записывает в сессию принципала-админа. Предыдущая роль
// перезаписывается.
func SetAdmin(c *gin.Context, id int64) error {
	return set(c, roleAdmin, id)
}

func set(c *gin.Context, role string, id int64) error {
	sess := sessions.Default(c)
	sess.Set(roleKey, role)
	sess.Set(identityKey, id)
	if err := sess.Save(); err != nil {
		return fmt.Errorf("saving session: %s", err.Error())
	}
	return nil
}

// Clear уничтожает сессию целиком: роль и идентификатор. Идемпотентна -
// очистка пустой сессии не ошибка.
func Clear(c *gin.Context) error {
	sess := sessions.Default(c)
	sess.Clear()
	sess.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := sess.Save(); err != nil {
		return fmt.Errorf("clearing session: %s", err.Error())
	}
	return nil
}
