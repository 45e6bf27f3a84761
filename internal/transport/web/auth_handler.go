package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/parts-shop/internal/domain"
	"github.com/fsdevblog/parts-shop/internal/service"
	"github.com/fsdevblog/parts-shop/internal/transport/web/render"
	"github.com/fsdevblog/parts-shop/internal/transport/web/session"
)

const (
	invalidCredentialsMessage = "Invalid email or password."
	fieldsRequiredMessage     = "All fields are required."
	emailTakenMessage         = "An account with that email already exists."
	accountCreatedMessage     = "Account created. Please log in."
)

type AuthHandler struct {
	userService UserServicer
	renderer    *render.Renderer
}

func NewAuthHandler(userService UserServicer, renderer *render.Renderer) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		renderer:    renderer,
	}
}

// Home GET "/". Лендинг без побочных эффектов.
func (h *AuthHandler) Home(c *gin.Context) {
	h.renderer.HTML(c, http.StatusOK, "index", render.Params{Title: "Home"})
}

// LoginForm GET LoginRoute.
func (h *AuthHandler) LoginForm(c *gin.Context) {
	h.renderer.HTML(c, http.StatusOK, "login", render.Params{Title: "User login"})
}

type userLoginParams struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

// Login POST LoginRoute. Неизвестный email и неверный пароль дают одно и то
// же сообщение: форма входа не должна позволять перебирать адреса.
func (h *AuthHandler) Login(c *gin.Context) {
	var params userLoginParams
	if bindErr := c.ShouldBind(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, loginErr := h.userService.Login(ctx, service.LoginUserArgs{
		Email:    params.Email,
		Password: params.Password,
	})
	if loginErr != nil {
		if errors.Is(loginErr, domain.ErrRecordNotFound) || errors.Is(loginErr, domain.ErrPasswordMissMatch) {
			h.renderer.HTML(c, http.StatusOK, "login", render.Params{
				Title:   "User login",
				Message: invalidCredentialsMessage,
			})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, loginErr).SetType(gin.ErrorTypePrivate)
		return
	}

	if sessErr := session.SetUser(c, user.ID); sessErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, sessErr).SetType(gin.ErrorTypePrivate)
		return
	}
	c.Redirect(http.StatusSeeOther, UserRouteGroup+UserDashboardRoute)
}

// SignupForm GET SignupRoute.
func (h *AuthHandler) SignupForm(c *gin.Context) {
	h.renderer.HTML(c, http.StatusOK, "signup", render.Params{Title: "Create account"})
}

type userSignupParams struct {
	Company  string `form:"company"`
	Email    string `form:"email"`
	Password string `form:"password"`
}

// Signup POST SignupRoute. Все три поля обязательны. Занятый email не
// создает запись. Успешная регистрация не аутентифицирует: юзер возвращается
// на форму входа с подтверждением.
func (h *AuthHandler) Signup(c *gin.Context) {
	var params userSignupParams
	if bindErr := c.ShouldBind(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	if params.Company == "" || params.Email == "" || params.Password == "" {
		h.renderer.HTML(c, http.StatusOK, "signup", render.Params{
			Title:   "Create account",
			Message: fieldsRequiredMessage,
		})
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	_, registerErr := h.userService.Register(ctx, service.RegisterUserArgs{
		Company:  params.Company,
		Email:    params.Email,
		Password: params.Password,
	})
	if registerErr != nil {
		if errors.Is(registerErr, domain.ErrDuplicateKey) {
			h.renderer.HTML(c, http.StatusOK, "signup", render.Params{
				Title:   "Create account",
				Message: emailTakenMessage,
			})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, registerErr).SetType(gin.ErrorTypePrivate)
		return
	}

	h.renderer.HTML(c, http.StatusOK, "login", render.Params{
		Title:   "User login",
		Message: accountCreatedMessage,
	})
}

// Logout GET LogoutRoute. Сессия уничтожается безусловно, даже если её не
// было.
func (h *AuthHandler) Logout(c *gin.Context) {
	if sessErr := session.Clear(c); sessErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, sessErr).SetType(gin.ErrorTypePrivate)
		return
	}
	c.Redirect(http.StatusSeeOther, HomeRoute)
}
