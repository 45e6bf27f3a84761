package web

import (
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/parts-shop/internal/transport/web/middlewares"
	"github.com/fsdevblog/parts-shop/internal/transport/web/render"
	"github.com/fsdevblog/parts-shop/internal/transport/web/session"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	HomeRoute   = "/"
	LoginRoute  = "/login"
	SignupRoute = "/signup"
	LogoutRoute = "/logout"

	UserRouteGroup     = "/user"
	UserDashboardRoute = "/dashboard"
	UserAccountRoute   = "/account"
	UserOrderRoute     = "/order"
	UserOrdersRoute    = "/orders"

	AdminRouteGroup       = "/admin"
	AdminLoginRoute       = "/login"
	AdminResetRoute       = "/reset"
	AdminDashboardRoute   = "/dashboard"
	AdminOrdersRoute      = "/orders"
	AdminUsersRoute       = "/users"
	AdminSortRoute        = "/sort"
	AdminUpdateOrderRoute = "/update-order"
)

type RouterArgs struct {
	Logger        *logrus.Logger
	UserService   UserServicer
	AdminService  AdminServicer
	PartService   PartServicer
	OrderService  OrderServicer
	Renderer      *render.Renderer
	SessionSecret []byte
}

func New(args RouterArgs) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())
	r.Use(sessions.Sessions(session.Name, cookie.NewStore(args.SessionSecret)))

	authHandler := NewAuthHandler(args.UserService, args.Renderer)
	userHandler := NewUserHandler(args.UserService, args.PartService, args.OrderService, args.Renderer)
	adminHandler := NewAdminHandler(args.AdminService, args.UserService, args.OrderService, args.Renderer)

	r.GET(HomeRoute, authHandler.Home)
	r.GET(LoginRoute, authHandler.LoginForm)
	r.POST(LoginRoute, authHandler.Login)
	r.GET(SignupRoute, authHandler.SignupForm)
	r.POST(SignupRoute, authHandler.Signup)
	r.GET(LogoutRoute, authHandler.Logout)

	user := r.Group(UserRouteGroup)
	user.Use(middlewares.UserRequired(LoginRoute))
	user.GET(UserDashboardRoute, userHandler.Dashboard)
	user.GET(UserAccountRoute, userHandler.Account)
	user.GET(UserOrderRoute, userHandler.OrderForm)
	user.POST(UserOrderRoute, userHandler.OrderSubmit)
	user.GET(UserOrdersRoute, userHandler.Orders)

	admin := r.Group(AdminRouteGroup)
	admin.GET(AdminLoginRoute, adminHandler.LoginForm)
	admin.POST(AdminLoginRoute, adminHandler.Login)
	admin.POST(AdminResetRoute, adminHandler.ResetPassword)

	admin.Use(middlewares.AdminRequired(AdminRouteGroup + AdminLoginRoute))
	// ниже все роуты группы требуют авторизованного админа.
	admin.GET(AdminDashboardRoute, adminHandler.Dashboard)
	admin.GET(AdminOrdersRoute, adminHandler.Orders)
	admin.GET(AdminUsersRoute, adminHandler.Users)
	admin.GET(AdminSortRoute, adminHandler.Sort)
	admin.GET(AdminUpdateOrderRoute, adminHandler.UpdateOrderForm)
	admin.POST(AdminUpdateOrderRoute+"/:id", adminHandler.UpdateOrder)

	return r
}
