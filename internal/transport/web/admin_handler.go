package web

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/parts-shop/internal/domain"
	"github.com/fsdevblog/parts-shop/internal/service"
	"github.com/fsdevblog/parts-shop/internal/transport/web/render"
	"github.com/fsdevblog/parts-shop/internal/transport/web/session"
)

const (
	invalidAdminCredentialsMessage = "Invalid credentials."
	adminNotFoundMessage           = "Admin not found."
	passwordUpdatedMessage         = "Password updated. Please log in."
)

type AdminHandler struct {
	adminService AdminServicer
	userService  UserServicer
	orderService OrderServicer
	renderer     *render.Renderer
}

func NewAdminHandler(
	adminService AdminServicer,
	userService UserServicer,
	orderService OrderServicer,
	renderer *render.Renderer,
) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		userService:  userService,
		orderService: orderService,
		renderer:     renderer,
	}
}

// LoginForm GET AdminRouteGroup + AdminLoginRoute.
func (h *AdminHandler) LoginForm(c *gin.Context) {
	h.renderer.HTML(c, http.StatusOK, "admin_login", render.Params{Title: "Admin login"})
}

type adminLoginParams struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// Login POST AdminRouteGroup + AdminLoginRoute. Как и у юзеров, неизвестный
// юзернейм и неверный пароль неразличимы в ответе.
func (h *AdminHandler) Login(c *gin.Context) {
	var params adminLoginParams
	if bindErr := c.ShouldBind(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	admin, loginErr := h.adminService.Login(ctx, service.LoginAdminArgs{
		Username: params.Username,
		Password: params.Password,
	})
	if loginErr != nil {
		if errors.Is(loginErr, domain.ErrRecordNotFound) || errors.Is(loginErr, domain.ErrPasswordMissMatch) {
			h.renderer.HTML(c, http.StatusOK, "admin_login", render.Params{
				Title:   "Admin login",
				Message: invalidAdminCredentialsMessage,
			})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, loginErr).SetType(gin.ErrorTypePrivate)
		return
	}

	if sessErr := session.SetAdmin(c, admin.ID); sessErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, sessErr).SetType(gin.ErrorTypePrivate)
		return
	}
	c.Redirect(http.StatusSeeOther, AdminRouteGroup+AdminDashboardRoute)
}

type adminResetParams struct {
	Username    string `form:"username"`
	NewPassword string `form:"new_password"`
}

// ResetPassword POST AdminRouteGroup + AdminResetRoute. Самообслуживаемое
// восстановление: старый пароль не запрашивается, достаточно знать юзернейм.
func (h *AdminHandler) ResetPassword(c *gin.Context) {
	var params adminResetParams
	if bindErr := c.ShouldBind(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	_, resetErr := h.adminService.ResetPassword(ctx, service.ResetPasswordArgs{
		Username:    params.Username,
		NewPassword: params.NewPassword,
	})
	if resetErr != nil {
		if errors.Is(resetErr, domain.ErrRecordNotFound) {
			h.renderer.HTML(c, http.StatusOK, "admin_login", render.Params{
				Title:   "Admin login",
				Message: adminNotFoundMessage,
			})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, resetErr).SetType(gin.ErrorTypePrivate)
		return
	}

	h.renderer.HTML(c, http.StatusOK, "admin_login", render.Params{
		Title:   "Admin login",
		Message: passwordUpdatedMessage,
	})
}

// Dashboard GET AdminRouteGroup + AdminDashboardRoute. Статическая страница.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	h.renderer.HTML(c, http.StatusOK, "admin_dashboard", render.Params{Title: "Admin dashboard"})
}

type adminOrdersData struct {
	Orders []OrderView `json:"orders"`
}

// Orders GET AdminRouteGroup + AdminOrdersRoute. Параметр type выбирает
// сегмент: previous - завершенные, всё остальное - текущие.
func (h *AdminHandler) Orders(c *gin.Context) {
	scope := domain.OrderScopeCurrent
	title := "Current orders"
	if c.Query("type") == string(domain.OrderScopePrevious) {
		scope = domain.OrderScopePrevious
		title = "Previous orders"
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	orders, ordersErr := h.orderService.GetByScope(ctx, scope)
	if ordersErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, ordersErr).SetType(gin.ErrorTypePrivate)
		return
	}

	h.renderer.HTML(c, http.StatusOK, "admin_orders", render.Params{
		Title: title,
		Data:  adminOrdersData{Orders: newOrderViews(orders)},
	})
}

type adminUsersData struct {
	Users []UserView `json:"users"`
}

// Users GET AdminRouteGroup + AdminUsersRoute. Все юзеры, новые первыми.
func (h *AdminHandler) Users(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	users, usersErr := h.userService.GetAll(ctx)
	if usersErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, usersErr).SetType(gin.ErrorTypePrivate)
		return
	}

	h.renderer.HTML(c, http.StatusOK, "admin_users", render.Params{
		Title: "Standard users",
		Data:  adminUsersData{Users: newUserViews(users)},
	})
}

// Sort GET AdminRouteGroup + AdminSortRoute. Ключ сортировки передается
// параметром by, по умолчанию и для неизвестных значений - по дате.
func (h *AdminHandler) Sort(c *gin.Context) {
	key := domain.OrderSortKey(c.DefaultQuery("by", string(domain.OrderSortByDate)))

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	orders, ordersErr := h.orderService.GetAllSorted(ctx, key)
	if ordersErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, ordersErr).SetType(gin.ErrorTypePrivate)
		return
	}

	h.renderer.HTML(c, http.StatusOK, "admin_sort", render.Params{
		Title: "Sort orders",
		Data:  adminOrdersData{Orders: newOrderViews(orders)},
	})
}

type adminUpdateOrderData struct {
	Orders   []OrderView `json:"orders"`
	Selected *OrderView  `json:"selected"`
}

// UpdateOrderForm GET AdminRouteGroup + AdminUpdateOrderRoute. Все заказы
// новые-первыми; параметр order_id дополнительно подгружает выбранный заказ.
// Несуществующий или нечисловой order_id просто не дает выбранного заказа.
func (h *AdminHandler) UpdateOrderForm(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	orders, ordersErr := h.orderService.GetAllSorted(ctx, domain.OrderSortByDate)
	if ordersErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, ordersErr).SetType(gin.ErrorTypePrivate)
		return
	}

	data := adminUpdateOrderData{Orders: newOrderViews(orders)}

	if rawID := c.Query("order_id"); rawID != "" {
		if orderID, parseErr := strconv.ParseInt(rawID, 10, 64); parseErr == nil {
			selected, findErr := h.orderService.FindDetailByID(ctx, orderID)
			switch {
			case findErr == nil:
				view := newOrderView(*selected)
				data.Selected = &view
			case !errors.Is(findErr, domain.ErrRecordNotFound):
				_ = c.AbortWithError(http.StatusInternalServerError, findErr).SetType(gin.ErrorTypePrivate)
				return
			}
		}
	}

	h.renderer.HTML(c, http.StatusOK, "admin_update_order", render.Params{
		Title: "Update orders",
		Data:  data,
	})
}

type updateOrderParams struct {
	Status string `form:"status"`
}

// UpdateOrder POST AdminRouteGroup + AdminUpdateOrderRoute + "/:id".
// Статус вне перечисления {pending, active, complete, cancelled} молча
// редиректит обратно без изменений - ни status ни updated_at не трогаются.
// Успешное обновление редиректит с выбранным заказом, чтобы админ сразу
// увидел новое состояние.
func (h *AdminHandler) UpdateOrder(c *gin.Context) {
	backPath := AdminRouteGroup + AdminUpdateOrderRoute

	orderID, idErr := strconv.ParseInt(c.Param("id"), 10, 64)
	if idErr != nil {
		c.Redirect(http.StatusSeeOther, backPath)
		return
	}

	var params updateOrderParams
	if bindErr := c.ShouldBind(&params); bindErr != nil {
		c.Redirect(http.StatusSeeOther, backPath)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	_, updErr := h.orderService.UpdateStatus(ctx, orderID, domain.OrderStatusType(params.Status))
	if updErr != nil {
		if errors.Is(updErr, domain.ErrInvalidOrderStatus) || errors.Is(updErr, domain.ErrRecordNotFound) {
			c.Redirect(http.StatusSeeOther, backPath)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, updErr).SetType(gin.ErrorTypePrivate)
		return
	}

	c.Redirect(http.StatusSeeOther, backPath+"?order_id="+strconv.FormatInt(orderID, 10))
}
