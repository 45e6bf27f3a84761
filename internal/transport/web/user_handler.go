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
)

const invalidPartMessage = "Invalid part selected."

// dashboardOrdersLimit кол-во последних заказов на дашборде.
const dashboardOrdersLimit uint = 10

type UserHandler struct {
	userService  UserServicer
	partService  PartServicer
	orderService OrderServicer
	renderer     *render.Renderer
}

func NewUserHandler(
	userService UserServicer,
	partService PartServicer,
	orderService OrderServicer,
	renderer *render.Renderer,
) *UserHandler {
	return &UserHandler{
		userService:  userService,
		partService:  partService,
		orderService: orderService,
		renderer:     renderer,
	}
}

type dashboardData struct {
	Company string      `json:"company"`
	Email   string      `json:"email"`
	Orders  []OrderView `json:"orders"`
}

// Dashboard GET UserRouteGroup + UserDashboardRoute. Компания/email текущего
// юзера и его десять последних заказов любого статуса.
func (h *UserHandler) Dashboard(c *gin.Context) {
	userID := currentUserID(c)

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, userErr := h.userService.GetByID(ctx, userID)
	if userErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, userErr).SetType(gin.ErrorTypePrivate)
		return
	}

	orders, ordersErr := h.orderService.RecentByUserID(ctx, userID, dashboardOrdersLimit)
	if ordersErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, ordersErr).SetType(gin.ErrorTypePrivate)
		return
	}

	h.renderer.HTML(c, http.StatusOK, "dashboard", render.Params{
		Title: "User dashboard",
		Data: dashboardData{
			Company: user.Company,
			Email:   user.Email,
			Orders:  newOrderViews(orders),
		},
	})
}

type accountData struct {
	Company string `json:"company"`
	Email   string `json:"email"`
}

// Account GET UserRouteGroup + UserAccountRoute.
func (h *UserHandler) Account(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, userErr := h.userService.GetByID(ctx, currentUserID(c))
	if userErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, userErr).SetType(gin.ErrorTypePrivate)
		return
	}

	h.renderer.HTML(c, http.StatusOK, "account", render.Params{
		Title: "Account",
		Data:  accountData{Company: user.Company, Email: user.Email},
	})
}

type orderFormData struct {
	Parts []PartView `json:"parts"`
}

// OrderForm GET UserRouteGroup + UserOrderRoute. Каталог деталей по имени по
// возрастанию.
func (h *UserHandler) OrderForm(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	parts, partsErr := h.partService.GetAll(ctx)
	if partsErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, partsErr).SetType(gin.ErrorTypePrivate)
		return
	}

	h.renderer.HTML(c, http.StatusOK, "order", render.Params{
		Title: "Order parts",
		Data:  orderFormData{Parts: newPartViews(parts)},
	})
}

type orderSubmitParams struct {
	PartID   string `form:"part_id"`
	Quantity string `form:"quantity"`
}

// OrderSubmit POST UserRouteGroup + UserOrderRoute. Количество ниже единицы
// или нечисловое поднимается до единицы, сумма считается по цене детали в
// момент оформления, заказ создается в статусе pending. Платежные поля формы
// (card_number, expiry, cvc) принимаются, но намеренно никуда не идут.
func (h *UserHandler) OrderSubmit(c *gin.Context) {
	var params orderSubmitParams
	if bindErr := c.ShouldBind(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	partID, partIDErr := strconv.ParseInt(params.PartID, 10, 64)
	if partIDErr != nil {
		h.renderInvalidPart(c, ctx)
		return
	}

	quantity, quantityErr := strconv.ParseInt(params.Quantity, 10, 32)
	if quantityErr != nil {
		quantity = 1
	}

	_, checkoutErr := h.orderService.Checkout(ctx, service.CheckoutArgs{
		UserID:   currentUserID(c),
		PartID:   partID,
		Quantity: int32(quantity),
	})
	if checkoutErr != nil {
		if errors.Is(checkoutErr, domain.ErrRecordNotFound) {
			h.renderInvalidPart(c, ctx)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, checkoutErr).SetType(gin.ErrorTypePrivate)
		return
	}

	c.Redirect(http.StatusSeeOther, UserRouteGroup+UserDashboardRoute)
}

// renderInvalidPart перерисовывает форму заказа с полным списком деталей и
// сообщением о неверной детали.
func (h *UserHandler) renderInvalidPart(c *gin.Context, ctx context.Context) {
	parts, partsErr := h.partService.GetAll(ctx)
	if partsErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, partsErr).SetType(gin.ErrorTypePrivate)
		return
	}
	h.renderer.HTML(c, http.StatusOK, "order", render.Params{
		Title:   "Order parts",
		Message: invalidPartMessage,
		Data:    orderFormData{Parts: newPartViews(parts)},
	})
}

type ordersData struct {
	Current  []OrderView `json:"current"`
	Previous []OrderView `json:"previous"`
}

// Orders GET UserRouteGroup + UserOrdersRoute. История заказов юзера,
// разбитая на текущие и завершенные, оба списка новые-первыми.
func (h *UserHandler) Orders(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	history, historyErr := h.orderService.HistoryByUserID(ctx, currentUserID(c))
	if historyErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, historyErr).SetType(gin.ErrorTypePrivate)
		return
	}

	h.renderer.HTML(c, http.StatusOK, "orders", render.Params{
		Title: "Your orders",
		Data: ordersData{
			Current:  newOrderViews(history.Current),
			Previous: newOrderViews(history.Previous),
		},
	})
}
