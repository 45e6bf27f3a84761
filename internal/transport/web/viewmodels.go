package web

import (
	"github.com/fsdevblog/parts-shop/internal/domain"
)

const dateTimeLayout = "2006-01-02 15:04"
const amountDecimals = 2

// Вьюмодели сериализуются в слот данных лейаута и читаются клиентским
// скриптом, поэтому json-теги повторяют имена полей из него.

type PartView struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

type OrderView struct {
	ID        int64  `json:"id"`
	PartName  string `json:"part_name"`
	Quantity  int32  `json:"quantity"`
	Amount    string `json:"amount"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
	Email     string `json:"email,omitempty"`
	Company   string `json:"company,omitempty"`
}

type UserView struct {
	ID        int64  `json:"id"`
	Company   string `json:"company"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

func newPartViews(parts []domain.Part) []PartView {
	views := make([]PartView, len(parts))
	for i, part := range parts {
		views[i] = PartView{
			ID:          part.ID,
			Name:        part.Name,
			Description: part.Description,
			Price:       part.Price.StringFixed(amountDecimals),
		}
	}
	return views
}

func newOrderView(detail domain.OrderDetail) OrderView {
	return OrderView{
		ID:        detail.ID,
		PartName:  detail.PartName,
		Quantity:  detail.Quantity,
		Amount:    detail.Amount.StringFixed(amountDecimals),
		Status:    string(detail.Status),
		CreatedAt: detail.CreatedAt.Format(dateTimeLayout),
		UpdatedAt: detail.UpdatedAt.Format(dateTimeLayout),
		Email:     detail.UserEmail,
		Company:   detail.UserCompany,
	}
}

func newOrderViews(details []domain.OrderDetail) []OrderView {
	views := make([]OrderView, len(details))
	for i, detail := range details {
		views[i] = newOrderView(detail)
	}
	return views
}

func newUserViews(users []domain.User) []UserView {
	views := make([]UserView, len(users))
	for i, user := range users {
		views[i] = UserView{
			ID:        user.ID,
			Company:   user.Company,
			Email:     user.Email,
			CreatedAt: user.CreatedAt.Format(dateTimeLayout),
		}
	}
	return views
}
