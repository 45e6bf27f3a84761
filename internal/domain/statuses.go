package domain

type OrderStatusType string

const (
	OrderStatusPending   OrderStatusType = "pending"
	OrderStatusActive    OrderStatusType = "active"
	OrderStatusComplete  OrderStatusType = "complete"
	OrderStatusCancelled OrderStatusType = "cancelled"
)

// statusRanks таблица приоритетов статусов. Используется сортировкой по
// статусу и любой будущей логикой упорядочивания.
var statusRanks = map[OrderStatusType]int{
	OrderStatusPending:   1,
	OrderStatusActive:    2,
	OrderStatusComplete:  3,
	OrderStatusCancelled: 4,
}

// Rank возвращает приоритет статуса. Неизвестный статус ранжируется после
// всех известных.
func (s OrderStatusType) Rank() int {
	if rank, ok := statusRanks[s]; ok {
		return rank
	}
	return len(statusRanks) + 1
}

// Valid сообщает, входит ли статус в допустимое перечисление.
func (s OrderStatusType) Valid() bool {
	_, ok := statusRanks[s]
	return ok
}

// OrderScope разбивает заказы на два непересекающихся сегмента:
// текущие (в работе) и завершенные.
type OrderScope string

const (
	OrderScopeCurrent  OrderScope = "current"
	OrderScopePrevious OrderScope = "previous"
)

// Statuses возвращает статусы принадлежащие сегменту.
func (sc OrderScope) Statuses() []OrderStatusType {
	if sc == OrderScopePrevious {
		return []OrderStatusType{OrderStatusCancelled, OrderStatusComplete}
	}
	return []OrderStatusType{OrderStatusPending, OrderStatusActive}
}

// ScopeOf возвращает сегмент которому принадлежит статус.
func ScopeOf(s OrderStatusType) OrderScope {
	switch s {
	case OrderStatusPending, OrderStatusActive:
		return OrderScopeCurrent
	case OrderStatusComplete, OrderStatusCancelled:
		return OrderScopePrevious
	}
	return OrderScopePrevious
}

// OrderSortKey ключ сортировки заказов в админской выборке.
type OrderSortKey string

const (
	OrderSortByDate    OrderSortKey = "date"
	OrderSortByCompany OrderSortKey = "company"
	OrderSortByStatus  OrderSortKey = "status"
)
