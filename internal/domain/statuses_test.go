package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusRank(t *testing.T) {
	assert.Less(t, OrderStatusPending.Rank(), OrderStatusActive.Rank())
	assert.Less(t, OrderStatusActive.Rank(), OrderStatusComplete.Rank())
	assert.Less(t, OrderStatusComplete.Rank(), OrderStatusCancelled.Rank())

	// Неизвестный статус уходит в конец.
	assert.Greater(t, OrderStatusType("shipped").Rank(), OrderStatusCancelled.Rank())
}

func TestOrderStatusValid(t *testing.T) {
	for _, s := range []OrderStatusType{
		OrderStatusPending, OrderStatusActive, OrderStatusComplete, OrderStatusCancelled,
	} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, OrderStatusType("shipped").Valid())
	assert.False(t, OrderStatusType("").Valid())
}

func TestScopeOf(t *testing.T) {
	cases := []struct {
		status OrderStatusType
		want   OrderScope
	}{
		{OrderStatusPending, OrderScopeCurrent},
		{OrderStatusActive, OrderScopeCurrent},
		{OrderStatusComplete, OrderScopePrevious},
		{OrderStatusCancelled, OrderScopePrevious},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ScopeOf(c.status), string(c.status))
	}
}

func TestOrderScopeStatuses(t *testing.T) {
	// Каждый статус принадлежит ровно одному сегменту.
	seen := make(map[OrderStatusType]int)
	for _, sc := range []OrderScope{OrderScopeCurrent, OrderScopePrevious} {
		for _, s := range sc.Statuses() {
			seen[s]++
		}
	}

	assert.Len(t, seen, len(statusRanks))
	for s, n := range seen {
		assert.Equal(t, 1, n, string(s))
	}
}
