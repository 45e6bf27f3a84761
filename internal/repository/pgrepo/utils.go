package pgrepo

import (
	"fmt"
	"math"
	"strings"
)

// safeConvertUintToInt32 безопасно конвертирует uint в int32. В случае выхода
// значения за рамки диапазона выбрасывает ошибку.
func safeConvertUintToInt32(val uint) (int32, error) {
	if val > uint(math.MaxInt32) {
		return 0, fmt.Errorf("value is out of range: %d", val)
	}
	return int32(val), nil
}

// joinedColumns превращает список колонок "a, b, c" в "o.a, o.b, o.c" для
// запросов с джойнами. Алиас таблицы заказов в таких запросах всегда "o".
func joinedColumns(columns string) string {
	parts := strings.Split(columns, ", ")
	for i, col := range parts {
		parts[i] = "o." + col
	}
	return strings.Join(parts, ", ")
}
