package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"ether-community-telegram-bot/internal/domain"
)

// TopChartData возвращает метки и значения по порядку записей для построения графика
func TopChartData(records []domain.UserRecord) ([]string, []int64) {
	labels := make([]string, 0, len(records))
	values := make([]int64, 0, len(records))
	for _, rec := range records {
		labels = append(labels, chartLabel(rec))
		values = append(values, rec.MessageCount)
	}
	return labels, values
}

// TopText — текстовый запасной вариант, когда график построить не удалось
func TopText(records []domain.UserRecord) string {
	var b strings.Builder
	b.WriteString("Топ активности:\n")
	max := int64(0)
	for _, rec := range records {
		if rec.MessageCount > max {
			max = rec.MessageCount
		}
	}
	for i, rec := range records {
		fmt.Fprintf(&b, "%d. %s — %d (%s) %s\n", i+1, chartLabel(rec), rec.MessageCount, rec.RankLabel, bar20(rec.MessageCount, max))
	}
	return b.String()
}

func chartLabel(rec domain.UserRecord) string {
	if strings.TrimSpace(rec.DisplayName) != "" {
		return rec.DisplayName
	}
	return strconv.FormatInt(rec.UserID, 10)
}

func bar20(val, max int64) string {
	if max <= 0 {
		return ""
	}
	filled := int((20 * val) / max)
	if filled < 0 {
		filled = 0
	}
	if filled > 20 {
		filled = 20
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", 20-filled) + "]"
}
