package providers

import (
	"context"
	"math"

	"agro-forecast/models"
)

// Provider интерфейс для всех погодных провайдеров
type Provider interface {
	Name() string
	IsAvailable() bool
	// MaxDays максимальная глубина прогноза, которую отдает провайдер
	MaxDays() int
	// Forecast возвращает дневной прогноз начиная с сегодняшнего дня
	Forecast(ctx context.Context, lat, lon float64, days int) ([]models.WeatherDay, error)
}

// roundCoord округляет координату до 4 знаков, чтобы не плодить разные запросы
func roundCoord(v float64) float64 {
	return math.Round(v*10000) / 10000
}

func clampDays(days, max int) int {
	if days > max {
		return max
	}
	if days < 1 {
		return 1
	}
	return days
}
