package weather

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"agro-forecast/clock"
	"agro-forecast/metrics"
	"agro-forecast/models"
	"agro-forecast/providers"
)

// MaxForecastDays верхняя граница горизонта, синтетика дальше года не строится
const MaxForecastDays = 365

var ErrInvalidDays = errors.New("количество дней должно быть от 1 до 365")

// Normalizer оборачивает провайдера и всегда отдает ровно запрошенное
// число дней: недостающее дополняется синтетикой, ошибки провайдера
// наружу не выходят.
type Normalizer struct {
	provider  providers.Provider
	generator *Generator
	clock     clock.Clock
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

// NewNormalizer provider может быть nil, тогда прогноз всегда синтетический
func NewNormalizer(provider providers.Provider, generator *Generator, c clock.Clock, logger *slog.Logger, m *metrics.Metrics) *Normalizer {
	if c == nil {
		c = clock.System{}
	}
	if generator == nil {
		generator = NewGenerator(c, nil)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Normalizer{
		provider:  provider,
		generator: generator,
		clock:     c,
		logger:    logger,
		metrics:   m,
	}
}

func (n *Normalizer) Forecast(ctx context.Context, loc models.Location, days int) ([]models.WeatherDay, error) {
	if days < 1 || days > MaxForecastDays {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDays, days)
	}

	forecast := n.fetch(ctx, loc, days)
	if len(forecast) == 0 {
		n.metrics.SyntheticDays(days)
		return n.generator.Generate(loc, clock.Today(n.clock), days, nil), nil
	}

	if missing := days - len(forecast); missing > 0 {
		last := forecast[len(forecast)-1]
		n.logger.Debug("padding forecast with synthetic days",
			"real", len(forecast),
			"synthetic", missing,
		)
		n.metrics.SyntheticDays(missing)
		forecast = append(forecast, n.generator.Generate(loc, last.Date.AddDate(0, 0, 1), missing, &last)...)
	}
	return forecast, nil
}

// fetch один запрос к провайдеру; пустой результат означает полный откат
func (n *Normalizer) fetch(ctx context.Context, loc models.Location, days int) []models.WeatherDay {
	if n.provider == nil || !n.provider.IsAvailable() || n.provider.MaxDays() < 1 {
		n.metrics.ProviderFallback("unavailable")
		return nil
	}

	request := days
	if limit := n.provider.MaxDays(); request > limit {
		request = limit
	}

	start := time.Now()
	forecast, err := n.provider.Forecast(ctx, loc.Latitude, loc.Longitude, request)
	n.metrics.ProviderRequest(time.Since(start))
	if err != nil {
		n.logger.Warn("weather provider failed, using synthetic data",
			"provider", n.provider.Name(),
			"days", days,
			"err", err,
		)
		n.metrics.ProviderFallback("error")
		return nil
	}

	forecast = sanitize(forecast, request)
	if len(forecast) == 0 {
		n.logger.Warn("weather provider returned no usable days",
			"provider", n.provider.Name(),
		)
		n.metrics.ProviderFallback("empty")
		return nil
	}
	return forecast
}

// sanitize приводит даты к полуночи UTC, сортирует, убирает повторы и
// обрезает ряд на первом пропуске, чтобы синтетика продолжила его без дыр
func sanitize(forecast []models.WeatherDay, limit int) []models.WeatherDay {
	days := make([]models.WeatherDay, len(forecast))
	copy(days, forecast)
	for i := range days {
		days[i].Date = clock.Day(days[i].Date)
	}
	sort.SliceStable(days, func(i, j int) bool { return days[i].Date.Before(days[j].Date) })

	out := make([]models.WeatherDay, 0, len(days))
	for _, d := range days {
		if len(out) == limit {
			break
		}
		if len(out) > 0 {
			prev := out[len(out)-1].Date
			if !d.Date.After(prev) {
				continue
			}
			if !d.Date.Equal(prev.AddDate(0, 0, 1)) {
				break
			}
		}
		out = append(out, d)
	}
	return out
}
