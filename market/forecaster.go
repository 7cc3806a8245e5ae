// Package market прогнозирует цены товаров по сезонности, погоде и
// случайному рыночному шуму.
package market

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"agro-forecast/clock"
	"agro-forecast/knowledge"
	"agro-forecast/models"
	"agro-forecast/random"
	"agro-forecast/weather"
)

var ErrCommodityNotFound = errors.New("товар не найден")

const (
	DefaultForecastDays = 30

	// PriceFloor цена не опускается ниже этой доли от базовой
	PriceFloor = 0.7

	// пороги, после которых фактор попадает в объяснение прогноза
	seasonalThreshold = 0.05
	weatherThreshold  = 0.02

	shortStorageDays = 30

	factorStorage = "Limited storage life affecting supply"
)

type Forecaster struct {
	clock clock.Clock
	rand  random.Source
}

func NewForecaster(c clock.Clock, r random.Source) *Forecaster {
	if c == nil {
		c = clock.System{}
	}
	if r == nil {
		r = random.Global{}
	}
	return &Forecaster{clock: c, rand: r}
}

// Forecast прогноз на forecastDays дней для всех товаров или только для
// commodityID. Неизвестный явно заданный товар дает ErrCommodityNotFound.
func (f *Forecaster) Forecast(series []models.WeatherDay, profiles []knowledge.MarketProfile, forecastDays int, commodityID string) ([]models.MarketForecast, error) {
	summary, err := weather.Summarize(series)
	if err != nil {
		return nil, err
	}
	if forecastDays <= 0 {
		forecastDays = DefaultForecastDays
	}

	selected := profiles
	if commodityID != "" {
		selected = nil
		for _, p := range profiles {
			if p.ID == commodityID {
				selected = append(selected, p)
			}
		}
		if len(selected) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrCommodityNotFound, commodityID)
		}
	}

	forecasts := make([]models.MarketForecast, 0, len(selected))
	for _, p := range selected {
		forecasts = append(forecasts, f.forecast(p, summary, forecastDays))
	}
	return forecasts, nil
}

func (f *Forecaster) forecast(p knowledge.MarketProfile, s weather.Summary, days int) models.MarketForecast {
	today := clock.Today(f.clock)
	end := today.AddDate(0, 0, days)

	currentFactor := p.SeasonalFactor(today.Month())
	forecastFactor := p.SeasonalFactor(end.Month())
	base := decimal.NewFromFloat(p.BasePrice)
	current := base.Mul(decimal.NewFromFloat(currentFactor)).Round(0)

	tempImpact := (s.AvgTemperature - 25) * p.Sensitivity.Temperature / 10
	rainImpact := (s.TotalRainfall - 50) * p.Sensitivity.Rainfall / 100
	humidityImpact := (s.AvgHumidity - 60) * p.Sensitivity.Humidity / 100

	seasonalChange := forecastFactor - currentFactor
	noise := (f.rand.Float64() - 0.5) * p.Volatility * 0.2

	total := seasonalChange + tempImpact + rainImpact + humidityImpact + noise
	change := total * 100

	forecasted := current.Mul(decimal.NewFromFloat(1 + total)).Round(0)
	floor := base.Mul(decimal.NewFromFloat(PriceFloor)).Ceil()
	if forecasted.LessThan(floor) {
		forecasted = floor
	}

	return models.MarketForecast{
		CommodityID:           p.ID,
		CommodityName:         p.Name,
		CurrentPrice:          current.InexactFloat64(),
		ForecastedPrice:       forecasted.InexactFloat64(),
		PriceChangePercentage: change,
		ForecastPeriod:        models.Period{Start: today, End: end},
		Factors:               factors(p, s, days, end, seasonalChange, tempImpact, rainImpact),
		ConfidenceLevel:       Confidence(total),
		Recommendation:        Recommendation(p.Name, change),
	}
}

func factors(p knowledge.MarketProfile, s weather.Summary, days int, end time.Time, seasonal, temp, rain float64) []models.Factor {
	out := make([]models.Factor, 0, 4)

	if math.Abs(seasonal) > seasonalThreshold {
		name := fmt.Sprintf("Seasonal supply increase in %s", end.Month())
		if seasonal > 0 {
			name = fmt.Sprintf("Seasonal demand increase in %s", end.Month())
		}
		out = append(out, models.Factor{Name: name, Impact: direction(seasonal), Weight: math.Abs(seasonal) * 5})
	}

	if math.Abs(temp) > weatherThreshold {
		name := "Lower than optimal temperature"
		if s.AvgTemperature > 25 {
			name = "Higher than optimal temperature"
		}
		out = append(out, models.Factor{Name: name, Impact: direction(temp), Weight: math.Abs(temp) * 10})
	}

	if math.Abs(rain) > weatherThreshold {
		name := "Below average rainfall"
		if s.TotalRainfall > 50 {
			name = "Above average rainfall"
		}
		out = append(out, models.Factor{Name: name, Impact: direction(rain), Weight: math.Abs(rain) * 10})
	}

	// скоропортящийся товар не переживет горизонт прогноза на складе
	if p.StorageLifeDays < shortStorageDays && float64(days) > float64(p.StorageLifeDays)/2 {
		out = append(out, models.Factor{Name: factorStorage, Impact: models.DirectionPositive, Weight: 0.3})
	}
	return out
}

func direction(v float64) models.Direction {
	switch {
	case v > 0:
		return models.DirectionPositive
	case v < 0:
		return models.DirectionNegative
	default:
		return models.DirectionNeutral
	}
}

// Confidence падает с величиной прогнозируемого изменения
func Confidence(totalChange float64) float64 {
	return math.Max(0, math.Min(1, 0.7-math.Abs(totalChange)*0.2))
}

// Recommendation совет по продаже для изменения цены в процентах
func Recommendation(name string, change float64) string {
	switch {
	case change > 10:
		return fmt.Sprintf("Prices for %s are expected to rise significantly. Consider delaying sales if storage is available.", name)
	case change > 5:
		return fmt.Sprintf("Prices for %s are expected to rise moderately. Monitor market conditions closely.", name)
	case change < -10:
		return fmt.Sprintf("Prices for %s are expected to fall significantly. Consider selling soon or exploring value-added products.", name)
	case change < -5:
		return fmt.Sprintf("Prices for %s are expected to fall moderately. Consider forward contracts to lock in current prices.", name)
	default:
		return fmt.Sprintf("Prices for %s are expected to remain stable. Sell based on your storage capacity and quality considerations.", name)
	}
}
