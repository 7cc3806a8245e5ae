package weather

import (
	"math"
	"time"

	"agro-forecast/clock"
	"agro-forecast/models"
	"agro-forecast/random"
)

// SyntheticSource метка синтетических дней в WeatherDay.Source
const SyntheticSource = "synthetic"

// начальная влажность почвы, если у предыдущего дня ее нет
const defaultSoilMoisture = 40

// Generator строит правдоподобную погоду только по широте и дате.
// Сезон берется из текущего месяца часов, а не из даты каждого дня.
type Generator struct {
	clock clock.Clock
	rand  random.Source
}

func NewGenerator(c clock.Clock, r random.Source) *Generator {
	if c == nil {
		c = clock.System{}
	}
	if r == nil {
		r = random.Global{}
	}
	return &Generator{clock: c, rand: r}
}

// Generate возвращает ровно days дней начиная со start. Если prev не nil,
// первый день продолжает его: влажность почвы и осадки связаны с prev.
func (g *Generator) Generate(loc models.Location, start time.Time, days int, prev *models.WeatherDay) []models.WeatherDay {
	if days <= 0 {
		return nil
	}

	c := climateFor(loc.Latitude, g.clock.Now().Month())
	start = clock.Day(start)

	forecast := make([]models.WeatherDay, 0, days)
	for i := 0; i < days; i++ {
		day := g.day(c, start.AddDate(0, 0, i), prev)
		forecast = append(forecast, day)
		prev = &forecast[len(forecast)-1]
	}
	return forecast
}

func (g *Generator) day(c climate, date time.Time, prev *models.WeatherDay) models.WeatherDay {
	// Температура: общий сдвиг ±3 для минимума и максимума
	tempVariation := g.rand.Float64()*6 - 3
	tMin := clamp(c.tempMin+tempVariation, -20, 45)
	tMax := clamp(c.tempMax+tempVariation, tMin+5, 50)

	// Осадки
	center := c.precipitation.probability
	if prev != nil && !prev.Synthetic {
		center = (center + prev.Precipitation.Probability) / 2
	}
	probability := clamp(center+g.rand.Float64()*0.4-0.2, 0, 1)
	amount := 0.0
	if probability > 0.3 {
		amount = c.precipitation.amount * (1 + g.rand.Float64() - 0.5)
	}

	condition := conditionFor(probability, amount, tMin)

	humidity := clamp(50+probability*30+g.rand.Float64()*20-10, 30, 100)
	wind := 5 + g.rand.Float64()*15

	// Влажность почвы: затухание от вчерашней плюс вчерашние осадки
	var soil float64
	if prev != nil {
		previous := float64(defaultSoilMoisture)
		if prev.SoilMoisture != nil {
			previous = *prev.SoilMoisture
		}
		soil = previous*0.9 + prev.Precipitation.Amount*3
	} else {
		soil = 40 + amount*3 + g.rand.Float64()*20 - 10
	}
	soil = math.Round(clamp(soil, 20, 100))

	tMin = round(tMin, 1)
	tMax = round(tMax, 1)

	return models.WeatherDay{
		Date: date,
		Temperature: models.Temperature{
			Min: tMin,
			Max: tMax,
			Avg: round((tMin+tMax)/2, 1),
		},
		Humidity: math.Round(humidity),
		Precipitation: models.Precipitation{
			Probability: round(probability, 2),
			Amount:      round(amount, 1),
		},
		WindSpeed:    round(wind, 1),
		Condition:    condition,
		UVIndex:      uvIndex(condition, c.season),
		SoilMoisture: &soil,
		Source:       SyntheticSource,
		Synthetic:    true,
	}
}

// conditionFor проверяет правила по приоритету: гроза, дождь, снег, облачно
func conditionFor(probability, amount, tMin float64) models.Condition {
	switch {
	case probability > 0.6 && amount > 5:
		return models.ConditionStormy
	case probability > 0.4 && amount > 0:
		return models.ConditionRainy
	case probability > 0.3 && tMin < 0:
		return models.ConditionSnowy
	case probability > 0.3:
		return models.ConditionCloudy
	case probability > 0.1:
		return models.ConditionPartlyCloudy
	default:
		return models.ConditionSunny
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
