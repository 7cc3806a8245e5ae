package weather

import (
	"errors"

	"agro-forecast/models"
)

var ErrNoWeather = errors.New("нет данных о погоде")

// Summary агрегаты ряда, на которых строятся оценки культур и цен
type Summary struct {
	AvgTemperature float64 // средняя из Temperature.Avg, °C
	TotalRainfall  float64 // сумма осадков, мм
	AvgHumidity    float64
	Days           int
}

func Summarize(series []models.WeatherDay) (Summary, error) {
	if len(series) == 0 {
		return Summary{}, ErrNoWeather
	}

	var s Summary
	for _, day := range series {
		s.AvgTemperature += day.Temperature.Avg
		s.TotalRainfall += day.Precipitation.Amount
		s.AvgHumidity += day.Humidity
	}
	s.Days = len(series)
	s.AvgTemperature /= float64(s.Days)
	s.AvgHumidity /= float64(s.Days)
	return s, nil
}
