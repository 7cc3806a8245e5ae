package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"agro-forecast/models"
)

// OpenWeatherMaxDays One Call отдает 8 дней, включая сегодняшний
const OpenWeatherMaxDays = 8

type OpenWeatherProvider struct {
	apiKey  string
	client  *http.Client
	baseURL string
}

func NewOpenWeatherProvider(apiKey string) *OpenWeatherProvider {
	return &OpenWeatherProvider{
		apiKey: apiKey,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: "https://api.openweathermap.org/data/3.0/onecall",
	}
}

func (p *OpenWeatherProvider) Name() string {
	return "OpenWeatherMap"
}

func (p *OpenWeatherProvider) IsAvailable() bool {
	return p.apiKey != ""
}

func (p *OpenWeatherProvider) MaxDays() int {
	return OpenWeatherMaxDays
}

func (p *OpenWeatherProvider) Forecast(ctx context.Context, lat, lon float64, days int) ([]models.WeatherDay, error) {
	if !p.IsAvailable() {
		return nil, fmt.Errorf("провайдер %s не настроен", p.Name())
	}
	days = clampDays(days, p.MaxDays())

	// Формируем запрос
	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(roundCoord(lat), 'f', 4, 64))
	query.Set("lon", strconv.FormatFloat(roundCoord(lon), 'f', 4, 64))
	query.Set("exclude", "current,minutely,hourly,alerts")
	query.Set("appid", p.apiKey)
	query.Set("units", "metric") // метрическая система

	reqURL := fmt.Sprintf("%s?%s", p.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка HTTP запроса: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusUnauthorized {
			return nil, fmt.Errorf("неверный API ключ")
		}
		return nil, fmt.Errorf("ошибка API: статус %d", resp.StatusCode)
	}

	// Парсим ответ
	var result struct {
		TimezoneOffset int64 `json:"timezone_offset"`
		Daily          []struct {
			Dt   int64 `json:"dt"`
			Temp struct {
				Day float64 `json:"day"`
				Min float64 `json:"min"`
				Max float64 `json:"max"`
			} `json:"temp"`
			Humidity  float64 `json:"humidity"`
			WindSpeed float64 `json:"wind_speed"` // м/с
			Pop       float64 `json:"pop"`
			Rain      float64 `json:"rain"`
			Snow      float64 `json:"snow"`
			UVI       float64 `json:"uvi"`
			Weather   []struct {
				ID int `json:"id"`
			} `json:"weather"`
		} `json:"daily"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("ошибка парсинга JSON: %w", err)
	}

	if len(result.Daily) == 0 {
		return nil, fmt.Errorf("нет данных о погоде")
	}

	forecast := make([]models.WeatherDay, 0, days)
	for _, d := range result.Daily {
		if len(forecast) == days {
			break
		}
		// dt приходит в UTC, дату берем по местному времени точки
		local := time.Unix(d.Dt+result.TimezoneOffset, 0).UTC()
		date := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)

		condition := models.ConditionSunny
		if len(d.Weather) > 0 {
			condition = conditionFromOpenWeather(d.Weather[0].ID)
		}

		forecast = append(forecast, models.WeatherDay{
			Date: date,
			Temperature: models.Temperature{
				Min: d.Temp.Min,
				Max: d.Temp.Max,
				Avg: (d.Temp.Min + d.Temp.Max) / 2,
			},
			Humidity: d.Humidity,
			Precipitation: models.Precipitation{
				Probability: d.Pop,
				Amount:      d.Rain + d.Snow,
			},
			// Конвертируем скорость ветра из м/с в км/ч
			WindSpeed: d.WindSpeed * 3.6,
			Condition: condition,
			UVIndex:   d.UVI,
			Source:    p.Name(),
		})
	}

	return forecast, nil
}
