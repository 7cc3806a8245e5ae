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

// WeatherAPIMaxDays предел forecast.json для платных тарифов
const WeatherAPIMaxDays = 14

type WeatherAPIProvider struct {
	apiKey  string
	client  *http.Client
	baseURL string
}

func NewWeatherAPIProvider(apiKey string) *WeatherAPIProvider {
	return &WeatherAPIProvider{
		apiKey: apiKey,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: "https://api.weatherapi.com/v1/forecast.json",
	}
}

func (p *WeatherAPIProvider) Name() string {
	return "WeatherAPI"
}

func (p *WeatherAPIProvider) IsAvailable() bool {
	return p.apiKey != ""
}

func (p *WeatherAPIProvider) MaxDays() int {
	return WeatherAPIMaxDays
}

func (p *WeatherAPIProvider) Forecast(ctx context.Context, lat, lon float64, days int) ([]models.WeatherDay, error) {
	if !p.IsAvailable() {
		return nil, fmt.Errorf("провайдер %s не настроен", p.Name())
	}
	days = clampDays(days, p.MaxDays())

	// Формируем запрос
	query := url.Values{}
	query.Set("key", p.apiKey)
	query.Set("q", fmt.Sprintf("%.4f,%.4f", roundCoord(lat), roundCoord(lon)))
	query.Set("days", strconv.Itoa(days))
	query.Set("aqi", "no")
	query.Set("alerts", "no")

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
		var apiError struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}

		if err := json.NewDecoder(resp.Body).Decode(&apiError); err == nil && apiError.Error.Message != "" {
			return nil, fmt.Errorf("ошибка WeatherAPI: %s", apiError.Error.Message)
		}

		return nil, fmt.Errorf("ошибка API: статус %d", resp.StatusCode)
	}

	// Парсим ответ
	var result struct {
		Forecast struct {
			ForecastDay []struct {
				Date string `json:"date"`
				Day  struct {
					MaxTempC      float64 `json:"maxtemp_c"`
					MinTempC      float64 `json:"mintemp_c"`
					AvgTempC      float64 `json:"avgtemp_c"`
					MaxWindKph    float64 `json:"maxwind_kph"`
					TotalPrecipMM float64 `json:"totalprecip_mm"`
					AvgHumidity   float64 `json:"avghumidity"`
					ChanceOfRain  float64 `json:"daily_chance_of_rain"`
					ChanceOfSnow  float64 `json:"daily_chance_of_snow"`
					UV            float64 `json:"uv"`
					Condition     struct {
						Code int `json:"code"`
					} `json:"condition"`
				} `json:"day"`
			} `json:"forecastday"`
		} `json:"forecast"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("ошибка парсинга JSON: %w", err)
	}

	if len(result.Forecast.ForecastDay) == 0 {
		return nil, fmt.Errorf("нет данных о погоде")
	}

	forecast := make([]models.WeatherDay, 0, len(result.Forecast.ForecastDay))
	for _, fd := range result.Forecast.ForecastDay {
		date, err := time.Parse("2006-01-02", fd.Date)
		if err != nil {
			return nil, fmt.Errorf("некорректная дата %q: %w", fd.Date, err)
		}

		chance := fd.Day.ChanceOfRain
		if fd.Day.ChanceOfSnow > chance {
			chance = fd.Day.ChanceOfSnow
		}

		forecast = append(forecast, models.WeatherDay{
			Date: date,
			Temperature: models.Temperature{
				Min: fd.Day.MinTempC,
				Max: fd.Day.MaxTempC,
				Avg: fd.Day.AvgTempC,
			},
			Humidity: fd.Day.AvgHumidity,
			Precipitation: models.Precipitation{
				Probability: chance / 100,
				Amount:      fd.Day.TotalPrecipMM,
			},
			WindSpeed: fd.Day.MaxWindKph,
			Condition: conditionFromWeatherAPI(fd.Day.Condition.Code),
			UVIndex:   fd.Day.UV,
			Source:    p.Name(),
		})
	}

	return forecast, nil
}
