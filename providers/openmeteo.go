package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"agro-forecast/models"
)

// OpenMeteoMaxDays предел Open-Meteo для дневного прогноза
const OpenMeteoMaxDays = 16

// значения по умолчанию, когда Open-Meteo не отдает параметр
const (
	defaultHumidity = 70
	defaultUVIndex  = 5
)

type OpenMeteoProvider struct {
	enabled bool
	client  *http.Client
	baseURL string
}

func NewOpenMeteoProvider(enabled bool) *OpenMeteoProvider {
	return &OpenMeteoProvider{
		enabled: enabled,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: "https://api.open-meteo.com/v1/forecast",
	}
}

func (p *OpenMeteoProvider) Name() string {
	return "Open-Meteo"
}

// IsAvailable Open-Meteo не требует ключа, его можно только выключить
func (p *OpenMeteoProvider) IsAvailable() bool {
	return p.enabled
}

func (p *OpenMeteoProvider) MaxDays() int {
	return OpenMeteoMaxDays
}

func (p *OpenMeteoProvider) Forecast(ctx context.Context, lat, lon float64, days int) ([]models.WeatherDay, error) {
	if !p.IsAvailable() {
		return nil, fmt.Errorf("провайдер %s отключен", p.Name())
	}
	days = clampDays(days, p.MaxDays())

	daily := []string{
		"temperature_2m_max",
		"temperature_2m_min",
		"precipitation_probability_max",
		"precipitation_sum",
		"windspeed_10m_max",
		"weathercode",
		"relative_humidity_2m_mean",
		"uv_index_max",
	}

	query := url.Values{}
	query.Set("latitude", strconv.FormatFloat(roundCoord(lat), 'f', 4, 64))
	query.Set("longitude", strconv.FormatFloat(roundCoord(lon), 'f', 4, 64))
	query.Set("daily", strings.Join(daily, ","))
	query.Set("timezone", "auto")
	query.Set("forecast_days", strconv.Itoa(days))

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
			Reason string `json:"reason"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiError); err == nil && apiError.Reason != "" {
			return nil, fmt.Errorf("ошибка Open-Meteo: %s", apiError.Reason)
		}
		return nil, fmt.Errorf("ошибка API: статус %d", resp.StatusCode)
	}

	// Парсим ответ; null приходит для дней без данных
	var result struct {
		Daily struct {
			Time        []string   `json:"time"`
			TempMax     []*float64 `json:"temperature_2m_max"`
			TempMin     []*float64 `json:"temperature_2m_min"`
			PrecipProb  []*float64 `json:"precipitation_probability_max"`
			PrecipSum   []*float64 `json:"precipitation_sum"`
			WindMax     []*float64 `json:"windspeed_10m_max"`
			WeatherCode []*int     `json:"weathercode"`
			Humidity    []*float64 `json:"relative_humidity_2m_mean"`
			UVIndex     []*float64 `json:"uv_index_max"`
		} `json:"daily"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("ошибка парсинга JSON: %w", err)
	}

	d := result.Daily
	if len(d.Time) == 0 {
		return nil, fmt.Errorf("нет данных о погоде")
	}

	forecast := make([]models.WeatherDay, 0, len(d.Time))
	for i, ts := range d.Time {
		date, err := time.Parse("2006-01-02", ts)
		if err != nil {
			return nil, fmt.Errorf("некорректная дата %q: %w", ts, err)
		}

		tMax, okMax := at(d.TempMax, i)
		tMin, okMin := at(d.TempMin, i)
		if !okMax || !okMin {
			// дальше этого дня данных нет, остаток дополнит синтетика
			break
		}

		prob, _ := at(d.PrecipProb, i)
		amount, _ := at(d.PrecipSum, i)
		wind, _ := at(d.WindMax, i)
		humidity, ok := at(d.Humidity, i)
		if !ok {
			humidity = defaultHumidity
		}
		uv, ok := at(d.UVIndex, i)
		if !ok {
			uv = defaultUVIndex
		}
		code := 0
		if i < len(d.WeatherCode) && d.WeatherCode[i] != nil {
			code = *d.WeatherCode[i]
		}

		forecast = append(forecast, models.WeatherDay{
			Date: date,
			Temperature: models.Temperature{
				Min: tMin,
				Max: tMax,
				Avg: (tMin + tMax) / 2,
			},
			Humidity: humidity,
			Precipitation: models.Precipitation{
				Probability: prob / 100,
				Amount:      amount,
			},
			WindSpeed: wind,
			Condition: conditionFromWMO(code),
			UVIndex:   uv,
			Source:    p.Name(),
		})
	}

	return forecast, nil
}

func at(values []*float64, i int) (float64, bool) {
	if i >= len(values) || values[i] == nil {
		return 0, false
	}
	return *values[i], true
}
