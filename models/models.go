package models

import (
	"time"
)

// Location географическая точка пользователя или поля
type Location struct {
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
	Address   string  `json:"address,omitempty" db:"address"`
}

// Condition категория погоды за день
type Condition string

const (
	ConditionSunny        Condition = "sunny"
	ConditionPartlyCloudy Condition = "partly_cloudy"
	ConditionCloudy       Condition = "cloudy"
	ConditionRainy        Condition = "rainy"
	ConditionStormy       Condition = "stormy"
	ConditionSnowy        Condition = "snowy"
)

// Temperature дневная температура в градусах Цельсия
type Temperature struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	Avg float64 `json:"avg"`
}

// Precipitation осадки: вероятность 0-1 и количество в мм
type Precipitation struct {
	Probability float64 `json:"probability"`
	Amount      float64 `json:"amount"`
}

// WeatherDay содержит прогноз на один календарный день (UTC)
type WeatherDay struct {
	Date          time.Time     `json:"date"`
	Temperature   Temperature   `json:"temperature"`
	Humidity      float64       `json:"humidity"`   // влажность %
	Precipitation Precipitation `json:"precipitation"`
	WindSpeed     float64       `json:"wind_speed"` // км/ч
	Condition     Condition     `json:"condition"`
	UVIndex       float64       `json:"uv_index"`
	SoilMoisture  *float64      `json:"soil_moisture,omitempty"` // влажность почвы %
	Source        string        `json:"source"`
	Synthetic     bool          `json:"synthetic"`
}

// ErrorResponse структура для ошибок
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
