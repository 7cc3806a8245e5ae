package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// maxForecastDays совпадает с пределом нормализатора погоды
const maxForecastDays = 365

type Config struct {
	OpenWeatherAPIKey string
	WeatherAPIKey     string
	OpenMeteoEnabled  bool
	ServerPort        string
	CacheDuration     int // минуты, 0 отключает кеш
	LogLevel          string
	DatabasePath      string
	KafkaBrokers      []string
	KafkaTopic        string
	ForecastDays      int
}

// Load ключи провайдеров необязательны: без них работает Open-Meteo,
// а в крайнем случае синтетическая погода
func Load() (*Config, error) {
	// Загружаем .env файл если существует
	godotenv.Load()

	config := &Config{
		OpenWeatherAPIKey: getEnv("OPENWEATHER_API_KEY", ""),
		WeatherAPIKey:     getEnv("WEATHERAPI_API_KEY", ""),
		OpenMeteoEnabled:  getEnvAsBool("OPEN_METEO_ENABLED", true),
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		CacheDuration:     getEnvAsInt("CACHE_DURATION", 10),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		DatabasePath:      getEnv("DATABASE_PATH", "agro.db"),
		KafkaBrokers:      getEnvAsList("KAFKA_BROKERS"),
		KafkaTopic:        getEnv("KAFKA_ADVISORY_TOPIC", "advisories"),
		ForecastDays:      getEnvAsInt("FORECAST_DAYS", 30),
	}

	if config.ForecastDays < 1 || config.ForecastDays > maxForecastDays {
		return nil, fmt.Errorf("FORECAST_DAYS должен быть от 1 до %d, получено %d", maxForecastDays, config.ForecastDays)
	}
	if config.CacheDuration < 0 {
		return nil, fmt.Errorf("CACHE_DURATION не может быть отрицательным, получено %d", config.CacheDuration)
	}

	return config, nil
}

// SlogLevel уровень журнала из LOG_LEVEL, неизвестное значение дает info
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return boolValue
}

func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, ""), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
