package aggregator

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"agro-forecast/clock"
	"agro-forecast/models"
	"agro-forecast/providers"
)

// Aggregator опрашивает несколько провайдеров и сводит их прогнозы по датам.
// Сам реализует providers.Provider, поэтому нормализатор не знает, сколько
// источников за ним стоит.
type Aggregator struct {
	providers []providers.Provider
	cache     map[string]cacheEntry
	cacheMu   sync.RWMutex
	cacheTTL  time.Duration
	clock     clock.Clock
}

type cacheEntry struct {
	data      []models.WeatherDay
	timestamp time.Time
}

// aggregatedValue сводка значений одного параметра от разных провайдеров
type aggregatedValue struct {
	Average float64
	Min     float64
	Max     float64
}

func NewAggregator(cacheDurationMinutes int) *Aggregator {
	return &Aggregator{
		providers: make([]providers.Provider, 0),
		cache:     make(map[string]cacheEntry),
		cacheTTL:  time.Duration(cacheDurationMinutes) * time.Minute,
		clock:     clock.System{},
	}
}

// AddProvider добавляет провайдера
func (a *Aggregator) AddProvider(provider providers.Provider) {
	if provider.IsAvailable() {
		a.providers = append(a.providers, provider)
	}
}

func (a *Aggregator) Name() string {
	return strings.Join(a.GetProvidersInfo(), "+")
}

func (a *Aggregator) IsAvailable() bool {
	return len(a.providers) > 0
}

// MaxDays самый длинный горизонт среди провайдеров; дальние даты
// покрывают только те, кто до них дотягивается
func (a *Aggregator) MaxDays() int {
	max := 0
	for _, p := range a.providers {
		if p.MaxDays() > max {
			max = p.MaxDays()
		}
	}
	return max
}

// Forecast получает прогноз из всех провайдеров и агрегирует по датам
func (a *Aggregator) Forecast(ctx context.Context, lat, lon float64, days int) ([]models.WeatherDay, error) {
	cacheKey := fmt.Sprintf("%.4f,%.4f,%d,%s", lat, lon, days, clock.Today(a.clock).Format("2006-01-02"))

	// Пробуем получить из кеша
	if cached, found := a.getFromCache(cacheKey); found {
		return cached, nil
	}

	if len(a.providers) == 0 {
		return nil, fmt.Errorf("нет доступных провайдеров")
	}

	// Ответы раскладываются по индексу провайдера, чтобы порядок слияния
	// не зависел от того, кто ответил быстрее
	var wg sync.WaitGroup
	results := make([][]models.WeatherDay, len(a.providers))
	errs := make([]error, len(a.providers))

	// Запускаем запросы ко всем провайдерам параллельно
	for i, provider := range a.providers {
		wg.Add(1)
		go func(i int, p providers.Provider) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				errs[i] = ctx.Err()
				return
			default:
				forecast, err := p.Forecast(ctx, lat, lon, days)
				if err != nil {
					errs[i] = fmt.Errorf("%s: %w", p.Name(), err)
					return
				}
				results[i] = forecast
			}
		}(i, provider)
	}

	wg.Wait()

	// Собираем результаты и ошибки
	var forecasts [][]models.WeatherDay
	var failures []string
	for i := range a.providers {
		if errs[i] != nil {
			failures = append(failures, errs[i].Error())
			continue
		}
		if len(results[i]) > 0 {
			forecasts = append(forecasts, results[i])
		}
	}

	// Если ни один запрос не удался
	if len(forecasts) == 0 {
		if len(failures) > 0 {
			return nil, fmt.Errorf("все провайдеры вернули ошибки: %v", failures)
		}
		return nil, fmt.Errorf("не удалось получить данные от провайдеров")
	}

	// Агрегируем данные
	merged := a.mergeForecasts(forecasts)
	if len(merged) > days {
		merged = merged[:days]
	}

	// Сохраняем в кеш
	a.saveToCache(cacheKey, merged)

	return copyDays(merged), nil
}

// mergeForecasts сводит прогнозы разных провайдеров в один ряд по датам
func (a *Aggregator) mergeForecasts(forecasts [][]models.WeatherDay) []models.WeatherDay {
	byDate := make(map[time.Time][]models.WeatherDay)
	for _, forecast := range forecasts {
		for _, day := range forecast {
			date := clock.Day(day.Date)
			byDate[date] = append(byDate[date], day)
		}
	}

	dates := make([]time.Time, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	merged := make([]models.WeatherDay, 0, len(dates))
	for _, date := range dates {
		merged = append(merged, aggregateDay(date, byDate[date]))
	}
	return merged
}

// aggregateDay агрегирует данные одного дня от разных провайдеров
func aggregateDay(date time.Time, data []models.WeatherDay) models.WeatherDay {
	// Собираем значения для агрегации
	var tMin, tMax, tAvg, humidity, probability, amount, windSpeed, uv []float64
	var conditions []string
	var sources []string

	for _, d := range data {
		tMin = append(tMin, d.Temperature.Min)
		tMax = append(tMax, d.Temperature.Max)
		tAvg = append(tAvg, d.Temperature.Avg)
		humidity = append(humidity, d.Humidity)
		probability = append(probability, d.Precipitation.Probability)
		amount = append(amount, d.Precipitation.Amount)
		windSpeed = append(windSpeed, d.WindSpeed)
		uv = append(uv, d.UVIndex)
		conditions = append(conditions, string(d.Condition))
		sources = append(sources, d.Source)
	}

	return models.WeatherDay{
		Date: date,
		Temperature: models.Temperature{
			Min: aggregateValues(tMin).Average,
			Max: aggregateValues(tMax).Average,
			Avg: aggregateValues(tAvg).Average,
		},
		Humidity: aggregateValues(humidity).Average,
		Precipitation: models.Precipitation{
			// вероятность осадков берем по самому осторожному провайдеру
			Probability: aggregateValues(probability).Max,
			Amount:      aggregateValues(amount).Average,
		},
		WindSpeed: aggregateValues(windSpeed).Average,
		// Выбираем наиболее частую погоду
		Condition: models.Condition(mostFrequent(conditions)),
		UVIndex:   aggregateValues(uv).Average,
		Source:    strings.Join(sources, "+"),
	}
}

// aggregateValues вычисляет среднее, мин и макс
func aggregateValues(values []float64) aggregatedValue {
	if len(values) == 0 {
		return aggregatedValue{}
	}

	sum := 0.0
	min := math.MaxFloat64
	max := -math.MaxFloat64

	for _, v := range values {
		sum += v
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	return aggregatedValue{
		Average: sum / float64(len(values)),
		Min:     min,
		Max:     max,
	}
}

// mostFrequent находит наиболее частое значение; при равенстве побеждает
// встретившееся раньше, то есть провайдер, добавленный первым
func mostFrequent(values []string) string {
	freq := make(map[string]int)
	for _, v := range values {
		freq[v]++
	}

	maxFreq := 0
	var result string
	for _, v := range values {
		if freq[v] > maxFreq {
			maxFreq = freq[v]
			result = v
		}
	}

	return result
}

func copyDays(days []models.WeatherDay) []models.WeatherDay {
	out := make([]models.WeatherDay, len(days))
	copy(out, days)
	return out
}

// getFromCache получает данные из кеша
func (a *Aggregator) getFromCache(key string) ([]models.WeatherDay, bool) {
	if a.cacheTTL <= 0 {
		return nil, false
	}

	a.cacheMu.RLock()
	defer a.cacheMu.RUnlock()

	entry, found := a.cache[key]
	if !found {
		return nil, false
	}

	// Проверяем TTL
	if a.clock.Now().Sub(entry.timestamp) > a.cacheTTL {
		return nil, false
	}

	return copyDays(entry.data), true
}

// saveToCache сохраняет данные в кеш
func (a *Aggregator) saveToCache(key string, data []models.WeatherDay) {
	if a.cacheTTL <= 0 {
		return
	}

	a.cacheMu.Lock()
	defer a.cacheMu.Unlock()

	a.cache[key] = cacheEntry{
		data:      data,
		timestamp: a.clock.Now(),
	}
}

// ClearCache очищает кеш
func (a *Aggregator) ClearCache() {
	a.cacheMu.Lock()
	defer a.cacheMu.Unlock()

	a.cache = make(map[string]cacheEntry)
}

func (a *Aggregator) GetProviderCount() int {
	return len(a.providers)
}

// GetProvidersInfo возвращает информацию о провайдерах
func (a *Aggregator) GetProvidersInfo() []string {
	info := make([]string, len(a.providers))
	for i, provider := range a.providers {
		info[i] = provider.Name()
	}
	return info
}
