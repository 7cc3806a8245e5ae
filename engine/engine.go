// Package engine точка входа в прогнозы: погода, рекомендации культур,
// цены и персональные советы поверх одного провайдера погоды.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"agro-forecast/advisor"
	"agro-forecast/clock"
	"agro-forecast/knowledge"
	"agro-forecast/market"
	"agro-forecast/metrics"
	"agro-forecast/models"
	"agro-forecast/notify"
	"agro-forecast/providers"
	"agro-forecast/random"
	"agro-forecast/store"
	"agro-forecast/suitability"
	"agro-forecast/weather"
)

// CropForecastDays горизонт погоды для оценки культур
const CropForecastDays = providers.OpenMeteoMaxDays

var (
	ErrInvalidLocation = errors.New("некорректные координаты")
	ErrNoPublisher     = errors.New("публикация советов не настроена")
)

type Options struct {
	// Provider nil означает только синтетическую погоду
	Provider  providers.Provider
	Clock     clock.Clock
	Rand      random.Source
	Locations store.LocationStore
	Publisher notify.Publisher
	Logger    *slog.Logger
	Metrics   *metrics.Metrics

	// ForecastDays горизонт цен по умолчанию, 0 означает 30
	ForecastDays int
}

type Engine struct {
	normalizer *weather.Normalizer
	scorer     *suitability.Scorer
	forecaster *market.Forecaster
	advisor    *advisor.Advisor
	publisher  notify.Publisher
	clock      clock.Clock
	logger     *slog.Logger
	metrics    *metrics.Metrics

	forecastDays int
}

func New(opts Options) *Engine {
	if opts.Clock == nil {
		opts.Clock = clock.System{}
	}
	if opts.Rand == nil {
		opts.Rand = random.Global{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.ForecastDays <= 0 {
		opts.ForecastDays = market.DefaultForecastDays
	}

	normalizer := weather.NewNormalizer(
		opts.Provider,
		weather.NewGenerator(opts.Clock, opts.Rand),
		opts.Clock,
		opts.Logger,
		opts.Metrics,
	)
	scorer := suitability.NewScorer(opts.Clock)
	forecaster := market.NewForecaster(opts.Clock, opts.Rand)

	return &Engine{
		normalizer: normalizer,
		scorer:     scorer,
		forecaster: forecaster,
		advisor: advisor.New(advisor.Deps{
			Weather:    normalizer,
			Scorer:     scorer,
			Forecaster: forecaster,
			Locations:  opts.Locations,
			Clock:      opts.Clock,
			Logger:     opts.Logger,
			Metrics:    opts.Metrics,
		}),
		publisher: opts.Publisher,
		clock:     opts.Clock,
		logger:    opts.Logger,
		metrics:   opts.Metrics,

		forecastDays: opts.ForecastDays,
	}
}

// WeatherForecast ровно days дней, при недоступном провайдере синтетика
func (e *Engine) WeatherForecast(ctx context.Context, loc models.Location, days int) ([]models.WeatherDay, error) {
	if err := validate(loc); err != nil {
		return nil, err
	}
	return e.normalizer.Forecast(ctx, loc, days)
}

// CropRecommendations культуры по убыванию пригодности
func (e *Engine) CropRecommendations(ctx context.Context, loc models.Location) ([]models.CropRecommendation, error) {
	series, err := e.WeatherForecast(ctx, loc, CropForecastDays)
	if err != nil {
		return nil, err
	}
	return e.scorer.Score(series, knowledge.Crops())
}

// MarketPriceForecasts пустой commodityID означает все товары;
// forecastDays <= 0 заменяется горизонтом по умолчанию (30 дней)
func (e *Engine) MarketPriceForecasts(ctx context.Context, loc models.Location, commodityID string, forecastDays int) ([]models.MarketForecast, error) {
	if forecastDays <= 0 {
		forecastDays = e.forecastDays
	}
	if commodityID != "" {
		if _, ok := knowledge.Market(commodityID); !ok {
			return nil, fmt.Errorf("%w: %s", market.ErrCommodityNotFound, commodityID)
		}
	}

	series, err := e.WeatherForecast(ctx, loc, forecastDays)
	if err != nil {
		return nil, err
	}
	return e.forecaster.Forecast(series, knowledge.Markets(), forecastDays, commodityID)
}

// PersonalizedRecommendations никогда не возвращает ошибку: в худшем случае
// пользователь получает общие советы
func (e *Engine) PersonalizedRecommendations(ctx context.Context, userID string, loc *models.Location) []string {
	if loc != nil && validate(*loc) != nil {
		e.logger.Warn("invalid location for advice, using saved one",
			"user_id", userID,
			"latitude", loc.Latitude,
			"longitude", loc.Longitude,
		)
		loc = nil
	}
	return e.advisor.Personalized(ctx, userID, loc)
}

// PublishRecommendations строит советы и отправляет их одним сообщением
func (e *Engine) PublishRecommendations(ctx context.Context, userID string, loc *models.Location) (models.AdvisoryBatch, error) {
	batch := models.AdvisoryBatch{
		ID:          uuid.NewString(),
		UserID:      userID,
		Location:    loc,
		Items:       e.PersonalizedRecommendations(ctx, userID, loc),
		GeneratedAt: e.clock.Now().UTC(),
	}
	if e.publisher == nil {
		return batch, ErrNoPublisher
	}
	err := e.publisher.Publish(ctx, batch)
	e.metrics.AdvisoryPublished(err == nil)
	return batch, err
}

func validate(loc models.Location) error {
	if loc.Latitude < -90 || loc.Latitude > 90 || loc.Longitude < -180 || loc.Longitude > 180 {
		return fmt.Errorf("%w: %.4f, %.4f", ErrInvalidLocation, loc.Latitude, loc.Longitude)
	}
	return nil
}
