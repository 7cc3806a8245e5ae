// Package advisor собирает погоду, оценки культур и прогноз цен в короткий
// список советов для пользователя.
package advisor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"time"

	"agro-forecast/clock"
	"agro-forecast/knowledge"
	"agro-forecast/market"
	"agro-forecast/metrics"
	"agro-forecast/models"
	"agro-forecast/store"
	"agro-forecast/suitability"
)

const (
	// MaxItems больше советов пользователь не получает
	MaxItems = 5

	seriesDays = 7

	// пороги дождя, после которого стоит отложить внесение удобрений
	rainProbability = 0.6
	rainAmount      = 2.0
	soonRainDays    = 3

	dryProbability = 0.3

	cropScoreThreshold = 0.6
	topCrops           = 2
	riskProbability    = 0.5

	marketChangeThreshold = 5.0
)

var genericAdvice = []string{
	"Based on your soil type and current weather conditions, consider applying nitrogen-rich fertilizer in the next 3 days.",
	"Your tomato crop is showing signs of potential price increase. Consider delaying harvest by 1 week for better returns.",
	"Based on your expense pattern, you could save 15% on fertilizer costs by buying in bulk with nearby farmers.",
	"Your irrigation schedule can be optimized to save water. Consider reducing frequency but increasing duration.",
	"Market trends show increasing demand for organic produce. Consider transitioning a portion of your farm to organic practices.",
}

const (
	tipMonsoon     = "Monsoon season tip: Monitor drainage in your fields to prevent waterlogging. Consider planting water-resistant varieties and keep disease control measures ready."
	tipPostMonsoon = "Post-monsoon tip: This is an ideal time for rabi crop sowing. Ensure proper land preparation and timely sowing for optimal yields."
	tipWinter      = "Winter season tip: Protect crops from frost by using row covers or sprinkler irrigation. Monitor for pest infestations which can increase as temperatures rise."
	tipSummer      = "Summer season tip: Ensure adequate irrigation and consider mulching to conserve soil moisture. Early morning or evening irrigation is most effective."

	msgDrySpell = "Dry conditions expected for the next week. Consider optimizing your irrigation schedule and monitoring soil moisture levels."
)

// Generic советы, когда персональные построить нельзя
func Generic() []string {
	return slices.Clone(genericAdvice)
}

// WeatherSource нормализованный прогноз ровно на days дней
type WeatherSource interface {
	Forecast(ctx context.Context, loc models.Location, days int) ([]models.WeatherDay, error)
}

type Deps struct {
	Weather    WeatherSource
	Scorer     *suitability.Scorer
	Forecaster *market.Forecaster
	Locations  store.LocationStore // может быть nil
	Clock      clock.Clock
	Logger     *slog.Logger
	Metrics    *metrics.Metrics
}

type Advisor struct {
	weather    WeatherSource
	scorer     *suitability.Scorer
	forecaster *market.Forecaster
	locations  store.LocationStore
	clock      clock.Clock
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

func New(d Deps) *Advisor {
	if d.Clock == nil {
		d.Clock = clock.System{}
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if d.Scorer == nil {
		d.Scorer = suitability.NewScorer(d.Clock)
	}
	if d.Forecaster == nil {
		d.Forecaster = market.NewForecaster(d.Clock, nil)
	}
	return &Advisor{
		weather:    d.Weather,
		scorer:     d.Scorer,
		forecaster: d.Forecaster,
		locations:  d.Locations,
		clock:      d.Clock,
		logger:     d.Logger,
		metrics:    d.Metrics,
	}
}

// Personalized от 1 до MaxItems советов без повторов. Без местоположения
// (явного или сохраненного) и при любой ошибке отдает Generic.
func (a *Advisor) Personalized(ctx context.Context, userID string, loc *models.Location) (items []string) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("advisory generation panicked",
				"user_id", userID,
				"panic", fmt.Sprint(r),
			)
			a.metrics.AdvisoryFallback()
			items = Generic()
		}
	}()

	if loc == nil {
		loc = a.savedLocation(ctx, userID)
	}
	if loc == nil {
		return Generic()
	}

	items, err := a.build(ctx, *loc)
	if err != nil {
		a.logger.Warn("advisory generation failed, using generic advice",
			"user_id", userID,
			"err", err,
		)
		a.metrics.AdvisoryFallback()
		return Generic()
	}
	return items
}

func (a *Advisor) savedLocation(ctx context.Context, userID string) *models.Location {
	if a.locations == nil || userID == "" {
		return nil
	}
	loc, err := a.locations.UserLocation(ctx, userID)
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			a.logger.Warn("user location lookup failed",
				"user_id", userID,
				"err", err,
			)
		}
		return nil
	}
	return &loc
}

func (a *Advisor) build(ctx context.Context, loc models.Location) ([]string, error) {
	if a.weather == nil {
		return nil, errors.New("источник погоды не настроен")
	}

	// один ряд на 7 дней обслуживает и культуры, и цены
	series, err := a.weather.Forecast(ctx, loc, seriesDays)
	if err != nil {
		return nil, fmt.Errorf("прогноз погоды: %w", err)
	}

	today := clock.Today(a.clock)
	var items []string

	if msg, ok := weatherAdvice(series, today); ok {
		items = append(items, msg)
	}

	crops, err := a.scorer.Score(series, knowledge.Crops())
	if err != nil {
		return nil, fmt.Errorf("оценка культур: %w", err)
	}
	items = append(items, cropAdvice(crops)...)

	forecasts, err := a.forecaster.Forecast(series, knowledge.Markets(), market.DefaultForecastDays, "")
	if err != nil {
		return nil, fmt.Errorf("прогноз цен: %w", err)
	}
	if msg, ok := marketAdvice(forecasts, crops); ok {
		items = append(items, msg)
	}

	items = append(items, SeasonalTip(today.Month()))

	return pad(items), nil
}

// weatherAdvice совет о ближайшем сильном дожде или о сухой неделе
func weatherAdvice(series []models.WeatherDay, today time.Time) (string, bool) {
	for _, day := range series {
		if day.Precipitation.Probability > rainProbability && day.Precipitation.Amount > rainAmount {
			days := int(math.Round(clock.Day(day.Date).Sub(today).Hours() / 24))
			if days < 0 {
				days = 0
			}
			if days <= soonRainDays {
				return fmt.Sprintf("Heavy rainfall expected %s. Consider delaying fertilizer application and preparing drainage systems.", inDays(days)), true
			}
			return fmt.Sprintf("Rainfall expected in %d days. This is a good time to apply fertilizers before the rain for better absorption.", days), true
		}
	}

	for _, day := range series {
		if day.Precipitation.Probability >= dryProbability {
			return "", false
		}
	}
	return msgDrySpell, true
}

func inDays(n int) string {
	switch n {
	case 0:
		return "today"
	case 1:
		return "in 1 day"
	default:
		return fmt.Sprintf("in %d days", n)
	}
}

// cropAdvice до двух лучших культур и предупреждение о серьезном риске
func cropAdvice(crops []models.CropRecommendation) []string {
	var out []string
	for i, c := range crops {
		if i == topCrops {
			break
		}
		if c.SuitabilityScore <= cropScoreThreshold {
			continue
		}
		out = append(out, fmt.Sprintf(
			"Based on the weather outlook, %s is highly suitable (%.0f%% match) for planting in your area with expected yields of %.1f-%.1f %s.",
			c.CropName, c.SuitabilityScore*100, c.ExpectedYield.Min, c.ExpectedYield.Max, c.ExpectedYield.Unit,
		))

		for _, r := range c.Risks {
			if r.Impact == models.ImpactHigh && r.Probability > riskProbability {
				out = append(out, fmt.Sprintf(
					"Warning: %s cultivation in your area has a %.0f%% risk of %s. Mitigation: %s",
					c.CropName, r.Probability*100, r.Name, r.Mitigation,
				))
				break
			}
		}
	}
	return out
}

// marketAdvice товар с заметным изменением цены; товары лучших культур
// идут первыми, иначе берется первый по списку
func marketAdvice(forecasts []models.MarketForecast, crops []models.CropRecommendation) (string, bool) {
	preferred := map[string]bool{}
	for i, c := range crops {
		if i == topCrops {
			break
		}
		if id, ok := knowledge.CommodityForCrop(c.CropName); ok {
			preferred[id] = true
		}
	}

	var pick *models.MarketForecast
	for i, f := range forecasts {
		if math.Abs(f.PriceChangePercentage) <= marketChangeThreshold {
			continue
		}
		if preferred[f.CommodityID] {
			pick = &forecasts[i]
			break
		}
		if pick == nil {
			pick = &forecasts[i]
		}
	}
	if pick == nil {
		return "", false
	}

	direction := "fall"
	if pick.PriceChangePercentage > 0 {
		direction = "rise"
	}
	return fmt.Sprintf("Market forecast: %s prices are expected to %s by %.1f%% in the coming weeks. %s",
		pick.CommodityName, direction, math.Abs(pick.PriceChangePercentage), pick.Recommendation), true
}

// SeasonalTip совет по индийскому календарю сезонов
func SeasonalTip(m time.Month) string {
	switch {
	case m >= time.June && m <= time.September:
		return tipMonsoon
	case m >= time.October:
		return tipPostMonsoon
	case m <= time.March:
		return tipWinter
	default:
		return tipSummer
	}
}

// pad убирает повторы, дополняет общими советами и обрезает до MaxItems
func pad(items []string) []string {
	out := make([]string, 0, MaxItems)
	add := func(s string) {
		if len(out) < MaxItems && !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	for _, s := range items {
		add(s)
	}
	for _, s := range genericAdvice {
		add(s)
	}
	return out
}
