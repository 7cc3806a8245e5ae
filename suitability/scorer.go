// Package suitability оценивает, насколько прогноз погоды подходит для
// посадки каждой культуры из справочника.
package suitability

import (
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"agro-forecast/clock"
	"agro-forecast/knowledge"
	"agro-forecast/models"
	"agro-forecast/weather"
)

const (
	// Threshold культуры с оценкой не выше порога не рекомендуются
	Threshold = 0.4
	// OffSeasonScore потолок оценки вне сезона посадки
	OffSeasonScore = 0.2

	YieldUnit = "tons/ha"
	Currency  = "INR/kg"

	yieldVariation = 0.3
	priceVariation = 0.2
)

const (
	riskFungal = "Fungal Disease"
	riskPest   = "Insect Infestation"
	riskWater  = "Water Stress"

	mitigationFungal = "Apply fungicide preventatively and ensure proper spacing for air circulation."
	mitigationPest   = "Monitor regularly and use integrated pest management techniques."
	mitigationWater  = "Implement irrigation system and mulch to retain soil moisture."
)

// Breakdown составляющие оценки культуры
type Breakdown struct {
	InSeason    bool
	Temperature float64
	Water       float64
	DiseaseRisk float64
	Market      float64
	Score       float64
}

// Evaluate считает оценку культуры по сводке погоды для месяца посадки
func Evaluate(c knowledge.CropProfile, s weather.Summary, month time.Month) Breakdown {
	if !c.InSeason(month) {
		return Breakdown{Score: OffSeasonScore}
	}

	b := Breakdown{InSeason: true}

	// Температура: минус 0.1 за каждый градус от ближайшей границы
	if c.OptimalTemperature.Contains(s.AvgTemperature) {
		b.Temperature = 1
	} else {
		dist := math.Min(
			math.Abs(s.AvgTemperature-c.OptimalTemperature.Min),
			math.Abs(s.AvgTemperature-c.OptimalTemperature.Max),
		)
		b.Temperature = math.Max(0, 1-dist/10)
	}

	// Вода: недостаток покрывает полив, избыток штрафуется
	weekly := s.TotalRainfall / 7
	switch {
	case c.WaterRequirement.Contains(weekly):
		b.Water = 1
	case weekly < c.WaterRequirement.Min:
		b.Water = 0.7
	default:
		b.Water = math.Max(0, 1-(weekly-c.WaterRequirement.Max)/20)
	}

	humidityRisk := s.AvgHumidity / 100 * c.DiseaseRisk.Humidity
	tempRisk := math.Min(1, s.AvgTemperature/30) * c.DiseaseRisk.Temperature
	rainRisk := math.Min(1, s.TotalRainfall/50) * c.DiseaseRisk.Rainfall
	b.DiseaseRisk = (humidityRisk + tempRisk + rainRisk) / 3

	b.Market = float64(c.ProfitPotential+c.MarketDemand) / 20

	score := 0.3*b.Temperature + 0.3*b.Water + 0.2*(1-b.DiseaseRisk) + 0.2*b.Market
	b.Score = math.Max(0, math.Min(1, score))
	return b
}

type Scorer struct {
	clock clock.Clock
}

func NewScorer(c clock.Clock) *Scorer {
	if c == nil {
		c = clock.System{}
	}
	return &Scorer{clock: c}
}

// Score возвращает культуры с оценкой выше Threshold по убыванию оценки
func (s *Scorer) Score(series []models.WeatherDay, crops []knowledge.CropProfile) ([]models.CropRecommendation, error) {
	summary, err := weather.Summarize(series)
	if err != nil {
		return nil, err
	}

	today := clock.Today(s.clock)
	recommendations := make([]models.CropRecommendation, 0)
	for _, crop := range crops {
		b := Evaluate(crop, summary, today.Month())
		if b.Score <= Threshold {
			continue
		}
		recommendations = append(recommendations, recommend(crop, b.Score, summary, today))
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		if recommendations[i].SuitabilityScore != recommendations[j].SuitabilityScore {
			return recommendations[i].SuitabilityScore > recommendations[j].SuitabilityScore
		}
		return recommendations[i].CropName < recommendations[j].CropName
	})
	return recommendations, nil
}

func recommend(c knowledge.CropProfile, score float64, s weather.Summary, today time.Time) models.CropRecommendation {
	spread := c.BaseYield * yieldVariation

	return models.CropRecommendation{
		CropName:         c.Name,
		SuitabilityScore: score,
		ExpectedYield: models.YieldRange{
			Min:  roundTo(c.BaseYield-spread*(1-score), 1),
			Max:  roundTo(c.BaseYield+spread*score, 1),
			Unit: YieldUnit,
		},
		ExpectedPrice: priceRange(c.BasePrice),
		GrowingPeriod: models.Period{
			Start: today,
			End:   today.AddDate(0, c.GrowingMonths, 0),
		},
		WaterRequirement: math.Round(c.WaterRequirement.Min * float64(c.GrowingMonths) * 4),
		Fertilizers:      knowledge.FertilizersFor(c),
		Pesticides:       knowledge.PesticidesFor(c),
		Risks:            risks(c, s),
	}
}

// priceRange базовая цена ±20%, округленная до рупии
func priceRange(base float64) models.PriceRange {
	b := decimal.NewFromFloat(base)
	v := decimal.NewFromFloat(priceVariation)
	return models.PriceRange{
		Min:      b.Mul(decimal.NewFromInt(1).Sub(v)).Round(0).InexactFloat64(),
		Max:      b.Mul(decimal.NewFromInt(1).Add(v)).Round(0).InexactFloat64(),
		Currency: Currency,
	}
}

func risks(c knowledge.CropProfile, s weather.Summary) []models.Risk {
	out := make([]models.Risk, 0, 3)

	if s.AvgHumidity > 75 && s.AvgTemperature > 25 {
		p := c.DiseaseRisk.Humidity * c.DiseaseRisk.Temperature
		out = append(out, models.Risk{
			Name:        riskFungal,
			Probability: p,
			Impact:      impactOf(p),
			Mitigation:  mitigationFungal,
		})
	}

	if s.AvgTemperature > 28 {
		out = append(out, models.Risk{
			Name:        riskPest,
			Probability: math.Min(1, 0.4+(s.AvgTemperature-28)*0.05),
			Impact:      models.ImpactMedium,
			Mitigation:  mitigationPest,
		})
	}

	// осадков за 4 недели меньше минимальной потребности
	if s.TotalRainfall < c.WaterRequirement.Min*4 {
		out = append(out, models.Risk{
			Name:        riskWater,
			Probability: 0.7,
			Impact:      models.ImpactHigh,
			Mitigation:  mitigationWater,
		})
	}
	return out
}

func impactOf(p float64) models.Impact {
	switch {
	case p > 0.6:
		return models.ImpactHigh
	case p > 0.3:
		return models.ImpactMedium
	default:
		return models.ImpactLow
	}
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
