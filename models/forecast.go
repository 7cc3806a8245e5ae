package models

import "time"

// Impact уровень влияния риска
type Impact string

const (
	ImpactLow    Impact = "low"
	ImpactMedium Impact = "medium"
	ImpactHigh   Impact = "high"
)

// Direction знак влияния фактора на цену
type Direction string

const (
	DirectionPositive Direction = "positive"
	DirectionNegative Direction = "negative"
	DirectionNeutral  Direction = "neutral"
)

// Period интервал дат
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// YieldRange ожидаемая урожайность
type YieldRange struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Unit string  `json:"unit"`
}

// PriceRange ожидаемая цена
type PriceRange struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency"`
}

// Input удобрение или пестицид с нормой внесения
type Input struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// Risk агрономический риск
type Risk struct {
	Name        string  `json:"name"`
	Probability float64 `json:"probability"`
	Impact      Impact  `json:"impact"`
	Mitigation  string  `json:"mitigation"`
}

// CropRecommendation рекомендация по культуре
type CropRecommendation struct {
	CropName         string     `json:"crop_name"`
	SuitabilityScore float64    `json:"suitability_score"`
	ExpectedYield    YieldRange `json:"expected_yield"`
	ExpectedPrice    PriceRange `json:"expected_price"`
	GrowingPeriod    Period     `json:"growing_period"`
	WaterRequirement float64    `json:"water_requirement"` // мм за весь период
	Fertilizers      []Input    `json:"fertilizers"`
	Pesticides       []Input    `json:"pesticides"`
	Risks            []Risk     `json:"risks"`
}

// Factor фактор, объясняющий прогноз цены
type Factor struct {
	Name   string    `json:"name"`
	Impact Direction `json:"impact"`
	Weight float64   `json:"weight"`
}

// MarketForecast прогноз рыночной цены товара
type MarketForecast struct {
	CommodityID           string   `json:"commodity_id"`
	CommodityName         string   `json:"commodity_name"`
	CurrentPrice          float64  `json:"current_price"`
	ForecastedPrice       float64  `json:"forecasted_price"`
	PriceChangePercentage float64  `json:"price_change_percentage"`
	ForecastPeriod        Period   `json:"forecast_period"`
	Factors               []Factor `json:"factors"`
	ConfidenceLevel       float64  `json:"confidence_level"`
	Recommendation        string   `json:"recommendation"`
}

// AdvisoryBatch набор советов для пользователя, публикуемый в шину
type AdvisoryBatch struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Location    *Location `json:"location,omitempty"`
	Items       []string  `json:"items"`
	GeneratedAt time.Time `json:"generated_at"`
}
