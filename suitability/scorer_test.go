package suitability

import (
	"errors"
	"math"
	"testing"
	"time"

	"agro-forecast/clock"
	"agro-forecast/knowledge"
	"agro-forecast/models"
	"agro-forecast/weather"
)

var july = time.Date(2024, 7, 10, 6, 0, 0, 0, time.UTC)

func monsoon(days int) []models.WeatherDay {
	out := make([]models.WeatherDay, days)
	for i := range out {
		out[i] = models.WeatherDay{
			Date:          clock.Day(july).AddDate(0, 0, i),
			Temperature:   models.Temperature{Min: 24, Max: 31, Avg: 27.5},
			Humidity:      80,
			Precipitation: models.Precipitation{Probability: 0.8, Amount: 40},
			Condition:     models.ConditionRainy,
		}
	}
	return out
}

func mustCrop(t *testing.T, name string) knowledge.CropProfile {
	t.Helper()
	c, ok := knowledge.Crop(name)
	if !ok {
		t.Fatalf("crop %s not found", name)
	}
	return c
}

func TestEvaluateOffSeason(t *testing.T) {
	b := Evaluate(mustCrop(t, "Wheat"), weather.Summary{AvgTemperature: 20, TotalRainfall: 140, AvgHumidity: 60}, time.July)
	if b.InSeason || b.Score != OffSeasonScore {
		t.Fatalf("expected off-season score %v, got %+v", OffSeasonScore, b)
	}
}

func TestEvaluateRiceInMonsoon(t *testing.T) {
	s := weather.Summary{AvgTemperature: 27.5, TotalRainfall: 280, AvgHumidity: 80, Days: 7}
	b := Evaluate(mustCrop(t, "Rice"), s, time.July)

	if b.Temperature != 1 || b.Water != 1 {
		t.Errorf("expected perfect temperature and water, got %v/%v", b.Temperature, b.Water)
	}
	if b.Market != 0.8 {
		t.Errorf("expected market 0.8, got %v", b.Market)
	}
	if math.Abs(b.Score-0.8721) > 0.001 {
		t.Errorf("expected score about 0.872, got %v", b.Score)
	}
}

func TestEvaluateComponents(t *testing.T) {
	rice := mustCrop(t, "Rice") // 20-35°C, 30-50 мм в неделю

	tests := []struct {
		name      string
		summary   weather.Summary
		wantTemp  float64
		wantWater float64
	}{
		{"too hot", weather.Summary{AvgTemperature: 40, TotalRainfall: 280}, 0.5, 1},
		{"far too cold", weather.Summary{AvgTemperature: 5, TotalRainfall: 280}, 0, 1},
		{"boundary", weather.Summary{AvgTemperature: 35, TotalRainfall: 210}, 1, 1},
		{"dry", weather.Summary{AvgTemperature: 27, TotalRainfall: 70}, 1, 0.7},
		{"flooded", weather.Summary{AvgTemperature: 27, TotalRainfall: 420}, 1, 0.5},
		{"washed out", weather.Summary{AvgTemperature: 27, TotalRainfall: 1000}, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Evaluate(rice, tt.summary, time.July)
			if math.Abs(b.Temperature-tt.wantTemp) > 1e-9 {
				t.Errorf("temperature score %v, want %v", b.Temperature, tt.wantTemp)
			}
			if math.Abs(b.Water-tt.wantWater) > 1e-9 {
				t.Errorf("water score %v, want %v", b.Water, tt.wantWater)
			}
			if b.Score < 0 || b.Score > 1 {
				t.Errorf("score out of range %v", b.Score)
			}
		})
	}
}

func TestScoreEmptySeries(t *testing.T) {
	s := NewScorer(clock.Fixed{T: july})
	if _, err := s.Score(nil, knowledge.Crops()); !errors.Is(err, weather.ErrNoWeather) {
		t.Fatalf("expected ErrNoWeather, got %v", err)
	}
}

func TestScoreMonsoonJuly(t *testing.T) {
	s := NewScorer(clock.Fixed{T: july})
	recs, err := s.Score(monsoon(7), knowledge.Crops())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) == 0 {
		t.Fatal("expected recommendations for monsoon July")
	}

	var rice *models.CropRecommendation
	for i, r := range recs {
		if r.SuitabilityScore <= Threshold || r.SuitabilityScore > 1 {
			t.Errorf("%s: score %v outside (%v, 1]", r.CropName, r.SuitabilityScore, Threshold)
		}
		if i > 0 && recs[i-1].SuitabilityScore < r.SuitabilityScore {
			t.Errorf("recommendations not sorted at %d", i)
		}
		if r.CropName == "Wheat" {
			t.Error("off-season wheat must not be recommended")
		}
		if r.CropName == "Rice" {
			rice = &recs[i]
		}
	}
	if rice == nil {
		t.Fatal("expected rice to be recommended")
	}

	if rice.ExpectedPrice.Min != 16 || rice.ExpectedPrice.Max != 24 || rice.ExpectedPrice.Currency != Currency {
		t.Errorf("unexpected price range %+v", rice.ExpectedPrice)
	}
	if rice.ExpectedYield.Min > 4 || rice.ExpectedYield.Max < 4 || rice.ExpectedYield.Unit != YieldUnit {
		t.Errorf("unexpected yield range %+v", rice.ExpectedYield)
	}
	if !rice.GrowingPeriod.Start.Equal(clock.Day(july)) || !rice.GrowingPeriod.End.Equal(clock.Day(july).AddDate(0, 4, 0)) {
		t.Errorf("unexpected growing period %+v", rice.GrowingPeriod)
	}
	if rice.WaterRequirement != 480 {
		t.Errorf("expected water requirement 480, got %v", rice.WaterRequirement)
	}
	if len(rice.Fertilizers) == 0 || len(rice.Pesticides) == 0 {
		t.Error("expected input plans")
	}
}

func TestScoreTiesSortedByName(t *testing.T) {
	a := mustCrop(t, "Rice")
	b := a
	a.Name, b.Name = "Zeta", "Alpha"

	s := NewScorer(clock.Fixed{T: july})
	recs, err := s.Score(monsoon(7), []knowledge.CropProfile{a, b})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 2 || recs[0].CropName != "Alpha" {
		t.Fatalf("expected tie broken by name, got %+v", recs)
	}
}

func TestYieldRange(t *testing.T) {
	rice := mustCrop(t, "Rice")
	r := recommend(rice, 0.5, weather.Summary{TotalRainfall: 1000}, clock.Day(july))
	// 4 ± 1.2*0.5
	if r.ExpectedYield.Min != 3.4 || r.ExpectedYield.Max != 4.6 {
		t.Errorf("unexpected yield %+v", r.ExpectedYield)
	}
}

func TestRisks(t *testing.T) {
	rice := mustCrop(t, "Rice") // влажность 0.7, температура 0.5, минимум воды 30

	tests := []struct {
		name    string
		summary weather.Summary
		want    map[string]models.Risk
	}{
		{
			"humid and warm",
			weather.Summary{AvgTemperature: 27.5, AvgHumidity: 80, TotalRainfall: 280},
			map[string]models.Risk{riskFungal: {Probability: 0.35, Impact: models.ImpactMedium}},
		},
		{
			"hot and dry",
			weather.Summary{AvgTemperature: 32, AvgHumidity: 40, TotalRainfall: 10},
			map[string]models.Risk{
				riskPest:  {Probability: 0.6, Impact: models.ImpactMedium},
				riskWater: {Probability: 0.7, Impact: models.ImpactHigh},
			},
		},
		{
			"extreme heat",
			weather.Summary{AvgTemperature: 45, AvgHumidity: 40, TotalRainfall: 500},
			map[string]models.Risk{riskPest: {Probability: 1, Impact: models.ImpactMedium}},
		},
		{
			"mild",
			weather.Summary{AvgTemperature: 22, AvgHumidity: 60, TotalRainfall: 300},
			map[string]models.Risk{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := risks(rice, tt.summary)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d risks, got %+v", len(tt.want), got)
			}
			for _, r := range got {
				want, ok := tt.want[r.Name]
				if !ok {
					t.Errorf("unexpected risk %s", r.Name)
					continue
				}
				if math.Abs(r.Probability-want.Probability) > 1e-9 || r.Impact != want.Impact {
					t.Errorf("%s: got %v/%s, want %v/%s", r.Name, r.Probability, r.Impact, want.Probability, want.Impact)
				}
				if r.Mitigation == "" {
					t.Errorf("%s: empty mitigation", r.Name)
				}
			}
		})
	}
}

func TestImpactOf(t *testing.T) {
	for p, want := range map[float64]models.Impact{0.1: models.ImpactLow, 0.3: models.ImpactLow, 0.45: models.ImpactMedium, 0.61: models.ImpactHigh} {
		if got := impactOf(p); got != want {
			t.Errorf("impactOf(%v) = %s, want %s", p, got, want)
		}
	}
}
