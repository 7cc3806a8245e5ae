// Package knowledge справочники культур и рынков. Таблицы неизменяемые:
// наружу отдаются только копии, поэтому их можно читать из любых горутин.
package knowledge

import (
	"slices"
	"strings"
	"time"

	"agro-forecast/models"
)

// Category группа культуры; по ней выбираются удобрения, пестициды и риски
type Category string

const (
	Cereal    Category = "cereal"
	Millet    Category = "millet"
	Pulse     Category = "pulse"
	Vegetable Category = "vegetable"
	CashCrop  Category = "cash_crop"
	Oilseed   Category = "oilseed"
	Fruit     Category = "fruit"
	Default   Category = "default"
)

type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains проверка включительно по обеим границам
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// DiseaseRisk чувствительность к болезням, каждая в [0, 1]
type DiseaseRisk struct {
	Humidity    float64 `json:"humidity"`
	Temperature float64 `json:"temperature"`
	Rainfall    float64 `json:"rainfall"`
}

type CropProfile struct {
	Name                   string       `json:"name"`
	Category               Category     `json:"category"`
	OptimalTemperature     Range        `json:"optimal_temperature"`
	WaterRequirement       Range        `json:"water_requirement"` // мм в неделю
	GrowingSeason          []time.Month `json:"growing_season"`
	SoilMoisturePreference Range        `json:"soil_moisture_preference"`
	ProfitPotential        int          `json:"profit_potential"` // 1-10
	MarketDemand           int          `json:"market_demand"`    // 1-10
	DiseaseRisk            DiseaseRisk  `json:"disease_risk"`
	BaseYield              float64      `json:"base_yield"` // т/га
	BasePrice              float64      `json:"base_price"` // INR/кг
	GrowingMonths          int          `json:"growing_months"`
	// FertilizerPlan и PesticidePlan переопределяют план категории,
	// когда внутри одной категории культуры подкармливают по-разному
	FertilizerPlan string `json:"-"`
	PesticidePlan  string `json:"-"`
	// CommodityID товар на рынке, соответствующий культуре
	CommodityID string `json:"commodity_id"`
}

// InSeason месяц входит в сезон посадки
func (c CropProfile) InSeason(m time.Month) bool {
	return slices.Contains(c.GrowingSeason, m)
}

// Sensitivity влияние погоды на цену, каждая в [-1, 1]
type Sensitivity struct {
	Temperature float64 `json:"temperature"`
	Rainfall    float64 `json:"rainfall"`
	Humidity    float64 `json:"humidity"`
}

type MarketProfile struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Category        Category    `json:"category"`
	BasePrice       float64     `json:"base_price"` // INR/кг
	Seasonality     [12]float64 `json:"seasonality"`
	Sensitivity     Sensitivity `json:"sensitivity"`
	SupplyDemand    float64     `json:"supply_demand"`
	Volatility      float64     `json:"volatility"`
	StorageLifeDays int         `json:"storage_life_days"`
	Substitutes     []string    `json:"substitutes"`
}

// SeasonalFactor множитель цены для месяца; 1.0, если таблица пуста
func (m MarketProfile) SeasonalFactor(month time.Month) float64 {
	f := m.Seasonality[month-1]
	if f == 0 {
		return 1.0
	}
	return f
}

// Crops копия таблицы культур в порядке справочника
func Crops() []CropProfile {
	out := make([]CropProfile, len(crops))
	for i, c := range crops {
		out[i] = c.clone()
	}
	return out
}

// Crop поиск по имени без учета регистра; допускается короткое имя
// без пояснения в скобках ("Maize" для "Maize (Corn)")
func Crop(name string) (CropProfile, bool) {
	for _, c := range crops {
		if strings.EqualFold(c.Name, name) || strings.EqualFold(shortName(c.Name), name) {
			return c.clone(), true
		}
	}
	return CropProfile{}, false
}

// Markets копия таблицы товаров
func Markets() []MarketProfile {
	out := make([]MarketProfile, len(markets))
	for i, m := range markets {
		out[i] = m.clone()
	}
	return out
}

func Market(id string) (MarketProfile, bool) {
	for _, m := range markets {
		if m.ID == id {
			return m.clone(), true
		}
	}
	return MarketProfile{}, false
}

// CommodityForCrop идентификатор товара для культуры
func CommodityForCrop(name string) (string, bool) {
	c, ok := Crop(name)
	if !ok || c.CommodityID == "" {
		return "", false
	}
	return c.CommodityID, true
}

// FertilizersFor план удобрений: свой план культуры, затем категории,
// затем план по умолчанию
func FertilizersFor(c CropProfile) []models.Input {
	return lookupPlan(fertilizerPlans, c.FertilizerPlan, c.Category)
}

func PesticidesFor(c CropProfile) []models.Input {
	return lookupPlan(pesticidePlans, c.PesticidePlan, c.Category)
}

func lookupPlan(plans map[string][]models.Input, key string, category Category) []models.Input {
	plan, ok := plans[key]
	if !ok {
		plan, ok = plans[string(category)]
	}
	if !ok {
		plan = plans[string(Default)]
	}
	return slices.Clone(plan)
}

func shortName(name string) string {
	if i := strings.Index(name, " ("); i > 0 {
		return name[:i]
	}
	return name
}

func (c CropProfile) clone() CropProfile {
	c.GrowingSeason = slices.Clone(c.GrowingSeason)
	return c
}

func (m MarketProfile) clone() MarketProfile {
	m.Substitutes = slices.Clone(m.Substitutes)
	return m
}
