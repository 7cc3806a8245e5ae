package knowledge

import "time"

// crops справочник культур; значения откалиброваны под условия Индии
var crops = []CropProfile{
	{
		Name:                   "Rice",
		Category:               Cereal,
		OptimalTemperature:     Range{20, 35},
		WaterRequirement:       Range{30, 50},
		GrowingSeason:          []time.Month{time.June, time.July, time.August, time.September},
		SoilMoisturePreference: Range{70, 90},
		ProfitPotential:        7,
		MarketDemand:           9,
		DiseaseRisk:            DiseaseRisk{Humidity: 0.7, Temperature: 0.5, Rainfall: 0.3},
		BaseYield:              4,
		BasePrice:              20,
		GrowingMonths:          4,
		PesticidePlan:          "rice_wheat",
		CommodityID:            "rice",
	},
	{
		Name:                   "Wheat",
		Category:               Cereal,
		OptimalTemperature:     Range{15, 24},
		WaterRequirement:       Range{15, 25},
		GrowingSeason:          []time.Month{time.November, time.December, time.January, time.February},
		SoilMoisturePreference: Range{50, 70},
		ProfitPotential:        6,
		MarketDemand:           8,
		DiseaseRisk:            DiseaseRisk{Humidity: 0.6, Temperature: 0.4, Rainfall: 0.7},
		BaseYield:              3,
		BasePrice:              25,
		GrowingMonths:          4,
		PesticidePlan:          "rice_wheat",
		CommodityID:            "wheat",
	},
	{
		Name:                   "Maize (Corn)",
		Category:               Cereal,
		OptimalTemperature:     Range{18, 32},
		WaterRequirement:       Range{20, 30},
		GrowingSeason:          []time.Month{time.June, time.July, time.August, time.September},
		SoilMoisturePreference: Range{50, 80},
		ProfitPotential:        7,
		MarketDemand:           8,
		DiseaseRisk:            DiseaseRisk{Humidity: 0.5, Temperature: 0.3, Rainfall: 0.6},
		BaseYield:              5,
		BasePrice:              18,
		GrowingMonths:          3,
		PesticidePlan:          "coarse_grain",
		CommodityID:            "maize",
	},
	{
		Name:                   "Bajra (Pearl Millet)",
		Category:               Millet,
		OptimalTemperature:     Range{25, 35},
		WaterRequirement:       Range{10, 20},
		GrowingSeason:          []time.Month{time.June, time.July, time.August},
		SoilMoisturePreference: Range{40, 60},
		ProfitPotential:        5,
		MarketDemand:           6,
		DiseaseRisk:            DiseaseRisk{Humidity: 0.4, Temperature: 0.3, Rainfall: 0.5},
		BaseYield:              2,
		BasePrice:              22,
		GrowingMonths:          3,
		PesticidePlan:          "coarse_grain",
		CommodityID:            "bajra",
	},
	{
		Name:                   "Jowar (Sorghum)",
		Category:               Millet,
		OptimalTemperature:     Range{25, 35},
		WaterRequirement:       Range{12, 22},
		GrowingSeason:          []time.Month{time.June, time.July, time.October, time.November},
		SoilMoisturePreference: Range{40, 65},
		ProfitPotential:        5,
		MarketDemand:           6,
		DiseaseRisk:            DiseaseRisk{Humidity: 0.5, Temperature: 0.3, Rainfall: 0.4},
		BaseYield:              2.5,
		BasePrice:              24,
		GrowingMonths:          4,
		PesticidePlan:          "coarse_grain",
		CommodityID:            "jowar",
	},
	{
		Name:                   "Moong Dal (Green Gram)",
		Category:               Pulse,
		OptimalTemperature:     Range{25, 35},
		WaterRequirement:       Range{15, 25},
		GrowingSeason:          []time.Month{time.March, time.April, time.June, time.July},
		SoilMoisturePreference: Range{50, 70},
		ProfitPotential:        7,
		MarketDemand:           8,
		DiseaseRisk:            DiseaseRisk{Humidity: 0.6, Temperature: 0.4, Rainfall: 0.5},
		BaseYield:              1,
		BasePrice:              90,
		GrowingMonths:          3,
		CommodityID:            "moong",
	},
	{
		Name:                   "Masoor Dal (Red Lentil)",
		Category:               Pulse,
		OptimalTemperature:     Range{18, 30},
		WaterRequirement:       Range{12, 20},
		GrowingSeason:          []time.Month{time.October, time.November, time.December},
		SoilMoisturePreference: Range{45, 65},
		ProfitPotential:        6,
		MarketDemand:           7,
		DiseaseRisk:            DiseaseRisk{Humidity: 0.5, Temperature: 0.4, Rainfall: 0.6},
		BaseYield:              1.2,
		BasePrice:              85,
		GrowingMonths:          4,
		CommodityID:            "masoor",
	},
	{
		Name:                   "Chana (Chickpea)",
		Category:               Pulse,
		OptimalTemperature:     Range{15, 25},
		WaterRequirement:       Range{10, 20},
		GrowingSeason:          []time.Month{time.October, time.November, time.December},
		SoilMoisturePreference: Range{40, 60},
		ProfitPotential:        7,
		MarketDemand:           8,
		DiseaseRisk:            DiseaseRisk{Humidity: 0.7, Temperature: 0.5, Rainfall: 0.6},
		BaseYield:              1.5,
		BasePrice:              70,
		GrowingMonths:          4,
		CommodityID:            "chana",
	},
	{
		Name:                   "Toor Dal (Pigeon Pea)",
		Category:               Pulse,
		OptimalTemperature:     Range{20, 30},
		WaterRequirement:       Range{15, 25},
		GrowingSeason:          []time.Month{time.June, time.July, time.August},
		SoilMoisturePreference: Range{50, 70},
		ProfitPotential:        7,
		MarketDemand:           9,
		DiseaseRisk:            DiseaseRisk{Humidity: 0.6, Temperature: 0.4, Rainfall: 0.5},
		BaseYield:              1.3,
		BasePrice:              95,
		GrowingMonths:          5,
		CommodityID:            "toor",
	},
	{
		Name:                   "Urad Dal (Black Gram)",
		Category:               Pulse,
		OptimalTemperature:     Range{25, 35},
		WaterRequirement:       Range{15, 25},
		GrowingSeason:          []time.Month{time.June, time.July, time.August},
		SoilMoisturePreference: Range{50, 70},
		ProfitPotential:        6,
		MarketDemand:           7,
		DiseaseRisk:            DiseaseRisk{Humidity: 0.6, Temperature: 0.5, Rainfall: 0.5},
		BaseYield:              1,
		BasePrice:              100,
		GrowingMonths:          3,
		CommodityID:            "urad",
	},
	{
		Name:                   "Potato",
		Category:               Vegetable,
		OptimalTemperature:     Range{15, 25},
		WaterRequirement:       Range{25, 35},
		GrowingSeason:          []time.Month{time.February, time.March, time.April, time.October, time.November},
		SoilMoisturePreference: Range{60, 80},
		ProfitPotential:        8,
		MarketDemand:           7,
		DiseaseRisk:            DiseaseRisk{Humidity: 0.8, Temperature: 0.4, Rainfall: 0.7},
		BaseYield:              20,
		BasePrice:              15,
		GrowingMonths:          3,
		PesticidePlan:          "solanaceous",
		CommodityID:            "potato",
	},
	{
		Name:                   "Tomato",
		Category:               Vegetable,
		OptimalTemperature:     Range{20, 30},
		WaterRequirement:       Range{20, 30},
		GrowingSeason:          []time.Month{time.March, time.April, time.May, time.June, time.July},
		SoilMoisturePreference: Range{60, 80},
		ProfitPotential:        9,
		MarketDemand:           8,
		DiseaseRisk:            DiseaseRisk{Humidity: 0.7, Temperature: 0.6, Rainfall: 0.5},
		BaseYield:              25,
		BasePrice:              30,
		GrowingMonths:          3,
		PesticidePlan:          "solanaceous",
		CommodityID:            "tomato",
	},
	{
		Name:                   "Onion",
		Category:               Vegetable,
		OptimalTemperature:     Range{15, 25},
		WaterRequirement:       Range{15, 25},
		GrowingSeason:          []time.Month{time.October, time.November, time.December, time.January},
		SoilMoisturePreference: Range{50, 70},
		ProfitPotential:        8,
		MarketDemand:           9,
		DiseaseRisk:            DiseaseRisk{Humidity: 0.6, Temperature: 0.5, Rainfall: 0.7},
		BaseYield:              18,
		BasePrice:              25,
		GrowingMonths:          4,
		FertilizerPlan:         "vegetable_cool",
		CommodityID:            "onion",
	},
	{
		Name:                   "Cauliflower",
		Category:               Vegetable,
		OptimalTemperature:     Range{15, 25},
		WaterRequirement:       Range{20, 30},
		GrowingSeason:          []time.Month{time.September, time.October, time.November},
		SoilMoisturePreference: Range{60, 75},
		ProfitPotential:        7,
		MarketDemand:           7,
		DiseaseRisk:            DiseaseRisk{Humidity: 0.7, Temperature: 0.6, Rainfall: 0.5},
		BaseYield:              15,
		BasePrice:              30,
		GrowingMonths:          3,
		FertilizerPlan:         "vegetable_cool",
		CommodityID:            "cauliflower",
	},
	{
		Name:                   "Brinjal (Eggplant)",
		Category:               Vegetable,
		OptimalTemperature:     Range{20, 30},
		WaterRequirement:       Range{20, 30},
		GrowingSeason:          []time.Month{time.February, time.March, time.July, time.August},
		SoilMoisturePreference: Range{60, 80},
		ProfitPotential:        7,
		MarketDemand:           7,
		DiseaseRisk:            DiseaseRisk{Humidity: 0.7, Temperature: 0.5, Rainfall: 0.6},
		BaseYield:              22,
		BasePrice:              25,
		GrowingMonths:          3,
		CommodityID:            "brinjal",
	},
	{
		Name:                   "Soybean",
		Category:               Oilseed,
		OptimalTemperature:     Range{20, 30},
		WaterRequirement:       Range{20, 35},
		GrowingSeason:          []time.Month{time.June, time.July, time.August, time.September},
		SoilMoisturePreference: Range{50, 70},
		ProfitPotential:        7,
		MarketDemand:           8,
		DiseaseRisk:            DiseaseRisk{Humidity: 0.6, Temperature: 0.5, Rainfall: 0.4},
		BaseYield:              2.5,
		BasePrice:              35,
		GrowingMonths:          4,
		CommodityID:            "soybean",
	},
	{
		Name:                   "Cotton",
		Category:               CashCrop,
		OptimalTemperature:     Range{20, 35},
		WaterRequirement:       Range{15, 25},
		GrowingSeason:          []time.Month{time.April, time.May, time.June, time.July},
		SoilMoisturePreference: Range{40, 70},
		ProfitPotential:        8,
		MarketDemand:           7,
		DiseaseRisk:            DiseaseRisk{Humidity: 0.7, Temperature: 0.3, Rainfall: 0.6},
		BaseYield:              1.5,
		BasePrice:              60,
		GrowingMonths:          6,
		FertilizerPlan:         "cotton",
		PesticidePlan:          "cotton",
		CommodityID:            "cotton",
	},
	{
		Name:                   "Sugarcane",
		Category:               CashCrop,
		OptimalTemperature:     Range{20, 35},
		WaterRequirement:       Range{30, 50},
		GrowingSeason:          []time.Month{time.March, time.April, time.May, time.June},
		SoilMoisturePreference: Range{60, 85},
		ProfitPotential:        8,
		MarketDemand:           7,
		DiseaseRisk:            DiseaseRisk{Humidity: 0.5, Temperature: 0.4, Rainfall: 0.3},
		BaseYield:              70,
		BasePrice:              3,
		GrowingMonths:          12,
		FertilizerPlan:         "sugarcane",
		PesticidePlan:          "sugarcane",
		CommodityID:            "sugarcane",
	},
	{
		Name:                   "Groundnut (Peanut)",
		Category:               Oilseed,
		OptimalTemperature:     Range{25, 35},
		WaterRequirement:       Range{15, 25},
		GrowingSeason:          []time.Month{time.June, time.July, time.November, time.December},
		SoilMoisturePreference: Range{50, 70},
		ProfitPotential:        7,
		MarketDemand:           8,
		DiseaseRisk:            DiseaseRisk{Humidity: 0.6, Temperature: 0.4, Rainfall: 0.5},
		BaseYield:              2,
		BasePrice:              70,
		GrowingMonths:          4,
		CommodityID:            "groundnut",
	},
	{
		Name:                   "Mustard",
		Category:               Oilseed,
		OptimalTemperature:     Range{15, 25},
		WaterRequirement:       Range{10, 20},
		GrowingSeason:          []time.Month{time.October, time.November, time.December},
		SoilMoisturePreference: Range{40, 60},
		ProfitPotential:        6,
		MarketDemand:           7,
		DiseaseRisk:            DiseaseRisk{Humidity: 0.5, Temperature: 0.4, Rainfall: 0.6},
		BaseYield:              1.2,
		BasePrice:              50,
		GrowingMonths:          3,
		CommodityID:            "mustard",
	},
	{
		Name:                   "Mango",
		Category:               Fruit,
		OptimalTemperature:     Range{24, 35},
		WaterRequirement:       Range{20, 35},
		GrowingSeason:          []time.Month{time.February, time.March, time.April, time.May},
		SoilMoisturePreference: Range{50, 70},
		ProfitPotential:        9,
		MarketDemand:           8,
		DiseaseRisk:            DiseaseRisk{Humidity: 0.7, Temperature: 0.4, Rainfall: 0.6},
		BaseYield:              10,
		BasePrice:              80,
		GrowingMonths:          36,
		CommodityID:            "mango",
	},
	{
		Name:                   "Banana",
		Category:               Fruit,
		OptimalTemperature:     Range{20, 35},
		WaterRequirement:       Range{25, 40},
		GrowingSeason:          allYear(),
		SoilMoisturePreference: Range{60, 80},
		ProfitPotential:        8,
		MarketDemand:           8,
		DiseaseRisk:            DiseaseRisk{Humidity: 0.6, Temperature: 0.5, Rainfall: 0.7},
		BaseYield:              30,
		BasePrice:              40,
		GrowingMonths:          12,
		CommodityID:            "banana",
	},
}

func allYear() []time.Month {
	months := make([]time.Month, 0, 12)
	for m := time.January; m <= time.December; m++ {
		months = append(months, m)
	}
	return months
}
