package knowledge

import "agro-forecast/models"

const (
	unitKgPerHa = "kg/ha"
	unitLPerHa  = "L/ha"
)

func kg(name string, q float64) models.Input {
	return models.Input{Name: name, Quantity: q, Unit: unitKgPerHa}
}

func liters(name string, q float64) models.Input {
	return models.Input{Name: name, Quantity: q, Unit: unitLPerHa}
}

// fertilizerPlans ключ: план культуры или категория
var fertilizerPlans = map[string][]models.Input{
	string(Cereal):    {kg("Urea", 100), kg("DAP", 50), kg("Potash", 25)},
	string(Millet):    {kg("Urea", 80), kg("DAP", 40), kg("Potash", 20)},
	string(Pulse):     {kg("DAP", 60), kg("Potash", 20), kg("Rhizobium Culture", 5)},
	string(Vegetable): {kg("NPK 10-26-26", 75), kg("Calcium Nitrate", 40)},
	"vegetable_cool":  {kg("NPK 15-15-15", 70), kg("Ammonium Sulfate", 50)},
	"cotton":          {kg("Urea", 120), kg("DAP", 60), kg("Potash", 40)},
	"sugarcane":       {kg("Urea", 150), kg("DAP", 80), kg("Potash", 60)},
	string(Oilseed):   {kg("NPK 12-32-16", 70), kg("Gypsum", 200)},
	string(Fruit):     {kg("NPK 14-14-14", 100), kg("Organic Manure", 500), kg("Micronutrient Mixture", 15)},
	string(Default):   {kg("NPK 14-14-14", 60), kg("Urea", 40)},
}

var pesticidePlans = map[string][]models.Input{
	"rice_wheat":      {liters("Chlorpyrifos", 2), liters("Propiconazole", 1)},
	"coarse_grain":    {liters("Deltamethrin", 1), kg("Thiamethoxam", 0.5)},
	string(Pulse):     {liters("Quinalphos", 1.5), kg("Carbendazim", 1)},
	"solanaceous":     {kg("Mancozeb", 2.5), liters("Imidacloprid", 0.5)},
	string(Vegetable): {liters("Spinosad", 0.5), kg("Copper Oxychloride", 2.5)},
	"cotton":          {liters("Profenofos", 2), kg("Diafenthiuron", 1)},
	"sugarcane":       {liters("Fipronil", 1.5), liters("Hexaconazole", 1)},
	string(Oilseed):   {liters("Chlorantraniliprole", 0.3), liters("Tebuconazole", 1)},
	string(Fruit):     {kg("Carbendazim", 1), liters("Imidacloprid", 0.5), liters("Mineral Oil", 10)},
	string(Default):   {liters("Cypermethrin", 1), kg("Carbendazim", 1.5)},
}
