package knowledge

// markets рыночные параметры товаров; сезонность по месяцам с января
var markets = []MarketProfile{
	{
		ID:              "rice",
		Name:            "Rice",
		Category:        Cereal,
		BasePrice:       40,
		Seasonality:     [12]float64{1.05, 1.1, 1.15, 1.2, 1.15, 1, 0.9, 0.85, 0.9, 0.95, 1, 1.05},
		Sensitivity:     Sensitivity{Temperature: -0.2, Rainfall: 0.3, Humidity: 0.1},
		SupplyDemand:    0.7,
		Volatility:      0.3,
		StorageLifeDays: 365,
		Substitutes:     []string{"wheat"},
	},
	{
		ID:              "wheat",
		Name:            "Wheat",
		Category:        Cereal,
		BasePrice:       30,
		Seasonality:     [12]float64{0.9, 0.85, 0.8, 0.85, 0.9, 1, 1.1, 1.15, 1.2, 1.15, 1.05, 0.95},
		Sensitivity:     Sensitivity{Temperature: 0.3, Rainfall: -0.2, Humidity: -0.1},
		SupplyDemand:    0.6,
		Volatility:      0.25,
		StorageLifeDays: 300,
		Substitutes:     []string{"rice"},
	},
	{
		ID:              "maize",
		Name:            "Maize (Corn)",
		Category:        Cereal,
		BasePrice:       25,
		Seasonality:     [12]float64{1.1, 1.15, 1.2, 1.15, 1.1, 1, 0.9, 0.85, 0.9, 0.95, 1, 1.05},
		Sensitivity:     Sensitivity{Temperature: -0.1, Rainfall: 0.4, Humidity: 0.1},
		SupplyDemand:    0.6,
		Volatility:      0.3,
		StorageLifeDays: 270,
		Substitutes:     []string{"wheat"},
	},
	{
		ID:              "bajra",
		Name:            "Bajra (Pearl Millet)",
		Category:        Millet,
		BasePrice:       22,
		Seasonality:     [12]float64{1.1, 1.15, 1.2, 1.15, 1.1, 1, 0.9, 0.85, 0.9, 0.95, 1, 1.05},
		Sensitivity:     Sensitivity{Temperature: 0.2, Rainfall: -0.3, Humidity: -0.1},
		SupplyDemand:    0.5,
		Volatility:      0.3,
		StorageLifeDays: 240,
		Substitutes:     []string{"jowar"},
	},
	{
		ID:              "jowar",
		Name:            "Jowar (Sorghum)",
		Category:        Millet,
		BasePrice:       24,
		Seasonality:     [12]float64{1.05, 1.1, 1.15, 1.1, 1.05, 1, 0.95, 0.9, 0.95, 1, 1.05, 1.1},
		Sensitivity:     Sensitivity{Temperature: 0.2, Rainfall: -0.3, Humidity: -0.1},
		SupplyDemand:    0.5,
		Volatility:      0.3,
		StorageLifeDays: 240,
		Substitutes:     []string{"bajra"},
	},
	{
		ID:              "moong",
		Name:            "Moong Dal (Green Gram)",
		Category:        Pulse,
		BasePrice:       90,
		Seasonality:     [12]float64{1.05, 1.1, 1, 0.95, 1, 1.05, 1.1, 1.15, 1.1, 1.05, 1, 1.05},
		Sensitivity:     Sensitivity{Temperature: 0.1, Rainfall: 0.2, Humidity: -0.1},
		SupplyDemand:    0.7,
		Volatility:      0.4,
		StorageLifeDays: 365,
		Substitutes:     []string{"masoor", "toor"},
	},
	{
		ID:              "masoor",
		Name:            "Masoor Dal (Red Lentil)",
		Category:        Pulse,
		BasePrice:       85,
		Seasonality:     [12]float64{0.95, 1, 1.05, 1.1, 1.15, 1.1, 1.05, 1, 0.95, 0.9, 0.95, 1},
		Sensitivity:     Sensitivity{Temperature: 0.1, Rainfall: 0.2, Humidity: -0.1},
		SupplyDemand:    0.7,
		Volatility:      0.4,
		StorageLifeDays: 365,
		Substitutes:     []string{"moong", "toor"},
	},
	{
		ID:              "chana",
		Name:            "Chana (Chickpea)",
		Category:        Pulse,
		BasePrice:       70,
		Seasonality:     [12]float64{0.9, 0.85, 0.9, 0.95, 1, 1.05, 1.1, 1.15, 1.1, 1.05, 1, 0.95},
		Sensitivity:     Sensitivity{Temperature: 0.2, Rainfall: 0.1, Humidity: -0.2},
		SupplyDemand:    0.6,
		Volatility:      0.35,
		StorageLifeDays: 365,
	},
	{
		ID:              "toor",
		Name:            "Toor Dal (Pigeon Pea)",
		Category:        Pulse,
		BasePrice:       95,
		Seasonality:     [12]float64{1, 1.05, 1.1, 1.15, 1.1, 1.05, 1, 0.95, 0.9, 0.95, 1, 1.05},
		Sensitivity:     Sensitivity{Temperature: 0.1, Rainfall: 0.3, Humidity: -0.1},
		SupplyDemand:    0.8,
		Volatility:      0.45,
		StorageLifeDays: 365,
		Substitutes:     []string{"moong", "masoor"},
	},
	{
		ID:              "urad",
		Name:            "Urad Dal (Black Gram)",
		Category:        Pulse,
		BasePrice:       100,
		Seasonality:     [12]float64{1.05, 1.1, 1.15, 1.1, 1.05, 1, 0.95, 0.9, 0.95, 1, 1.05, 1.1},
		Sensitivity:     Sensitivity{Temperature: 0.1, Rainfall: 0.2, Humidity: -0.1},
		SupplyDemand:    0.7,
		Volatility:      0.4,
		StorageLifeDays: 365,
		Substitutes:     []string{"moong"},
	},
	{
		ID:              "potato",
		Name:            "Potato",
		Category:        Vegetable,
		BasePrice:       20,
		Seasonality:     [12]float64{0.8, 0.9, 1, 1.1, 1.2, 1.3, 1.2, 1.1, 1, 0.9, 0.8, 0.7},
		Sensitivity:     Sensitivity{Temperature: 0.4, Rainfall: 0.2, Humidity: -0.3},
		SupplyDemand:    0.8,
		Volatility:      0.5,
		StorageLifeDays: 90,
	},
	{
		ID:              "tomato",
		Name:            "Tomato",
		Category:        Vegetable,
		BasePrice:       35,
		Seasonality:     [12]float64{1.2, 1.1, 1, 0.9, 0.8, 0.7, 0.8, 0.9, 1, 1.1, 1.2, 1.3},
		Sensitivity:     Sensitivity{Temperature: -0.3, Rainfall: 0.4, Humidity: -0.2},
		SupplyDemand:    0.9,
		Volatility:      0.7,
		StorageLifeDays: 14,
	},
	{
		ID:              "onion",
		Name:            "Onion",
		Category:        Vegetable,
		BasePrice:       25,
		Seasonality:     [12]float64{0.9, 0.85, 0.9, 0.95, 1, 1.1, 1.2, 1.3, 1.2, 1.1, 1, 0.95},
		Sensitivity:     Sensitivity{Temperature: 0.2, Rainfall: -0.1, Humidity: -0.3},
		SupplyDemand:    0.8,
		Volatility:      0.6,
		StorageLifeDays: 120,
	},
	{
		ID:              "cauliflower",
		Name:            "Cauliflower",
		Category:        Vegetable,
		BasePrice:       30,
		Seasonality:     [12]float64{0.8, 0.9, 1, 1.1, 1.2, 1.3, 1.2, 1.1, 1, 0.9, 0.8, 0.7},
		Sensitivity:     Sensitivity{Temperature: 0.3, Rainfall: 0.2, Humidity: -0.2},
		SupplyDemand:    0.7,
		Volatility:      0.5,
		StorageLifeDays: 10,
	},
	{
		ID:              "brinjal",
		Name:            "Brinjal (Eggplant)",
		Category:        Vegetable,
		BasePrice:       25,
		Seasonality:     [12]float64{1, 0.9, 0.8, 0.9, 1, 1.1, 1.2, 1.1, 1, 0.9, 1, 1.1},
		Sensitivity:     Sensitivity{Temperature: -0.1, Rainfall: 0.3, Humidity: -0.1},
		SupplyDemand:    0.7,
		Volatility:      0.5,
		StorageLifeDays: 7,
	},
	{
		ID:              "soybean",
		Name:            "Soybean",
		Category:        Oilseed,
		BasePrice:       45,
		Seasonality:     [12]float64{1.1, 1.15, 1.2, 1.15, 1.1, 1.05, 1, 0.95, 0.9, 0.95, 1, 1.05},
		Sensitivity:     Sensitivity{Temperature: -0.1, Rainfall: 0.3, Humidity: 0.1},
		SupplyDemand:    0.6,
		Volatility:      0.4,
		StorageLifeDays: 240,
	},
	{
		ID:              "cotton",
		Name:            "Cotton",
		Category:        CashCrop,
		BasePrice:       60,
		Seasonality:     [12]float64{1, 1.05, 1.1, 1.15, 1.1, 1.05, 1, 0.95, 0.9, 0.95, 1, 1.05},
		Sensitivity:     Sensitivity{Temperature: 0.2, Rainfall: -0.1, Humidity: -0.2},
		SupplyDemand:    0.7,
		Volatility:      0.4,
		StorageLifeDays: 365,
	},
	{
		ID:              "sugarcane",
		Name:            "Sugarcane",
		Category:        CashCrop,
		BasePrice:       3,
		Seasonality:     [12]float64{0.95, 1, 1.05, 1.1, 1.15, 1.1, 1.05, 1, 0.95, 0.9, 0.95, 1},
		Sensitivity:     Sensitivity{Temperature: 0.1, Rainfall: 0.4, Humidity: 0.1},
		SupplyDemand:    0.5,
		Volatility:      0.2,
		StorageLifeDays: 5,
	},
	{
		ID:              "groundnut",
		Name:            "Groundnut (Peanut)",
		Category:        Oilseed,
		BasePrice:       70,
		Seasonality:     [12]float64{1.05, 1.1, 1.15, 1.1, 1.05, 1, 0.95, 0.9, 0.95, 1, 1.05, 1.1},
		Sensitivity:     Sensitivity{Temperature: 0.2, Rainfall: 0.1, Humidity: -0.2},
		SupplyDemand:    0.6,
		Volatility:      0.3,
		StorageLifeDays: 300,
	},
	{
		ID:              "mustard",
		Name:            "Mustard",
		Category:        Oilseed,
		BasePrice:       50,
		Seasonality:     [12]float64{0.9, 0.85, 0.9, 0.95, 1, 1.05, 1.1, 1.15, 1.1, 1.05, 1, 0.95},
		Sensitivity:     Sensitivity{Temperature: 0.2, Rainfall: -0.1, Humidity: -0.2},
		SupplyDemand:    0.5,
		Volatility:      0.3,
		StorageLifeDays: 300,
	},
	{
		ID:              "mango",
		Name:            "Mango",
		Category:        Fruit,
		BasePrice:       80,
		Seasonality:     [12]float64{1.5, 1.3, 1.1, 0.9, 0.7, 0.6, 0.8, 1, 1.2, 1.4, 1.6, 1.7},
		Sensitivity:     Sensitivity{Temperature: -0.3, Rainfall: 0.2, Humidity: -0.1},
		SupplyDemand:    0.8,
		Volatility:      0.6,
		StorageLifeDays: 14,
		Substitutes:     []string{"banana"},
	},
	{
		ID:              "banana",
		Name:            "Banana",
		Category:        Fruit,
		BasePrice:       40,
		Seasonality:     [12]float64{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		Sensitivity:     Sensitivity{Temperature: -0.1, Rainfall: 0.3, Humidity: 0.1},
		SupplyDemand:    0.6,
		Volatility:      0.3,
		StorageLifeDays: 14,
	},
}
