package providers

import "agro-forecast/models"

// conditionFromWMO переводит WMO weather code (Open-Meteo) в категорию погоды
func conditionFromWMO(code int) models.Condition {
	switch {
	case code == 0:
		return models.ConditionSunny
	case code <= 3:
		return models.ConditionPartlyCloudy
	case code >= 45 && code <= 48:
		return models.ConditionCloudy
	case (code >= 51 && code <= 67) || (code >= 80 && code <= 82):
		return models.ConditionRainy
	case (code >= 71 && code <= 77) || code == 85 || code == 86:
		return models.ConditionSnowy
	case code >= 95:
		return models.ConditionStormy
	default:
		return models.ConditionSunny
	}
}

// conditionFromOpenWeather переводит weather.id из OpenWeather
func conditionFromOpenWeather(id int) models.Condition {
	switch {
	case id >= 200 && id < 300:
		return models.ConditionStormy
	case id >= 300 && id < 600:
		return models.ConditionRainy
	case id >= 600 && id < 700:
		return models.ConditionSnowy
	case id >= 700 && id < 800:
		return models.ConditionCloudy
	case id == 800:
		return models.ConditionSunny
	case id == 801 || id == 802:
		return models.ConditionPartlyCloudy
	default:
		return models.ConditionCloudy
	}
}

// conditionFromWeatherAPI переводит condition.code из WeatherAPI
func conditionFromWeatherAPI(code int) models.Condition {
	switch code {
	case 1000:
		return models.ConditionSunny
	case 1003:
		return models.ConditionPartlyCloudy
	case 1006, 1009, 1030, 1135, 1147:
		return models.ConditionCloudy
	case 1087, 1273, 1276, 1279, 1282:
		return models.ConditionStormy
	case 1066, 1069, 1072, 1114, 1117, 1204, 1207, 1210, 1213, 1216, 1219, 1222, 1225, 1237,
		1249, 1252, 1255, 1258, 1261, 1264:
		return models.ConditionSnowy
	}
	if code >= 1150 && code <= 1246 {
		return models.ConditionRainy
	}
	return models.ConditionCloudy
}
