package weather

import (
	"math"
	"time"

	"agro-forecast/models"
)

// Zone климатический пояс по модулю широты
type Zone int

const (
	ZoneEquatorial Zone = iota
	ZoneTropical
	ZoneTemperate
	ZonePolar
)

func (z Zone) String() string {
	switch z {
	case ZoneEquatorial:
		return "equatorial"
	case ZoneTropical:
		return "tropical"
	case ZoneTemperate:
		return "temperate"
	default:
		return "polar"
	}
}

// Season сезон по месяцам северного полушария
type Season int

const (
	Winter Season = iota
	Spring
	Summer
	Fall
)

func (s Season) String() string {
	return [...]string{"winter", "spring", "summer", "fall"}[s]
}

// ZoneOf границы включительно: 15, 30, 60 градусов
func ZoneOf(latitude float64) Zone {
	lat := math.Abs(latitude)
	switch {
	case lat <= 15:
		return ZoneEquatorial
	case lat <= 30:
		return ZoneTropical
	case lat <= 60:
		return ZoneTemperate
	default:
		return ZonePolar
	}
}

// SeasonOf зима dec-feb, весна mar-may, лето jun-aug, осень sep-nov
func SeasonOf(m time.Month) Season {
	switch m {
	case time.December, time.January, time.February:
		return Winter
	case time.March, time.April, time.May:
		return Spring
	case time.June, time.July, time.August:
		return Summer
	default:
		return Fall
	}
}

type tempRange struct {
	min, max float64
}

var baseTemperature = map[Zone]tempRange{
	ZoneEquatorial: {22, 32},
	ZoneTropical:   {18, 35},
	ZoneTemperate:  {5, 25},
	ZonePolar:      {-10, 10},
}

// Южное полушарие сдвигает только температуру, списки месяцев роста
// культур при этом не переворачиваются
var (
	northernOffset = [...]float64{Winter: -10, Spring: -5, Summer: 5, Fall: -2}
	southernOffset = [...]float64{Winter: 5, Spring: 2, Summer: -10, Fall: -5}
)

type precipitationBase struct {
	probability float64
	amount      float64
}

func basePrecipitation(z Zone, s Season) precipitationBase {
	switch z {
	case ZoneEquatorial:
		return precipitationBase{0.6, 8}
	case ZoneTropical:
		if s == Summer {
			return precipitationBase{0.5, 6}
		}
		return precipitationBase{0.2, 2}
	case ZoneTemperate:
		switch s {
		case Spring, Fall:
			return precipitationBase{0.4, 4}
		case Winter:
			return precipitationBase{0.3, 3}
		default:
			return precipitationBase{0.2, 2}
		}
	default:
		if s == Winter {
			return precipitationBase{0.3, 2}
		}
		return precipitationBase{0.2, 1}
	}
}

// climate базовые значения для точки и сезона
type climate struct {
	zone          Zone
	season        Season
	tempMin       float64
	tempMax       float64
	precipitation precipitationBase
}

func climateFor(latitude float64, month time.Month) climate {
	zone := ZoneOf(latitude)
	season := SeasonOf(month)

	base := baseTemperature[zone]
	offset := northernOffset[season]
	if latitude < 0 {
		offset = southernOffset[season]
	}

	return climate{
		zone:          zone,
		season:        season,
		tempMin:       base.min + offset,
		tempMax:       base.max + offset,
		precipitation: basePrecipitation(zone, season),
	}
}

// uvIndex по погоде и сезону
func uvIndex(c models.Condition, s Season) float64 {
	var summer, winter, other float64
	switch c {
	case models.ConditionSunny:
		summer, winter, other = 9, 3, 6
	case models.ConditionPartlyCloudy:
		summer, winter, other = 7, 2, 5
	default:
		summer, winter, other = 5, 1, 3
	}
	switch s {
	case Summer:
		return summer
	case Winter:
		return winter
	default:
		return other
	}
}
