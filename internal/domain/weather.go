package domain

import "time"

const (
	WeatherSourceLive     = "live"
	WeatherSourceFallback = "fallback"

	DefaultTemperature = 25.0
	DefaultHumidity    = 40
)

// FallbackLocation - центр Аммана, если геолокация недоступна или запрещена
var FallbackLocation = Point{Lat: 31.9539, Lon: 35.9106}

type Weather struct {
	Temperature float64   `json:"temperature"`
	Humidity    int       `json:"humidity"`
	Lat         float64   `json:"lat"`
	Lon         float64   `json:"lon"`
	Source      string    `json:"source"`
	FetchedAt   time.Time `json:"fetched_at"`
}

// FallbackWeather - значения по умолчанию для точки, если внешний сервис недоступен
func FallbackWeather(p Point) *Weather {
	return &Weather{
		Temperature: DefaultTemperature,
		Humidity:    DefaultHumidity,
		Lat:         p.Lat,
		Lon:         p.Lon,
		Source:      WeatherSourceFallback,
		FetchedAt:   time.Now().UTC(),
	}
}
