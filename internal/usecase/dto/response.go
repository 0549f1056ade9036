package dto

import (
	"time"

	"github.com/smart-jordan/internal/domain"
)

// DestinationListResponse - результат фильтрации каталога
type DestinationListResponse struct {
	Destinations []domain.Destination `json:"destinations"`
	Total        int                  `json:"total"`
	Catalogue    int                  `json:"catalogue"`
}

// FilterOptionsResponse - допустимые значения фильтров
type FilterOptionsResponse struct {
	Categories      []domain.Category      `json:"categories"`
	Difficulties    []domain.Difficulty    `json:"difficulties"`
	Budgets         []domain.Budget        `json:"budgets"`
	Accessibilities []domain.Accessibility `json:"accessibilities"`
}

// MapMarker - маркер направления на карте
type MapMarker struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category domain.Category `json:"category"`
	Lat      float64         `json:"lat"`
	Lon      float64         `json:"lon"`
}

// MapMarkersResponse - маркеры и настройки тайлового слоя
type MapMarkersResponse struct {
	Markers     []MapMarker `json:"markers"`
	TileURL     string      `json:"tile_url"`
	Attribution string      `json:"attribution"`
}

// NearestDestination - направление с расстоянием до точки запроса
type NearestDestination struct {
	MapMarker
	DistanceKm float64 `json:"distance_km"`
}

// SensorHistoryItem - запись стрима показаний
type SensorHistoryItem struct {
	ID      string               `json:"id"`
	Reading domain.SensorReading `json:"reading"`
}

// HealthResponse - состояние зависимостей
type HealthResponse struct {
	Status    string            `json:"status"`
	Checks    map[string]string `json:"checks"`
	Timestamp time.Time         `json:"timestamp"`
}

// MessageResponse - простое текстовое сообщение
type MessageResponse struct {
	Message string `json:"message"`
}
