package dto

import (
	"strings"

	"github.com/smart-jordan/internal/domain"
)

// DestinationFilterRequest - параметры фильтрации каталога (query string)
type DestinationFilterRequest struct {
	Category      string `query:"category" validate:"omitempty,oneof=all nature historical religious urban"`
	Difficulty    string `query:"difficulty" validate:"omitempty,oneof=all easy moderate hard"`
	Duration      string `query:"duration" validate:"omitempty,max=32"`
	Budget        string `query:"budget" validate:"omitempty,oneof=all low medium high"`
	Accessibility string `query:"accessibility" validate:"omitempty,oneof=all excellent good moderate limited"`
	Query         string `query:"q" validate:"omitempty,max=100"`
}

// ToCriteria преобразует запрос в критерии фильтра.
// Поисковая строка из одних пробелов считается пустой.
func (r DestinationFilterRequest) ToCriteria() domain.FilterCriteria {
	search := r.Query
	if strings.TrimSpace(search) == "" {
		search = ""
	}
	return domain.FilterCriteria{
		Category:      r.Category,
		Difficulty:    r.Difficulty,
		Duration:      r.Duration,
		Budget:        r.Budget,
		Accessibility: r.Accessibility,
		Search:        search,
	}
}

// SectionRect - прямоугольник секции относительно окна
type SectionRect struct {
	ID     string  `json:"id" validate:"required"`
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}

// ScrollStateRequest - снимок раскладки страницы на событии прокрутки
type ScrollStateRequest struct {
	ScrollY        float64       `json:"scroll_y"`
	ViewportHeight float64       `json:"viewport_height" validate:"min=0"`
	DocumentHeight float64       `json:"document_height" validate:"min=0"`
	Sections       []SectionRect `json:"sections" validate:"omitempty,max=64,dive"`
	PreviousActive string        `json:"previous_active"`
}

// ToLayout преобразует запрос в доменную раскладку
func (r ScrollStateRequest) ToLayout() domain.PageLayout {
	sections := make([]domain.SectionRect, 0, len(r.Sections))
	for _, s := range r.Sections {
		sections = append(sections, domain.SectionRect{ID: s.ID, Top: s.Top, Bottom: s.Bottom})
	}
	return domain.PageLayout{
		ScrollY:        r.ScrollY,
		ViewportHeight: r.ViewportHeight,
		DocumentHeight: r.DocumentHeight,
		Sections:       sections,
	}
}

// ChatMessageRequest - сообщение пользователя
type ChatMessageRequest struct {
	Text string `json:"text" validate:"max=4000"`
}

// WeatherRequest - координаты пользователя; отсутствие означает "геолокация недоступна"
type WeatherRequest struct {
	Lat *float64 `query:"lat" validate:"omitempty,min=-90,max=90"`
	Lon *float64 `query:"lon" validate:"omitempty,min=-180,max=180"`
}

// Point возвращает точку или nil, если координаты не переданы полностью
func (r WeatherRequest) Point() *domain.Point {
	if r.Lat == nil || r.Lon == nil {
		return nil
	}
	return &domain.Point{Lat: *r.Lat, Lon: *r.Lon}
}

// NearestRequest - запрос ближайших направлений. Координаты обязательны:
// без них расстояния считались бы от (0,0).
type NearestRequest struct {
	Lat   *float64 `query:"lat" validate:"required,min=-90,max=90"`
	Lon   *float64 `query:"lon" validate:"required,min=-180,max=180"`
	Limit int      `query:"limit" validate:"omitempty,min=1,max=50"`
}

// Point - точка запроса, вызывать после успешной валидации
func (r NearestRequest) Point() domain.Point {
	return domain.Point{Lat: *r.Lat, Lon: *r.Lon}
}

// StatusCheckRequest - тело POST /status
type StatusCheckRequest struct {
	ClientName string `json:"client_name" validate:"required,notblank,max=200"`
}
