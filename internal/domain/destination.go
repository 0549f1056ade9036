package domain

import (
	"maps"
	"slices"
)

// Category - тематическая категория направления
type Category string

const (
	CategoryNature     Category = "nature"
	CategoryHistorical Category = "historical"
	CategoryReligious  Category = "religious"
	CategoryUrban      Category = "urban"
)

// Difficulty - физическая сложность посещения
type Difficulty string

const (
	DifficultyEasy     Difficulty = "easy"
	DifficultyModerate Difficulty = "moderate"
	DifficultyHard     Difficulty = "hard"
)

// Budget - уровень бюджета поездки
type Budget string

const (
	BudgetLow    Budget = "low"
	BudgetMedium Budget = "medium"
	BudgetHigh   Budget = "high"
)

// Accessibility - доступность для маломобильных туристов
type Accessibility string

const (
	AccessibilityExcellent Accessibility = "excellent"
	AccessibilityGood      Accessibility = "good"
	AccessibilityModerate  Accessibility = "moderate"
	AccessibilityLimited   Accessibility = "limited"
)

// Закрытые множества значений, которыми оперирует UI фильтров
var (
	Categories      = []Category{CategoryNature, CategoryHistorical, CategoryReligious, CategoryUrban}
	Difficulties    = []Difficulty{DifficultyEasy, DifficultyModerate, DifficultyHard}
	Budgets         = []Budget{BudgetLow, BudgetMedium, BudgetHigh}
	Accessibilities = []Accessibility{AccessibilityExcellent, AccessibilityGood, AccessibilityModerate, AccessibilityLimited}
)

func (c Category) Valid() bool      { return contains(Categories, c) }
func (d Difficulty) Valid() bool    { return contains(Difficulties, d) }
func (b Budget) Valid() bool        { return contains(Budgets, b) }
func (a Accessibility) Valid() bool { return contains(Accessibilities, a) }

func contains[T comparable](set []T, v T) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// BestTimeToVisit - рекомендации по времени посещения
type BestTimeToVisit struct {
	Months []string `json:"months"`
	Hours  string   `json:"hours"`
	Season string   `json:"season"`
}

// WeatherSnapshot - статичная сводка погоды, показываемая в карточке направления
type WeatherSnapshot struct {
	Temperature int    `json:"temp"`
	Condition   string `json:"condition"`
	Humidity    int    `json:"humidity"`
	WindSpeed   int    `json:"wind_speed"`
}

// CrowdSnapshot - статичная сводка загруженности
type CrowdSnapshot struct {
	Level      CrowdLevel `json:"level"`
	Percentage int        `json:"percentage"`
	BusyHours  []string   `json:"busy_hours"`
}

// Destination - туристическое направление каталога. Неизменяемо после загрузки.
type Destination struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Category         Category          `json:"category"`
	Difficulty       Difficulty        `json:"difficulty"`
	DurationLabel    string            `json:"duration"`
	Budget           Budget            `json:"budget"`
	Accessibility    Accessibility     `json:"accessibility"`
	ShortDescription string            `json:"short_description"`
	FullDescription  string            `json:"full_description"`
	Highlights       []string          `json:"highlights"`
	Tips             []string          `json:"tips"`
	Transportation   map[string]string `json:"transportation"`
	BestTimeToVisit  BestTimeToVisit   `json:"best_time_to_visit"`
	AverageRating    float64           `json:"average_rating"`
	Image            string            `json:"image"`
	Image360         string            `json:"image_360"`
	VirtualTour      string            `json:"virtual_tour"`
	Location         Point             `json:"location"`
	Weather          WeatherSnapshot   `json:"weather"`
	Crowd            CrowdSnapshot     `json:"crowd"`
}

// Clone - глубокая копия: срезы и карта не разделяются с исходником
func (d Destination) Clone() Destination {
	cp := d
	cp.Highlights = slices.Clone(d.Highlights)
	cp.Tips = slices.Clone(d.Tips)
	cp.Transportation = maps.Clone(d.Transportation)
	cp.BestTimeToVisit.Months = slices.Clone(d.BestTimeToVisit.Months)
	cp.Crowd.BusyHours = slices.Clone(d.Crowd.BusyHours)
	return cp
}
