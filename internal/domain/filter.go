package domain

import "strings"

// FilterAll - значение-сентинел "без фильтрации"
const FilterAll = "all"

// FilterCriteria - активные фильтры каталога. Нулевое значение не фильтрует ничего.
type FilterCriteria struct {
	Category      string `json:"category"`
	Difficulty    string `json:"difficulty"`
	Duration      string `json:"duration"`
	Budget        string `json:"budget"`
	Accessibility string `json:"accessibility"`
	Search        string `json:"search"`
}

func active(v string) bool {
	return v != "" && v != FilterAll
}

// IsEmpty - ни один фильтр не активен
func (f FilterCriteria) IsEmpty() bool {
	return !active(f.Category) && !active(f.Difficulty) && !active(f.Duration) &&
		!active(f.Budget) && !active(f.Accessibility) && f.Search == ""
}

// Matches - направление удовлетворяет всем активным фильтрам.
// Длительность сравнивается как подстрока текстовой метки, а не как числовой диапазон.
func (f FilterCriteria) Matches(d Destination) bool {
	if active(f.Category) && string(d.Category) != f.Category {
		return false
	}
	if active(f.Difficulty) && string(d.Difficulty) != f.Difficulty {
		return false
	}
	if active(f.Duration) && !strings.Contains(d.DurationLabel, f.Duration) {
		return false
	}
	if active(f.Budget) && string(d.Budget) != f.Budget {
		return false
	}
	if active(f.Accessibility) && string(d.Accessibility) != f.Accessibility {
		return false
	}
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(d.Name), term) &&
			!strings.Contains(strings.ToLower(d.ShortDescription), term) {
			return false
		}
	}
	return true
}
