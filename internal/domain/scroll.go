package domain

const (
	// ActiveSectionLine - линия в пикселях от верха окна, пересечение с которой делает секцию активной
	ActiveSectionLine = 100
	// VisibleViewportRatio - доля окна сверху, попадание в которую считается видимостью
	VisibleViewportRatio = 0.8
	// BackToTopThreshold - смещение, после которого показывается кнопка "наверх"
	BackToTopThreshold = 300
)

// SectionRect - прямоугольник секции относительно окна просмотра
type SectionRect struct {
	ID     string  `json:"id"`
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}

// PageLayout - то, что клиент сообщает на каждом событии прокрутки
type PageLayout struct {
	ScrollY        float64       `json:"scroll_y"`
	ViewportHeight float64       `json:"viewport_height"`
	DocumentHeight float64       `json:"document_height"`
	Sections       []SectionRect `json:"sections"`
}

// ScrollState - производное состояние навигации
type ScrollState struct {
	Progress      float64         `json:"progress"`
	Visible       map[string]bool `json:"visible"`
	ActiveSection string          `json:"active_section"`
	ShowBackToTop bool            `json:"show_back_to_top"`
}
