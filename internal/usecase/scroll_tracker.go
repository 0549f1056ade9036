package usecase

import "github.com/smart-jordan/internal/domain"

// TrackScroll вычисляет состояние навигации по раскладке страницы.
// prevActive возвращается, если ни одна секция не пересекает линию активации.
func TrackScroll(prevActive string, layout domain.PageLayout) domain.ScrollState {
	state := domain.ScrollState{
		Progress:      scrollProgress(layout),
		Visible:       make(map[string]bool, len(layout.Sections)),
		ActiveSection: prevActive,
		ShowBackToTop: layout.ScrollY > domain.BackToTopThreshold,
	}

	visibleLine := domain.VisibleViewportRatio * layout.ViewportHeight
	activeFound := false

	for _, s := range layout.Sections {
		state.Visible[s.ID] = s.Top < visibleLine && s.Bottom > 0

		if !activeFound && s.Top <= domain.ActiveSectionLine && s.Bottom >= domain.ActiveSectionLine {
			state.ActiveSection = s.ID
			activeFound = true
		}
	}

	return state
}

func scrollProgress(layout domain.PageLayout) float64 {
	scrollable := layout.DocumentHeight - layout.ViewportHeight
	if scrollable <= 0 {
		return 0
	}

	progress := layout.ScrollY / scrollable * 100
	switch {
	case progress < 0:
		return 0
	case progress > 100:
		return 100
	}
	return progress
}
