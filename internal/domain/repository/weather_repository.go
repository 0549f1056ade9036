package repository

import (
	"context"

	"github.com/smart-jordan/internal/domain"
)

// WeatherRepository - внешний источник текущей погоды
type WeatherRepository interface {
	Current(ctx context.Context, p domain.Point) (*domain.Weather, error)
}
