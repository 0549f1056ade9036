package memory

import (
	"context"
	"fmt"

	"github.com/smart-jordan/internal/domain"
	"github.com/smart-jordan/internal/domain/repository"
)

type destinationRepository struct {
	items []domain.Destination
	byID  map[string]int
}

// NewDestinationRepository - каталог поверх статичного списка.
// Проверяет уникальность id и принадлежность полей закрытым множествам.
func NewDestinationRepository(items []domain.Destination) (repository.DestinationRepository, error) {
	byID := make(map[string]int, len(items))
	for i, d := range items {
		if d.ID == "" {
			return nil, fmt.Errorf("destination at index %d has empty id", i)
		}
		if _, dup := byID[d.ID]; dup {
			return nil, fmt.Errorf("duplicate destination id %q", d.ID)
		}
		if !d.Category.Valid() || !d.Difficulty.Valid() || !d.Budget.Valid() || !d.Accessibility.Valid() {
			return nil, fmt.Errorf("destination %q has a value outside the filter sets", d.ID)
		}
		byID[d.ID] = i
	}

	cp := make([]domain.Destination, len(items))
	for i, d := range items {
		cp[i] = d.Clone()
	}

	return &destinationRepository{items: cp, byID: byID}, nil
}

func (r *destinationRepository) List(_ context.Context) ([]domain.Destination, error) {
	out := make([]domain.Destination, len(r.items))
	for i, d := range r.items {
		out[i] = d.Clone()
	}
	return out, nil
}

func (r *destinationRepository) GetByID(_ context.Context, id string) (*domain.Destination, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	d := r.items[i].Clone()
	return &d, nil
}
