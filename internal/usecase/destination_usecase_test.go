package usecase_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/smart-jordan/internal/domain"
	"github.com/smart-jordan/internal/pkg/errors"
	"github.com/smart-jordan/internal/repository/memory"
	"github.com/smart-jordan/internal/usecase"
)

func names(list []domain.Destination) []string {
	out := make([]string, 0, len(list))
	for _, d := range list {
		out = append(out, d.Name)
	}
	return out
}

func TestFilterDestinations(t *testing.T) {
	catalogue := memory.Catalogue()

	tests := []struct {
		name     string
		criteria domain.FilterCriteria
		expected []string
	}{
		{
			name:     "nature and medium budget",
			criteria: domain.FilterCriteria{Category: "nature", Budget: "medium"},
			expected: []string{"Wadi Rum", "Aqaba"},
		},
		{
			name:     "search is case insensitive",
			criteria: domain.FilterCriteria{Search: "PeTrA"},
			expected: []string{"Petra"},
		},
		{
			name:     "duration is a substring match",
			criteria: domain.FilterCriteria{Duration: "6"},
			expected: []string{"Petra", "Wadi Rum", "Amman", "Aqaba"},
		},
		{
			name:     "all sentinel is inactive",
			criteria: domain.FilterCriteria{Category: "all", Difficulty: "all", Budget: "all", Accessibility: "all", Duration: "all"},
			expected: names(catalogue),
		},
		{
			name:     "no match is empty, not an error",
			criteria: domain.FilterCriteria{Category: "religious", Budget: "high"},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := usecase.FilterDestinations(catalogue, tt.criteria)
			assert.Equal(t, tt.expected, names(result))
		})
	}
}

func TestFilterDestinations_OrderPreservingSubset(t *testing.T) {
	catalogue := memory.Catalogue()
	criteria := domain.FilterCriteria{Category: "historical", Difficulty: "easy"}

	result := usecase.FilterDestinations(catalogue, criteria)

	idx := 0
	for _, d := range result {
		assert.True(t, criteria.Matches(d))
		for idx < len(catalogue) && catalogue[idx].ID != d.ID {
			idx++
		}
		require.Less(t, idx, len(catalogue), "result is not an ordered subsequence")
		idx++
	}
}

func TestDestinationUseCase_List(t *testing.T) {
	repo, err := memory.NewDestinationRepository(memory.Catalogue())
	require.NoError(t, err)
	uc := usecase.NewDestinationUseCase(repo, zap.NewNop())
	ctx := context.Background()

	t.Run("cleared filters return full catalogue", func(t *testing.T) {
		resp, err := uc.List(ctx, domain.FilterCriteria{})
		require.NoError(t, err)
		assert.Equal(t, 8, resp.Total)
		assert.Equal(t, 8, resp.Catalogue)
		assert.Equal(t, names(memory.Catalogue()), names(resp.Destinations))
	})

	t.Run("filtered total", func(t *testing.T) {
		resp, err := uc.List(ctx, domain.FilterCriteria{Category: "nature"})
		require.NoError(t, err)
		assert.Equal(t, 4, resp.Total)
		assert.Equal(t, 8, resp.Catalogue)
	})
}

func TestDestinationUseCase_List_RepositoryError(t *testing.T) {
	repo := new(MockDestinationRepository)
	repo.On("List", context.Background()).Return(nil, stderrors.New("boom"))

	uc := usecase.NewDestinationUseCase(repo, zap.NewNop())
	_, err := uc.List(context.Background(), domain.FilterCriteria{})

	assert.Error(t, err)
	repo.AssertExpectations(t)
}

func TestDestinationUseCase_GetByID(t *testing.T) {
	repo, err := memory.NewDestinationRepository(memory.Catalogue())
	require.NoError(t, err)
	uc := usecase.NewDestinationUseCase(repo, zap.NewNop())

	d, err := uc.GetByID(context.Background(), "petra")
	require.NoError(t, err)
	assert.Equal(t, "Petra", d.Name)

	_, err = uc.GetByID(context.Background(), "atlantis")
	assert.True(t, stderrors.Is(err, errors.ErrDestinationNotFound))
}

func TestDestinationUseCase_FilterOptions(t *testing.T) {
	uc := usecase.NewDestinationUseCase(new(MockDestinationRepository), zap.NewNop())

	opts := uc.FilterOptions()

	assert.Len(t, opts.Categories, 4)
	assert.Len(t, opts.Difficulties, 3)
	assert.Len(t, opts.Budgets, 3)
	assert.Len(t, opts.Accessibilities, 4)
}
