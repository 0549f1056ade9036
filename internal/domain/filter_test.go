package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterCriteria_Matches(t *testing.T) {
	petra := Destination{
		ID:               "petra",
		Name:             "Petra",
		Category:         CategoryHistorical,
		Difficulty:       DifficultyModerate,
		DurationLabel:    "6-8 hours",
		Budget:           BudgetHigh,
		Accessibility:    AccessibilityLimited,
		ShortDescription: "Ancient rose-red city carved into cliffs",
	}

	tests := []struct {
		name        string
		criteria    FilterCriteria
		expected    bool
		description string
	}{
		{
			name:        "zero value",
			criteria:    FilterCriteria{},
			expected:    true,
			description: "Empty criteria should not filter anything",
		},
		{
			name: "all sentinel",
			criteria: FilterCriteria{
				Category: FilterAll, Difficulty: FilterAll, Duration: FilterAll,
				Budget: FilterAll, Accessibility: FilterAll,
			},
			expected:    true,
			description: "The all sentinel should disable every filter",
		},
		{
			name:        "category mismatch",
			criteria:    FilterCriteria{Category: "nature"},
			expected:    false,
			description: "Equality filters should reject other values",
		},
		{
			name:        "duration substring",
			criteria:    FilterCriteria{Duration: "8"},
			expected:    true,
			description: "Duration should match as an unanchored substring",
		},
		{
			name:        "duration inside range is not a match",
			criteria:    FilterCriteria{Duration: "7"},
			expected:    false,
			description: "7 lies inside 6-8 numerically but is not a substring",
		},
		{
			name:        "search in short description, case-insensitive",
			criteria:    FilterCriteria{Search: "ROSE-RED"},
			expected:    true,
			description: "Search should look at the short description ignoring case",
		},
		{
			name:        "AND across filters",
			criteria:    FilterCriteria{Category: "historical", Budget: "low"},
			expected:    false,
			description: "Every active filter must match",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.criteria.Matches(petra), tt.description)
		})
	}
}

func TestFilterCriteria_IsEmpty(t *testing.T) {
	assert.True(t, FilterCriteria{}.IsEmpty())
	assert.True(t, FilterCriteria{Category: FilterAll}.IsEmpty())
	assert.False(t, FilterCriteria{Search: "petra"}.IsEmpty())
	assert.False(t, FilterCriteria{Duration: "4"}.IsEmpty())
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, CategoryUrban.Valid())
	assert.False(t, Category("beach").Valid())
	assert.True(t, DifficultyHard.Valid())
	assert.False(t, Budget("free").Valid())
	assert.True(t, AccessibilityModerate.Valid())
}
