package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smart-jordan/internal/pkg/utils"
)

func TestDistanceKm(t *testing.T) {
	// Amman -> Petra, roughly 180 km as the crow flies
	d := utils.DistanceKm(31.9539, 35.9106, 30.3285, 35.4444)
	assert.InDelta(t, 186, d, 10)

	assert.Zero(t, utils.DistanceKm(29.5320, 35.0063, 29.5320, 35.0063))
}

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, utils.ValidateCoordinates(31.95, 35.91))
	assert.True(t, utils.ValidateCoordinates(-90, 180))
	assert.False(t, utils.ValidateCoordinates(91, 0))
	assert.False(t, utils.ValidateCoordinates(0, -181))
}
