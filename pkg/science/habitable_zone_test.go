package science

import (
	"testing"

	"exocatalog-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateHabitableZoneSunLike(t *testing.T) {
	hz := CalculateHabitableZone(5780, 1.0)
	require.NotNil(t, hz)

	// Kopparapu Sun-calibrated values bracket 1 AU
	assert.Greater(t, hz.Conservative.Inner, 0.9)
	assert.Less(t, hz.Conservative.Outer, 1.8)
	assert.Greater(t, 1.0, hz.Optimistic.Inner)
	assert.Less(t, 1.0, hz.Optimistic.Outer)

	// optimistic band fully contains the conservative band
	assert.LessOrEqual(t, hz.Optimistic.Inner, hz.Conservative.Inner)
	assert.LessOrEqual(t, hz.Conservative.Inner, hz.Conservative.Outer)
	assert.LessOrEqual(t, hz.Conservative.Outer, hz.Optimistic.Outer)

	assert.Empty(t, hz.ModelNote)
}

func TestCalculateHabitableZoneInvalidInputs(t *testing.T) {
	assert.Nil(t, CalculateHabitableZone(0, 1.0))
	assert.Nil(t, CalculateHabitableZone(5780, 0))
	assert.Nil(t, CalculateHabitableZone(5780, -1))
}

func TestCalculateHabitableZoneClampsTemperature(t *testing.T) {
	hot := CalculateHabitableZone(9000, 1.0)
	require.NotNil(t, hot)
	assert.NotEmpty(t, hot.ModelNote)

	clamped := CalculateHabitableZone(7200, 1.0)
	require.NotNil(t, clamped)
	assert.Empty(t, clamped.ModelNote)
	assert.InDelta(t, clamped.Conservative.Inner, hot.Conservative.Inner, 1e-9)

	cool := CalculateHabitableZone(2000, 0.01)
	require.NotNil(t, cool)
	assert.NotEmpty(t, cool.ModelNote)
}

func TestGetHZStatusLabels(t *testing.T) {
	base := func(sma float64) *entity.PlanetRecord {
		return &entity.PlanetRecord{
			Name:          "HZ test",
			StarTemp:      entity.Float(5780),
			StarLum:       entity.Float(1.0),
			SemiMajorAxis: entity.Float(sma),
		}
	}

	cases := []struct {
		sma   float64
		label string
	}{
		{1.0, entity.HZConservative},
		{0.8, entity.HZOptimistic},
		{1.7, entity.HZOptimistic},
		{0.3, entity.HZTooHot},
		{5.0, entity.HZTooCold},
	}
	for _, tc := range cases {
		status := GetHZStatus(base(tc.sma))
		require.NotNil(t, status, "sma=%v", tc.sma)
		assert.Equal(t, tc.label, status.Label, "sma=%v", tc.sma)
		assert.Equal(t, "high", status.Confidence)
	}
}

func TestGetHZStatusMissingInputs(t *testing.T) {
	assert.Nil(t, GetHZStatus(&entity.PlanetRecord{
		StarTemp: entity.Float(5780),
		StarLum:  entity.Float(1.0),
	}))
	assert.Nil(t, GetHZStatus(&entity.PlanetRecord{
		SemiMajorAxis: entity.Float(1.0),
	}))
}

func TestGetHZStatusModerateConfidenceOutsideModelRange(t *testing.T) {
	status := GetHZStatus(&entity.PlanetRecord{
		StarTemp:      entity.Float(9500),
		StarLum:       entity.Float(10.0),
		SemiMajorAxis: entity.Float(2.0),
	})
	require.NotNil(t, status)
	assert.Equal(t, "moderate", status.Confidence)
	assert.NotEmpty(t, status.ModelNote)
}
