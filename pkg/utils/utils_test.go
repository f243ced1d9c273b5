package utils

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{name: "zero", input: 0, expected: 0},
		{name: "arredonda para cima", input: 10.456, expected: 10.46},
		{name: "arredonda para baixo", input: 10.454, expected: 10.45},
		{name: "negativo", input: -3.333, expected: -3.33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RoundWithTwoDecimalPlace(tt.input))
		})
	}

	assert.True(t, math.IsInf(RoundWithTwoDecimalPlace(math.Inf(1)), 1))
}

func TestRoundUnitsUp(t *testing.T) {
	assert.Equal(t, int64(334), RoundUnitsUp(333.33))
	assert.Equal(t, int64(500), RoundUnitsUp(500))
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)
	assert.Len(t, id, idLength)

	other, err := GenerateID()
	require.NoError(t, err)
	assert.NotEqual(t, id, other)
}

func TestPeriods(t *testing.T) {
	date := time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, "01-2024", FormatPeriod(date))
	assert.Equal(t, "12-2023", PreviousPeriod(date))

	parsed, err := ParsePeriod("03-2024")
	require.NoError(t, err)
	assert.Equal(t, time.March, parsed.Month())
	assert.Equal(t, 2024, parsed.Year())

	_, err = ParsePeriod("2024-03")
	assert.Error(t, err)
}
